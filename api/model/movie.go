// Copyright 2025 The Filmrate Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

type Movie struct {
	Model
	Title   string       `gorm:"size:255;not null" json:"title"`
	Ratings []UserRating `gorm:"foreignKey:MovieID" json:"ratings,omitempty"`
}

func (Movie) TableName() string {
	return "t_movie"
}

const (
	RatingMin = 1
	RatingMax = 5
)

// UserRating is one user's rating of one movie. A user rates a movie at
// most once; updates go through the existing row.
type UserRating struct {
	Model
	UserID  uint `gorm:"index:idx_user_movie,unique;not null" json:"user_id"`
	MovieID uint `gorm:"index:idx_user_movie,unique;not null" json:"movie_id"`
	Rating  int  `gorm:"not null" json:"rating"`
}

func (UserRating) TableName() string {
	return "t_user_rating"
}

// RatingInRange reports whether v is within the accepted 1..5 scale.
func RatingInRange(v int) bool {
	return v >= RatingMin && v <= RatingMax
}
