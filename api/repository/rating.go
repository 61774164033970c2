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

package repository

import (
	"context"

	"filmrate/api/model"

	"gorm.io/gorm"
)

type RatingRepository interface {
	GetByID(ctx context.Context, id uint) (*model.UserRating, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID uint) (*model.UserRating, error)

	Create(ctx context.Context, rating *model.UserRating) error
	Update(ctx context.Context, rating *model.UserRating) error
	// DeleteByID removes a rating by primary key; reports
	// gorm.ErrRecordNotFound when no row was deleted.
	DeleteByID(ctx context.Context, id uint) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByID(ctx context.Context, id uint) (*model.UserRating, error) {
	var rating model.UserRating
	err := r.db.WithContext(ctx).First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndMovie(ctx context.Context, userID, movieID uint) (*model.UserRating, error) {
	var rating model.UserRating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.UserRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *model.UserRating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) DeleteByID(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&model.UserRating{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
