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

// Role is a closed enumeration, never a free-form string.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// User holds a local account. Passwords are stored as given; hashing is
// out of scope for this service.
type User struct {
	Model
	ExternalID string       `gorm:"column:external_id;size:36;uniqueIndex" json:"external_id"`
	Username   string       `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Password   string       `gorm:"size:64;not null" json:"-"`
	Role       Role         `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Ratings    []UserRating `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

func (User) TableName() string {
	return "t_user"
}
