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

package service

import (
	"context"
	"errors"

	"filmrate/api/dto"
	"filmrate/api/model"
	"filmrate/api/repository"
	"filmrate/api/vo"
	"filmrate/pkg/frerrors"
	"filmrate/pkg/log"

	"gorm.io/gorm"
)

// UserService owns accounts: signup, login and the identity lookups the
// auth filter depends on.
type UserService interface {
	Register(ctx context.Context, u *dto.UserDto) (*model.User, error)
	Login(ctx context.Context, u *dto.UserDto) (*vo.TokenVo, error)

	// GetByUsername re-fetches the identity behind a verified token. A
	// structurally valid token may name a since-deleted account, so the
	// not-found case is its own error, distinct from token errors.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// EnsureAdmin upserts a seeded administrator account.
	EnsureAdmin(ctx context.Context, username, password string) error
}

var _ UserService = (*userServiceImpl)(nil)

type userServiceImpl struct {
	db           *gorm.DB
	tokenService TokenService
	userRepo     repository.UserRepository
	logger       *log.Logger
}

func NewUserService(db *gorm.DB, tokenService TokenService) UserService {
	return &userServiceImpl{
		db:           db,
		tokenService: tokenService,
		userRepo:     repository.NewUserRepository(db),
		logger:       log.NewLogger(log.Loglevel, "user-service"),
	}
}

// Register creates a new plain user. The admin role is never assigned here.
func (u *userServiceImpl) Register(ctx context.Context, d *dto.UserDto) (*model.User, error) {
	if d.Username == "" {
		return nil, frerrors.ErrMissingIdentity
	}
	if d.Password == "" {
		return nil, frerrors.ErrPasswordRequired
	}

	if _, err := u.userRepo.GetByUsername(ctx, d.Username); err == nil {
		return nil, frerrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.User{
		Username: d.Username,
		Password: d.Password,
		Role:     model.RoleUser,
	}
	if err := u.userRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	u.logger.Infof("registered user %s", e.Username)
	return e, nil
}

// Login checks the credentials against the store and issues a token.
func (u *userServiceImpl) Login(ctx context.Context, d *dto.UserDto) (*vo.TokenVo, error) {
	user, err := u.userRepo.GetByUsername(ctx, d.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, frerrors.ErrInvalidPassword
		}
		return nil, err
	}

	if user.Password != d.Password {
		return nil, frerrors.ErrInvalidPassword
	}

	token, expiresAt, err := u.tokenService.Generate(user.Username)
	if err != nil {
		return nil, err
	}

	return &vo.TokenVo{Token: token, ExpiresAt: expiresAt}, nil
}

func (u *userServiceImpl) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, frerrors.ErrIdentityNotFound
		}
		return nil, err
	}
	return user, nil
}

func (u *userServiceImpl) EnsureAdmin(ctx context.Context, username, password string) error {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return u.userRepo.Create(ctx, &model.User{
			Username: username,
			Password: password,
			Role:     model.RoleAdmin,
		})
	}

	if user.Role == model.RoleAdmin && user.Password == password {
		return nil
	}
	user.Role = model.RoleAdmin
	user.Password = password
	return u.userRepo.Update(ctx, user)
}
