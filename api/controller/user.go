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

package controller

import (
	"context"

	"filmrate/api/dto"
	"filmrate/api/model"
	"filmrate/api/service"
	"filmrate/api/vo"
	"filmrate/pkg/log"
)

type UserController struct {
	logger      *log.Logger
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
		logger:      log.NewLogger(log.Loglevel, "user-controller"),
	}
}

func (u *UserController) Register(ctx context.Context, d *dto.UserDto) (*model.User, error) {
	return u.userService.Register(ctx, d)
}

func (u *UserController) Login(ctx context.Context, d *dto.UserDto) (*vo.TokenVo, error) {
	return u.userService.Login(ctx, d)
}

func (u *UserController) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.userService.GetByUsername(ctx, username)
}
