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

type MovieController struct {
	logger       *log.Logger
	movieService service.MovieService
}

func NewMovieController(movieService service.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
		logger:       log.NewLogger(log.Loglevel, "movie-controller"),
	}
}

func (m *MovieController) Add(ctx context.Context, d *dto.MovieDto) (*model.Movie, error) {
	return m.movieService.Add(ctx, d)
}

func (m *MovieController) Get(ctx context.Context, id uint) (*vo.MovieVo, error) {
	return m.movieService.Get(ctx, id)
}

func (m *MovieController) List(ctx context.Context) ([]*vo.MovieVo, error) {
	return m.movieService.List(ctx)
}
