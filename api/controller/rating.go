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

	"filmrate/api/model"
	"filmrate/api/service"
	"filmrate/pkg/log"
)

type RatingController struct {
	logger        *log.Logger
	ratingService service.RatingService
}

func NewRatingController(ratingService service.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
		logger:        log.NewLogger(log.Loglevel, "rating-controller"),
	}
}

func (r *RatingController) Add(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error) {
	return r.ratingService.Add(ctx, userID, movieID, rating)
}

func (r *RatingController) Update(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error) {
	return r.ratingService.Update(ctx, userID, movieID, rating)
}

func (r *RatingController) DeleteOwn(ctx context.Context, userID, movieID uint) error {
	return r.ratingService.DeleteOwn(ctx, userID, movieID)
}

func (r *RatingController) DeleteByID(ctx context.Context, id uint) error {
	return r.ratingService.DeleteByID(ctx, id)
}
