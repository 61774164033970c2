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

	"filmrate/api/model"
	"filmrate/api/repository"
	"filmrate/pkg/frerrors"
	"filmrate/pkg/log"

	"gorm.io/gorm"
)

// RatingService owns user ratings. User-facing operations are keyed by
// (user, movie): a user's rating of a movie is unique. Admin moderation
// addresses any rating directly by its id.
type RatingService interface {
	Add(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error)
	Update(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error)
	DeleteOwn(ctx context.Context, userID, movieID uint) error

	// DeleteByID removes any user's rating, by rating id.
	DeleteByID(ctx context.Context, id uint) error
}

var _ RatingService = (*ratingServiceImpl)(nil)

type ratingServiceImpl struct {
	db           *gorm.DB
	ratingRepo   repository.RatingRepository
	movieRepo    repository.MovieRepository
	movieService MovieService
	logger       *log.Logger
}

func NewRatingService(db *gorm.DB, movieService MovieService) RatingService {
	return &ratingServiceImpl{
		db:           db,
		ratingRepo:   repository.NewRatingRepository(db),
		movieRepo:    repository.NewMovieRepository(db),
		movieService: movieService,
		logger:       log.NewLogger(log.Loglevel, "rating-service"),
	}
}

func (s *ratingServiceImpl) Add(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error) {
	if !model.RatingInRange(rating) {
		return nil, frerrors.ErrRatingRange
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, frerrors.ErrMovieNotFound
		}
		return nil, err
	}

	if _, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID); err == nil {
		return nil, frerrors.ErrRatingExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	r := &model.UserRating{UserID: userID, MovieID: movieID, Rating: rating}
	if err := s.ratingRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.movieService.InvalidateCache(ctx, movieID)
	return r, nil
}

func (s *ratingServiceImpl) Update(ctx context.Context, userID, movieID uint, rating int) (*model.UserRating, error) {
	if !model.RatingInRange(rating) {
		return nil, frerrors.ErrRatingRange
	}

	r, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, frerrors.ErrRatingNotFound
		}
		return nil, err
	}

	r.Rating = rating
	if err := s.ratingRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.movieService.InvalidateCache(ctx, movieID)
	return r, nil
}

func (s *ratingServiceImpl) DeleteOwn(ctx context.Context, userID, movieID uint) error {
	r, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return frerrors.ErrRatingNotFound
		}
		return err
	}

	if err := s.ratingRepo.DeleteByID(ctx, r.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return frerrors.ErrRatingNotFound
		}
		return err
	}

	s.movieService.InvalidateCache(ctx, movieID)
	return nil
}

func (s *ratingServiceImpl) DeleteByID(ctx context.Context, id uint) error {
	r, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return frerrors.ErrRatingNotFound
		}
		return err
	}

	if err := s.ratingRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return frerrors.ErrRatingNotFound
		}
		return err
	}

	s.movieService.InvalidateCache(ctx, r.MovieID)
	s.logger.Infof("moderated rating %d (movie=%d user=%d)", id, r.MovieID, r.UserID)
	return nil
}
