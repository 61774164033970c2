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
	"testing"

	"filmrate/api/dto"
	"filmrate/pkg/frerrors"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRatingFixture(t *testing.T) (RatingService, MovieService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	movieSvc := NewMovieService(db, nil)
	return NewRatingService(db, movieSvc), movieSvc, db
}

func TestRatingService_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ratingSvc, movieSvc, _ := newRatingFixture(t)

	movie, err := movieSvc.Add(ctx, &dto.MovieDto{Title: "Inception"})
	require.NoError(t, err)

	const userID = 1

	r, err := ratingSvc.Add(ctx, userID, movie.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, r.Rating)

	// out of range
	_, err = ratingSvc.Update(ctx, userID, movie.ID, 6)
	require.ErrorIs(t, err, frerrors.ErrRatingRange)

	r, err = ratingSvc.Update(ctx, userID, movie.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, r.Rating)

	require.NoError(t, ratingSvc.DeleteOwn(ctx, userID, movie.ID))

	// already gone
	err = ratingSvc.DeleteOwn(ctx, userID, movie.ID)
	require.ErrorIs(t, err, frerrors.ErrRatingNotFound)
}

func TestRatingService_AddValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ratingSvc, movieSvc, _ := newRatingFixture(t)

	movie, err := movieSvc.Add(ctx, &dto.MovieDto{Title: "Heat"})
	require.NoError(t, err)

	_, err = ratingSvc.Add(ctx, 1, movie.ID, 0)
	require.ErrorIs(t, err, frerrors.ErrRatingRange)

	_, err = ratingSvc.Add(ctx, 1, 9999, 4)
	require.ErrorIs(t, err, frerrors.ErrMovieNotFound)

	_, err = ratingSvc.Add(ctx, 1, movie.ID, 4)
	require.NoError(t, err)

	// a user rates a movie at most once
	_, err = ratingSvc.Add(ctx, 1, movie.ID, 2)
	require.ErrorIs(t, err, frerrors.ErrRatingExists)

	// a different user may still rate it
	_, err = ratingSvc.Add(ctx, 2, movie.ID, 5)
	require.NoError(t, err)
}

func TestRatingService_AdminDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ratingSvc, movieSvc, _ := newRatingFixture(t)

	movie, err := movieSvc.Add(ctx, &dto.MovieDto{Title: "Alien"})
	require.NoError(t, err)

	r, err := ratingSvc.Add(ctx, 7, movie.ID, 2)
	require.NoError(t, err)

	require.NoError(t, ratingSvc.DeleteByID(ctx, r.ID))
	require.ErrorIs(t, ratingSvc.DeleteByID(ctx, r.ID), frerrors.ErrRatingNotFound)
}

func TestMovieService_GetAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ratingSvc, movieSvc, _ := newRatingFixture(t)

	_, err := movieSvc.Get(ctx, 42)
	require.ErrorIs(t, err, frerrors.ErrMovieNotFound)

	movie, err := movieSvc.Add(ctx, &dto.MovieDto{Title: "Solaris"})
	require.NoError(t, err)

	_, err = ratingSvc.Add(ctx, 1, movie.ID, 4)
	require.NoError(t, err)

	got, err := movieSvc.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Equal(t, "Solaris", got.Title)
	require.Len(t, got.Ratings, 1)
	require.Equal(t, 4, got.Ratings[0].Rating)

	list, err := movieSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
