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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"filmrate/api/dto"
	"filmrate/api/model"
	"filmrate/api/repository"
	"filmrate/api/vo"
	"filmrate/pkg/frerrors"
	"filmrate/pkg/log"
	"filmrate/pkg/redis"

	"gorm.io/gorm"
)

const (
	movieListKey  = "movies:all"
	movieKeyFmt   = "movies:%d"
	movieCacheTTL = 5 * time.Minute
)

// MovieService owns the catalog. Reads go through the redis cache when one
// is configured; every catalog or rating mutation invalidates it.
type MovieService interface {
	Add(ctx context.Context, d *dto.MovieDto) (*model.Movie, error)
	Get(ctx context.Context, id uint) (*vo.MovieVo, error)
	List(ctx context.Context) ([]*vo.MovieVo, error)

	// InvalidateCache drops cached movie views. Rating mutations call
	// this too, since ratings are embedded in the movie views.
	InvalidateCache(ctx context.Context, movieIDs ...uint)
}

var _ MovieService = (*movieServiceImpl)(nil)

type movieServiceImpl struct {
	db        *gorm.DB
	rdb       *redis.Client
	movieRepo repository.MovieRepository
	logger    *log.Logger
}

// NewMovieService creates the catalog service. rdb may be nil, which
// disables caching.
func NewMovieService(db *gorm.DB, rdb *redis.Client) MovieService {
	return &movieServiceImpl{
		db:        db,
		rdb:       rdb,
		movieRepo: repository.NewMovieRepository(db),
		logger:    log.NewLogger(log.Loglevel, "movie-service"),
	}
}

func (m *movieServiceImpl) Add(ctx context.Context, d *dto.MovieDto) (*model.Movie, error) {
	movie := &model.Movie{Title: d.Title}
	if err := m.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	m.InvalidateCache(ctx)
	m.logger.Infof("added movie %q (id=%d)", movie.Title, movie.ID)
	return movie, nil
}

func (m *movieServiceImpl) Get(ctx context.Context, id uint) (*vo.MovieVo, error) {
	key := fmt.Sprintf(movieKeyFmt, id)
	if cached, ok := m.cacheGet(ctx, key); ok {
		var v vo.MovieVo
		if err := json.Unmarshal([]byte(cached), &v); err == nil {
			return &v, nil
		}
	}

	movie, err := m.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, frerrors.ErrMovieNotFound
		}
		return nil, err
	}

	v := toMovieVo(movie)
	m.cacheSet(ctx, key, v)
	return v, nil
}

func (m *movieServiceImpl) List(ctx context.Context) ([]*vo.MovieVo, error) {
	if cached, ok := m.cacheGet(ctx, movieListKey); ok {
		var vs []*vo.MovieVo
		if err := json.Unmarshal([]byte(cached), &vs); err == nil {
			return vs, nil
		}
	}

	movies, err := m.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	vs := make([]*vo.MovieVo, 0, len(movies))
	for _, movie := range movies {
		vs = append(vs, toMovieVo(movie))
	}
	m.cacheSet(ctx, movieListKey, vs)
	return vs, nil
}

func (m *movieServiceImpl) InvalidateCache(ctx context.Context, movieIDs ...uint) {
	if m.rdb == nil {
		return
	}
	keys := []string{movieListKey}
	for _, id := range movieIDs {
		keys = append(keys, fmt.Sprintf(movieKeyFmt, id))
	}
	if err := m.rdb.Del(ctx, keys...); err != nil {
		m.logger.Warningf("cache invalidation failed: %v", err)
	}
}

func (m *movieServiceImpl) cacheGet(ctx context.Context, key string) (string, bool) {
	if m.rdb == nil {
		return "", false
	}
	val, err := m.rdb.Get(ctx, key)
	if err != nil {
		if !redis.IsNil(err) {
			m.logger.Warningf("cache read failed: %v", err)
		}
		return "", false
	}
	return val, true
}

func (m *movieServiceImpl) cacheSet(ctx context.Context, key string, v any) {
	if m.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := m.rdb.SetWithExpire(ctx, key, string(data), movieCacheTTL); err != nil {
		m.logger.Warningf("cache write failed: %v", err)
	}
}

func toMovieVo(movie *model.Movie) *vo.MovieVo {
	v := &vo.MovieVo{
		ID:      movie.ID,
		Title:   movie.Title,
		Ratings: make([]vo.RatingVo, 0, len(movie.Ratings)),
	}
	for _, r := range movie.Ratings {
		v.Ratings = append(v.Ratings, vo.RatingVo{
			ID:      r.ID,
			UserID:  r.UserID,
			MovieID: r.MovieID,
			Rating:  r.Rating,
		})
	}
	return v
}
