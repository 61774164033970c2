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

package http

import (
	"context"
	"time"

	"filmrate/api/controller"
	"filmrate/api/metrics"
	"filmrate/api/model"
	"filmrate/api/service"
	"filmrate/internal/config"
	"filmrate/pkg/log"
	"filmrate/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server is the main server struct.
type Server struct {
	*gin.Engine
	logger *log.Logger
	listen string

	tokener     service.TokenService
	userService service.UserService

	userController   *controller.UserController
	movieController  *controller.MovieController
	ratingController *controller.RatingController

	initAdmins []config.AdminConfig
}

// ServerConfig is the server configuration.
type ServerConfig struct {
	Cfg *config.Config
	DB  *gorm.DB
	Rdb *redis.Client
}

// NewServer wires services, controllers and routes. The signing secret
// is read from config exactly once here and never exposed again.
func NewServer(cfg *ServerConfig) *Server {
	tokener := service.NewTokenService(
		[]byte(cfg.Cfg.JWT.Secret),
		time.Duration(cfg.Cfg.JWT.ExpireMinutes)*time.Minute,
	)
	userService := service.NewUserService(cfg.DB, tokener)
	movieService := service.NewMovieService(cfg.DB, cfg.Rdb)
	ratingService := service.NewRatingService(cfg.DB, movieService)

	s := &Server{
		Engine:           gin.Default(),
		logger:           log.NewLogger(log.Loglevel, "api-server"),
		listen:           cfg.Cfg.App.Listen,
		tokener:          tokener,
		userService:      userService,
		userController:   controller.NewUserController(userService),
		movieController:  controller.NewMovieController(movieService),
		ratingController: controller.NewRatingController(ratingService),
		initAdmins:       cfg.Cfg.App.InitAdmins,
	}

	s.initRoute(cfg.Cfg.Metrics.Enabled)

	return s
}

func (s *Server) initRoute(metricsEnabled bool) {
	if metricsEnabled {
		s.Use(metrics.Middleware())
		s.GET("/metrics", metrics.Handler())
	}

	// public
	s.POST("/auth/signup", s.signup())
	s.POST("/auth/login", s.login())
	s.GET("/movies", s.listMovies())
	s.GET("/movies/:id", s.getMovie())

	// authenticated users
	s.POST("/add-rating/:id", s.authFilter(model.RoleUser), s.addRating())
	s.PUT("/update-rating/:id", s.authFilter(), s.updateRating())
	s.DELETE("/delete-rating/:id", s.authFilter(), s.deleteOwnRating())

	// admin
	admin := s.Group("/admin", s.authFilter(model.RoleAdmin))
	admin.POST("/add-movie", s.addMovie())
	admin.DELETE("/delete-rating/:id", s.deleteAnyRating())

	s.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
}

// SeedAdmins upserts the administrator accounts from config. Signup can
// only create plain users, so this is how an admin comes to exist.
func (s *Server) SeedAdmins(ctx context.Context) error {
	for _, admin := range s.initAdmins {
		if admin.Username == "" || admin.Password == "" {
			continue
		}
		if err := s.userService.EnsureAdmin(ctx, admin.Username, admin.Password); err != nil {
			return err
		}
		s.logger.Infof("seeded admin account %s", admin.Username)
	}
	return nil
}

func (s *Server) Start() error {
	return s.Run(s.listen)
}
