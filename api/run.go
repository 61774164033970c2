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

package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmrate/api/db"
	apihttp "filmrate/api/http"
	"filmrate/internal/config"
	"filmrate/pkg/log"
	"filmrate/pkg/redis"

	"golang.org/x/sync/errgroup"
)

// Start loads config, opens the stores and serves the API until the
// process is signalled. logLevel overrides the configured level when
// non-empty.
func Start(configPath, logLevel string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.InitConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logLevel = cfg.App.LogLevel
	}
	log.SetLogLevel(logLevel)
	logger := log.NewLogger(log.Loglevel, "filmrate")

	database, err := db.GetDB(&cfg.Database)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&redis.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	hs := apihttp.NewServer(&apihttp.ServerConfig{
		Cfg: cfg,
		DB:  database,
		Rdb: rdb,
	})

	if err := hs.SeedAdmins(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv := &http.Server{
			Addr:    cfg.App.Listen,
			Handler: hs,
		}

		go func() {
			<-ctx.Done()
			logger.Infof("shutting down API server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logger.Infof("serving on %s", cfg.App.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("exited with error: %v", err)
		return err
	}

	return nil
}
