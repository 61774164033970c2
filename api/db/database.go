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

package db

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"filmrate/api/model"
	"filmrate/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
	lock sync.Mutex
)

// GetDB opens the database once and hands out the shared handle.
func GetDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	lock.Lock()
	defer lock.Unlock()
	if db != nil {
		return db, nil
	}

	var err error
	once.Do(func() {
		db, err = Open(cfg)
	})

	return db, err
}

// Open connects and migrates the schema. Exposed separately so tests can
// run against their own in-memory sqlite handle.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	newLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: time.Second,
		LogLevel:      logger.Warn,
		Colorful:      true,
	})

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := conn.AutoMigrate(&model.User{}, &model.Movie{}, &model.UserRating{}); err != nil {
		return nil, err
	}

	return conn, nil
}
