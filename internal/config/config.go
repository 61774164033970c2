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

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type AppConfig struct {
	Listen     string        `mapstructure:"listen"`
	Name       string        `mapstructure:"name"`
	LogLevel   string        `mapstructure:"log_level"`
	InitAdmins []AdminConfig `mapstructure:"init_admins"`
}

// AdminConfig seeds an administrator account at startup. This is the only
// way an account gets the admin role; signup always produces plain users.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig enables the movie cache when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var (
	GlobalConfig *Config
	once         sync.Once
)

// ErrSecretRequired aborts startup; without a signing secret every issued
// token would be forgeable with a known default.
var ErrSecretRequired = errors.New("jwt.secret is not configured")

// Load reads the yaml config at path and applies env overrides
// (FILMRATE_JWT_SECRET overrides jwt.secret, and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("app.listen", ":8080")
	v.SetDefault("app.name", "filmrate")
	v.SetDefault("app.log_level", "info")
	// every key needs a default so AutomaticEnv can see it during Unmarshal
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_minutes", 30)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "filmrate.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("metrics.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		// config file is optional, env vars can carry everything
		fmt.Printf("Warning: config file %s not found: %v\n", path, err)
	}

	v.SetEnvPrefix("FILMRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, ErrSecretRequired
	}
	return cfg, nil
}

// InitConfig loads the process-wide config exactly once.
func InitConfig(path string) (*Config, error) {
	var loadErr error
	once.Do(func() {
		GlobalConfig, loadErr = Load(path)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if GlobalConfig == nil {
		return nil, errors.New("config not initialized")
	}
	return GlobalConfig, nil
}
