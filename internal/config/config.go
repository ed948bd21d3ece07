// config.go
//
// A relational customer, item and review data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of reviewsdb.
// reviewsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// reviewsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with reviewsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string `conf:"default:5555,env:PORT"`

	// Database configuration
	DBType            string `conf:"default:sqlite,env:DB_TYPE"` // mysql, mariadb, postgres, sqlite, sqlserver
	DBHost            string `conf:"default:localhost,env:DB_HOST"`
	DBPort            string `conf:"env:DB_PORT"`
	DBDatabase        string `conf:"default:app.db,env:DB_DATABASE"`
	DBUser            string `conf:"env:DB_USER"`
	DBPassword        string `conf:"env:DB_PASSWORD,noprint"`
	DBConnectionLimit int    `conf:"default:5,env:DB_CONNECTION_LIMIT"`

	// Application
	LogLevel           string `conf:"default:info,env:LOG_LEVEL"`
	Environment        string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`
	ServiceName        string `conf:"default:reviewsdb,env:SERVICE_NAME"`
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Password hashing
	BcryptCost int `conf:"default:10,env:BCRYPT_COST"`
}

// Load loads configuration from the environment, after merging a .env file
// if one is present, and validates it.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPort returns the well known port for a server database type.
func DefaultPort(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return "3306"
	case "postgres", "postgresql":
		return "5432"
	case "sqlserver", "mssql":
		return "1433"
	}
	return ""
}

// Validate checks driver settings and, when ENVIRONMENT=production, enforces
// the production requirements.
func Validate(cfg *Config) error {
	var errs []string

	switch cfg.DBType {
	case "sqlite":
		if cfg.DBDatabase == "" {
			errs = append(errs, "DB_DATABASE is required")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBDatabase == "" {
			errs = append(errs, "DB_DATABASE is required")
		}
		if cfg.DBUser == "" {
			errs = append(errs, "DB_USER is required")
		}
		if cfg.DBHost == "" {
			errs = append(errs, "DB_HOST is required")
		}
		if cfg.DBPort == "" {
			cfg.DBPort = DefaultPort(cfg.DBType)
		}
	default:
		errs = append(errs, fmt.Sprintf("unsupported DB_TYPE %q", cfg.DBType))
	}

	if cfg.DBConnectionLimit < 1 {
		errs = append(errs, "DB_CONNECTION_LIMIT must be at least 1")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Sprintf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Environment == EnvProduction {
		if strings.EqualFold(cfg.LogLevel, "debug") {
			errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
		}
		if cfg.BcryptCost < bcrypt.DefaultCost {
			errs = append(errs, fmt.Sprintf("BCRYPT_COST must be at least %d in production", bcrypt.DefaultCost))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
}

// IsProduction reports whether the service runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
