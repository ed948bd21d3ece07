// health.go
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

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/localnerve/reviewsdb/internal/config"
	"github.com/localnerve/reviewsdb/internal/database"
	"github.com/localnerve/reviewsdb/internal/utils"
	"gorm.io/gorm"
)

type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed.
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, log *slog.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Server databases are dialed first so an unreachable host reports
	// quickly instead of waiting on the pool.
	if cfg.DBType != "sqlite" {
		if err := utils.PingDatabase(cfg.DBHost, cfg.DBPort); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_host_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database host unreachable: %v", err)
			log.Error("health check failed", "check", "database_host", "error", err)
			return result
		}
	}

	if err := database.Ping(ctx, db); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Error("health check failed", "check", "database_ping", "error", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase
	log.Debug("health check passed")

	return result
}
