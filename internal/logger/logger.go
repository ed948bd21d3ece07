// logger.go
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

// Package logger builds the structured slog logger shared by the server, the
// storage layer and the request middleware.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a JSON slog logger writing to stdout at the given level.
func New(level, service string) *slog.Logger {
	return NewWithWriter(os.Stdout, level, service)
}

// NewWithWriter is New with a caller supplied writer.
func NewWithWriter(w io.Writer, level, service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	l := slog.New(slog.NewJSONHandler(w, opts))
	if service != "" {
		l = l.With("service", service)
	}
	return l
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Gorm bridges the storage logger onto l. SQL statements are traced only at
// debug level; slow queries and errors are always reported.
func Gorm(l *slog.Logger, level string) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch ParseLevel(level) {
	case slog.LevelDebug:
		gormLevel = gormlogger.Info
	case slog.LevelError:
		gormLevel = gormlogger.Error
	}

	return gormlogger.New(
		slog.NewLogLogger(l.Handler(), slog.LevelInfo),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  gormLevel,
		},
	)
}

// Middleware logs one line per request with its status and latency.
func Middleware(l *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			attrs = append(attrs, "request_id", id)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			l.Error("request", attrs...)
		case status >= fiber.StatusBadRequest:
			l.Warn("request", attrs...)
		default:
			l.Info("request", attrs...)
		}
		return err
	}
}
