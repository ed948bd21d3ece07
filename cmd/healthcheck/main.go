// main.go
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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/localnerve/reviewsdb/internal/config"
	"github.com/localnerve/reviewsdb/internal/database"
	"github.com/localnerve/reviewsdb/internal/logger"
	"github.com/localnerve/reviewsdb/internal/services"
)

func main() {
	os.Exit(run(os.Stdout))
}

func run(out io.Writer) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Storage logs go to stderr so stdout stays JSON
	log := logger.NewWithWriter(os.Stderr, "error", cfg.ServiceName)

	db, err := database.Connect(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return 1
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := services.HealthCheck(ctx, cfg, db, log)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal health check result: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, string(output))

	if !result.Healthy() {
		return 1
	}
	return 0
}
