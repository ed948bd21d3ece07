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
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/reviewsdb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "type", "", "database type: postgres, mysql or mariadb (default DB_TYPE)")
	var imageName string
	flag.StringVar(&imageName, "image", "", "container image (default DB_IMAGE, then a stock image)")
	flag.Parse()

	usage := `
Run a throwaway database server for reviewsdb and print the settings that reach it.

Usage:

devdb [-h] [-f ENV_FILE_PATH] [-type DB_TYPE] [-image IMAGE]

ENV_FILE_PATH: path to a .env file supplying DB_TYPE and DB_IMAGE

example
  devdb -type postgres -image postgres:17-alpine
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}
	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if dbType == "" {
		dbType = "postgres"
	}
	if imageName == "" {
		imageName = os.Getenv("DB_IMAGE")
	}

	ctx := context.Background()
	dc, err := testutil.StartDatabase(ctx, dbType, imageName)
	if err != nil {
		log.Fatalf("Failed to start database container: %v\n", err)
	}

	cfg := dc.Config
	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	log.Printf("Received signal: %v, terminating database container...\n", sig)
	if err := dc.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate database container: %v\n", err)
	}
}
