package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/reviewsdb/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Database credentials used inside throwaway containers.
const (
	ContainerDatabase = "reviewsdb"
	ContainerUser     = "reviews"
	ContainerPassword = "reviews-password"
)

// DatabaseContainer is a running database server and the configuration that
// reaches it from the host.
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container.
func (d *DatabaseContainer) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

type engine struct {
	port     string
	ready    string
	dataDir  string
	env      map[string]string
	dbType   string
	fallback string
}

var engines = map[string]engine{
	"postgres": {
		port:    "5432/tcp",
		ready:   "database system is ready to accept connections",
		dataDir: "/var/lib/postgresql/data",
		env: map[string]string{
			"POSTGRES_DB":       ContainerDatabase,
			"POSTGRES_USER":     ContainerUser,
			"POSTGRES_PASSWORD": ContainerPassword,
		},
		dbType:   "postgres",
		fallback: "postgres:17-alpine",
	},
	"mysql": {
		port:    "3306/tcp",
		ready:   "ready for connections",
		dataDir: "/var/lib/mysql",
		env: map[string]string{
			"MYSQL_ROOT_PASSWORD": ContainerPassword,
			"MYSQL_DATABASE":      ContainerDatabase,
			"MYSQL_USER":          ContainerUser,
			"MYSQL_PASSWORD":      ContainerPassword,
		},
		dbType:   "mysql",
		fallback: "mysql:8.4",
	},
	"mariadb": {
		port:    "3306/tcp",
		ready:   "ready for connections",
		dataDir: "/var/lib/mysql",
		env: map[string]string{
			"MARIADB_ROOT_PASSWORD": ContainerPassword,
			"MARIADB_DATABASE":      ContainerDatabase,
			"MARIADB_USER":          ContainerUser,
			"MARIADB_PASSWORD":      ContainerPassword,
		},
		dbType:   "mariadb",
		fallback: "mariadb:11",
	},
}

// DefaultImage returns the image used for dbType when none is given.
func DefaultImage(dbType string) string {
	return engines[dbType].fallback
}

// StartDatabase starts a database server of dbType (postgres, mysql or
// mariadb) from img and waits until it accepts connections. The data
// directory lives on tmpfs.
func StartDatabase(ctx context.Context, dbType, img string) (*DatabaseContainer, error) {
	eng, ok := engines[dbType]
	if !ok {
		return nil, fmt.Errorf("no container support for database type %q", dbType)
	}
	if img == "" {
		img = eng.fallback
	}

	if exists, err := imageExists(ctx, img); err == nil && !exists {
		log.Printf("Image %s does not exist locally, pulling...", img)
	}

	port := nat.Port(eng.port)
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        img,
			ExposedPorts: []string{string(port)},
			Env:          eng.env,
			HostConfigModifier: func(hostConfig *container.HostConfig) {
				hostConfig.Tmpfs = map[string]string{eng.dataDir: "rw"}
			},
			WaitingFor: wait.ForAll(
				wait.ForLog(eng.ready).WithOccurrence(2),
				wait.ForListeningPort(port),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", img, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	return &DatabaseContainer{
		Container: c,
		Config: &config.Config{
			DBType:            eng.dbType,
			DBHost:            host,
			DBPort:            mapped.Port(),
			DBDatabase:        ContainerDatabase,
			DBUser:            ContainerUser,
			DBPassword:        ContainerPassword,
			DBConnectionLimit: 5,
			LogLevel:          "warn",
			Environment:       config.EnvTesting,
			ServiceName:       "reviewsdb",
			BcryptCost:        4,
		},
	}, nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}
