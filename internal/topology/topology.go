package topology

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	RedisService    = "redis"
	PostgresService = "postgres"

	PgDataVolume = "./db/pgdata:/var/lib/postgresql/data"
)

// Default declares the two local-dev services the solver depends on: the
// stateless redis cache and the postgres database with durable storage and a
// readiness probe.
func Default(user string, password string, dbName string) Compose {
	return Compose{
		Services: map[string]Service{
			RedisService: {
				Image: "redis:7-alpine",
				Ports: []string{"6379:6379"},
			},
			PostgresService: {
				Image: "postgres:16-alpine",
				Ports: []string{"5432:5432"},
				Environment: []string{
					"POSTGRES_USER=" + user,
					"POSTGRES_PASSWORD=" + password,
					"POSTGRES_DB=" + dbName,
				},
				Volumes: []string{PgDataVolume},
				HealthCheck: &HealthCheck{
					Test:     []string{"CMD-SHELL", "pg_isready -U " + user},
					Interval: "10s",
					Timeout:  "5s",
					Retries:  5,
				},
			},
		},
	}
}

func Render(c Compose) ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("render topology: %w", err)
	}
	return b, nil
}

func Write(path string, c Compose) error {
	b, err := Render(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}
