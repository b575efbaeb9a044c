package topology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultTopology(t *testing.T) {
	c := Default("aidan", "aidan", "solver")
	require.Len(t, c.Services, 2)

	redis, ok := c.Services[RedisService]
	require.True(t, ok)
	assert.Equal(t, []string{"6379:6379"}, redis.Ports)
	assert.Empty(t, redis.Environment)
	assert.Empty(t, redis.Volumes)
	assert.Nil(t, redis.HealthCheck)

	pg, ok := c.Services[PostgresService]
	require.True(t, ok)
	assert.Equal(t, []string{"5432:5432"}, pg.Ports)
	assert.Equal(t, []string{
		"POSTGRES_USER=aidan",
		"POSTGRES_PASSWORD=aidan",
		"POSTGRES_DB=solver",
	}, pg.Environment)
	assert.Equal(t, []string{"./db/pgdata:/var/lib/postgresql/data"}, pg.Volumes)

	require.NotNil(t, pg.HealthCheck)
	assert.Equal(t, []string{"CMD-SHELL", "pg_isready -U aidan"}, pg.HealthCheck.Test)
	assert.Equal(t, "10s", pg.HealthCheck.Interval)
	assert.Equal(t, "5s", pg.HealthCheck.Timeout)
	assert.Equal(t, 5, pg.HealthCheck.Retries)
}

func TestRenderRoundTrip(t *testing.T) {
	b, err := Render(Default("aidan", "pw", "solver"))
	require.NoError(t, err)

	var got Compose
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, Default("aidan", "pw", "solver"), got)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev", "docker-compose.yml")
	require.NoError(t, Write(path, Default("aidan", "aidan", "solver")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "pg_isready -U aidan")
	assert.Contains(t, string(b), "6379:6379")
}
