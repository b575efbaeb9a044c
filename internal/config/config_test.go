package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "aidan", cfg.Database.User)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, 5*time.Second, cfg.Monitor.Timeout)
	assert.Equal(t, 5, cfg.Monitor.Retries)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Database, cfg.Database)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("database:\n  host: db.internal\n  port: 5433\n  user: app\n  password: secret\n  name: words\nredis:\n  addr: cache.internal:6379\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("POSTGRES_USER", "aidan")
	t.Setenv("POSTGRES_DB", "solver")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	// env wins over file
	assert.Equal(t, "aidan", cfg.Database.User)
	assert.Equal(t, "solver", cfg.Database.Name)
	// empty env vars do not override
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
}

func TestLoadRejectsBrokenYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{name: "empty user", mutate: func(c *Config) { c.Database.User = "" }, wantErr: true},
		{name: "empty db name", mutate: func(c *Config) { c.Database.Name = "" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.Monitor.Interval = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Monitor.Timeout = 0 }, wantErr: true},
		{name: "zero retries", mutate: func(c *Config) { c.Monitor.Retries = 0 }, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Password = "pw"
	assert.Equal(t, "postgres://aidan:pw@127.0.0.1:5432/solver", cfg.DSN())
}
