package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"wordsolver/internal/utils"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Dict     DictConfig     `yaml:"dict"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	SwaggerAddr string `yaml:"swagger_addr"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr      string        `yaml:"addr"`
	ResultTTL time.Duration `yaml:"result_ttl"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
	Retries  int           `yaml:"retries"`
}

type DictConfig struct {
	Path         string `yaml:"path"`
	SnapshotPath string `yaml:"snapshot_path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:  "127.0.0.1:8080",
			SwaggerAddr: ":8081",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "aidan",
			Password: "aidan",
			Name:     "solver",
		},
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			ResultTTL: 10 * time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Monitor: MonitorConfig{
			Interval: 10 * time.Second,
			Timeout:  5 * time.Second,
			Retries:  5,
		},
		Dict: DictConfig{
			Path:         utils.DefaultDictPath,
			SnapshotPath: utils.DictSnapshotPath,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the yaml config file if present, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Database.Port = p
		}
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("SOLVERD_JWT_SECRET"); v != "" {
		c.Auth.Secret = v
	}
	if v := os.Getenv("SOLVERD_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
}

func (c *Config) Validate() error {
	if c.Database.User == "" {
		return fmt.Errorf("database user must not be empty")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database name must not be empty")
	}
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor interval must be > 0")
	}
	if c.Monitor.Timeout <= 0 {
		return fmt.Errorf("monitor timeout must be > 0")
	}
	if c.Monitor.Retries <= 0 {
		return fmt.Errorf("monitor retries must be > 0")
	}
	return nil
}

// DSN builds the Postgres connection string for pgx.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
