package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	JWTKey   string `env:"JWT_KEY"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host           string        `env:"DB_HOST,            default=localhost"`
	Port           string        `env:"DB_PORT,            default=5432"`
	User           string        `env:"DB_USER,            default=root"`
	Password       string        `env:"DB_PASSWORD,        default=root"`
	DBName         string        `env:"DB_NAME,            default=Akkor"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
