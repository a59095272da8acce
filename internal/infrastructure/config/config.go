package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Bootstrap admin account, created on startup if missing.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@ong.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=123456"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// StoreLatency adds an artificial delay to every collection read and
	// write. Zero disables it; demo environments set it to exercise the
	// loading states of the frontend.
	StoreLatency time.Duration `env:"STORE_LATENCY, default=0"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ngo_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
