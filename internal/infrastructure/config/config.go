package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BcryptCost is the adaptive cost of password hashing. Higher is slower
	// and stronger; logins block for tens of milliseconds by design.
	BcryptCost int `env:"BCRYPT_COST, default=12"`

	JWT   JWTConfig
	Login LoginConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig supplies the signing secret and token parameters. Loaded once at
// startup and immutable for the process lifetime.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	TTL      time.Duration `env:"JWT_TTL,      default=24h"`
	Issuer   string        `env:"JWT_ISSUER,   default=inventory-api"`
	Audience string        `env:"JWT_AUDIENCE, default=inventory-api-clients"`
}

// LoginConfig tunes the per-username login attempt limiter.
type LoginConfig struct {
	MaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=inventory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces settings that must hold before serving traffic.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" && c.Env != "development" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%s", c.Env)
	}
	return nil
}
