package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string `env:"PORT,                 default=5050"`
	Env            string `env:"ENV,                  default=development"`
	LogLevel       string `env:"LOG_LEVEL,            default=info"`
	CORSOrigins    string `env:"CORS_ALLOWED_ORIGINS, default=*"`
	PasswordHasher string `env:"PASSWORD_HASHER,      default=bcrypt"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	SMTP      SMTPConfig
	Notify    NotifyConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// RedisConfig is optional. An empty Addr disables rate limiting.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=1m"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM"`
}

type NotifyConfig struct {
	To      string `env:"CONTACT_NOTIFY_TO"`
	Workers int    `env:"NOTIFY_WORKERS, default=4"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence over .env.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
