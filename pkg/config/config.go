// Package config loads process configuration from the environment. A local
// .env file is honored in development; real deployments set variables
// directly.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "5000"
	defaultDBName   = "dashboardDB"
	defaultTokenTTL = 24 * time.Hour
)

// Config is the full process configuration, injected explicitly into the
// components that need it.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	// Production toggles the Secure/SameSite=None cookie attributes.
	Production bool
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

type StripeConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may be set by the deployment.
	_ = godotenv.Load()
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", defaultPort),
			Production: os.Getenv("APP_ENV") == "production",
		},
		Database: DatabaseConfig{
			URI:  os.Getenv("MONGODB_URI"),
			Name: getEnv("DB_NAME", defaultDBName),
		},
		Auth: AuthConfig{
			TokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
			TokenTTL:    defaultTokenTTL,
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
			AllowCredentials: true,
		},
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.Auth.TokenTTL = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
