package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Env            string
	GRPCPort       string
	WebPort        string
	JWTSecret      string
	LogLevel       zerolog.Level
	RateLimitRPS   float64
	RateLimitBurst int
	BcryptCost     int
	SeedDemo       bool
	Location       *time.Location
}

// Load reads .env (if present) and the environment. Variables already set in
// the environment win over .env.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{
		Env:      env("ENV", "development"),
		GRPCPort: env("PORT", "50051"),
		WebPort:  env("WEB_PORT", "8080"),
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	var err error
	if cfg.LogLevel, err = zerolog.ParseLevel(env("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(env("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(env("RATE_LIMIT_BURST", "10")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	// 0 = bcrypt default
	if cfg.BcryptCost, err = strconv.Atoi(env("BCRYPT_COST", "0")); err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	if cfg.SeedDemo, err = strconv.ParseBool(env("SEED_DEMO", "true")); err != nil {
		return nil, fmt.Errorf("SEED_DEMO: %w", err)
	}
	if cfg.Location, err = time.LoadLocation(env("CALENDAR_TZ", "Local")); err != nil {
		return nil, fmt.Errorf("CALENDAR_TZ: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
