package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env          string
	DatabaseDSN  string
	DatabaseEcho bool
	LogLevel     string
}

func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("APP_ENV", EnvProd),
		DatabaseDSN: getEnv("DATABASE_DSN", "database.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	echo, err := getEnvAsBool("DATABASE_ECHO", false)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseEcho = echo

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("APP_ENV must be one of %s, %s, %s (got %q)", EnvLocal, EnvDev, EnvProd, cfg.Env)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
