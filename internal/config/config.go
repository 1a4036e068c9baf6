// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Airports AirportsConfig
	Search   SearchConfig
	Logging  logger.Config
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds the deadline applied to one stay calculation.
type TimeoutConfig struct {
	Calculation time.Duration `env:"TIMEOUT_CALCULATION" envDefault:"5s"`
}

// AirportsConfig selects the airport dataset.
type AirportsConfig struct {
	// Source is "embedded", a .yaml/.yml/.csv path, or an http(s) URL
	Source       string        `env:"AIRPORTS_SOURCE" envDefault:"embedded"`
	FetchTimeout time.Duration `env:"AIRPORTS_FETCH_TIMEOUT" envDefault:"30s"`
}

// SearchConfig bounds airport search results.
type SearchConfig struct {
	DefaultLimit int `env:"SEARCH_DEFAULT_LIMIT" envDefault:"10"`
	MaxLimit     int `env:"SEARCH_MAX_LIMIT" envDefault:"50"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load for main; it panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks every section and reports all problems together.
func validate(cfg *Config) error {
	return errors.Join(
		cfg.Server.validate(),
		cfg.validateTimeouts(),
		cfg.Airports.validate(),
		cfg.Search.validate(),
		validateLogging(cfg.Logging),
		oneOf("APP_ENV", cfg.App.Env, "development", "staging", "production"),
	)
}

func (s ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

func (c *Config) validateTimeouts() error {
	durations := []struct {
		key   string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", c.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"TIMEOUT_CALCULATION", c.Timeouts.Calculation},
		{"AIRPORTS_FETCH_TIMEOUT", c.Airports.FetchTimeout},
	}
	var errs []error
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.key, d.value))
		}
	}
	if c.Timeouts.Calculation > c.Server.WriteTimeout {
		errs = append(errs, fmt.Errorf("TIMEOUT_CALCULATION (%s) must not exceed SERVER_WRITE_TIMEOUT (%s)",
			c.Timeouts.Calculation, c.Server.WriteTimeout))
	}
	return errors.Join(errs...)
}

func (a AirportsConfig) validate() error {
	if strings.TrimSpace(a.Source) == "" {
		return errors.New("AIRPORTS_SOURCE must not be empty")
	}
	return nil
}

func (s SearchConfig) validate() error {
	if s.DefaultLimit < 1 {
		return fmt.Errorf("SEARCH_DEFAULT_LIMIT must be at least 1, got %d", s.DefaultLimit)
	}
	if s.MaxLimit < s.DefaultLimit {
		return fmt.Errorf("SEARCH_MAX_LIMIT (%d) must be at least SEARCH_DEFAULT_LIMIT (%d)", s.MaxLimit, s.DefaultLimit)
	}
	return nil
}

func validateLogging(l logger.Config) error {
	return errors.Join(
		oneOf("LOG_LEVEL", l.Level, "debug", "info", "warn", "error"),
		oneOf("LOG_FORMAT", l.Format, "json", "console"),
	)
}

// oneOf checks value against the allowed set of key.
func oneOf(key, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value)
}
