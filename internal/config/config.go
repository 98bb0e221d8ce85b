// Package config loads the simulator's settings from the environment
package config

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Dice  DiceConfig
	DND5E DND5EConfig
	Log   LogConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr keeps
// everything in memory.
type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	LedgerTTL time.Duration `env:"LEDGER_TTL" envDefault:"24h"`
}

// DiceConfig holds dice configuration
type DiceConfig struct {
	// Seed makes rolls reproducible. Zero seeds from crypto/rand.
	Seed int64 `env:"DICE_SEED" envDefault:"0"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL  string        `env:"DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api"`
	CacheTTL time.Duration `env:"DND5E_CACHE_TTL" envDefault:"1h"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files, or ./.env when none are named, and then
// parses the environment. Missing files are not an error; variables
// already set win over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read .env file")
		}
		if len(files) > 0 {
			log.Printf("[CONFIG] No .env file at %s, using environment only", strings.Join(files, ", "))
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	if c.Redis.DB < 0 {
		return errors.InvalidArgumentf("REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	if c.Redis.LedgerTTL <= 0 {
		return errors.InvalidArgumentf("LEDGER_TTL must be positive, got %s", c.Redis.LedgerTTL)
	}
	if c.DND5E.BaseURL == "" {
		return errors.InvalidArgument("DND5E_API_URL is required")
	}
	if c.DND5E.CacheTTL < 0 {
		return errors.InvalidArgumentf("DND5E_CACHE_TTL must not be negative, got %s", c.DND5E.CacheTTL)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.InvalidArgumentf("LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// UseRedis reports whether a redis address is configured
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// SlogLevel converts Level to a slog level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.InvalidArgumentf("LOG_LEVEL must be debug, info, warn or error, got %q", l.Level)
}
