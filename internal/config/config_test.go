package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/config"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.LedgerTTL)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
	assert.Equal(t, "https://www.dnd5eapi.co/api", cfg.DND5E.BaseURL)
	assert.Equal(t, time.Hour, cfg.DND5E.CacheTTL)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.UseRedis())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("LEDGER_TTL", "90m")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 90*time.Minute, cfg.Redis.LedgerTTL)
	assert.Equal(t, int64(42), cfg.Dice.Seed)
	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DICE_SEED=7\nREDIS_DB=3\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DICE_SEED")
		_ = os.Unsetenv("REDIS_DB")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Dice.Seed)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative db", key: "REDIS_DB", value: "-1"},
		{name: "zero ledger ttl", key: "LEDGER_TTL", value: "0s"},
		{name: "unparseable ttl", key: "LEDGER_TTL", value: "soon"},
		{name: "unknown level", key: "LOG_LEVEL", value: "loud"},
		{name: "unknown format", key: "LOG_FORMAT", value: "xml"},
		{name: "bad seed", key: "DICE_SEED", value: "lucky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
