package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Game.Cutoff)
	assert.Equal(t, 30, cfg.Game.After)
	assert.Len(t, cfg.Game.Symbols, 25)
	assert.Equal(t, "0 0 * * *", cfg.Game.ResetCron)

	assert.InDelta(t, 50000, cfg.Practice.StartBalance, 1e-9)
	assert.InDelta(t, 2500, cfg.Practice.ProfitTarget, 1e-9)
	assert.InDelta(t, -2500, cfg.Practice.MaxDrawdown, 1e-9)

	assert.Len(t, cfg.Data.Symbols, 100)
	assert.Equal(t, 25, cfg.Data.MaxNewPerDay)
	assert.Equal(t, "stockify.db", cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
game:
  cutoff: 90
practice:
  start_balance: 10000
storage:
  dsn: ":memory:"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Game.Cutoff)
	assert.InDelta(t, 10000, cfg.Practice.StartBalance, 1e-9)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys still default.
	assert.Equal(t, 30, cfg.Game.After)
	assert.InDelta(t, 2500, cfg.Practice.ProfitTarget, 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ALPHAVANTAGE_API_KEY", "test-key")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Data.APIKey)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
