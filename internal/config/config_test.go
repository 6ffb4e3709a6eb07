package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[arena]
aspect = 1.5
cutscene = true

[simulation]
tick_rate = "20ms"
seed = 42

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(1.5), cfg.Arena.Aspect)
	assert.True(t, cfg.Arena.Cutscene)
	assert.Equal(t, 20*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Workers, "default kept")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "default kept")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[simulation]\nworkers = 0\n"))
	assert.ErrorContains(t, err, "workers")

	_, err = Load(writeConfig(t, "[arena]\naspect = -1.0\n"))
	assert.ErrorContains(t, err, "aspect")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "[arena\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().validate())
}
