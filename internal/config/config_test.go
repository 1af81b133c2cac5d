package config

import (
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/echoer/internal/model"
	"github.com/daryltucker/echoer/internal/output"
)

func envOf(vars map[string]string) model.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(envOf(map[string]string{EnvLogLevel: "", EnvColor: ""}))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, output.ColorAuto, cfg.Color)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(envOf(map[string]string{
		EnvLogLevel: "debug",
		EnvColor:    "Always",
	}))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, output.ColorAlways, cfg.Color)
}

func TestLoadNoColorWins(t *testing.T) {
	cfg, err := Load(envOf(map[string]string{
		EnvColor:   "always",
		EnvNoColor: "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, output.ColorNever, cfg.Color)

	cfg, err = Load(envOf(map[string]string{EnvNoColor: ""}))
	require.NoError(t, err)
	assert.Equal(t, output.ColorAuto, cfg.Color)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(envOf(map[string]string{EnvLogLevel: "loud"}))
	var aggErr env.AggregateError
	require.ErrorAs(t, err, &aggErr)
	assert.ErrorContains(t, err, "LogLevel")
	assert.ErrorContains(t, err, "loud")

	_, err = Load(envOf(map[string]string{EnvColor: "rainbow"}))
	require.ErrorAs(t, err, &aggErr)
	assert.ErrorContains(t, err, "rainbow")
}

func TestLoadReadsOnlyKnownKeys(t *testing.T) {
	var asked []string
	_, err := Load(func(name string) (string, bool) {
		asked = append(asked, name)
		return "", false
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{EnvLogLevel, EnvColor, EnvNoColor}, asked)
}
