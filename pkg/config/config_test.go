package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lphash.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 16, cfg.Capacity)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "Command: ", cfg.Prompt)
	require.False(t, cfg.Metrics)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
capacity = 64
log_level = "debug"
prompt = "> "
metrics = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, &Config{Capacity: 64, LogLevel: "debug", Prompt: "> ", Metrics: true}, cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "capacity = 64\n")
	t.Setenv(EnvCapacity, "8")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvPrompt, "lp> ")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Capacity)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "lp> ", cfg.Prompt)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "capacity = \"lots\"\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "colour = \"blue\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "colour")

	_, err = Load(writeConfig(t, "capacity = 0\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "log_level = \"chatty\"\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	cfg.Capacity = -1
	require.Error(t, cfg.Validate())
}
