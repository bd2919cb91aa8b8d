package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"ADDR", "LOG_LEVEL", "LOG_FORMAT", "DEFAULT_LOCALE", "VERSION", "CONFIG"} {
		t.Setenv(EnvPrefix+name, "")
		os.Unsetenv(EnvPrefix + name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIREFLY_ADDR", ":9000")
	t.Setenv("FIREFLY_LOG_LEVEL", "debug")
	t.Setenv("FIREFLY_LOG_FORMAT", "console")
	t.Setenv("FIREFLY_DEFAULT_LOCALE", "fr-FR")
	t.Setenv("FIREFLY_VERSION", "v1.2.3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:          ":9000",
		LogLevel:      "debug",
		LogFormat:     "console",
		DefaultLocale: "fr-FR",
		Version:       "v1.2.3",
	}, cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "firefly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\nlogLevel: warn\ndefaultLocale: fr-FR\n"), 0o600))
	t.Setenv(FileEnv, path)
	t.Setenv("FIREFLY_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "fr-FR", cfg.DefaultLocale)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Addr = " " }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "bad locale", mutate: func(c *Config) { c.DefaultLocale = "!!" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
