// Package config loads the server configuration from an optional YAML file
// and FIREFLY_* environment variables. Environment values win over the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "FIREFLY_"
	// FileEnv names the variable holding the optional YAML file path.
	FileEnv = EnvPrefix + "CONFIG"
)

// Config is the configuration of the backend binary.
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"ADDR" yaml:"addr"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`
	// LogFormat is either json or console.
	LogFormat string `env:"LOG_FORMAT" yaml:"logFormat"`
	// DefaultLocale is used when a visitor's language is not supported.
	DefaultLocale string `env:"DEFAULT_LOCALE" yaml:"defaultLocale"`
	// Version is reported by the status API and tags the app cache.
	Version string `env:"VERSION" yaml:"version"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     "json",
		DefaultLocale: "en-US",
		Version:       "dev",
	}
}

// Load builds the configuration: defaults, then the file named by
// FIREFLY_CONFIG if any, then the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.LogFormat)
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("invalid default locale %q: %w", c.DefaultLocale, err)
	}
	return nil
}
