package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bloom/internal/storage"
)

// Config is the root configuration structure. It is read-only after
// Load() returns.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Assist   AssistConfig   `yaml:"assist"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AssistConfig contains estimation service settings.
type AssistConfig struct {
	APIKey string `yaml:"-"` // env-only, never in YAML
	Model  string `yaml:"model"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration with precedence: defaults → YAML file →
// env vars. A missing config file is not an error.
func Load() (*Config, error) {
	cfg, err := newDefaults()
	if err != nil {
		return nil, err
	}

	configPath := getEnv("BLOOM_CONFIG_PATH", defaultConfigPath())
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	cfg.Database.Path = getEnv("BLOOM_DB_PATH", cfg.Database.Path)
	cfg.Assist.Model = getEnv("BLOOM_ASSIST_MODEL", cfg.Assist.Model)
	cfg.Assist.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Log.Level = getEnv("BLOOM_LOG_LEVEL", cfg.Log.Level)

	return cfg, nil
}

func newDefaults() (*Config, error) {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: DatabaseConfig{Path: dbPath},
		Assist:   AssistConfig{Model: "gpt-4o-mini"},
		Log:      LogConfig{Level: "warn"},
	}, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bloom.yaml"
	}
	return home + "/.bloom.yaml"
}

func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
