package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOOM_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BLOOM_DB_PATH", "")
	t.Setenv("BLOOM_ASSIST_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("BLOOM_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path == "" {
		t.Fatalf("no default db path")
	}
	if cfg.Assist.Model != "gpt-4o-mini" || cfg.Assist.APIKey != "" {
		t.Fatalf("assist defaults: %+v", cfg.Assist)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log defaults: %+v", cfg.Log)
	}
}

func TestLoadYAMLThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bloom.yaml")
	yaml := []byte("database:\n  path: /from/yaml.db\nassist:\n  model: gpt-4o\nlog:\n  level: debug\n")
	if err := os.WriteFile(configPath, yaml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BLOOM_CONFIG_PATH", configPath)
	t.Setenv("BLOOM_DB_PATH", "/from/env.db")
	t.Setenv("BLOOM_ASSIST_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("BLOOM_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Env beats YAML, YAML beats defaults.
	if cfg.Database.Path != "/from/env.db" {
		t.Fatalf("db path %q", cfg.Database.Path)
	}
	if cfg.Assist.Model != "gpt-4o" || cfg.Log.Level != "debug" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Assist.APIKey != "sk-test" {
		t.Fatalf("api key %q", cfg.Assist.APIKey)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bloom.yaml")
	if err := os.WriteFile(configPath, []byte("database: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BLOOM_CONFIG_PATH", configPath)

	if _, err := Load(); err == nil {
		t.Fatalf("malformed config accepted")
	}
}
