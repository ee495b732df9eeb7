package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Gemini.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("APIKeyEnv = %q, want GEMINI_API_KEY", cfg.Gemini.APIKeyEnv)
	}
	if cfg.Gemini.APIURL != "" {
		t.Errorf("APIURL = %q, want empty", cfg.Gemini.APIURL)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Mode != "production" {
		t.Errorf("unexpected logger defaults: %+v", cfg.Logger)
	}
	if cfg.Environment.Name != "development" {
		t.Errorf("Environment.Name = %q", cfg.Environment.Name)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
environment:
  name: staging
logger:
  level: debug
  mode: development
  encoding: json
gemini:
  api_key_env: MY_GEMINI_KEY
  api_url: http://localhost:9999
  api_version: v1
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != "staging" {
		t.Errorf("Environment.Name = %q", cfg.Environment.Name)
	}
	if cfg.Logger.Encoding != "json" || cfg.Logger.Mode != "development" {
		t.Errorf("unexpected logger config: %+v", cfg.Logger)
	}
	if cfg.Gemini.APIKeyEnv != "MY_GEMINI_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.Gemini.APIKeyEnv)
	}
	if cfg.Gemini.APIURL != "http://localhost:9999" || cfg.Gemini.APIVersion != "v1" {
		t.Errorf("unexpected gemini config: %+v", cfg.Gemini)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "http://proxy.internal")
	t.Setenv("LOGGER_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIURL != "http://proxy.internal" {
		t.Errorf("APIURL = %q", cfg.Gemini.APIURL)
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("Logger.Level = %q", cfg.Logger.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
	})

	t.Run("blank key env", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY_ENV", "   ")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for blank gemini.api_key_env")
		}
	})

	t.Run("debug logger mode", func(t *testing.T) {
		t.Setenv("LOGGER_MODE", "debug")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for logger mode debug")
		}
	})

	t.Run("bad logger mode", func(t *testing.T) {
		t.Setenv("LOGGER_MODE", "verbose")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for unknown logger mode")
		}
	})
}
