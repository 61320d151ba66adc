package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Author.License != DefaultLicense {
		t.Errorf("license = %q, want %q", cfg.Author.License, DefaultLicense)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("log config = %+v", cfg.Log)
	}
}

func TestLoadParsesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `author:
  name: Ada Lovelace
  email: ada@example.com
defaults:
  language: rust
templates:
  dirs: [~/templates]
  vars:
    AUTHOR: ada
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Author.Name != "Ada Lovelace" {
		t.Errorf("author = %q", cfg.Author.Name)
	}
	if cfg.Author.License != DefaultLicense {
		t.Errorf("license not backfilled: %q", cfg.Author.License)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if lang, ok := cfg.Defaults.ParsedLanguage(); !ok || lang.String() != "rust" {
		t.Errorf("defaults.language = (%v, %v)", lang, ok)
	}
	if cfg.Template.Vars["AUTHOR"] != "ada" {
		t.Errorf("template vars = %v", cfg.Template.Vars)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load = %v, want ErrInvalidYAML", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Log.Level = "verbose"
	cfg.Defaults.Language = "cobol"
	cfg.Defaults.Framework = "rails"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate accepted a bad config")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, ErrInvalidLogLevel) || !errors.Is(err, ErrUnknownDefault) {
		t.Errorf("error = %v, want both sentinel causes", err)
	}
	var ves *ValidationErrors
	if !errors.As(err, &ves) {
		t.Fatalf("error %T is not *ValidationErrors", err)
	}
	if len(ves.Errors) != 3 {
		t.Errorf("collected %d errors, want 3", len(ves.Errors))
	}
}

func TestLoadValidatesResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  kind: desktop\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownDefault) {
		t.Errorf("Load = %v, want ErrUnknownDefault", err)
	}
}
