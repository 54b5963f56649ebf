package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultModel != "gemini-2.5-flash" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if !cfg.CopyToClipboard {
		t.Error("CopyToClipboard should default on")
	}
	if cfg.Markdown.Style != "dark" {
		t.Errorf("Markdown.Style = %q", cfg.Markdown.Style)
	}
	if cfg.APIKey != "" {
		t.Error("no API key by default")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.DefaultModel = "gemini-2.5-pro"
	cfg.CopyToClipboard = false

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveConfigPermissions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := SaveConfig(DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	dirInfo, err := os.Stat(filepath.Join(home, ".malsum"))
	if err != nil {
		t.Fatalf("config dir missing: %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0o700 {
		t.Errorf("dir perm = %o, want 700", perm)
	}

	fileInfo, err := os.Stat(filepath.Join(home, ".malsum", "config.json"))
	if err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if perm := fileInfo.Mode().Perm(); perm != 0o600 {
		t.Errorf("file perm = %o, want 600", perm)
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".malsum")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("corrupt file should surface a parse error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("corrupt file should fall back to defaults, got %+v", cfg)
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg := Config{APIKey: "stored-key"}
	if got := ResolveAPIKey(cfg); got != "stored-key" {
		t.Errorf("ResolveAPIKey = %q, want stored key", got)
	}

	t.Setenv(EnvAPIKey, "env-key")
	if got := ResolveAPIKey(cfg); got != "env-key" {
		t.Errorf("ResolveAPIKey = %q, env must win", got)
	}

	t.Setenv(EnvAPIKey, "")
	if got := ResolveAPIKey(Config{}); got != "" {
		t.Errorf("ResolveAPIKey = %q, want empty when unconfigured", got)
	}
}

func TestSaveAPIKeyPreservesSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.CopyToClipboard = false
	if err := SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	if err := SaveAPIKey("  new-key  "); err != nil {
		t.Fatalf("SaveAPIKey failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.APIKey != "new-key" {
		t.Errorf("APIKey = %q, want trimmed new-key", loaded.APIKey)
	}
	if loaded.CopyToClipboard {
		t.Error("SaveAPIKey must not reset other settings")
	}
}
