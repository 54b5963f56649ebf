// Package config handles configuration and API credential storage for malsum.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvAPIKey overrides the stored credential when set.
const EnvAPIKey = "GEMINI_API_KEY"

// MarkdownConfig configures terminal rendering of generated text.
type MarkdownConfig struct {
	Style            string `json:"style"` // "dark", "light", or path to JSON theme
	PreserveNewLines bool   `json:"preserve_newlines"`
}

// Config represents the user configuration. The API key is the only
// persisted secret; it is sent to the Gemini endpoint and nowhere else.
type Config struct {
	APIKey          string         `json:"api_key,omitempty"`
	DefaultModel    string         `json:"default_model"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultModel:    "gemini-2.5-flash",
		CopyToClipboard: true,
		Markdown: MarkdownConfig{
			Style:            "dark",
			PreserveNewLines: true,
		},
	}
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".malsum"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the directory holds the API key
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults; a corrupted file yields the defaults plus the parse error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0o600: the file contains the API key
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveAPIKey returns the credential to use: the environment variable
// when set, otherwise the stored key. Empty means not configured.
func ResolveAPIKey(cfg Config) string {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key
	}
	return strings.TrimSpace(cfg.APIKey)
}

// SaveAPIKey replaces the stored credential, preserving other settings.
func SaveAPIKey(key string) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.APIKey = strings.TrimSpace(key)
	return SaveConfig(cfg)
}
