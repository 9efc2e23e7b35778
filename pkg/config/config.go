package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override the saved configuration
const (
	EnvSource = "HORACTL_SOURCE"
	EnvAddr   = "HORACTL_ADDR"
	EnvAccent = "HORACTL_ACCENT"
)

// DefaultSource is used when no timetable source is configured anywhere
const DefaultSource = "horarios"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Source           string `json:"source,omitempty"`
	DefaultProfessor string `json:"default_professor,omitempty"`
	ListenAddress    string `json:"listen_address,omitempty"`
	AccentColor      string `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.horactl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".horactl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads the saved configuration and applies overrides from the
// environment, reading a .env file in the working directory first if present.
// The result is meant for use, not for Save: it may contain values that only
// exist in the environment.
func LoadWithEnv() (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	if v := os.Getenv(EnvSource); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.ListenAddress = v
	}
	if v := os.Getenv(EnvAccent); v != "" {
		cfg.AccentColor = v
	}
	return cfg, nil
}

// SourceOrDefault returns the configured source, falling back to DefaultSource
func (c *AppConfig) SourceOrDefault() string {
	if c.Source != "" {
		return c.Source
	}
	return DefaultSource
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
