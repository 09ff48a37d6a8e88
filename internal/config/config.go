// Package config persists the editor's user-configurable defaults (tab
// width, auto-indent, expand-tab, navigation mode) to a small JSON file
// under the user's config directory, following the teacher's
// ConfigManager almost verbatim in shape.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigFileName = "contools-edit.json"

// ConfigManager handles loading, saving, and modifying the application configuration
type ConfigManager struct {
	ConfigPath string
	Config     *Config
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "contools")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, defaultConfigFileName)

	return &ConfigManager{
		ConfigPath: configPath,
		Config:     NewConfig(),
	}, nil
}

// Load loads the configuration from the config file
func (cm *ConfigManager) Load() error {
	data, err := os.ReadFile(cm.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config file doesn't exist, use defaults
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cm.Config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Save saves the configuration to the config file
func (cm *ConfigManager) Save() error {
	data, err := json.MarshalIndent(cm.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.ConfigPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
