// Package config provides configuration loading and management for camnoise.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Session parameters for the interactive tuning loop
	Session struct {
		// PollIntervalMs bounds each key poll in milliseconds
		PollIntervalMs int `yaml:"pollIntervalMs"`

		// PreviewWidth is the terminal preview width in characters
		PreviewWidth int `yaml:"previewWidth"`

		// Seed seeds the noise generator; 0 selects a time-based seed
		Seed uint64 `yaml:"seed"`
	} `yaml:"session"`

	// Output parameters
	Output struct {
		// JPEGQuality is the encoder quality for .jpg/.jpeg outputs
		JPEGQuality int `yaml:"jpegQuality"`
	} `yaml:"output"`

	// Controls holds the initial raw slider positions, in the same scaled
	// integer units the interactive panel exposes
	Controls struct {
		Sigma      int `yaml:"sigma"`      // [0, 100]
		SaltProb   int `yaml:"saltProb"`   // raw/1000, [0, 100]
		PepperProb int `yaml:"pepperProb"` // raw/1000, [0, 100]
		Levels     int `yaml:"levels"`     // [1, 32]
		K1         int `yaml:"k1"`         // raw/100, [0, 100]
		K2         int `yaml:"k2"`         // raw/100, [0, 100]
		P1         int `yaml:"p1"`         // raw/100, [0, 100]
		P2         int `yaml:"p2"`         // raw/100, [0, 100]
		Kernel     int `yaml:"kernel"`     // [1, 100]
	} `yaml:"controls"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default session parameters
	cfg.Session.PollIntervalMs = 50
	cfg.Session.PreviewWidth = 80
	cfg.Session.Seed = 0

	// Set default output parameters
	cfg.Output.JPEGQuality = 90

	// Set default control positions: every artifact off, quantization
	// starting at a mild visible level
	cfg.Controls.Levels = 3
	cfg.Controls.Kernel = 1

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
