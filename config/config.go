package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"midiwire/midi"
)

// AppName is the directory name under ~/.config
const AppName = "midiwire"

// OutputConfig stores terminal output preferences
type OutputConfig struct {
	Palette string `json:"palette,omitempty"` // GIMP .gpl file, empty for built-in
	NoColor bool   `json:"noColor,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	// ChannelPolicy is applied to channel numbers given on the command line:
	// "strict", "clamp" or "wrap"
	ChannelPolicy string       `json:"channelPolicy,omitempty"`
	Debug         bool         `json:"debug,omitempty"`
	Output        OutputConfig `json:"output,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ChannelPolicy: midi.ChannelStrict.String(),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Reject bad values at load time rather than on first use
	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Policy returns the parsed channel policy
func (c *Config) Policy() (midi.ChannelPolicy, error) {
	return midi.ParseChannelPolicy(c.ChannelPolicy)
}
