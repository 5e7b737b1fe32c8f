package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "invasion.yaml"

// LoadInvasion loads Alien Invasion configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvasionConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseInvasion(data)
		if err != nil {
			return DefaultInvasionConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseInvasion(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := parseInvasion(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseInvasion(defaultInvasionYAML)
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseInvasion decodes YAML on top of the hardcoded defaults.
func parseInvasion(data []byte) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultInvasionConfig(), err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg InvasionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
