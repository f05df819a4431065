package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "freecell.yaml"

// LoadFreecell loads the FreeCell configuration.
// Search order: customPath -> ~/.freecell/configs/freecell.yaml ->
// ./configs/freecell.yaml -> embedded default -> hardcoded default.
// Only an unreadable or malformed customPath is an error; the other sources
// are skipped when missing or invalid. Keys absent from a file keep their
// default values.
func LoadFreecell(customPath string) (FreecellConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFreecellConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFreecellConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultFreecellYAML); err == nil {
		return cfg, nil
	}
	return DefaultFreecellConfig(), nil
}

// parse decodes YAML over the hardcoded defaults and normalizes the result.
func parse(data []byte) (FreecellConfig, error) {
	cfg := DefaultFreecellConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".freecell", "configs", filename)
}
