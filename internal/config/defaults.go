package config

import (
	_ "embed"
)

//go:embed defaults/freecell.yaml
var defaultFreecellYAML []byte

// DefaultFreecellConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultFreecellConfig() FreecellConfig {
	return FreecellConfig{
		Gameplay: GameplayConfig{
			AutoFinish:     true,
			FinishInterval: 6,
			ConfirmQuit:    true,
		},
		Display: DisplayConfig{
			UnicodeSuits: true,
			ShowDeckID:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFreecellYAML
}
