// Package config provides YAML-based configuration loading for FreeCell.
package config

// FreecellConfig contains all user-tunable settings.
type FreecellConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
}

// GameplayConfig controls assistance and confirmation behavior.
type GameplayConfig struct {
	AutoFinish     bool `yaml:"auto_finish"`
	FinishInterval int  `yaml:"finish_interval"` // Ticks between automatic foundation moves
	ConfirmQuit    bool `yaml:"confirm_quit"`
}

// DisplayConfig controls how cards and the header are drawn.
type DisplayConfig struct {
	UnicodeSuits bool `yaml:"unicode_suits"`
	ShowDeckID   bool `yaml:"show_deck_id"`
}

// Normalize clamps values that would break the game loop.
func (c *FreecellConfig) Normalize() {
	if c.Gameplay.FinishInterval < 1 {
		c.Gameplay.FinishInterval = 1
	}
}
