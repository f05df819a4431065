package config

import "fmt"

// AssistPreset is a named bundle of gameplay assistance settings.
type AssistPreset string

const (
	AssistFull   AssistPreset = "full"   // Fast auto-finish, no quit confirmation
	AssistNormal AssistPreset = "normal" // Settings as loaded
	AssistOff    AssistPreset = "off"    // Every card is moved by hand
)

// ParseAssistPreset validates a preset name from the command line.
func ParseAssistPreset(name string) (AssistPreset, error) {
	switch p := AssistPreset(name); p {
	case AssistFull, AssistNormal, AssistOff:
		return p, nil
	case "":
		return AssistNormal, nil
	default:
		return "", fmt.Errorf("config: unknown assist preset %q (want full, normal or off)", name)
	}
}

// ApplyAssistPreset modifies the gameplay settings for a preset.
func ApplyAssistPreset(cfg *FreecellConfig, preset AssistPreset) {
	switch preset {
	case AssistFull:
		cfg.Gameplay.AutoFinish = true
		cfg.Gameplay.FinishInterval = 2
		cfg.Gameplay.ConfirmQuit = false
	case AssistOff:
		cfg.Gameplay.AutoFinish = false
	}
	cfg.Normalize()
}
