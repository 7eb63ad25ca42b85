package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ApplyPreset modifies the config based on a difficulty preset. The empty
// preset leaves the config untouched. Fixed keeps the loaded curve's level 1
// delta for the whole game.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy:
		cfg.Difficulty.InitialDiff = 25
		cfg.Difficulty.MinDiff = 3
		cfg.Timer.StartSeconds = 30
		cfg.Timer.WrongPenalty = 2
	case DifficultyNormal:
		def := Default()
		cfg.Difficulty.InitialDiff = def.Difficulty.InitialDiff
		cfg.Difficulty.MinDiff = def.Difficulty.MinDiff
		cfg.Timer.StartSeconds = def.Timer.StartSeconds
		cfg.Timer.WrongPenalty = def.Timer.WrongPenalty
	case DifficultyHard:
		cfg.Difficulty.InitialDiff = 12
		cfg.Difficulty.MinDiff = 1
		cfg.Timer.StartSeconds = 20
		cfg.Timer.WrongPenalty = 5
	case DifficultyFixed:
		cfg.Difficulty.Exponent = 0
	default:
		return fmt.Errorf("config: unknown difficulty %q (want one of %v)", preset, Presets)
	}

	cfg.Timer.MaxSeconds = max(cfg.Timer.MaxSeconds, cfg.Timer.StartSeconds)
	return cfg.Validate()
}
