package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/oddtile.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/oddtile.yaml and is used when that file cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Timer: TimerConfig{
			StartSeconds: 30,
			MaxSeconds:   30,
			CorrectBonus: 2,
			WrongPenalty: 3,
			Tick:         time.Second,
			Feedback:     500 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			InitialDiff: 20,
			MinDiff:     1.5,
			Exponent:    0.4,
		},
		Palette: PaletteConfig{
			Hue:        IntRange{Min: 0, Max: 359},
			Saturation: IntRange{Min: 40, Max: 80},
			Lightness:  IntRange{Min: 30, Max: 70},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
