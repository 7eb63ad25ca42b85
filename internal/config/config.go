// Package config provides YAML-based game configuration loading and the
// difficulty curve for oddtile.
package config

import "time"

// GameConfig contains all tunable parameters for the game.
type GameConfig struct {
	Timer      TimerConfig      `yaml:"timer"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Palette    PaletteConfig    `yaml:"palette"`
}

// TimerConfig defines the countdown rules.
type TimerConfig struct {
	StartSeconds int           `yaml:"start_seconds"`
	MaxSeconds   int           `yaml:"max_seconds"`
	CorrectBonus int           `yaml:"correct_bonus"`
	WrongPenalty int           `yaml:"wrong_penalty"`
	Tick         time.Duration `yaml:"tick"`
	Feedback     time.Duration `yaml:"feedback"`
}

// DifficultyConfig defines how the lightness delta shrinks with level.
type DifficultyConfig struct {
	InitialDiff float64 `yaml:"initial_diff"` // Delta at level 1
	MinDiff     float64 `yaml:"min_diff"`     // Floor of the delta
	Exponent    float64 `yaml:"exponent"`     // Decay exponent applied to level
}

// PaletteConfig bounds the randomly generated base color. All ranges are
// inclusive.
type PaletteConfig struct {
	Hue        IntRange `yaml:"hue"`
	Saturation IntRange `yaml:"saturation"`
	Lightness  IntRange `yaml:"lightness"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Span returns the number of integers in the range.
func (r IntRange) Span() int {
	return r.Max - r.Min + 1
}
