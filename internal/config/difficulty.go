package config

import "math"

// Delta returns the lightness difference, in percentage points, between the
// odd tile and the rest of the grid at the given level:
//
//	max(MinDiff, InitialDiff / level^Exponent)
//
// Levels below 1 are treated as level 1. The result is never zero for a
// valid config.
func (d DifficultyConfig) Delta(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Max(d.MinDiff, d.InitialDiff/math.Pow(float64(level), d.Exponent))
}

// AtFloor reports whether the curve has bottomed out at MinDiff for level.
func (d DifficultyConfig) AtFloor(level int) bool {
	return d.Delta(level) <= d.MinDiff
}
