package config

import (
	"errors"
	"fmt"
)

// ValidationError describes a config value that is out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks that every value is usable. All problems are reported,
// joined into one error.
func (c GameConfig) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	t := c.Timer
	if t.StartSeconds <= 0 {
		add("timer.start_seconds", "must be positive, got %d", t.StartSeconds)
	}
	if t.MaxSeconds < t.StartSeconds {
		add("timer.max_seconds", "must be >= start_seconds (%d), got %d", t.StartSeconds, t.MaxSeconds)
	}
	if t.CorrectBonus < 0 {
		add("timer.correct_bonus", "must not be negative, got %d", t.CorrectBonus)
	}
	if t.WrongPenalty < 0 {
		add("timer.wrong_penalty", "must not be negative, got %d", t.WrongPenalty)
	}
	if t.Tick <= 0 {
		add("timer.tick", "must be positive, got %s", t.Tick)
	}
	if t.Feedback <= 0 {
		add("timer.feedback", "must be positive, got %s", t.Feedback)
	}

	d := c.Difficulty
	if d.MinDiff <= 0 {
		add("difficulty.min_diff", "must be positive, got %g", d.MinDiff)
	}
	if d.InitialDiff < d.MinDiff {
		add("difficulty.initial_diff", "must be >= min_diff (%g), got %g", d.MinDiff, d.InitialDiff)
	}
	if d.Exponent < 0 {
		add("difficulty.exponent", "must not be negative, got %g", d.Exponent)
	}

	p := c.Palette
	checkRange := func(field string, r IntRange, lo, hi int) {
		if r.Min < lo || r.Max > hi || r.Min > r.Max {
			add(field, "range [%d,%d] must lie within [%d,%d] with min <= max", r.Min, r.Max, lo, hi)
		}
	}
	checkRange("palette.hue", p.Hue, 0, 359)
	checkRange("palette.saturation", p.Saturation, 0, 100)
	checkRange("palette.lightness", p.Lightness, 0, 100)

	return errors.Join(errs...)
}
