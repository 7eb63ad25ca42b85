package oddtile

import (
	"math/rand"

	"github.com/vovakirdan/oddtile/internal/config"
)

// Grid dimensions. The grid size is fixed.
const (
	GridSize  = 5
	TileCount = GridSize * GridSize
)

// Round is one grid configuration with a single odd tile.
type Round struct {
	Base      HSL
	Diff      HSL
	DiffIndex int     // Index of the odd tile, row-major in [0, TileCount)
	Delta     float64 // Signed lightness offset of Diff relative to Base
}

// ColorAt returns the colour of tile i.
func (r Round) ColorAt(i int) HSL {
	if i == r.DiffIndex {
		return r.Diff
	}
	return r.Base
}

// RoundSource produces rounds for a level.
type RoundSource interface {
	Generate(level int) Round
}

// Generator creates random rounds. It is not safe for concurrent use; each
// game owns its own.
type Generator struct {
	rng        *rand.Rand
	palette    config.PaletteConfig
	difficulty config.DifficultyConfig
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.GameConfig) *Generator {
	return &Generator{
		rng:        rng,
		palette:    cfg.Palette,
		difficulty: cfg.Difficulty,
	}
}

// Generate returns a new round for the given level. The odd tile shares the
// base hue and saturation; its lightness is offset by exactly
// ±Delta(level), with the sign chosen at random.
func (g *Generator) Generate(level int) Round {
	base := HSL{
		H: float64(g.pick(g.palette.Hue)),
		S: float64(g.pick(g.palette.Saturation)),
		L: float64(g.pick(g.palette.Lightness)),
	}

	delta := g.difficulty.Delta(level)
	if g.rng.Intn(2) == 0 {
		delta = -delta
	}

	diff := base
	diff.L += delta

	return Round{
		Base:      base,
		Diff:      diff,
		DiffIndex: g.rng.Intn(TileCount),
		Delta:     delta,
	}
}

// pick returns a uniform integer from the inclusive range.
func (g *Generator) pick(r config.IntRange) int {
	if r.Span() <= 1 {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Span())
}
