package oddtile

import "github.com/vovakirdan/oddtile/internal/core"

// Layout constants
const (
	hudRows     = 4  // Title, time bar, feedback, spacer
	tileGap     = 1  // Cells between tiles; the cursor box is drawn in it
	maxTileH    = 5  // Tiles stop growing past this height
	minScreenW  = 36 // Narrowest screen that fits the HUD
	minTileH    = 1
	tileAspectX = 2 // Tile width per unit of height; terminal cells are tall
)

// Layout is the position of every tile on a screen of a given size.
type Layout struct {
	Width    int
	Height   int
	Grid     core.Rect // Grid area including the outer gap
	Tiles    [TileCount]core.Rect
	TooSmall bool
}

// ComputeLayout sizes and centres the grid for a screen. Tiles keep a 2:1
// cell aspect so they look roughly square.
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	gaps := (GridSize + 1) * tileGap
	tileH := (height - hudRows - gaps) / GridSize
	tileH = min(tileH, (width-gaps)/GridSize/tileAspectX, maxTileH)
	if tileH < minTileH || width < minScreenW {
		l.TooSmall = true
		return l
	}
	tileW := tileH * tileAspectX

	gridW := GridSize*tileW + gaps
	gridH := GridSize*tileH + gaps
	l.Grid = core.NewRect((width-gridW)/2, hudRows, gridW, gridH)

	for i := range l.Tiles {
		col, row := i%GridSize, i/GridSize
		l.Tiles[i] = core.NewRect(
			l.Grid.X+tileGap+col*(tileW+tileGap),
			l.Grid.Y+tileGap+row*(tileH+tileGap),
			tileW,
			tileH,
		)
	}
	return l
}

// HitTest returns the index of the tile covering screen cell (x, y), or -1
// for gaps, the HUD and anything outside the grid.
func (l Layout) HitTest(x, y int) int {
	if l.TooSmall || !l.Grid.Contains(x, y) {
		return -1
	}
	for i, r := range l.Tiles {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
