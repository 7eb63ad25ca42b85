package oddtile

import (
	"fmt"

	"github.com/vovakirdan/oddtile/internal/core"
)

const (
	tileRune    = '█'
	barFull     = '━'
	barEmpty    = '─'
	placeholder = core.ColorGray
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()
	g.renderHUD(dst, snap)
	g.renderGrid(dst, snap)

	switch snap.Status {
	case StatusIdle:
		g.renderModal(dst, []modalLine{
			{"O D D   T I L E", core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"One tile is a slightly", core.ColorDefault},
			{"different shade. Find it!", core.ColorDefault},
			{"", core.ColorDefault},
			{"Enter or click to start", core.ColorYellow},
		})
	case StatusGameOver:
		best := fmt.Sprintf("Best: %d", snap.Best)
		if snap.Score > 0 && snap.Score == snap.Best {
			best = "New best!"
		}
		g.renderModal(dst, []modalLine{
			{"TIME'S UP", core.ColorBrightRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite},
			{fmt.Sprintf("Level: %d", snap.Level), core.ColorDefault},
			{best, core.ColorCyan},
			{"", core.ColorDefault},
			{"Enter or click to retry", core.ColorYellow},
		})
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws score, level, lightness delta, the time bar and the
// feedback line above the grid.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	grid := g.layout.Grid
	left := grid.X
	width := grid.W
	if width < minScreenW {
		left = (g.layout.Width - minScreenW) / 2
		width = minScreenW
	}

	dst.DrawText(left, 0, gameTitle, core.ColorBrightWhite)

	delta := g.cfg.Difficulty.Delta(snap.Level)
	stats := fmt.Sprintf("Score %d  Lv %d  ΔL %.1f", snap.Score, snap.Level, delta)
	if g.cfg.Difficulty.AtFloor(snap.Level) {
		stats += " min"
	}
	dst.DrawText(left+width-len([]rune(stats)), 0, stats, core.ColorDefault)

	// Time bar; the idle screen shows a full clock
	timeLeft := snap.TimeLeft
	if snap.Status == StatusIdle {
		timeLeft = g.cfg.Timer.StartSeconds
	}
	barColor := timeColor(timeLeft, g.cfg.Timer.MaxSeconds)
	label := fmt.Sprintf("%2ds ", timeLeft)
	dst.DrawText(left, 1, label, barColor)
	barW := width - len(label)
	filled := 0
	if g.cfg.Timer.MaxSeconds > 0 {
		filled = core.Clamp(timeLeft*barW/g.cfg.Timer.MaxSeconds, 0, barW)
	}
	dst.DrawHLine(left+len(label), 1, filled, barFull, barColor)
	dst.DrawHLine(left+len(label)+filled, 1, barW-filled, barEmpty, core.ColorGray)

	switch snap.Feedback {
	case OutcomeCorrect:
		msg := fmt.Sprintf("✓ Correct! +%ds", g.cfg.Timer.CorrectBonus)
		dst.DrawTextCentered(2, msg, core.ColorBrightGreen)
	case OutcomeWrong:
		msg := fmt.Sprintf("✗ Wrong! -%ds", g.cfg.Timer.WrongPenalty)
		dst.DrawTextCentered(2, msg, core.ColorBrightRed)
	}
}

// timeColor picks the time bar colour by the fraction of time left.
func timeColor(left, total int) core.Color {
	switch {
	case total <= 0:
		return core.ColorDefault
	case left*2 > total:
		return core.ColorGreen
	case left*5 > total:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// renderGrid draws the tiles and, while playing, the cursor box.
func (g *Game) renderGrid(dst *core.Screen, snap Snapshot) {
	for i, r := range g.layout.Tiles {
		c := placeholder
		if snap.Status != StatusIdle {
			c = snap.Round.ColorAt(i).Color()
		}
		dst.FillRect(r, tileRune, c)
	}

	if snap.Status == StatusPlaying {
		dst.DrawBox(g.layout.Tiles[snap.Cursor].Grow(tileGap), core.ColorBrightWhite)
	}
}

type modalLine struct {
	text  string
	color core.Color
}

// renderModal draws a bordered box centred over the grid.
func (g *Game) renderModal(dst *core.Screen, lines []modalLine) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	w += 4 // Border and padding
	h := len(lines) + 2

	grid := g.layout.Grid
	box := core.NewRect(
		grid.X+(grid.W-w)/2,
		grid.Y+max((grid.H-h)/2, 0),
		w,
		h,
	)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l.text)))/2
		dst.DrawText(x, box.Y+1+i, l.text, l.color)
	}
}
