package oddtile

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
)

const gameTitle = "Odd Tile"

// Result tells the platform which timers an input armed.
type Result struct {
	Outcome   Outcome
	Started   bool
	Countdown Token // Non-zero when a new countdown epoch was armed
	Feedback  Token // Non-zero when the feedback indicator was set
}

// Game wires a session to its generator, timers, tile cursor and screen
// layout. Platforms drive it through Apply, Click, Tick and ClearFeedback
// and draw it with Render.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	session   *Session
	countdown Countdown
	feedback  Feedback
	cursor    int

	layout Layout

	best  int
	games int
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// Timing returns the timer settings the platform schedules with.
func (g *Game) Timing() config.TimerConfig {
	return g.cfg.Timer
}

// Reset seeds the RNG, sizes the layout and returns to the idle screen.
// Best score and game count survive resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.session = NewSession(g.cfg.Timer, NewGenerator(g.rng, g.cfg))
	g.countdown.Cancel()
	g.feedback.Reset()
	g.cursor = TileCount / 2
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize recomputes the layout. Game state is kept.
func (g *Game) Resize(width, height int) {
	g.layout = ComputeLayout(width, height)
}

// Layout returns the current tile layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Start begins a new game and arms a fresh countdown. Ticks from an earlier
// game are invalidated.
func (g *Game) Start() Token {
	g.session.Start()
	g.feedback.Reset()
	g.cursor = TileCount / 2
	return g.countdown.Arm()
}

// Tick applies one countdown tick. Ticks whose token is stale are dropped.
// It returns true when the platform should schedule the next tick with the
// same token.
func (g *Game) Tick(t Token) bool {
	if !g.countdown.Fire(t) {
		return false
	}
	if g.session.Tick() {
		return true
	}

	g.countdown.Cancel()
	g.games++
	g.best = max(g.best, g.session.Score())
	return false
}

// Submit picks tile i. Input while not playing is ignored.
func (g *Game) Submit(i int) Result {
	o := g.session.Submit(i)
	if o == OutcomeNone {
		return Result{}
	}
	return Result{Outcome: o, Feedback: g.feedback.Set(o)}
}

// ClearFeedback hides the correct/wrong indicator if t is still current.
func (g *Game) ClearFeedback(t Token) bool {
	return g.feedback.Clear(t)
}

// Apply handles a semantic action. Confirm picks the tile under the cursor
// while playing and starts a game otherwise.
func (g *Game) Apply(a core.Action) Result {
	switch a {
	case core.ActionUp:
		g.MoveCursor(0, -1)
	case core.ActionDown:
		g.MoveCursor(0, 1)
	case core.ActionLeft:
		g.MoveCursor(-1, 0)
	case core.ActionRight:
		g.MoveCursor(1, 0)
	case core.ActionConfirm:
		if g.session.Status() == StatusPlaying {
			return g.Submit(g.cursor)
		}
		return g.start()
	case core.ActionRestart:
		return g.start()
	}
	return Result{}
}

// Click handles a mouse press at screen cell (x, y). While playing, a click
// on a tile picks it and moves the cursor there; clicks elsewhere are
// ignored. On the idle and game over screens any click starts a game.
func (g *Game) Click(x, y int) Result {
	if g.session.Status() != StatusPlaying {
		if g.layout.TooSmall {
			return Result{}
		}
		return g.start()
	}

	i := g.layout.HitTest(x, y)
	if i < 0 {
		return Result{}
	}
	g.cursor = i
	return g.Submit(i)
}

func (g *Game) start() Result {
	return Result{Started: true, Countdown: g.Start()}
}

// MoveCursor moves the tile cursor, clamped to the grid.
func (g *Game) MoveCursor(dx, dy int) {
	col := core.Clamp(g.cursor%GridSize+dx, 0, GridSize-1)
	row := core.Clamp(g.cursor/GridSize+dy, 0, GridSize-1)
	g.cursor = row*GridSize + col
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}
