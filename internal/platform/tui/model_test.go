package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/oddtile"
)

func newTestModel(t *testing.T) (Model, *oddtile.Game) {
	t.Helper()
	game := oddtile.New(config.Default())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 42}
	return NewModel(game, cfg, lipgloss.NewRenderer(io.Discard), nil), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m, game := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule anything")
	}
	if game.Snapshot().Status != oddtile.StatusIdle {
		t.Errorf("status = %v, want idle", game.Snapshot().Status)
	}
	if !strings.Contains(m.View(), "O D D   T I L E") {
		t.Error("idle view should show the title")
	}
}

func TestModelEnterStartsGame(t *testing.T) {
	m, game := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting a game should schedule the countdown")
	}
	if !game.State().Playing {
		t.Error("game should be playing after enter")
	}
}

func TestModelCountdownRearmsWhilePlaying(t *testing.T) {
	m, game := newTestModel(t)

	res := game.Apply(core.ActionConfirm)
	if !res.Started {
		t.Fatal("confirm on idle should start")
	}

	_, cmd := update(t, m, CountdownMsg{Token: res.Countdown})
	if cmd == nil {
		t.Error("live countdown tick should schedule the next one")
	}
	if got := game.Snapshot().TimeLeft; got != 29 {
		t.Errorf("TimeLeft = %d, want 29", got)
	}
}

func TestNextTickKeepsSchedule(t *testing.T) {
	due := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	late := due.Add(700 * time.Millisecond)

	got := nextTick(CountdownMsg{Token: 1, At: due}, time.Second, late)
	if want := due.Add(time.Second); !got.Equal(want) {
		t.Errorf("nextTick() = %v, want %v", got, want)
	}

	got = nextTick(CountdownMsg{Token: 1}, time.Second, late)
	if want := late.Add(time.Second); !got.Equal(want) {
		t.Errorf("nextTick() without deadline = %v, want %v", got, want)
	}
}

func TestModelLateTickCatchesUp(t *testing.T) {
	m, game := newTestModel(t)
	res := game.Apply(core.ActionConfirm)

	due := time.Now().Add(-5 * time.Second)
	_, cmd := update(t, m, CountdownMsg{Token: res.Countdown, At: due})
	if cmd == nil {
		t.Fatal("live tick should schedule the next one")
	}

	out := cmd()
	msg, ok := out.(CountdownMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want CountdownMsg", out)
	}
	if want := due.Add(time.Second); !msg.At.Equal(want) {
		t.Errorf("next tick due %v, want %v", msg.At, want)
	}
	if msg.Token != res.Countdown {
		t.Errorf("next tick token = %d, want %d", msg.Token, res.Countdown)
	}
}

func TestModelLeavesZeroSeedToGame(t *testing.T) {
	game := oddtile.New(config.Default())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 40}, lipgloss.NewRenderer(io.Discard), nil)

	if m.config.Seed != 0 {
		t.Errorf("model seed = %d, want 0", m.config.Seed)
	}
	if res := game.Apply(core.ActionConfirm); !res.Started {
		t.Fatal("game with a clock seed should start")
	}
	if snap := game.Snapshot(); snap.Round.DiffIndex < 0 || snap.Round.DiffIndex >= oddtile.TileCount {
		t.Errorf("DiffIndex = %d out of range", snap.Round.DiffIndex)
	}
}

func TestModelDropsStaleCountdown(t *testing.T) {
	m, game := newTestModel(t)

	first := game.Apply(core.ActionConfirm)
	game.Apply(core.ActionRestart)

	_, cmd := update(t, m, CountdownMsg{Token: first.Countdown})
	if cmd != nil {
		t.Error("stale tick should not be re-armed")
	}
	if got := game.Snapshot().TimeLeft; got != 30 {
		t.Errorf("TimeLeft = %d, want 30 after stale tick", got)
	}
}

func TestModelCountdownStopsAtGameOver(t *testing.T) {
	m, game := newTestModel(t)

	res := game.Apply(core.ActionConfirm)
	var cmd tea.Cmd
	for range 30 {
		m, cmd = update(t, m, CountdownMsg{Token: res.Countdown})
	}
	if cmd != nil {
		t.Error("countdown should stop at game over")
	}
	if !game.State().GameOver {
		t.Fatal("game should be over after 30 ticks")
	}
	if !strings.Contains(m.View(), "TIME'S UP") {
		t.Error("game over view should show TIME'S UP")
	}
}

func TestModelFeedbackClears(t *testing.T) {
	m, game := newTestModel(t)
	game.Apply(core.ActionConfirm)

	diff := game.Snapshot().Round.DiffIndex
	res := game.Submit(diff)
	if res.Outcome != oddtile.OutcomeCorrect {
		t.Fatalf("Submit(diff) = %v, want correct", res.Outcome)
	}

	update(t, m, FeedbackClearMsg{Token: res.Feedback})
	if got := game.Snapshot().Feedback; got != oddtile.OutcomeNone {
		t.Errorf("feedback = %v, want none after clear", got)
	}
}

func TestModelClickStartsFromIdle(t *testing.T) {
	m, game := newTestModel(t)

	_, cmd := update(t, m, tea.MouseMsg{
		X:      1,
		Y:      1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if cmd == nil || !game.State().Playing {
		t.Error("left click on the idle screen should start a game")
	}
}

func TestModelClickPicksTile(t *testing.T) {
	m, game := newTestModel(t)
	game.Apply(core.ActionConfirm)

	snap := game.Snapshot()
	tile := game.Layout().Tiles[snap.Round.DiffIndex]

	_, cmd := update(t, m, tea.MouseMsg{
		X:      tile.X,
		Y:      tile.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if cmd == nil {
		t.Error("a pick should schedule the feedback clear")
	}
	if got := game.Snapshot().Score; got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
}

func TestModelIgnoresMouseRelease(t *testing.T) {
	m, game := newTestModel(t)

	_, cmd := update(t, m, tea.MouseMsg{
		X:      1,
		Y:      1,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if cmd != nil || game.State().Playing {
		t.Error("mouse release should be ignored")
	}
}

func TestModelWindowResize(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	if got := game.Layout().Width; got != 100 {
		t.Errorf("layout width = %d, want 100", got)
	}
	if got := m.screen.Width(); got != 100 {
		t.Errorf("screen width = %d, want 100", got)
	}
	if m.screen.Height() >= 50 {
		t.Errorf("screen height = %d, should leave room for help", m.screen.Height())
	}
}

func TestModelHelpToggleShrinksScreen(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.screen.Height()

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should show full help")
	}
	if m.screen.Height() >= before {
		t.Errorf("screen height = %d, want less than %d with full help", m.screen.Height(), before)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelPlayingViewShowsHUD(t *testing.T) {
	m, game := newTestModel(t)
	game.Apply(core.ActionConfirm)

	view := m.View()
	if !strings.Contains(view, "Score 0") {
		t.Errorf("view should show the score, got:\n%s", view)
	}
}

func newPainterScreen() *core.Screen {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)
	s.DrawText(3, 0, "de", core.Color("#ff0000"))
	s.DrawText(0, 1, "xyz", core.Color("2"))
	return s
}

func TestPainterPlainTerminal(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	s := newPainterScreen()

	if got := NewPainter(r).Render(s); got != s.String() {
		t.Errorf("Render() = %q, expected %q", got, s.String())
	}
}

func TestPainterColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	out := NewPainter(r).Render(newPainterScreen())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "abc") || !strings.Contains(lines[0], "de") {
		t.Errorf("line 0 = %q, want abc and de", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 = %q, want xyz", lines[1])
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI styling, got %q", out)
	}
}
