package oddtile

import (
	"testing"

	"github.com/vovakirdan/oddtile/internal/config"
)

// fixedRounds places the odd tile at level % TileCount and records calls.
type fixedRounds struct {
	levels []int
}

func (f *fixedRounds) Generate(level int) Round {
	f.levels = append(f.levels, level)
	return Round{
		Base:      HSL{H: 200, S: 50, L: 50},
		Diff:      HSL{H: 200, S: 50, L: 70},
		DiffIndex: level % TileCount,
		Delta:     20,
	}
}

func newTestSession() (*Session, *fixedRounds) {
	src := &fixedRounds{}
	return NewSession(config.Default().Timer, src), src
}

func wrongIndex(s *Session) int {
	return (s.Round().DiffIndex + 1) % TileCount
}

func TestSessionStartsIdle(t *testing.T) {
	s, src := newTestSession()

	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, expected idle", s.Status())
	}
	if s.Level() != 1 || s.Score() != 0 {
		t.Errorf("idle session: level=%d score=%d", s.Level(), s.Score())
	}
	if len(src.levels) != 0 {
		t.Error("no round should be generated before Start")
	}
}

func TestSessionStart(t *testing.T) {
	s, src := newTestSession()
	s.Start()

	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected playing", s.Status())
	}
	if s.Score() != 0 || s.Level() != 1 || s.TimeLeft() != 30 {
		t.Errorf("after Start: score=%d level=%d timeLeft=%d", s.Score(), s.Level(), s.TimeLeft())
	}
	if len(src.levels) != 1 || src.levels[0] != 1 {
		t.Errorf("expected one round for level 1, got %v", src.levels)
	}
}

func TestSessionScenario(t *testing.T) {
	s, _ := newTestSession()
	s.Start()

	for i := 0; i < 3; i++ {
		if o := s.Submit(s.Round().DiffIndex); o != OutcomeCorrect {
			t.Fatalf("submit %d: outcome %v, expected correct", i, o)
		}
	}

	if s.Score() != 3 || s.Level() != 4 || s.TimeLeft() != 30 {
		t.Errorf("after 3 correct: score=%d level=%d timeLeft=%d, expected 3/4/30",
			s.Score(), s.Level(), s.TimeLeft())
	}

	if o := s.Submit(wrongIndex(s)); o != OutcomeWrong {
		t.Fatalf("outcome %v, expected wrong", o)
	}
	if s.TimeLeft() != 27 {
		t.Errorf("after wrong: timeLeft=%d, expected 27", s.TimeLeft())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected playing", s.Status())
	}
}

func TestSessionCorrectAddsBonusBelowCap(t *testing.T) {
	s, src := newTestSession()
	s.Start()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.TimeLeft() != 20 {
		t.Fatalf("timeLeft = %d, expected 20", s.TimeLeft())
	}

	s.Submit(s.Round().DiffIndex)

	if s.TimeLeft() != 22 {
		t.Errorf("timeLeft = %d, expected 22", s.TimeLeft())
	}
	if got := src.levels[len(src.levels)-1]; got != 2 {
		t.Errorf("new round generated for level %d, expected 2", got)
	}
}

func TestSessionWrongKeepsRound(t *testing.T) {
	s, src := newTestSession()
	s.Start()
	before := s.Round()
	generated := len(src.levels)

	s.Submit(wrongIndex(s))

	if s.Round() != before {
		t.Error("wrong answer should not change the round")
	}
	if len(src.levels) != generated {
		t.Error("wrong answer should not generate a round")
	}
	if s.Score() != 0 || s.Level() != 1 {
		t.Errorf("wrong answer changed score/level: %d/%d", s.Score(), s.Level())
	}
}

func TestSessionOutOfRangeTileIsWrong(t *testing.T) {
	s, _ := newTestSession()
	s.Start()

	for _, tile := range []int{-1, TileCount, 1000} {
		if o := s.Submit(tile); o != OutcomeWrong {
			t.Errorf("Submit(%d) = %v, expected wrong", tile, o)
		}
	}
}

func TestSessionPenaltyClampsAtZero(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	for i := 0; i < 28; i++ {
		s.Tick()
	}
	if s.TimeLeft() != 2 {
		t.Fatalf("timeLeft = %d, expected 2", s.TimeLeft())
	}

	s.Submit(wrongIndex(s))

	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft = %d, expected 0", s.TimeLeft())
	}
	// Penalty alone does not end the game
	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected playing until next tick", s.Status())
	}

	// A correct answer before the tick still counts
	s.Submit(s.Round().DiffIndex)
	if s.TimeLeft() != 2 || s.Score() != 1 {
		t.Errorf("after rescue: timeLeft=%d score=%d", s.TimeLeft(), s.Score())
	}
}

func TestSessionTickAtZeroEndsGame(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	for s.TimeLeft() > 0 {
		s.Submit(wrongIndex(s))
	}

	if s.Tick() {
		t.Error("Tick() should report the countdown stopped")
	}
	if s.Status() != StatusGameOver || s.TimeLeft() != 0 {
		t.Errorf("status=%v timeLeft=%d", s.Status(), s.TimeLeft())
	}
}

func TestSessionTickFromOne(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	for i := 0; i < 29; i++ {
		if !s.Tick() {
			t.Fatalf("tick %d stopped early", i)
		}
	}
	if s.TimeLeft() != 1 || s.Status() != StatusPlaying {
		t.Fatalf("timeLeft=%d status=%v", s.TimeLeft(), s.Status())
	}

	if s.Tick() {
		t.Error("last tick should stop the countdown")
	}
	if s.TimeLeft() != 0 || s.Status() != StatusGameOver {
		t.Errorf("timeLeft=%d status=%v, expected 0/gameover", s.TimeLeft(), s.Status())
	}
}

func TestSessionIgnoresInputWhenNotPlaying(t *testing.T) {
	s, _ := newTestSession()

	// Idle
	if o := s.Submit(0); o != OutcomeNone {
		t.Errorf("idle Submit = %v, expected none", o)
	}
	if s.Tick() {
		t.Error("idle Tick should not run")
	}
	if s.Status() != StatusIdle || s.TimeLeft() != 0 || s.Score() != 0 {
		t.Errorf("idle session mutated: %v %d %d", s.Status(), s.TimeLeft(), s.Score())
	}

	// Game over is frozen
	s.Start()
	s.Submit(s.Round().DiffIndex)
	for s.Tick() {
	}
	score, level, round := s.Score(), s.Level(), s.Round()

	for i := 0; i < TileCount; i++ {
		if o := s.Submit(i); o != OutcomeNone {
			t.Errorf("gameover Submit(%d) = %v, expected none", i, o)
		}
	}
	s.Tick()

	if s.Status() != StatusGameOver || s.Score() != score || s.Level() != level || s.Round() != round || s.TimeLeft() != 0 {
		t.Error("game over session should be frozen")
	}
}

func TestSessionRestartFromGameOver(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	s.Submit(s.Round().DiffIndex)
	s.Submit(s.Round().DiffIndex)
	for s.Tick() {
	}

	s.Start()

	if s.Status() != StatusPlaying || s.Score() != 0 || s.Level() != 1 || s.TimeLeft() != 30 {
		t.Errorf("restart: status=%v score=%d level=%d timeLeft=%d",
			s.Status(), s.Score(), s.Level(), s.TimeLeft())
	}
}

func TestSessionLevelNeverDecrements(t *testing.T) {
	s, _ := newTestSession()
	s.Start()

	prev := s.Level()
	for i := 0; i < 40; i++ {
		if i%3 == 0 {
			s.Submit(wrongIndex(s))
		} else {
			s.Submit(s.Round().DiffIndex)
		}
		if s.Level() < prev {
			t.Fatalf("level decreased from %d to %d", prev, s.Level())
		}
		prev = s.Level()
	}
}

func TestStatusAndOutcomeStrings(t *testing.T) {
	if StatusGameOver.String() != "gameover" || StatusPlaying.String() != "playing" {
		t.Error("unexpected Status strings")
	}
	if OutcomeCorrect.String() != "correct" || OutcomeWrong.String() != "wrong" {
		t.Error("unexpected Outcome strings")
	}
}
