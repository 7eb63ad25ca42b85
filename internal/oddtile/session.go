package oddtile

import (
	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Outcome is the result of submitting a tile.
type Outcome int

const (
	OutcomeNone Outcome = iota // Input was ignored
	OutcomeCorrect
	OutcomeWrong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Session holds the score, level, clock and current round of one game and
// applies the start, tick and submit transitions to them.
//
// A session starts idle. Start moves it to playing from any status. Only
// Tick ends a game: a wrong answer may bring the clock to zero, but the
// game keeps accepting input until the next tick.
type Session struct {
	rules  config.TimerConfig
	rounds RoundSource

	status   Status
	score    int
	level    int
	timeLeft int
	round    Round
}

// NewSession creates an idle session.
func NewSession(rules config.TimerConfig, rounds RoundSource) *Session {
	return &Session{
		rules:  rules,
		rounds: rounds,
		status: StatusIdle,
		level:  1,
	}
}

// Start begins a new game, discarding any previous one.
func (s *Session) Start() {
	s.status = StatusPlaying
	s.score = 0
	s.level = 1
	s.timeLeft = s.rules.StartSeconds
	s.round = s.rounds.Generate(s.level)
}

// Tick advances the clock by one second. It returns true while the game is
// still playing afterwards, meaning the countdown should keep running.
func (s *Session) Tick() bool {
	if s.status != StatusPlaying {
		return false
	}

	if s.timeLeft <= 1 {
		s.timeLeft = 0
		s.status = StatusGameOver
		return false
	}

	s.timeLeft--
	return true
}

// Submit picks a tile. It is a no-op returning OutcomeNone unless the game
// is playing. Any index other than the odd tile's counts as wrong.
func (s *Session) Submit(tile int) Outcome {
	if s.status != StatusPlaying {
		return OutcomeNone
	}

	if tile == s.round.DiffIndex {
		s.score++
		s.level++
		s.timeLeft = min(s.rules.MaxSeconds, s.timeLeft+s.rules.CorrectBonus)
		s.round = s.rounds.Generate(s.level)
		return OutcomeCorrect
	}

	s.timeLeft = max(0, s.timeLeft-s.rules.WrongPenalty)
	return OutcomeWrong
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Score returns the number of correct answers this game.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// TimeLeft returns the seconds remaining on the clock.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Round returns the current round. It is the zero Round before the first
// Start.
func (s *Session) Round() Round { return s.round }

// State returns the compact platform state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Level:    s.level,
		Playing:  s.status == StatusPlaying,
		GameOver: s.status == StatusGameOver,
	}
}
