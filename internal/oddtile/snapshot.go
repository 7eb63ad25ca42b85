package oddtile

// Snapshot captures the complete observable game state for rendering,
// logging and tests.
type Snapshot struct {
	Status   Status
	Score    int
	Level    int
	TimeLeft int
	Round    Round
	Cursor   int
	Feedback Outcome
	Best     int // Best score since the program started
	Games    int // Games finished since the program started
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Status:   g.session.Status(),
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		TimeLeft: g.session.TimeLeft(),
		Round:    g.session.Round(),
		Cursor:   g.cursor,
		Feedback: g.feedback.Current(),
		Best:     g.best,
		Games:    g.games,
	}
}
