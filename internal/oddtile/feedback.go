package oddtile

// Feedback is the transient correct/wrong indicator shown after a pick.
// Set returns a token the platform hands back to Clear once the display
// delay has passed. A later Set supersedes any pending clear.
type Feedback struct {
	outcome Outcome
	gen     Token
}

// Set shows an outcome and returns the token that clears it.
func (f *Feedback) Set(o Outcome) Token {
	f.gen++
	f.outcome = o
	return f.gen
}

// Clear hides the indicator if t is the latest token. It reports whether
// anything was cleared.
func (f *Feedback) Clear(t Token) bool {
	if t != f.gen || f.outcome == OutcomeNone {
		return false
	}
	f.outcome = OutcomeNone
	return true
}

// Reset hides the indicator and invalidates pending clears.
func (f *Feedback) Reset() {
	f.gen++
	f.outcome = OutcomeNone
}

// Current returns the outcome on display, or OutcomeNone.
func (f *Feedback) Current() Outcome {
	return f.outcome
}
