package oddtile

// Token identifies one arming of a Countdown or one Feedback signal. The
// zero Token is never issued.
type Token uint64

// Countdown is the repeating one-second timer of a session. The platform
// owns the actual clock: it schedules a delayed message carrying the token
// returned by Arm and asks Fire whether that message is still wanted.
//
// Arm starts a new epoch, so ticks scheduled for an earlier game are
// dropped. At most one epoch is live at a time.
type Countdown struct {
	epoch Token
	live  bool
}

// Arm starts a new epoch and returns its token. Any previous epoch is
// cancelled.
func (c *Countdown) Arm() Token {
	c.epoch++
	c.live = true
	return c.epoch
}

// Cancel stops the live epoch. Pending ticks for it will not fire.
func (c *Countdown) Cancel() {
	c.live = false
}

// Fire reports whether a tick carrying t belongs to the live epoch.
func (c *Countdown) Fire(t Token) bool {
	return c.live && t == c.epoch
}
