// Package oddtile implements the "find the odd tile" colour perception game:
// round generation, the timed session state machine, the countdown and
// feedback timers, and rendering into a core.Screen.
//
// Nothing here depends on Bubble Tea. The platform layer delivers timer
// messages and input, and this package decides what they mean.
package oddtile

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/oddtile/internal/core"
)

// HSL is a colour in the HSL space. Hue is in degrees [0,360); saturation
// and lightness are percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex converts the colour to a "#rrggbb" string. Channels outside their
// valid range are clamped for display only.
func (c HSL) Hex() string {
	return colorful.Hsl(
		core.ClampF(c.H, 0, 360),
		core.ClampF(c.S, 0, 100)/100,
		core.ClampF(c.L, 0, 100)/100,
	).Hex()
}

// Color returns the colour as a screen cell colour.
func (c HSL) Color() core.Color {
	return core.Color(c.Hex())
}

// String formats the colour the way CSS does.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}
