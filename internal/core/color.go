package core

// Color is a foreground color for a screen cell. It holds either an ANSI
// palette index ("1".."255") or a "#rrggbb" hex string, the two forms
// lipgloss accepts. The empty Color means the terminal default.
type Color string

// Named palette colors used by the HUD and overlays.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorCyan        Color = "6"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightWhite Color = "15"
	ColorGray        Color = "245"
)
