package core

// Color is a cell foreground color, mapped to a terminal style by the
// platform layer.
// Mapped to ANSI color codes by the platform layer.
type Color uint8

// Colors used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
