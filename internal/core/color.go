package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color code.
type Color uint8

// Palette used by the canyon renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorBrown
)
