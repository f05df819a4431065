package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color when drawing.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorGray
)
