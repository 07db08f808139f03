package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors when rendering.
type Color uint8

// Colors used by the playfield and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightBlue
)
