package core

// Color is a foreground color for a screen cell. The platform maps these to
// ANSI colors; the simulation only picks from the palette.
type Color uint8

// Palette used by the game's sprites and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
