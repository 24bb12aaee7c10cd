package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Base palette understood by the terminal renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles map playfield elements onto the palette.
const (
	ColorPipe      = ColorGreen
	ColorPipeCap   = ColorBrightGreen
	ColorFlyer     = ColorYellow
	ColorBeak      = ColorOrange
	ColorGround    = ColorGray
	ColorScore     = ColorBrightYellow
	ColorStatus    = ColorCyan
	ColorVoiceOn   = ColorBrightCyan
	ColorVoiceOff  = ColorGray
	ColorBreakWarn = ColorRed
)
