package core

// Color represents a cell colour on the terminal screen.
// Values are mapped to ANSI 256-colour styles by the platform layer.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPurple
	ColorSkyBlue
	ColorGray
	ColorDarkGray
)
