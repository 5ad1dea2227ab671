package core

// Color is a logical foreground color for a screen cell.
// Frontends map it to real colors through a theme, so games only pick roles.
type Color uint8

// Palette entries. ColorDefault leaves the terminal's own color alone.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	NumColors // Size of a palette indexed by Color
)

var colorNames = [NumColors]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if c < NumColors {
		return colorNames[c]
	}
	return "unknown"
}
