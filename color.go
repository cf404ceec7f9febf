package conscolor

// Color is an abstract color request independent of any encoding.
// Zero value is Current, which leaves a channel untouched.
type Color int

const (
	// Current leaves the channel as it is.
	Current Color = iota
	// Default restores the value captured before this process first
	// changed the console.
	Default
	// Black through White are the eight base colors.
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	// Gray is the bright variant of black.
	Gray
	// BrightRed through BrightWhite are the high-intensity variants.
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// String returns the color name for diagnostics.
func (c Color) String() string {
	switch c {
	case Current:
		return "current"
	case Default:
		return "default"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	case Gray:
		return "gray"
	case BrightRed:
		return "bright-red"
	case BrightGreen:
		return "bright-green"
	case BrightYellow:
		return "bright-yellow"
	case BrightBlue:
		return "bright-blue"
	case BrightMagenta:
		return "bright-magenta"
	case BrightCyan:
		return "bright-cyan"
	case BrightWhite:
		return "bright-white"
	}
	return "invalid"
}

// sgrForeground returns the raw SGR base code for a foreground request:
// 30-37 for the base colors, 90-97 for the bright ones, 39 for Default.
// Current never reaches code resolution.
func sgrForeground(c Color) int {
	switch {
	case c >= Black && c <= White:
		return 30 + int(c-Black)
	case c == Gray:
		return 90
	case c >= BrightRed && c <= BrightWhite:
		return 91 + int(c-BrightRed)
	}
	return 39
}

// sgrBackground returns the raw SGR base code for a background request:
// 40-47, 100-107, or 49 for Default.
func sgrBackground(c Color) int {
	return sgrForeground(c) + 10
}
