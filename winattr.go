package conscolor

// Console attribute word layout: bits 0-3 encode the foreground and bits
// 4-7 the background, each as a blue/green/red/intensity nibble. Bits
// above 7 (underline, DBCS byte flags) pass through untouched. The packing
// is kept separate from the syscall binding so it stays testable on any OS.

const (
	winFgMask uint16 = 0x000F
	winBgMask uint16 = 0x00F0
)

// packConsoleAttr merges a color request into the live attribute word.
// def supplies the nibbles for Default; Current preserves the live nibble.
func packConsoleAttr(live uint16, fg, bg Color, def uint16) uint16 {
	word := live
	switch fg {
	case Current:
	case Default:
		word = word&^winFgMask | def&winFgMask
	default:
		word = word&^winFgMask | winAttr(fg)
	}
	switch bg {
	case Current:
	case Default:
		word = word&^winBgMask | def&winBgMask
	default:
		word = word&^winBgMask | winAttr(bg)<<4
	}
	return word
}

// winAttr maps a concrete color onto the console nibble
// (blue=1, green=2, red=4, intensity=8).
func winAttr(c Color) uint16 {
	switch c {
	case Black:
		return 0x0
	case Blue:
		return 0x1
	case Green:
		return 0x2
	case Cyan:
		return 0x3
	case Red:
		return 0x4
	case Magenta:
		return 0x5
	case Yellow:
		return 0x6
	case White:
		return 0x7
	case Gray:
		return 0x8
	case BrightBlue:
		return 0x9
	case BrightGreen:
		return 0xA
	case BrightCyan:
		return 0xB
	case BrightRed:
		return 0xC
	case BrightMagenta:
		return 0xD
	case BrightYellow:
		return 0xE
	case BrightWhite:
		return 0xF
	}
	return 0x7
}
