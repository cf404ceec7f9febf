package conscolor

import "io"

// ANSIBackend renders color requests as SGR escape sequences written to a
// stream. The stream has no portable way to report its pre-existing colors,
// so Default renders as the terminal's own default codes (39/49).
type ANSIBackend struct {
	out  io.Writer
	diag func(string)
	esc  *sgrBuilder
}

// Ensure ANSIBackend implements Backend.
var _ Backend = (*ANSIBackend)(nil)

// NewANSIBackend returns a backend writing escape sequences to out.
// diag may be nil.
func NewANSIBackend(out io.Writer, diag func(string)) *ANSIBackend {
	return &ANSIBackend{out: out, diag: diag, esc: newSGRBuilder(32)}
}

// Negotiate classifies the terminal from the environment and maps the
// resulting family to its capability profile.
func (a *ANSIBackend) Negotiate(getenv func(string) string, kver KernelVersionFunc) Profile {
	return ProfileFor(Classify(getenv, kver))
}

// Apply writes the escape sequences for the requested channels. Targets
// without color support get nothing at all: escape codes a terminal cannot
// parse corrupt its output, while missing color is only cosmetic.
func (a *ANSIBackend) Apply(fg, bg Color, p Profile) {
	if !p.ColorSupported {
		a.diagf("terminal profile has no color support; nothing emitted")
		return
	}
	seq := renderSGR(fg, bg, p, a.esc)
	if len(seq) == 0 {
		return
	}
	if _, err := a.out.Write(seq); err != nil {
		a.diagf("escape sequence write failed: " + err.Error())
	}
}

func (a *ANSIBackend) diagf(msg string) {
	if a.diag != nil {
		a.diag(msg)
	}
}

// renderSGR encodes a color request against a capability profile.
// Background and foreground are emitted as separate consecutive escape
// sequences, background first, never merged into one parameter list.
func renderSGR(fg, bg Color, p Profile, b *sgrBuilder) []byte {
	b.Reset()

	if fg == Current && bg == Current {
		return nil
	}
	if fg == Default && bg == Default {
		b.fullReset()
		return b.Bytes()
	}

	if bg != Current {
		appendChannel(b, sgrBackground(bg), p, false)
	}
	if fg != Current {
		appendChannel(b, sgrForeground(fg), p, true)
	}
	return b.Bytes()
}

// appendChannel writes one complete SGR sequence for a single channel.
// code is the raw base code: 30-37/90-97 or 39 for the foreground,
// 40-47/100-107 or 49 for the background.
func appendChannel(b *sgrBuilder, code int, p Profile, foreground bool) {
	b.beginSGR()

	if !foreground && p.UseInvertForBackground {
		// The target cannot address the background directly: invert the
		// video and color the foreground instead.
		b.param(7)
		code -= 10
	}

	// The default codes have no 256-palette entry, and a limited
	// background channel must stay on the 16-color form even when the
	// foreground can use the extended one.
	sixteen := code == 39 || code == 49 || !p.Use256ColorFormat
	if !foreground && p.EightBackgroundColorsOnly {
		sixteen = true
	}

	switch {
	case !sixteen:
		b.param(extendedIntro(code))
		b.param(5)
		b.param(paletteIndex(code))
	case p.UseIntensityBitFormat && isBrightCode(code):
		if p.EightColorsOnly {
			// No brightness available at all: base color, intensity off.
			b.param(0)
		} else {
			b.param(1)
		}
		b.param(code - 60)
	case p.UseIntensityBitFormat:
		b.param(0)
		b.param(code)
	default:
		b.param(code)
	}

	b.endSGR()
}

// isBrightCode reports whether code is in the high-intensity SGR ranges.
func isBrightCode(code int) bool {
	return (code >= 90 && code <= 97) || (code >= 100 && code <= 107)
}

// extendedIntro returns the 256-color introducer for the channel the code
// belongs to: 38 for foreground codes, 48 for background codes.
func extendedIntro(code int) int {
	if (code >= 40 && code <= 47) || (code >= 100 && code <= 107) || code == 49 {
		return 48
	}
	return 38
}

// paletteIndex maps a 16-color SGR base code onto the first sixteen
// entries of the 256-color palette: base codes land on 0-7, bright codes
// on 8-15, for either channel.
func paletteIndex(code int) int {
	switch {
	case code >= 30 && code <= 37:
		return code - 30
	case code >= 90 && code <= 97:
		return code - 90 + 8
	case code >= 40 && code <= 47:
		return code - 40
	case code >= 100 && code <= 107:
		return code - 100 + 8
	}
	return 0
}
