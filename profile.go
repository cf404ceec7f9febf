package conscolor

import "strings"

// Profile describes what color encoding a target can render. It is derived
// once per Console and consulted on every request; callers never see the
// Family it came from.
type Profile struct {
	// ColorSupported is false only for targets where emitting any escape
	// code would corrupt output.
	ColorSupported bool
	// Use256ColorFormat selects the extended ESC[38;5;n / ESC[48;5;n form.
	Use256ColorFormat bool
	// EightColorsOnly means no bright codes are available at all; bright
	// requests fall back to their base color.
	EightColorsOnly bool
	// EightBackgroundColorsOnly means the background channel is more
	// limited than the foreground and must use the 16-color form.
	EightBackgroundColorsOnly bool
	// UseIntensityBitFormat means bright colors need a separate intensity
	// parameter rather than the 90-97/100-107 codes.
	UseIntensityBitFormat bool
	// UseInvertForBackground means the background can only be rendered by
	// inverting video and coloring the foreground.
	UseInvertForBackground bool
}

// Base profiles the family table composes from. The Linux console variants
// derive from these by overriding fields rather than by switch fallthrough.
var (
	profile16  = Profile{ColorSupported: true}
	profile256 = Profile{ColorSupported: true, Use256ColorFormat: true}
)

// ProfileFor maps a terminal family to its capability profile. The mapping
// is a fixed table; it depends on nothing but its input.
func ProfileFor(f Family) Profile {
	switch f {
	case FamilyXTerm256, FamilyGeneric256, FamilySunColor, FamilyGnome256, FamilyTrueColor256:
		return profile256
	case FamilyLinux256:
		p := profile256
		p.UseIntensityBitFormat = true
		p.EightBackgroundColorsOnly = true
		return p
	case FamilyLinux16:
		p := profile16
		p.UseIntensityBitFormat = true
		p.EightBackgroundColorsOnly = true
		return p
	case FamilyXTerm, FamilyAIXTerm, FamilyGnome, FamilyGenericColor:
		return profile16
	default:
		// Unknown target: assume the most conservative subset that still
		// renders color rather than disabling it entirely.
		return Profile{ColorSupported: true, UseIntensityBitFormat: true}
	}
}

// String returns a human-readable description of the profile.
func (p Profile) String() string {
	if !p.ColorSupported {
		return "no-color"
	}

	var parts []string
	if p.Use256ColorFormat {
		parts = append(parts, "256-color-format")
	} else {
		parts = append(parts, "16-color-format")
	}
	if p.EightColorsOnly {
		parts = append(parts, "8-colors-only")
	}
	if p.EightBackgroundColorsOnly {
		parts = append(parts, "8-background-colors")
	}
	if p.UseIntensityBitFormat {
		parts = append(parts, "intensity-bit")
	}
	if p.UseInvertForBackground {
		parts = append(parts, "invert-background")
	}
	return strings.Join(parts, ", ")
}
