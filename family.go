package conscolor

// Family identifies a named terminal identity produced by classification.
// It exists only to derive a Profile; nothing persists it.
type Family int

const (
	// FamilyUnknown means no environment signal matched.
	FamilyUnknown Family = iota
	// FamilyXTerm is a plain xterm (TERM=xterm with no refinement).
	FamilyXTerm
	// FamilyXTerm256 is TERM=xterm-256color.
	FamilyXTerm256
	// FamilyGeneric256 is any TERM advertising 256color support.
	FamilyGeneric256
	// FamilyGenericColor is any TERM or COLORTERM advertising basic color.
	FamilyGenericColor
	// FamilySunColor is the Solaris console (TERM=sun-color).
	FamilySunColor
	// FamilyAIXTerm is the AIX terminal (TERM=aixterm).
	FamilyAIXTerm
	// FamilyGnome is gnome-terminal without an xterm TERM.
	FamilyGnome
	// FamilyGnome256 is gnome-terminal reporting TERM=xterm.
	FamilyGnome256
	// FamilyTrueColor256 is a truecolor-capable VTE-style terminal,
	// driven here through its 256-color format.
	FamilyTrueColor256
	// FamilyLinux16 is a Linux virtual console limited to 16 colors.
	FamilyLinux16
	// FamilyLinux256 is a Linux virtual console with 256-color support.
	FamilyLinux256
)

// String returns the family name for diagnostics.
func (f Family) String() string {
	switch f {
	case FamilyXTerm:
		return "xterm"
	case FamilyXTerm256:
		return "xterm-256color"
	case FamilyGeneric256:
		return "generic-256color"
	case FamilyGenericColor:
		return "generic-color"
	case FamilySunColor:
		return "sun-color"
	case FamilyAIXTerm:
		return "aixterm"
	case FamilyGnome:
		return "gnome-color"
	case FamilyGnome256:
		return "gnome-256color"
	case FamilyTrueColor256:
		return "truecolor-256color"
	case FamilyLinux16:
		return "linux-16color"
	case FamilyLinux256:
		return "linux-256color"
	}
	return "unknown"
}
