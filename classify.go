package conscolor

import "strings"

// Classify inspects the process environment and picks the terminal family.
// Environment lookups and the kernel query are injected so classification
// is a pure function of its inputs; pass os.Getenv and HostKernelVersion
// for the real environment.
//
// Signals are checked in priority order. A definite TERM match wins
// outright; weaker matches are tentative and may be refined by COLORTERM
// or COLORFGBG before standing.
func Classify(getenv func(string) string, kver KernelVersionFunc) Family {
	tentative := FamilyUnknown

	switch term := getenv("TERM"); term {
	case "xterm-256color":
		return FamilyXTerm256
	case "aixterm":
		return FamilyAIXTerm
	case "sun-color":
		return FamilySunColor
	case "xterm":
		// Plain xterm may really be a gnome-terminal; COLORTERM decides.
		tentative = FamilyXTerm
	case "linux":
		// TERM=linux alone cannot distinguish the 16- and 256-color
		// virtual consoles; the kernel version breaks the tie.
		return classifyLinuxConsole(kver)
	default:
		if strings.Contains(term, "256color") {
			tentative = FamilyGeneric256
		} else if strings.Contains(term, "color") {
			tentative = FamilyGenericColor
		}
	}

	switch colorterm := getenv("COLORTERM"); {
	case colorterm == "gnome-terminal":
		if tentative == FamilyXTerm {
			return FamilyGnome256
		}
		return FamilyGnome
	case strings.Contains(colorterm, "truecolor") || strings.HasPrefix(colorterm, "vte"):
		return FamilyTrueColor256
	case colorterm != "":
		if tentative == FamilyUnknown {
			tentative = FamilyGenericColor
		}
	}

	if tentative == FamilyUnknown && getenv("COLORFGBG") != "" {
		tentative = FamilyGenericColor
	}

	return tentative
}

// classifyLinuxConsole distinguishes the Linux virtual console variants.
// The framebuffer console gained 256-color support in 3.16; anything 4.x
// or newer has it. An unknown kernel gets the 16-color family.
func classifyLinuxConsole(kver KernelVersionFunc) Family {
	if kver == nil {
		return FamilyLinux16
	}
	v, ok := kver()
	if !ok {
		return FamilyLinux16
	}
	if v.Major >= 4 || (v.Major == 3 && v.Minor >= 16) {
		return FamilyLinux256
	}
	return FamilyLinux16
}
