package conscolor

import (
	"strings"
	"testing"
)

func TestProfileFor(t *testing.T) {
	type tc struct {
		family Family
		want   Profile
	}

	full256 := Profile{ColorSupported: true, Use256ColorFormat: true}
	plain16 := Profile{ColorSupported: true}

	tests := map[string]tc{
		"xterm-256color":     {family: FamilyXTerm256, want: full256},
		"generic-256color":   {family: FamilyGeneric256, want: full256},
		"sun-color":          {family: FamilySunColor, want: full256},
		"gnome-256color":     {family: FamilyGnome256, want: full256},
		"truecolor-256color": {family: FamilyTrueColor256, want: full256},
		"linux-256color": {
			family: FamilyLinux256,
			want: Profile{
				ColorSupported:            true,
				Use256ColorFormat:         true,
				UseIntensityBitFormat:     true,
				EightBackgroundColorsOnly: true,
			},
		},
		"linux-16color": {
			family: FamilyLinux16,
			want: Profile{
				ColorSupported:            true,
				UseIntensityBitFormat:     true,
				EightBackgroundColorsOnly: true,
			},
		},
		"xterm":         {family: FamilyXTerm, want: plain16},
		"aixterm":       {family: FamilyAIXTerm, want: plain16},
		"gnome-color":   {family: FamilyGnome, want: plain16},
		"generic-color": {family: FamilyGenericColor, want: plain16},
		"unknown": {
			family: FamilyUnknown,
			want:   Profile{ColorSupported: true, UseIntensityBitFormat: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ProfileFor(tt.family)
			if got != tt.want {
				t.Errorf("ProfileFor(%v) = %+v, want %+v", tt.family, got, tt.want)
			}
		})
	}
}

func TestProfileFor_EveryFamilySupportsColor(t *testing.T) {
	for f := FamilyUnknown; f <= FamilyLinux256; f++ {
		if !ProfileFor(f).ColorSupported {
			t.Errorf("ProfileFor(%v).ColorSupported = false; every known family renders color", f)
		}
	}
}

func TestProfile_String(t *testing.T) {
	type tc struct {
		profile  Profile
		contains []string
	}

	tests := map[string]tc{
		"no color": {
			profile:  Profile{},
			contains: []string{"no-color"},
		},
		"plain 16": {
			profile:  Profile{ColorSupported: true},
			contains: []string{"16-color-format"},
		},
		"256": {
			profile:  Profile{ColorSupported: true, Use256ColorFormat: true},
			contains: []string{"256-color-format"},
		},
		"linux console": {
			profile: Profile{
				ColorSupported:            true,
				UseIntensityBitFormat:     true,
				EightBackgroundColorsOnly: true,
			},
			contains: []string{"16-color-format", "intensity-bit", "8-background-colors"},
		},
		"inverted background": {
			profile:  Profile{ColorSupported: true, UseInvertForBackground: true},
			contains: []string{"invert-background"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := tt.profile.String()
			for _, substr := range tt.contains {
				if !strings.Contains(s, substr) {
					t.Errorf("String() = %q, should contain %q", s, substr)
				}
			}
		})
	}
}
