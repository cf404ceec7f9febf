package conscolor

import "testing"

// envMap returns an environment lookup backed by a fixed map.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func staticKernel(v KernelVersion, ok bool) KernelVersionFunc {
	return func() (KernelVersion, bool) { return v, ok }
}

func TestClassify(t *testing.T) {
	type tc struct {
		env      map[string]string
		kernel   KernelVersion
		noKernel bool
		want     Family
	}

	tests := map[string]tc{
		"xterm-256color": {
			env:  map[string]string{"TERM": "xterm-256color"},
			want: FamilyXTerm256,
		},
		"aixterm": {
			env:  map[string]string{"TERM": "aixterm"},
			want: FamilyAIXTerm,
		},
		"sun-color": {
			env:  map[string]string{"TERM": "sun-color"},
			want: FamilySunColor,
		},
		"plain xterm stands when nothing refines it": {
			env:  map[string]string{"TERM": "xterm"},
			want: FamilyXTerm,
		},
		"xterm promoted by gnome-terminal": {
			env:  map[string]string{"TERM": "xterm", "COLORTERM": "gnome-terminal"},
			want: FamilyGnome256,
		},
		"gnome-terminal without xterm": {
			env:  map[string]string{"TERM": "vt220", "COLORTERM": "gnome-terminal"},
			want: FamilyGnome,
		},
		"256color substring": {
			env:  map[string]string{"TERM": "screen-256color"},
			want: FamilyGeneric256,
		},
		"color substring": {
			env:  map[string]string{"TERM": "rxvt-color"},
			want: FamilyGenericColor,
		},
		"COLORTERM truecolor": {
			env:  map[string]string{"TERM": "foot", "COLORTERM": "truecolor"},
			want: FamilyTrueColor256,
		},
		"COLORTERM vte prefix": {
			env:  map[string]string{"COLORTERM": "vte-2.91"},
			want: FamilyTrueColor256,
		},
		"COLORTERM other non-empty value": {
			env:  map[string]string{"COLORTERM": "1"},
			want: FamilyGenericColor,
		},
		"COLORTERM does not downgrade a 256color TERM": {
			env:  map[string]string{"TERM": "screen-256color", "COLORTERM": "1"},
			want: FamilyGeneric256,
		},
		"COLORFGBG only": {
			env:  map[string]string{"COLORFGBG": "15;0"},
			want: FamilyGenericColor,
		},
		"no signals": {
			env:  map[string]string{},
			want: FamilyUnknown,
		},
		"TERM without color hint": {
			env:  map[string]string{"TERM": "vt100"},
			want: FamilyUnknown,
		},
		"linux console modern kernel": {
			env:    map[string]string{"TERM": "linux"},
			kernel: KernelVersion{Major: 5, Minor: 10},
			want:   FamilyLinux256,
		},
		"linux console kernel 4.0": {
			env:    map[string]string{"TERM": "linux"},
			kernel: KernelVersion{Major: 4, Minor: 0},
			want:   FamilyLinux256,
		},
		"linux console kernel 3.16": {
			env:    map[string]string{"TERM": "linux"},
			kernel: KernelVersion{Major: 3, Minor: 16},
			want:   FamilyLinux256,
		},
		"linux console kernel 3.15": {
			env:    map[string]string{"TERM": "linux"},
			kernel: KernelVersion{Major: 3, Minor: 15},
			want:   FamilyLinux16,
		},
		"linux console kernel 2.6": {
			env:    map[string]string{"TERM": "linux"},
			kernel: KernelVersion{Major: 2, Minor: 6},
			want:   FamilyLinux16,
		},
		"linux console unknown kernel": {
			env:      map[string]string{"TERM": "linux"},
			noKernel: true,
			want:     FamilyLinux16,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Classify(envMap(tt.env), staticKernel(tt.kernel, !tt.noKernel))
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_NilKernelFunc(t *testing.T) {
	got := Classify(envMap(map[string]string{"TERM": "linux"}), nil)
	if got != FamilyLinux16 {
		t.Errorf("Classify() with nil kernel func = %v, want FamilyLinux16", got)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	env := envMap(map[string]string{"TERM": "xterm", "COLORTERM": "gnome-terminal"})
	kver := staticKernel(KernelVersion{Major: 6, Minor: 1}, true)

	first := Classify(env, kver)
	second := Classify(env, kver)
	if first != second {
		t.Errorf("Classify() not idempotent: first %v, second %v", first, second)
	}
}
