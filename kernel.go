package conscolor

// KernelVersion holds the major and minor components of the running
// kernel's release string.
type KernelVersion struct {
	Major int
	Minor int
}

// KernelVersionFunc reports the running kernel version. ok is false when
// the version cannot be determined; classification then assumes the more
// limited console.
type KernelVersionFunc func() (v KernelVersion, ok bool)

// parseKernelRelease extracts major.minor from a release string such as
// "5.10.0-35-amd64". Anything after the minor component is ignored.
func parseKernelRelease(release string) (KernelVersion, bool) {
	major, rest, ok := cutInt(release)
	if !ok || len(rest) == 0 || rest[0] != '.' {
		return KernelVersion{}, false
	}
	minor, _, ok := cutInt(rest[1:])
	if !ok {
		return KernelVersion{}, false
	}
	return KernelVersion{Major: major, Minor: minor}, true
}

// cutInt splits a leading decimal integer off s.
func cutInt(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:], i > 0
}
