//go:build linux

package conscolor

import "golang.org/x/sys/unix"

// HostKernelVersion reads the running kernel version via uname(2).
func HostKernelVersion() (KernelVersion, bool) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return KernelVersion{}, false
	}
	return parseKernelRelease(cString(uts.Release[:]))
}

// cString converts a NUL-terminated byte array field to a string.
func cString(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}
