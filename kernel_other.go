//go:build !linux

package conscolor

// HostKernelVersion reports an unknown kernel version. Only the Linux
// virtual-console tie-break consumes it, so nothing is lost elsewhere.
func HostKernelVersion() (KernelVersion, bool) {
	return KernelVersion{}, false
}
