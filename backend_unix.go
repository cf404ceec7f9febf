//go:build !windows

package conscolor

// defaultBackend selects the escape-sequence backend on POSIX targets.
func defaultBackend(c *Console) Backend {
	return NewANSIBackend(c.out, c.diag)
}
