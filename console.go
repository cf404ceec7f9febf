package conscolor

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Backend renders an abstract color request in the encoding its target
// understands.
type Backend interface {
	// Negotiate determines, once per Console, what the target can render.
	Negotiate(getenv func(string) string, kver KernelVersionFunc) Profile

	// Apply renders the requested foreground and background under the
	// negotiated profile. Current leaves a channel untouched; Default
	// restores the value captured before this process changed it.
	Apply(fg, bg Color, p Profile)
}

// Console is the entry point for changing console colors. It negotiates the
// capability profile once, on first use, and holds it for the process
// lifetime; construct one per process, or a fresh one per test.
//
// No method returns an error. Color is cosmetic: every failure degrades to
// no visible change and is reported only through the diagnostic callback.
type Console struct {
	out     io.Writer
	getenv  func(string) string
	kver    KernelVersionFunc
	backend Backend
	diag    func(string)

	once    sync.Once
	profile Profile
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets the stream escape sequences are written to.
// Default is os.Stdout. Native backends ignore it.
func WithOutput(out io.Writer) Option {
	return func(c *Console) {
		c.out = out
	}
}

// WithEnviron sets the environment lookup used for classification.
// Default is os.Getenv.
func WithEnviron(getenv func(string) string) Option {
	return func(c *Console) {
		c.getenv = getenv
	}
}

// WithKernelVersion sets the kernel version source used for the Linux
// virtual-console tie-break. Default is HostKernelVersion.
func WithKernelVersion(kver KernelVersionFunc) Option {
	return func(c *Console) {
		c.kver = kver
	}
}

// WithBackend sets the rendering backend. Default is the platform's native
// one: escape sequences on POSIX, the console attribute word on Windows.
func WithBackend(b Backend) Option {
	return func(c *Console) {
		c.backend = b
	}
}

// WithDiagnostic sets a callback invoked with a short message whenever a
// request degrades to doing nothing. Without it such failures are silent.
func WithDiagnostic(diag func(string)) Option {
	return func(c *Console) {
		c.diag = diag
	}
}

// New returns a Console for the current process. Capability negotiation is
// deferred to the first color change.
func New(opts ...Option) *Console {
	c := &Console{
		out:    os.Stdout,
		getenv: os.Getenv,
		kver:   HostKernelVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.backend == nil {
		c.backend = defaultBackend(c)
	}
	return c
}

// init computes the capability profile exactly once, guarding against
// concurrent first use.
func (c *Console) init() {
	c.once.Do(func() {
		c.profile = c.backend.Negotiate(c.getenv, c.kver)
	})
}

// Profile returns the negotiated capability profile.
func (c *Console) Profile() Profile {
	c.init()
	return c.profile
}

// SetForeground changes the foreground color, leaving the background
// untouched.
func (c *Console) SetForeground(fg Color) {
	c.SetColors(fg, Current)
}

// SetBackground changes the background color, leaving the foreground
// untouched.
func (c *Console) SetBackground(bg Color) {
	c.SetColors(Current, bg)
}

// SetColors changes both channels. Current leaves a channel untouched;
// Default restores it to the value found before this process first changed
// the console.
func (c *Console) SetColors(fg, bg Color) {
	c.init()
	c.backend.Apply(fg, bg, c.profile)
}

// Reset restores both channels to the colors captured before this process
// first changed them.
func (c *Console) Reset() {
	c.SetColors(Default, Default)
}

// Swatch prints each concrete color's name in that color to w, one per
// line, restoring the default colors after each. Intended for diagnostics.
func (c *Console) Swatch(w io.Writer) {
	for col := Black; col <= BrightWhite; col++ {
		c.SetForeground(col)
		fmt.Fprintf(w, "%s", col)
		c.Reset()
		fmt.Fprintln(w)
	}
}
