//go:build windows

package conscolor

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

// defaultBackend selects the native console backend on Windows.
func defaultBackend(c *Console) Backend {
	return NewWindowsBackend(c.diag)
}

// WindowsBackend drives the console attribute word directly through the
// console API; no escape sequences are written.
type WindowsBackend struct {
	handle windows.Handle
	diag   func(string)

	once sync.Once
	def  uint16
}

// Ensure WindowsBackend implements Backend.
var _ Backend = (*WindowsBackend)(nil)

// NewWindowsBackend returns a backend bound to the process stdout console.
// diag may be nil.
func NewWindowsBackend(diag func(string)) *WindowsBackend {
	return &WindowsBackend{handle: windows.Handle(os.Stdout.Fd()), diag: diag}
}

// Negotiate returns the trivial profile: the console is queried directly
// on each request rather than classified from the environment.
func (w *WindowsBackend) Negotiate(func(string) string, KernelVersionFunc) Profile {
	return Profile{ColorSupported: true}
}

// Apply merges the request into the live attribute word and applies the
// result in a single call. The first call that changes color captures the
// pre-existing attributes as the Default snapshot.
func (w *WindowsBackend) Apply(fg, bg Color, _ Profile) {
	if fg == Current && bg == Current {
		return
	}
	w.once.Do(func() {
		w.def = w.readAttributes()
	})
	live := w.readAttributes()
	if err := windows.SetConsoleTextAttribute(w.handle, packConsoleAttr(live, fg, bg, w.def)); err != nil {
		w.diagf("console attribute set failed: " + err.Error())
	}
}

// readAttributes returns the live attribute word. An unreadable console
// degrades to black-on-black rather than an error.
func (w *WindowsBackend) readAttributes() uint16 {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(w.handle, &info); err != nil {
		w.diagf("console attribute query failed: " + err.Error())
		return 0
	}
	return info.Attributes
}

func (w *WindowsBackend) diagf(msg string) {
	if w.diag != nil {
		w.diag(msg)
	}
}
