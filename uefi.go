package conscolor

import "sync"

// TextOutputProtocol is the slice of the firmware simple-text-output
// protocol the renderer needs. The firmware owns the real handle; tests
// supply a fake.
type TextOutputProtocol interface {
	// Attribute returns the current packed attribute.
	Attribute() (int32, error)
	// SetAttribute applies a packed attribute.
	SetAttribute(attr int32) error
}

// The protocol packs the foreground into bits 0-3 and the background into
// bits 4-6. Its color table matches the console nibble layout, but the
// background is limited to the first eight entries by the protocol's own
// contract, so bright backgrounds drop their intensity bit.
const (
	uefiFgMask int32 = 0x0F
	uefiBgMask int32 = 0x70
)

// UEFIBackend renders against a firmware text-output protocol handle.
// A nil handle makes every request a no-op rather than an error.
type UEFIBackend struct {
	proto TextOutputProtocol
	diag  func(string)

	once sync.Once
	def  int32
}

// Ensure UEFIBackend implements Backend.
var _ Backend = (*UEFIBackend)(nil)

// NewUEFIBackend returns a backend bound to the given protocol handle.
// proto and diag may be nil.
func NewUEFIBackend(proto TextOutputProtocol, diag func(string)) *UEFIBackend {
	return &UEFIBackend{proto: proto, diag: diag}
}

// Negotiate returns the trivial profile: the protocol is queried directly
// on each request rather than classified from the environment.
func (u *UEFIBackend) Negotiate(func(string) string, KernelVersionFunc) Profile {
	return Profile{ColorSupported: true}
}

// Apply merges the request into the current attribute and applies the
// result. The first call that changes color captures the pre-existing
// attribute as the Default snapshot.
func (u *UEFIBackend) Apply(fg, bg Color, _ Profile) {
	if u.proto == nil {
		u.diagf("no text output protocol handle; nothing rendered")
		return
	}
	if fg == Current && bg == Current {
		return
	}
	u.once.Do(func() {
		attr, err := u.proto.Attribute()
		if err != nil {
			// No known default: fall back to black-on-black.
			u.diagf("protocol attribute query failed: " + err.Error())
			attr = 0
		}
		u.def = attr
	})
	cur, err := u.proto.Attribute()
	if err != nil {
		u.diagf("protocol attribute query failed: " + err.Error())
		return
	}
	if err := u.proto.SetAttribute(packUEFIAttr(cur, fg, bg, u.def)); err != nil {
		u.diagf("protocol attribute set failed: " + err.Error())
	}
}

func (u *UEFIBackend) diagf(msg string) {
	if u.diag != nil {
		u.diag(msg)
	}
}

// packUEFIAttr merges a color request into the current protocol attribute,
// preserving the untouched channel.
func packUEFIAttr(cur int32, fg, bg Color, def int32) int32 {
	attr := cur
	switch fg {
	case Current:
	case Default:
		attr = attr&^uefiFgMask | def&uefiFgMask
	default:
		attr = attr&^uefiFgMask | uefiAttr(fg)
	}
	switch bg {
	case Current:
	case Default:
		attr = attr&^uefiBgMask | def&uefiBgMask
	default:
		attr = attr&^uefiBgMask | (uefiAttr(bg)&0x7)<<4
	}
	return attr
}

// uefiAttr maps a concrete color onto the protocol color table. The table
// shares the console nibble layout, with the brown entry standing in for
// non-bright yellow.
func uefiAttr(c Color) int32 {
	return int32(winAttr(c))
}
