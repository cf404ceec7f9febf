package conscolor

// MockBackend is a Backend implementation for testing. It records every
// request, counts negotiations, and tracks attribute state with the same
// packing the native console backend uses, so channel isolation and
// default restoration are observable.
type MockBackend struct {
	profile    Profile
	negotiated int
	applies    []MockApply

	attr     uint16
	def      uint16
	captured bool
}

// MockApply is one recorded Apply call.
type MockApply struct {
	Fg, Bg  Color
	Profile Profile
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock with the given starting attribute word and
// the profile Negotiate will report.
func NewMockBackend(initial uint16, profile Profile) *MockBackend {
	return &MockBackend{profile: profile, attr: initial}
}

// Negotiate returns the configured profile and counts the call.
func (m *MockBackend) Negotiate(func(string) string, KernelVersionFunc) Profile {
	m.negotiated++
	return m.profile
}

// Apply records the request and updates the attribute word the way the
// native console backend would.
func (m *MockBackend) Apply(fg, bg Color, p Profile) {
	m.applies = append(m.applies, MockApply{Fg: fg, Bg: bg, Profile: p})
	if fg == Current && bg == Current {
		return
	}
	if !m.captured {
		m.def = m.attr
		m.captured = true
	}
	m.attr = packConsoleAttr(m.attr, fg, bg, m.def)
}

// Attr returns the current attribute word.
func (m *MockBackend) Attr() uint16 {
	return m.attr
}

// Negotiations returns how many times Negotiate ran.
func (m *MockBackend) Negotiations() int {
	return m.negotiated
}

// Applies returns the recorded Apply calls.
func (m *MockBackend) Applies() []MockApply {
	return m.applies
}
