package conscolor

import "strconv"

// sgrBuilder builds SGR escape sequences into a reusable pre-allocated
// buffer to minimize allocations.
type sgrBuilder struct {
	buf []byte
}

// newSGRBuilder creates a builder with the given initial capacity.
func newSGRBuilder(capacity int) *sgrBuilder {
	return &sgrBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (b *sgrBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Bytes returns the built escape sequences.
func (b *sgrBuilder) Bytes() []byte {
	return b.buf
}

// Len returns the current length of the buffer.
func (b *sgrBuilder) Len() int {
	return len(b.buf)
}

// beginSGR writes the Control Sequence Introducer (ESC [).
func (b *sgrBuilder) beginSGR() {
	b.buf = append(b.buf, '\x1b', '[')
}

// endSGR terminates the sequence.
func (b *sgrBuilder) endSGR() {
	b.buf = append(b.buf, 'm')
}

// param appends one numeric parameter, separated from any previous one.
func (b *sgrBuilder) param(n int) {
	if len(b.buf) > 0 && b.buf[len(b.buf)-1] != '[' {
		b.buf = append(b.buf, ';')
	}
	b.buf = strconv.AppendInt(b.buf, int64(n), 10)
}

// fullReset appends the complete reset sequence ESC[0m.
func (b *sgrBuilder) fullReset() {
	b.beginSGR()
	b.buf = append(b.buf, '0')
	b.endSGR()
}
