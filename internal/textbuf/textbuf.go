// Package textbuf provides the append-only output accumulator used by every
// rewriting pass. Once bytes are appended they are never revisited.
package textbuf

// Buffer accumulates output left to right. Runs of whitespace are written
// as a single space, and leading or trailing whitespace is never written.
type Buffer struct {
	b            []byte
	pendingSpace bool
}

// New returns a Buffer with room for sizeHint bytes.
func New(sizeHint int) *Buffer {
	return &Buffer{b: make([]byte, 0, sizeHint)}
}

// Space records a word separator. It is written only if more content follows.
func (b *Buffer) Space() {
	if len(b.b) > 0 {
		b.pendingSpace = true
	}
}

func (b *Buffer) flush() {
	if b.pendingSpace {
		b.b = append(b.b, ' ')
		b.pendingSpace = false
	}
}

// Byte appends a single byte.
func (b *Buffer) Byte(c byte) {
	b.flush()
	b.b = append(b.b, c)
}

// String appends s.
func (b *Buffer) String(s string) {
	if s == "" {
		return
	}
	b.flush()
	b.b = append(b.b, s...)
}

// Rune appends the UTF-8 encoding of r.
func (b *Buffer) Rune(r rune) {
	b.flush()
	b.b = append(b.b, string(r)...)
}

// Len returns the number of bytes written so far, excluding a pending space.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Result returns the accumulated text.
func (b *Buffer) Result() string {
	return string(b.b)
}
