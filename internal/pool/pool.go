// Package pool provides pooled text buffers for message serialization.
// Composing a value walks every populated child at every level, so the hot
// path reuses buffers instead of allocating one per element visited.
package pool

import "sync"

const (
	// TextBufferDefaultSize covers typical single-message serializations.
	TextBufferDefaultSize = 4 * 1024
	// TextBufferMaxThreshold is the largest buffer the pool retains; bigger
	// ones are dropped so one oversized message does not pin memory.
	TextBufferMaxThreshold = 256 * 1024
)

// TextBuffer is a minimal append-only byte buffer for building delimited text.
type TextBuffer struct {
	buf []byte
}

// WriteByte appends a single delimiter or text byte.
func (b *TextBuffer) WriteByte(c byte) {
	b.buf = append(b.buf, c)
}

// WriteString appends s.
func (b *TextBuffer) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// String returns the accumulated text as an independent string.
func (b *TextBuffer) String() string {
	return string(b.buf)
}

// Len returns the number of accumulated bytes.
func (b *TextBuffer) Len() int {
	return len(b.buf)
}

// Reset empties the buffer while keeping its capacity.
func (b *TextBuffer) Reset() {
	b.buf = b.buf[:0]
}

var textBufferPool = sync.Pool{
	New: func() any {
		return &TextBuffer{buf: make([]byte, 0, TextBufferDefaultSize)}
	},
}

// GetTextBuffer obtains an empty buffer from the pool.
func GetTextBuffer() *TextBuffer {
	b, _ := textBufferPool.Get().(*TextBuffer)
	b.Reset()

	return b
}

// PutTextBuffer returns a buffer to the pool unless it grew past the
// retention threshold.
func PutTextBuffer(b *TextBuffer) {
	if cap(b.buf) > TextBufferMaxThreshold {
		return
	}
	textBufferPool.Put(b)
}
