package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTextBufferAccumulate verifies byte and string writes build one text.
func TestTextBufferAccumulate(t *testing.T) {
	b := GetTextBuffer()
	defer PutTextBuffer(b)

	b.WriteString("PID")
	b.WriteByte('|')
	b.WriteString("12345")

	require.Equal(t, "PID|12345", b.String())
	require.Equal(t, 9, b.Len())
}

// TestTextBufferReuse verifies a pooled buffer comes back empty.
func TestTextBufferReuse(t *testing.T) {
	b := GetTextBuffer()
	b.WriteString("leftover")
	PutTextBuffer(b)

	b = GetTextBuffer()
	defer PutTextBuffer(b)
	require.Equal(t, 0, b.Len())
	require.Equal(t, "", b.String())
}

// TestTextBufferStringIsIndependent verifies the returned string survives
// later writes to the same buffer.
func TestTextBufferStringIsIndependent(t *testing.T) {
	b := GetTextBuffer()
	defer PutTextBuffer(b)

	b.WriteString("first")
	got := b.String()
	b.Reset()
	b.WriteString("second")

	require.Equal(t, "first", got)
}

// TestPutTextBufferDropsOversized verifies buffers past the retention
// threshold are not pooled. Behavior is indirect (the pool may allocate
// fresh buffers at will), so this only confirms Put accepts an oversized
// buffer without retaining growth forever.
func TestPutTextBufferDropsOversized(t *testing.T) {
	b := GetTextBuffer()
	b.WriteString(strings.Repeat("x", TextBufferMaxThreshold+1))
	PutTextBuffer(b)

	fresh := GetTextBuffer()
	defer PutTextBuffer(fresh)
	require.Equal(t, 0, fresh.Len())
}
