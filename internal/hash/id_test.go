package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestID verifies the hash against known xxHash64 reference vectors.
func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

// TestIDMatchesSum64 verifies the string and byte entry points agree, since
// fingerprints are written from strings and verified from byte payloads.
func TestIDMatchesSum64(t *testing.T) {
	const text = "MSH|^~\\&|SND|SFAC\rPID|1||12345"
	require.Equal(t, ID(text), Sum64([]byte(text)))
	require.NotEqual(t, ID(text), ID(text+"x"))
}

func BenchmarkID(b *testing.B) {
	const text = "MSH|^~\\&|SND|SFAC|RCV|RFAC|20260826||ADT^A01|MSG001|P|2.5"
	for b.Loop() {
		ID(text)
	}
}
