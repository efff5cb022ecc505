package compress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hl7v2/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	}
}

// sampleMessage is representative payload: repetitive segment text with
// padding delimiter runs, the shape these codecs exist for.
var sampleMessage = []byte(strings.Repeat(
	"MSH|^~\\&|SND|SFAC|RCV|RFAC|20260826||ADT^A01|MSG001|P|2.5\r"+
		"PID|1||12345^^^MRN&1~67890^^^SSN||DOE^JOHN|||||\r"+
		"OBX|1|NM|8867-4^Heart rate^LN||72|bpm\r", 64))

// TestGetCodec verifies lookup by compression type and rejection of unknown
// types.
func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "type %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

// TestAllCodecs_RoundTrip verifies every codec restores payloads byte for
// byte across payload shapes.
func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "message_text", data: sampleMessage},
		{name: "single_byte", data: []byte{0x42}},
		{name: "delimiter_run", data: bytes.Repeat([]byte{'|'}, 512)},
		{name: "binary_data", data: []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD}},
		{name: "highly_compressible", data: make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

// TestAllCodecs_EmptyData verifies nil and empty payloads pass through
// without error.
func TestAllCodecs_EmptyData(t *testing.T) {
	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

// TestAllCodecs_InvalidData verifies the validating codecs reject garbage.
func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte("this is not compressed data at all, not even close")

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

// TestAllCodecs_ConcurrentUsage verifies codecs are safe for concurrent use;
// the pooled implementations must not share state across goroutines.
func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const goroutines = 16

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, goroutines)
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 50; j++ {
						compressed, err := codec.Compress(sampleMessage)
						if err != nil {
							errs <- err
							return
						}
						decompressed, err := codec.Decompress(compressed)
						if err != nil {
							errs <- err
							return
						}
						if !bytes.Equal(sampleMessage, decompressed) {
							errs <- errors.New("round-trip mismatch")
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

// TestNoOpPassThrough verifies the no-op codec shares the input slice.
func TestNoOpPassThrough(t *testing.T) {
	codec := NewNoOpCodec()

	compressed, err := codec.Compress(sampleMessage)
	require.NoError(t, err)
	require.Equal(t, &sampleMessage[0], &compressed[0])
}
