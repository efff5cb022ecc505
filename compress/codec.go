// Package compress provides compression codecs for serialized message text.
//
// Delimited healthcare messages are highly repetitive (segment type codes,
// padding delimiters, shared identifiers), so even fast algorithms compress
// them well. Callers that spool or ship canonical message text pick a codec
// by format.CompressionType; compression never touches the element tree
// itself, only its serialized form.
//
// Zstandard uses the cgo-backed implementation when cgo is available and a
// pure-Go implementation otherwise, selected by build tags.
package compress

import (
	"fmt"

	"github.com/arloliu/hl7v2/format"
)

// Compressor compresses a serialized message payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// algorithm, validating the data format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm. Implementations are safe
// for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
