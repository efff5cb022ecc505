package compress

// ZstdCodec favors compression ratio; suited to long-term archival of
// message text. The implementation is selected at build time: cgo builds use
// the libzstd binding, pure-Go builds use a native implementation with
// pooled encoders and decoders.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
