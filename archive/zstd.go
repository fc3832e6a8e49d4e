package archive

// ZstdCodec compresses trace blocks with Zstandard, for the best ratio
// of the built-in codecs at the cost of more CPU time than S2 or LZ4.
// The concrete Compress/Decompress bodies live in zstd_cgo.go and
// zstd_pure.go behind a cgo build tag.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
