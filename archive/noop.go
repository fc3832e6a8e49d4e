package archive

// NoOpCodec bypasses compression entirely, for archive callers that want
// the block-store interface without paying any compression cost.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that returns its input unchanged.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (c NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
