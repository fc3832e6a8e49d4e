package file

import (
	"context"

	"github.com/exseisdat/segyio/archive"
	"github.com/exseisdat/segyio/internal/pool"
	"github.com/exseisdat/segyio/segy"
)

// ExportBlock reads n contiguous traces' raw bytes (header and samples,
// uninterpreted) starting at trace offset and returns them compressed
// with codec, for cold storage outside the SEG-Y file itself. The result
// is not a valid SEG-Y file on its own; ImportBlock is the only supported
// way to read it back.
func ExportBlock(ctx context.Context, in *InputFile, offset int64, n int, codec archive.Codec) ([]byte, error) {
	traceSize := uint64(segy.TraceSize(in.ns))

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)
	bb.ExtendOrGrow(int(uint64(n) * traceSize))
	raw := bb.Bytes()

	if err := in.driver.Read(ctx, uint64(segy.TraceOffset(offset, in.ns)), uint64(len(raw)), raw); err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}

	// NoOpCodec returns raw itself rather than a fresh buffer; raw is
	// pool-owned and reused the moment this function returns, so the
	// caller needs its own copy.
	if len(compressed) > 0 && len(raw) > 0 && &compressed[0] == &raw[0] {
		owned := make([]byte, len(compressed))
		copy(owned, compressed)

		return owned, nil
	}

	return compressed, nil
}

// ImportBlock decompresses block with codec and writes the resulting n
// traces' raw bytes starting at trace offset in out.
func ImportBlock(ctx context.Context, out *OutputFile, offset int64, n int, block []byte, codec archive.Codec) error {
	raw, err := codec.Decompress(block)
	if err != nil {
		return err
	}

	return out.driver.Write(ctx, uint64(segy.TraceOffset(offset, out.ns)), raw)
}
