// Package archive provides optional block-level compression for cold
// storage of trace data, separate from the on-disk SEG-Y layout that the
// file package reads and writes directly (SPEC_FULL.md §2 and §4, domain
// stack). A compressed trace block is never part of a valid SEG-Y
// file; archive is for side storage such as snapshot/cache files that
// hold the same samples in a smaller footprint.
package archive

import "fmt"

// CompressionType identifies which codec a compressed block was produced
// with.
type CompressionType int8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("CompressionType(%d)", int8(t))
	}
}

// Compressor compresses a block of sample or header bytes for cold
// storage.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for compressionType, returning an error that
// names target (the caller's description of what is being compressed) if
// the type is unrecognized.
func CreateCodec(compressionType CompressionType, target string) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for compressionType.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
