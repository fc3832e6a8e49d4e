//go:build cgo

package archive

import "github.com/valyala/gozstd"

// Under cgo, ZstdCodec uses gozstd's bindings to the reference C zstd
// library instead of the pure-Go port in zstd_pure.go.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
