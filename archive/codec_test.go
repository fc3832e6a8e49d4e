package archive_test

import (
	"bytes"
	"testing"

	"github.com/exseisdat/segyio/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBlock() []byte {
	data := make([]byte, 8192)
	pattern := []byte("trace sample block 0123456789")
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func allCodecs(t *testing.T) map[string]archive.Codec {
	t.Helper()

	return map[string]archive.Codec{
		"noop": archive.NewNoOpCodec(),
		"s2":   archive.NewS2Codec(),
		"lz4":  archive.NewLZ4Codec(),
		"zstd": archive.NewZstdCodec(),
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	data := sampleBlock()

	for name, codec := range allCodecs(t) {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)

			assert.True(t, bytes.Equal(data, decompressed))
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for name, codec := range allCodecs(t) {
		if name == "noop" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	c, err := archive.CreateCodec(archive.CompressionZstd, "trace block")
	require.NoError(t, err)
	assert.IsType(t, archive.ZstdCodec{}, c)

	_, err = archive.CreateCodec(archive.CompressionType(99), "trace block")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	c, err := archive.GetCodec(archive.CompressionS2)
	require.NoError(t, err)
	assert.IsType(t, archive.S2Codec{}, c)

	_, err = archive.GetCodec(archive.CompressionType(99))
	require.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "zstd", archive.CompressionZstd.String())
	assert.Equal(t, "none", archive.CompressionNone.String())
}
