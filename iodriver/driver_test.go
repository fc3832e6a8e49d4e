package iodriver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDriverReadWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trace.sgy")
	require.NoError(t, os.WriteFile(path, make([]byte, 0), 0o644))

	c := comm.NewLocal()
	d, err := iodriver.NewFileDriver(c, iodriver.Config{}, path, true)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Resize(ctx, 16))

	payload := []byte("0123456789ABCDEF")
	require.NoError(t, d.Write(ctx, 0, payload))
	require.NoError(t, d.Sync(ctx))

	out := make([]byte, 16)
	require.NoError(t, d.Read(ctx, 0, 16, out))
	assert.Equal(t, payload, out)
}

func TestFileDriverSmallChunkMaxSplitsRounds(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trace.sgy")
	require.NoError(t, os.WriteFile(path, make([]byte, 0), 0o644))

	c := comm.NewLocal()
	d, err := iodriver.NewFileDriver(c, iodriver.Config{ChunkMax: 4}, path, true)
	require.NoError(t, err)
	defer d.Close()

	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i)
	}

	require.NoError(t, d.Resize(ctx, 20))
	require.NoError(t, d.Write(ctx, 0, payload))

	out := make([]byte, 20)
	require.NoError(t, d.Read(ctx, 0, 20, out))
	assert.Equal(t, payload, out)
}

func TestFileDriverStridedRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trace.sgy")
	require.NoError(t, os.WriteFile(path, make([]byte, 0), 0o644))

	c := comm.NewLocal()
	d, err := iodriver.NewFileDriver(c, iodriver.Config{}, path, true)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Resize(ctx, 30))

	payload := []byte{1, 1, 1, 2, 2, 2, 3, 3, 3}
	require.NoError(t, d.WriteStrided(ctx, 0, 3, 10, 3, payload))

	out := make([]byte, 9)
	require.NoError(t, d.ReadStrided(ctx, 0, 3, 10, 3, out))
	assert.Equal(t, payload, out)
}

func TestFileDriverOffsetsRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trace.sgy")
	require.NoError(t, os.WriteFile(path, make([]byte, 0), 0o644))

	c := comm.NewLocal()
	d, err := iodriver.NewFileDriver(c, iodriver.Config{}, path, true)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Resize(ctx, 40))

	offsets := []uint64{0, 20, 10}
	payload := []byte{9, 9, 8, 8, 7, 7}
	require.NoError(t, d.WriteOffsets(ctx, 2, offsets, payload))

	out := make([]byte, 6)
	require.NoError(t, d.ReadOffsets(ctx, 2, offsets, out))
	assert.Equal(t, payload, out)
}

func TestVectorDriverReadWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := comm.NewLocal()

	d, err := iodriver.NewVectorDriver(ctx, c, iodriver.Config{}, 16)
	require.NoError(t, err)
	defer d.Close()

	payload := []byte("ABCDEFGHIJKLMNOP")
	require.NoError(t, d.Write(ctx, 0, payload))

	out := make([]byte, 16)
	require.NoError(t, d.Read(ctx, 0, 16, out))
	assert.Equal(t, payload, out)
}

func TestVectorDriverGroupSharesBackingStore(t *testing.T) {
	const n = 2

	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		d, err := iodriver.NewVectorDriver(ctx, c, iodriver.Config{}, 8)
		if err != nil {
			return err
		}
		defer d.Close()

		payload := []byte{1, 2, 3, 4}
		var in []byte
		if c.Rank() == 0 {
			in = payload
		}
		// Write is collective: rank 1 joins with a zero-length write.
		if err := d.Write(ctx, 0, in); err != nil {
			return err
		}
		if err := d.Sync(ctx); err != nil {
			return err
		}

		out := make([]byte, len(payload))
		if err := d.Read(ctx, 0, uint64(len(out)), out); err != nil {
			return err
		}
		assert.Equal(t, payload, out)

		return nil
	})
	require.NoError(t, err)
}
