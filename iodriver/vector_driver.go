package iodriver

import (
	"context"

	"github.com/exseisdat/segyio/comm"
)

// VectorDriver is a Driver backed by a comm.DistributedVector instead of a
// real file: an in-memory backing store spanning every rank's share of a
// shared byte vector, used for large-file scenarios where no filesystem
// round trip is wanted.
type VectorDriver struct {
	comm   comm.Communicator
	cfg    Config
	vector comm.DistributedVector
	closed bool
}

var _ Driver = (*VectorDriver)(nil)

// NewVectorDriver allocates a size-byte distributed vector through c and
// wraps it as a Driver. Collective: every rank must call it with the same
// size.
func NewVectorDriver(ctx context.Context, c comm.Communicator, cfg Config, size uint64) (*VectorDriver, error) {
	v, err := c.NewDistributedVector(ctx, size)
	if err != nil {
		return nil, err
	}

	return &VectorDriver{comm: c, cfg: cfg, vector: v}, nil
}

func (d *VectorDriver) IsOpen() bool { return d.vector != nil && !d.closed }

func (d *VectorDriver) Size(_ context.Context) (uint64, error) {
	return d.vector.Size(), nil
}

func (d *VectorDriver) Resize(ctx context.Context, newSize uint64) error {
	return d.vector.Resize(ctx, newSize)
}

func (d *VectorDriver) Read(ctx context.Context, offset, length uint64, out []byte) error {
	return runChunkedRounds(ctx, d.comm, offset, length, d.cfg.chunkMax(), func(c context.Context, chunkOff, chunkLen uint64) error {
		if chunkLen == 0 {
			return nil
		}

		localOff := chunkOff - offset

		return d.vector.GetN(c, chunkOff, out[localOff:localOff+chunkLen])
	})
}

func (d *VectorDriver) Write(ctx context.Context, offset uint64, in []byte) error {
	length := uint64(len(in))

	return runChunkedRounds(ctx, d.comm, offset, length, d.cfg.chunkMax(), func(c context.Context, chunkOff, chunkLen uint64) error {
		if chunkLen == 0 {
			return nil
		}

		localOff := chunkOff - offset

		return d.vector.SetN(c, chunkOff, in[localOff:localOff+chunkLen])
	})
}

func (d *VectorDriver) ReadStrided(ctx context.Context, offset, block, stride uint64, nBlocks int, out []byte) error {
	global, err := negotiateBlocks(ctx, d.comm, nBlocks)
	if err != nil {
		return err
	}

	for i := range global {
		if i >= nBlocks {
			if err := d.Read(ctx, offset, 0, nil); err != nil {
				return err
			}

			continue
		}

		blockOff := offset + uint64(i)*stride
		dst := out[uint64(i)*block : uint64(i+1)*block]
		if err := d.Read(ctx, blockOff, block, dst); err != nil {
			return err
		}
	}

	return nil
}

func (d *VectorDriver) WriteStrided(ctx context.Context, offset, block, stride uint64, nBlocks int, in []byte) error {
	global, err := negotiateBlocks(ctx, d.comm, nBlocks)
	if err != nil {
		return err
	}

	for i := range global {
		if i >= nBlocks {
			if err := d.Write(ctx, offset, nil); err != nil {
				return err
			}

			continue
		}

		blockOff := offset + uint64(i)*stride
		src := in[uint64(i)*block : uint64(i+1)*block]
		if err := d.Write(ctx, blockOff, src); err != nil {
			return err
		}
	}

	return nil
}

func (d *VectorDriver) ReadOffsets(ctx context.Context, block uint64, offsets []uint64, out []byte) error {
	global, err := negotiateBlocks(ctx, d.comm, len(offsets))
	if err != nil {
		return err
	}

	for i := range global {
		if i >= len(offsets) {
			if err := d.Read(ctx, 0, 0, nil); err != nil {
				return err
			}

			continue
		}

		dst := out[uint64(i)*block : uint64(i+1)*block]
		if err := d.Read(ctx, offsets[i], block, dst); err != nil {
			return err
		}
	}

	return nil
}

func (d *VectorDriver) WriteOffsets(ctx context.Context, block uint64, offsets []uint64, in []byte) error {
	global, err := negotiateBlocks(ctx, d.comm, len(offsets))
	if err != nil {
		return err
	}

	for i := range global {
		if i >= len(offsets) {
			if err := d.Write(ctx, 0, nil); err != nil {
				return err
			}

			continue
		}

		src := in[uint64(i)*block : uint64(i+1)*block]
		if err := d.Write(ctx, offsets[i], src); err != nil {
			return err
		}
	}

	return nil
}

func (d *VectorDriver) Sync(ctx context.Context) error {
	if err := d.vector.Sync(ctx); err != nil {
		return err
	}

	return d.comm.Barrier(ctx)
}

func (d *VectorDriver) Close() error {
	d.closed = true

	return nil
}
