package comm_test

import (
	"context"
	"testing"

	"github.com/exseisdat/segyio/comm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBasics(t *testing.T) {
	ctx := context.Background()
	c := comm.NewLocal()

	assert.Equal(t, 0, c.Rank())
	assert.Equal(t, 1, c.NumRanks())

	sum, err := c.Sum(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), sum)

	off, err := c.ExscanOffset(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), off)
}

func TestLocalDistributedVector(t *testing.T) {
	ctx := context.Background()
	c := comm.NewLocal()

	v, err := c.NewDistributedVector(ctx, 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), v.Size())

	require.NoError(t, v.SetN(ctx, 4, []byte{1, 2, 3}))
	out := make([]byte, 3)
	require.NoError(t, v.GetN(ctx, 4, out))
	assert.Equal(t, []byte{1, 2, 3}, out)
}

func TestGroupSumMinMax(t *testing.T) {
	const n = 4
	results := make([]uint64, n)

	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		sum, err := c.Sum(ctx, uint64(c.Rank()+1))
		if err != nil {
			return err
		}
		results[c.Rank()] = sum

		return nil
	})
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, uint64(1+2+3+4), r)
	}
}

func TestGroupExscanOffset(t *testing.T) {
	const n = 4
	offsets := make([]uint64, n)

	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		off, err := c.ExscanOffset(ctx, uint64(c.Rank()+1))
		if err != nil {
			return err
		}
		offsets[c.Rank()] = off

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 3, 6}, offsets)
}

func TestGroupGather(t *testing.T) {
	const n = 3
	var gathered [][][]byte
	gathered = make([][][]byte, n)

	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		local := []byte{byte(c.Rank())}
		res, err := c.Gather(ctx, local)
		if err != nil {
			return err
		}
		gathered[c.Rank()] = res

		return nil
	})
	require.NoError(t, err)

	for _, g := range gathered {
		require.Len(t, g, n)
		for i, b := range g {
			assert.Equal(t, byte(i), b[0])
		}
	}
}

func TestGroupBarrierReleasesAllRanks(t *testing.T) {
	const n = 8
	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		return c.Barrier(ctx)
	})
	require.NoError(t, err)
}

func TestGroupDistributedVectorSharedAcrossRanks(t *testing.T) {
	const n = 2
	err := comm.RunGroup(context.Background(), n, func(ctx context.Context, c comm.Communicator) error {
		v, err := c.NewDistributedVector(ctx, 8)
		if err != nil {
			return err
		}

		if c.Rank() == 0 {
			if err := v.SetN(ctx, 0, []byte{0xAA}); err != nil {
				return err
			}
		}

		if err := v.Sync(ctx); err != nil {
			return err
		}
		if err := c.Barrier(ctx); err != nil {
			return err
		}

		out := make([]byte, 1)
		if err := v.GetN(ctx, 0, out); err != nil {
			return err
		}
		assert.Equal(t, byte(0xAA), out[0])

		return nil
	})
	require.NoError(t, err)
}

func TestRunGroupAggregatesAllErrors(t *testing.T) {
	const n = 3
	err := comm.RunGroup(context.Background(), n, func(_ context.Context, c comm.Communicator) error {
		if c.Rank() == 1 {
			return assert.AnError
		}

		return nil
	})
	require.Error(t, err)
}
