package file_test

import (
	"context"
	"math"
	"testing"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/file"
	"github.com/exseisdat/segyio/tracemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minMaxTypeMap() tracemd.TypeMap {
	return tracemd.TypeMap{
		tracemd.SourceX: {Type: tracemd.TypeF64},
	}
}

// TestMinMax_SingleRank covers the non-collective case against plain Go
// math, as a baseline before the multi-rank cases exercise the uint64
// reduction.
func TestMinMax_SingleRank(t *testing.T) {
	ctx := context.Background()
	c := comm.NewLocal()

	md := tracemd.New(minMaxTypeMap(), 3)
	values := []float64{-12.5, 40.25, -3.0}
	for i, v := range values {
		require.NoError(t, md.SetFloatingPoint(i, tracemd.SourceX, v))
	}

	min, max, err := file.MinMax(ctx, c, md, tracemd.SourceX)
	require.NoError(t, err)

	assert.Equal(t, -12.5, min.Value)
	assert.Equal(t, 0, min.Row)
	assert.Equal(t, 40.25, max.Value)
	assert.Equal(t, 1, max.Row)
}

// TestMinMax_MultiRankMixedSign reproduces the case a bit-reinterpreted
// float64-as-uint64 reduction gets wrong: ranks hold both negative and
// positive SourceX values, and the true minimum is a negative number more
// negative than any positive value present. A uint64 reduction over
// math.Float64bits would instead report a positive value as the "minimum"
// (every negative bit pattern sorts above every positive one), and would
// pick the wrong owning rank for the maximum too.
func TestMinMax_MultiRankMixedSign(t *testing.T) {
	ctx := context.Background()

	const numRanks = 4
	// rank -> this rank's single SourceX value.
	perRank := []float64{-500.0, 10.0, -1.0, 250.5}

	var min, max file.CoordElem
	err := comm.RunGroup(ctx, numRanks, func(ctx context.Context, c comm.Communicator) error {
		md := tracemd.New(minMaxTypeMap(), 1)
		require.NoError(t, md.SetFloatingPoint(0, tracemd.SourceX, perRank[c.Rank()]))

		localMin, localMax, err := file.MinMax(ctx, c, md, tracemd.SourceX)
		if err != nil {
			return err
		}

		if c.Rank() == 0 {
			min, max = localMin, localMax
		}

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, -500.0, min.Value)
	assert.Equal(t, 0, min.Row)
	assert.Equal(t, 0, min.Rank, "rank 0 holds the true minimum, -500.0")

	assert.Equal(t, 250.5, max.Value)
	assert.Equal(t, 0, max.Row)
	assert.Equal(t, 3, max.Rank, "rank 3 holds the true maximum, 250.5")
}

// TestMinMax_MultiRankAllNegative guards the other half of the ordering fix:
// among negative values, more-negative magnitude must still sort below less
// -negative magnitude once mapped through the monotonic uint64 key.
func TestMinMax_MultiRankAllNegative(t *testing.T) {
	ctx := context.Background()

	const numRanks = 3
	perRank := []float64{-1.5, -1000.0, -42.0}

	var min, max file.CoordElem
	err := comm.RunGroup(ctx, numRanks, func(ctx context.Context, c comm.Communicator) error {
		md := tracemd.New(minMaxTypeMap(), 1)
		require.NoError(t, md.SetFloatingPoint(0, tracemd.SourceX, perRank[c.Rank()]))

		localMin, localMax, err := file.MinMax(ctx, c, md, tracemd.SourceX)
		if err != nil {
			return err
		}

		if c.Rank() == 0 {
			min, max = localMin, localMax
		}

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, -1000.0, min.Value)
	assert.Equal(t, 1, min.Rank)

	assert.Equal(t, -1.5, max.Value)
	assert.Equal(t, 0, max.Rank)
}

// TestMinMax_MultiRankSignBoundaryExtremes pins the edge values a naive
// bit-cast reduction is most likely to get backwards: the most negative and
// most positive finite float64 values present simultaneously.
func TestMinMax_MultiRankSignBoundaryExtremes(t *testing.T) {
	ctx := context.Background()

	const numRanks = 2
	perRank := []float64{-math.MaxFloat64, math.MaxFloat64}

	var min, max file.CoordElem
	err := comm.RunGroup(ctx, numRanks, func(ctx context.Context, c comm.Communicator) error {
		md := tracemd.New(minMaxTypeMap(), 1)
		require.NoError(t, md.SetFloatingPoint(0, tracemd.SourceX, perRank[c.Rank()]))

		localMin, localMax, err := file.MinMax(ctx, c, md, tracemd.SourceX)
		if err != nil {
			return err
		}

		if c.Rank() == 0 {
			min, max = localMin, localMax
		}

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, -math.MaxFloat64, min.Value)
	assert.Equal(t, 0, min.Rank)

	assert.Equal(t, math.MaxFloat64, max.Value)
	assert.Equal(t, 1, max.Rank)
}
