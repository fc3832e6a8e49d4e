package file

import (
	"context"
	"math"

	"github.com/exseisdat/segyio/comm"
	"github.com/exseisdat/segyio/tracemd"
)

// CoordElem identifies one extremum of a MinMax scan: the rank that owns
// it, its trace row within that rank's metadata container, and its value.
type CoordElem struct {
	Rank  int
	Row   int
	Value float64
}

// MinMax is the collective min/max-by-key scan over a trace metadata
// column (ported from the original exseis piol's get_min_max collective
// reduction, §6 of SPEC_FULL.md). It scans md's key column locally, then
// uses c.Min/c.Max to agree the global extrema's value, and a second
// collective Gather to recover which rank (and row within it) actually
// holds each extremum.
func MinMax(ctx context.Context, c comm.Communicator, md *tracemd.Metadata, key tracemd.FieldKey) (min, max CoordElem, err error) {
	localMin := math.Inf(1)
	localMax := math.Inf(-1)
	minRow, maxRow := -1, -1

	for row := range md.Size() {
		v, getErr := md.GetFloatingPoint(row, key)
		if getErr != nil {
			return CoordElem{}, CoordElem{}, getErr
		}

		if v < localMin {
			localMin = v
			minRow = row
		}
		if v > localMax {
			localMax = v
			maxRow = row
		}
	}

	globalMinKey, err := c.Min(ctx, float64OrderedKey(localMin))
	if err != nil {
		return CoordElem{}, CoordElem{}, err
	}

	globalMaxKey, err := c.Max(ctx, float64OrderedKey(localMax))
	if err != nil {
		return CoordElem{}, CoordElem{}, err
	}

	globalMin := float64FromOrderedKey(globalMinKey)
	globalMax := float64FromOrderedKey(globalMaxKey)

	minOwner, err := resolveOwner(ctx, c, localMin == globalMin, minRow, globalMin)
	if err != nil {
		return CoordElem{}, CoordElem{}, err
	}

	maxOwner, err := resolveOwner(ctx, c, localMax == globalMax, maxRow, globalMax)
	if err != nil {
		return CoordElem{}, CoordElem{}, err
	}

	return minOwner, maxOwner, nil
}

// float64OrderedKey maps v to a uint64 that sorts identically to v under
// ordinary float ordering, so c.Min/c.Max (plain uint64 reducers) can scan
// it directly. A raw math.Float64bits reinterpretation does not have this
// property across the sign boundary: every negative value's bit pattern is
// numerically larger than every positive value's, and among negatives the
// ordering runs backwards. Flipping the sign bit of non-negative values and
// inverting every bit of negative values corrects both.
func float64OrderedKey(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits&(1<<63) == 0 {
		return bits | (1 << 63)
	}

	return ^bits
}

// float64FromOrderedKey inverts float64OrderedKey.
func float64FromOrderedKey(key uint64) float64 {
	if key&(1<<63) != 0 {
		return math.Float64frombits(key &^ (1 << 63))
	}

	return math.Float64frombits(^key)
}

// resolveOwner runs a collective Gather to find which rank contributed
// the agreed extremum, returning the first such rank's CoordElem (ties
// broken by rank order, matching the original's deterministic tie-break).
func resolveOwner(ctx context.Context, c comm.Communicator, isOwner bool, row int, value float64) (CoordElem, error) {
	var local int64 = -1
	if isOwner {
		local = int64(row)
	}

	rows, err := c.GatherInt(ctx, local)
	if err != nil {
		return CoordElem{}, err
	}

	for rank, r := range rows {
		if r >= 0 {
			return CoordElem{Rank: rank, Row: int(r), Value: value}, nil
		}
	}

	return CoordElem{Rank: -1, Row: -1, Value: value}, nil
}
