package file

import (
	"context"
	"math"

	"github.com/exseisdat/segyio/blobparser"
	"github.com/exseisdat/segyio/codec"
	"github.com/exseisdat/segyio/internal/pool"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// scratchPool holds the per-round staging buffers used to stage strided
// trace header/sample transfers; every contiguous and non-contiguous read
// or write in this package borrows from it instead of allocating fresh.
var scratchPool = pool.NewByteBufferPool(pool.TraceBufferDefaultSize, pool.TraceBufferMaxThreshold)

// maxInt32Magnitude bounds the stored value a coordinate-scaled int32 can
// hold.
const maxInt32Magnitude = float64(1<<31 - 1)

// scalarCandidates is every representable SEG-Y coordinate scalar, ordered
// from finest (most precision) to coarsest (most headroom).
var scalarCandidates = [9]int16{-10000, -1000, -100, -10, 1, 10, 100, 1000, 10000}

// readHeadersContiguous reads n trace headers starting at trace offset,
// decoding every field rule activates into dst starting at row skip.
func readHeadersContiguous(ctx context.Context, d iodriver.Driver, rule *rules.Rule, ns int, offset int64, n int, dst *tracemd.Metadata, skip int) error {
	if n == 0 {
		return d.ReadStrided(ctx, 0, 0, 0, 0, nil)
	}

	start, end := rule.Extent()
	extentBytes := end - start

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * extentBytes)
	raw := bb.Bytes()

	if extentBytes > 0 {
		traceOff := uint64(segy.TraceOffset(offset, ns) + int64(start))
		if err := d.ReadStrided(ctx, traceOff, uint64(extentBytes), uint64(segy.TraceSize(ns)), n, raw); err != nil {
			return err
		}
	}

	entries := rule.Entries()

	for i := range n {
		chunk := raw[i*extentBytes : (i+1)*extentBytes]

		for _, p := range entries {
			locs := p.Locations()
			readLocs := make([]blobparser.ReadLocation, len(locs))

			for j, loc := range locs {
				readLocs[j] = blobparser.ReadLocation{
					Location: loc,
					Data:     chunk[loc.Begin-start : loc.End-start],
				}
			}

			if err := p.Read(readLocs, dst, skip+i); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeHeadersContiguous writes n trace headers starting at trace offset,
// encoding every field rule activates from src starting at row skip.
func writeHeadersContiguous(ctx context.Context, d iodriver.Driver, rule *rules.Rule, ns int, offset int64, n int, src *tracemd.Metadata, skip int) error {
	if n == 0 {
		return d.WriteStrided(ctx, 0, 0, 0, 0, nil)
	}

	start, end := rule.Extent()
	extentBytes := end - start

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * extentBytes)
	buf := bb.Bytes()

	entries := rule.Entries()

	// Copy-all first so explicit field parsers below overwrite it.
	if raw, ok := entries[tracemd.Raw]; ok {
		for i := range n {
			chunk := buf[i*extentBytes : (i+1)*extentBytes]
			locs := raw.Locations()
			writeLocs := []blobparser.WriteLocation{{
				Location: locs[0],
				Data:     chunk[locs[0].Begin-start : locs[0].End-start],
			}}
			if err := raw.Write(writeLocs, src, skip+i); err != nil {
				return err
			}
		}
	}

	scalarGroups := groupScaledCoordParsers(entries)

	for i := range n {
		chunk := buf[i*extentBytes : (i+1)*extentBytes]
		row := skip + i

		for scalarOffset, group := range scalarGroups {
			if err := writeSharedScalar(src, row, chunk, start, scalarOffset, group); err != nil {
				return err
			}
		}

		for key, p := range entries {
			if key == tracemd.Raw {
				continue
			}
			if _, isScaled := p.(blobparser.ScaledCoordParser); isScaled {
				continue
			}

			locs := p.Locations()
			writeLocs := make([]blobparser.WriteLocation, len(locs))
			for j, loc := range locs {
				writeLocs[j] = blobparser.WriteLocation{
					Location: loc,
					Data:     chunk[loc.Begin-start : loc.End-start],
				}
			}

			if err := p.Write(writeLocs, src, row); err != nil {
				return err
			}
		}

		// Shared scalars go last so a CoordinateScalar entry cannot
		// overwrite the scalar the coordinates were scaled against.
		for scalarOffset, group := range scalarGroups {
			if err := writeSharedScalar(src, row, chunk, start, scalarOffset, group); err != nil {
				return err
			}
		}
	}

	if extentBytes == 0 {
		return nil
	}

	traceOff := uint64(segy.TraceOffset(offset, ns) + int64(start))

	return d.WriteStrided(ctx, traceOff, uint64(extentBytes), uint64(segy.TraceSize(ns)), n, buf)
}

func groupScaledCoordParsers(entries map[tracemd.FieldKey]blobparser.Parser) map[int][]blobparser.ScaledCoordParser {
	groups := make(map[int][]blobparser.ScaledCoordParser)

	for _, p := range entries {
		sc, ok := p.(blobparser.ScaledCoordParser)
		if !ok {
			continue
		}

		groups[sc.ScalarOffset] = append(groups[sc.ScalarOffset], sc)
	}

	return groups
}

// writeSharedScalar implements the per-trace shared-scalar rule:
// pick the finest scale that represents every field in group without
// overflowing int32, falling back to a coarser one only if some field
// needs the headroom; write the scalar once, then have each field write
// its scaled int32 against it.
func writeSharedScalar(src *tracemd.Metadata, row int, chunk []byte, extentStart, scalarOffset int, group []blobparser.ScaledCoordParser) error {
	values := make([]float64, len(group))

	for i, p := range group {
		v, err := src.GetFloatingPoint(row, p.Key)
		if err != nil {
			return err
		}

		values[i] = v
	}

	scalar := bestSharedScalar(values)
	codec.PutInt16(chunk[scalarOffset-extentStart:scalarOffset-extentStart+2], scalar)

	scale := codec.ParseScalar(scalar)

	for i, p := range group {
		stored := values[i] / scale

		rounded := int32(math.Round(stored))
		codec.PutInt32(chunk[p.ValueOffset-extentStart:p.ValueOffset-extentStart+4], rounded)
	}

	return nil
}

func bestSharedScalar(values []float64) int16 {
	for _, candidate := range scalarCandidates {
		scale := codec.ParseScalar(candidate)

		fits := true

		for _, v := range values {
			if math.Abs(v/scale) > maxInt32Magnitude {
				fits = false

				break
			}
		}

		if fits {
			return candidate
		}
	}

	return 1
}

// readSamplesContiguous reads n traces' sample vectors starting at trace
// offset into out (ns*n float32s), converting from format's on-disk
// encoding.
func readSamplesContiguous(ctx context.Context, d iodriver.Driver, ns int, format segy.SampleFormat, offset int64, n int, out []float32) error {
	if n == 0 {
		return d.ReadStrided(ctx, 0, 0, 0, 0, nil)
	}

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * ns * segy.BytesPerSample)
	raw := bb.Bytes()

	dataSize := uint64(segy.TraceDataSize(ns))

	if err := d.ReadStrided(ctx, uint64(segy.TraceDataOffset(offset, ns)), dataSize, uint64(segy.TraceSize(ns)), n, raw); err != nil {
		return err
	}

	for i := range n {
		if err := segy.DecodeSamples(format, raw[i*ns*segy.BytesPerSample:], out[i*ns:(i+1)*ns]); err != nil {
			return err
		}
	}

	return nil
}

// writeSamplesContiguous writes n traces' sample vectors (ns*n float32s)
// starting at trace offset, converting into format's on-disk encoding.
func writeSamplesContiguous(ctx context.Context, d iodriver.Driver, ns int, format segy.SampleFormat, offset int64, n int, in []float32) error {
	if n == 0 {
		return d.WriteStrided(ctx, 0, 0, 0, 0, nil)
	}

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * ns * segy.BytesPerSample)
	raw := bb.Bytes()

	for i := range n {
		if err := segy.EncodeSamples(format, in[i*ns:(i+1)*ns], raw[i*ns*segy.BytesPerSample:]); err != nil {
			return err
		}
	}

	dataSize := uint64(segy.TraceDataSize(ns))

	return d.WriteStrided(ctx, uint64(segy.TraceDataOffset(offset, ns)), dataSize, uint64(segy.TraceSize(ns)), n, raw)
}
