package file

import (
	"context"

	"github.com/exseisdat/segyio/blobparser"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// readHeadersNonContiguous reads len(offsets) trace headers at the given
// (monotonic or not — ReadOffsets itself is offset-order-agnostic) trace
// indices, decoding into dst starting at row skip.
func readHeadersNonContiguous(ctx context.Context, d iodriver.Driver, rule *rules.Rule, ns int, offsets []int64, dst *tracemd.Metadata, skip int) error {
	n := len(offsets)
	if n == 0 {
		return d.ReadOffsets(ctx, 0, nil, nil)
	}

	start, end := rule.Extent()
	extentBytes := end - start

	byteOffsets := make([]uint64, n)
	for i, off := range offsets {
		byteOffsets[i] = uint64(segy.TraceOffset(off, ns) + int64(start))
	}

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * extentBytes)
	raw := bb.Bytes()

	if extentBytes > 0 {
		if err := d.ReadOffsets(ctx, uint64(extentBytes), byteOffsets, raw); err != nil {
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

// writeHeadersNonContiguous mirrors readHeadersNonContiguous for writes,
// including the shared-scalar coordinate algorithm.
func writeHeadersNonContiguous(ctx context.Context, d iodriver.Driver, rule *rules.Rule, ns int, offsets []int64, src *tracemd.Metadata, skip int) error {
	n := len(offsets)
	if n == 0 {
		return d.WriteOffsets(ctx, 0, nil, nil)
	}

	start, end := rule.Extent()
	extentBytes := end - start

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * extentBytes)
	buf := bb.Bytes()

	entries := rule.Entries()

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

	byteOffsets := make([]uint64, n)
	for i, off := range offsets {
		byteOffsets[i] = uint64(segy.TraceOffset(off, ns) + int64(start))
	}

	if extentBytes == 0 {
		return nil
	}

	return d.WriteOffsets(ctx, uint64(extentBytes), byteOffsets, buf)
}

// readSamplesNonContiguous reads len(offsets) trace sample vectors into
// out (ns*len(offsets) float32s), converting from format's on-disk
// encoding.
func readSamplesNonContiguous(ctx context.Context, d iodriver.Driver, ns int, format segy.SampleFormat, offsets []int64, out []float32) error {
	n := len(offsets)
	if n == 0 {
		return d.ReadOffsets(ctx, 0, nil, nil)
	}

	byteOffsets := make([]uint64, n)
	for i, off := range offsets {
		byteOffsets[i] = uint64(segy.TraceDataOffset(off, ns))
	}

	bb := scratchPool.Get()
	defer scratchPool.Put(bb)
	bb.Reset()
	bb.ExtendOrGrow(n * ns * segy.BytesPerSample)
	raw := bb.Bytes()

	if err := d.ReadOffsets(ctx, uint64(segy.TraceDataSize(ns)), byteOffsets, raw); err != nil {
		return err
	}

	for i := range n {
		if err := segy.DecodeSamples(format, raw[i*ns*segy.BytesPerSample:], out[i*ns:(i+1)*ns]); err != nil {
			return err
		}
	}

	return nil
}

// writeSamplesNonContiguous mirrors readSamplesNonContiguous for writes.
func writeSamplesNonContiguous(ctx context.Context, d iodriver.Driver, ns int, format segy.SampleFormat, offsets []int64, in []float32) error {
	n := len(offsets)
	if n == 0 {
		return d.WriteOffsets(ctx, 0, nil, nil)
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

	byteOffsets := make([]uint64, n)
	for i, off := range offsets {
		byteOffsets[i] = uint64(segy.TraceDataOffset(off, ns))
	}

	return d.WriteOffsets(ctx, uint64(segy.TraceDataSize(ns)), byteOffsets, raw)
}
