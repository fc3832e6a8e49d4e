// Package segy holds the pure file/trace offset and size arithmetic for the
// SEG-Y format, plus the small set of binary-header and trace-header field
// offsets the rest of the stack needs to address bytes within a file. It
// performs no I/O.
package segy

import "github.com/exseisdat/segyio/errs"

// Fixed section sizes, all in bytes.
const (
	TextHeaderSize       = 3200
	BinaryFileHeaderSize = 400
	FileHeaderSize       = TextHeaderSize + BinaryFileHeaderSize // 3600
	TraceHeaderSize      = 240
	BytesPerSample       = 4 // only IBM_fp32 / IEEE_fp32 are supported
)

// SampleFormat identifies the on-disk sample encoding, taken from the
// binary file header's number_format field at offset 3225.
type SampleFormat int16

const (
	SampleFormatIBM  SampleFormat = 1
	SampleFormatIEEE SampleFormat = 5
)

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatIBM:
		return "IBM_fp32"
	case SampleFormatIEEE:
		return "IEEE_fp32"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the two sample formats this library
// supports.
func (f SampleFormat) Valid() bool {
	return f == SampleFormatIBM || f == SampleFormatIEEE
}

// Binary file header field offsets (1-indexed in the original spec,
// restated here as 0-indexed byte offsets from the start of the file).
const (
	OffsetSampleInterval  = 3216 // int16 BE, microseconds
	OffsetSamplesPerTrace = 3220 // int16 BE
	OffsetNumberFormat    = 3224 // int16 BE
)

// Trace header field offsets, 0-indexed from the start of each trace's
// 240-byte header.
const (
	OffsetLineTraceIndex   = 0   // int32 BE
	OffsetFileTraceIndex   = 4   // int32 BE
	OffsetOfrTraceIndex    = 12  // int32 BE
	OffsetCoordinateScalar = 70  // int16 BE
	OffsetSourceX          = 72  // int32 BE, scaled by OffsetCoordinateScalar
	OffsetSourceY          = 76  // int32 BE, scaled by OffsetCoordinateScalar
	OffsetReceiverX        = 80  // int32 BE, scaled by OffsetCoordinateScalar
	OffsetReceiverY        = 84  // int32 BE, scaled by OffsetCoordinateScalar
	OffsetNumberOfSamples  = 114 // int16 BE
	OffsetSampleInterval2  = 116 // int16 BE (per-trace sample interval override)
	OffsetCDPX             = 180 // int32 BE, scaled by OffsetCoordinateScalar
	OffsetCDPY             = 184 // int32 BE, scaled by OffsetCoordinateScalar
	OffsetInline           = 188 // int32 BE
	OffsetCrossline        = 192 // int32 BE
)

// TraceDataSize returns the byte size of the sample vector of a trace with
// ns samples.
func TraceDataSize(ns int) int64 {
	return int64(ns) * BytesPerSample
}

// TraceSize returns the total byte size (header + samples) of a trace with
// ns samples.
func TraceSize(ns int) int64 {
	return TraceHeaderSize + TraceDataSize(ns)
}

// TraceOffset returns the absolute byte offset of the i-th trace (0-based)
// in a file where every trace carries ns samples.
func TraceOffset(i int64, ns int) int64 {
	return FileHeaderSize + i*TraceSize(ns)
}

// TraceDataOffset returns the absolute byte offset of the i-th trace's
// sample vector.
func TraceDataOffset(i int64, ns int) int64 {
	return TraceOffset(i, ns) + TraceHeaderSize
}

// NumberOfTracesFromFileSize recovers the trace count implied by a file's
// total size. A non-zero remainder indicates a truncated or otherwise
// corrupt file.
func NumberOfTracesFromFileSize(sz int64, ns int) (int64, error) {
	body := sz - FileHeaderSize
	if body < 0 {
		return 0, errs.ErrCorruptFile
	}

	stride := TraceSize(ns)
	if stride == 0 {
		if body == 0 {
			return 0, nil
		}

		return 0, errs.ErrCorruptFile
	}

	if body%stride != 0 {
		return 0, errs.ErrCorruptFile
	}

	return body / stride, nil
}
