package segy

import (
	"fmt"

	"github.com/exseisdat/segyio/codec"
	"github.com/exseisdat/segyio/errs"
)

// DecodeSamples converts raw (ns*BytesPerSample bytes, per format's
// on-disk encoding) into ns IEEE-754 float32 values in out.
func DecodeSamples(format SampleFormat, raw []byte, out []float32) error {
	if !format.Valid() {
		return fmt.Errorf("%w: number format %d", errs.ErrUnsupportedFormat, format)
	}

	ns := len(out)
	if len(raw) < ns*BytesPerSample {
		return fmt.Errorf("%w: raw buffer too short for %d samples", errs.ErrCorruptFile, ns)
	}

	for i := range ns {
		b := raw[i*BytesPerSample : (i+1)*BytesPerSample]

		switch format {
		case SampleFormatIBM:
			var arr [4]byte
			copy(arr[:], b)
			out[i] = codec.IBMToFloat32(arr)
		case SampleFormatIEEE:
			out[i] = codec.Float32(b)
		}
	}

	return nil
}

// EncodeSamples converts ns float32 values in in into raw
// (ns*BytesPerSample bytes) using format's on-disk encoding.
func EncodeSamples(format SampleFormat, in []float32, raw []byte) error {
	if !format.Valid() {
		return fmt.Errorf("%w: number format %d", errs.ErrUnsupportedFormat, format)
	}

	ns := len(in)
	if len(raw) < ns*BytesPerSample {
		return fmt.Errorf("%w: raw buffer too short for %d samples", errs.ErrCorruptFile, ns)
	}

	for i, v := range in {
		b := raw[i*BytesPerSample : (i+1)*BytesPerSample]

		switch format {
		case SampleFormatIBM:
			arr := codec.Float32ToIBM(v)
			copy(b, arr[:])
		case SampleFormatIEEE:
			codec.PutFloat32(b, v)
		}
	}

	return nil
}
