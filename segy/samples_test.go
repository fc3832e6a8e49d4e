package segy_test

import (
	"errors"
	"testing"

	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/segy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSamplesIEEERoundTrip(t *testing.T) {
	in := []float32{1.5, -2.25, 0, 12345.625}
	raw := make([]byte, len(in)*segy.BytesPerSample)

	require.NoError(t, segy.EncodeSamples(segy.SampleFormatIEEE, in, raw))

	out := make([]float32, len(in))
	require.NoError(t, segy.DecodeSamples(segy.SampleFormatIEEE, raw, out))

	assert.Equal(t, in, out)
}

func TestEncodeDecodeSamplesIBMRoundTrip(t *testing.T) {
	in := []float32{1.5, -2.25, 100.0, 0.0625}
	raw := make([]byte, len(in)*segy.BytesPerSample)

	require.NoError(t, segy.EncodeSamples(segy.SampleFormatIBM, in, raw))

	out := make([]float32, len(in))
	require.NoError(t, segy.DecodeSamples(segy.SampleFormatIBM, raw, out))

	for i := range in {
		assert.InDelta(t, float64(in[i]), float64(out[i]), 1e-3)
	}
}

func TestDecodeSamplesUnsupportedFormat(t *testing.T) {
	raw := make([]byte, segy.BytesPerSample)
	out := make([]float32, 1)

	err := segy.DecodeSamples(segy.SampleFormat(99), raw, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))
}

func TestDecodeSamplesShortBuffer(t *testing.T) {
	raw := make([]byte, 2)
	out := make([]float32, 3)

	err := segy.DecodeSamples(segy.SampleFormatIEEE, raw, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrCorruptFile))
}

func TestEncodeSamplesShortBuffer(t *testing.T) {
	raw := make([]byte, 2)
	in := []float32{1, 2, 3}

	err := segy.EncodeSamples(segy.SampleFormatIEEE, in, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrCorruptFile))
}
