package blobparser_test

import (
	"testing"

	"github.com/exseisdat/segyio/blobparser"
	"github.com/exseisdat/segyio/codec"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeMapFor(parsers ...blobparser.Parser) tracemd.TypeMap {
	tm := tracemd.TypeMap{}
	for _, p := range parsers {
		pt := p.ParsedType()
		tm[p.FieldKey()] = tracemd.FieldSpec{Type: pt.Kind, Count: pt.Count}
	}

	return tm
}

func readLocsFor(p blobparser.Parser, blob []byte) []blobparser.ReadLocation {
	locs := p.Locations()
	out := make([]blobparser.ReadLocation, len(locs))
	for i, l := range locs {
		out[i] = blobparser.ReadLocation{Location: l, Data: blob[l.Begin:l.End]}
	}

	return out
}

func writeLocsFor(p blobparser.Parser, blob []byte) []blobparser.WriteLocation {
	locs := p.Locations()
	out := make([]blobparser.WriteLocation, len(locs))
	for i, l := range locs {
		out[i] = blobparser.WriteLocation{Location: l, Data: blob[l.Begin:l.End]}
	}

	return out
}

func TestInt32ParserRoundTrip(t *testing.T) {
	p := blobparser.Int32Parser{Key: tracemd.Inline, Offset: segy.OffsetInline}
	md := tracemd.New(typeMapFor(p), 1)

	blob := make([]byte, segy.TraceHeaderSize)
	codec.PutInt32(blob[segy.OffsetInline:], 1601)

	require.NoError(t, p.Read(readLocsFor(p, blob), md, 0))
	v, err := md.GetInteger(0, tracemd.Inline)
	require.NoError(t, err)
	assert.Equal(t, int64(1601), v)

	require.NoError(t, md.SetInteger(0, tracemd.Inline, 42))
	out := make([]byte, segy.TraceHeaderSize)
	require.NoError(t, p.Write(writeLocsFor(p, out), md, 0))
	assert.Equal(t, int32(42), codec.Int32(out[segy.OffsetInline:]))
}

func TestInt16ParserRoundTrip(t *testing.T) {
	p := blobparser.Int16Parser{Key: tracemd.CoordinateScalar, Offset: segy.OffsetCoordinateScalar}
	md := tracemd.New(typeMapFor(p), 1)

	blob := make([]byte, segy.TraceHeaderSize)
	codec.PutInt16(blob[segy.OffsetCoordinateScalar:], -100)

	require.NoError(t, p.Read(readLocsFor(p, blob), md, 0))
	v, err := md.GetInteger(0, tracemd.CoordinateScalar)
	require.NoError(t, err)
	assert.Equal(t, int64(-100), v)
}

func TestScaledCoordParserRead(t *testing.T) {
	p := blobparser.ScaledCoordParser{
		Key:          tracemd.SourceX,
		ValueOffset:  segy.OffsetSourceX,
		ScalarOffset: segy.OffsetCoordinateScalar,
	}
	md := tracemd.New(typeMapFor(p), 1)

	blob := make([]byte, segy.TraceHeaderSize)
	codec.PutInt16(blob[segy.OffsetCoordinateScalar:], -100)
	codec.PutInt32(blob[segy.OffsetSourceX:], 150050)

	require.NoError(t, p.Read(readLocsFor(p, blob), md, 0))
	v, err := md.GetFloatingPoint(0, tracemd.SourceX)
	require.NoError(t, err)
	assert.InDelta(t, 1500.5, v, 1e-9)
}

func TestScaledCoordParserWrite(t *testing.T) {
	p := blobparser.ScaledCoordParser{
		Key:          tracemd.SourceX,
		ValueOffset:  segy.OffsetSourceX,
		ScalarOffset: segy.OffsetCoordinateScalar,
	}
	md := tracemd.New(typeMapFor(p), 1)
	require.NoError(t, md.SetFloatingPoint(0, tracemd.SourceX, 1500.5))

	blob := make([]byte, segy.TraceHeaderSize)
	codec.PutInt16(blob[segy.OffsetCoordinateScalar:], -100)

	require.NoError(t, p.Write(writeLocsFor(p, blob), md, 0))
	assert.Equal(t, int32(150050), codec.Int32(blob[segy.OffsetSourceX:]))
}

func TestRawCopyParserRoundTrip(t *testing.T) {
	p := blobparser.RawCopyParser{}
	md := tracemd.New(typeMapFor(p), 1)

	blob := make([]byte, segy.TraceHeaderSize)
	blob[5] = 0xEE

	require.NoError(t, p.Read(readLocsFor(p, blob), md, 0))
	raw, err := md.RawHeader(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xEE), raw[5])

	raw[7] = 0x11
	out := make([]byte, segy.TraceHeaderSize)
	require.NoError(t, p.Write(writeLocsFor(p, out), md, 0))
	assert.Equal(t, byte(0x11), out[7])
}

func TestMakeParserKnownKeys(t *testing.T) {
	for _, key := range []tracemd.FieldKey{
		tracemd.Inline, tracemd.Crossline, tracemd.SourceX, tracemd.SourceY,
		tracemd.ReceiverX, tracemd.ReceiverY, tracemd.CDPX, tracemd.CDPY,
		tracemd.CoordinateScalar, tracemd.NumberOfSamples, tracemd.SampleInterval,
		tracemd.GlobalTraceIndex, tracemd.Raw,
	} {
		p := blobparser.MakeParser(key)
		require.NotNil(t, p, "key %v", key)
		assert.Equal(t, key, p.FieldKey())
	}
}

func TestMakeParserUnknownKey(t *testing.T) {
	assert.Nil(t, blobparser.MakeParser(tracemd.VStackCount))
}

func TestIndexParserIsNoOp(t *testing.T) {
	p := blobparser.IndexParser{Key: tracemd.GlobalTraceIndex}
	assert.Empty(t, p.Locations())
	require.NoError(t, p.Read(nil, nil, 0))
	require.NoError(t, p.Write(nil, nil, 0))
}
