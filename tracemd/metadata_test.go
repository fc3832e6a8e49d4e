package tracemd_test

import (
	"testing"

	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/tracemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTypeMap() tracemd.TypeMap {
	return tracemd.TypeMap{
		tracemd.Inline:           {Type: tracemd.TypeI32},
		tracemd.Crossline:        {Type: tracemd.TypeI32},
		tracemd.SourceX:          {Type: tracemd.TypeF64},
		tracemd.SourceY:          {Type: tracemd.TypeF64},
		tracemd.GlobalTraceIndex: {Type: tracemd.TypeIndex},
		tracemd.Raw:              {Type: tracemd.TypeU8, Count: 240},
	}
}

func TestSetGetInteger(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	require.NoError(t, m.SetInteger(0, tracemd.Inline, 1601))
	v, err := m.GetInteger(0, tracemd.Inline)
	require.NoError(t, err)
	assert.Equal(t, int64(1601), v)
}

func TestGetIntegerUnknownKey(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	_, err := m.GetInteger(0, tracemd.VStackCount)
	assert.ErrorIs(t, err, errs.ErrEntryNotFound)
}

func TestSetGetFloatingPoint(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	require.NoError(t, m.SetFloatingPoint(1, tracemd.SourceX, 1500.5))
	v, err := m.GetFloatingPoint(1, tracemd.SourceX)
	require.NoError(t, err)
	assert.InDelta(t, 1500.5, v, 1e-9)
}

func TestGetFloatingPointWrongType(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	_, err := m.GetFloatingPoint(0, tracemd.Inline)
	assert.ErrorIs(t, err, errs.ErrEntryNotFound)
}

func TestSetGetIndex(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	require.NoError(t, m.SetIndex(2, tracemd.GlobalTraceIndex, 99))
	v, err := m.GetIndex(2, tracemd.GlobalTraceIndex)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), v)
}

func TestRowOutOfRange(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 4)

	_, err := m.GetInteger(10, tracemd.Inline)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestCopyEntries(t *testing.T) {
	tm := newTestTypeMap()
	src := tracemd.New(tm, 2)
	dst := tracemd.New(tm, 2)

	require.NoError(t, src.SetInteger(0, tracemd.Inline, 42))
	require.NoError(t, src.SetFloatingPoint(0, tracemd.SourceX, 7.5))
	require.NoError(t, src.SetIndex(0, tracemd.GlobalTraceIndex, 3))
	rawSrc, err := src.RawHeader(0)
	require.NoError(t, err)
	rawSrc[0] = 0xAB

	require.NoError(t, dst.CopyEntries(1, src, 0))

	v, err := dst.GetInteger(1, tracemd.Inline)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	fv, err := dst.GetFloatingPoint(1, tracemd.SourceX)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, fv, 1e-9)

	iv, err := dst.GetIndex(1, tracemd.GlobalTraceIndex)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), iv)

	rawDst, err := dst.RawHeader(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), rawDst[0])
}

func TestCopyEntriesMissingSourceKey(t *testing.T) {
	srcMap := tracemd.TypeMap{tracemd.Inline: {Type: tracemd.TypeI32}}
	dstMap := tracemd.TypeMap{
		tracemd.Inline:    {Type: tracemd.TypeI32},
		tracemd.Crossline: {Type: tracemd.TypeI32},
	}

	src := tracemd.New(srcMap, 1)
	dst := tracemd.New(dstMap, 1)

	err := dst.CopyEntries(0, src, 0)
	assert.ErrorIs(t, err, errs.ErrEntryNotFound)
}

func TestEntryDataRawAlwaysSucceeds(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 3)

	data, err := m.EntryData(tracemd.Raw)
	require.NoError(t, err)
	rows, ok := data.([][]byte)
	require.True(t, ok)
	assert.Len(t, rows, 3)
	assert.Len(t, rows[0], 240)
}

func TestEntryDataTypedColumn(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 3)
	require.NoError(t, m.SetInteger(0, tracemd.Inline, 7))

	data, err := m.EntryData(tracemd.Inline)
	require.NoError(t, err)
	col, ok := data.([]int32)
	require.True(t, ok)
	assert.Equal(t, int32(7), col[0])
}

func TestEntrySizeAndTypes(t *testing.T) {
	m := tracemd.New(newTestTypeMap(), 5)
	assert.Equal(t, 5, m.Size())
	assert.Equal(t, 1, m.EntrySize(tracemd.Inline))
	assert.Equal(t, 240, m.EntrySize(tracemd.Raw))
	assert.Len(t, m.EntryTypes(), 6)
}
