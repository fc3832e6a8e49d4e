package tracemd

import (
	"fmt"
	"math"

	"github.com/exseisdat/segyio/errs"
)

// Metadata is the columnar, type-tagged container for N traces' worth of
// metadata. For every field key present in its TypeMap it
// holds one typed column of length n; the column's concrete Go type
// follows the field's FieldType exactly, so storage cost matches what the
// on-disk representation needs (no universal widening to int64/float64).
type Metadata struct {
	n       int
	typeMap TypeMap

	ints   map[FieldKey]any // []int8, []int16, []int32, []int64, []uint8, []uint16, []uint32, []uint64
	floats map[FieldKey]any // []float32 or []float64
	index  map[FieldKey][]uint64
	raw    [][]byte // one TraceHeaderSize-byte slice per row, only for the Raw key
}

// New constructs a Metadata container sized for nTraces rows, allocating
// one column per key in typeMap.
func New(typeMap TypeMap, nTraces int) *Metadata {
	m := &Metadata{
		n:       nTraces,
		typeMap: typeMap,
		ints:    make(map[FieldKey]any),
		floats:  make(map[FieldKey]any),
		index:   make(map[FieldKey][]uint64),
	}

	for key, spec := range typeMap {
		switch spec.Type {
		case TypeF32:
			m.floats[key] = make([]float32, nTraces)
		case TypeF64:
			m.floats[key] = make([]float64, nTraces)
		case TypeI8:
			m.ints[key] = make([]int8, nTraces)
		case TypeI16:
			m.ints[key] = make([]int16, nTraces)
		case TypeI32:
			m.ints[key] = make([]int32, nTraces)
		case TypeI64:
			m.ints[key] = make([]int64, nTraces)
		case TypeU8:
			if key == Raw {
				count := spec.Count
				if count == 0 {
					count = 240
				}
				rows := make([][]byte, nTraces)
				for i := range rows {
					rows[i] = make([]byte, count)
				}
				m.raw = rows
			} else {
				m.ints[key] = make([]uint8, nTraces)
			}
		case TypeU16:
			m.ints[key] = make([]uint16, nTraces)
		case TypeU32:
			m.ints[key] = make([]uint32, nTraces)
		case TypeU64:
			m.ints[key] = make([]uint64, nTraces)
		case TypeIndex:
			m.index[key] = make([]uint64, nTraces)
		}
	}

	return m
}

// Size returns the number of trace rows the container holds.
func (m *Metadata) Size() int { return m.n }

// EntryTypes returns the container's type map.
func (m *Metadata) EntryTypes() TypeMap { return m.typeMap }

// EntrySize returns the per-trace element count for key (1 for scalar
// fields, segy.TraceHeaderSize for Raw).
func (m *Metadata) EntrySize(key FieldKey) int {
	spec, ok := m.typeMap[key]
	if !ok {
		return 0
	}
	if spec.Count == 0 {
		return 1
	}

	return spec.Count
}

func (m *Metadata) checkRow(row int) error {
	if row < 0 || row >= m.n {
		return fmt.Errorf("%w: row %d out of range [0,%d)", errs.ErrOutOfRange, row, m.n)
	}

	return nil
}

// RawHeader returns the raw TraceHeaderSize-byte column for row, populated
// when the active rule carries a copy-all entry.
func (m *Metadata) RawHeader(row int) ([]byte, error) {
	if err := m.checkRow(row); err != nil {
		return nil, err
	}
	if m.raw == nil {
		return nil, fmt.Errorf("%w: key %v (raw header)", errs.ErrEntryNotFound, Raw)
	}

	return m.raw[row], nil
}

// SetInteger stores v into row of key's column. Values are
// not range-checked at set time: the column's native width may be narrower
// than int64, and storing simply truncates to that width.
func (m *Metadata) SetInteger(row int, key FieldKey, v int64) error {
	if err := m.checkRow(row); err != nil {
		return err
	}

	col, ok := m.ints[key]
	if !ok {
		return fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	switch c := col.(type) {
	case []int8:
		c[row] = int8(v)
	case []int16:
		c[row] = int16(v)
	case []int32:
		c[row] = int32(v)
	case []int64:
		c[row] = v
	case []uint8:
		c[row] = uint8(v)
	case []uint16:
		c[row] = uint16(v)
	case []uint32:
		c[row] = uint32(v)
	case []uint64:
		c[row] = uint64(v)
	default:
		return fmt.Errorf("%w: key %v is not an integer field", errs.ErrWrongType, key)
	}

	return nil
}

// GetInteger returns row of key's column widened to int64. Widening from a
// narrower signed or unsigned column never loses information, except for
// uint64 values that exceed math.MaxInt64: those are range-checked here and
// reported as ErrOutOfRange, which is the one place this invariant can
// actually bite.
func (m *Metadata) GetInteger(row int, key FieldKey) (int64, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}

	col, ok := m.ints[key]
	if !ok {
		return 0, fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	switch c := col.(type) {
	case []int8:
		return int64(c[row]), nil
	case []int16:
		return int64(c[row]), nil
	case []int32:
		return int64(c[row]), nil
	case []int64:
		return c[row], nil
	case []uint8:
		return int64(c[row]), nil
	case []uint16:
		return int64(c[row]), nil
	case []uint32:
		return int64(c[row]), nil
	case []uint64:
		v := c[row]
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: key %v value %d exceeds int64", errs.ErrOutOfRange, key, v)
		}

		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: key %v is not an integer field", errs.ErrWrongType, key)
	}
}

// SetFloatingPoint stores v into row of key's column.
func (m *Metadata) SetFloatingPoint(row int, key FieldKey, v float64) error {
	if err := m.checkRow(row); err != nil {
		return err
	}

	col, ok := m.floats[key]
	if !ok {
		return fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	switch c := col.(type) {
	case []float32:
		c[row] = float32(v)
	case []float64:
		c[row] = v
	default:
		return fmt.Errorf("%w: key %v is not a floating-point field", errs.ErrWrongType, key)
	}

	return nil
}

// GetFloatingPoint returns row of key's column widened to float64.
func (m *Metadata) GetFloatingPoint(row int, key FieldKey) (float64, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}

	col, ok := m.floats[key]
	if !ok {
		return 0, fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	switch c := col.(type) {
	case []float32:
		return float64(c[row]), nil
	case []float64:
		return c[row], nil
	default:
		return 0, fmt.Errorf("%w: key %v is not a floating-point field", errs.ErrWrongType, key)
	}
}

// SetIndex stores v into row of key's in-memory-only index column.
func (m *Metadata) SetIndex(row int, key FieldKey, v uint64) error {
	if err := m.checkRow(row); err != nil {
		return err
	}

	col, ok := m.index[key]
	if !ok {
		return fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}
	col[row] = v

	return nil
}

// GetIndex returns row of key's in-memory-only index column.
func (m *Metadata) GetIndex(row int, key FieldKey) (uint64, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}

	col, ok := m.index[key]
	if !ok {
		return 0, fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	return col[row], nil
}

// CopyEntries copies every key present in m's type map from the matching
// key of src at srcRow into m at dstRow. A source missing any of m's keys
// is a hard error.
func (m *Metadata) CopyEntries(dstRow int, src *Metadata, srcRow int) error {
	if err := m.checkRow(dstRow); err != nil {
		return err
	}
	if err := src.checkRow(srcRow); err != nil {
		return err
	}

	for key, spec := range m.typeMap {
		switch spec.Type {
		case TypeF32, TypeF64:
			v, err := src.GetFloatingPoint(srcRow, key)
			if err != nil {
				return err
			}
			if err := m.SetFloatingPoint(dstRow, key, v); err != nil {
				return err
			}
		case TypeIndex:
			v, err := src.GetIndex(srcRow, key)
			if err != nil {
				return err
			}
			if err := m.SetIndex(dstRow, key, v); err != nil {
				return err
			}
		case TypeU8:
			if key == Raw {
				srcRaw, err := src.RawHeader(srcRow)
				if err != nil {
					return err
				}
				dstRaw, err := m.RawHeader(dstRow)
				if err != nil {
					return err
				}
				copy(dstRaw, srcRaw)

				continue
			}

			fallthrough
		default:
			v, err := src.GetInteger(srcRow, key)
			if err != nil {
				return err
			}
			if err := m.SetInteger(dstRow, key, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// EntryData returns the raw backing column for key for bulk access by
// callers outside this package.
// The returned value must be type-asserted by the caller to the concrete
// slice type implied by key's FieldType, except that requesting the Raw key
// always succeeds and returns [][]byte.
func (m *Metadata) EntryData(key FieldKey) (any, error) {
	spec, ok := m.typeMap[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %v", errs.ErrEntryNotFound, key)
	}

	if key == Raw {
		return m.raw, nil
	}

	switch spec.Type {
	case TypeF32, TypeF64:
		return m.floats[key], nil
	case TypeIndex:
		return m.index[key], nil
	default:
		return m.ints[key], nil
	}
}
