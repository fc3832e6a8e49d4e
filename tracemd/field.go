// Package tracemd implements the columnar, type-tagged trace-metadata
// container: one typed array per active field key,
// decoupled from the on-disk SEG-Y layout. The mapping between a field key
// and its bytes in a trace header is the job of the blobparser and rules
// packages; this package only owns the in-memory representation.
package tracemd

// FieldKey names a metadata concept the library understands. It is a
// stable enumeration whose numeric values are never serialized to disk,
// so reordering this list does not break the wire format — only the
// rules/blobparser byte-offset tables do that.
type FieldKey uint8

const (
	// LineTraceIndex is the trace's position within its 2D line (in-line
	// consecutive trace number).
	LineTraceIndex FieldKey = iota
	// FileTraceIndex is the trace's position within the whole file.
	FileTraceIndex
	// OfrTraceIndex is the trace's position within the original field
	// record.
	OfrTraceIndex
	// Inline is the in-line spatial index of the trace.
	Inline
	// Crossline is the cross-line spatial index of the trace.
	Crossline
	// SourceX is the source X coordinate, scaled by CoordinateScalar.
	SourceX
	// SourceY is the source Y coordinate, scaled by CoordinateScalar.
	SourceY
	// ReceiverX is the receiver X coordinate, scaled by CoordinateScalar.
	ReceiverX
	// ReceiverY is the receiver Y coordinate, scaled by CoordinateScalar.
	ReceiverY
	// CDPX is the common-depth-point X coordinate, scaled by
	// CoordinateScalar.
	CDPX
	// CDPY is the common-depth-point Y coordinate, scaled by
	// CoordinateScalar.
	CDPY
	// CoordinateScalar is the per-trace int16 that scales stored integer
	// coordinates into real-world units.
	CoordinateScalar
	// NumberOfSamples is the number of samples in this trace.
	NumberOfSamples
	// SampleInterval is this trace's sample interval override.
	SampleInterval
	// EnergySourceNumber identifies the energy source used for this trace.
	EnergySourceNumber
	// ShotpointNumber identifies the shotpoint this trace belongs to.
	ShotpointNumber
	// VStackCount is the number of traces vertically stacked.
	VStackCount
	// HStackCount is the number of traces horizontally stacked.
	HStackCount
	// ReceiverElevation is the receiver group elevation.
	ReceiverElevation
	// SourceElevation is the source elevation.
	SourceElevation
	// SourceDepth is the source depth below surface.
	SourceDepth
	// CoordinateUnits identifies the unit system of coordinate fields.
	CoordinateUnits
	// GlobalTraceIndex is an in-memory-only bookkeeping field: the trace's
	// global index across the whole distributed read, with no on-disk
	// mapping.
	GlobalTraceIndex
	// Raw is a special key meaning the full 240-byte trace header, used by
	// copy-all rules.
	Raw
)

// FieldType tags the native in-memory representation of a field. "Index"
// fields have no on-disk mapping; every other tag corresponds to a
// fixed-width numeric or byte-blob column.
type FieldType uint8

const (
	TypeF32 FieldType = iota
	TypeF64
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeIndex
)

// Size returns the native in-memory byte size of one value of type t (8 for
// TypeIndex, whose columns hold uint64), or 0 for an unknown tag.
func (t FieldType) Size() int {
	switch t {
	case TypeF32, TypeI32, TypeU32:
		return 4
	case TypeF64, TypeI64, TypeU64:
		return 8
	case TypeI8, TypeU8:
		return 1
	case TypeI16, TypeU16:
		return 2
	case TypeIndex:
		return 8
	default:
		return 0
	}
}

// FieldSpec describes one active column: its native type and per-trace
// element count (count > 1 only for the Raw column, which stores
// segy.TraceHeaderSize bytes per trace).
type FieldSpec struct {
	Type  FieldType
	Count int
}

// TypeMap records which fields are active in a Metadata container and
// their native representation.
type TypeMap map[FieldKey]FieldSpec
