package blobparser

import (
	"fmt"

	"github.com/exseisdat/segyio/codec"
	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// RawCopyParser copies the entire TraceHeaderSize-byte header verbatim into
// the metadata container's Raw column and back. It is the "copy-all" entry
// a full-extent or copy-through Rule carries so fields the rule does not
// explicitly parse still survive a read/write round trip.
type RawCopyParser struct{}

var _ Parser = RawCopyParser{}

func (RawCopyParser) FieldKey() tracemd.FieldKey { return tracemd.Raw }

func (RawCopyParser) Locations() []Location {
	return []Location{{Begin: 0, End: segy.TraceHeaderSize}}
}

func (RawCopyParser) ParsedType() ParsedType {
	return ParsedType{Kind: tracemd.TypeU8, Count: segy.TraceHeaderSize}
}

func (RawCopyParser) Read(locs []ReadLocation, dst *tracemd.Metadata, row int) error {
	out, err := dst.RawHeader(row)
	if err != nil {
		return err
	}

	copy(out, locs[0].Data)

	return nil
}

func (RawCopyParser) Write(locs []WriteLocation, src *tracemd.Metadata, row int) error {
	in, err := src.RawHeader(row)
	if err != nil {
		return err
	}

	copy(locs[0].Data, in)

	return nil
}

// Int32Parser reads/writes a single big-endian int32 at a fixed offset
// within the trace header.
type Int32Parser struct {
	Key    tracemd.FieldKey
	Offset int
}

var _ Parser = Int32Parser{}

func (p Int32Parser) FieldKey() tracemd.FieldKey { return p.Key }

func (p Int32Parser) Locations() []Location {
	return []Location{{Begin: p.Offset, End: p.Offset + 4}}
}

func (Int32Parser) ParsedType() ParsedType {
	return ParsedType{Kind: tracemd.TypeI32, Count: 1}
}

func (p Int32Parser) Read(locs []ReadLocation, dst *tracemd.Metadata, row int) error {
	v := codec.Int32(locs[0].Data)

	return dst.SetInteger(row, p.Key, int64(v))
}

func (p Int32Parser) Write(locs []WriteLocation, src *tracemd.Metadata, row int) error {
	v, err := src.GetInteger(row, p.Key)
	if err != nil {
		return err
	}

	codec.PutInt32(locs[0].Data, int32(v))

	return nil
}

// Int16Parser reads/writes a single big-endian int16 at a fixed offset
// within the trace header.
type Int16Parser struct {
	Key    tracemd.FieldKey
	Offset int
}

var _ Parser = Int16Parser{}

func (p Int16Parser) FieldKey() tracemd.FieldKey { return p.Key }

func (p Int16Parser) Locations() []Location {
	return []Location{{Begin: p.Offset, End: p.Offset + 2}}
}

func (Int16Parser) ParsedType() ParsedType {
	return ParsedType{Kind: tracemd.TypeI16, Count: 1}
}

func (p Int16Parser) Read(locs []ReadLocation, dst *tracemd.Metadata, row int) error {
	v := codec.Int16(locs[0].Data)

	return dst.SetInteger(row, p.Key, int64(v))
}

func (p Int16Parser) Write(locs []WriteLocation, src *tracemd.Metadata, row int) error {
	v, err := src.GetInteger(row, p.Key)
	if err != nil {
		return err
	}

	codec.PutInt16(locs[0].Data, int16(v))

	return nil
}

// IndexParser is an in-memory-only field: it has no on-disk location, and
// Read/Write are no-ops against the blob. It exists so Rule-driven
// orchestration can treat index fields (e.g. GlobalTraceIndex) uniformly
// with on-disk fields.
type IndexParser struct {
	Key tracemd.FieldKey
}

var _ Parser = IndexParser{}

func (p IndexParser) FieldKey() tracemd.FieldKey { return p.Key }
func (IndexParser) Locations() []Location        { return nil }
func (IndexParser) ParsedType() ParsedType        { return ParsedType{Kind: tracemd.TypeIndex, Count: 1} }
func (IndexParser) Read([]ReadLocation, *tracemd.Metadata, int) error  { return nil }
func (IndexParser) Write([]WriteLocation, *tracemd.Metadata, int) error { return nil }

// ScaledCoordParser reads/writes a coordinate value that is stored as an
// int32 scaled by the int16 coordinate scalar elsewhere in the header.
// It has two locations: the value and the scalar, in ascending offset
// order.
type ScaledCoordParser struct {
	Key          tracemd.FieldKey
	ValueOffset  int
	ScalarOffset int
}

var _ Parser = ScaledCoordParser{}

func (p ScaledCoordParser) FieldKey() tracemd.FieldKey { return p.Key }

func (p ScaledCoordParser) Locations() []Location {
	locs := []Location{
		{Begin: p.ValueOffset, End: p.ValueOffset + 4},
		{Begin: p.ScalarOffset, End: p.ScalarOffset + 2},
	}
	if p.ScalarOffset < p.ValueOffset {
		locs[0], locs[1] = locs[1], locs[0]
	}

	return locs
}

func (ScaledCoordParser) ParsedType() ParsedType {
	return ParsedType{Kind: tracemd.TypeF64, Count: 1}
}

func (p ScaledCoordParser) Read(locs []ReadLocation, dst *tracemd.Metadata, row int) error {
	valueData, scalarData, err := p.splitRead(locs)
	if err != nil {
		return err
	}

	raw := codec.Int32(valueData)
	scalar := codec.Int16(scalarData)
	v := float64(raw) * codec.ParseScalar(scalar)

	return dst.SetFloatingPoint(row, p.Key, v)
}

func (p ScaledCoordParser) Write(locs []WriteLocation, src *tracemd.Metadata, row int) error {
	value, err := src.GetFloatingPoint(row, p.Key)
	if err != nil {
		return err
	}

	valueData, scalarData, err := p.splitWrite(locs)
	if err != nil {
		return err
	}

	scalar := codec.Int16(scalarData)
	scale := codec.ParseScalar(scalar)
	stored := int32(value/scale + sign(value)*0.5)
	codec.PutInt32(valueData, stored)

	return nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}

func (p ScaledCoordParser) splitRead(locs []ReadLocation) (value, scalar []byte, err error) {
	for _, l := range locs {
		switch l.Begin {
		case p.ValueOffset:
			value = l.Data
		case p.ScalarOffset:
			scalar = l.Data
		}
	}
	if value == nil || scalar == nil {
		return nil, nil, fmt.Errorf("%w: scaled coord parser for key %v missing required location", errs.ErrOutOfRange, p.Key)
	}

	return value, scalar, nil
}

func (p ScaledCoordParser) splitWrite(locs []WriteLocation) (value, scalar []byte, err error) {
	for _, l := range locs {
		switch l.Begin {
		case p.ValueOffset:
			value = l.Data
		case p.ScalarOffset:
			scalar = l.Data
		}
	}
	if value == nil || scalar == nil {
		return nil, nil, fmt.Errorf("%w: scaled coord parser for key %v missing required location", errs.ErrOutOfRange, p.Key)
	}

	return value, scalar, nil
}

// MakeParser returns the fixed SEG-Y parser for key, or nil if key has no
// standard mapping.
func MakeParser(key tracemd.FieldKey) Parser {
	switch key {
	case tracemd.LineTraceIndex:
		return Int32Parser{Key: key, Offset: segy.OffsetLineTraceIndex}
	case tracemd.FileTraceIndex:
		return Int32Parser{Key: key, Offset: segy.OffsetFileTraceIndex}
	case tracemd.OfrTraceIndex:
		return Int32Parser{Key: key, Offset: segy.OffsetOfrTraceIndex}
	case tracemd.Inline:
		return Int32Parser{Key: key, Offset: segy.OffsetInline}
	case tracemd.Crossline:
		return Int32Parser{Key: key, Offset: segy.OffsetCrossline}
	case tracemd.CoordinateScalar:
		return Int16Parser{Key: key, Offset: segy.OffsetCoordinateScalar}
	case tracemd.SourceX:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetSourceX, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.SourceY:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetSourceY, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.ReceiverX:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetReceiverX, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.ReceiverY:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetReceiverY, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.CDPX:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetCDPX, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.CDPY:
		return ScaledCoordParser{Key: key, ValueOffset: segy.OffsetCDPY, ScalarOffset: segy.OffsetCoordinateScalar}
	case tracemd.NumberOfSamples:
		return Int16Parser{Key: key, Offset: segy.OffsetNumberOfSamples}
	case tracemd.SampleInterval:
		return Int16Parser{Key: key, Offset: segy.OffsetSampleInterval2}
	case tracemd.GlobalTraceIndex:
		return IndexParser{Key: key}
	case tracemd.Raw:
		return RawCopyParser{}
	default:
		return nil
	}
}
