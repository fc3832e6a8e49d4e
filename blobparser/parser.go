// Package blobparser implements the sparse, reversible mapping between a
// trace metadata field's logical value and one or more byte ranges inside a
// trace header blob. Parsers declare the byte ranges they
// need; the orchestrator (package file) fills in the live bytes and drives
// Read/Write — this is what lets the rest of the stack avoid allocating and
// shuffling whole 240-byte buffers for single-field updates, and lets
// multiple parsers share the same underlying blob.
package blobparser

import "github.com/exseisdat/segyio/tracemd"

// Location is a disjoint byte range within a trace header blob.
type Location struct {
	Begin, End int
}

// ReadLocation pairs a Location with the live, read-only bytes backing it.
type ReadLocation struct {
	Location
	Data []byte
}

// WriteLocation pairs a Location with the live, mutable bytes backing it.
type WriteLocation struct {
	Location
	Data []byte
}

// ParsedType describes the native representation a Parser produces.
type ParsedType struct {
	Kind  tracemd.FieldType
	Count int
}

// Parser is the per-field contract: it knows which byte ranges of a trace
// header it needs, and how to move values between those bytes and a
// tracemd.Metadata column.
type Parser interface {
	// FieldKey returns the metadata field this parser populates.
	FieldKey() tracemd.FieldKey

	// Locations returns this parser's required byte ranges, in ascending
	// order of Begin.
	Locations() []Location

	// ParsedType returns the native type and count this parser produces.
	ParsedType() ParsedType

	// Read decodes the field's value out of locs (which must cover at
	// least this parser's required ranges) into dst at row.
	Read(locs []ReadLocation, dst *tracemd.Metadata, row int) error

	// Write encodes dst's value at row into locs (which must cover at
	// least this parser's required ranges).
	Write(locs []WriteLocation, src *tracemd.Metadata, row int) error
}
