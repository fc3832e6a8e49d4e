// Package rules implements the declarative field-to-parser binding set
// that drives how a trace header blob is read into, and written from, a
// tracemd.Metadata container. A Rule owns no bytes itself: it
// is a map from FieldKey to the blobparser.Parser responsible for that
// field, plus the bookkeeping needed to compute the minimal byte extent a
// read or write over the whole set actually touches.
package rules

import (
	"fmt"

	"github.com/exseisdat/segyio/blobparser"
	"github.com/exseisdat/segyio/errs"
	"github.com/exseisdat/segyio/tracemd"
)

// defaultKeys is the field set NewRule(_, true, _) installs: source and
// receiver X/Y, CDP X/Y, inline, crossline and the coordinate scalar that
// scales them.
var defaultKeys = []tracemd.FieldKey{
	tracemd.SourceX,
	tracemd.SourceY,
	tracemd.ReceiverX,
	tracemd.ReceiverY,
	tracemd.CDPX,
	tracemd.CDPY,
	tracemd.Inline,
	tracemd.Crossline,
	tracemd.CoordinateScalar,
}

// extraKeys is the larger copy-through set NewRule(_, _, true) adds on top
// of defaultKeys.
var extraKeys = []tracemd.FieldKey{
	tracemd.LineTraceIndex,
	tracemd.FileTraceIndex,
	tracemd.OfrTraceIndex,
	tracemd.NumberOfSamples,
	tracemd.SampleInterval,
}

// Rule is an immutable-by-convention, builder-style binding set: each
// mutator that can fail returns an error rather than panicking so callers assembling a
// rule from user-facing configuration can surface a clean message.
type Rule struct {
	fullExtent bool
	entries    map[tracemd.FieldKey]blobparser.Parser
}

// NewRule constructs a Rule. fullExtent installs a RawCopyParser under
// tracemd.Raw so Extent always spans the whole trace header regardless of
// which other fields are active. defaults installs the common
// geometry/coordinate field set; extras additionally installs the
// larger copy-through set.
func NewRule(fullExtent, defaults, extras bool) *Rule {
	r := &Rule{
		fullExtent: fullExtent,
		entries:    make(map[tracemd.FieldKey]blobparser.Parser),
	}

	if fullExtent {
		r.entries[tracemd.Raw] = blobparser.RawCopyParser{}
	}

	if defaults {
		for _, key := range defaultKeys {
			_ = r.Add(key)
		}
	}

	if extras {
		for _, key := range extraKeys {
			_ = r.Add(key)
		}
	}

	return r
}

// Add installs key's standard SEG-Y parser, as returned by
// blobparser.MakeParser. It fails if key has no standard mapping (use
// AddLong/AddShort/AddSegyFloat for a custom offset, or AddIndex for an
// in-memory-only field).
func (r *Rule) Add(key tracemd.FieldKey) error {
	p := blobparser.MakeParser(key)
	if p == nil {
		return fmt.Errorf("%w: key %v has no standard mapping, use AddLong/AddShort/AddSegyFloat/AddIndex", errs.ErrEntryNotFound, key)
	}

	r.entries[key] = p

	return nil
}

// AddLong installs key as a big-endian int32 at offsets[0].
func (r *Rule) AddLong(key tracemd.FieldKey, offsets ...int) error {
	if len(offsets) != 1 {
		return fmt.Errorf("%w: AddLong requires exactly one offset", errs.ErrOutOfRange)
	}

	r.entries[key] = blobparser.Int32Parser{Key: key, Offset: offsets[0]}

	return nil
}

// AddShort installs key as a big-endian int16 at offsets[0].
func (r *Rule) AddShort(key tracemd.FieldKey, offsets ...int) error {
	if len(offsets) != 1 {
		return fmt.Errorf("%w: AddShort requires exactly one offset", errs.ErrOutOfRange)
	}

	r.entries[key] = blobparser.Int16Parser{Key: key, Offset: offsets[0]}

	return nil
}

// AddSegyFloat installs key as an int32 value scaled by an int16 scalar,
// offsets[0] and offsets[1] respectively (the SEG-Y coordinate-scalar
// convention).
func (r *Rule) AddSegyFloat(key tracemd.FieldKey, offsets ...int) error {
	if len(offsets) != 2 {
		return fmt.Errorf("%w: AddSegyFloat requires exactly two offsets (value, scalar)", errs.ErrOutOfRange)
	}

	r.entries[key] = blobparser.ScaledCoordParser{
		Key:          key,
		ValueOffset:  offsets[0],
		ScalarOffset: offsets[1],
	}

	return nil
}

// AddIndex installs key as an in-memory-only field with no on-disk
// location (e.g. tracemd.GlobalTraceIndex).
func (r *Rule) AddIndex(key tracemd.FieldKey, _ ...int) error {
	r.entries[key] = blobparser.IndexParser{Key: key}

	return nil
}

// AddCopy installs the full-header RawCopyParser under tracemd.Raw and
// marks the rule as full-extent.
func (r *Rule) AddCopy(_ tracemd.FieldKey, _ ...int) error {
	r.entries[tracemd.Raw] = blobparser.RawCopyParser{}
	r.fullExtent = true

	return nil
}

// Remove deletes key's binding, if present. Removing tracemd.Raw also
// clears the full-extent flag.
func (r *Rule) Remove(key tracemd.FieldKey) {
	delete(r.entries, key)

	if key == tracemd.Raw {
		r.fullExtent = false
	}
}

// AddFrom merges all of other's bindings into r, overwriting any existing
// entry for a shared key.
func (r *Rule) AddFrom(other *Rule) {
	for key, p := range other.entries {
		r.entries[key] = p
	}

	if other.fullExtent {
		r.fullExtent = true
	}
}

// Extent returns the minimal [start, end) byte range within a trace
// header that this rule's active entries touch. It is computed fresh from
// r.entries on every call rather than cached, since a cached extent can
// silently go stale after Add/Remove (see DESIGN.md Open Questions).
func (r *Rule) Extent() (start, end int) {
	if len(r.entries) == 0 {
		return 0, 0
	}

	start = -1
	end = 0

	for _, p := range r.entries {
		for _, loc := range p.Locations() {
			if start == -1 || loc.Begin < start {
				start = loc.Begin
			}
			if loc.End > end {
				end = loc.End
			}
		}
	}

	if start == -1 {
		return 0, 0
	}

	return start, end
}

// MemoryPerHeader returns the total in-memory footprint, in bytes, of one
// trace's worth of the fields this rule activates.
func (r *Rule) MemoryPerHeader() int {
	total := 0

	for _, p := range r.entries {
		pt := p.ParsedType()
		size := pt.Kind.Size()
		if size == 0 {
			size = 1
		}

		count := pt.Count
		if count == 0 {
			count = 1
		}

		total += size * count
	}

	return total
}

// EntryFor returns the parser bound to key, if any.
func (r *Rule) EntryFor(key tracemd.FieldKey) (blobparser.Parser, bool) {
	p, ok := r.entries[key]

	return p, ok
}

// HasCopyAll reports whether this rule carries a full-header RawCopyParser
// entry.
func (r *Rule) HasCopyAll() bool {
	_, ok := r.entries[tracemd.Raw]

	return ok
}

// Entries returns a copy of this rule's key-to-parser bindings, for
// orchestration code (package file) that needs to iterate every active
// parser.
func (r *Rule) Entries() map[tracemd.FieldKey]blobparser.Parser {
	out := make(map[tracemd.FieldKey]blobparser.Parser, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}

	return out
}

// TypeMap derives a tracemd.TypeMap from this rule's active entries,
// suitable for constructing a tracemd.Metadata container sized to hold
// exactly the fields this rule parses.
func (r *Rule) TypeMap() tracemd.TypeMap {
	tm := make(tracemd.TypeMap, len(r.entries))

	for key, p := range r.entries {
		pt := p.ParsedType()
		tm[key] = tracemd.FieldSpec{Type: pt.Kind, Count: pt.Count}
	}

	return tm
}
