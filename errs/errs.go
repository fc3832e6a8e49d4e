// Package errs defines the sentinel error values shared across segyio's
// subsystems. Every package wraps one of these with fmt.Errorf("%w: ...")
// so callers can use errors.Is while still getting a message that names the
// field key or byte range involved.
package errs

import "errors"

var (
	// ErrFileNotFound is returned when an IO driver is constructed against a
	// path that does not exist.
	ErrFileNotFound = errors.New("segyio: file not found")

	// ErrNotOpen is returned when an operation is attempted against a driver
	// or file that has been closed or was never successfully opened.
	ErrNotOpen = errors.New("segyio: driver not open")

	// ErrIO wraps any failure surfaced by the underlying transport during
	// read, write, resize, or sync.
	ErrIO = errors.New("segyio: io error")

	// ErrCorruptFile is returned when the file size is not consistent with
	// the trace layout, the number format is unsupported, or the text
	// header is neither printable ASCII nor valid EBCDIC.
	ErrCorruptFile = errors.New("segyio: corrupt file")

	// ErrEntryNotFound is returned when a metadata get/set references a
	// field key that is not present in the container's type map, or one
	// whose recorded type belongs to a different accessor (an integer
	// field read through GetFloatingPoint, say).
	ErrEntryNotFound = errors.New("segyio: metadata entry not found")

	// ErrWrongType is returned when a metadata column holds a slice kind
	// its accessor does not handle. A get/set through the accessor for a
	// different native type reports ErrEntryNotFound instead.
	ErrWrongType = errors.New("segyio: metadata entry type mismatch")

	// ErrOutOfRange is returned when an offset+length falls outside a
	// file's bounds, or when scalar selection cannot represent a value.
	ErrOutOfRange = errors.New("segyio: out of range")

	// ErrUnsupportedFormat is returned for a binary-header number_format
	// value other than IBM_fp32 (1) or IEEE_fp32 (5).
	ErrUnsupportedFormat = errors.New("segyio: unsupported sample format")

	// ErrCollective names a collective operation whose ranks disagree in a
	// way that cannot be reconciled. No Communicator implementation in this
	// module returns it.
	ErrCollective = errors.New("segyio: collective operation failed")
)
