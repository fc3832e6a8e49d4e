// Package codec implements segyio's number and text codecs: big-endian
// integer packing, IBM↔IEEE fp32 conversion, ASCII↔EBCDIC text conversion,
// and the SEG-Y coordinate-scalar convention. SEG-Y is always big-endian on
// disk, so this package fixes engine to endian.GetBigEndianEngine() once
// and never switches it, even though the engine type itself supports both
// orders.
package codec

import (
	"math"

	"github.com/exseisdat/segyio/endian"
)

var engine = endian.GetBigEndianEngine()

// PutInt16 writes v into buf[:2] as a big-endian two's-complement int16.
func PutInt16(buf []byte, v int16) { engine.PutUint16(buf, uint16(v)) }

// Int16 reads a big-endian int16 from buf[:2].
func Int16(buf []byte) int16 { return int16(engine.Uint16(buf)) }

// PutUint16 writes v into buf[:2] as big-endian.
func PutUint16(buf []byte, v uint16) { engine.PutUint16(buf, v) }

// Uint16 reads a big-endian uint16 from buf[:2].
func Uint16(buf []byte) uint16 { return engine.Uint16(buf) }

// PutInt32 writes v into buf[:4] as a big-endian two's-complement int32.
func PutInt32(buf []byte, v int32) { engine.PutUint32(buf, uint32(v)) }

// Int32 reads a big-endian int32 from buf[:4].
func Int32(buf []byte) int32 { return int32(engine.Uint32(buf)) }

// PutUint32 writes v into buf[:4] as big-endian.
func PutUint32(buf []byte, v uint32) { engine.PutUint32(buf, v) }

// Uint32 reads a big-endian uint32 from buf[:4].
func Uint32(buf []byte) uint32 { return engine.Uint32(buf) }

// PutInt64 writes v into buf[:8] as a big-endian two's-complement int64.
func PutInt64(buf []byte, v int64) { engine.PutUint64(buf, uint64(v)) }

// Int64 reads a big-endian int64 from buf[:8].
func Int64(buf []byte) int64 { return int64(engine.Uint64(buf)) }

// PutUint64 writes v into buf[:8] as big-endian.
func PutUint64(buf []byte, v uint64) { engine.PutUint64(buf, v) }

// Uint64 reads a big-endian uint64 from buf[:8].
func Uint64(buf []byte) uint64 { return engine.Uint64(buf) }

// PutFloat32 writes v into buf[:4] as a big-endian IEEE-754 float32, bit-cast
// through its uint32 representation.
func PutFloat32(buf []byte, v float32) {
	engine.PutUint32(buf, math.Float32bits(v))
}

// Float32 reads a big-endian IEEE-754 float32 from buf[:4].
func Float32(buf []byte) float32 {
	return math.Float32frombits(engine.Uint32(buf))
}

// PutFloat64 writes v into buf[:8] as a big-endian IEEE-754 float64.
func PutFloat64(buf []byte, v float64) {
	engine.PutUint64(buf, math.Float64bits(v))
}

// Float64 reads a big-endian IEEE-754 float64 from buf[:8].
func Float64(buf []byte) float64 {
	return math.Float64frombits(engine.Uint64(buf))
}
