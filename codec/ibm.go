package codec

// IBM System/360 hexadecimal floating-point, 4 bytes: 1 sign bit, 7 biased
// base-16 exponent bits, 24 significand bits. No
// ecosystem library in the retrieved corpus implements this conversion, so
// it is hand-rolled bit arithmetic rather than an adapted dependency — see
// DESIGN.md.

// IBMToFloat32 decodes a big-endian IBM/360 hex-float value into IEEE-754
// float32. It is exact for every IBM value representable in float32;
// subnormal IEEE results are produced for very small IBM exponents rather
// than flushed to zero.
func IBMToFloat32(b [4]byte) float32 {
	sign := int32(1)
	if b[0]&0x80 != 0 {
		sign = -1
	}

	exponent := int32(b[0]&0x7F) - 64
	significand := uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	if significand == 0 {
		return 0
	}

	// value = sign * (significand / 2^24) * 16^exponent
	//       = sign * significand * 2^(4*exponent - 24)
	mantissa := float64(significand)
	value := mantissa * pow2(4*exponent-24)

	return float32(sign) * float32(value)
}

// Float32ToIBM encodes an IEEE-754 float32 into big-endian IBM/360
// hex-float representation.
func Float32ToIBM(f float32) [4]byte {
	if f == 0 {
		return [4]byte{}
	}

	sign := byte(0)
	v := float64(f)
	if v < 0 {
		sign = 0x80
		v = -v
	}

	// Find exponent such that 1/16 <= significand < 1, significand stored
	// as a 24-bit fraction of 2^24.
	exponent := 0
	for v >= 1 {
		v /= 16
		exponent++
	}
	for v < 1.0/16.0 {
		v *= 16
		exponent--
	}

	significand := uint32(v*16777216.0 + 0.5) // round to nearest, 2^24
	if significand >= 1<<24 {
		significand >>= 4
		exponent++
	}

	biased := byte(exponent+64) & 0x7F

	return [4]byte{
		sign | biased,
		byte(significand >> 16),
		byte(significand >> 8),
		byte(significand),
	}
}

// pow2 computes 2^n for an integer exponent without accumulating the error
// that repeated multiplication by 2 would introduce for very negative n.
func pow2(n int32) float64 {
	if n >= 0 {
		result := 1.0
		for range n {
			result *= 2
		}

		return result
	}

	result := 1.0
	for range -n {
		result /= 2
	}

	return result
}
