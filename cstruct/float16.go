package cstruct

import "math"

// IEEE 754 binary16 <-> binary32 conversion, operating on logical bit
// patterns via math.Float32bits so host byte order never enters the picture.
//
// The wire contract fixes the rounding behavior: normal values truncate the
// mantissa to 10 bits, and the subnormal path rounds by adding 0x1000 before
// the final shift (round-half-up at that bit position). Library half-float
// implementations round to nearest-even, which produces different bytes, so
// the conversion is kept here.

// Float16FromFloat32 compresses f to its binary16 bit pattern.
func Float16FromFloat32(f float32) uint16 {
	bits := math.Float32bits(f)

	sign := uint16(bits>>16) & 0x8000
	exp := int32((bits>>23)&0xFF) - 127 + 15
	frac := uint16(bits>>13) & 0x3FF

	switch {
	case exp <= 0:
		if exp < -10 {
			// Too small for a subnormal; flush to signed zero.
			return sign
		}
		// Subnormal: merge the implicit leading 1, shift into place, round.
		m := (bits & 0x7FFFFF) | 0x800000
		m >>= uint(1 - exp)
		m = (m + 0x1000) >> 13
		return sign | uint16(m)
	case exp >= 0x1F:
		if bits&0x7FFFFF != 0 {
			// NaN; keep the top mantissa bits so the payload survives.
			return sign | 0x7C00 | uint16(bits>>13)&0x3FF
		}
		return sign | 0x7C00
	default:
		return sign | uint16(exp)<<10 | frac
	}
}

// Float32FromFloat16 expands the binary16 bit pattern h to a float32.
// The conversion is exact; every binary16 value is representable.
func Float32FromFloat16(h uint16) float32 {
	sign := uint32(h>>15) & 1
	exp := int32(h>>10) & 0x1F
	frac := uint32(h & 0x3FF)

	var bits uint32
	switch {
	case exp == 0:
		if frac == 0 {
			bits = sign << 31
			break
		}
		// Subnormal: shift until the implicit bit surfaces, then rebias.
		for frac&0x400 == 0 {
			frac <<= 1
			exp--
		}
		exp++
		frac &= 0x3FF
		bits = sign<<31 | uint32(exp+127-15)<<23 | frac<<13
	case exp == 0x1F:
		// Inf and NaN carry straight across.
		bits = sign<<31 | 0xFF<<23 | frac<<13
	default:
		bits = sign<<31 | uint32(exp+127-15)<<23 | frac<<13
	}
	return math.Float32frombits(bits)
}
