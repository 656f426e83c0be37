package raster

import "math"

// Float16 represents an IEEE 754 half-precision (binary16) value.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero     Float16 = 0x0000 // Positive zero
	Float16One      Float16 = 0x3C00 // 1.0
	Float16MaxValue Float16 = 0x7BFF // 65504 (max finite value)
	Float16Inf      Float16 = 0x7C00 // Positive infinity
	Float16NegInf   Float16 = 0xFC00 // Negative infinity
	Float16NaN      Float16 = 0x7E00 // Quiet NaN (canonical)
)

// Float32 widens the half-precision value to float32.
// Handles all special cases: zero, denormals, infinity, NaN.
func (h Float16) Float32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := int32((bits >> 10) & 0x1F)
	mant := bits & 0x3FF

	switch {
	case exp == 0:
		if mant == 0 {
			// Zero (positive or negative)
			return math.Float32frombits(sign << 31)
		}
		// Denormalized: normalize by shifting the mantissa until the
		// implicit leading 1 appears, adjusting the exponent to match.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
	case exp == 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000) // Inf
		}
		return math.Float32frombits(sign<<31 | 0x7FC00000 | mant<<13) // NaN
	}

	return math.Float32frombits(sign<<31 | uint32(exp+127-15)<<23 | mant<<13)
}

// ToFloat16 narrows a float32 value to half precision using
// round-to-nearest-even, the IEEE 754 default rounding mode.
func ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp32 := (bits >> 23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp32 == 0xFF {
		if mant != 0 {
			return Float16(sign | 0x7E00) // NaN collapses to canonical quiet NaN
		}
		return Float16(sign | 0x7C00) // Inf
	}

	exp := int32(exp32) - 127 + 15
	switch {
	case exp >= 0x1F:
		// Overflow: rounds to infinity.
		return Float16(sign | 0x7C00)
	case exp <= 0:
		// Half-precision denormal range.
		if exp < -10 {
			// Too small for even the largest shift: signed zero.
			return Float16(sign)
		}
		mant |= 0x800000 // restore the implicit leading 1
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		round := uint32(1) << (shift - 1)
		if mant&round != 0 && (mant&(round-1) != 0 || half&1 != 0) {
			half++
		}
		return Float16(sign | half)
	}

	half := uint16(exp)<<10 | uint16(mant>>13)
	if mant&0x1000 != 0 && (mant&0xFFF != 0 || half&1 != 0) {
		// A carry out of the mantissa increments the exponent field,
		// which is exactly the rounding IEEE 754 requires.
		half++
	}
	return Float16(sign | half)
}
