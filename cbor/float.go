package cbor

import "math"

// widenFloat16 expands an IEEE-754 binary16 bit pattern to float64,
// following the reference decoder's manual exponent/fraction rebias
// (sign:1, exponent:5, fraction:10) rather than relying on a library
// half-float type.
func widenFloat16(u16 uint16) float64 {
	sign := uint64(u16>>15) & 1
	exp := int((u16 >> 10) & 0x1F)
	frac := uint64(u16 & 0x3FF)

	bits := frac << (52 - 10)
	if sign != 0 {
		bits |= uint64(1) << 63
	}
	switch {
	case exp == 0:
		// subnormal or zero: leave exponent field clear.
	case exp == 31:
		bits |= uint64(0x7FF) << 52
	default:
		bits |= uint64(exp-15+1023) << 52
	}
	return math.Float64frombits(bits)
}

// widenFloat32 expands an IEEE-754 binary32 bit pattern to float64 via
// manual rebiasing rather than math.Float32frombits, keeping the
// bit-level handling of Inf/NaN/subnormal inputs explicit.
func widenFloat32(u32 uint32) float64 {
	sign := uint64(u32>>31) & 1
	exp := int((u32 >> 23) & 0xFF)
	frac := uint64(u32 & 0x7FFFFF)

	bits := frac << (52 - 23)
	if sign != 0 {
		bits |= uint64(1) << 63
	}
	switch {
	case exp == 0:
	case exp == 255:
		bits |= uint64(0x7FF) << 52
	default:
		bits |= uint64(exp-127+1023) << 52
	}
	return math.Float64frombits(bits)
}

// narrowReal picks the shortest IEEE-754 width (16, 32, or 64 bits)
// that represents f without loss, and returns that width together with
// the bit pattern at that width (the caller writes it big-endian). It mirrors the reference encoder's
// frac_bitcnt computation: the fraction's trailing-zero count decides
// how many significand bits a narrower width would need to keep.
//
// The reference's float32 branch for zero/subnormal/Inf/NaN doubles
// sets the narrowed exponent field with `0x3F << 23`, six bits instead
// of the eight a binary32 exponent field needs; narrowing a double
// Infinity or NaN through that path produces a finite float32 instead
// of Inf/NaN. That is treated as a transcription bug and not
// replicated here; this implementation sets the full
// 0xFF<<23 exponent field instead.
func narrowReal(f float64) (width int, bits uint64) {
	u64 := math.Float64bits(f)
	exponent := int((u64 >> 52) & 0x7FF)
	sign := (u64 >> 63) & 1
	frac := u64 & 0xFFFFFFFFFFFFF

	var fracBitcnt int
	if frac != 0 {
		t := frac
		for fracBitcnt = 0; fracBitcnt < 52; fracBitcnt++ {
			if t&1 != 0 {
				break
			}
			t >>= 1
		}
	} else {
		fracBitcnt = 52
	}
	fracBitcnt = 52 - fracBitcnt

	if exponent == 0 || exponent == 0x7FF {
		switch {
		case fracBitcnt <= 10:
			u16 := uint64(frac >> (52 - 10))
			if sign != 0 {
				u16 |= 1 << 15
			}
			if exponent != 0 {
				u16 |= 0x1F << 10
			}
			return 16, u16
		case fracBitcnt <= 23:
			u32 := uint64(frac >> (52 - 23))
			if sign != 0 {
				u32 |= 1 << 31
			}
			if exponent != 0 {
				u32 |= 0xFF << 23
			}
			return 32, u32
		default:
			u := frac
			if sign != 0 {
				u |= uint64(1) << 63
			}
			if exponent != 0 {
				u |= uint64(0x7FF) << 52
			}
			return 64, u
		}
	}

	e := exponent - 1023
	switch {
	case e >= -14 && e <= 15 && fracBitcnt <= 10:
		u16 := uint64(frac >> (52 - 10))
		if sign != 0 {
			u16 |= 1 << 15
		}
		u16 |= uint64(e+15) << 10
		return 16, u16
	case e >= -126 && e <= 127 && fracBitcnt <= 23:
		u32 := uint64(frac >> (52 - 23))
		if sign != 0 {
			u32 |= 1 << 31
		}
		u32 |= uint64(e+127) << 23
		return 32, u32
	default:
		u := frac
		if sign != 0 {
			u |= uint64(1) << 63
		}
		u |= uint64(e+1023) << 52
		return 64, u
	}
}
