// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "math"

// Float16Bits converts v to its IEEE 754 binary16 bit pattern
// (1 sign + 5 exponent + 10 fraction bits). The conversion is total:
//
//   - Inf maps to Inf, NaN maps to NaN (a non-zero fraction is forced
//     so NaN-ness survives the narrowing).
//   - Magnitudes above the binary16 range (unbiased exponent > 15)
//     saturate to signed infinity.
//   - Magnitudes below the smallest binary16 subnormal (unbiased
//     exponent < -24) flush to signed zero.
//   - Unbiased exponents in [-24, -14) produce binary16 subnormals.
//
// Excess fraction bits are truncated (round toward zero), not rounded
// to nearest; the conversion is lossy for values binary16 cannot
// represent exactly.
func Float16Bits(v float32) uint16 {
	bits := math.Float32bits(v)
	sign := uint16(bits >> 16 & 0x8000)
	exp := int(bits >> 23 & 0xff)
	frac := bits & 0x007f_ffff

	if exp == 0xff {
		if frac == 0 {
			return sign | 0x7c00
		}
		return sign | 0x7c00 | uint16(frac>>13) | 1
	}

	unbiased := exp - 127
	switch {
	case unbiased > 15:
		return sign | 0x7c00
	case unbiased < -24:
		return sign
	case unbiased < -14:
		// Subnormal: reinstate the implicit leading 1 (bit 23) and
		// shift it down to the subnormal position for this exponent.
		// unbiased -15 places the leading bit at fraction bit 9;
		// unbiased -24 places it at bit 0.
		return sign | uint16((frac|0x0080_0000)>>uint(-1-unbiased))
	}
	return sign | uint16(unbiased+15)<<10 | uint16(frac>>13)
}

// Float16FromBits converts an IEEE 754 binary16 bit pattern to
// float32. The conversion is exact and total: every 16-bit pattern has
// a defined binary32 image, including subnormals (renormalized), Inf,
// and NaN (fraction shifted into position, payload preserved).
func Float16FromBits(bits uint16) float32 {
	sign := uint32(bits&0x8000) << 16
	exp := uint32(bits>>10) & 0x1f
	frac := uint32(bits & 0x03ff)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the fraction up until the implicit bit
		// position (bit 10) is set, decrementing the exponent per
		// shift, then rebias into binary32.
		shift := uint32(0)
		for frac&0x0400 == 0 {
			frac <<= 1
			shift++
		}
		frac &= 0x03ff
		exp32 := (127 - 15 - shift + 1) << 23
		return math.Float32frombits(sign | exp32 | frac<<13)
	case 0x1f:
		return math.Float32frombits(sign | 0x7f80_0000 | frac<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | frac<<13)
}
