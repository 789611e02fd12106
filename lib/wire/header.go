// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// CBOR major types (RFC 8949 §3), the top 3 bits of a header byte.
const (
	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorText     = 3
	majorArray    = 4
	majorMap      = 5
	majorTag      = 6
	majorSimple   = 7
)

// Additional-info values (the low 5 bits of a header byte) that select
// a payload width instead of carrying the value inline.
const (
	aiOneByte    = 24
	aiTwoBytes   = 25
	aiFourBytes  = 26
	aiEightBytes = 27
	aiIndefinite = 31
)

// Complete header bytes for the fixed-width integer encodings. The
// fixed-width discipline always emits (and requires) exactly these.
const (
	hdrUint8  = 0x18 // major 0, ai 24
	hdrUint16 = 0x19
	hdrUint32 = 0x1a
	hdrUint64 = 0x1b

	hdrNegative8  = 0x38 // major 1, ai 24
	hdrNegative16 = 0x39
	hdrNegative32 = 0x3a
	hdrNegative64 = 0x3b
)

// Simple values and float headers (major 7).
const (
	hdrFalse   = 0xf4
	hdrTrue    = 0xf5
	hdrNull    = 0xf6
	hdrFloat16 = 0xf9
	hdrFloat32 = 0xfa
	hdrFloat64 = 0xfb
	hdrBreak   = 0xff
)
