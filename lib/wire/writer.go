// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"math"
)

// Writer serializes values into the wire format by appending to an
// owned, growable buffer. Writes never fail: every representable value
// of every method's parameter type has an encoding. A Writer is used
// for exactly one encode pass and retired by Finish.
//
// Not safe for concurrent use.
type Writer struct {
	buf      []byte
	finished bool
}

// NewWriter returns an empty Writer with a small initial capacity.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 256)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Finish returns the encoded bytes and retires the Writer. Any write
// after Finish panics: the buffer has been handed to the caller and
// must not be mutated underneath them.
func (w *Writer) Finish() []byte {
	w.finished = true
	buf := w.buf
	w.buf = nil
	return buf
}

// WriteBool appends true (0xf5) or false (0xf4).
func (w *Writer) WriteBool(v bool) {
	if v {
		w.push(hdrTrue)
	} else {
		w.push(hdrFalse)
	}
}

// WriteNull appends the null simple value (0xf6).
func (w *Writer) WriteNull() {
	w.push(hdrNull)
}

// WriteUint8 appends v in the fixed 1-byte-payload form (0x18 + byte),
// regardless of magnitude.
func (w *Writer) WriteUint8(v uint8) {
	w.push(hdrUint8)
	w.push(v)
}

// WriteUint16 appends v in the fixed 2-byte-payload form.
func (w *Writer) WriteUint16(v uint16) {
	w.push(hdrUint16)
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteUint32 appends v in the fixed 4-byte-payload form.
func (w *Writer) WriteUint32(v uint32) {
	w.push(hdrUint32)
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteUint64 appends v in the fixed 8-byte-payload form.
func (w *Writer) WriteUint64(v uint64) {
	w.push(hdrUint64)
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// WriteInt8 appends v at the full declared width: major type 0 for
// v >= 0, major type 1 with magnitude -1-v for v < 0. The payload is
// always 1 byte, so the wire width is determined by the field's type
// rather than the value's magnitude.
func (w *Writer) WriteInt8(v int8) {
	if v >= 0 {
		w.push(hdrUint8)
		w.push(uint8(v))
		return
	}
	w.push(hdrNegative8)
	w.push(uint8(-1 - v))
}

// WriteInt16 appends v at the full declared 2-byte width.
func (w *Writer) WriteInt16(v int16) {
	if v >= 0 {
		w.push(hdrUint16)
		w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(v))
		return
	}
	w.push(hdrNegative16)
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(-1-v))
}

// WriteInt32 appends v at the full declared 4-byte width.
func (w *Writer) WriteInt32(v int32) {
	if v >= 0 {
		w.push(hdrUint32)
		w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
		return
	}
	w.push(hdrNegative32)
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(-1-v))
}

// WriteInt64 appends v at the full declared 8-byte width.
func (w *Writer) WriteInt64(v int64) {
	if v >= 0 {
		w.push(hdrUint64)
		w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
		return
	}
	w.push(hdrNegative64)
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(-1-v))
}

// WriteUvarint appends v in the minimal-length encoding: inline in the
// header for v <= 23, otherwise the smallest of the 1/2/4/8-byte
// payload forms that holds v. This matches CBOR Core Deterministic
// Encoding for unsigned integers.
func (w *Writer) WriteUvarint(v uint64) {
	w.writeTypeLen(majorUnsigned, v)
}

// WriteVarint appends v in the minimal-length encoding, using major
// type 1 with magnitude -1-v for negative values.
func (w *Writer) WriteVarint(v int64) {
	if v >= 0 {
		w.writeTypeLen(majorUnsigned, uint64(v))
		return
	}
	w.writeTypeLen(majorNegative, uint64(-1-v))
}

// WriteFloat16 appends v as an IEEE 754 binary16 value (0xf9 + 2
// bytes). Precision beyond binary16 is truncated; out-of-range
// magnitudes saturate to infinity and sub-subnormal magnitudes to
// signed zero. See Float16Bits.
func (w *Writer) WriteFloat16(v float32) {
	w.push(hdrFloat16)
	w.buf = binary.BigEndian.AppendUint16(w.buf, Float16Bits(v))
}

// WriteFloat32 appends v as an IEEE 754 binary32 value (0xfa + 4 bytes).
func (w *Writer) WriteFloat32(v float32) {
	w.push(hdrFloat32)
	w.buf = binary.BigEndian.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteFloat64 appends v as an IEEE 754 binary64 value (0xfb + 8 bytes).
func (w *Writer) WriteFloat64(v float64) {
	w.push(hdrFloat64)
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteString appends v as a text string: a minimal-length header
// (major type 3) followed by v's UTF-8 bytes.
func (w *Writer) WriteString(v string) {
	w.writeTypeLen(majorText, uint64(len(v)))
	w.buf = append(w.buf, v...)
}

// WriteBytes appends v as a byte string: a minimal-length header
// (major type 2) followed by the raw bytes.
func (w *Writer) WriteBytes(v []byte) {
	w.writeTypeLen(majorBytes, uint64(len(v)))
	w.buf = append(w.buf, v...)
}

// WriteArrayHeader appends an array header (major type 4) declaring n
// elements. The caller is responsible for writing exactly n items
// afterwards.
func (w *Writer) WriteArrayHeader(n uint64) {
	w.writeTypeLen(majorArray, n)
}

// WriteTag appends a tag header (major type 6). The caller is
// responsible for writing exactly one wrapped item afterwards.
func (w *Writer) WriteTag(tag uint64) {
	w.writeTypeLen(majorTag, tag)
}

// WriteRawByte appends b verbatim, for encodings the Writer has no
// dedicated method for. The caller is responsible for wire-format
// well-formedness.
func (w *Writer) WriteRawByte(b byte) {
	w.push(b)
}

// WriteRaw appends p verbatim. The caller is responsible for
// wire-format well-formedness.
func (w *Writer) WriteRaw(p []byte) {
	if w.finished {
		panic("wire: Write after Finish")
	}
	w.buf = append(w.buf, p...)
}

// writeTypeLen appends a header for the given major type carrying the
// magnitude n per the minimal-length rule.
func (w *Writer) writeTypeLen(major byte, n uint64) {
	base := major << 5
	switch {
	case n <= 23:
		w.push(base | byte(n))
	case n <= math.MaxUint8:
		w.push(base | aiOneByte)
		w.push(byte(n))
	case n <= math.MaxUint16:
		w.push(base | aiTwoBytes)
		w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(n))
	case n <= math.MaxUint32:
		w.push(base | aiFourBytes)
		w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(n))
	default:
		w.push(base | aiEightBytes)
		w.buf = binary.BigEndian.AppendUint64(w.buf, n)
	}
}

func (w *Writer) push(b byte) {
	if w.finished {
		panic("wire: Write after Finish")
	}
	w.buf = append(w.buf, b)
}
