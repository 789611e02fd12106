// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Reader decodes one wire-format item per call from a borrowed byte
// slice. The Reader never writes to or reallocates the slice, and
// never reads past its end: a read that would run out of bytes fails
// with KindUnexpectedEnd before touching memory, and a header that
// does not match the requested shape fails with KindInvalidData.
//
// After a successful call the cursor sits immediately past the
// consumed item. After a failed call the cursor position is
// unspecified; the error is terminal for the decode pass.
//
// The caller's byte slice must outlive the Reader. Not safe for
// concurrent use, but multiple Readers over the same slice are.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadBool decodes a boolean simple value (0xf4 or 0xf5).
func (r *Reader) ReadBool() (bool, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case hdrTrue:
		return true, nil
	case hdrFalse:
		return false, nil
	}
	return false, invalidf(start, "expected bool header 0xf4 or 0xf5, got 0x%02x", b)
}

// ReadNull decodes the null simple value (0xf6).
func (r *Reader) ReadNull() error {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return err
	}
	if b != hdrNull {
		return invalidf(start, "expected null header 0xf6, got 0x%02x", b)
	}
	return nil
}

// ReadUint8 decodes a fixed-width uint8. The header must be exactly
// 0x18: a value that happens to fit inline but was encoded minimally
// belongs to the varint discipline and is rejected here.
func (r *Reader) ReadUint8() (uint8, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrUint8 {
		return 0, invalidf(start, "expected uint8 header 0x18, got 0x%02x", b)
	}
	return r.readByte()
}

// ReadUint16 decodes a fixed-width uint16 (header 0x19).
func (r *Reader) ReadUint16() (uint16, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrUint16 {
		return 0, invalidf(start, "expected uint16 header 0x19, got 0x%02x", b)
	}
	return r.readUint16()
}

// ReadUint32 decodes a fixed-width uint32 (header 0x1a).
func (r *Reader) ReadUint32() (uint32, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrUint32 {
		return 0, invalidf(start, "expected uint32 header 0x1a, got 0x%02x", b)
	}
	return r.readUint32()
}

// ReadUint64 decodes a fixed-width uint64 (header 0x1b).
func (r *Reader) ReadUint64() (uint64, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrUint64 {
		return 0, invalidf(start, "expected uint64 header 0x1b, got 0x%02x", b)
	}
	return r.readUint64()
}

// ReadInt8 decodes a fixed-width int8: header 0x18 for non-negative
// values, 0x38 for negative values (payload holds -1-v). A payload
// whose magnitude does not fit int8 is invalid.
func (r *Reader) ReadInt8() (int8, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case hdrUint8:
		v, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt8 {
			return 0, invalidf(start, "int8 value %d out of range", v)
		}
		return int8(v), nil
	case hdrNegative8:
		v, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt8 {
			return 0, invalidf(start, "int8 value %d out of range", -1-int64(v))
		}
		return -1 - int8(v), nil
	}
	return 0, invalidf(start, "expected int8 header 0x18 or 0x38, got 0x%02x", b)
}

// ReadInt16 decodes a fixed-width int16 (header 0x19 or 0x39).
func (r *Reader) ReadInt16() (int16, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case hdrUint16:
		v, err := r.readUint16()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt16 {
			return 0, invalidf(start, "int16 value %d out of range", v)
		}
		return int16(v), nil
	case hdrNegative16:
		v, err := r.readUint16()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt16 {
			return 0, invalidf(start, "int16 value %d out of range", -1-int64(v))
		}
		return -1 - int16(v), nil
	}
	return 0, invalidf(start, "expected int16 header 0x19 or 0x39, got 0x%02x", b)
}

// ReadInt32 decodes a fixed-width int32 (header 0x1a or 0x3a).
func (r *Reader) ReadInt32() (int32, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case hdrUint32:
		v, err := r.readUint32()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, invalidf(start, "int32 value %d out of range", v)
		}
		return int32(v), nil
	case hdrNegative32:
		v, err := r.readUint32()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, invalidf(start, "int32 value %d out of range", -1-int64(v))
		}
		return -1 - int32(v), nil
	}
	return 0, invalidf(start, "expected int32 header 0x1a or 0x3a, got 0x%02x", b)
}

// ReadInt64 decodes a fixed-width int64 (header 0x1b or 0x3b).
func (r *Reader) ReadInt64() (int64, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case hdrUint64:
		v, err := r.readUint64()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt64 {
			return 0, invalidf(start, "int64 value %d out of range", v)
		}
		return int64(v), nil
	case hdrNegative64:
		v, err := r.readUint64()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt64 {
			return 0, invalidf(start, "int64 magnitude %d out of range", v)
		}
		return -1 - int64(v), nil
	}
	return 0, invalidf(start, "expected int64 header 0x1b or 0x3b, got 0x%02x", b)
}

// ReadUvarint decodes a minimally-encoded unsigned integer (major type
// 0). Unlike the fixed-width readers it accepts any definite payload
// width, reconstructing the magnitude per the minimal-length rule.
func (r *Reader) ReadUvarint() (uint64, error) {
	return r.readTypeLen(majorUnsigned, "unsigned integer")
}

// ReadVarint decodes a minimally-encoded signed integer (major type 0
// or 1, any definite payload width).
func (r *Reader) ReadVarint() (int64, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	major := b >> 5
	if major != majorUnsigned && major != majorNegative {
		return 0, invalidf(start, "expected integer, got major type %d (header 0x%02x)", major, b)
	}
	v, err := r.readLen(start, b&0x1f)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, invalidf(start, "integer magnitude %d out of range for int64", v)
	}
	if major == majorNegative {
		return -1 - int64(v), nil
	}
	return int64(v), nil
}

// ReadFloat16 decodes an IEEE 754 binary16 value (header 0xf9) and
// widens it to float32.
func (r *Reader) ReadFloat16() (float32, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrFloat16 {
		return 0, invalidf(start, "expected float16 header 0xf9, got 0x%02x", b)
	}
	bits, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	return Float16FromBits(bits), nil
}

// ReadFloat32 decodes an IEEE 754 binary32 value (header 0xfa).
func (r *Reader) ReadFloat32() (float32, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrFloat32 {
		return 0, invalidf(start, "expected float32 header 0xfa, got 0x%02x", b)
	}
	bits, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadFloat64 decodes an IEEE 754 binary64 value (header 0xfb).
func (r *Reader) ReadFloat64() (float64, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != hdrFloat64 {
		return 0, invalidf(start, "expected float64 header 0xfb, got 0x%02x", b)
	}
	bits, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadString decodes a text string (major type 3). The bytes are
// validated as UTF-8; invalid sequences are KindInvalidData.
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	length, err := r.readTypeLen(majorText, "text string")
	if err != nil {
		return "", err
	}
	p, err := r.take(length)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", invalidf(start, "text string is not valid UTF-8")
	}
	return string(p), nil
}

// ReadBytes decodes a byte string (major type 2). The returned slice
// is a copy; it does not alias the Reader's input.
func (r *Reader) ReadBytes() ([]byte, error) {
	length, err := r.readTypeLen(majorBytes, "byte string")
	if err != nil {
		return nil, err
	}
	p, err := r.take(length)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(p), nil
}

// ReadArrayHeader decodes an array header (major type 4) and returns
// the declared element count. The elements themselves are read by
// subsequent calls.
func (r *Reader) ReadArrayHeader() (uint64, error) {
	return r.readTypeLen(majorArray, "array")
}

// ReadTag decodes a tag header (major type 6) and returns the tag
// number. The wrapped item is read by a subsequent call.
func (r *Reader) ReadTag() (uint64, error) {
	return r.readTypeLen(majorTag, "tag")
}

// ReadRawByte consumes and returns the next byte without interpreting
// it, for encodings the Reader has no dedicated method for.
func (r *Reader) ReadRawByte() (byte, error) {
	return r.readByte()
}

// PeekByte returns the next byte without advancing the cursor.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, truncated(r.pos)
	}
	return r.data[r.pos], nil
}

// Skip consumes exactly one well-formed item of any shape without
// producing a value, including shapes this package cannot construct
// (maps, indefinite-length collections). This is how generated
// decoders tolerate unknown fields appended by newer schema versions.
// Nested structures are consumed recursively; recursion depth is
// bounded by the input length, since every nesting level costs at
// least one byte.
func (r *Reader) Skip() error {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return err
	}
	major := b >> 5
	ai := b & 0x1f

	if major == majorSimple {
		switch {
		case ai <= 23:
			return nil
		case ai == aiOneByte:
			_, err := r.readByte()
			return err
		case ai == aiTwoBytes:
			_, err := r.take(2)
			return err
		case ai == aiFourBytes:
			_, err := r.take(4)
			return err
		case ai == aiEightBytes:
			_, err := r.take(8)
			return err
		}
		// ai 28-30 are reserved; ai 31 is a break byte, which is
		// only valid inside an indefinite-length collection.
		return invalidf(start, "unexpected header 0x%02x", b)
	}

	if ai == aiIndefinite {
		switch major {
		case majorBytes, majorText, majorArray, majorMap:
			return r.skipIndefinite()
		}
		return invalidf(start, "indefinite length is not valid for major type %d", major)
	}

	length, err := r.readLen(start, ai)
	if err != nil {
		return err
	}

	switch major {
	case majorUnsigned, majorNegative:
		// The value was entirely contained in header + payload,
		// which readLen already consumed.
		return nil
	case majorBytes, majorText:
		_, err := r.take(length)
		return err
	case majorArray:
		return r.skipItems(length)
	case majorMap:
		if length > math.MaxUint64/2 {
			// 2*length item reads could never be satisfied; the
			// input is necessarily truncated.
			return truncated(start)
		}
		return r.skipItems(2 * length)
	default: // majorTag
		return r.Skip()
	}
}

// skipItems skips n consecutive items.
func (r *Reader) skipItems(n uint64) error {
	for ; n > 0; n-- {
		if err := r.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// skipIndefinite skips items until a break byte (0xff), then consumes
// the break.
func (r *Reader) skipIndefinite() error {
	for {
		b, err := r.PeekByte()
		if err != nil {
			return err
		}
		if b == hdrBreak {
			r.pos++
			return nil
		}
		if err := r.Skip(); err != nil {
			return err
		}
	}
}

// readTypeLen reads a header byte, requires the given major type, and
// returns the definite length/value decoded per the minimal-length
// rule.
func (r *Reader) readTypeLen(major byte, shape string) (uint64, error) {
	start := r.pos
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b>>5 != major {
		return 0, invalidf(start, "expected %s (major type %d), got major type %d (header 0x%02x)", shape, major, b>>5, b)
	}
	return r.readLen(start, b&0x1f)
}

// readLen decodes the value carried by an already-consumed header
// byte's additional info: inline for 0-23, else a 1/2/4/8-byte
// big-endian payload. Indefinite length (31) and the reserved values
// 28-30 are invalid here.
func (r *Reader) readLen(start int, ai byte) (uint64, error) {
	switch ai {
	case aiOneByte:
		b, err := r.readByte()
		return uint64(b), err
	case aiTwoBytes:
		v, err := r.readUint16()
		return uint64(v), err
	case aiFourBytes:
		v, err := r.readUint32()
		return uint64(v), err
	case aiEightBytes:
		return r.readUint64()
	}
	if ai <= 23 {
		return uint64(ai), nil
	}
	return 0, invalidf(start, "unsupported additional info %d", ai)
}

// take returns the next n bytes of input and advances the cursor. The
// returned slice aliases the Reader's input; callers that retain it
// must copy. Fails with KindUnexpectedEnd before any out-of-range
// access.
func (r *Reader) take(n uint64) ([]byte, error) {
	if n > uint64(len(r.data)-r.pos) {
		return nil, truncated(r.pos)
	}
	start := r.pos
	r.pos += int(n)
	return r.data[start:r.pos], nil
}

func (r *Reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, truncated(r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) readUint16() (uint16, error) {
	p, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (r *Reader) readUint32() (uint32, error) {
	p, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

func (r *Reader) readUint64() (uint64, error) {
	p, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

func truncated(offset int) error {
	return &DecodeError{Kind: KindUnexpectedEnd, Offset: offset}
}

func invalidf(offset int, format string, args ...any) error {
	return &DecodeError{
		Kind:    KindInvalidData,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
