// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire_test

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"

	"github.com/bureau-foundation/cborwire/lib/codec"
	"github.com/bureau-foundation/cborwire/lib/wire"
)

// primitivesRecord is one field of every primitive shape, encoded as a
// fixed-order array. The encode/decode methods below are written the
// way the code generator emits them: the decoder skips any trailing
// fields it does not know about, so records produced by a newer schema
// with appended fields still decode.
type primitivesRecord struct {
	B    bool    `cbor:"0,keyasint"`
	U8   uint8   `cbor:"1,keyasint"`
	U16  uint16  `cbor:"2,keyasint"`
	U32  uint32  `cbor:"3,keyasint"`
	U64  uint64  `cbor:"4,keyasint"`
	I8   int8    `cbor:"5,keyasint"`
	I16  int16   `cbor:"6,keyasint"`
	I32  int32   `cbor:"7,keyasint"`
	I64  int64   `cbor:"8,keyasint"`
	F32  float32 `cbor:"9,keyasint"`
	F64  float64 `cbor:"10,keyasint"`
	UVar uint64  `cbor:"11,keyasint"`
	IVar int64   `cbor:"12,keyasint"`
	Str  string  `cbor:"13,keyasint"`
	Bin  []byte  `cbor:"14,keyasint"`
}

const primitivesFieldCount = 15

func (p *primitivesRecord) encodeWire(w *wire.Writer) {
	w.WriteArrayHeader(primitivesFieldCount)
	w.WriteBool(p.B)
	w.WriteUint8(p.U8)
	w.WriteUint16(p.U16)
	w.WriteUint32(p.U32)
	w.WriteUint64(p.U64)
	w.WriteInt8(p.I8)
	w.WriteInt16(p.I16)
	w.WriteInt32(p.I32)
	w.WriteInt64(p.I64)
	w.WriteFloat32(p.F32)
	w.WriteFloat64(p.F64)
	w.WriteUvarint(p.UVar)
	w.WriteVarint(p.IVar)
	w.WriteString(p.Str)
	w.WriteBytes(p.Bin)
}

func (p *primitivesRecord) decodeWire(r *wire.Reader) error {
	count, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	if count < primitivesFieldCount {
		return fmt.Errorf("record has %d fields, need %d", count, primitivesFieldCount)
	}
	if p.B, err = r.ReadBool(); err != nil {
		return err
	}
	if p.U8, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.U16, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.U32, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.U64, err = r.ReadUint64(); err != nil {
		return err
	}
	if p.I8, err = r.ReadInt8(); err != nil {
		return err
	}
	if p.I16, err = r.ReadInt16(); err != nil {
		return err
	}
	if p.I32, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.I64, err = r.ReadInt64(); err != nil {
		return err
	}
	if p.F32, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.F64, err = r.ReadFloat64(); err != nil {
		return err
	}
	if p.UVar, err = r.ReadUvarint(); err != nil {
		return err
	}
	if p.IVar, err = r.ReadVarint(); err != nil {
		return err
	}
	if p.Str, err = r.ReadString(); err != nil {
		return err
	}
	if p.Bin, err = r.ReadBytes(); err != nil {
		return err
	}
	for extra := count - primitivesFieldCount; extra > 0; extra-- {
		if err := r.Skip(); err != nil {
			return err
		}
	}
	return nil
}

func samplePrimitives() primitivesRecord {
	return primitivesRecord{
		B:    true,
		U8:   255,
		U16:  1000,
		U32:  100000,
		U64:  10000000000,
		I8:   -128,
		I16:  -1000,
		I32:  -100000,
		I64:  -10000000000,
		F32:  3.14,
		F64:  2.718281828,
		UVar: 42,
		IVar: -42,
		Str:  "hello world",
		Bin:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
}

func TestPrimitivesRecordRoundtrip(t *testing.T) {
	original := samplePrimitives()

	w := wire.NewWriter()
	original.encodeWire(w)
	data := w.Finish()

	var decoded primitivesRecord
	r := wire.NewReader(data)
	if err := decoded.decodeWire(r); err != nil {
		t.Fatalf("decodeWire: %v", err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("%d bytes left over", r.Remaining())
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", decoded, original)
	}
}

func TestPrimitivesRecordSkipsAppendedFields(t *testing.T) {
	// A newer schema version appends two fields. The old decoder
	// must skip them and land cleanly at the end of the record.
	original := samplePrimitives()

	w := wire.NewWriter()
	w.WriteArrayHeader(primitivesFieldCount + 2)
	w.WriteBool(original.B)
	w.WriteUint8(original.U8)
	w.WriteUint16(original.U16)
	w.WriteUint32(original.U32)
	w.WriteUint64(original.U64)
	w.WriteInt8(original.I8)
	w.WriteInt16(original.I16)
	w.WriteInt32(original.I32)
	w.WriteInt64(original.I64)
	w.WriteFloat32(original.F32)
	w.WriteFloat64(original.F64)
	w.WriteUvarint(original.UVar)
	w.WriteVarint(original.IVar)
	w.WriteString(original.Str)
	w.WriteBytes(original.Bin)
	w.WriteTag(37) // appended field: tagged uuid-style bytes
	w.WriteBytes(bytes.Repeat([]byte{0xab}, 16))
	w.WriteRawByte(0xa1) // appended field: a map the old decoder can't construct
	w.WriteString("note")
	w.WriteString("added in v2")
	data := w.Finish()

	var decoded primitivesRecord
	r := wire.NewReader(data)
	if err := decoded.decodeWire(r); err != nil {
		t.Fatalf("decodeWire: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("%d bytes left after skipping appended fields", r.Remaining())
	}
	if decoded.Str != original.Str {
		t.Errorf("Str = %q, want %q", decoded.Str, original.Str)
	}
}

func BenchmarkWireEncodePrimitives(b *testing.B) {
	record := samplePrimitives()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w := wire.NewWriter()
		record.encodeWire(w)
		w.Finish()
	}
}

func BenchmarkWireDecodePrimitives(b *testing.B) {
	record := samplePrimitives()
	w := wire.NewWriter()
	record.encodeWire(w)
	data := w.Finish()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var decoded primitivesRecord
		if err := decoded.decodeWire(wire.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReferenceEncodePrimitives(b *testing.B) {
	record := samplePrimitives()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Marshal(&record); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReferenceDecodePrimitives(b *testing.B) {
	record := samplePrimitives()
	data, err := codec.Marshal(&record)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var decoded primitivesRecord
		if err := codec.Unmarshal(data, &decoded); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSkipNestedStructure(b *testing.B) {
	w := wire.NewWriter()
	w.WriteArrayHeader(100)
	for i := 0; i < 100; i++ {
		w.WriteArrayHeader(2)
		w.WriteUvarint(uint64(i))
		w.WriteString("element payload")
	}
	data := w.Finish()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := wire.NewReader(data).Skip(); err != nil {
			b.Fatal(err)
		}
	}
}
