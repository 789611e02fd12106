// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the hand-built CBOR subset that generated
// encoders and decoders are built on: an append-only Writer, a
// cursor-based Reader, and IEEE 754 half-precision conversion.
//
// The wire format is a constrained subset of RFC 8949 CBOR. Two
// encoding disciplines coexist, selected by the caller per field:
//
//   - Fixed-width: WriteUint32 always emits the 4-byte form (header
//     0x1a) regardless of the value's magnitude, so a field's wire
//     width is determined by its declared type. The matching reader
//     requires exactly that header and rejects anything narrower.
//   - Minimal varint: WriteUvarint emits the smallest header/payload
//     combination that represents the value, matching CBOR Core
//     Deterministic Encoding for integers. The matching reader accepts
//     any definite-length integer width.
//
// The two disciplines are intentionally incompatible on the wire: a
// fixed-width reader fed a minimally-encoded value fails with
// InvalidData. Discipline selection belongs to the generated code, not
// to this package.
//
// A Writer is used for exactly one encode pass:
//
//	w := wire.NewWriter()
//	w.WriteArrayHeader(2)
//	w.WriteUint32(sequence)
//	w.WriteString(name)
//	data := w.Finish()
//
// A Reader decodes from a borrowed byte slice and never reads past its
// end; malformed input surfaces as a *DecodeError rather than a panic.
// Skip consumes one well-formed item of any shape (including maps and
// indefinite-length collections, which this package can skip but not
// construct), which is how generated decoders tolerate fields appended
// by newer schema versions:
//
//	r := wire.NewReader(data)
//	count, err := r.ReadArrayHeader()
//	...
//	for i := knownFields; i < count; i++ {
//		if err := r.Skip(); err != nil {
//			return err
//		}
//	}
//
// Neither type is safe for concurrent use. Multiple Readers over the
// same byte slice are fine; the slice is never written.
package wire
