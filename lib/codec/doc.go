// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the reference CBOR implementation
// (fxamacker/cbor) configured with Core Deterministic Encoding, used
// to cross-check the hand-built encoder in lib/wire.
//
// The wire package's minimal-length rule is the same smallest-integer
// rule that Core Deterministic Encoding (RFC 8949 §4.2) mandates, so
// bytes produced by wire.Writer's varint and length headers must be
// byte-identical to this encoder's output for the same values. The
// differential tests in lib/wire and the cborwire CLI's diagnostic
// output both rely on that correspondence.
//
// Note the asymmetry: lib/wire's fixed-width discipline deliberately
// emits non-minimal encodings (a uint32 field is always 5 bytes on the
// wire). Those decode fine through this package, but re-encoding them
// shortens the bytes. Only the varint discipline round-trips
// byte-exactly through the reference encoder.
package codec
