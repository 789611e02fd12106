// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// cborwire inspects data in the cborwire format from the command line.
//
// Two subcommands:
//
//	cborwire validate [-x] [file]
//	cborwire diag     [-x] [file]
//
// validate walks the input item by item with the wire package's Skip
// and reports either the item count or the byte offset of the first
// malformed item. Because Skip accepts any well-formed CBOR item, this
// checks structural well-formedness regardless of which encoding
// discipline produced the data.
//
// diag prints RFC 8949 Extended Diagnostic Notation, one line per
// item, via the reference codec. Unlike JSON output, diagnostic
// notation preserves CBOR type information: integer vs float, byte
// strings vs text strings, and tagged values.
//
// Input comes from the optional trailing file path, otherwise stdin.
// With -x, input is hex-encoded CBOR; whitespace in the hex is
// ignored.
package main
