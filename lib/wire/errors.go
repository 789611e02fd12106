// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure. There are exactly two kinds:
// the input ended before a required read, or the bytes that were
// present did not match the expected shape.
type ErrorKind int

const (
	// KindUnexpectedEnd means a read would have consumed bytes past
	// the end of the input (truncated data).
	KindUnexpectedEnd ErrorKind = iota

	// KindInvalidData means bytes were present but violated the
	// expected header, major type, or encoding. Invalid UTF-8 in a
	// text string is also reported as this kind.
	KindInvalidData
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedEnd:
		return "unexpected end of input"
	case KindInvalidData:
		return "invalid data"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DecodeError describes why a Reader operation failed. After any
// DecodeError the Reader's position is unspecified relative to the
// failed item; callers must treat the error as terminal for the decode
// pass rather than attempt to resynchronize.
type DecodeError struct {
	// Kind is the failure classification.
	Kind ErrorKind

	// Offset is the byte offset at which the failure was detected,
	// counted from the start of the Reader's input. For a header
	// mismatch this is the offset of the offending header byte; for
	// truncation it is the offset where bytes ran out.
	Offset int

	// Message describes the mismatch for KindInvalidData errors
	// (expected vs actual header, out-of-range value, bad UTF-8).
	// Empty for KindUnexpectedEnd.
	Message string
}

func (err *DecodeError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("cbor: %s at byte %d", err.Kind, err.Offset)
	}
	return fmt.Sprintf("cbor: %s at byte %d: %s", err.Kind, err.Offset, err.Message)
}

// IsUnexpectedEnd reports whether err is a DecodeError caused by
// truncated input.
func IsUnexpectedEnd(err error) bool {
	var decodeError *DecodeError
	return errors.As(err, &decodeError) && decodeError.Kind == KindUnexpectedEnd
}

// IsInvalidData reports whether err is a DecodeError caused by
// malformed (but present) bytes.
func IsInvalidData(err error) bool {
	var decodeError *DecodeError
	return errors.As(err, &decodeError) && decodeError.Kind == KindInvalidData
}
