// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/cborwire/lib/codec"
)

// diag writes RFC 8949 diagnostic notation for data to w, one line per
// item. For a single item this produces one line; for an item sequence
// it produces one line per item.
func diag(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return errors.New("empty input: expected CBOR data")
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}

	return nil
}
