// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/cborwire/lib/wire"
)

// validate walks data as a sequence of items using the Reader's Skip
// and reports the result to w. A malformed item surfaces the decode
// error, which carries the byte offset where the walk failed.
func validate(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return errors.New("empty input: expected CBOR data")
	}

	r := wire.NewReader(data)
	count := 0
	for r.Remaining() > 0 {
		if err := r.Skip(); err != nil {
			return fmt.Errorf("item %d: %w", count, err)
		}
		count++
	}

	fmt.Fprintf(w, "valid: %d items, %d bytes\n", count, len(data))
	return nil
}
