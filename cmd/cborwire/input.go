// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"
)

// readInput returns the input bytes from path, or from stdin when path
// is empty. When hexMode is true the raw bytes are treated as
// hex-encoded CBOR: whitespace is stripped and the hex is decoded to
// binary, so output from tools like xxd or hexdump pastes cleanly.
func readInput(path string, hexMode bool) ([]byte, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if hexMode {
		return decodeHexInput(data)
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary. Whitespace between hex digit pairs is allowed (e.g.,
// "f9 3e 00" or "f93e00").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}
