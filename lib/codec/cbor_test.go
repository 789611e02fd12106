// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleRecord is a representative struct for exercising the reference
// codec configuration.
type sampleRecord struct {
	Name  string `cbor:"name"`
	Count int    `cbor:"count"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{Name: "probe-7", Count: 42}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := sampleRecord{Name: "probe-7", Count: 7}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}

	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestMarshalSmallestIntegerEncoding(t *testing.T) {
	// Core Deterministic Encoding mandates the smallest integer form.
	// This property is what the wire package's differential tests
	// build on, so pin it here.
	data, err := Marshal(uint64(5))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 1 || data[0] != 0x05 {
		t.Errorf("Marshal(5) = %x, want 05", data)
	}

	data, err = Marshal(uint64(256))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, []byte{0x19, 0x01, 0x00}) {
		t.Errorf("Marshal(256) = %x, want 190100", data)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleRecord
	if err := Unmarshal([]byte{0xff, 0xfe, 0xfd}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"action": "status"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}

	if !strings.Contains(notation, `"action"`) {
		t.Errorf("notation %q does not contain \"action\"", notation)
	}
	if !strings.Contains(notation, `"status"`) {
		t.Errorf("notation %q does not contain \"status\"", notation)
	}
}

func TestDiagnoseFirst(t *testing.T) {
	item1, err := Marshal("hello")
	if err != nil {
		t.Fatalf("Marshal item 1: %v", err)
	}
	item2, err := Marshal(int64(42))
	if err != nil {
		t.Fatalf("Marshal item 2: %v", err)
	}

	var sequence []byte
	sequence = append(sequence, item1...)
	sequence = append(sequence, item2...)

	notation, remaining, err := DiagnoseFirst(sequence)
	if err != nil {
		t.Fatalf("DiagnoseFirst: %v", err)
	}

	if !strings.Contains(notation, `"hello"`) {
		t.Errorf("first item notation %q does not contain \"hello\"", notation)
	}
	if len(remaining) == 0 {
		t.Fatal("expected remaining bytes after first item")
	}

	notation2, remaining2, err := DiagnoseFirst(remaining)
	if err != nil {
		t.Fatalf("DiagnoseFirst second: %v", err)
	}
	if !strings.Contains(notation2, "42") {
		t.Errorf("second item notation %q does not contain \"42\"", notation2)
	}
	if len(remaining2) != 0 {
		t.Errorf("expected no remaining bytes, got %d", len(remaining2))
	}
}
