// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	lens := []int{0, 1, 12, 1024, refMax24, refMax24 + 1, 1 << 20}

	formats := []struct {
		name string
		f    Format
	}{
		{"reference", ReferenceFormat{}},
		{"maxis", MaxisFormat{}},
		{"simea", SimEAFormat{}},
	}

	for _, tf := range formats {
		for _, n := range lens {
			t.Run(tf.name, func(t *testing.T) {
				var buf bytes.Buffer
				const compressedLen = 4242
				if err := tf.f.writeHeader(&buf, n, compressedLen); err != nil {
					t.Fatalf("writeHeader(%d): %v", n, err)
				}

				if got, want := buf.Len(), tf.f.headerLen(n); got != want {
					t.Fatalf("headerLen mismatch: writeHeader emitted %d bytes, headerLen said %d", got, want)
				}

				gotLen, gotCompressed, hasCompressed, err := tf.f.readHeader(&buf)
				if err != nil {
					t.Fatalf("readHeader: %v", err)
				}
				if gotLen != n {
					t.Fatalf("readHeader length mismatch: got %d, want %d", gotLen, n)
				}
				if hasCompressed && gotCompressed != compressedLen {
					t.Fatalf("readHeader compressed length mismatch: got %d, want %d", gotCompressed, compressedLen)
				}
			})
		}
	}
}

func TestReferenceHeaderMagicBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := (ReferenceFormat{}).writeHeader(&buf, 10, 0); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes()[:2]; !bytes.Equal(got, []byte{0x10, 0xFB}) {
		t.Fatalf("unexpected magic for small length: % X", got)
	}

	buf.Reset()
	if err := (ReferenceFormat{}).writeHeader(&buf, refMax24+1, 0); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes()[:2]; !bytes.Equal(got, []byte{0x10, 0xFF}) {
		t.Fatalf("unexpected magic for large-file length: % X", got)
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	_, _, _, err := (ReferenceFormat{}).readHeader(bytes.NewReader([]byte{0x11, 0xFB, 0, 0, 0}))
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestWriteHeaderBadLength(t *testing.T) {
	err := (ReferenceFormat{}).writeHeader(&bytes.Buffer{}, -1, 0)
	if !errors.Is(err, ErrBadLength) {
		t.Fatalf("got %v, want ErrBadLength", err)
	}

	err = (ReferenceFormat{}).writeHeader(&bytes.Buffer{}, refMax32+1, 0)
	if !errors.Is(err, ErrBadLength) {
		t.Fatalf("got %v, want ErrBadLength", err)
	}
}

func TestSimEAMagicInMiddle(t *testing.T) {
	var buf bytes.Buffer
	if err := (SimEAFormat{}).writeHeader(&buf, 10, 99); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if b[0] == 0x10 {
		t.Fatalf("SimEA header starts with Reference magic, want compressed-length prefix first: % X", b)
	}
	if b[4] != 0x10 {
		t.Fatalf("SimEA magic not found at byte offset 4: % X", b)
	}
}
