// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

import (
	"encoding/binary"
	"io"
)

// Format is the static dispatch tag for a wrapper header variant. Concrete
// zero-sized types (ReferenceFormat, MaxisFormat, SimEAFormat) implement it;
// Compress and Decompress are instantiated with one of them as a type
// parameter, giving compile-time header dispatch with no runtime format
// detection, as spec.md's design notes call for.
type Format interface {
	// readHeader consumes this format's header from r and returns the
	// declared uncompressed length and, if the format carries one, the
	// declared compressed length.
	readHeader(r io.Reader) (uncompressedLen int, compressedLen int, hasCompressedLen bool, err error)

	// writeHeader writes this format's header for the given lengths.
	// compressedLen is ignored by formats that don't carry one.
	writeHeader(w io.Writer, uncompressedLen int, compressedLen int) error

	// headerLen returns the exact number of bytes writeHeader emits for the
	// given uncompressedLen (header_length(uncompressed_len, compressed_len)
	// in spec.md §4.2 — compressed-length fields are fixed-width so only
	// uncompressedLen, via the large-file flag, affects the size).
	headerLen(uncompressedLen int) int
}

const (
	refMagic0 = 0x10
	refMagic1 = 0xFB

	// largeFlagBit marks the low nibble of the second magic byte when the
	// uncompressed-length field is widened from 3 to 4 bytes. This package's
	// choice of bit (see DESIGN.md) keeps magic_ok a simple two-value check:
	// byte1 is 0xFB (3-byte length) or 0xFF (4-byte length).
	largeFlagBit = 0x04

	// refMax24 is the largest uncompressed length a 3-byte field can hold.
	refMax24 = 1<<24 - 1
	// refMax32 is the largest uncompressed length a 4-byte field can hold.
	refMax32 = 1<<32 - 1
)

// readReferenceFields reads the 2-byte magic and the 3-or-4-byte big-endian
// uncompressed length shared by all three formats, returning the decoded
// length. large-file detection comes from the magic's flag bit.
func readReferenceFields(r io.Reader) (int, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, ioReadErr(err)
	}

	if magic[0] != refMagic0 {
		return 0, ErrBadMagic
	}

	large, err := referenceFlag(magic[1])
	if err != nil {
		return 0, err
	}

	if large {
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, ioReadErr(err)
		}
		return int(binary.BigEndian.Uint32(buf[:])), nil
	}

	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ioReadErr(err)
	}
	return int(buf[0])<<16 | int(buf[1])<<8 | int(buf[2]), nil
}

// referenceFlag validates magic byte 1 and reports whether the large-file
// (4-byte length) flag is set.
func referenceFlag(b byte) (bool, error) {
	switch b {
	case refMagic1:
		return false, nil
	case refMagic1 | largeFlagBit:
		return true, nil
	default:
		return false, ErrBadMagic
	}
}

// writeReferenceFields writes the 2-byte magic and uncompressed length in
// Reference-header layout, selecting the 3- or 4-byte length field based on
// magnitude.
func writeReferenceFields(w io.Writer, uncompressedLen int) error {
	large, err := checkUncompressedLen(uncompressedLen)
	if err != nil {
		return err
	}

	magic1 := byte(refMagic1)
	if large {
		magic1 |= largeFlagBit
	}

	if _, err := w.Write([]byte{refMagic0, magic1}); err != nil {
		return wrapIO(err)
	}

	if large {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(uncompressedLen))
		_, err := w.Write(buf[:])
		return wrapIO(err)
	}

	buf := [3]byte{byte(uncompressedLen >> 16), byte(uncompressedLen >> 8), byte(uncompressedLen)}
	_, err = w.Write(buf[:])
	return wrapIO(err)
}

// checkUncompressedLen validates uncompressedLen against BadLength and
// reports whether the large-file (4-byte) length field is required.
func checkUncompressedLen(uncompressedLen int) (large bool, err error) {
	switch {
	case uncompressedLen < 0 || uncompressedLen > refMax32:
		return false, ErrBadLength
	case uncompressedLen > refMax24:
		return true, nil
	default:
		return false, nil
	}
}

func referenceHeaderLen(uncompressedLen int) int {
	if uncompressedLen > refMax24 {
		return 2 + 4
	}
	return 2 + 3
}

func ioReadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return wrapIO(err)
}

// ReferenceFormat is the plain RefPack header: 2-byte magic 0x10 0xFB (or
// 0x10 0xFF for the large-file variant), then a big-endian 3-or-4-byte
// uncompressed length. No compressed-length field.
type ReferenceFormat struct{}

func (ReferenceFormat) readHeader(r io.Reader) (int, int, bool, error) {
	n, err := readReferenceFields(r)
	return n, 0, false, err
}

func (ReferenceFormat) writeHeader(w io.Writer, uncompressedLen int, _ int) error {
	return writeReferenceFields(w, uncompressedLen)
}

func (ReferenceFormat) headerLen(uncompressedLen int) int {
	return referenceHeaderLen(uncompressedLen)
}

// MaxisFormat prepends a 4-byte little-endian compressed length to a
// Reference header, as used by Maxis's SimCity 4-era package tooling.
type MaxisFormat struct{}

func (MaxisFormat) readHeader(r io.Reader) (int, int, bool, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, false, ioReadErr(err)
	}
	compressedLen := int(binary.LittleEndian.Uint32(buf[:]))

	uncompressedLen, err := readReferenceFields(r)
	if err != nil {
		return 0, 0, false, err
	}
	return uncompressedLen, compressedLen, true, nil
}

func (MaxisFormat) writeHeader(w io.Writer, uncompressedLen int, compressedLen int) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(compressedLen))
	if _, err := w.Write(buf[:]); err != nil {
		return wrapIO(err)
	}
	return writeReferenceFields(w, uncompressedLen)
}

func (MaxisFormat) headerLen(uncompressedLen int) int {
	return 4 + referenceHeaderLen(uncompressedLen)
}

// SimEAFormat prepends a 4-byte big-endian compressed length, then writes
// the magic and uncompressed-length fields — the magic lands in the middle
// of the header, not at the start, unlike Reference and Maxis.
type SimEAFormat struct{}

func (SimEAFormat) readHeader(r io.Reader) (int, int, bool, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, false, ioReadErr(err)
	}
	compressedLen := int(binary.BigEndian.Uint32(buf[:]))

	uncompressedLen, err := readReferenceFields(r)
	if err != nil {
		return 0, 0, false, err
	}
	return uncompressedLen, compressedLen, true, nil
}

func (SimEAFormat) writeHeader(w io.Writer, uncompressedLen int, compressedLen int) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(compressedLen))
	if _, err := w.Write(buf[:]); err != nil {
		return wrapIO(err)
	}
	return writeReferenceFields(w, uncompressedLen)
}

func (SimEAFormat) headerLen(uncompressedLen int) int {
	return 4 + referenceHeaderLen(uncompressedLen)
}
