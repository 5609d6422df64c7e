// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by decode, encode, and header handling.
var (
	// ErrIO marks an error returned by the caller's reader or writer. Use
	// errors.Is(err, refpack.ErrIO) to distinguish it from format errors.
	ErrIO = errors.New("refpack: io error")

	// ErrBadMagic is returned when a header's magic bytes do not match the
	// requested format.
	ErrBadMagic = errors.New("refpack: bad magic")

	// ErrBadDistance is returned when a decoded back-reference's distance is
	// zero or exceeds the current length of the decoded output.
	ErrBadDistance = errors.New("refpack: back-reference distance out of range")

	// ErrUnexpectedEOF is returned when the input ends mid-opcode or
	// mid-literal before a stop code is consumed.
	ErrUnexpectedEOF = errors.New("refpack: unexpected end of input")

	// ErrMalformedStream is returned when the encoder is asked to write a
	// command or match whose length, distance or literal count no opcode
	// can express. The decoder does not return it: the current grammar has
	// no unused bit patterns.
	ErrMalformedStream = errors.New("refpack: malformed opcode stream")

	// ErrLengthMismatch is returned when the decoded payload length disagrees
	// with the header's declared uncompressed length.
	ErrLengthMismatch = errors.New("refpack: decoded length does not match header")

	// ErrBadLength is returned when the caller's uncompressed length is
	// negative or exceeds 2^32-1. Lengths above 2^24-1 set the large-file
	// flag and use the 4-byte length field instead of failing.
	ErrBadLength = errors.New("refpack: uncompressed length out of range")
)

// wrapIO wraps an underlying reader/writer error so callers can match it with
// errors.Is(err, ErrIO) while still reaching the original error.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
