// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func readerFor(b []byte) bufByteReader {
	return bufByteReader{bufio.NewReader(bytes.NewReader(b))}
}

func allCommands() []command {
	var cmds []command

	for lit := 0; lit <= 3; lit++ {
		cmds = append(cmds,
			command{kind: cmdShort, literal: lit, length: shortMinLen, distance: 1},
			command{kind: cmdShort, literal: lit, length: shortMaxLen, distance: shortMaxDistance},
			command{kind: cmdMedium, literal: lit, length: mediumMinLen, distance: 1},
			command{kind: cmdMedium, literal: lit, length: mediumMaxLen, distance: mediumMaxDistance},
			command{kind: cmdLong, literal: lit, length: longMinLen, distance: 1},
			command{kind: cmdLong, literal: lit, length: longMaxLen, distance: longMaxDistance},
			command{kind: cmdStop, literal: lit},
		)
	}

	for n := literalMinCount; n <= literalMaxCount; n += 4 {
		cmds = append(cmds, command{kind: cmdLiteral, literal: n})
	}

	return cmds
}

func TestCommandRoundTrip(t *testing.T) {
	for _, c := range allCommands() {
		var buf bytes.Buffer
		if err := encodeCommand(&buf, c); err != nil {
			t.Fatalf("encodeCommand(%+v): %v", c, err)
		}

		got, err := decodeCommand(readerFor(buf.Bytes()))
		if err != nil {
			t.Fatalf("decodeCommand after encoding %+v: %v", c, err)
		}
		if got != c {
			t.Fatalf("round-trip mismatch: sent %+v, got %+v", c, got)
		}
	}
}

func TestEncodeCommandRejectsOutOfRange(t *testing.T) {
	bad := []command{
		{kind: cmdShort, literal: 0, length: shortMaxLen + 1, distance: 1},
		{kind: cmdShort, literal: 0, length: shortMinLen, distance: shortMaxDistance + 1},
		{kind: cmdMedium, literal: 0, length: mediumMinLen - 1, distance: 1},
		{kind: cmdLong, literal: 0, length: longMinLen, distance: longMaxDistance + 1},
		{kind: cmdLiteral, literal: 5},
		{kind: cmdLiteral, literal: literalMaxCount + 4},
		{kind: cmdStop, literal: 4},
	}

	for _, c := range bad {
		var buf bytes.Buffer
		if err := encodeCommand(&buf, c); !errors.Is(err, ErrMalformedStream) {
			t.Fatalf("encodeCommand(%+v): got %v, want ErrMalformedStream", c, err)
		}
	}
}

func TestDecodeCommandOpcodeDiscriminators(t *testing.T) {
	cases := []struct {
		name string
		kind commandKind
		b0   byte
	}{
		{"short", cmdShort, 0x00},
		{"short-high", cmdShort, 0x7F},
		{"medium", cmdMedium, 0x80},
		{"medium-high", cmdMedium, 0xBF},
		{"long", cmdLong, 0xC0},
		{"long-high", cmdLong, 0xDF},
		{"literal", cmdLiteral, 0xE0},
		{"literal-high", cmdLiteral, 0xFB},
		{"stop", cmdStop, 0xFC},
		{"stop-high", cmdStop, 0xFF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := append([]byte{tc.b0}, make([]byte, 4)...)
			cmd, err := decodeCommand(readerFor(payload))
			if err != nil {
				t.Fatalf("decodeCommand(0x%02X): %v", tc.b0, err)
			}
			if cmd.kind != tc.kind {
				t.Fatalf("decodeCommand(0x%02X): got kind %v, want %v", tc.b0, cmd.kind, tc.kind)
			}
		})
	}
}
