// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

/*
Package refpack implements the RefPack (QFS) compression format used by
Electronic Arts titles from the mid-1990s through the late 2000s (The Sims,
SimCity 4-era Maxis packages, several Origin titles). It is a lossless LZ77
derivative: three back-reference opcodes plus one literal opcode, terminated
by a stop code.

# Decompress

The uncompressed length is read from the wire header, so no caller-provided
length is required:

	err := refpack.Decompress[refpack.ReferenceFormat](r, w)

From/to byte slices:

	out, err := refpack.DecompressBytes[refpack.ReferenceFormat](compressed)

# Compress

Options may be nil (defaults to Fast mode):

	err := refpack.Compress[refpack.ReferenceFormat](len(data), bytes.NewReader(data), w, nil)
	out, err := refpack.CompressBytes[refpack.MaxisFormat](data, &refpack.CompressOptions{Mode: refpack.ModeOptimal})

Three header variants are supported as static format tags: ReferenceFormat,
MaxisFormat, SimEAFormat. Three encoder strategies are available via
CompressOptions.Mode: ModeFast (single-hash greedy), ModeDeep (hash-chain,
configurable depth), and ModeOptimal (dynamic program over an approximate
cost model; usually the smallest output, though on some inputs ModeFast or
ModeDeep produce a smaller one).
*/
package refpack
