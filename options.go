// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

// Mode selects one of the three encoder strategies.
type Mode int

const (
	// ModeFast is the single-hash greedy parser. Cheapest to run, and
	// usually the worst ratio of the three.
	ModeFast Mode = iota
	// ModeDeep is the hash-chain parser with a configurable probe depth.
	ModeDeep
	// ModeOptimal is the dynamic program over opcode costs. Slowest to run.
	// Its cost model is approximate (see parseOptimal), so its output is not
	// always the smallest of the three: on some inputs ModeFast or ModeDeep
	// produce fewer bytes.
	ModeOptimal
)

// DeepOptions configures ModeDeep (and, since it reuses the same hash-chain
// search, ModeOptimal).
type DeepOptions struct {
	// ChainDepth caps how many hash-chain candidates are probed per
	// position. Zero selects defaultChainDepth. Higher values trade CPU
	// time for a better chance at finding the longest match.
	ChainDepth int
}

// Stats optionally collects counters about one Compress call, mirroring
// the bookkeeping the teacher's compressor keeps for its own diagnostics.
type Stats struct {
	LiteralBytes int
	MatchBytes   int
	MatchCount   int
}

// CompressOptions configures Compress. A nil *CompressOptions is equivalent
// to DefaultCompressOptions().
type CompressOptions struct {
	// Mode selects the match-finding strategy. Zero value is ModeFast.
	Mode Mode

	// Deep configures ModeDeep/ModeOptimal's hash-chain search. Ignored by
	// ModeFast.
	Deep DeepOptions

	// Stats, if non-nil, is filled in with counters from the compression
	// run.
	Stats *Stats
}

// DefaultCompressOptions returns options selecting ModeFast.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Mode: ModeFast}
}
