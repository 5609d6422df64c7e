// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package refpack

// matchCandidate is one length/distance pair the optimal parser may choose
// to take at a given position.
type matchCandidate struct {
	length   int
	distance int
}

// collectCandidates runs a hash-chain search identical in spirit to
// parseDeep's, but keeps every encodable candidate at each position (plus
// cheaper truncated variants of long matches) instead of committing to the
// single longest one, so the dynamic program below has real alternatives
// to weigh.
func collectCandidates(src []byte, chainDepth int) [][]matchCandidate {
	n := len(src)
	out := make([][]matchCandidate, n)

	table := make([]int32, hashSize)
	for i := range table {
		table[i] = -1
	}
	prev := make([]int32, n)

	for pos := 0; pos+minMatchLen <= n; pos++ {
		h := hash3(src[pos:])
		node := table[h]

		var cands []matchCandidate
		for depth := 0; node >= 0 && depth < chainDepth; depth++ {
			distance := pos - int(node)
			if distance > longMaxDistance {
				break
			}

			length := matchLength(src, int(node), pos, n)
			if length >= minMatchLen {
				cands = append(cands, truncatedCandidates(length, distance)...)
			}

			node = prev[node]
		}

		prev[pos] = table[h]
		table[h] = int32(pos)
		out[pos] = cands
	}

	return out
}

// truncatedCandidates expands one raw (length, distance) match into the
// set of lengths worth trying: the full length, plus the cap of the
// cheaper opcode classes it overshoots, since stopping a match early to
// fit a 2-byte Short opcode is sometimes cheaper overall than one longer
// Medium or Long opcode.
func truncatedCandidates(length, distance int) []matchCandidate {
	var out []matchCandidate
	add := func(l int) {
		if l >= minMatchLen && encodableMatch(l, distance) {
			out = append(out, matchCandidate{length: l, distance: distance})
		}
	}

	add(length)
	if length > shortMaxLen {
		add(shortMaxLen)
	}
	if length > mediumMaxLen {
		add(mediumMaxLen)
	}
	return out
}

// parseOptimal is the ModeOptimal match finder: a dynamic program, filled
// from the end of the input backward, that, at every position, picks whichever of "one literal byte" or "take
// one of the candidate matches" minimizes the cost of encoding the rest of
// the input, then backtraces the winning path into a token list.
//
// The cost model is a deliberate approximation rather than a fully
// state-tracked exact cost: literal bytes cost 1 each with a +1 bump every
// 112th byte for the Literal opcode's framing byte, and a match costs its
// opcode class's fixed byte count (2/3/4, or 4 per Long opcode for a split
// match) without crediting the up-to-3 literal bytes an opcode can absorb
// for free as its embedded prefix. That means the model is occasionally
// pessimistic right at a match boundary, but it keeps the program a single
// backward pass with no dependency on how many literal bytes precede a
// given position — the real embedding is still performed correctly by the
// emitter once the token list is fixed.
func parseOptimal(src []byte, chainDepth int) ([]token, []byte) {
	n := len(src)
	if n < minMatchLen+1 {
		return nil, src
	}
	if chainDepth <= 0 {
		chainDepth = defaultChainDepth
	}

	candidates := collectCandidates(src, chainDepth)

	cost := make([]int, n+1)
	choiceLen := make([]int, n+1)
	choiceDist := make([]int, n+1)

	for i := n - 1; i >= 0; i-- {
		best := cost[i+1] + literalMarginalCost(i)
		bestLen, bestDist := 0, 0

		for _, m := range candidates[i] {
			end := i + m.length
			if end > n {
				continue
			}
			c := cost[end] + matchCost(m.length, m.distance)
			if c < best {
				best = c
				bestLen, bestDist = m.length, m.distance
			}
		}

		cost[i] = best
		choiceLen[i] = bestLen
		choiceDist[i] = bestDist
	}

	var tokens []token
	pos := 0
	literalStart := 0
	for pos < n {
		if choiceLen[pos] > 0 {
			tokens = append(tokens, token{literalLen: pos - literalStart, length: choiceLen[pos], distance: choiceDist[pos]})
			pos += choiceLen[pos]
			literalStart = pos
			continue
		}
		pos++
	}

	return tokens, src[literalStart:]
}

func literalMarginalCost(pos int) int {
	if (pos+1)%literalMaxCount == 0 {
		return 2
	}
	return 1
}

func matchCost(length, distance int) int {
	if length <= longMaxLen {
		kind, ok := opcodeClassFor(length, distance)
		if !ok {
			return 1 << 30
		}
		switch kind {
		case cmdShort:
			return 2
		case cmdMedium:
			return 3
		default:
			return 4
		}
	}

	if distance > longMaxDistance {
		return 1 << 30
	}
	chunks := (length + longMaxLen - 1) / longMaxLen
	return chunks * 4
}
