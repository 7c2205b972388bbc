package tiling

// markPhase consumes candidates longest-first, verifying each byte-for-byte
// against the current mark state before committing it as a Tile. Marking a
// tile as it is committed means a later, overlapping candidate will fail
// verification and be silently skipped - non-overlap falls out of the
// verify-then-mark order, with no separate geometric check required.
func markPhase(pattern, text []byte, patternMarks, textMarks *markBuffer, candidates []candidate, tiles *[]Tile) uint64 {
	sortCandidatesByLengthDesc(candidates)

	var tiledLength uint64
	for _, c := range candidates {
		if !verify(pattern, text, patternMarks, textMarks, c) {
			continue
		}

		patternMarks.markRange(c.patternPos, c.length)
		textMarks.markRange(c.textPos, c.length)

		*tiles = append(*tiles, Tile{
			PatternIndex: c.patternPos,
			TextIndex:    c.textPos,
			MatchLength:  c.length,
		})
		tiledLength += c.length
	}
	return tiledLength
}

// verify checks a candidate byte-for-byte: every offset must be unmarked in
// both inputs and the bytes must be equal. This is what makes hash
// collisions from the scan phase harmless - a false hit simply fails here.
func verify(pattern, text []byte, patternMarks, textMarks *markBuffer, c candidate) bool {
	for i := uint64(0); i < c.length; i++ {
		p, t := c.patternPos+i, c.textPos+i
		if patternMarks.isMarked(p) || textMarks.isMarked(t) || pattern[p] != text[t] {
			return false
		}
	}
	return true
}
