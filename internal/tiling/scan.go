package tiling

// scan runs one scan pass at window length L. It indexes every unmarked
// L-window of text by rolling hash, then probes that index with every
// unmarked L-window of pattern, optimistically extending each hash hit.
//
// It returns the candidates recorded during the pass and the length of the
// longest match seen. If a probe extends past 2*L (the "very long match"
// fast path), scan returns immediately with an empty candidate list and
// maxmatch set to that extension's length, signalling the caller to
// restart with a larger search length rather than accumulate many short
// sub-matches of one large match.
func scan(pattern, text []byte, patternMarks, textMarks *markBuffer, L uint64) (candidates []candidate, maxmatch uint64) {
	patternLen := uint64(len(pattern))
	textLen := uint64(len(text))

	t0 := textMarks.firstUnmarked()
	if t0+L > textLen {
		return nil, 0
	}

	index := make(map[uint32][]uint64)
	textHasher := newCyclicHash(L)
	for t := t0; t+L <= textLen; t++ {
		if t == t0 {
			textHasher.reset()
			for i := uint64(0); i < L; i++ {
				textHasher.eat(text[t+i])
			}
		} else {
			textHasher.update(text[t-1], text[t+L-1])
		}

		if !textMarks.allUnmarked(t, L) {
			continue
		}

		index[textHasher.value] = append(index[textHasher.value], t)
	}

	p0 := patternMarks.firstUnmarked()
	if p0+L > patternLen {
		return nil, 0
	}

	patternHasher := newCyclicHash(L)
	for p := p0; p+L <= patternLen; p++ {
		if p == p0 {
			patternHasher.reset()
			for i := uint64(0); i < L; i++ {
				patternHasher.eat(pattern[p+i])
			}
		} else {
			patternHasher.update(pattern[p-1], pattern[p+L-1])
		}

		if !patternMarks.allUnmarked(p, L) {
			continue
		}

		positions, ok := index[patternHasher.value]
		if !ok {
			continue
		}

		for _, t := range positions {
			m := extend(pattern, text, patternMarks, textMarks, p, t, L)

			if m > 2*L {
				return nil, m
			}

			candidates = append(candidates, candidate{patternPos: p, textPos: t, length: m})
			if m > maxmatch {
				maxmatch = m
			}
		}
	}

	return candidates, maxmatch
}

// extend optimistically grows a hash hit of length L starting at p (in
// pattern) and t (in text) past its window, for as long as both cursors
// stay unmarked and equal. The L-byte window itself is never verified here
// - only the mark phase confirms it byte-for-byte.
func extend(pattern, text []byte, patternMarks, textMarks *markBuffer, p, t, L uint64) uint64 {
	patternLen := uint64(len(pattern))
	textLen := uint64(len(text))

	m := L
	pj, tj := p+L, t+L
	for pj < patternLen && tj < textLen &&
		!patternMarks.isMarked(pj) && !textMarks.isMarked(tj) &&
		pattern[pj] == text[tj] {
		m++
		pj++
		tj++
	}
	return m
}
