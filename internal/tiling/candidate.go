package tiling

import "sort"

// candidate is a provisional match recorded during one scan pass: the
// pattern/text windows at patternPos/textPos hashed identically and were
// optimistically extended to length bytes without byte-wise verification.
type candidate struct {
	patternPos uint64
	textPos    uint64
	length     uint64
}

// sortCandidatesByLengthDesc orders candidates longest-first, breaking ties
// by first-seen order (scan order). The mark phase depends on this
// ordering for its greedy-maximal guarantee: the source this algorithm is
// based on asserts descending-length processing in a comment but never
// actually sorts, which is a latent bug we do not reproduce.
func sortCandidatesByLengthDesc(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].length > candidates[j].length
	})
}
