// Package tiling implements Karp-Rabin Greedy String Tiling: a maximal,
// non-overlapping substring tiling between a pattern and a text byte
// string. It has no I/O and cannot fail beyond allocation; every input,
// including empty strings and a zero threshold, produces a well-defined
// (possibly empty) tile list.
package tiling

// maxPlateau bounds the number of consecutive no-progress iterations the
// outer loop tolerates before giving up. Some (pattern, text) pairs drive
// this algorithm into a loop that makes no further progress without this
// guard; it is a pragmatic safety valve, not a proof of termination.
const maxPlateau = 10

// MatchStrings runs Karp-Rabin Greedy String Tiling over pattern and text
// and returns every committed tile, in commit order. initSearchLength is
// the minimum tile length L0: no returned tile is shorter than it.
// patternInitMarks and textInitMarks mark caller-excluded positions using
// the '1' (marked) / anything-else (unmarked) convention; a marks string
// shorter than its input leaves the tail unmarked.
func MatchStrings(pattern, text []byte, initSearchLength uint64, patternInitMarks, textInitMarks string) []Tile {
	if uint64(len(pattern)) < initSearchLength || uint64(len(text)) < initSearchLength {
		return nil
	}

	patternMarks := newMarkBuffer(uint64(len(pattern)), patternInitMarks)
	textMarks := newMarkBuffer(uint64(len(text)), textInitMarks)

	var tiles []Tile
	L := initSearchLength
	var tiledLength, prevTiledLength uint64 = 0, 1
	plateau := 0

	for L > 0 && L >= initSearchLength {
		candidates, maxmatch := scan(pattern, text, patternMarks, textMarks, L)

		if maxmatch > 2*L {
			// A very long match was found; restart at a larger search
			// length instead of accumulating its many short sub-matches.
			L = maxmatch
			continue
		}

		prevTiledLength = tiledLength
		tiledLength += markPhase(pattern, text, patternMarks, textMarks, candidates, &tiles)

		if tiledLength == prevTiledLength {
			plateau++
			if plateau > maxPlateau {
				break
			}
		} else {
			plateau = 0
		}

		switch {
		case L > 2*initSearchLength:
			L /= 2
		case L > initSearchLength:
			L = initSearchLength
		default:
			// L == initSearchLength here; decrementing forces the loop to
			// exit on the next L >= initSearchLength check.
			L--
		}
	}

	return tiles
}
