// Package corpus generates random byte-string fixtures for tests,
// benchmarks, and ad-hoc exploration of the tiling engine. These
// generators are a thin, external collaborator of the tiling engine,
// never a part of it.
//
// Every function here takes an explicit *rand.Rand rather than touching a
// package-level generator, so no caller ever shares non-reentrant PRNG
// state across concurrent generation calls.
package corpus

import "math/rand"

// minPrintableASCII and maxPrintableASCII bound the byte range used by
// NextASCIIChar: uniformly distributed over the printable ASCII range.
const (
	minPrintableASCII = 33
	maxPrintableASCII = 126
)

// NextASCIIChar returns one uniformly distributed printable ASCII byte.
func NextASCIIChar(rng *rand.Rand) byte {
	return byte(minPrintableASCII + rng.Intn(maxPrintableASCII-minPrintableASCII+1))
}

// NextString returns n random printable-ASCII bytes.
func NextString(rng *rand.Rand, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = NextASCIIChar(rng)
	}
	return s
}

// NextBitstring returns an n-byte string of '0'/'1' characters, each '1'
// with probability p, in the initial-marks format the tiling engine expects.
func NextBitstring(rng *rand.Rand, n int, p float64) string {
	b := make([]byte, n)
	for i := range b {
		if rng.Float64() < p {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// RandomStringCopy returns a copy of src where each byte is independently
// kept with probability copyProb and otherwise replaced by a fresh random
// ASCII byte. At copyProb=1 it reproduces src exactly (a guaranteed,
// maximal-length tile source); at copyProb=0 it is pure noise. Used to
// build a noisy, partially-copied variant of an existing string.
func RandomStringCopy(rng *rand.Rand, src []byte, copyProb float64) []byte {
	dest := make([]byte, len(src))
	for i, c := range src {
		if rng.Float64() < copyProb {
			dest[i] = c
		} else {
			dest[i] = NextASCIIChar(rng)
		}
	}
	return dest
}

// EmbedSubstring returns a text of length n that contains pattern verbatim
// starting at a random offset, with the remainder filled by random ASCII
// bytes. If pattern is longer than n, the random text is returned without
// it. It is a convenience wrapper used by the CLI's "generate" command.
func EmbedSubstring(rng *rand.Rand, pattern []byte, n int) []byte {
	text := NextString(rng, n)
	if len(pattern) > n {
		return text
	}
	offset := rng.Intn(n - len(pattern) + 1)
	copy(text[offset:], pattern)
	return text
}
