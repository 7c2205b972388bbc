package tiling

import "math/rand"

// newTestRand returns a seeded PRNG so tiling tests are reproducible.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomCorpus returns n random printable-ASCII bytes (33-126).
func randomCorpus(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(33 + rng.Intn(94))
	}
	return b
}

// randomSimilarCorpus builds an n-byte corpus that embeds pattern at a
// random offset and fills the rest with random bytes, giving tests a text
// with a guaranteed, but not exclusive, match against pattern.
func randomSimilarCorpus(rng *rand.Rand, pattern []byte, n int, _ float64) []byte {
	text := randomCorpus(rng, n)
	if len(pattern) > n {
		return text
	}
	offset := rng.Intn(n - len(pattern) + 1)
	copy(text[offset:], pattern)
	return text
}
