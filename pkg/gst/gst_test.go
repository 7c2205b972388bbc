package gst

import "testing"

func TestMatchPrefix(t *testing.T) {
	tiles, err := Match([]byte("abcd"), []byte("abcdefghijklmnopqrst"), Options{InitSearchLength: 4})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(tiles) != 1 || tiles[0].MatchLength != 4 {
		t.Fatalf("unexpected tiles: %+v", tiles)
	}
}

func TestMatchSaturatesZeroSearchLength(t *testing.T) {
	tiles, err := Match([]byte("ab"), []byte("xaby"), Options{InitSearchLength: 0})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(tiles) != 1 || tiles[0].MatchLength != 2 {
		t.Fatalf("expected a saturated search length of 1 to still find \"ab\", got %+v", tiles)
	}
}

func TestMatchRespectsInitialMarks(t *testing.T) {
	tiles, err := Match(
		[]byte("abcd"),
		[]byte("abcdefghijklmnopqrst"),
		Options{InitSearchLength: 4, TextInitMarks: "1000000000000000000"},
	)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(tiles) != 0 {
		t.Fatalf("expected the marked prefix match to be suppressed, got %+v", tiles)
	}
}

func TestMatchRejectsNonASCIIMarks(t *testing.T) {
	_, err := Match(
		[]byte("abcd"),
		[]byte("abcdefghijklmnopqrst"),
		Options{InitSearchLength: 4, TextInitMarks: "100é"},
	)
	if err == nil {
		t.Fatal("expected an error for a non-ASCII marks string, got nil")
	}
}
