// Package gst is the public surface of the tiling engine, re-exposing
// internal/tiling's algorithm as a validated library call.
package gst

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/cbrgm/rkrgst/internal/tiling"
)

// Tile is a committed, non-overlapping matching substring pair between
// pattern and text. See internal/tiling.Tile for the field semantics.
type Tile = tiling.Tile

var validate = validator.New()

// Options configures a single Match call.
type Options struct {
	// InitSearchLength is the threshold L0: no returned tile is shorter
	// than this. Zero is accepted but saturated to 1 with a logged
	// warning, since a zero-length tile is never meaningful. It is
	// unsigned, so there is no negative case for a struct tag to reject.
	InitSearchLength uint64
	// PatternInitMarks and TextInitMarks mark caller-excluded positions
	// using the '1' (marked) / anything-else (unmarked) convention. Both
	// may be shorter than their input or empty, but spec.md §6 specifies
	// them as ASCII '0'/'1' strings, not arbitrary text, so that is the
	// one real constraint this binding enforces.
	PatternInitMarks string `validate:"omitempty,ascii"`
	TextInitMarks    string `validate:"omitempty,ascii"`
}

// Match runs Karp-Rabin Greedy String Tiling over pattern and text and
// returns every committed tile, in commit order. The underlying engine
// never rejects an input, so all validation - and the zero-threshold
// resolution above - happens here rather than in internal/tiling.
func Match(pattern, text []byte, opts Options) ([]Tile, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, err
	}

	searchLength := opts.InitSearchLength
	if searchLength == 0 {
		slog.Warn("gst: init_search_length is 0, saturating to 1", "pattern_len", len(pattern), "text_len", len(text))
		searchLength = 1
	}

	return tiling.MatchStrings(pattern, text, searchLength, opts.PatternInitMarks, opts.TextInitMarks), nil
}
