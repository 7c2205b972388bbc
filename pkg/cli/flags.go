// Package cli holds the rendering and input helpers shared by the
// rkrgst subcommands, kept separate from cmd/rkrgst so they stay
// testable without going through kong.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cbrgm/rkrgst/pkg/gst"
)

// LoadMarks reads an initial-marks file: a string of '0'/'1' characters,
// one per input byte, in the same convention pkg/corpus.NextBitstring
// produces. A trailing newline is trimmed.
func LoadMarks(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read marks file %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// tileRow is the JSON/YAML wire shape for a tile, field-named the way a
// CLI consumer would expect rather than matching gst.Tile's Go names.
type tileRow struct {
	PatternIndex uint64 `json:"pattern_index" yaml:"pattern_index"`
	TextIndex    uint64 `json:"text_index" yaml:"text_index"`
	MatchLength  uint64 `json:"match_length" yaml:"match_length"`
}

// RenderTiles writes tiles to w in one of four formats: a human-readable
// table, JSON, newline-delimited JSON, or YAML.
func RenderTiles(tiles []gst.Tile, format string, w io.Writer) error {
	switch format {
	case "", "table":
		return renderTable(tiles, w)
	case "json":
		return renderJSON(tiles, w)
	case "jsonl":
		return renderJSONL(tiles, w)
	case "yaml":
		return renderYAML(tiles, w)
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json, jsonl, yaml)", format)
	}
}

func renderTable(tiles []gst.Tile, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tTEXT\tLENGTH")
	for _, t := range tiles {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", t.PatternIndex, t.TextIndex, t.MatchLength)
	}
	return tw.Flush()
}

func renderJSON(tiles []gst.Tile, w io.Writer) error {
	rows := toRows(tiles)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderJSONL(tiles []gst.Tile, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, t := range tiles {
		if err := enc.Encode(toRow(t)); err != nil {
			return err
		}
	}
	return nil
}

func renderYAML(tiles []gst.Tile, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(toRows(tiles))
}

func toRow(t gst.Tile) tileRow {
	return tileRow{PatternIndex: t.PatternIndex, TextIndex: t.TextIndex, MatchLength: t.MatchLength}
}

func toRows(tiles []gst.Tile) []tileRow {
	rows := make([]tileRow, len(tiles))
	for i, t := range tiles {
		rows[i] = toRow(t)
	}
	return rows
}
