package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbrgm/rkrgst/pkg/gst"
)

func TestLoadMarksTrimsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marks.txt")
	if err := os.WriteFile(path, []byte("0011\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	marks, err := LoadMarks(path)
	if err != nil {
		t.Fatalf("LoadMarks: %v", err)
	}
	if marks != "0011" {
		t.Errorf("marks = %q, want %q", marks, "0011")
	}
}

func TestLoadMarksEmptyPathReturnsEmptyString(t *testing.T) {
	marks, err := LoadMarks("")
	if err != nil {
		t.Fatalf("LoadMarks: %v", err)
	}
	if marks != "" {
		t.Errorf("marks = %q, want empty", marks)
	}
}

func TestLoadMarksMissingFile(t *testing.T) {
	if _, err := LoadMarks("/nonexistent/marks.txt"); err == nil {
		t.Fatal("expected error for missing marks file")
	}
}

func sampleTiles() []gst.Tile {
	return []gst.Tile{
		{PatternIndex: 0, TextIndex: 5, MatchLength: 3},
		{PatternIndex: 3, TextIndex: 10, MatchLength: 7},
	}
}

func TestRenderTilesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "table", &buf); err != nil {
		t.Fatalf("RenderTiles: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "PATTERN") || !strings.Contains(out, "TEXT") || !strings.Contains(out, "LENGTH") {
		t.Errorf("table output missing header: %q", out)
	}
	if !strings.Contains(out, "7") {
		t.Errorf("table output missing match length: %q", out)
	}
}

func TestRenderTilesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "json", &buf); err != nil {
		t.Fatalf("RenderTiles: %v", err)
	}
	if !strings.Contains(buf.String(), `"match_length": 7`) {
		t.Errorf("json output missing expected field: %s", buf.String())
	}
}

func TestRenderTilesJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "jsonl", &buf); err != nil {
		t.Fatalf("RenderTiles: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestRenderTilesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "yaml", &buf); err != nil {
		t.Fatalf("RenderTiles: %v", err)
	}
	if !strings.Contains(buf.String(), "match_length: 7") {
		t.Errorf("yaml output missing expected field: %s", buf.String())
	}
}

func TestRenderTilesUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "xml", &buf); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderTilesDefaultsToTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTiles(sampleTiles(), "", &buf); err != nil {
		t.Fatalf("RenderTiles: %v", err)
	}
	if !strings.Contains(buf.String(), "PATTERN") {
		t.Errorf("default format should be table, got: %q", buf.String())
	}
}
