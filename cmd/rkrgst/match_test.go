package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCmdValidateRequiresPatternAndText(t *testing.T) {
	tests := []struct {
		name    string
		cmd     MatchCmd
		wantErr string
	}{
		{
			name:    "missing both",
			cmd:     MatchCmd{},
			wantErr: "pattern argument",
		},
		{
			name:    "missing text",
			cmd:     MatchCmd{Pattern: "abc"},
			wantErr: "text argument",
		},
		{
			name: "pattern via file is fine",
			cmd:  MatchCmd{PatternFile: "p.txt", Text: "abc"},
		},
		{
			name:    "marks inline and file conflict",
			cmd:     MatchCmd{Pattern: "a", Text: "b", PatternMarks: "01", PatternMarksFile: "marks.txt"},
			wantErr: "cannot use both --pattern-marks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMatchCmdRunWritesTable(t *testing.T) {
	var cli struct {
		Match MatchCmd `cmd:""`
	}
	parser, err := kong.New(&cli, kong.Name("rkrgst"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"match", "hello", "hello world", "--search-length", "2"})
	require.NoError(t, err)
	require.NoError(t, cli.Match.Validate())

	var buf bytes.Buffer
	origStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	runErr := cli.Match.Run()
	w.Close()
	os.Stdout = origStdout
	buf.ReadFrom(r)

	require.NoError(t, runErr)
	assert.Contains(t, buf.String(), "PATTERN")
}

func TestMatchCmdRunRejectsOversizedInput(t *testing.T) {
	cmd := MatchCmd{
		Pattern:       "hello",
		Text:          "hello world",
		SearchLength:  2,
		MaxInputBytes: 4,
	}
	require.NoError(t, cmd.Validate())

	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-input-bytes")
}

func TestMatchCmdRunReadsPatternFile(t *testing.T) {
	dir := t.TempDir()
	patternPath := filepath.Join(dir, "pattern.txt")
	require.NoError(t, os.WriteFile(patternPath, []byte("needle"), 0o644))

	cmd := MatchCmd{
		PatternFile:  patternPath,
		Text:         "a needle in a haystack",
		SearchLength: 2,
		Format:       "jsonl",
	}
	require.NoError(t, cmd.Validate())

	origStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	runErr := cmd.Run()
	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)

	require.NoError(t, runErr)
	assert.NotEmpty(t, buf.String())
}
