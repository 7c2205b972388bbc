package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmdRunProcessesManifest(t *testing.T) {
	dir := t.TempDir()

	patternPath := filepath.Join(dir, "pattern.txt")
	textPath := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(patternPath, []byte("needle"), 0o644))
	require.NoError(t, os.WriteFile(textPath, []byte("a needle in a haystack"), 0o644))

	manifestPath := filepath.Join(dir, "manifest.yaml")
	manifest := `
concurrency: 2
jobs:
  - name: job-one
    pattern_file: ` + patternPath + `
    text_file: ` + textPath + `
    search_length: 2
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o644))

	cmd := BatchCmd{ConfigFile: manifestPath, Format: "jsonl"}

	origStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	runErr := cmd.Run()
	w.Close()
	os.Stdout = origStdout

	var buf [4096]byte
	n, _ := r.Read(buf[:])

	require.NoError(t, runErr)
	assert.Contains(t, string(buf[:n]), "job-one")
}

func TestBatchCmdRunMissingManifest(t *testing.T) {
	cmd := BatchCmd{ConfigFile: "/nonexistent/manifest.yaml"}
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read batch manifest")
}
