package main

import (
	"fmt"
	"os"

	"github.com/cbrgm/rkrgst/pkg/cli"
	"github.com/cbrgm/rkrgst/pkg/gst"
)

// MatchCmd tiles a pattern against a text and prints the resulting matches.
type MatchCmd struct {
	Pattern string `arg:"" optional:"" help:"Pattern string (ignored if --pattern-file is set)."`
	Text    string `arg:"" optional:"" help:"Text string (ignored if --text-file is set)."`

	PatternFile string `help:"Read pattern bytes from this file instead of the positional argument." name:"pattern-file" type:"existingfile"`
	TextFile    string `help:"Read text bytes from this file instead of the positional argument." name:"text-file" type:"existingfile"`

	SearchLength uint64 `help:"Initial search length threshold (L0)." name:"search-length" default:"1"`

	PatternMarks     string `help:"Inline '0'/'1' initial-marks string for the pattern." name:"pattern-marks"`
	TextMarks        string `help:"Inline '0'/'1' initial-marks string for the text." name:"text-marks"`
	PatternMarksFile string `help:"Read the pattern's initial-marks string from this file." name:"pattern-marks-file" type:"existingfile"`
	TextMarksFile    string `help:"Read the text's initial-marks string from this file." name:"text-marks-file" type:"existingfile"`

	Format string `help:"Output format." enum:"table,json,jsonl,yaml" default:"table" short:"f"`

	MaxInputBytes int64 `help:"Reject pattern/text larger than this many bytes. Zero disables the check." name:"max-input-bytes" default:"1073741824"`
}

// Validate rejects flag combinations kong's own struct tags cannot express.
func (m *MatchCmd) Validate() error {
	if m.Pattern == "" && m.PatternFile == "" {
		return fmt.Errorf("pattern argument or --pattern-file is required")
	}
	if m.Text == "" && m.TextFile == "" {
		return fmt.Errorf("text argument or --text-file is required")
	}
	if m.PatternMarks != "" && m.PatternMarksFile != "" {
		return fmt.Errorf("cannot use both --pattern-marks and --pattern-marks-file")
	}
	if m.TextMarks != "" && m.TextMarksFile != "" {
		return fmt.Errorf("cannot use both --text-marks and --text-marks-file")
	}
	return nil
}

func (m *MatchCmd) Run() error {
	pattern, err := readBytesArgOrFile(m.Pattern, m.PatternFile, os.ReadFile)
	if err != nil {
		return fmt.Errorf("read pattern: %w", err)
	}
	text, err := readBytesArgOrFile(m.Text, m.TextFile, os.ReadFile)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}

	if m.MaxInputBytes > 0 {
		if int64(len(pattern)) > m.MaxInputBytes {
			return fmt.Errorf("pattern is %d bytes, exceeds --max-input-bytes=%d", len(pattern), m.MaxInputBytes)
		}
		if int64(len(text)) > m.MaxInputBytes {
			return fmt.Errorf("text is %d bytes, exceeds --max-input-bytes=%d", len(text), m.MaxInputBytes)
		}
	}

	patternMarks := m.PatternMarks
	if m.PatternMarksFile != "" {
		patternMarks, err = cli.LoadMarks(m.PatternMarksFile)
		if err != nil {
			return fmt.Errorf("load pattern marks: %w", err)
		}
	}
	textMarks := m.TextMarks
	if m.TextMarksFile != "" {
		textMarks, err = cli.LoadMarks(m.TextMarksFile)
		if err != nil {
			return fmt.Errorf("load text marks: %w", err)
		}
	}

	tiles, err := gst.Match(pattern, text, gst.Options{
		InitSearchLength: m.SearchLength,
		PatternInitMarks: patternMarks,
		TextInitMarks:    textMarks,
	})
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return cli.RenderTiles(tiles, m.Format, os.Stdout)
}
