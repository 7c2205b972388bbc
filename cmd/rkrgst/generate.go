package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/cbrgm/rkrgst/pkg/corpus"
)

// GenerateCmd emits a random pattern/text corpus, optionally embedding the
// pattern verbatim (or noisily) inside the text, producing fixtures like
// scenario 6 of the tiling engine's end-to-end test matrix.
type GenerateCmd struct {
	PatternLength int `help:"Pattern length in bytes." name:"pattern-length" default:"32"`
	TextLength    int `help:"Text length in bytes." name:"text-length" default:"256"`
	Seed          int64 `help:"PRNG seed." default:"1"`

	EmbedPattern bool    `help:"Embed the pattern verbatim (or noisily, see --copy-prob) inside the generated text." name:"embed-pattern"`
	CopyProb     float64 `help:"Probability each embedded byte matches the pattern exactly; only used with --embed-pattern." name:"copy-prob" default:"1.0"`

	PatternFile string `help:"Write the pattern to this file instead of stdout." name:"pattern-file" type:"path"`
	TextFile    string `help:"Write the text to this file instead of stdout." name:"text-file" type:"path"`

	Encode string `help:"Transport-encode the output." enum:",base2048,ecoji" name:"encode"`
}

func (g *GenerateCmd) Run() error {
	rng := rand.New(rand.NewSource(g.Seed))

	pattern := corpus.NextString(rng, g.PatternLength)
	var text []byte
	if g.EmbedPattern {
		source := corpus.RandomStringCopy(rng, pattern, g.CopyProb)
		text = corpus.EmbedSubstring(rng, source, g.TextLength)
	} else {
		text = corpus.NextString(rng, g.TextLength)
	}

	patternOut, textOut, err := g.encode(pattern, text)
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}

	if err := g.write(g.PatternFile, patternOut); err != nil {
		return fmt.Errorf("write pattern: %w", err)
	}
	if err := g.write(g.TextFile, textOut); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

func (g *GenerateCmd) encode(pattern, text []byte) (string, string, error) {
	b := corpus.Bundle{Pattern: pattern, Text: text}
	switch g.Encode {
	case "base2048":
		p, t := corpus.EncodeBase2048(b)
		return p, t, nil
	case "ecoji":
		return corpus.EncodeEcoji(b)
	default:
		return string(pattern), string(text), nil
	}
}

func (g *GenerateCmd) write(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
