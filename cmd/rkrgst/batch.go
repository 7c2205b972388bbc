package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cbrgm/rkrgst/pkg/batch"
	"github.com/cbrgm/rkrgst/pkg/cli"
	"github.com/cbrgm/rkrgst/pkg/config"
	"github.com/cbrgm/rkrgst/pkg/gst"
)

// BatchCmd runs multiple independent match jobs concurrently, each job
// reading its pattern and text from files named in a YAML manifest.
type BatchCmd struct {
	ConfigFile string `arg:"" help:"YAML file listing batch jobs." type:"existingfile"`

	Concurrency int    `help:"Max concurrent jobs. Zero uses the config file/default." name:"concurrency"`
	Format      string `help:"Output format." enum:"table,json,jsonl,yaml" default:"table" short:"f"`
}

// batchManifest is the YAML shape BatchCmd reads. Concurrency here
// overrides pkg/config.Config.Batch when set.
type batchManifest struct {
	Concurrency int                `yaml:"concurrency"`
	Jobs        []batchManifestJob `yaml:"jobs"`
}

type batchManifestJob struct {
	Name             string `yaml:"name"`
	PatternFile      string `yaml:"pattern_file"`
	TextFile         string `yaml:"text_file"`
	SearchLength     uint64 `yaml:"search_length"`
	PatternInitMarks string `yaml:"pattern_init_marks"`
	TextInitMarks    string `yaml:"text_init_marks"`
}

func (b *BatchCmd) Run() error {
	data, err := os.ReadFile(b.ConfigFile)
	if err != nil {
		return fmt.Errorf("read batch manifest: %w", err)
	}

	var manifest batchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parse batch manifest: %w", err)
	}

	concurrency := b.Concurrency
	if concurrency == 0 {
		concurrency = manifest.Concurrency
	}
	if concurrency == 0 {
		concurrency = config.Default().Batch.Concurrency
	}

	maxInputBytes := config.Default().Match.MaxInputBytes

	jobs := make([]batch.Job, 0, len(manifest.Jobs))
	for _, mj := range manifest.Jobs {
		pattern, err := os.ReadFile(mj.PatternFile)
		if err != nil {
			return fmt.Errorf("job %s: read pattern file: %w", mj.Name, err)
		}
		text, err := os.ReadFile(mj.TextFile)
		if err != nil {
			return fmt.Errorf("job %s: read text file: %w", mj.Name, err)
		}
		if maxInputBytes > 0 && (int64(len(pattern)) > maxInputBytes || int64(len(text)) > maxInputBytes) {
			return fmt.Errorf("job %s: pattern/text exceeds match.max_input_bytes=%d", mj.Name, maxInputBytes)
		}
		jobs = append(jobs, batch.Job{
			Name:    mj.Name,
			Pattern: pattern,
			Text:    text,
			Options: gst.Options{
				InitSearchLength: mj.SearchLength,
				PatternInitMarks: mj.PatternInitMarks,
				TextInitMarks:    mj.TextInitMarks,
			},
		})
	}

	results, err := batch.Run(context.Background(), jobs, concurrency)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("=== %s ===\n", r.Name)
		if err := renderBatchResult(r, b.Format); err != nil {
			return fmt.Errorf("job %s: render: %w", r.Name, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}

func renderBatchResult(r batch.Result, format string) error {
	return cli.RenderTiles(r.Tiles, format, os.Stdout)
}
