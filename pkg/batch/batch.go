// Package batch runs independent tiling jobs concurrently. Two calls on
// disjoint pattern/text pairs share no state - each job owns its own mark
// buffers - so the only shared resource across goroutines is the result
// slice, guarded by a mutex around its append.
package batch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cbrgm/rkrgst/pkg/gst"
	"github.com/cbrgm/rkrgst/pkg/logging"
)

// Job is one independent Match invocation.
type Job struct {
	// Name identifies the job in its Result, e.g. a source file pair.
	Name    string
	Pattern []byte
	Text    []byte
	Options gst.Options
}

// Result pairs a Job's outcome with its originating Name, preserving
// input order isn't guaranteed across concurrent completion - callers that
// need stable ordering should sort by Name.
type Result struct {
	Name  string
	Tiles []gst.Tile
	Err   error
}

// Run executes jobs concurrently, bounded by concurrency simultaneous
// goroutines. A concurrency of 0 or less means unbounded, matching
// errgroup.SetLimit's own convention for a negative limit.
func Run(ctx context.Context, jobs []Job, concurrency int) ([]Result, error) {
	results := make([]Result, 0, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			log := logging.ForRun(job.Name)
			tiles, err := gst.Match(job.Pattern, job.Text, job.Options)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error("job failed", "error", err)
				results = append(results, Result{Name: job.Name, Err: fmt.Errorf("job %s: %w", job.Name, err)})
			} else {
				log.Info("job completed", "tiles", len(tiles))
				results = append(results, Result{Name: job.Name, Tiles: tiles})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
