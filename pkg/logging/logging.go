// Package logging configures rkrgst's slog output from a pkg/config.LogConfig
// rather than from loose parameters. cmd/rkrgst builds that LogConfig from
// the RKRGST_LOG_LEVEL environment variable and the --debug flag; it does
// not load a config file for logging.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/cbrgm/rkrgst/pkg/config"
)

// component tags every log line this package configures, so rkrgst's output
// can be told apart from another tool's when both write to the same stream
// (e.g. a batch job shelling out to other tile-producing tools).
const component = "rkrgst"

// Configure sets up the global slog logger from cfg and returns it. output
// defaults to os.Stderr when nil.
func Configure(cfg config.LogConfig, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler).With("component", component)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a pkg/config.LogConfig.Level string to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForRun returns a logger scoped to one independent tiling invocation,
// tagged with runID so concurrent pkg/batch jobs writing to the same stream
// can be told apart in the output.
func ForRun(runID string) *slog.Logger {
	return slog.Default().With("run_id", runID)
}
