package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cbrgm/rkrgst/pkg/config"
	"github.com/cbrgm/rkrgst/pkg/logging"
)

func main() {
	logging.Configure(config.LogConfig{Level: os.Getenv("RKRGST_LOG_LEVEL"), Format: "text"}, os.Stderr)

	ctx := kong.Parse(&CLI,
		kong.Name("rkrgst"),
		kong.Description("rkrgst - Karp-Rabin Greedy String Tiling"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Exit(func(code int) {
			// Kong uses 0 for success, non-zero for parse/validation errors.
			// Parse errors exit with 2 (usage error).
			if code != 0 {
				os.Exit(2)
			}
			os.Exit(0)
		}),
	)

	if CLI.Debug {
		logging.Configure(config.LogConfig{Level: "debug", Format: "text"}, os.Stderr)
	}

	// Runtime/match errors exit with 1.
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
