// neonctl drives the evaluation engine locally against an embedded
// SQLite store: define suites, execute runs, and gate on regressions
// without a server.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the built-in stub agents.
	_ "github.com/neonhq/neon/pkg/agent/stubs"
)

// Exit codes: 0 success, 1 regression or expected failure, 2 usage error.
var errExpectedFailure = errors.New("expected failure")

var (
	storePath    string
	outputFormat string
)

func main() {
	root := &cobra.Command{
		Use:           "neonctl",
		Short:         "Evaluate LLM agents against versioned test suites",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&storePath, "store", "neon.db", "Path to the embedded SQLite store")
	root.PersistentFlags().StringVar(&outputFormat, "output", "table", "Output format: table, json, markdown, quiet")

	root.AddCommand(newSuiteCmd(), newRunCmd(), newCompareCmd(), newStatsCmd())

	if err := root.Execute(); err != nil {
		if errors.Is(err, errExpectedFailure) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
