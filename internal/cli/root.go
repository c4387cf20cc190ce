/*
PURPOSE:
  Defines the root Cobra command for the GuideLLM summary CLI.
  The root command is the whole program: it prints the report.

REQUIREMENTS:
  User-specified:
  - No command-line arguments or flags.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Cobra's completion command is disabled; --help is kept.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/guidellm-summary/main.go
  - Calls: runSummary (run.go)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is not printed on runtime errors (SilenceUsage).

IMPLEMENTATION RULES:
  - Keep Run logic in run.go.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If stray positional args are rejected unexpectedly, check Args below.

RELATED FILES:
  - cmd/guidellm-summary/main.go
  - internal/cli/run.go

MAINTENANCE:
  - Update the Long text when the results layout changes.
*/

package cli

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds a fresh command tree. Tests build their own.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guidellm-summary",
		Short: "Print a console summary of a GuideLLM benchmark run",
		Long: `Reads guidellm/results_phi3/pt50_ot100/benchmarks.json and prints
request, latency, TTFT, ITL, throughput and duration figures for the
first benchmark in the file.

Success and error rates are computed over successful + errored +
cancelled requests. processed_requests is shown but is not part of
that total.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              runSummary,
	}
}

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}
