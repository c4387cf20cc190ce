/*
PURPOSE:
  Entry point for guidellm-summary.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Non-zero exit when the results file cannot be read or parsed.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o guidellm-summary ./cmd/guidellm-summary
  ./guidellm-summary

RELATED FILES:
  - internal/cli/root.go
*/

package main

import (
	"fmt"
	"os"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
