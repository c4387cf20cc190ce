package cli

import (
	"github.com/spf13/cobra"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/config"
	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/engine"
)

func runSummary(cmd *cobra.Command, args []string) error {
	return engine.Run(config.DefaultConfig(), cmd.OutOrStdout())
}
