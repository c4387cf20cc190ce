/*
PURPOSE:
  High-level runner that produces the summary report.
  Load -> extract -> render.

REQUIREMENTS:
  User-specified:
  - One linear pass. No retries, no partial output.

  Implementation-discovered:
  - The file is fully read and released before rendering begins.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/model, internal/output

ERROR HANDLING:
  - Returns Load errors untouched; nothing is written to w in that case.

IMPLEMENTATION RULES:
  - Only benchmarks[0] is reported; extra records are logged, not rendered.

USAGE:
  err := engine.Run(config.DefaultConfig(), os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/loader.go
  - internal/output/report.go

MAINTENANCE:
  - Update if more than one benchmark should ever be reported.
*/

package engine

import (
	"io"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/config"
	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/model"
	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/output"
)

// Run reads the results file named by cfg and writes the report to w.
func Run(cfg *config.Config, w io.Writer) error {
	path := cfg.ResultsPath()
	output.Logger.Debug("Reading results", "path", path)

	doc, err := Load(path)
	if err != nil {
		return err
	}

	summary := model.NewSummary(doc)
	if summary.BenchmarkCount > 1 {
		output.Logger.Warn("Results contain several benchmarks, reporting the first only",
			"path", path,
			"count", summary.BenchmarkCount,
		)
	}

	return output.NewReportWriter(w).Write(output.Report{
		Source:     path,
		HTMLReport: cfg.HTMLReportPath(),
		Summary:    summary,
	})
}
