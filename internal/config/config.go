/*
PURPOSE:
  Defines where the summary reads GuideLLM results from.
  The layout is fixed: one results directory holding benchmarks.json
  and the sibling benchmarks.html report.

REQUIREMENTS:
  User-specified:
  - Read a single, known results file. No flags, env vars, or config file.

  Implementation-discovered:
  - Paths are printed in the report, so they must be cleaned
    (no leading "./").

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine

ERROR HANDLING:
  - None. Values are constants; nothing is loaded.

IMPLEMENTATION RULES:
  - Keep DefaultConfig() the single source of the layout.
  - Join paths with path/filepath.

USAGE:
  cfg := config.DefaultConfig()
  path := cfg.ResultsPath()

SELF-HEALING INSTRUCTIONS:
  - If GuideLLM changes its output file names, update DefaultConfig().

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update when pointing the summary at a different benchmark run.
*/

package config

import (
	"path/filepath"
)

// Config describes the results layout of one GuideLLM run.
type Config struct {
	// ResultsDir is the directory GuideLLM wrote the run into.
	ResultsDir string
	// ResultsFile is the JSON results file inside ResultsDir.
	ResultsFile string
	// HTMLReportFile is the HTML report inside ResultsDir. It is only referenced, never read.
	HTMLReportFile string
}

// DefaultConfig returns the fixed layout of the phi3 run
// (50 prompt tokens, 100 output tokens).
func DefaultConfig() *Config {
	return &Config{
		ResultsDir:     "./guidellm/results_phi3/pt50_ot100",
		ResultsFile:    "benchmarks.json",
		HTMLReportFile: "benchmarks.html",
	}
}

// ResultsPath returns the path of the JSON results file.
func (c *Config) ResultsPath() string {
	return filepath.Join(c.ResultsDir, c.ResultsFile)
}

// HTMLReportPath returns the path of the HTML report.
func (c *Config) HTMLReportPath() string {
	return filepath.Join(c.ResultsDir, c.HTMLReportFile)
}
