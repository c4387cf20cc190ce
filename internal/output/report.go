/*
PURPOSE:
  Renders a benchmark Summary as the fixed console report.

REQUIREMENTS:
  User-specified:
  - Fixed section order: banner, metadata, args, request statistics,
    latency, TTFT, ITL, throughput, duration, HTML hint.
  - Two decimals everywhere, four for requests/sec.
  - No benchmark: stop after the args block.
  - Zero total requests: no rate lines.

  Implementation-discovered:
  - Section titles print even when the section body is empty.
  - The whole report is built in memory and written once, so the
    destination never sees a partial report.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Run
  - Consumes: internal/model.Summary

ERROR HANDLING:
  - Returns the destination writer's error.

IMPLEMENTATION RULES:
  - Rendering must be a pure function of its inputs.

USAGE:
  w := output.NewReportWriter(os.Stdout)
  err := w.Write(report)

SELF-HEALING INSTRUCTIONS:
  - If the layout changes, update the golden text in report_test.go.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update when a new metric is added to model.Benchmark.
*/

package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/model"
)

const ruleWidth = 60

var (
	banner = strings.Repeat("=", ruleWidth)
	rule   = strings.Repeat("-", ruleWidth)
)

// Report is everything the console report prints.
type Report struct {
	// Source is the results file that was read.
	Source string
	// HTMLReport is the path printed as a hint. It is not checked.
	HTMLReport string

	Summary model.Summary
}

// ReportWriter writes reports as text.
type ReportWriter struct {
	w io.Writer
}

// NewReportWriter creates a ReportWriter on w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: w}
}

// Write renders r and writes it in a single call.
func (rw *ReportWriter) Write(r Report) error {
	_, err := rw.w.Write(Render(r))
	return err
}

// Render returns the text of r.
func Render(r Report) []byte {
	var b bytes.Buffer
	p := func(format string, a ...any) {
		fmt.Fprintf(&b, format+"\n", a...)
	}

	p("Reading: %s", r.Source)

	p("\n%s", banner)
	p("          BENCHMARK RESULTS SUMMARY")
	p("%s", banner)

	meta := r.Summary.Metadata
	p("\nGuideLLM Version: %s", meta.GuideLLMVersion)
	p("Python Version: %s", meta.PythonVersion)
	p("Platform: %s", meta.Platform)

	args := r.Summary.Args
	p("\nTarget: %s", args.Target)
	p("Model: %s", args.Model)
	p("Profile: %s", args.Profile)
	p("Rate: %s req/sec", args.Rate)
	p("Max Duration: %s seconds", args.MaxSeconds)

	if bench := r.Summary.Benchmark; bench != nil {
		renderBenchmark(p, bench)
	}

	p("\n%s", banner)
	p("View detailed HTML report:")
	p("  open %s", r.HTMLReport)
	p("%s", banner)

	return b.Bytes()
}

func renderBenchmark(p func(string, ...any), bench *model.Benchmark) {
	section := func(title string) {
		p("\n%s", rule)
		p("%s", title)
		p("%s", rule)
	}

	section("REQUEST STATISTICS")
	req := bench.Requests
	p("  Successful:  %d", req.Successful)
	p("  Errored:     %d", req.Errored)
	p("  Incomplete:  %d", req.Incomplete)
	p("  Processed:   %d", req.Processed)
	if success, failure, ok := req.Rates(); ok {
		p("\n  Success Rate: %.1f%%", success)
		p("  Error Rate:   %.1f%%", failure)
	}

	section("LATENCY (Successful Requests)")
	if l := bench.Latency; l != nil {
		p("  Mean:   %.2f sec", l.Mean)
		p("  Median: %.2f sec", l.Median)
		p("  Std Dev: %.2f sec", l.StdDev)
		p("  Min:    %.2f sec", l.Min)
		p("  Max:    %.2f sec", l.Max)
		if pc := l.Percentiles; pc != nil {
			p("  P50:    %.2f sec", pc.P50)
			p("  P95:    %.2f sec", pc.P95)
			p("  P99:    %.2f sec", pc.P99)
		}
	}

	section("TIME TO FIRST TOKEN (TTFT)")
	if t := bench.TTFT; t != nil {
		p("  Mean:   %.2f ms", t.Mean)
		p("  Median: %.2f ms", t.Median)
		p("  Min:    %.2f ms", t.Min)
		p("  Max:    %.2f ms", t.Max)
	}

	section("INTER-TOKEN LATENCY (ITL)")
	if t := bench.ITL; t != nil {
		p("  Mean:   %.2f ms", t.Mean)
		p("  Median: %.2f ms", t.Median)
	}

	section("THROUGHPUT")
	if t := bench.OutputTokens; t != nil {
		p("  Output Tokens/sec (Mean):   %.2f", t.Mean)
		p("  Output Tokens/sec (Median): %.2f", t.Median)
	}
	if t := bench.RequestRate; t != nil {
		p("  Requests/sec (Mean):        %.4f", t.Mean)
	}

	section("DURATION")
	p("  Total Duration: %.2f sec", bench.Duration)
	p("  Start Time: %s", bench.StartTime)
	p("  End Time: %s", bench.EndTime)
}
