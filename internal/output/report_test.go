package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/model"
)

const (
	testSource = "guidellm/results_phi3/pt50_ot100/benchmarks.json"
	testHTML   = "guidellm/results_phi3/pt50_ot100/benchmarks.html"
)

func fullSummary() model.Summary {
	return model.Summary{
		Metadata: model.Metadata{
			GuideLLMVersion: "0.3.0",
			PythonVersion:   "3.12.3",
			Platform:        "Linux-6.8.0-x86_64",
		},
		Args: model.Args{
			Target:     "http://localhost:11434",
			Model:      "phi3",
			Profile:    "constant",
			Rate:       "1.0",
			MaxSeconds: "60",
		},
		BenchmarkCount: 1,
		Benchmark: &model.Benchmark{
			Requests: model.RequestStats{Successful: 8, Errored: 2, Incomplete: 0, Processed: 10},
			Latency: &model.LatencyStats{
				Mean: 2.3456, Median: 2.1, StdDev: 0.5, Min: 1.2, Max: 4.999,
				Percentiles: &model.Percentiles{P50: 2.1, P95: 3.75, P99: 4.5},
			},
			TTFT:         &model.TokenTiming{Mean: 150.126, Median: 140, Min: 90.5, Max: 310},
			ITL:          &model.TokenTiming{Mean: 20.111, Median: 19.9},
			OutputTokens: &model.Throughput{Mean: 45.678, Median: 44},
			RequestRate:  &model.Throughput{Mean: 0.16666},
			Duration:     60.004,
			StartTime:    "1717000000.5",
			EndTime:      "1717000060.5",
		},
	}
}

const fullReport = `Reading: guidellm/results_phi3/pt50_ot100/benchmarks.json

============================================================
          BENCHMARK RESULTS SUMMARY
============================================================

GuideLLM Version: 0.3.0
Python Version: 3.12.3
Platform: Linux-6.8.0-x86_64

Target: http://localhost:11434
Model: phi3
Profile: constant
Rate: 1.0 req/sec
Max Duration: 60 seconds

------------------------------------------------------------
REQUEST STATISTICS
------------------------------------------------------------
  Successful:  8
  Errored:     2
  Incomplete:  0
  Processed:   10

  Success Rate: 80.0%
  Error Rate:   20.0%

------------------------------------------------------------
LATENCY (Successful Requests)
------------------------------------------------------------
  Mean:   2.35 sec
  Median: 2.10 sec
  Std Dev: 0.50 sec
  Min:    1.20 sec
  Max:    5.00 sec
  P50:    2.10 sec
  P95:    3.75 sec
  P99:    4.50 sec

------------------------------------------------------------
TIME TO FIRST TOKEN (TTFT)
------------------------------------------------------------
  Mean:   150.13 ms
  Median: 140.00 ms
  Min:    90.50 ms
  Max:    310.00 ms

------------------------------------------------------------
INTER-TOKEN LATENCY (ITL)
------------------------------------------------------------
  Mean:   20.11 ms
  Median: 19.90 ms

------------------------------------------------------------
THROUGHPUT
------------------------------------------------------------
  Output Tokens/sec (Mean):   45.68
  Output Tokens/sec (Median): 44.00
  Requests/sec (Mean):        0.1667

------------------------------------------------------------
DURATION
------------------------------------------------------------
  Total Duration: 60.00 sec
  Start Time: 1717000000.5
  End Time: 1717000060.5

============================================================
View detailed HTML report:
  open guidellm/results_phi3/pt50_ot100/benchmarks.html
============================================================
`

func TestRenderFullReport(t *testing.T) {
	out := Render(Report{Source: testSource, HTMLReport: testHTML, Summary: fullSummary()})
	assert.Equal(t, fullReport, string(out))
}

func TestRenderSectionOrder(t *testing.T) {
	out := string(Render(Report{Source: testSource, HTMLReport: testHTML, Summary: fullSummary()}))

	headers := []string{
		"BENCHMARK RESULTS SUMMARY",
		"GuideLLM Version:",
		"Target:",
		"REQUEST STATISTICS",
		"LATENCY (Successful Requests)",
		"TIME TO FIRST TOKEN (TTFT)",
		"INTER-TOKEN LATENCY (ITL)",
		"THROUGHPUT",
		"DURATION",
		"View detailed HTML report:",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, "missing %q", h)
		assert.Greater(t, idx, last, "%q out of order", h)
		last = idx
	}
}

func TestRenderNoBenchmarks(t *testing.T) {
	s := fullSummary()
	s.Benchmark = nil
	s.BenchmarkCount = 0

	out := string(Render(Report{Source: testSource, HTMLReport: testHTML, Summary: s}))

	argsEnd := "Max Duration: 60 seconds\n"
	idx := strings.Index(out, argsEnd)
	require.GreaterOrEqual(t, idx, 0)

	tail := out[idx+len(argsEnd):]
	assert.Equal(t, "\n"+banner+"\nView detailed HTML report:\n  open "+testHTML+"\n"+banner+"\n", tail)
	assert.NotContains(t, out, "REQUEST STATISTICS")
	assert.NotContains(t, out, "DURATION")
}

func TestRenderZeroTotalOmitsRates(t *testing.T) {
	s := fullSummary()
	s.Benchmark.Requests = model.RequestStats{Processed: 5}

	out := string(Render(Report{Summary: s}))

	assert.Contains(t, out, "  Processed:   5\n")
	assert.NotContains(t, out, "Success Rate")
	assert.NotContains(t, out, "Error Rate")
}

func TestRenderEmptySections(t *testing.T) {
	s := fullSummary()
	s.Benchmark = &model.Benchmark{StartTime: model.NotAvailable, EndTime: model.NotAvailable}

	out := string(Render(Report{Summary: s}))

	assert.Contains(t, out, "LATENCY (Successful Requests)\n"+rule+"\n\n"+rule+"\nTIME TO FIRST TOKEN")
	assert.Contains(t, out, "THROUGHPUT\n"+rule+"\n\n"+rule+"\nDURATION")
	assert.Contains(t, out, "  Total Duration: 0.00 sec\n  Start Time: N/A\n  End Time: N/A\n")
	assert.NotContains(t, out, "Mean:")
}

func TestRenderLatencyWithoutPercentiles(t *testing.T) {
	s := fullSummary()
	s.Benchmark.Latency.Percentiles = nil

	out := string(Render(Report{Summary: s}))

	assert.Contains(t, out, "  Max:    5.00 sec\n\n"+rule+"\nTIME TO FIRST TOKEN")
	assert.NotContains(t, out, "P50:")
}

func TestRenderThroughputGuardedIndependently(t *testing.T) {
	s := fullSummary()
	s.Benchmark.OutputTokens = nil

	out := string(Render(Report{Summary: s}))

	assert.NotContains(t, out, "Output Tokens/sec")
	assert.Contains(t, out, "THROUGHPUT\n"+rule+"\n  Requests/sec (Mean):        0.1667\n")
}

func TestRenderDeterministic(t *testing.T) {
	r := Report{Source: testSource, HTMLReport: testHTML, Summary: fullSummary()}
	assert.Equal(t, Render(r), Render(r))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReportWriter(t *testing.T) {
	r := Report{Source: testSource, HTMLReport: testHTML, Summary: fullSummary()}

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter(&buf).Write(r))
	assert.Equal(t, fullReport, buf.String())

	assert.EqualError(t, NewReportWriter(failingWriter{}).Write(r), "closed")
}
