/*
PURPOSE:
  Defines the typed summary of a GuideLLM results document.
  This is everything the report prints, with defaults already applied.

REQUIREMENTS:
  User-specified:
  - Only the first benchmark is reported.
  - Success/error rates are derived from successful + errored + incomplete.

  Implementation-discovered:
  - Subsections print only when their source mapping is non-empty,
    so those fields are pointers (nil = skip).

ARCHITECTURE INTEGRATION:
  - Built by: NewSummary (extract.go)
  - Used by: internal/output.ReportWriter

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Display-only values (rate, timestamps) stay strings.

USAGE:
  s := model.NewSummary(doc)
  if s.Benchmark != nil { ... }

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add a field here, extract it in
    extract.go, and print it in internal/output/report.go.

RELATED FILES:
  - internal/model/extract.go
  - internal/output/report.go

MAINTENANCE:
  - Update when GuideLLM renames metric keys.
*/

package model

// Summary is the extracted view of one results document.
type Summary struct {
	Metadata Metadata
	Args     Args

	// BenchmarkCount is the number of records in the document.
	BenchmarkCount int
	// Benchmark is the first record, nil when there is none.
	Benchmark *Benchmark
}

// Metadata identifies the tool that produced the results.
type Metadata struct {
	GuideLLMVersion string
	PythonVersion   string
	Platform        string
}

// Args are the arguments the benchmark was run with.
type Args struct {
	Target     string
	Model      string
	Profile    string
	Rate       string
	MaxSeconds string
}

// Benchmark holds the reported figures of a single benchmark record.
type Benchmark struct {
	Requests RequestStats

	Latency      *LatencyStats
	TTFT         *TokenTiming
	ITL          *TokenTiming
	OutputTokens *Throughput
	RequestRate  *Throughput

	Duration  float64 // seconds
	StartTime string
	EndTime   string
}

// RequestStats are the scheduler's request outcome counts.
type RequestStats struct {
	Successful int64
	Errored    int64
	Incomplete int64 // cancelled_requests
	Processed  int64
}

// Total returns successful + errored + incomplete.
// Processed is not part of the total.
func (r RequestStats) Total() int64 {
	return r.Successful + r.Errored + r.Incomplete
}

// Rates returns the success and error percentages of Total.
// ok is false when Total is zero.
func (r RequestStats) Rates() (success, failure float64, ok bool) {
	total := r.Total()
	if total <= 0 {
		return 0, 0, false
	}
	success = float64(r.Successful) / float64(total) * 100
	failure = float64(r.Errored) / float64(total) * 100
	return success, failure, true
}

// LatencyStats is the request latency distribution, in seconds.
type LatencyStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64

	// Percentiles is nil when the document has none.
	Percentiles *Percentiles
}

// Percentiles of request latency, in seconds.
type Percentiles struct {
	P50 float64
	P95 float64
	P99 float64
}

// TokenTiming is a per-token latency distribution, in milliseconds.
type TokenTiming struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Throughput is a rate distribution.
type Throughput struct {
	Mean   float64
	Median float64
}
