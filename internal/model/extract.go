package model

// NewSummary extracts the reported fields from doc, substituting
// defaults for anything missing. Only the first benchmark is read.
func NewSummary(doc Object) Summary {
	meta := doc.Object("metadata")
	args := doc.Object("args")
	benchmarks := doc.List("benchmarks")

	s := Summary{
		Metadata: Metadata{
			GuideLLMVersion: meta.String("guidellm_version", NotAvailable),
			PythonVersion:   meta.String("python_version", NotAvailable),
			Platform:        meta.String("platform", NotAvailable),
		},
		Args: Args{
			Target:     args.String("target", NotAvailable),
			Model:      args.String("model", NotAvailable),
			Profile:    args.String("profile", NotAvailable),
			Rate:       args.String("rate", NotAvailable),
			MaxSeconds: args.String("max_seconds", NotAvailable),
		},
		BenchmarkCount: len(benchmarks),
	}

	if len(benchmarks) > 0 {
		first, _ := benchmarks[0].(map[string]any)
		s.Benchmark = newBenchmark(Object(first))
	}
	return s
}

func newBenchmark(bench Object) *Benchmark {
	metrics := bench.Object("metrics")
	scheduler := bench.Object("scheduler_state")

	b := &Benchmark{
		Requests: RequestStats{
			Successful: scheduler.Int("successful_requests"),
			Errored:    scheduler.Int("errored_requests"),
			Incomplete: scheduler.Int("cancelled_requests"),
			Processed:  scheduler.Int("processed_requests"),
		},
		Duration:  bench.Float("duration"),
		StartTime: bench.String("start_time", NotAvailable),
		EndTime:   bench.String("end_time", NotAvailable),
	}

	if latency := successful(metrics, "request_latency"); !latency.Empty() {
		b.Latency = &LatencyStats{
			Mean:   latency.Float("mean"),
			Median: latency.Float("median"),
			StdDev: latency.Float("std_dev"),
			Min:    latency.Float("min"),
			Max:    latency.Float("max"),
		}
		if percs := latency.Object("percentiles"); !percs.Empty() {
			b.Latency.Percentiles = &Percentiles{
				P50: percs.Float("p50"),
				P95: percs.Float("p95"),
				P99: percs.Float("p99"),
			}
		}
	}

	if ttft := successful(metrics, "time_to_first_token_ms"); !ttft.Empty() {
		b.TTFT = tokenTiming(ttft)
	}
	if itl := successful(metrics, "inter_token_latency_ms"); !itl.Empty() {
		b.ITL = tokenTiming(itl)
	}
	if out := successful(metrics, "output_tokens_per_second"); !out.Empty() {
		b.OutputTokens = &Throughput{Mean: out.Float("mean"), Median: out.Float("median")}
	}
	if req := successful(metrics, "requests_per_second"); !req.Empty() {
		b.RequestRate = &Throughput{Mean: req.Float("mean"), Median: req.Float("median")}
	}

	return b
}

// successful returns metrics.<name>.successful.
func successful(metrics Object, name string) Object {
	return metrics.Object(name).Object("successful")
}

func tokenTiming(o Object) *TokenTiming {
	return &TokenTiming{
		Mean:   o.Float("mean"),
		Median: o.Float("median"),
		Min:    o.Float("min"),
		Max:    o.Float("max"),
	}
}
