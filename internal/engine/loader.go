/*
PURPOSE:
  Reads a GuideLLM results file into a model.Object.

REQUIREMENTS:
  User-specified:
  - A missing/unreadable file or malformed JSON is the only failure.
  - It must fail before any report output is written.

  Implementation-discovered:
  - Decode with UseNumber so numeric literals survive for display.
  - Reject trailing data after the top-level value.
  - The top-level value must be an object.

ARCHITECTURE INTEGRATION:
  - Called by: Run (runner.go)
  - Produces: internal/model.Object

ERROR HANDLING:
  - Wraps open/read errors as "failed to read results file".
  - Wraps decode errors as "failed to parse results file".

IMPLEMENTATION RULES:
  - The file is closed before Load returns, on every path.

USAGE:
  doc, err := engine.Load("guidellm/results_phi3/pt50_ot100/benchmarks.json")

SELF-HEALING INSTRUCTIONS:
  - If GuideLLM starts writing YAML results, add a second decoder here.

RELATED FILES:
  - internal/model/document.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/haimlavi1989/RedHatExercise2LocalBenchmarkOllamaWithGuideLLM/internal/model"
)

// Load opens path and decodes it as a JSON object.
func Load(path string) (model.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return doc, nil
}

func decode(r io.Reader) (model.Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, not an object", v)
	}
	return model.Object(obj), nil
}
