/*
PURPOSE:
  Optional-field-tolerant view over a decoded JSON document.
  Every lookup substitutes a default instead of failing.

REQUIREMENTS:
  User-specified:
  - A missing field must never abort the report.

  Implementation-discovered:
  - Numbers are decoded with UseNumber so "5.0" prints as "5.0", not "5".
  - A value of the wrong kind (null, list where an object is expected)
    is treated as absent.

ARCHITECTURE INTEGRATION:
  - Produced by: internal/engine.Load
  - Used by: NewSummary (extract.go)

ERROR HANDLING:
  - None. Lookups never return errors.

IMPLEMENTATION RULES:
  - Never index a nested map directly; go through Object().
  - Reading a nil Object is valid and yields defaults.

USAGE:
  latency := doc.Object("metrics").Object("request_latency").Object("successful")
  mean := latency.Float("mean")

SELF-HEALING INSTRUCTIONS:
  - If the decoder stops using UseNumber, Float/Int/display must learn float64.

RELATED FILES:
  - internal/model/extract.go
  - internal/engine/loader.go

MAINTENANCE:
  - Add accessors here rather than type-switching in callers.
*/

package model

import (
	"encoding/json"
	"strconv"
)

// NotAvailable is printed for display values missing from the document.
const NotAvailable = "N/A"

// Object is a decoded JSON object.
type Object map[string]any

// Empty reports whether the object has no keys.
func (o Object) Empty() bool {
	return len(o) == 0
}

// Object returns the nested object at key, or nil if the key is
// missing or does not hold an object.
func (o Object) Object(key string) Object {
	switch v := o[key].(type) {
	case map[string]any:
		return Object(v)
	case Object:
		return v
	default:
		return nil
	}
}

// List returns the array at key, or nil if the key is missing or does
// not hold an array.
func (o Object) List(key string) []any {
	v, _ := o[key].([]any)
	return v
}

// String returns the value at key formatted for display, or def when
// the key is missing or null.
func (o Object) String(key, def string) string {
	v, ok := o[key]
	if !ok || v == nil {
		return def
	}
	return display(v)
}

// Float returns the numeric value at key, or 0.
func (o Object) Float(key string) float64 {
	n, ok := o[key].(json.Number)
	if !ok {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Int returns the integer value at key, or 0. Fractional values are
// truncated toward zero.
func (o Object) Int(key string) int64 {
	n, ok := o[key].(json.Number)
	if !ok {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return int64(f)
}

func display(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		// lists and objects
		b, err := json.Marshal(t)
		if err != nil {
			return NotAvailable
		}
		return string(b)
	}
}
