package pydanticcore

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes data into the host value model. Numbers are kept as
// json.Number so large integers survive without precision loss. A decode
// failure is reported as a json_invalid validation error.
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, newLineError(KindJSONInvalid, string(data), map[string]any{"error": err.Error()})
	}
	// Trailing garbage after the first value is still invalid input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, newLineError(KindJSONInvalid, string(data), map[string]any{
			"error": "unexpected content after top-level value",
		})
	}
	return v, nil
}

// FromYAML decodes data into the host value model. yaml.v3 already produces
// map[string]any / []any / scalar shapes for untyped targets.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, newLineError(KindYAMLInvalid, string(data), map[string]any{"error": err.Error()})
	}
	return v, nil
}

// StreamJSONArray reads a JSON array from r one element at a time, yielding
// each decoded element. Container validators accept the stream as lax input
// and drive it through the fallible iteration path, so a syntax error midway
// through the array surfaces as a structural IterationError rather than a
// per-element failure, and elements before the error are still validated
// incrementally.
func StreamJSONArray(r io.Reader) Stream {
	return func(yield func(any, error) bool) {
		dec := json.NewDecoder(r)
		dec.UseNumber()
		tok, err := dec.Token()
		if err != nil {
			yield(nil, fmt.Errorf("reading array start: %w", err))
			return
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			yield(nil, fmt.Errorf("expected a JSON array, got %v", tok))
			return
		}
		for dec.More() {
			var v any
			if err := dec.Decode(&v); err != nil {
				yield(nil, fmt.Errorf("decoding array element: %w", err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
		if _, err := dec.Token(); err != nil {
			yield(nil, fmt.Errorf("reading array end: %w", err))
		}
	}
}
