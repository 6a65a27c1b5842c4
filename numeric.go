package pydanticcore

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// asInt normalizes exact-integer host representations to int64. json.Number
// counts as exact when its text parses as an integer: it is how JSON input
// carries integers through the decoder.
func asInt(input any) (int64, bool) {
	switch t := input.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// asFloat normalizes numeric host representations to float64.
func asFloat(input any) (float64, error) {
	switch t := input.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	}
	return 0, newLineError(KindFloatType, input, nil)
}

// ---- int ----

type intValidator struct {
	strict bool
}

type intFields struct {
	Strict *bool `mapstructure:"strict"`
}

func buildInt(schema map[string]any, bc *buildContext) (validator, error) {
	var f intFields
	if err := decodeFields(schema, "int", &f); err != nil {
		return nil, err
	}
	return intValidator{strict: isStrict(f.Strict, bc.cfg)}, nil
}

func (v intValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if v.strict || extra.Strict {
		return v.validateStrict(input, extra, defs, guard)
	}
	if n, ok := asInt(input); ok {
		return n, nil
	}
	switch t := input.(type) {
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, newLineError(KindIntFromFloat, input, nil)
		}
		return int64(t), nil
	case json.Number:
		// Not an exact integer (asInt already declined), so it carries a
		// fractional part or exponent.
		f, err := t.Float64()
		if err == nil && f == math.Trunc(f) {
			return int64(f), nil
		}
		return nil, newLineError(KindIntFromFloat, input, nil)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, newLineError(KindIntParsing, input, nil)
		}
		return n, nil
	}
	return nil, newLineError(KindIntType, input, nil)
}

func (intValidator) validateStrict(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	if n, ok := asInt(input); ok {
		return n, nil
	}
	return nil, newLineError(KindIntType, input, nil)
}

func (intValidator) getName() string { return "int" }

// ---- float ----

type floatValidator struct {
	strict bool
}

type floatFields struct {
	Strict *bool `mapstructure:"strict"`
}

func buildFloat(schema map[string]any, bc *buildContext) (validator, error) {
	var f floatFields
	if err := decodeFields(schema, "float", &f); err != nil {
		return nil, err
	}
	return floatValidator{strict: isStrict(f.Strict, bc.cfg)}, nil
}

func (v floatValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if v.strict || extra.Strict {
		return v.validateStrict(input, extra, defs, guard)
	}
	switch t := input.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, newLineError(KindFloatParsing, input, nil)
		}
		return f, nil
	case bool:
		return nil, newLineError(KindFloatType, input, nil)
	}
	f, err := asFloat(input)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (floatValidator) validateStrict(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	switch t := input.(type) {
	case float64:
		return t, nil
	case json.Number:
		// JSON does not distinguish 1 from 1.0, so any JSON number is an
		// exact float shape.
		f, err := t.Float64()
		if err != nil {
			return nil, newLineError(KindFloatParsing, input, nil)
		}
		return f, nil
	}
	return nil, newLineError(KindFloatType, input, nil)
}

func (floatValidator) getName() string { return "float" }
