package pydanticcore

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ---- any ----

// anyValidator accepts every input unchanged. It also backs containers built
// without an item schema.
type anyValidator struct{}

func buildAny(map[string]any, *buildContext) (validator, error) {
	return anyValidator{}, nil
}

func (anyValidator) validate(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	return input, nil
}

func (anyValidator) validateStrict(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	return input, nil
}

func (anyValidator) getName() string { return "any" }

// ---- none ----

type noneValidator struct{}

func buildNone(map[string]any, *buildContext) (validator, error) {
	return noneValidator{}, nil
}

func (noneValidator) validate(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	if input == nil {
		return nil, nil
	}
	return nil, newLineError(KindNoneRequired, input, nil)
}

func (v noneValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	return v.validate(input, extra, defs, guard)
}

func (noneValidator) getName() string { return "none" }

// ---- bool ----

type boolValidator struct {
	strict bool
}

type boolFields struct {
	Strict *bool `mapstructure:"strict"`
}

func buildBool(schema map[string]any, bc *buildContext) (validator, error) {
	var f boolFields
	if err := decodeFields(schema, "bool", &f); err != nil {
		return nil, err
	}
	return boolValidator{strict: isStrict(f.Strict, bc.cfg)}, nil
}

func (v boolValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if v.strict || extra.Strict {
		return v.validateStrict(input, extra, defs, guard)
	}
	switch t := input.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(t) {
		case "true", "1", "yes", "on":
			return true, nil
		case "false", "0", "no", "off":
			return false, nil
		}
		return nil, newLineError(KindBoolParsing, input, nil)
	case int, int32, int64, float64, json.Number:
		f, err := asFloat(input)
		if err == nil {
			if f == 0 {
				return false, nil
			}
			if f == 1 {
				return true, nil
			}
		}
		return nil, newLineError(KindBoolParsing, input, nil)
	}
	return nil, newLineError(KindBoolType, input, nil)
}

func (boolValidator) validateStrict(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	if b, ok := input.(bool); ok {
		return b, nil
	}
	return nil, newLineError(KindBoolType, input, nil)
}

func (boolValidator) getName() string { return "bool" }

// ---- str ----

type strValidator struct {
	strict bool
}

type strFields struct {
	Strict *bool `mapstructure:"strict"`
}

func buildStr(schema map[string]any, bc *buildContext) (validator, error) {
	var f strFields
	if err := decodeFields(schema, "str", &f); err != nil {
		return nil, err
	}
	return strValidator{strict: isStrict(f.Strict, bc.cfg)}, nil
}

func (v strValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if v.strict || extra.Strict {
		return v.validateStrict(input, extra, defs, guard)
	}
	switch t := input.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	}
	return nil, newLineError(KindStringType, input, nil)
}

func (strValidator) validateStrict(input any, _ *Extra, _ definitions, _ recursionGuard) (any, error) {
	if s, ok := input.(string); ok {
		return s, nil
	}
	return nil, newLineError(KindStringType, input, nil)
}

func (strValidator) getName() string { return "str" }
