package pydanticcore

// unionValidator tries each choice in declared order. Lax validation runs two
// passes: first every choice in strict mode, then every choice in lax mode,
// so an exact match always beats a coerced one regardless of choice order.
type unionValidator struct {
	choices []validator
}

type unionFields struct {
	Choices []any `mapstructure:"choices"`
}

func buildUnion(schema map[string]any, bc *buildContext) (validator, error) {
	var f unionFields
	if err := decodeFields(schema, "union", &f); err != nil {
		return nil, err
	}
	if len(f.Choices) == 0 {
		return nil, schemaErrorf("%q schema requires a non-empty %q list", "union", "choices")
	}
	choices := make([]validator, 0, len(f.Choices))
	for _, choice := range f.Choices {
		built, err := buildValidator(choice, bc)
		if err != nil {
			return nil, err
		}
		choices = append(choices, built)
	}
	return &unionValidator{choices: choices}, nil
}

func (v *unionValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if extra.Strict {
		return v.validateStrict(input, extra, defs, guard)
	}
	for _, choice := range v.choices {
		if out, err := choice.validateStrict(input, extra, defs, guard); err == nil {
			return out, nil
		} else if fatal(err) {
			return nil, err
		}
	}
	var lines []LineError
	for _, choice := range v.choices {
		out, err := choice.validate(input, extra, defs, guard)
		if err == nil {
			return out, nil
		}
		ve, ok := AsValidationError(err)
		if !ok {
			return nil, err
		}
		lines = append(lines, ve.withOuterLoc(KeyLoc(choice.getName())).Errors()...)
	}
	return nil, newValidationError(lines)
}

func (v *unionValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	var lines []LineError
	for _, choice := range v.choices {
		out, err := choice.validateStrict(input, extra, defs, guard)
		if err == nil {
			return out, nil
		}
		ve, ok := AsValidationError(err)
		if !ok {
			return nil, err
		}
		lines = append(lines, ve.withOuterLoc(KeyLoc(choice.getName())).Errors()...)
	}
	return nil, newValidationError(lines)
}

func (v *unionValidator) getName() string {
	name := "union["
	for i, choice := range v.choices {
		if i > 0 {
			name += ","
		}
		name += choice.getName()
	}
	return name + "]"
}

// fatal reports whether err must end the whole union attempt rather than
// letting the next choice run (omission signals and structural failures are
// not per-choice mismatches).
func fatal(err error) bool {
	_, ok := AsValidationError(err)
	return !ok
}
