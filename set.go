package pydanticcore

// setValidator coerces set-like input into a *Set, validating every member
// against the item validator.
type setValidator struct {
	strict         bool
	failFast       bool
	item           validator
	minItems       int
	maxItems       int
	maxInputLength int
}

type setFields struct {
	Strict   *bool `mapstructure:"strict"`
	FailFast *bool `mapstructure:"fail_fast"`
	Items    any   `mapstructure:"items"`
	MinItems *int  `mapstructure:"min_items"`
	MaxItems *int  `mapstructure:"max_items"`
}

func buildSet(schema map[string]any, bc *buildContext) (validator, error) {
	var f setFields
	if err := decodeFields(schema, "set", &f); err != nil {
		return nil, err
	}
	v := &setValidator{
		strict:         isStrict(f.Strict, bc.cfg),
		failFast:       isFailFast(f.FailFast, bc.cfg),
		maxItems:       orUnset(f.MaxItems),
		maxInputLength: maxInputLength(bc.cfg),
	}
	if f.MinItems != nil {
		v.minItems = *f.MinItems
	}
	if f.Items != nil {
		item, err := buildValidator(f.Items, bc)
		if err != nil {
			return nil, err
		}
		v.item = item
	}
	return v, nil
}

func (v *setValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	var (
		view sequenceView
		err  error
	)
	if v.strict || extra.Strict {
		view, err = strictSet(input)
	} else {
		view, err = laxSet(input)
	}
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, view, extra, defs, guard)
}

func (v *setValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	view, err := strictSet(input)
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, view, extra, defs, guard)
}

func (v *setValidator) getName() string {
	if v.item != nil {
		return "set-" + v.item.getName()
	}
	return "set"
}

func (v *setValidator) validationLogic(input any, view sequenceView, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	// Cheap raw-length rejection before any per-element work. Streams have
	// unknown length and are bounded incrementally instead.
	if length := view.length(); length >= 0 {
		if err := checkRawLength(input, "Set", length, v.minItems, v.maxItems); err != nil {
			return nil, err
		}
	}

	item := v.item
	if item == nil {
		item = anyValidator{}
	}
	checks := newIterableChecks(v.failFast, lengthConstraints{
		minLength:      v.minItems,
		maxLength:      v.maxItems,
		maxInputLength: v.maxInputLength,
	}, "Set")

	output := NewSet()
	write := func(s *Set, value any) error { s.Add(value); return nil }
	length := func(s *Set) int { return s.Len() }

	var err error
	if view.stream != nil {
		err = validateFallibleIterator(input, extra, defs, guard, checks, view.stream, item, output, write, length)
	} else {
		err = validateInfallibleIterator(input, extra, defs, guard, checks, view.items, item, output, write, length)
	}
	if err != nil {
		return nil, err
	}
	return output, nil
}

// checkRawLength is the pre-iteration length check shared by the materialized
// container views.
func checkRawLength(input any, fieldType string, length, minItems, maxItems int) error {
	if minItems >= 0 && length < minItems {
		return newLineError(KindTooShort, input, map[string]any{
			"field_type":    fieldType,
			"min_length":    minItems,
			"actual_length": length,
		})
	}
	if maxItems >= 0 && length > maxItems {
		return newLineError(KindTooLong, input, map[string]any{
			"field_type":    fieldType,
			"max_length":    maxItems,
			"actual_length": length,
		})
	}
	return nil
}
