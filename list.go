package pydanticcore

// listValidator coerces sequence input into a []any, validating every element
// against the item validator.
type listValidator struct {
	strict         bool
	failFast       bool
	item           validator
	minItems       int
	maxItems       int
	maxInputLength int
}

type listFields struct {
	Strict   *bool `mapstructure:"strict"`
	FailFast *bool `mapstructure:"fail_fast"`
	Items    any   `mapstructure:"items"`
	MinItems *int  `mapstructure:"min_items"`
	MaxItems *int  `mapstructure:"max_items"`
}

func buildList(schema map[string]any, bc *buildContext) (validator, error) {
	var f listFields
	if err := decodeFields(schema, "list", &f); err != nil {
		return nil, err
	}
	v := &listValidator{
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

func (v *listValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	var (
		view sequenceView
		err  error
	)
	if v.strict || extra.Strict {
		view, err = strictList(input)
	} else {
		view, err = laxList(input)
	}
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, view, extra, defs, guard)
}

func (v *listValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	view, err := strictList(input)
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, view, extra, defs, guard)
}

func (v *listValidator) getName() string {
	if v.item != nil {
		return "list-" + v.item.getName()
	}
	return "list"
}

// listOutput wraps the slice so the injected write callback can grow it
// through a stable handle.
type listOutput struct {
	items []any
}

func (v *listValidator) validationLogic(input any, view sequenceView, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if length := view.length(); length >= 0 {
		if err := checkRawLength(input, "List", length, v.minItems, v.maxItems); err != nil {
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
	}, "List")

	output := &listOutput{items: make([]any, 0, calculateOutputInitCapacity(view.length(), v.maxItems))}
	write := func(o *listOutput, value any) error { o.items = append(o.items, value); return nil }
	length := func(o *listOutput) int { return len(o.items) }

	var err error
	if view.stream != nil {
		err = validateFallibleIterator(input, extra, defs, guard, checks, view.stream, item, output, write, length)
	} else {
		err = validateInfallibleIterator(input, extra, defs, guard, checks, view.items, item, output, write, length)
	}
	if err != nil {
		return nil, err
	}
	return output.items, nil
}
