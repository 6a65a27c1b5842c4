package pydanticcore

import "sort"

// dictValidator validates a string-keyed mapping, running separate key and
// value validators per entry. Key errors are located at "<key>.[key]", value
// errors at "<key>".
type dictValidator struct {
	strict         bool
	failFast       bool
	keys           validator
	values         validator
	minItems       int
	maxItems       int
	maxInputLength int
}

type dictFields struct {
	Strict   *bool `mapstructure:"strict"`
	FailFast *bool `mapstructure:"fail_fast"`
	Keys     any   `mapstructure:"keys"`
	Values   any   `mapstructure:"values"`
	MinItems *int  `mapstructure:"min_items"`
	MaxItems *int  `mapstructure:"max_items"`
}

func buildDict(schema map[string]any, bc *buildContext) (validator, error) {
	var f dictFields
	if err := decodeFields(schema, "dict", &f); err != nil {
		return nil, err
	}
	v := &dictValidator{
		strict:         isStrict(f.Strict, bc.cfg),
		failFast:       isFailFast(f.FailFast, bc.cfg),
		maxItems:       orUnset(f.MaxItems),
		maxInputLength: maxInputLength(bc.cfg),
	}
	if f.MinItems != nil {
		v.minItems = *f.MinItems
	}
	if f.Keys != nil {
		keys, err := buildValidator(f.Keys, bc)
		if err != nil {
			return nil, err
		}
		v.keys = keys
	}
	if f.Values != nil {
		values, err := buildValidator(f.Values, bc)
		if err != nil {
			return nil, err
		}
		v.values = values
	}
	return v, nil
}

func (v *dictValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	var (
		mapping map[string]any
		err     error
	)
	if v.strict || extra.Strict {
		mapping, err = strictDict(input)
	} else {
		mapping, err = laxDict(input)
	}
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, mapping, extra, defs, guard)
}

func (v *dictValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	mapping, err := strictDict(input)
	if err != nil {
		return nil, err
	}
	return v.validationLogic(input, mapping, extra, defs, guard)
}

func (v *dictValidator) getName() string {
	name := "dict"
	if v.keys != nil || v.values != nil {
		keys, values := "any", "any"
		if v.keys != nil {
			keys = v.keys.getName()
		}
		if v.values != nil {
			values = v.values.getName()
		}
		name += "[" + keys + "," + values + "]"
	}
	return name
}

func (v *dictValidator) validationLogic(input any, mapping map[string]any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if err := checkRawLength(input, "Dictionary", len(mapping), v.minItems, v.maxItems); err != nil {
		return nil, err
	}

	keyValidator := v.keys
	if keyValidator == nil {
		keyValidator = anyValidator{}
	}
	valueValidator := v.values
	if valueValidator == nil {
		valueValidator = anyValidator{}
	}
	checks := newIterableChecks(v.failFast, lengthConstraints{
		minLength:      v.minItems,
		maxLength:      v.maxItems,
		maxInputLength: v.maxInputLength,
	}, "Dictionary")

	// Go map iteration order is randomized; sorting keys keeps error order
	// and collect-all output deterministic.
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	output := make(map[string]any, calculateOutputInitCapacity(len(mapping), v.maxItems))
	for _, name := range names {
		key, value, err := v.validateEntry(name, mapping[name], keyValidator, valueValidator, extra, defs, guard)
		value, accepted, err := checks.filterValidationResult(value, err, input)
		if err != nil {
			return nil, err
		}
		if accepted {
			output[key] = value
			if err := checks.checkOutputLength(len(output), input); err != nil {
				return nil, err
			}
		}
	}
	if err := checks.finish(input); err != nil {
		return nil, err
	}
	return output, nil
}

// validateEntry runs the key and value validators for one entry, merging
// their located errors so collect-all mode reports both sides.
func (v *dictValidator) validateEntry(name string, value any, keyValidator, valueValidator validator, extra *Extra, defs definitions, guard recursionGuard) (string, any, error) {
	var lines []LineError

	outKey, err := keyValidator.validate(name, extra, defs, guard)
	if err != nil {
		ve, ok := AsValidationError(err)
		if !ok {
			return "", nil, err
		}
		lines = append(lines, ve.withOuterLoc(KeyLoc("[key]")).withOuterLoc(KeyLoc(name)).Errors()...)
	}
	keyStr, keyOK := outKey.(string)
	if err == nil && !keyOK {
		lines = append(lines, LineError{
			Kind:  KindDictKeyType,
			Loc:   Location{KeyLoc(name), KeyLoc("[key]")},
			Input: outKey,
		})
	}

	outValue, err := valueValidator.validate(value, extra, defs, guard)
	if err != nil {
		ve, ok := AsValidationError(err)
		if !ok {
			return "", nil, err
		}
		lines = append(lines, ve.withOuterLoc(KeyLoc(name)).Errors()...)
	}

	if len(lines) > 0 {
		return "", nil, newValidationError(lines)
	}
	return keyStr, outValue, nil
}
