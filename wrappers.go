package pydanticcore

// ---- nullable ----

// nullableValidator passes nil through and delegates everything else.
type nullableValidator struct {
	item validator
}

type nullableFields struct {
	Schema any `mapstructure:"schema"`
}

func buildNullable(schema map[string]any, bc *buildContext) (validator, error) {
	var f nullableFields
	if err := decodeFields(schema, "nullable", &f); err != nil {
		return nil, err
	}
	if f.Schema == nil {
		return nil, schemaErrorf("%q schema requires a %q key", "nullable", "schema")
	}
	item, err := buildValidator(f.Schema, bc)
	if err != nil {
		return nil, err
	}
	return &nullableValidator{item: item}, nil
}

func (v *nullableValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if input == nil {
		return nil, nil
	}
	return v.item.validate(input, extra, defs, guard)
}

func (v *nullableValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	if input == nil {
		return nil, nil
	}
	return v.item.validateStrict(input, extra, defs, guard)
}

func (v *nullableValidator) getName() string {
	return "nullable[" + v.item.getName() + "]"
}

// ---- default ----

// defaultValidator wraps an item validator with a failure policy: on_error
// decides whether a failed item raises, is silently omitted from its
// enclosing container, or is replaced by the configured default. The omit
// policy is the producer of the ErrOmit signal consumed by container
// bookkeeping.
type defaultValidator struct {
	item         validator
	defaultValue any
	hasDefault   bool
	onError      string
}

type defaultFields struct {
	Schema  any     `mapstructure:"schema"`
	Default any     `mapstructure:"default"`
	OnError *string `mapstructure:"on_error"`
}

func buildDefault(schema map[string]any, bc *buildContext) (validator, error) {
	var f defaultFields
	if err := decodeFields(schema, "default", &f); err != nil {
		return nil, err
	}
	if f.Schema == nil {
		return nil, schemaErrorf("%q schema requires a %q key", "default", "schema")
	}
	item, err := buildValidator(f.Schema, bc)
	if err != nil {
		return nil, err
	}
	_, hasDefault := schema["default"]
	onError := "raise"
	if f.OnError != nil {
		onError = *f.OnError
	}
	switch onError {
	case "raise", "omit":
	case "default":
		if !hasDefault {
			return nil, schemaErrorf("on_error %q requires a %q value", "default", "default")
		}
	default:
		return nil, schemaErrorf("unknown on_error policy %q", onError)
	}
	return &defaultValidator{
		item:         item,
		defaultValue: f.Default,
		hasDefault:   hasDefault,
		onError:      onError,
	}, nil
}

func (v *defaultValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	return v.handle(v.item.validate(input, extra, defs, guard))
}

func (v *defaultValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	return v.handle(v.item.validateStrict(input, extra, defs, guard))
}

// handle applies the on_error policy to the item outcome. Only recoverable
// validation failures are subject to the policy; structural and recursion
// failures propagate untouched.
func (v *defaultValidator) handle(value any, err error) (any, error) {
	if err == nil {
		return value, nil
	}
	ve, ok := AsValidationError(err)
	if !ok {
		return nil, err
	}
	// A detected recursion loop is never recoverable by policy.
	for _, line := range ve.Errors() {
		if line.Kind == KindRecursionLoop {
			return nil, err
		}
	}
	switch v.onError {
	case "omit":
		return nil, ErrOmit
	case "default":
		return v.defaultValue, nil
	default:
		return nil, err
	}
}

func (v *defaultValidator) getName() string {
	return "default[" + v.item.getName() + "]"
}
