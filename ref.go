package pydanticcore

// ---- definitions ----

// definitionsValidator registers named sub-schemas for definition-ref lookup
// and then behaves exactly like its inner schema.
type definitionsValidator struct {
	inner validator
}

type definitionsFields struct {
	Definitions []any `mapstructure:"definitions"`
	Schema      any   `mapstructure:"schema"`
}

func buildDefinitions(schema map[string]any, bc *buildContext) (validator, error) {
	var f definitionsFields
	if err := decodeFields(schema, "definitions", &f); err != nil {
		return nil, err
	}
	if f.Schema == nil {
		return nil, schemaErrorf("%q schema requires a %q key", "definitions", "schema")
	}
	for _, def := range f.Definitions {
		node, ok := def.(map[string]any)
		if !ok {
			return nil, schemaErrorf("definition must be a mapping, got %s", typeName(def))
		}
		if _, ok := node["ref"]; !ok {
			return nil, schemaErrorf("definition is missing the %q key", "ref")
		}
		// buildValidator registers the definition under its ref.
		if _, err := buildValidator(node, bc); err != nil {
			return nil, err
		}
	}
	inner, err := buildValidator(f.Schema, bc)
	if err != nil {
		return nil, err
	}
	return &definitionsValidator{inner: inner}, nil
}

func (v *definitionsValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	return v.inner.validate(input, extra, defs, guard)
}

func (v *definitionsValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	return v.inner.validateStrict(input, extra, defs, guard)
}

func (v *definitionsValidator) getName() string { return v.inner.getName() }

// ---- definition-ref ----

// definitionRefValidator resolves its target through the definitions slot
// table at validation time, never embedding it, so self-referential schemas
// build without recursing. It is the only validator that consults the
// recursion guard: references are the sole way a schema can reach itself, and
// the guard turns a cyclic input into a recursion_loop error instead of
// unbounded recursion.
type definitionRefValidator struct {
	name string
	slot int
}

type definitionRefFields struct {
	SchemaRef *string `mapstructure:"schema_ref"`
}

func buildDefinitionRef(schema map[string]any, bc *buildContext) (validator, error) {
	var f definitionRefFields
	if err := decodeFields(schema, "definition-ref", &f); err != nil {
		return nil, err
	}
	if f.SchemaRef == nil {
		return nil, schemaErrorf("%q schema requires a %q key", "definition-ref", "schema_ref")
	}
	return &definitionRefValidator{name: *f.SchemaRef, slot: bc.slotFor(*f.SchemaRef)}, nil
}

func (v *definitionRefValidator) validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	release, err := v.enter(input, guard)
	if err != nil {
		return nil, err
	}
	defer release()
	return defs[v.slot].validate(input, extra, defs, guard)
}

func (v *definitionRefValidator) validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error) {
	release, err := v.enter(input, guard)
	if err != nil {
		return nil, err
	}
	defer release()
	return defs[v.slot].validateStrict(input, extra, defs, guard)
}

// enter brackets one guarded descent. Scalar inputs cannot cycle and skip the
// guard; for container inputs the returned release must run on every exit
// path, which the callers guarantee with defer.
func (v *definitionRefValidator) enter(input any, guard recursionGuard) (func(), error) {
	identity, ok := inputIdentity(input)
	if !ok {
		return func() {}, nil
	}
	key := recursionKey{slot: v.slot, input: identity}
	if !guard.enter(key) {
		return nil, newLineError(KindRecursionLoop, input, nil)
	}
	return func() { guard.leave(key) }, nil
}

func (v *definitionRefValidator) getName() string { return v.name }
