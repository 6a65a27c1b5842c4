package pydanticcore

// SchemaValidator is the top-level entry point: built once from a declarative
// schema, then used for many validate calls, concurrently if desired. The
// validator tree and definitions table are read-only after BuildSchema; every
// call allocates its own recursion guard.
type SchemaValidator struct {
	root  validator
	defs  definitions
	title string
}

// BuildSchema constructs a SchemaValidator from a schema node and an optional
// config map. A malformed schema or an unresolved reference fails here, never
// at validate time.
func BuildSchema(schema map[string]any, config map[string]any) (*SchemaValidator, error) {
	cfg, err := decodeConfig(config)
	if err != nil {
		return nil, err
	}
	bc := newBuildContext(cfg)
	root, err := buildValidator(schema, bc)
	if err != nil {
		return nil, err
	}
	defs, err := bc.finish()
	if err != nil {
		return nil, err
	}
	title := cfg.Title
	if title == "" {
		title = root.getName()
	}
	return &SchemaValidator{root: root, defs: defs, title: title}, nil
}

// Name returns the root validator's diagnostic name.
func (s *SchemaValidator) Name() string { return s.root.getName() }

// Title returns the name stamped onto top-level validation errors.
func (s *SchemaValidator) Title() string { return s.title }

// Validate runs lax-mode validation of a host value, returning the coerced
// output or a *ValidationError listing every failure found.
func (s *SchemaValidator) Validate(input any) (any, error) {
	return s.ValidateWith(input, &Extra{})
}

// ValidateStrict rejects any input that is not already the exact target
// shape.
func (s *SchemaValidator) ValidateStrict(input any) (any, error) {
	return s.ValidateWith(input, &Extra{Strict: true})
}

// ValidateWith validates with caller-supplied per-call context.
func (s *SchemaValidator) ValidateWith(input any, extra *Extra) (any, error) {
	guard := make(recursionGuard)
	out, err := s.root.validate(input, extra, s.defs, guard)
	return out, s.finalize(err)
}

// ValidateJSON decodes data as JSON and validates the result. Numbers are
// preserved as json.Number so integer precision survives the trip.
func (s *SchemaValidator) ValidateJSON(data []byte) (any, error) {
	input, err := FromJSON(data)
	if err != nil {
		return nil, s.finalize(err)
	}
	return s.Validate(input)
}

// ValidateYAML decodes data as YAML and validates the result.
func (s *SchemaValidator) ValidateYAML(data []byte) (any, error) {
	input, err := FromYAML(data)
	if err != nil {
		return nil, s.finalize(err)
	}
	return s.Validate(input)
}

// finalize stamps the schema title onto outgoing validation errors at the API
// boundary.
func (s *SchemaValidator) finalize(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := AsValidationError(err); ok {
		return ve.withTitle(s.title)
	}
	return err
}
