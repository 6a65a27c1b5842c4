// Package pydanticcore is a schema-driven validation and coercion engine:
// build a validator tree once from a declarative schema, then validate many
// dynamically-typed inputs against it.
//
// It provides:
//   - BuildSchema: compile a schema map (kind tag plus kind-specific keys)
//     into an immutable, goroutine-safe SchemaValidator.
//   - Validate / ValidateStrict: lax coercion vs exact-shape checking.
//   - ValidateJSON / ValidateYAML: decode then validate in one call.
//   - ValidationError: every failure found, each with a kind, a location path
//     and structured context.
//   - Recursive schemas via "definitions" / "definition-ref", with cycle-safe
//     validation of self-referential inputs.
//
// Typical usage:
//
//	sv, err := pydanticcore.BuildSchema(map[string]any{
//		"type":      "set",
//		"items":     map[string]any{"type": "int"},
//		"min_items": 1,
//	}, nil)
//	if err != nil { ... }
//	out, err := sv.Validate([]any{"1", 2, 3})
//	// out is a *pydanticcore.Set{1, 2, 3}
//	if ve, ok := pydanticcore.AsValidationError(err); ok {
//		for _, line := range ve.Errors() { ... }
//	}
package pydanticcore
