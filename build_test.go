package pydanticcore_test

import (
	"strings"
	"testing"

	pydanticcore "github.com/AlexWaygood/pydantic-core"
)

func TestBuildSchema_RejectsMalformedSchemas(t *testing.T) {
	cases := []struct {
		name   string
		schema map[string]any
		want   string // substring of the build error
	}{
		{
			name:   "unknown kind",
			schema: map[string]any{"type": "flurble"},
			want:   "unknown schema kind",
		},
		{
			name:   "missing type",
			schema: map[string]any{"items": map[string]any{"type": "int"}},
			want:   "missing",
		},
		{
			name:   "non-string type",
			schema: map[string]any{"type": 12},
			want:   "must be a string",
		},
		{
			name:   "wrong field type",
			schema: map[string]any{"type": "set", "min_items": "three"},
			want:   "invalid \"set\" schema",
		},
		{
			name:   "nested build error surfaces",
			schema: map[string]any{"type": "list", "items": map[string]any{"type": "nope"}},
			want:   "unknown schema kind",
		},
		{
			name:   "union without choices",
			schema: map[string]any{"type": "union"},
			want:   "choices",
		},
		{
			name:   "nullable without schema",
			schema: map[string]any{"type": "nullable"},
			want:   "requires",
		},
		{
			name:   "nil node",
			schema: nil,
			want:   "missing",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pydanticcore.BuildSchema(tc.schema, nil)
			if err == nil {
				t.Fatal("BuildSchema succeeded, want a schema error")
			}
			se, ok := err.(*pydanticcore.SchemaError)
			if !ok {
				t.Fatalf("error = %T, want *SchemaError", err)
			}
			if !strings.Contains(se.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", se.Error(), tc.want)
			}
		})
	}
}

func TestBuildSchema_ConfigStrictApplies(t *testing.T) {
	sv := buildSet(t, map[string]any{"type": "int"}, map[string]any{"strict": true})
	if _, err := sv.Validate("3"); err == nil {
		t.Fatal("config strict=true still coerced a string")
	}

	// A node-level strict=false overrides the config default.
	sv = buildSet(t,
		map[string]any{"type": "int", "strict": false},
		map[string]any{"strict": true})
	if _, err := sv.Validate("3"); err != nil {
		t.Fatalf("node strict=false did not override config: %v", err)
	}
}

func TestBuildSchema_ConfigFailFastApplies(t *testing.T) {
	sv := buildSet(t, map[string]any{
		"type":  "list",
		"items": map[string]any{"type": "int"},
	}, map[string]any{"fail_fast": true})

	_, err := sv.Validate([]any{"a", "b"})
	if lines := lineErrors(t, err); len(lines) != 1 {
		t.Fatalf("config fail_fast produced %d errors, want 1", len(lines))
	}
}

func TestBuildSchema_InvalidConfigFails(t *testing.T) {
	_, err := pydanticcore.BuildSchema(
		map[string]any{"type": "int"},
		map[string]any{"strict": "very"})
	if err == nil {
		t.Fatal("invalid config decoded without error")
	}
}
