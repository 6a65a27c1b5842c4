package pydanticcore_test

import (
	"sync"
	"testing"

	pydanticcore "github.com/AlexWaygood/pydantic-core"
)

// treeSchema is a recursive union: an int, or a list of trees.
func treeSchema() map[string]any {
	return map[string]any{
		"type": "definitions",
		"definitions": []any{
			map[string]any{
				"type": "union",
				"choices": []any{
					map[string]any{"type": "int"},
					map[string]any{
						"type":  "list",
						"items": map[string]any{"type": "definition-ref", "schema_ref": "tree"},
					},
				},
				"ref": "tree",
			},
		},
		"schema": map[string]any{"type": "definition-ref", "schema_ref": "tree"},
	}
}

func TestDefinitionRef_RecursiveSchemaValidates(t *testing.T) {
	sv := buildSet(t, treeSchema(), nil)

	out, err := sv.Validate([]any{1, []any{"2", 3}, []any{[]any{4}}})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	top, ok := out.([]any)
	if !ok || len(top) != 3 {
		t.Fatalf("output = %v, want a 3-element list", out)
	}
	inner, ok := top[1].([]any)
	if !ok || inner[0] != int64(2) {
		t.Fatalf("nested output = %v, want coerced ints", top[1])
	}
}

func TestDefinitionRef_CyclicInputFailsWithRecursionLoop(t *testing.T) {
	sv := buildSet(t, treeSchema(), nil)

	cycle := []any{int64(1), nil}
	cycle[1] = cycle

	_, err := sv.Validate(cycle)
	lines := lineErrors(t, err)
	if len(lines) == 0 {
		t.Fatal("expected a recursion_loop error")
	}
	found := false
	for _, line := range lines {
		if line.Kind == pydanticcore.KindRecursionLoop {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %+v, want a recursion_loop among them", lines)
	}
}

func TestDefinitionRef_SharedNonCyclicInputIsFine(t *testing.T) {
	sv := buildSet(t, treeSchema(), nil)

	// The same sub-list appears twice; sharing is not a cycle, only
	// re-entrance on the active path is.
	shared := []any{1, 2}
	if _, err := sv.Validate([]any{shared, shared}); err != nil {
		t.Fatalf("shared sub-list rejected: %v", err)
	}
}

func TestDefinitionRef_UnresolvedFailsBuild(t *testing.T) {
	_, err := pydanticcore.BuildSchema(map[string]any{
		"type":  "list",
		"items": map[string]any{"type": "definition-ref", "schema_ref": "missing"},
	}, nil)
	if err == nil {
		t.Fatal("unresolved reference must fail the build")
	}
	if _, ok := err.(*pydanticcore.SchemaError); !ok {
		t.Fatalf("build error = %T, want *SchemaError", err)
	}
}

func TestSchemaValidator_ConcurrentValidate(t *testing.T) {
	sv := buildSet(t, treeSchema(), nil)

	input := []any{1, []any{2, []any{3, 4}}, 5}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := sv.Validate(input); err != nil {
					t.Errorf("concurrent Validate failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
