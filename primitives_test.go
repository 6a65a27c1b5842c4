package pydanticcore_test

import (
	"testing"

	pydanticcore "github.com/AlexWaygood/pydantic-core"
)

func scalar(t *testing.T, kind string) *pydanticcore.SchemaValidator {
	t.Helper()
	return buildSet(t, map[string]any{"type": kind}, nil)
}

func TestInt_LaxCoercions(t *testing.T) {
	sv := scalar(t, "int")
	cases := []struct {
		name  string
		input any
		want  any
		kind  string // expected error kind, empty for success
	}{
		{"int", 7, int64(7), ""},
		{"numeric string", " 42 ", int64(42), ""},
		{"whole float", 5.0, int64(5), ""},
		{"fractional float", 5.5, nil, pydanticcore.KindIntFromFloat},
		{"garbage string", "abc", nil, pydanticcore.KindIntParsing},
		{"bool", true, nil, pydanticcore.KindIntType},
		{"nil", nil, nil, pydanticcore.KindIntType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sv.Validate(tc.input)
			if tc.kind == "" {
				if err != nil {
					t.Fatalf("Validate(%v) failed: %v", tc.input, err)
				}
				if got != tc.want {
					t.Fatalf("Validate(%v) = %v, want %v", tc.input, got, tc.want)
				}
				return
			}
			lines := lineErrors(t, err)
			if len(lines) != 1 || lines[0].Kind != tc.kind {
				t.Fatalf("Validate(%v) errors = %+v, want one %s", tc.input, lines, tc.kind)
			}
		})
	}
}

func TestInt_StrictRejectsCoercibles(t *testing.T) {
	sv := scalar(t, "int")
	for _, input := range []any{"42", 5.0, true} {
		if _, err := sv.ValidateStrict(input); err == nil {
			t.Fatalf("ValidateStrict(%v) succeeded, want int_type", input)
		}
	}
	got, err := sv.ValidateStrict(42)
	if err != nil || got != int64(42) {
		t.Fatalf("ValidateStrict(42) = %v, %v; want 42, nil", got, err)
	}
}

func TestBool_LaxCoercions(t *testing.T) {
	sv := scalar(t, "bool")
	truthy := []any{true, "true", "YES", "on", "1", 1, 1.0}
	for _, input := range truthy {
		got, err := sv.Validate(input)
		if err != nil || got != true {
			t.Fatalf("Validate(%v) = %v, %v; want true, nil", input, got, err)
		}
	}
	falsy := []any{false, "false", "No", "off", "0", 0, 0.0}
	for _, input := range falsy {
		got, err := sv.Validate(input)
		if err != nil || got != false {
			t.Fatalf("Validate(%v) = %v, %v; want false, nil", input, got, err)
		}
	}

	_, err := sv.Validate("maybe")
	lines := lineErrors(t, err)
	if len(lines) != 1 || lines[0].Kind != pydanticcore.KindBoolParsing {
		t.Fatalf("errors = %+v, want one bool_parsing", lines)
	}
	_, err = sv.Validate(2)
	lines = lineErrors(t, err)
	if len(lines) != 1 || lines[0].Kind != pydanticcore.KindBoolParsing {
		t.Fatalf("errors = %+v, want one bool_parsing", lines)
	}
}

func TestStr_LaxCoercesNumbers(t *testing.T) {
	sv := scalar(t, "str")
	cases := map[any]string{
		"plain": "plain",
		12:      "12",
		1.25:    "1.25",
	}
	for input, want := range cases {
		got, err := sv.Validate(input)
		if err != nil || got != want {
			t.Fatalf("Validate(%v) = %v, %v; want %q, nil", input, got, err, want)
		}
	}
	if _, err := sv.Validate(true); err == nil {
		t.Fatal("Validate(true) succeeded, want string_type")
	}
	if _, err := sv.ValidateStrict(12); err == nil {
		t.Fatal("ValidateStrict(12) succeeded, want string_type")
	}
}

func TestNone_RequiresNil(t *testing.T) {
	sv := scalar(t, "none")
	if got, err := sv.Validate(nil); err != nil || got != nil {
		t.Fatalf("Validate(nil) = %v, %v; want nil, nil", got, err)
	}
	_, err := sv.Validate(0)
	lines := lineErrors(t, err)
	if len(lines) != 1 || lines[0].Kind != pydanticcore.KindNoneRequired {
		t.Fatalf("errors = %+v, want one none_required", lines)
	}
}

func TestAny_PassesEverythingThrough(t *testing.T) {
	sv := scalar(t, "any")
	for _, input := range []any{nil, true, "x", 3, []any{1}, map[string]any{"k": 1}} {
		got, err := sv.ValidateStrict(input)
		if err != nil {
			t.Fatalf("ValidateStrict(%v) failed: %v", input, err)
		}
		// The value must come back unchanged, not coerced.
		switch input.(type) {
		case []any, map[string]any:
		default:
			if got != input {
				t.Fatalf("ValidateStrict(%v) = %v, want unchanged input", input, got)
			}
		}
	}
}

func TestFloat_Coercions(t *testing.T) {
	sv := scalar(t, "float")
	got, err := sv.Validate("2.5")
	if err != nil || got != 2.5 {
		t.Fatalf("Validate(\"2.5\") = %v, %v; want 2.5, nil", got, err)
	}
	got, err = sv.Validate(3)
	if err != nil || got != 3.0 {
		t.Fatalf("Validate(3) = %v, %v; want 3.0, nil", got, err)
	}
	if _, err := sv.Validate(true); err == nil {
		t.Fatal("Validate(true) succeeded, want float_type")
	}
	if _, err := sv.ValidateStrict(3); err == nil {
		t.Fatal("ValidateStrict(3) succeeded, want float_type")
	}
	if got, err := sv.ValidateStrict(3.5); err != nil || got != 3.5 {
		t.Fatalf("ValidateStrict(3.5) = %v, %v; want 3.5, nil", got, err)
	}
}
