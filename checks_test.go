package pydanticcore

import "testing"

func TestCalculateOutputInitCapacity(t *testing.T) {
	cases := []struct {
		size, max, want int
	}{
		{-1, -1, 0},
		{-1, 10, 0},
		{5, -1, 5},
		{5, 3, 3},
		{3, 5, 3},
	}
	for _, tc := range cases {
		if got := calculateOutputInitCapacity(tc.size, tc.max); got != tc.want {
			t.Fatalf("calculateOutputInitCapacity(%d, %d) = %d, want %d", tc.size, tc.max, got, tc.want)
		}
	}
}

func TestIterableChecks_OmissionCountsInputNotOutput(t *testing.T) {
	checks := newIterableChecks(false, lengthConstraints{minLength: 1, maxLength: -1, maxInputLength: -1}, "Set")

	for i := 0; i < 3; i++ {
		_, accepted, err := checks.filterValidationResult(nil, ErrOmit, nil)
		if err != nil {
			t.Fatalf("omission propagated an error: %v", err)
		}
		if accepted {
			t.Fatal("omitted element was accepted")
		}
	}
	err := checks.finish(nil)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("finish = %v, want too_short", err)
	}
	lines := ve.Errors()
	if len(lines) != 1 || lines[0].Kind != KindTooShort {
		t.Fatalf("finish errors = %+v, want one too_short", lines)
	}
}

func TestIterableChecks_MaxInputLengthIsIncremental(t *testing.T) {
	checks := newIterableChecks(false, lengthConstraints{maxLength: -1, maxInputLength: 2}, "List")

	for i := 0; i < 2; i++ {
		if _, _, err := checks.filterValidationResult(i, nil, nil); err != nil {
			t.Fatalf("element %d failed early: %v", i, err)
		}
	}
	_, _, err := checks.filterValidationResult(2, nil, nil)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("third element error = %v, want too_long", err)
	}
	if ve.Errors()[0].Kind != KindTooLong {
		t.Fatalf("kind = %q, want too_long", ve.Errors()[0].Kind)
	}
}

func TestIterableChecks_ErrorsCountTowardOutputBound(t *testing.T) {
	// Two recorded failures plus one written element exceed max_length 2:
	// errors stand in for the elements they would have produced.
	checks := newIterableChecks(false, lengthConstraints{maxLength: 2, maxInputLength: -1}, "List")

	bad := newLineError(KindIntType, nil, nil)
	for i := 0; i < 2; i++ {
		if _, _, err := checks.filterValidationResult(nil, bad, nil); err != nil {
			t.Fatalf("collect-all propagated element failure: %v", err)
		}
		bad = newLineError(KindIntType, nil, nil)
	}
	if err := checks.checkOutputLength(1, nil); err != nil {
		t.Fatalf("collect-all aborted on output bound: %v", err)
	}
	err := checks.finish(nil)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("finish = %v, want aggregate", err)
	}
	tooLong := 0
	for _, line := range ve.Errors() {
		if line.Kind == KindTooLong {
			tooLong++
		}
	}
	if tooLong != 1 {
		t.Fatalf("recorded %d too_long lines, want exactly 1: %+v", tooLong, ve.Errors())
	}
}

func TestIterableChecks_FailFastPropagatesFirstFailure(t *testing.T) {
	checks := newIterableChecks(true, lengthConstraints{maxLength: -1, maxInputLength: -1}, "List")

	bad := newLineError(KindIntType, nil, nil)
	_, _, err := checks.filterValidationResult(nil, bad, nil)
	if err == nil {
		t.Fatal("fail-fast did not propagate the element failure")
	}
}

func TestIterableChecks_AddError(t *testing.T) {
	checks := newIterableChecks(false, lengthConstraints{maxLength: -1, maxInputLength: -1}, "List")
	checks.addError(LineError{Kind: KindListType})

	err := checks.finish(nil)
	ve, ok := AsValidationError(err)
	if !ok || len(ve.Errors()) != 1 {
		t.Fatalf("finish = %v, want the injected error", err)
	}
}

func TestRecursionGuard_EnterLeave(t *testing.T) {
	guard := make(recursionGuard)
	key := recursionKey{slot: 1, input: 42}

	if !guard.enter(key) {
		t.Fatal("first enter refused")
	}
	if guard.enter(key) {
		t.Fatal("re-entrance allowed while active")
	}
	guard.leave(key)
	if !guard.enter(key) {
		t.Fatal("enter refused after leave")
	}
}

func TestInputIdentity_ScalarsHaveNone(t *testing.T) {
	for _, v := range []any{nil, 1, "x", true, 2.5} {
		if _, ok := inputIdentity(v); ok {
			t.Fatalf("inputIdentity(%v) returned an identity for a scalar", v)
		}
	}
	l := []any{1}
	id1, ok1 := inputIdentity(l)
	id2, ok2 := inputIdentity(l)
	if !ok1 || !ok2 || id1 != id2 {
		t.Fatal("slice identity is not stable")
	}
}

func TestLocation_PrependAndString(t *testing.T) {
	loc := Location{KeyLoc("b")}
	outer := loc.withOuter(IndexLoc(3)).withOuter(KeyLoc("a"))
	if got := outer.String(); got != "a.3.b" {
		t.Fatalf("location = %q, want %q", got, "a.3.b")
	}
	// The original must be untouched.
	if got := loc.String(); got != "b" {
		t.Fatalf("inner location mutated to %q", got)
	}
}
