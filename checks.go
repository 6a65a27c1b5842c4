package pydanticcore

import "errors"

// lengthConstraints bounds one container validation. minLength and maxLength
// apply to the produced output; maxInputLength bounds the raw input element
// count before validation. -1 means unset.
type lengthConstraints struct {
	minLength      int
	maxLength      int
	maxInputLength int
}

// iterableChecks is the per-container validation bookkeeping shared by every
// container-shaped validator: it routes per-element outcomes, enforces length
// constraints incrementally, and accumulates the container's line errors.
//
// One instance is created at the start of one container validation and
// consumed by finish at its end; it is never shared across containers or
// calls.
type iterableChecks struct {
	inputLength  int
	outputLength int
	failFast     bool
	constraints  lengthConstraints
	fieldType    string
	errors       []LineError
	// tooLong guards against recording the output-bound violation more than
	// once while collect-all iteration continues past it.
	tooLong bool
}

func newIterableChecks(failFast bool, constraints lengthConstraints, fieldType string) *iterableChecks {
	return &iterableChecks{
		failFast:    failFast,
		constraints: constraints,
		fieldType:   fieldType,
	}
}

// addError records an error found outside the per-element loop.
func (c *iterableChecks) addError(le LineError) {
	c.errors = append(c.errors, le)
}

// filterValidationResult routes the outcome of validating one element.
// It returns (value, true, nil) when the element contributes to the output,
// (nil, false, nil) when it is dropped (recoverable failure in collect-all
// mode, or an explicit omission), and a non-nil error when validation of the
// whole container must stop.
func (c *iterableChecks) filterValidationResult(value any, err error, input any) (any, bool, error) {
	var out any
	ok := false
	switch {
	case err == nil:
		out, ok = value, true
	case errors.Is(err, ErrOmit):
		// Silently dropped: no error recorded, no output contributed.
	default:
		ve, isVal := AsValidationError(err)
		if !isVal || c.failFast {
			return nil, false, err
		}
		c.errors = append(c.errors, ve.Errors()...)
	}
	c.inputLength++
	if err := c.checkMaxLengths(input); err != nil {
		return nil, false, err
	}
	return out, ok, nil
}

// checkOutputLength re-validates the produced-output length using the true
// container size after a successful write.
func (c *iterableChecks) checkOutputLength(outputLength int, input any) error {
	c.outputLength = outputLength
	return c.checkOutputBound(input)
}

// finish closes out the container: it appends the too-short error if the
// final output is under min length, then returns the aggregate if any errors
// were recorded.
func (c *iterableChecks) finish(input any) error {
	if c.constraints.minLength > c.outputLength {
		c.errors = append(c.errors, LineError{
			Kind:  KindTooShort,
			Input: input,
			Context: map[string]any{
				"field_type":    c.fieldType,
				"min_length":    c.constraints.minLength,
				"actual_length": c.outputLength,
			},
		})
	}
	if len(c.errors) == 0 {
		return nil
	}
	lines := c.errors
	c.errors = nil
	return newValidationError(lines)
}

// checkMaxLengths runs the incremental max-length checks after each element.
// A raw-input bound violation always terminates iteration; a produced-output
// bound violation terminates only in fail-fast mode, otherwise it is recorded
// once and collection continues.
func (c *iterableChecks) checkMaxLengths(input any) error {
	if max := c.constraints.maxInputLength; max >= 0 && c.inputLength > max {
		return newLineError(KindTooLong, input, map[string]any{
			"field_type":    c.fieldType,
			"max_length":    max,
			"actual_length": c.inputLength,
		})
	}
	return c.checkOutputBound(input)
}

func (c *iterableChecks) checkOutputBound(input any) error {
	max := c.constraints.maxLength
	if max < 0 || c.tooLong {
		return nil
	}
	// Recorded errors count toward the bound: each represents an element that
	// would have been written.
	current := c.outputLength + len(c.errors)
	if current <= max {
		return nil
	}
	le := LineError{
		Kind:  KindTooLong,
		Input: input,
		Context: map[string]any{
			"field_type":    c.fieldType,
			"max_length":    max,
			"actual_length": current,
		},
	}
	if c.failFast {
		return newValidationError([]LineError{le})
	}
	c.tooLong = true
	c.errors = append(c.errors, le)
	return nil
}
