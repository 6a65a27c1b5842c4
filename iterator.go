package pydanticcore

// calculateOutputInitCapacity picks an initial output capacity: the smaller of
// the iterator size and the max output length, or 0 when the size is unknown.
// Both arguments use -1 for "unknown"/"unset".
func calculateOutputInitCapacity(iteratorSize, maxLength int) int {
	switch {
	case iteratorSize < 0:
		return 0
	case maxLength < 0:
		return iteratorSize
	case maxLength < iteratorSize:
		return maxLength
	default:
		return iteratorSize
	}
}

// validateInfallibleIterator applies items across every element of a
// materialized sequence: each element is validated, tagged with its index,
// routed through checks, and accepted values are written into output. The
// driver is generic over the output container via the injected write and
// length callbacks, so one loop serves every container-shaped validator.
func validateInfallibleIterator[O any](
	input any,
	extra *Extra,
	defs definitions,
	guard recursionGuard,
	checks *iterableChecks,
	elements []any,
	items validator,
	output O,
	write func(O, any) error,
	length func(O) int,
) error {
	for index, element := range elements {
		value, err := items.validate(element, extra, defs, guard)
		if ve, ok := AsValidationError(err); ok {
			err = ve.withOuterLoc(IndexLoc(index))
		}
		value, accepted, err := checks.filterValidationResult(value, err, input)
		if err != nil {
			return err
		}
		if accepted {
			if err := write(output, value); err != nil {
				return err
			}
			if err := checks.checkOutputLength(length(output), input); err != nil {
				return err
			}
		}
	}
	return checks.finish(input)
}

// validateFallibleIterator is validateInfallibleIterator over a stream whose
// steps can themselves fail. A stream-level failure is structural: it aborts
// immediately, bypassing fail-fast suppression, and replaces the whole
// outcome for this container.
func validateFallibleIterator[O any](
	input any,
	extra *Extra,
	defs definitions,
	guard recursionGuard,
	checks *iterableChecks,
	stream Stream,
	items validator,
	output O,
	write func(O, any) error,
	length func(O) int,
) error {
	index := 0
	for element, streamErr := range stream {
		if streamErr != nil {
			return &IterationError{Err: streamErr}
		}
		value, err := items.validate(element, extra, defs, guard)
		if ve, ok := AsValidationError(err); ok {
			err = ve.withOuterLoc(IndexLoc(index))
		}
		value, accepted, err := checks.filterValidationResult(value, err, input)
		if err != nil {
			return err
		}
		if accepted {
			if err := write(output, value); err != nil {
				return err
			}
			if err := checks.checkOutputLength(length(output), input); err != nil {
				return err
			}
		}
		index++
	}
	return checks.finish(input)
}
