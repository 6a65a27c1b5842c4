package pydanticcore

import "reflect"

// recursionKey identifies one (validator, input-object) combination currently
// being validated on the active call path.
type recursionKey struct {
	slot  int
	input uintptr
}

// recursionGuard tracks in-progress (validator, input) pairs for one top-level
// validate call. It is allocated fresh per call and never shared across calls,
// so no locking is needed.
//
// Only reference validators consult the guard: they are the sole way a schema
// can recurse into itself, and skipping the guard elsewhere keeps the hot path
// free of bookkeeping.
type recursionGuard map[recursionKey]struct{}

// enter records the pair as active. It returns false if the pair is already on
// the call path, meaning the input cycles back into itself under the same
// validator and further recursion would never terminate.
func (g recursionGuard) enter(key recursionKey) bool {
	if _, active := g[key]; active {
		return false
	}
	g[key] = struct{}{}
	return true
}

// leave releases the pair. Every successful enter must be paired with a leave
// on all exit paths, success or failure.
func (g recursionGuard) leave(key recursionKey) {
	delete(g, key)
}

// inputIdentity returns a stable identity for container inputs. Scalars cannot
// participate in cycles and report ok=false, letting callers skip the guard.
func inputIdentity(v any) (uintptr, bool) {
	switch v.(type) {
	case []any, map[string]any, *Set:
		return reflect.ValueOf(v).Pointer(), true
	}
	return 0, false
}
