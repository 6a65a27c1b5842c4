package pydanticcore

import (
	"fmt"
	"reflect"
	"strings"
)

// Set is an insertion-ordered set of host values. Go has no native set type,
// so coerced set outputs (and strict set inputs) use this representation.
//
// Scalar members are deduplicated by value; container members (maps, slices,
// nested sets) are deduplicated by identity, since they are not comparable.
type Set struct {
	index map[any]int
	items []any
}

// NewSet returns a set containing the given items, deduplicated, preserving
// first-seen order.
func NewSet(items ...any) *Set {
	s := &Set{index: make(map[any]int, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// refKey stands in for a non-comparable member in the dedup index.
type refKey uintptr

func memberKey(v any) any {
	switch t := v.(type) {
	case nil, bool, string, int64, float64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Func:
			return refKey(rv.Pointer())
		}
		return t
	}
}

// Add inserts v, reporting whether it was newly added.
func (s *Set) Add(v any) bool {
	k := memberKey(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is a member.
func (s *Set) Contains(v any) bool {
	_, ok := s.index[memberKey(v)]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.items) }

// Items returns the members in insertion order. The slice is shared with the
// set; callers must not modify it.
func (s *Set) Items() []any { return s.items }

// Equal reports whether both sets hold the same members, ignoring order.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.items {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte('}')
	return b.String()
}
