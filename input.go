package pydanticcore

import (
	"fmt"
	"iter"
)

// Stream is a fallible element stream: each step yields either an element or
// an error from the underlying representation (for example a malformed JSON
// array being decoded incrementally). Streams are accepted as lax input by
// container validators and drive the fallible iteration path.
type Stream = iter.Seq2[any, error]

// typeName returns the dispatch tag of a host value, used in diagnostics.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "str"
	case int, int32, int64:
		return "int"
	case float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	case *Set:
		return "set"
	case Stream:
		return "stream"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// sequenceView is a generic sequence view of a host value: either a
// materialized slice with a known length, or a fallible stream whose length is
// unknown until exhausted.
type sequenceView struct {
	items  []any
	stream Stream
}

// length returns the element count, or -1 when the view is a stream.
func (v sequenceView) length() int {
	if v.stream != nil {
		return -1
	}
	return len(v.items)
}

// strictSet yields a sequence view only when the input is exactly a *Set.
func strictSet(input any) (sequenceView, error) {
	if s, ok := input.(*Set); ok {
		return sequenceView{items: s.Items()}, nil
	}
	return sequenceView{}, newLineError(KindSetType, input, nil)
}

// laxSet additionally accepts slices and fallible streams as set-like input.
func laxSet(input any) (sequenceView, error) {
	switch t := input.(type) {
	case *Set:
		return sequenceView{items: t.Items()}, nil
	case []any:
		return sequenceView{items: t}, nil
	case Stream:
		return sequenceView{stream: t}, nil
	}
	return sequenceView{}, newLineError(KindSetType, input, nil)
}

// strictList yields a sequence view only when the input is exactly a slice.
func strictList(input any) (sequenceView, error) {
	if l, ok := input.([]any); ok {
		return sequenceView{items: l}, nil
	}
	return sequenceView{}, newLineError(KindListType, input, nil)
}

// laxList additionally accepts sets and fallible streams as list-like input.
func laxList(input any) (sequenceView, error) {
	switch t := input.(type) {
	case []any:
		return sequenceView{items: t}, nil
	case *Set:
		return sequenceView{items: t.Items()}, nil
	case Stream:
		return sequenceView{stream: t}, nil
	}
	return sequenceView{}, newLineError(KindListType, input, nil)
}

// strictDict yields the mapping when the input is exactly a string-keyed map.
func strictDict(input any) (map[string]any, error) {
	if m, ok := input.(map[string]any); ok {
		return m, nil
	}
	return nil, newLineError(KindDictType, input, nil)
}

// laxDict matches strictDict: there is no coercible dict-like host shape.
func laxDict(input any) (map[string]any, error) {
	return strictDict(input)
}
