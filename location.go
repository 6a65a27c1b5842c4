package pydanticcore

import (
	"strconv"
	"strings"
)

// LocItem is one segment of an error location: either a sequence index or a
// mapping key.
type LocItem struct {
	key   string
	index int
	isKey bool
}

// KeyLoc returns a mapping-key location segment.
func KeyLoc(key string) LocItem { return LocItem{key: key, isKey: true} }

// IndexLoc returns a sequence-index location segment.
func IndexLoc(index int) LocItem { return LocItem{index: index} }

// Value returns the segment as a plain value (string key or int index),
// suitable for JSON rendering.
func (l LocItem) Value() any {
	if l.isKey {
		return l.key
	}
	return l.index
}

func (l LocItem) String() string {
	if l.isKey {
		return l.key
	}
	return strconv.Itoa(l.index)
}

// Location is the path from the outermost container to a failing value,
// outermost segment first.
type Location []LocItem

// withOuter returns a new location with item prepended. The receiver is not
// modified; errors share location tails as they bubble outward.
func (l Location) withOuter(item LocItem) Location {
	out := make(Location, 0, len(l)+1)
	out = append(out, item)
	out = append(out, l...)
	return out
}

func (l Location) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, len(l))
	for i, item := range l {
		parts[i] = item.String()
	}
	return strings.Join(parts, ".")
}
