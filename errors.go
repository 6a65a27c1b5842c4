package pydanticcore

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Error kinds (exported consts for IDE completion and stable programmatic matching).
const (
	KindJSONInvalid   = "json_invalid"
	KindYAMLInvalid   = "yaml_invalid"
	KindNoneRequired  = "none_required"
	KindBoolType      = "bool_type"
	KindBoolParsing   = "bool_parsing"
	KindIntType       = "int_type"
	KindIntParsing    = "int_parsing"
	KindIntFromFloat  = "int_from_float"
	KindFloatType     = "float_type"
	KindFloatParsing  = "float_parsing"
	KindStringType    = "string_type"
	KindListType      = "list_type"
	KindSetType       = "set_type"
	KindDictType      = "dict_type"
	KindDictKeyType   = "dict_key_type"
	KindTooShort      = "too_short"
	KindTooLong       = "too_long"
	KindRecursionLoop = "recursion_loop"
	KindUnionInvalid  = "union_invalid"
)

// messageTemplates maps an error kind to its human-readable message. Segments
// in braces are substituted from the LineError context.
var messageTemplates = map[string]string{
	KindJSONInvalid:   "Invalid JSON: {error}",
	KindYAMLInvalid:   "Invalid YAML: {error}",
	KindNoneRequired:  "Input should be null",
	KindBoolType:      "Input should be a valid boolean",
	KindBoolParsing:   "Input should be a valid boolean, unable to interpret input",
	KindIntType:       "Input should be a valid integer",
	KindIntParsing:    "Input should be a valid integer, unable to parse input as an integer",
	KindIntFromFloat:  "Input should be a valid integer, got a number with a fractional part",
	KindFloatType:     "Input should be a valid number",
	KindFloatParsing:  "Input should be a valid number, unable to parse input as a number",
	KindStringType:    "Input should be a valid string",
	KindListType:      "Input should be a valid list",
	KindSetType:       "Input should be a valid set",
	KindDictType:      "Input should be a valid dictionary",
	KindDictKeyType:   "Keys should be hashable",
	KindTooShort:      "{field_type} should have at least {min_length} items after validation, not {actual_length}",
	KindTooLong:       "{field_type} should have at most {max_length} items after validation, not {actual_length}",
	KindRecursionLoop: "Recursion error - cyclic reference detected",
	KindUnionInvalid:  "Input should match one of the union choices",
}

// ErrOmit signals that a value contributes nothing to its enclosing container
// and should be silently dropped. It is not a validation failure: container
// bookkeeping skips omitted elements without recording an error.
var ErrOmit = errors.New("pydantic-core: value omitted")

// LineError is a single located validation failure.
type LineError struct {
	// Kind is one of the Kind* constants above.
	Kind string
	// Loc is the path from the outermost container to the failing value,
	// outermost segment first.
	Loc Location
	// Context carries kind-specific structured data (for example min_length)
	// used both for message rendering and programmatic inspection.
	Context map[string]any
	// Input is the offending input value, kept for diagnostics.
	Input any
}

// Message renders the human-readable message for this error, substituting
// {placeholder} segments from the context.
func (e LineError) Message() string {
	tmpl, ok := messageTemplates[e.Kind]
	if !ok {
		return e.Kind
	}
	if len(e.Context) == 0 {
		return tmpl
	}
	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		close := strings.IndexByte(rest[open:], '}')
		if close < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		key := rest[open+1 : open+close]
		if v, ok := e.Context[key]; ok {
			fmt.Fprintf(&b, "%v", v)
		} else {
			b.WriteString(rest[open : open+close+1])
		}
		rest = rest[open+close+1:]
	}
}

// ValidationError is an ordered collection of line errors produced by one
// validate call. It implements error with a compact summary.
type ValidationError struct {
	title string
	lines []LineError
}

// newLineError builds a single-line ValidationError, the common failure shape
// inside validators.
func newLineError(kind string, input any, ctx map[string]any) *ValidationError {
	return &ValidationError{lines: []LineError{{Kind: kind, Context: ctx, Input: input}}}
}

// newValidationError wraps pre-built lines. The slice is owned by the result.
func newValidationError(lines []LineError) *ValidationError {
	return &ValidationError{lines: lines}
}

// Errors returns the line errors in the order they were found.
func (e *ValidationError) Errors() []LineError { return e.lines }

// Title reports the name of the validator that produced this error once the
// error has crossed the top-level API boundary.
func (e *ValidationError) Title() string { return e.title }

// Error summarizes the first few line errors.
func (e *ValidationError) Error() string {
	n := len(e.lines)
	if n == 0 {
		return "validation error"
	}
	const maxShown = 3
	b := &strings.Builder{}
	if e.title != "" {
		fmt.Fprintf(b, "%d validation error(s) for %s: ", n, e.title)
	} else {
		fmt.Fprintf(b, "%d validation error(s): ", n)
	}
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		le := e.lines[i]
		if len(le.Loc) == 0 {
			b.WriteString(le.Kind)
		} else {
			fmt.Fprintf(b, "%s at %s", le.Kind, le.Loc)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// withOuterLoc prepends a path segment to every line error, used as errors
// bubble out of a container element.
func (e *ValidationError) withOuterLoc(item LocItem) *ValidationError {
	for i := range e.lines {
		e.lines[i].Loc = e.lines[i].Loc.withOuter(item)
	}
	return e
}

// withTitle stamps the producing validator's name onto the error at the API
// boundary.
func (e *ValidationError) withTitle(title string) *ValidationError {
	e.title = title
	return e
}

// JSON renders the line errors as a JSON array of objects with "type", "loc",
// "msg" and "ctx" fields. The offending input value is deliberately left out:
// it may be unserializable (it can even be cyclic).
func (e *ValidationError) JSON() ([]byte, error) {
	out := make([]map[string]any, len(e.lines))
	for i, line := range e.lines {
		loc := make([]any, len(line.Loc))
		for j, item := range line.Loc {
			loc[j] = item.Value()
		}
		entry := map[string]any{
			"type": line.Kind,
			"loc":  loc,
			"msg":  line.Message(),
		}
		if len(line.Context) > 0 {
			entry["ctx"] = line.Context
		}
		out[i] = entry
	}
	return json.Marshal(out)
}

// AsValidationError extracts a *ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IterationError reports that a host value failed while being iterated (for
// example a streaming array whose underlying representation is malformed).
// It is fatal: it bypasses fail-fast suppression and is never merged into a
// container's line-error aggregate.
type IterationError struct {
	Err error
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("error iterating over input: %v", e.Err)
}

func (e *IterationError) Unwrap() error { return e.Err }
