package pydanticcore

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// validator is the contract every schema kind satisfies once built. Built
// validators are immutable and safely shared across concurrent validate
// calls; all mutable state lives in the per-call guard and checks objects.
type validator interface {
	// validate performs lax-mode validation: coercible representations are
	// accepted and converted, unless the node or the call forces strictness.
	validate(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error)
	// validateStrict accepts only the exact target shape.
	validateStrict(input any, extra *Extra, defs definitions, guard recursionGuard) (any, error)
	// getName is a stable diagnostic identifier, composing the kind tag with
	// nested validator names (for example "set-int").
	getName() string
}

// definitions is the slot table resolving schema references to built
// validators. It is read-only after the build phase.
type definitions []validator

// SchemaError reports a malformed schema at build time. A schema that fails
// to build can never reach validation.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return "schema error: " + e.Msg }

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// buildContext threads shared build state: the config and the slot table
// under construction. Forward and self references reserve a slot before the
// target is built, so recursive schemas never recurse at build time.
type buildContext struct {
	cfg       *Config
	slots     []validator
	slotNames map[string]int
}

func newBuildContext(cfg *Config) *buildContext {
	return &buildContext{cfg: cfg, slotNames: map[string]int{}}
}

// slotFor returns the slot index for a reference name, reserving an empty
// slot on first sight.
func (bc *buildContext) slotFor(name string) int {
	if slot, ok := bc.slotNames[name]; ok {
		return slot
	}
	slot := len(bc.slots)
	bc.slots = append(bc.slots, nil)
	bc.slotNames[name] = slot
	return slot
}

// fillSlot stores a built validator under its reference name.
func (bc *buildContext) fillSlot(name string, v validator) {
	bc.slots[bc.slotFor(name)] = v
}

// finish freezes the slot table. Any slot reserved by a reference but never
// filled is an unresolved reference and fails the build.
func (bc *buildContext) finish() (definitions, error) {
	for name, slot := range bc.slotNames {
		if bc.slots[slot] == nil {
			return nil, schemaErrorf("definition %q was referenced but never defined", name)
		}
	}
	return definitions(bc.slots), nil
}

// decodeFields decodes the kind-specific keys of a schema node into a typed
// field struct. Unknown keys (including "type") are ignored; a key holding
// the wrong type fails the build.
func decodeFields(schema map[string]any, kind string, out any) error {
	if err := mapstructure.Decode(schema, out); err != nil {
		return schemaErrorf("invalid %q schema: %v", kind, err)
	}
	return nil
}

// isStrict resolves a node's strictness: the node's own flag wins, otherwise
// the config default applies.
func isStrict(nodeStrict *bool, cfg *Config) bool {
	if nodeStrict != nil {
		return *nodeStrict
	}
	return cfg.Strict
}

// isFailFast resolves a node's fail-fast policy the same way.
func isFailFast(nodeFailFast *bool, cfg *Config) bool {
	if nodeFailFast != nil {
		return *nodeFailFast
	}
	return cfg.FailFast
}

// maxInputLength converts the config bound to the -1-unset convention used by
// length constraints.
func maxInputLength(cfg *Config) int {
	if cfg.MaxInputLength > 0 {
		return cfg.MaxInputLength
	}
	return -1
}

// orUnset converts an optional schema bound to the -1-unset convention.
func orUnset(n *int) int {
	if n == nil {
		return -1
	}
	return *n
}

// buildValidator constructs the validator for one schema node, recursing into
// nested schemas through the shared context. The kind set is closed: an
// unknown kind fails the build.
func buildValidator(schema any, bc *buildContext) (validator, error) {
	node, ok := schema.(map[string]any)
	if !ok {
		return nil, schemaErrorf("schema node must be a mapping, got %s", typeName(schema))
	}
	rawKind, ok := node["type"]
	if !ok {
		return nil, schemaErrorf("schema node is missing the %q key", "type")
	}
	kind, ok := rawKind.(string)
	if !ok {
		return nil, schemaErrorf("schema %q key must be a string, got %s", "type", typeName(rawKind))
	}

	var (
		v   validator
		err error
	)
	switch kind {
	case "any":
		v, err = buildAny(node, bc)
	case "none":
		v, err = buildNone(node, bc)
	case "bool":
		v, err = buildBool(node, bc)
	case "int":
		v, err = buildInt(node, bc)
	case "float":
		v, err = buildFloat(node, bc)
	case "str":
		v, err = buildStr(node, bc)
	case "set":
		v, err = buildSet(node, bc)
	case "list":
		v, err = buildList(node, bc)
	case "dict":
		v, err = buildDict(node, bc)
	case "nullable":
		v, err = buildNullable(node, bc)
	case "default":
		v, err = buildDefault(node, bc)
	case "union":
		v, err = buildUnion(node, bc)
	case "definitions":
		v, err = buildDefinitions(node, bc)
	case "definition-ref":
		v, err = buildDefinitionRef(node, bc)
	default:
		return nil, schemaErrorf("unknown schema kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	// A node carrying a "ref" key registers itself for definition-ref lookup.
	if rawRef, ok := node["ref"]; ok {
		ref, ok := rawRef.(string)
		if !ok {
			return nil, schemaErrorf("schema %q key must be a string, got %s", "ref", typeName(rawRef))
		}
		bc.fillSlot(ref, v)
	}
	return v, nil
}
