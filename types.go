package pydanticcore

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config carries build-time settings that apply schema-wide. It is decoded
// from the raw config map handed to BuildSchema; schema nodes may override
// Strict and FailFast per node.
type Config struct {
	// Title names the schema in top-level error summaries. Defaults to the
	// root validator's name.
	Title string `mapstructure:"title"`
	// Strict makes every validator reject coercible-but-inexact input unless
	// a node overrides it.
	Strict bool `mapstructure:"strict"`
	// FailFast stops container validation at the first element failure
	// instead of collecting every failure.
	FailFast bool `mapstructure:"fail_fast"`
	// MaxInputLength bounds the raw element count of any container input,
	// independent of per-node max_items. Zero means unbounded. It belongs to
	// the caller context, not the schema.
	MaxInputLength int `mapstructure:"max_input_length"`
}

// decodeConfig builds a Config from a raw config map. A nil map yields the
// zero Config.
func decodeConfig(raw map[string]any) (*Config, error) {
	cfg := &Config{}
	if raw == nil {
		return cfg, nil
	}
	if err := mapstructure.Decode(raw, cfg); err != nil {
		return nil, &SchemaError{Msg: fmt.Sprintf("invalid config: %v", err)}
	}
	return cfg, nil
}

// Extra is the per-call context threaded through every validator in one
// validate call.
type Extra struct {
	// Strict forces strict validation for the whole call regardless of how
	// individual nodes were built.
	Strict bool
	// Context is an opaque caller value, available to validator kinds that
	// consult external state.
	Context any
}
