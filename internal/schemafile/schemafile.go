// Package schemafile loads schema and config maps from YAML or JSON files for
// the CLI.
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads path and decodes it into a schema map. YAML is the default;
// .json files work too since YAML is a superset.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Base(path))
}

// Decode unmarshals one schema document. The name only labels errors.
func Decode(data []byte, name string) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing %s: schema document must be a mapping", name)
	}
	return m, nil
}

// IsYAML reports whether path looks like a YAML document by extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
