package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadYAML parses a YAML document whose top level maps field names to loose
// specifications and returns the typed Schema. The document uses the same DSL
// ParseField accepts:
//
//	id: uuid
//	age: [int, 18, 65]
//	status: [choice, [active, inactive]]
//
// providers may be nil when the document references no custom providers.
func LoadYAML(data []byte, providers ProviderSet) (Schema, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: parse yaml document: %w", err)
	}
	return Parse(raw, providers)
}
