package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forgery/internal/leaf"
	"github.com/goliatone/go-forgery/pkg/schema"
)

var (
	// ErrComponentNotFound reports a missing component schema name.
	ErrComponentNotFound = errors.New("openapi: component schema not found")
	// ErrNotObject reports a component that is not an object schema.
	ErrNotObject = errors.New("openapi: schema is not an object")
)

// formatKinds maps OpenAPI string formats onto built-in kinds.
var formatKinds = map[string]string{
	"email":     "email",
	"uuid":      "uuid",
	"date":      "date",
	"date-time": "datetime",
	"uri":       "url",
	"url":       "url",
	"hostname":  "domain_name",
	"ipv4":      "ipv4",
	"ipv6":      "ipv6",
}

// SchemaFromData loads an OpenAPI document and derives a generation schema
// from the named component under components.schemas.
func SchemaFromData(data []byte, component string) (schema.Schema, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return SchemaFromComponent(doc, component)
}

// SchemaFromComponent derives a generation schema from one named component
// schema of a parsed document.
func SchemaFromComponent(doc *openapi3.T, component string) (schema.Schema, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	return FromSchema(ref)
}

// FromSchema derives a generation schema from an object schema: one field
// specification per property.
func FromSchema(ref *openapi3.SchemaRef) (schema.Schema, error) {
	src := deref(ref)
	if src == nil || !typeIs(src, "object") || len(src.Properties) == 0 {
		return nil, ErrNotObject
	}

	out := make(schema.Schema, len(src.Properties))
	for name, property := range src.Properties {
		spec, err := fieldSpecFor(name, deref(property))
		if err != nil {
			return nil, err
		}
		out[name] = spec
	}
	return out, nil
}

func fieldSpecFor(name string, src *openapi3.Schema) (schema.FieldSpec, error) {
	if src == nil {
		return schema.FieldSpec{}, fmt.Errorf("field %q: %w: unresolved schema", name, schema.ErrInvalidSpec)
	}

	if len(src.Enum) > 0 {
		options := make([]string, 0, len(src.Enum))
		for _, v := range src.Enum {
			options = append(options, fmt.Sprint(v))
		}
		return schema.Choice(options...), nil
	}

	switch {
	case typeIs(src, "string"):
		return stringSpecFor(name, src), nil

	case typeIs(src, "integer"):
		min, max := int64(0), int64(1000)
		if src.Min != nil {
			min = int64(*src.Min)
			if src.ExclusiveMin {
				min++
			}
		}
		if src.Max != nil {
			max = int64(*src.Max)
			if src.ExclusiveMax {
				max--
			}
		}
		return schema.IntRange(min, max), nil

	case typeIs(src, "number"):
		min, max := 0.0, 1.0
		if src.Min != nil {
			min = *src.Min
		}
		if src.Max != nil {
			max = *src.Max
		}
		return schema.FloatRange(min, max), nil

	case typeIs(src, "boolean"):
		return schema.Choice("true", "false"), nil
	}

	return schema.FieldSpec{}, fmt.Errorf("field %q: %w: unsupported schema type %q",
		name, schema.ErrInvalidSpec, typeName(src))
}

func stringSpecFor(name string, src *openapi3.Schema) schema.FieldSpec {
	if kind, ok := formatKinds[src.Format]; ok {
		return schema.Builtin(kind)
	}
	if src.MinLength != 0 || src.MaxLength != nil {
		min := int(src.MinLength)
		max := min + leaf.DefaultTextMaxChars
		if src.MaxLength != nil {
			max = int(*src.MaxLength)
		}
		return schema.TextRange(min, max)
	}
	// A property named after a built-in kind generates that kind, so an
	// unannotated "name", "city" or "phone" still produces realistic data.
	if schema.IsBuiltinKind(name) {
		return schema.Builtin(name)
	}
	return schema.Builtin("sentence")
}

func deref(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func typeIs(src *openapi3.Schema, want string) bool {
	return src.Type != nil && src.Type.Is(want)
}

func typeName(src *openapi3.Schema) string {
	if src.Type == nil {
		return ""
	}
	values := src.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
