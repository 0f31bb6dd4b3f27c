package schema

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the closed set of generated value variants.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueInt    ValueKind = "int"
	ValueFloat  ValueKind = "float"
	ValueRGB    ValueKind = "rgb"
)

// Value is one generated result. The variant set is deliberately narrow so
// embedding layers have a small, total mapping to their own types. Only the
// field selected by Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	RGB   [3]uint8
}

// StringValue wraps a text result.
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// IntValue wraps a 64-bit signed integer result.
func IntValue(i int64) Value { return Value{Kind: ValueInt, Int: i} }

// FloatValue wraps a 64-bit float result.
func FloatValue(f float64) Value { return Value{Kind: ValueFloat, Float: f} }

// RGBValue wraps an RGB byte triple.
func RGBValue(r, g, b uint8) Value { return Value{Kind: ValueRGB, RGB: [3]uint8{r, g, b}} }

// MarshalJSON encodes the selected variant as its native JSON type; RGB
// triples encode as a three-element array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueInt:
		return json.Marshal(v.Int)
	case ValueFloat:
		return json.Marshal(v.Float)
	case ValueRGB:
		return json.Marshal(v.RGB[:])
	default:
		return json.Marshal(v.Str)
	}
}

// String renders the value for display regardless of variant.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return fmt.Sprintf("%d", v.Int)
	case ValueFloat:
		return fmt.Sprintf("%g", v.Float)
	case ValueRGB:
		return fmt.Sprintf("(%d, %d, %d)", v.RGB[0], v.RGB[1], v.RGB[2])
	default:
		return v.Str
	}
}
