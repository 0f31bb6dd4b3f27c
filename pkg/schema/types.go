package schema

import "sort"

// Kind discriminates the closed set of field-specification variants. The
// validator and the dispatcher switch over it exhaustively; adding a variant
// means touching both.
type Kind string

const (
	// KindBuiltin references a built-in leaf kind by name ("name", "email").
	KindBuiltin Kind = "builtin"
	// KindIntRange draws a uniform integer from the inclusive [Min, Max].
	KindIntRange Kind = "int"
	// KindFloatRange draws a uniform float from [FloatMin, FloatMax].
	KindFloatRange Kind = "float"
	// KindText draws lorem text with a length in [MinChars, MaxChars].
	KindText Kind = "text"
	// KindDateRange draws an ISO date between Start and End inclusive.
	KindDateRange Kind = "date"
	// KindChoice draws a uniform element from Options.
	KindChoice Kind = "choice"
	// KindCustom delegates to a registered custom provider named Provider.
	KindCustom Kind = "custom"
)

// FieldSpec is one field's generation rule. Only the parameters relevant to
// Kind are meaningful; use the constructors below rather than filling the
// struct by hand.
type FieldSpec struct {
	Kind     Kind     `json:"kind"`
	Type     string   `json:"type,omitempty"`     // builtin kind name
	Provider string   `json:"provider,omitempty"` // custom provider name
	Min      int64    `json:"min,omitempty"`
	Max      int64    `json:"max,omitempty"`
	FloatMin float64  `json:"floatMin,omitempty"`
	FloatMax float64  `json:"floatMax,omitempty"`
	MinChars int      `json:"minChars,omitempty"`
	MaxChars int      `json:"maxChars,omitempty"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Builtin references a built-in leaf kind such as "name" or "uuid".
func Builtin(kind string) FieldSpec {
	return FieldSpec{Kind: KindBuiltin, Type: kind}
}

// IntRange draws integers from the inclusive range [min, max].
func IntRange(min, max int64) FieldSpec {
	return FieldSpec{Kind: KindIntRange, Min: min, Max: max}
}

// FloatRange draws floats from [min, max].
func FloatRange(min, max float64) FieldSpec {
	return FieldSpec{Kind: KindFloatRange, FloatMin: min, FloatMax: max}
}

// TextRange draws lorem text whose length falls in [minChars, maxChars].
func TextRange(minChars, maxChars int) FieldSpec {
	return FieldSpec{Kind: KindText, MinChars: minChars, MaxChars: maxChars}
}

// DateRange draws ISO dates (YYYY-MM-DD) between start and end inclusive.
func DateRange(start, end string) FieldSpec {
	return FieldSpec{Kind: KindDateRange, Start: start, End: end}
}

// Choice draws a uniform element from options.
func Choice(options ...string) FieldSpec {
	return FieldSpec{Kind: KindChoice, Options: options}
}

// Custom delegates generation to the registered provider with the given name.
func Custom(name string) FieldSpec {
	return FieldSpec{Kind: KindCustom, Provider: name}
}

// Schema maps unique field names to their generation rules. It is caller
// owned and treated as read-only for the duration of one generation call.
type Schema map[string]FieldSpec

// Fields returns the field names in canonical (sorted) order. Map-form
// generation draws in this order so output never depends on declaration
// order.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
