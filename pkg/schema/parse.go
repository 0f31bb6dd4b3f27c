package schema

import "fmt"

// ParseField interprets one loose field specification. A bare string names a
// built-in kind or a registered custom provider; a list names a parameterized
// kind followed by its parameters:
//
//	["int", min, max]
//	["float", min, max]
//	["text", minChars, maxChars]
//	["date", start, end]
//	["choice", [options...]]
//
// providers may be nil when no custom providers are in play.
func ParseField(name string, raw any, providers ProviderSet) (FieldSpec, error) {
	switch v := raw.(type) {
	case string:
		return parseNamedSpec(name, v, providers)
	case []any:
		return parseListSpec(name, v)
	case []string:
		list := make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
		return parseListSpec(name, list)
	default:
		return FieldSpec{}, fmt.Errorf("field %q: %w: must be a string or a list, got %T", name, ErrInvalidSpec, raw)
	}
}

// Parse interprets a whole loose schema, such as the result of unmarshalling
// a YAML or JSON document, into a typed Schema.
func Parse(raw map[string]any, providers ProviderSet) (Schema, error) {
	s := make(Schema, len(raw))
	for name, value := range raw {
		spec, err := ParseField(name, value, providers)
		if err != nil {
			return nil, err
		}
		s[name] = spec
	}
	return s, nil
}

func parseNamedSpec(field, name string, providers ProviderSet) (FieldSpec, error) {
	if IsBuiltinKind(name) {
		return Builtin(name), nil
	}
	if providers != nil && providers.Has(name) {
		return Custom(name), nil
	}
	return FieldSpec{}, fmt.Errorf("field %q: %w: %q", field, ErrUnknownKind, name)
}

func parseListSpec(field string, list []any) (FieldSpec, error) {
	if len(list) < 2 {
		return FieldSpec{}, fmt.Errorf("field %q: %w: list specification needs at least 2 elements", field, ErrInvalidSpec)
	}
	kind, ok := list[0].(string)
	if !ok {
		return FieldSpec{}, fmt.Errorf("field %q: %w: first element must name a kind, got %T", field, ErrInvalidSpec, list[0])
	}

	switch kind {
	case "int":
		if len(list) != 3 {
			return FieldSpec{}, fmt.Errorf(`field %q: %w: want ["int", min, max]`, field, ErrInvalidSpec)
		}
		min, err := asInt64(field, list[1])
		if err != nil {
			return FieldSpec{}, err
		}
		max, err := asInt64(field, list[2])
		if err != nil {
			return FieldSpec{}, err
		}
		return IntRange(min, max), nil

	case "float":
		if len(list) != 3 {
			return FieldSpec{}, fmt.Errorf(`field %q: %w: want ["float", min, max]`, field, ErrInvalidSpec)
		}
		min, err := asFloat64(field, list[1])
		if err != nil {
			return FieldSpec{}, err
		}
		max, err := asFloat64(field, list[2])
		if err != nil {
			return FieldSpec{}, err
		}
		return FloatRange(min, max), nil

	case "text":
		if len(list) != 3 {
			return FieldSpec{}, fmt.Errorf(`field %q: %w: want ["text", minChars, maxChars]`, field, ErrInvalidSpec)
		}
		min, err := asInt64(field, list[1])
		if err != nil {
			return FieldSpec{}, err
		}
		max, err := asInt64(field, list[2])
		if err != nil {
			return FieldSpec{}, err
		}
		return TextRange(int(min), int(max)), nil

	case "date":
		if len(list) != 3 {
			return FieldSpec{}, fmt.Errorf(`field %q: %w: want ["date", start, end]`, field, ErrInvalidSpec)
		}
		start, ok := list[1].(string)
		if !ok {
			return FieldSpec{}, fmt.Errorf("field %q: %w: date bounds must be strings, got %T", field, ErrInvalidSpec, list[1])
		}
		end, ok := list[2].(string)
		if !ok {
			return FieldSpec{}, fmt.Errorf("field %q: %w: date bounds must be strings, got %T", field, ErrInvalidSpec, list[2])
		}
		return DateRange(start, end), nil

	case "choice":
		if len(list) != 2 {
			return FieldSpec{}, fmt.Errorf(`field %q: %w: want ["choice", [options...]]`, field, ErrInvalidSpec)
		}
		options, err := asStringSlice(field, list[1])
		if err != nil {
			return FieldSpec{}, err
		}
		return Choice(options...), nil

	default:
		return FieldSpec{}, fmt.Errorf("field %q: %w: unknown parameterized kind %q", field, ErrInvalidSpec, kind)
	}
}

func asInt64(field string, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
	}
	return 0, fmt.Errorf("field %q: %w: expected an integer, got %v (%T)", field, ErrInvalidSpec, v, v)
}

func asFloat64(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("field %q: %w: expected a number, got %v (%T)", field, ErrInvalidSpec, v, v)
}

func asStringSlice(field string, v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q: %w: choice options must be strings, got %v (%T)", field, ErrInvalidSpec, item, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("field %q: %w: choice options must be a list, got %T", field, ErrInvalidSpec, v)
	}
}
