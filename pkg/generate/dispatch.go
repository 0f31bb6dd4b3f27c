package generate

import (
	"fmt"

	"github.com/goliatone/go-forgery/internal/leaf"
	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/provider"
	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// Value generates one value for spec, consuming entropy only from src. Each
// spec kind performs a fixed, ordered sequence of draws; that ordering is
// what makes seeded output reproducible. Errors here are a backstop: a schema
// that passed validation cannot reach them.
func Value(src *rng.Source, loc locale.Locale, spec schema.FieldSpec, providers *provider.Registry) (schema.Value, error) {
	switch spec.Kind {
	case schema.KindBuiltin:
		return leaf.Generate(src, loc, spec.Type)

	case schema.KindIntRange:
		if spec.Min > spec.Max {
			return schema.Value{}, fmt.Errorf("%w: %d > %d", schema.ErrInvalidIntRange, spec.Min, spec.Max)
		}
		return schema.IntValue(src.Int64Range(spec.Min, spec.Max)), nil

	case schema.KindFloatRange:
		if spec.FloatMin > spec.FloatMax {
			return schema.Value{}, fmt.Errorf("%w: %v > %v", schema.ErrInvalidFloatRange, spec.FloatMin, spec.FloatMax)
		}
		return schema.FloatValue(src.Float64Range(spec.FloatMin, spec.FloatMax)), nil

	case schema.KindText:
		if spec.MinChars > spec.MaxChars {
			return schema.Value{}, fmt.Errorf("%w: %d > %d", schema.ErrInvalidTextRange, spec.MinChars, spec.MaxChars)
		}
		return schema.StringValue(leaf.Text(src, spec.MinChars, spec.MaxChars)), nil

	case schema.KindDateRange:
		s, err := leaf.Date(src, spec.Start, spec.End)
		if err != nil {
			return schema.Value{}, err
		}
		return schema.StringValue(s), nil

	case schema.KindChoice:
		if len(spec.Options) == 0 {
			return schema.Value{}, schema.ErrEmptyChoice
		}
		return schema.StringValue(spec.Options[src.IntN(len(spec.Options))]), nil

	case schema.KindCustom:
		if providers == nil {
			return schema.Value{}, fmt.Errorf("%w: %q", schema.ErrProviderNotFound, spec.Provider)
		}
		p, err := providers.Get(spec.Provider)
		if err != nil {
			return schema.Value{}, fmt.Errorf("%w: %q", schema.ErrProviderNotFound, spec.Provider)
		}
		return schema.StringValue(p.Generate(src)), nil
	}

	return schema.Value{}, fmt.Errorf("%w: kind %q", schema.ErrInvalidSpec, spec.Kind)
}
