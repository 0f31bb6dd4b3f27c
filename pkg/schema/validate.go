package schema

import (
	"fmt"
	"math"
	"time"
)

// ISODate is the layout accepted by date-range specifications.
const ISODate = "2006-01-02"

// ProviderSet is the narrow view of a custom-provider registry the validator
// needs. A nil ProviderSet behaves as an empty registry.
type ProviderSet interface {
	Has(name string) bool
}

// Validate statically checks every field rule in s. It consumes no randomness
// and produces no values, so it runs (and fails identically) even for a
// requested record count of zero. Custom specs are checked for membership in
// providers. The first offending field, in canonical order, aborts the walk.
func Validate(s Schema, providers ProviderSet) error {
	for _, name := range s.Fields() {
		if err := validateField(name, s[name], providers); err != nil {
			return err
		}
	}
	return nil
}

func validateField(name string, spec FieldSpec, providers ProviderSet) error {
	switch spec.Kind {
	case KindBuiltin:
		if !IsBuiltinKind(spec.Type) {
			return fmt.Errorf("field %q: %w: %q", name, ErrUnknownKind, spec.Type)
		}
	case KindIntRange:
		if spec.Min > spec.Max {
			return fmt.Errorf("field %q: %w: %d > %d", name, ErrInvalidIntRange, spec.Min, spec.Max)
		}
	case KindFloatRange:
		if !isFinite(spec.FloatMin) || !isFinite(spec.FloatMax) {
			return fmt.Errorf("field %q: %w: bounds must be finite (got %v, %v)",
				name, ErrInvalidFloatRange, spec.FloatMin, spec.FloatMax)
		}
		if spec.FloatMin > spec.FloatMax {
			return fmt.Errorf("field %q: %w: %v > %v", name, ErrInvalidFloatRange, spec.FloatMin, spec.FloatMax)
		}
	case KindText:
		if spec.MinChars < 0 || spec.MaxChars < 0 {
			return fmt.Errorf("field %q: %w: bounds must be non-negative (got %d, %d)",
				name, ErrInvalidTextRange, spec.MinChars, spec.MaxChars)
		}
		if spec.MinChars > spec.MaxChars {
			return fmt.Errorf("field %q: %w: %d > %d", name, ErrInvalidTextRange, spec.MinChars, spec.MaxChars)
		}
	case KindDateRange:
		start, err := time.Parse(ISODate, spec.Start)
		if err != nil {
			return fmt.Errorf("field %q: %w: invalid start date %q", name, ErrInvalidDateRange, spec.Start)
		}
		end, err := time.Parse(ISODate, spec.End)
		if err != nil {
			return fmt.Errorf("field %q: %w: invalid end date %q", name, ErrInvalidDateRange, spec.End)
		}
		if start.After(end) {
			return fmt.Errorf("field %q: %w: %s > %s", name, ErrInvalidDateRange, spec.Start, spec.End)
		}
	case KindChoice:
		if len(spec.Options) == 0 {
			return fmt.Errorf("field %q: %w", name, ErrEmptyChoice)
		}
	case KindCustom:
		if providers == nil || !providers.Has(spec.Provider) {
			return fmt.Errorf("field %q: %w: %q", name, ErrProviderNotFound, spec.Provider)
		}
	default:
		return fmt.Errorf("field %q: %w: kind %q", name, ErrInvalidSpec, spec.Kind)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
