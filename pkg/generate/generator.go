package generate

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/provider"
	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// DefaultChunkSize is used by the chunked variants when the caller passes a
// chunk size of zero. Small enough to return control to the scheduler often,
// large enough to amortise the loop overhead.
const DefaultChunkSize = 10_000

// Record is one map-form result. Keys are the schema's field names; values
// are generated in canonical (sorted) field order so output never depends on
// declaration order.
type Record map[string]schema.Value

// Option customises a Generator.
type Option func(*Generator)

// WithLocale sets the locale used by the leaf producers.
func WithLocale(loc locale.Locale) Option {
	return func(g *Generator) {
		g.locale = loc
	}
}

// WithRegistry supplies the custom-provider registry consulted by Custom
// specs.
func WithRegistry(registry *provider.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithChunkSize sets the chunk size for the chunked variants. Zero or
// negative values fall back to DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(g *Generator) {
		g.chunkSize = n
	}
}

// Generator coordinates schema validation and per-field dispatch. The zero
// configuration (default locale, no custom providers, default chunk size)
// works out of the box.
type Generator struct {
	locale    locale.Locale
	registry  *provider.Registry
	chunkSize int
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		locale:    locale.Default,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.chunkSize <= 0 {
		g.chunkSize = DefaultChunkSize
	}
	return g
}

// Locale returns the generator's locale.
func (g *Generator) Locale() locale.Locale { return g.locale }

// Registry returns the generator's custom-provider registry, possibly nil.
func (g *Generator) Registry() *provider.Registry { return g.registry }

// Validate statically checks s against this generator's provider registry.
func (g *Generator) Validate(s schema.Schema) error {
	return schema.Validate(s, g.providerSet())
}

// Value generates a single value for spec.
func (g *Generator) Value(src *rng.Source, spec schema.FieldSpec) (schema.Value, error) {
	return Value(src, g.locale, spec, g.registry)
}

// Records generates n map-form records. The schema validates once regardless
// of n — n = 0 still fails on a bad schema — and any dispatch error aborts
// the whole batch with no partial results.
func (g *Generator) Records(src *rng.Source, n int, s schema.Schema) ([]Record, error) {
	if err := g.Validate(s); err != nil {
		return nil, err
	}
	records := make([]Record, 0, n)
	if err := g.appendRecords(&records, src, n, s, s.Fields()); err != nil {
		return nil, err
	}
	return records, nil
}

// RecordsTuples generates n tuple-form records with values in fieldOrder.
// fieldOrder must be a bijection over the schema's fields: no duplicates, no
// unknown names, every field present. Because values draw in caller order
// rather than canonical order, tuple output is not comparable to map output
// for the same seed.
func (g *Generator) RecordsTuples(src *rng.Source, n int, s schema.Schema, fieldOrder []string) ([][]schema.Value, error) {
	if err := g.Validate(s); err != nil {
		return nil, err
	}
	if err := ValidateFieldOrder(s, fieldOrder); err != nil {
		return nil, err
	}
	records := make([][]schema.Value, 0, n)
	if err := g.appendTuples(&records, src, n, s, fieldOrder); err != nil {
		return nil, err
	}
	return records, nil
}

// appendRecords draws count records in the given field order and appends them
// to dst. Shared by the synchronous and chunked paths so their draw sequences
// are identical by construction.
func (g *Generator) appendRecords(dst *[]Record, src *rng.Source, count int, s schema.Schema, fields []string) error {
	for i := 0; i < count; i++ {
		record := make(Record, len(fields))
		for _, name := range fields {
			value, err := Value(src, g.locale, s[name], g.registry)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			record[name] = value
		}
		*dst = append(*dst, record)
	}
	return nil
}

func (g *Generator) appendTuples(dst *[][]schema.Value, src *rng.Source, count int, s schema.Schema, fieldOrder []string) error {
	for i := 0; i < count; i++ {
		record := make([]schema.Value, 0, len(fieldOrder))
		for _, name := range fieldOrder {
			value, err := Value(src, g.locale, s[name], g.registry)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			record = append(record, value)
		}
		*dst = append(*dst, record)
	}
	return nil
}

// ValidateFieldOrder checks that fieldOrder is a bijection over the schema's
// field set. Violations name the offending field(s).
func ValidateFieldOrder(s schema.Schema, fieldOrder []string) error {
	seen := make(map[string]struct{}, len(fieldOrder))
	for _, name := range fieldOrder {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("field_order: %w: %q", schema.ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
		if _, ok := s[name]; !ok {
			return fmt.Errorf("field_order: %w: %q", schema.ErrUnknownField, name)
		}
	}
	if len(fieldOrder) != len(s) {
		missing := make([]string, 0)
		for name := range s {
			if _, ok := seen[name]; !ok {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		return fmt.Errorf("field_order: %w: missing %q", schema.ErrMissingField, missing)
	}
	return nil
}

// providerSet adapts the registry for schema.Validate without handing a typed
// nil to the interface.
func (g *Generator) providerSet() schema.ProviderSet {
	if g.registry == nil {
		return nil
	}
	return g.registry
}

func (g *Generator) chunk() int {
	if g.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return g.chunkSize
}
