// Package forgery generates deterministic fake data from declarative
// schemas. A schema maps field names to specifications (built-in kinds,
// numeric ranges, date ranges, choices, weighted custom providers); seeded
// sources make every batch reproducible. The root package re-exports the
// pieces most callers need and adds batch-size guards; the subpackages carry
// the full surface.
package forgery

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-forgery/pkg/generate"
	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/provider"
	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// Guard rails for the convenience entry points. Direct Generator use is not
// subject to them.
const (
	// MaxBatchSize caps the record count accepted by the package-level
	// generation helpers.
	MaxBatchSize = 10_000_000
	// MaxSchemaSize caps the field count accepted by the package-level
	// generation helpers.
	MaxSchemaSize = 1_000
)

var (
	// ErrBatchSize reports a record count outside [0, MaxBatchSize].
	ErrBatchSize = errors.New("forgery: batch size out of range")
	// ErrSchemaSize reports a schema with more than MaxSchemaSize fields.
	ErrSchemaSize = errors.New("forgery: schema too large")
)

// Re-exported core types, so simple callers import one package.
type (
	// Schema maps field names to specifications.
	Schema = schema.Schema
	// FieldSpec describes how one field generates.
	FieldSpec = schema.FieldSpec
	// Value is a generated tagged-union value.
	Value = schema.Value
	// Record is one map-form generated record.
	Record = generate.Record
	// ColumnBatch is the column-oriented result form.
	ColumnBatch = generate.ColumnBatch
	// Registry holds named custom providers.
	Registry = provider.Registry
	// WeightedOption pairs a provider value with its weight.
	WeightedOption = provider.WeightedOption
	// Source is the deterministic random source.
	Source = rng.Source
	// Locale selects the language/region for locale-aware kinds.
	Locale = locale.Locale
	// Generator is the configurable orchestrator behind these helpers.
	Generator = generate.Generator
	// Option configures a Generator.
	Option = generate.Option
)

// Re-exported constructors and options.
var (
	// NewSource returns a source with an unpredictable seed.
	NewSource = rng.New
	// NewSeededSource returns a source reproducing a fixed draw sequence.
	NewSeededSource = rng.NewSeeded
	// NewRegistry returns an empty custom-provider registry.
	NewRegistry = provider.NewRegistry
	// NewGenerator constructs a Generator from options.
	NewGenerator = generate.New
	// WithLocale sets the generator locale.
	WithLocale = generate.WithLocale
	// WithRegistry supplies the custom-provider registry.
	WithRegistry = generate.WithRegistry
	// WithChunkSize sets the chunk size for the chunked variants.
	WithChunkSize = generate.WithChunkSize
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = generate.DefaultChunkSize

// ValidateSchema statically checks s against an optional provider registry.
// A nil registry means no custom providers are available.
func ValidateSchema(s Schema, providers *Registry) error {
	if err := checkSchema(s); err != nil {
		return err
	}
	g := generate.New(generate.WithRegistry(providers))
	return g.Validate(s)
}

// ParseSchema builds a Schema from the shorthand map form, where each field
// is either a kind name or a parameter list such as ["int", 1, 100].
func ParseSchema(raw map[string]any, providers *Registry) (Schema, error) {
	return schema.Parse(raw, providerSet(providers))
}

// LoadSchemaYAML parses a YAML document in the shorthand map form.
func LoadSchemaYAML(data []byte, providers *Registry) (Schema, error) {
	return schema.LoadYAML(data, providerSet(providers))
}

// GenerateValue generates a single value for spec using the default locale.
func GenerateValue(src *Source, spec FieldSpec) (Value, error) {
	return generate.Value(src, locale.Default, spec, nil)
}

// GenerateValueWithCustom is GenerateValue with custom providers available.
func GenerateValueWithCustom(src *Source, spec FieldSpec, providers *Registry) (Value, error) {
	return generate.Value(src, locale.Default, spec, providers)
}

// GenerateRecords generates n map-form records with the default settings.
func GenerateRecords(src *Source, n int, s Schema) ([]Record, error) {
	return GenerateRecordsWithCustom(src, n, s, nil)
}

// GenerateRecordsWithCustom is GenerateRecords with custom providers
// available.
func GenerateRecordsWithCustom(src *Source, n int, s Schema, providers *Registry) ([]Record, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	g := generate.New(generate.WithRegistry(providers))
	return g.Records(src, n, s)
}

// GenerateRecordsTuples generates n tuple-form records with values in
// fieldOrder, which must name every schema field exactly once.
func GenerateRecordsTuples(src *Source, n int, s Schema, fieldOrder []string) ([][]Value, error) {
	return GenerateRecordsTuplesWithCustom(src, n, s, fieldOrder, nil)
}

// GenerateRecordsTuplesWithCustom is GenerateRecordsTuples with custom
// providers available.
func GenerateRecordsTuplesWithCustom(src *Source, n int, s Schema, fieldOrder []string, providers *Registry) ([][]Value, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	g := generate.New(generate.WithRegistry(providers))
	return g.RecordsTuples(src, n, s, fieldOrder)
}

// GenerateColumns generates n records in column-major order.
func GenerateColumns(src *Source, n int, s Schema) (*ColumnBatch, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	return generate.New().Columns(src, n, s)
}

// GenerateRecordsChunked generates n map-form records in chunks, yielding to
// the scheduler between chunks. Output is identical to GenerateRecords for
// the same seed. chunkSize <= 0 selects DefaultChunkSize.
func GenerateRecordsChunked(ctx context.Context, src *Source, n int, s Schema, chunkSize int) ([]Record, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	g := generate.New(generate.WithChunkSize(chunkSize))
	return g.RecordsChunked(ctx, src, n, s)
}

// GenerateRecordsTuplesChunked is the chunked form of GenerateRecordsTuples.
func GenerateRecordsTuplesChunked(ctx context.Context, src *Source, n int, s Schema, fieldOrder []string, chunkSize int) ([][]Value, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	g := generate.New(generate.WithChunkSize(chunkSize))
	return g.RecordsTuplesChunked(ctx, src, n, s, fieldOrder)
}

// GenerateColumnsChunked is the chunked form of GenerateColumns. Unlike the
// row-oriented variants its output only matches the unchunked call when n
// fits a single chunk; see generate.ColumnsChunked.
func GenerateColumnsChunked(ctx context.Context, src *Source, n int, s Schema, chunkSize int) (*ColumnBatch, error) {
	if err := checkBatch(n, s); err != nil {
		return nil, err
	}
	g := generate.New(generate.WithChunkSize(chunkSize))
	return g.ColumnsChunked(ctx, src, n, s)
}

func checkBatch(n int, s Schema) error {
	if n < 0 || n > MaxBatchSize {
		return fmt.Errorf("%w: %d (max %d)", ErrBatchSize, n, MaxBatchSize)
	}
	return checkSchema(s)
}

func checkSchema(s Schema) error {
	if len(s) > MaxSchemaSize {
		return fmt.Errorf("%w: %d fields (max %d)", ErrSchemaSize, len(s), MaxSchemaSize)
	}
	return nil
}

func providerSet(providers *Registry) schema.ProviderSet {
	if providers == nil {
		return nil
	}
	return providers
}
