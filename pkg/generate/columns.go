package generate

import (
	"fmt"

	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// ColumnBatch is the column-oriented result form: one value slice per field,
// all the same length, with Fields carrying the canonical column order.
type ColumnBatch struct {
	Fields []string
	Data   map[string][]schema.Value
}

// NumRows returns the number of records the batch represents.
func (b *ColumnBatch) NumRows() int {
	if len(b.Fields) == 0 {
		return 0
	}
	return len(b.Data[b.Fields[0]])
}

// NumCols returns the number of columns.
func (b *ColumnBatch) NumCols() int { return len(b.Fields) }

// Column returns the values for one field, or nil when absent.
func (b *ColumnBatch) Column(name string) []schema.Value { return b.Data[name] }

// Columns generates n records in column-major order: all of the first field
// across every record, then all of the second, and so on through the
// canonical field order. The draw sequence therefore differs from Records for
// the same seed.
func (g *Generator) Columns(src *rng.Source, n int, s schema.Schema) (*ColumnBatch, error) {
	if err := g.Validate(s); err != nil {
		return nil, err
	}
	return g.columns(src, n, s, s.Fields())
}

func (g *Generator) columns(src *rng.Source, n int, s schema.Schema, fields []string) (*ColumnBatch, error) {
	batch := &ColumnBatch{
		Fields: fields,
		Data:   make(map[string][]schema.Value, len(fields)),
	}
	for _, name := range fields {
		column := make([]schema.Value, 0, n)
		for i := 0; i < n; i++ {
			value, err := Value(src, g.locale, s[name], g.registry)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			column = append(column, value)
		}
		batch.Data[name] = column
	}
	return batch, nil
}
