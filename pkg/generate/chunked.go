package generate

import (
	"context"
	"errors"
	"runtime"

	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// RecordsChunked generates n map-form records in chunks of the generator's
// chunk size, returning control to the scheduler between chunks. Each record
// draws its fields through the same sequential calls as Records, so chunk
// boundaries never alter the draw sequence: for a fixed seed the output is
// byte-identical to Records for any chunk size >= 1.
//
// Cancellation is honored at chunk boundaries only; a canceled context
// returns ctx.Err() and no partial results.
func (g *Generator) RecordsChunked(ctx context.Context, src *rng.Source, n int, s schema.Schema) ([]Record, error) {
	if ctx == nil {
		return nil, errors.New("generate: context is required")
	}
	if err := g.Validate(s); err != nil {
		return nil, err
	}

	fields := s.Fields()
	records := make([]Record, 0, n)
	remaining := n
	for remaining > 0 {
		count := min(remaining, g.chunk())
		if err := g.appendRecords(&records, src, count, s, fields); err != nil {
			return nil, err
		}
		remaining -= count
		if remaining > 0 {
			if err := yield(ctx); err != nil {
				return nil, err
			}
		}
	}
	return records, nil
}

// RecordsTuplesChunked is the chunked form of RecordsTuples, with the same
// determinism guarantee as RecordsChunked: row-oriented output is identical
// to the synchronous call for any chunk size.
func (g *Generator) RecordsTuplesChunked(ctx context.Context, src *rng.Source, n int, s schema.Schema, fieldOrder []string) ([][]schema.Value, error) {
	if ctx == nil {
		return nil, errors.New("generate: context is required")
	}
	if err := g.Validate(s); err != nil {
		return nil, err
	}
	if err := ValidateFieldOrder(s, fieldOrder); err != nil {
		return nil, err
	}

	records := make([][]schema.Value, 0, n)
	remaining := n
	for remaining > 0 {
		count := min(remaining, g.chunk())
		if err := g.appendTuples(&records, src, count, s, fieldOrder); err != nil {
			return nil, err
		}
		remaining -= count
		if remaining > 0 {
			if err := yield(ctx); err != nil {
				return nil, err
			}
		}
	}
	return records, nil
}

// ColumnsChunked is the chunked form of Columns. Column-major generation
// draws a full column per piece, so chunking reorders draws relative to the
// unchunked call whenever n > chunkSize: each piece draws "all of field A for
// this piece, then field B" before the pieces concatenate. Output then
// remains individually valid but is NOT reproducible against Columns. When
// n <= chunkSize the call delegates directly to the synchronous path and the
// outputs are identical.
func (g *Generator) ColumnsChunked(ctx context.Context, src *rng.Source, n int, s schema.Schema) (*ColumnBatch, error) {
	if ctx == nil {
		return nil, errors.New("generate: context is required")
	}
	if err := g.Validate(s); err != nil {
		return nil, err
	}

	fields := s.Fields()
	if n <= g.chunk() {
		return g.columns(src, n, s, fields)
	}

	batch := &ColumnBatch{
		Fields: fields,
		Data:   make(map[string][]schema.Value, len(fields)),
	}
	for _, name := range fields {
		batch.Data[name] = make([]schema.Value, 0, n)
	}

	remaining := n
	for remaining > 0 {
		count := min(remaining, g.chunk())
		piece, err := g.columns(src, count, s, fields)
		if err != nil {
			return nil, err
		}
		for _, name := range fields {
			batch.Data[name] = append(batch.Data[name], piece.Data[name]...)
		}
		remaining -= count
		if remaining > 0 {
			if err := yield(ctx); err != nil {
				return nil, err
			}
		}
	}
	return batch, nil
}

// yield hands control back to the scheduler between chunks and surfaces
// cancellation.
func yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}
