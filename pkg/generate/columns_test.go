package generate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

func TestColumnsShape(t *testing.T) {
	g := New()
	s := testSchema()
	batch, err := g.Columns(rng.NewSeeded(1), 30, s)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if batch.NumRows() != 30 {
		t.Fatalf("NumRows = %d", batch.NumRows())
	}
	if batch.NumCols() != len(s) {
		t.Fatalf("NumCols = %d", batch.NumCols())
	}
	if diff := cmp.Diff(s.Fields(), batch.Fields); diff != "" {
		t.Fatalf("fields not in canonical order:\n%s", diff)
	}
	if batch.Column("missing") != nil {
		t.Fatal("unknown column should be nil")
	}
}

func TestColumnsDeterministic(t *testing.T) {
	g := New()
	first, err := g.Columns(rng.NewSeeded(2), 25, testSchema())
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	second, err := g.Columns(rng.NewSeeded(2), 25, testSchema())
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed diverged:\n%s", diff)
	}
}

func TestColumnsEmptyBatch(t *testing.T) {
	g := New()
	batch, err := g.Columns(rng.NewSeeded(3), 0, testSchema())
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if batch.NumRows() != 0 {
		t.Fatalf("NumRows = %d", batch.NumRows())
	}
}

func TestColumnsValidates(t *testing.T) {
	g := New()
	if _, err := g.Columns(rng.NewSeeded(1), 0, schema.Schema{"x": schema.Choice()}); err == nil {
		t.Fatal("bad schema should fail before generating")
	}
}
