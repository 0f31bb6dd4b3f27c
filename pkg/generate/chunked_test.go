package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

func TestRecordsChunkedMatchesSync(t *testing.T) {
	const n = 50
	s := testSchema()
	want, err := New().Records(rng.NewSeeded(1), n, s)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}

	for _, chunkSize := range []int{1, 3, 7, 100} {
		g := New(WithChunkSize(chunkSize))
		got, err := g.RecordsChunked(context.Background(), rng.NewSeeded(1), n, s)
		if err != nil {
			t.Fatalf("chunk %d: %v", chunkSize, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("chunk %d diverged from sync (-sync +chunked):\n%s", chunkSize, diff)
		}
	}
}

func TestRecordsTuplesChunkedMatchesSync(t *testing.T) {
	const n = 40
	s := testSchema()
	order := []string{"score", "name", "tier", "age", "joined", "email"}
	want, err := New().RecordsTuples(rng.NewSeeded(2), n, s, order)
	if err != nil {
		t.Fatalf("RecordsTuples: %v", err)
	}

	for _, chunkSize := range []int{1, 3, 7, 100} {
		g := New(WithChunkSize(chunkSize))
		got, err := g.RecordsTuplesChunked(context.Background(), rng.NewSeeded(2), n, s, order)
		if err != nil {
			t.Fatalf("chunk %d: %v", chunkSize, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("chunk %d diverged from sync (-sync +chunked):\n%s", chunkSize, diff)
		}
	}
}

func TestColumnsChunkedSingleChunkMatchesSync(t *testing.T) {
	const n = 20
	s := testSchema()
	want, err := New().Columns(rng.NewSeeded(3), n, s)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	g := New(WithChunkSize(n))
	got, err := g.ColumnsChunked(context.Background(), rng.NewSeeded(3), n, s)
	if err != nil {
		t.Fatalf("ColumnsChunked: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("single-chunk columnar output diverged (-sync +chunked):\n%s", diff)
	}
}

func TestColumnsChunkedMultiChunkDiverges(t *testing.T) {
	const n = 20
	s := testSchema()
	want, err := New().Columns(rng.NewSeeded(4), n, s)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	g := New(WithChunkSize(7))
	got, err := g.ColumnsChunked(context.Background(), rng.NewSeeded(4), n, s)
	if err != nil {
		t.Fatalf("ColumnsChunked: %v", err)
	}
	if got.NumRows() != n || got.NumCols() != len(s) {
		t.Fatalf("batch shape %dx%d", got.NumRows(), got.NumCols())
	}
	if cmp.Diff(want, got) == "" {
		t.Fatal("multi-chunk columnar output should reorder draws relative to sync")
	}
}

func TestColumnsChunkedStillWellFormed(t *testing.T) {
	const n = 25
	g := New(WithChunkSize(4))
	batch, err := g.ColumnsChunked(context.Background(), rng.NewSeeded(5), n, testSchema())
	if err != nil {
		t.Fatalf("ColumnsChunked: %v", err)
	}
	for _, name := range batch.Fields {
		if len(batch.Column(name)) != n {
			t.Fatalf("column %q has %d rows, want %d", name, len(batch.Column(name)), n)
		}
	}
	for _, v := range batch.Column("age") {
		if v.Int < 18 || v.Int > 65 {
			t.Fatalf("age %d outside [18, 65]", v.Int)
		}
	}
}

func TestChunkedDeterministicAcrossCalls(t *testing.T) {
	g := New(WithChunkSize(9))
	first, err := g.RecordsChunked(context.Background(), rng.NewSeeded(6), 30, testSchema())
	if err != nil {
		t.Fatalf("RecordsChunked: %v", err)
	}
	second, err := g.RecordsChunked(context.Background(), rng.NewSeeded(6), 30, testSchema())
	if err != nil {
		t.Fatalf("RecordsChunked: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed diverged:\n%s", diff)
	}
}

func TestChunkedCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(WithChunkSize(2))
	records, err := g.RecordsChunked(ctx, rng.NewSeeded(7), 10, testSchema())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if records != nil {
		t.Fatalf("canceled call returned %d records", len(records))
	}
}

func TestChunkedSingleChunkIgnoresCancellation(t *testing.T) {
	// Cancellation is only observed between chunks; a batch that fits one
	// chunk never yields.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(WithChunkSize(100))
	records, err := g.RecordsChunked(ctx, rng.NewSeeded(8), 10, testSchema())
	if err != nil {
		t.Fatalf("RecordsChunked: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("got %d records", len(records))
	}
}

func TestChunkedNilContext(t *testing.T) {
	g := New()
	if _, err := g.RecordsChunked(nil, rng.NewSeeded(1), 1, testSchema()); err == nil { //nolint:staticcheck
		t.Fatal("nil context should fail")
	}
	if _, err := g.ColumnsChunked(nil, rng.NewSeeded(1), 1, testSchema()); err == nil { //nolint:staticcheck
		t.Fatal("nil context should fail")
	}
}

func TestChunkedValidatesUpfront(t *testing.T) {
	g := New(WithChunkSize(2))
	bad := schema.Schema{"age": schema.IntRange(50, 10)}
	if _, err := g.RecordsChunked(context.Background(), rng.NewSeeded(1), 0, bad); !errors.Is(err, schema.ErrInvalidIntRange) {
		t.Fatalf("got %v, want ErrInvalidIntRange", err)
	}
}
