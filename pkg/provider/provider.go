package provider

import (
	"fmt"
	"math"
	"sort"

	"github.com/goliatone/go-forgery/pkg/rng"
)

// WeightedOption pairs a candidate value with its relative weight. A value
// with weight 80 is four times as likely as one with weight 20. Zero-weight
// entries are dropped at construction and can never be drawn.
type WeightedOption struct {
	Value  string
	Weight uint64
}

// CustomProvider is an immutable value pool built once and shared read-only
// across generation calls.
type CustomProvider struct {
	values []string
	// cumulative holds strictly increasing prefix sums over the surviving
	// positive weights; empty for uniform pools.
	cumulative []uint64
	total      uint64
}

// Uniform builds a provider where every option has equal probability.
func Uniform(options []string) (*CustomProvider, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}
	values := make([]string, len(options))
	copy(values, options)
	return &CustomProvider{values: values}, nil
}

// Weighted builds a provider selecting options by relative weight. Zero
// weights are dropped; at least one positive weight must survive, and the
// weight total must fit uint64.
func Weighted(options []WeightedOption) (*CustomProvider, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}

	values := make([]string, 0, len(options))
	cumulative := make([]uint64, 0, len(options))
	var total uint64

	for _, opt := range options {
		if opt.Weight == 0 {
			continue
		}
		if opt.Weight > math.MaxUint64-total {
			return nil, fmt.Errorf("%w: weight total overflows uint64", ErrInvalidWeights)
		}
		total += opt.Weight
		values = append(values, opt.Value)
		cumulative = append(cumulative, total)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}

	return &CustomProvider{values: values, cumulative: cumulative, total: total}, nil
}

// Len returns the number of selectable options.
func (p *CustomProvider) Len() int { return len(p.values) }

// Weighted reports whether the pool selects by weight.
func (p *CustomProvider) Weighted() bool { return len(p.cumulative) > 0 }

// Generate draws one value from the pool. Weighted pools sample r uniformly
// from [1, total] and binary-search for the smallest index whose cumulative
// weight is >= r (inverse-CDF sampling), so an option with weight W is drawn
// with probability exactly W/total.
func (p *CustomProvider) Generate(src *rng.Source) string {
	if !p.Weighted() {
		return p.values[src.IntN(len(p.values))]
	}
	r := 1 + src.Uint64N(p.total)
	idx := sort.Search(len(p.cumulative), func(i int) bool {
		return p.cumulative[i] >= r
	})
	return p.values[idx]
}

// GenerateBatch draws n values from the pool.
func (p *CustomProvider) GenerateBatch(src *rng.Source, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.Generate(src))
	}
	return out
}
