package generator

import (
	"errors"
	"fmt"
)

// Choice pairs a value with its relative weight.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Weighted picks values with probability proportional to their weight.
type Weighted[T any] struct {
	choices []Choice[T]
	total   int
}

// NewWeighted builds a weighted picker. Weights must be non-negative and at
// least one must be positive.
func NewWeighted[T any](choices ...Choice[T]) (*Weighted[T], error) {
	total := 0
	for _, c := range choices {
		if c.Weight < 0 {
			return nil, fmt.Errorf("negative weight %d for %v", c.Weight, c.Value)
		}
		total += c.Weight
	}
	if total == 0 {
		return nil, errors.New("weighted choice needs at least one positive weight")
	}
	return &Weighted[T]{
		choices: append([]Choice[T](nil), choices...),
		total:   total,
	}, nil
}

// Pick draws one value.
func (w *Weighted[T]) Pick(r Rand) T {
	n := r.IntN(w.total)
	for _, c := range w.choices {
		if n < c.Weight {
			return c.Value
		}
		n -= c.Weight
	}
	// unreachable while total is the sum of weights
	return w.choices[len(w.choices)-1].Value
}

// Total is the sum of all weights.
func (w *Weighted[T]) Total() int { return w.total }

// Choices returns a copy of the configured choices.
func (w *Weighted[T]) Choices() []Choice[T] {
	return append([]Choice[T](nil), w.choices...)
}
