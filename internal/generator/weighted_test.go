package generator_test

import (
	"testing"

	"github.com/bryanCE/dnsgen/internal/generator"
	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeighted_Validation(t *testing.T) {
	_, err := generator.NewWeighted[string]()
	assert.Error(t, err, "no choices")

	_, err = generator.NewWeighted(generator.Choice[string]{Value: "a", Weight: 0})
	assert.Error(t, err, "all zero weights")

	_, err = generator.NewWeighted(
		generator.Choice[string]{Value: "a", Weight: 3},
		generator.Choice[string]{Value: "b", Weight: -1},
	)
	assert.Error(t, err, "negative weight")
}

func TestWeighted_ZeroWeightNeverPicked(t *testing.T) {
	w, err := generator.NewWeighted(
		generator.Choice[string]{Value: "never", Weight: 0},
		generator.Choice[string]{Value: "always", Weight: 1},
	)
	require.NoError(t, err)

	r := generator.NewRand(1)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "always", w.Pick(r))
	}
}

func TestWeighted_DefaultTypeProportions(t *testing.T) {
	w, err := generator.NewWeighted(generator.DefaultTypeWeights...)
	require.NoError(t, err)
	require.Equal(t, 100, w.Total())

	const draws = 200000
	r := generator.NewRand(42)
	counts := make(map[records.RecordType]int)
	for i := 0; i < draws; i++ {
		counts[w.Pick(r)]++
	}

	for _, c := range w.Choices() {
		expected := float64(c.Weight) / float64(w.Total())
		actual := float64(counts[c.Value]) / draws
		assert.InDelta(t, expected, actual, 0.01, "type %s", c.Value)
	}
}

func TestWeighted_ChoicesIsCopy(t *testing.T) {
	w, err := generator.NewWeighted(generator.Choice[int]{Value: 1, Weight: 1})
	require.NoError(t, err)

	choices := w.Choices()
	choices[0].Weight = 99
	assert.Equal(t, 1, w.Choices()[0].Weight)
}
