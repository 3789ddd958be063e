package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalemi-dev/hello-monitor/simulate"
)

func TestRandomSource_Range(t *testing.T) {
	t.Parallel()
	src := simulate.NewRandomSource()
	for i := 0; i < 10000; i++ {
		v := src.Uniform(0.1, 0.5)
		assert.GreaterOrEqual(t, v, 0.1)
		assert.Less(t, v, 0.5)
	}
}

func TestSeededSource_Range(t *testing.T) {
	t.Parallel()
	src := simulate.NewSeededSource(7)
	for i := 0; i < 10000; i++ {
		v := src.Uniform(0.1, 0.5)
		assert.GreaterOrEqual(t, v, 0.1)
		assert.Less(t, v, 0.5)
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	t.Parallel()
	a, b := simulate.NewSeededSource(42), simulate.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(10, 101), b.Uniform(10, 101))
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.1, simulate.Fixed(0).Uniform(0.1, 0.5))
	assert.InDelta(t, 0.3, simulate.Fixed(0.5).Uniform(0.1, 0.5), 1e-12)
	assert.Less(t, simulate.Fixed(1).Uniform(0.1, 0.5), 0.5)
	assert.Less(t, simulate.Fixed(0.9999999999999999).Uniform(0.1, 0.5), 0.5)
	assert.Less(t, simulate.Fixed(7).Uniform(10, 101), 101.0)
	assert.Equal(t, 3.0, simulate.Fixed(0.5).Uniform(3, 3))
	assert.Equal(t, 0.1, simulate.Fixed(-3).Uniform(0.1, 0.5))
}

func TestUniformInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  simulate.RandomSource
		want int
	}{
		{"lower bound", simulate.Fixed(0), 10},
		{"upper bound", simulate.Fixed(1), 100},
		{"midpoint", simulate.Fixed(0.5), 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, simulate.UniformInt(tt.src, 10, 100))
		})
	}

	assert.Equal(t, 7, simulate.UniformInt(simulate.Fixed(0.9), 7, 7))
}

func TestUniformInt_CoversRange(t *testing.T) {
	t.Parallel()
	src := simulate.NewSeededSource(1)
	seen := make(map[int]bool)
	for i := 0; i < 20000; i++ {
		v := simulate.UniformInt(src, 10, 100)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 100)
		seen[v] = true
	}
	assert.True(t, seen[10])
	assert.True(t, seen[100])
}
