package simulate

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RandomSource draws uniformly distributed samples.
type RandomSource interface {
	// Uniform returns a sample from [min, max).
	Uniform(min, max float64) float64
}

type globalSource struct{}

// NewRandomSource returns a RandomSource backed by the auto-seeded
// math/rand/v2 generator. It is safe for concurrent use.
func NewRandomSource() RandomSource {
	return globalSource{}
}

func (globalSource) Uniform(min, max float64) float64 {
	return scale(rand.Float64(), min, max)
}

// SeededSource is a deterministic RandomSource. Two sources built with the
// same seed produce the same sequence.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a SeededSource using a PCG generator.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Uniform(min, max float64) float64 {
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()
	return scale(f, min, max)
}

// Fixed always returns the sample at the same fraction of the requested
// interval: Fixed(0) yields min and Fixed(0.5) the midpoint. Values outside
// [0, 1] are clamped, and like every RandomSource the result stays below max.
type Fixed float64

func (f Fixed) Uniform(min, max float64) float64 {
	return scale(math.Max(0, math.Min(float64(f), 1)), min, max)
}

// scale maps frac in [0, 1] onto [min, max). Rounding can land a fraction
// just below 1 on max itself, so the result is clamped to the largest float
// below max.
func scale(frac, min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + frac*(max-min)
	if v >= max {
		return math.Nextafter(max, min)
	}
	return v
}

// UniformInt returns an integer drawn uniformly from the closed range
// [min, max] using src.
func UniformInt(src RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	v := int(math.Floor(src.Uniform(float64(min), float64(max)+1)))
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
