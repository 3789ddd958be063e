package metrics

import "fmt"

// CreateCounter declares a counter on the registry.
func (r *Registry) CreateCounter(name, help string, labels []string) (*Counter, error) {
	instrument, err := r.Register(name, KindCounter, help, labels)
	if err != nil {
		return nil, err
	}
	return instrument.(*Counter), nil
}

// CreateGauge declares a gauge on the registry.
func (r *Registry) CreateGauge(name, help string, labels []string) (*Gauge, error) {
	instrument, err := r.Register(name, KindGauge, help, labels)
	if err != nil {
		return nil, err
	}
	return instrument.(*Gauge), nil
}

// CreateHistogram declares a histogram on the registry.
func (r *Registry) CreateHistogram(name, help string, labels []string, buckets []float64) (*Histogram, error) {
	instrument, err := r.Register(name, KindHistogram, help, labels, WithBuckets(buckets...))
	if err != nil {
		return nil, err
	}
	return instrument.(*Histogram), nil
}

// MustCreateCounter is like CreateCounter but panics on error. Use it only
// for static declarations at process start.
func (r *Registry) MustCreateCounter(name, help string, labels []string) *Counter {
	c, err := r.CreateCounter(name, help, labels)
	if err != nil {
		panic(fmt.Sprintf("metrics: %v", err))
	}
	return c
}

// MustCreateGauge is like CreateGauge but panics on error.
func (r *Registry) MustCreateGauge(name, help string, labels []string) *Gauge {
	g, err := r.CreateGauge(name, help, labels)
	if err != nil {
		panic(fmt.Sprintf("metrics: %v", err))
	}
	return g
}

// MustCreateHistogram is like CreateHistogram but panics on error.
func (r *Registry) MustCreateHistogram(name, help string, labels []string, buckets []float64) *Histogram {
	h, err := r.CreateHistogram(name, help, labels, buckets)
	if err != nil {
		panic(fmt.Sprintf("metrics: %v", err))
	}
	return h
}
