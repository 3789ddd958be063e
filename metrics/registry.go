package metrics

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// DefaultBuckets are the histogram upper bounds used when none are given.
var DefaultBuckets = prometheus.DefBuckets

var (
	metricNameRE = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	labelNameRE  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Registry holds the application instruments and their current values.
//
// Values live in client_golang vectors, so Inc, Set and Observe are lock-free
// and never contend with each other or with Snapshot. The registry itself
// only locks its schema table on Register and while copying it in Snapshot.
type Registry struct {
	mu          sync.RWMutex
	instruments map[string]entry
	prom        *prometheus.Registry

	hooksMu sync.Mutex
	hooks   []func()
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		instruments: make(map[string]entry),
		prom:        prometheus.NewRegistry(),
	}
}

type entry struct {
	desc       *descriptor
	instrument Instrument
}

// Option customizes a registration.
type Option func(*descriptor)

// WithBuckets sets histogram upper bounds. Ignored for other kinds.
func WithBuckets(buckets ...float64) Option {
	return func(d *descriptor) {
		d.buckets = slices.Clone(buckets)
	}
}

// Register declares a metric. Registering a name again with the same kind and
// label keys returns the existing instrument; a different kind or label schema
// fails with ErrDuplicateName.
func (r *Registry) Register(name string, kind Kind, help string, labelKeys []string, opts ...Option) (Instrument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.instruments[name]; ok {
		if existing.desc.sameSchema(kind, labelKeys) {
			return existing.instrument, nil
		}
		return nil, fmt.Errorf("%w: %q is a %s with labels %v", ErrDuplicateName, name, existing.desc.kind, existing.desc.labelKeys)
	}

	if err := validateSchema(name, kind, labelKeys); err != nil {
		return nil, err
	}
	if err := r.checkSeriesNames(name, kind); err != nil {
		return nil, err
	}

	desc := &descriptor{
		name:      name,
		kind:      kind,
		help:      help,
		labelKeys: slices.Clone(labelKeys),
	}
	for _, opt := range opts {
		opt(desc)
	}

	var (
		collector  prometheus.Collector
		instrument Instrument
	)
	switch kind {
	case KindCounter:
		vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, desc.labelKeys)
		collector, instrument = vec, &Counter{descriptor: desc, vec: vec}
	case KindGauge:
		vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, desc.labelKeys)
		collector, instrument = vec, &Gauge{descriptor: desc, vec: vec}
	case KindHistogram:
		buckets, err := normalizeBuckets(desc.buckets)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		desc.buckets = buckets
		vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, desc.labelKeys)
		collector, instrument = vec, &Histogram{descriptor: desc, vec: vec}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	if err := r.prom.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return nil, fmt.Errorf("%w: %q: %v", ErrDuplicateName, name, err)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidName, name, err)
	}

	// An unlabeled instrument has exactly one series; create it now so it is
	// exposed with its zero value before the first update.
	if len(desc.labelKeys) == 0 {
		switch v := collector.(type) {
		case *prometheus.CounterVec:
			v.WithLabelValues()
		case *prometheus.GaugeVec:
			v.WithLabelValues()
		case *prometheus.HistogramVec:
			v.WithLabelValues()
		}
	}

	r.instruments[name] = entry{desc: desc, instrument: instrument}
	return instrument, nil
}

// Lookup returns the instrument registered under name.
func (r *Registry) Lookup(name string) (Instrument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.instruments[name]
	return e.instrument, ok
}

// Gather implements prometheus.Gatherer over the application instruments.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.prom.Gather()
}

// OnScrape registers a hook run by Handler before every scrape.
func (r *Registry) OnScrape(hook func()) {
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()
	r.hooks = append(r.hooks, hook)
}

func (r *Registry) runScrapeHooks() {
	r.hooksMu.Lock()
	hooks := slices.Clone(r.hooks)
	r.hooksMu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// histogramSuffixes are appended to a histogram name in the exposition.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// checkSeriesNames rejects a name that would collide with the series names
// of a registered histogram, or a histogram whose series names are taken.
// The caller holds r.mu.
func (r *Registry) checkSeriesNames(name string, kind Kind) error {
	for _, suffix := range histogramSuffixes {
		base, ok := strings.CutSuffix(name, suffix)
		if !ok {
			continue
		}
		if existing, ok := r.instruments[base]; ok && existing.desc.kind == KindHistogram {
			return fmt.Errorf("%w: %q collides with histogram %q", ErrDuplicateName, name, base)
		}
	}

	if kind != KindHistogram {
		return nil
	}
	for _, suffix := range histogramSuffixes {
		if existing, ok := r.instruments[name+suffix]; ok {
			return fmt.Errorf("%w: histogram %q collides with %s %q", ErrDuplicateName, name, existing.desc.kind, name+suffix)
		}
	}
	return nil
}

// normalizeBuckets applies the default bounds, drops a trailing +Inf and
// requires the remaining bounds to be finite and strictly increasing.
func normalizeBuckets(buckets []float64) ([]float64, error) {
	if len(buckets) == 0 {
		return slices.Clone(DefaultBuckets), nil
	}
	if math.IsInf(buckets[len(buckets)-1], +1) {
		buckets = buckets[:len(buckets)-1]
		if len(buckets) == 0 {
			return slices.Clone(DefaultBuckets), nil
		}
	}
	for i, b := range buckets {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, fmt.Errorf("%w: bucket %v is not finite", ErrInvalidValue, b)
		}
		if i > 0 && b <= buckets[i-1] {
			return nil, fmt.Errorf("%w: buckets must be strictly increasing (%v <= %v)", ErrInvalidValue, b, buckets[i-1])
		}
	}
	return slices.Clone(buckets), nil
}

// validateSchema applies the classic exposition naming rules. "le" is
// reserved for histogram buckets.
func validateSchema(name string, kind Kind, labelKeys []string) error {
	if !metricNameRE.MatchString(name) {
		return fmt.Errorf("%w: metric name %q", ErrInvalidName, name)
	}
	seen := make(map[string]struct{}, len(labelKeys))
	for _, key := range labelKeys {
		if !labelNameRE.MatchString(key) || strings.HasPrefix(key, "__") {
			return fmt.Errorf("%w: label name %q on %s", ErrInvalidName, key, name)
		}
		if kind == KindHistogram && key == "le" {
			return fmt.Errorf("%w: label name %q is reserved on histogram %s", ErrInvalidName, key, name)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: label name %q repeated on %s", ErrInvalidName, key, name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
