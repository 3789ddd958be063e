package metrics

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Kind identifies the type of an instrument.
type Kind int

const (
	KindCounter Kind = iota + 1
	KindGauge
	KindHistogram
)

// String returns the name used on the "# TYPE" line of the exposition format.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	default:
		return "untyped"
	}
}

// Labels maps label names to label values for a single observation.
// A nil or empty Labels is valid for instruments declared without label keys.
type Labels map[string]string

// Instrument is the common view of every registered metric.
type Instrument interface {
	// Name returns the metric name.
	Name() string

	// Kind returns the instrument type.
	Kind() Kind

	// Help returns the help text.
	Help() string

	// LabelKeys returns the declared label keys in declaration order.
	LabelKeys() []string
}

// descriptor is the schema of a registered instrument.
type descriptor struct {
	name      string
	kind      Kind
	help      string
	labelKeys []string
	buckets   []float64
}

func (d *descriptor) Name() string        { return d.name }
func (d *descriptor) Kind() Kind          { return d.kind }
func (d *descriptor) Help() string        { return d.help }
func (d *descriptor) LabelKeys() []string { return slices.Clone(d.labelKeys) }

// sameSchema reports whether a registration request matches this descriptor.
// Label keys are compared as a set.
func (d *descriptor) sameSchema(kind Kind, labelKeys []string) bool {
	if d.kind != kind || len(d.labelKeys) != len(labelKeys) {
		return false
	}
	a, b := slices.Clone(d.labelKeys), slices.Clone(labelKeys)
	sort.Strings(a)
	sort.Strings(b)
	return slices.Equal(a, b)
}

// checkLabels validates that labels carries exactly the declared keys.
func (d *descriptor) checkLabels(labels Labels) error {
	if len(labels) != len(d.labelKeys) {
		return d.labelError(labels)
	}
	for _, key := range d.labelKeys {
		if _, ok := labels[key]; !ok {
			return d.labelError(labels)
		}
	}
	return nil
}

func (d *descriptor) labelError(labels Labels) error {
	got := make([]string, 0, len(labels))
	for key := range labels {
		got = append(got, key)
	}
	sort.Strings(got)
	return fmt.Errorf("%w: %s expects %v, got %v", ErrLabelMismatch, d.name, d.labelKeys, got)
}

// Counter is a monotonically increasing instrument.
type Counter struct {
	*descriptor
	vec *prometheus.CounterVec
}

// Inc adds exactly one to the series identified by labels.
func (c *Counter) Inc(labels Labels) error {
	if err := c.checkLabels(labels); err != nil {
		return err
	}
	counter, err := c.vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, c.name, err)
	}
	counter.Inc()
	return nil
}

// Gauge holds the last value set for each series.
type Gauge struct {
	*descriptor
	vec *prometheus.GaugeVec
}

// Set overwrites the series identified by labels. NaN and infinite values
// are rejected with ErrInvalidValue and leave the stored value unchanged.
func (g *Gauge) Set(value float64, labels Labels) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s: gauge value %v is not finite", ErrInvalidValue, g.name, value)
	}
	if err := g.checkLabels(labels); err != nil {
		return err
	}
	gauge, err := g.vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, g.name, err)
	}
	gauge.Set(value)
	return nil
}

// Histogram tracks the distribution of non-negative observations.
type Histogram struct {
	*descriptor
	vec *prometheus.HistogramVec
}

// Observe records value in the series identified by labels. The value must be
// finite and not negative.
func (h *Histogram) Observe(value float64, labels Labels) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %s: observation %v must be finite and >= 0", ErrInvalidValue, h.name, value)
	}
	if err := h.checkLabels(labels); err != nil {
		return err
	}
	observer, err := h.vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, h.name, err)
	}
	observer.Observe(value)
	return nil
}

// Buckets returns the upper bounds of the histogram, without +Inf.
func (h *Histogram) Buckets() []float64 {
	return slices.Clone(h.buckets)
}

// Family is the point-in-time state of one instrument.
type Family struct {
	Name      string
	Kind      Kind
	Help      string
	LabelKeys []string
	Series    []Series
}

// Lookup returns the series matching labels exactly.
func (f Family) Lookup(labels Labels) (Series, bool) {
	if len(labels) != len(f.LabelKeys) {
		return Series{}, false
	}
	for _, s := range f.Series {
		match := true
		for i, key := range f.LabelKeys {
			if v, ok := labels[key]; !ok || v != s.LabelValues[i] {
				match = false
				break
			}
		}
		if match {
			return s, true
		}
	}
	return Series{}, false
}

// Series is one label combination of a Family. LabelValues follow the order
// of Family.LabelKeys. Value is set for counters and gauges, Histogram for
// histograms.
type Series struct {
	LabelValues []string
	Value       float64
	Histogram   *HistogramData
}

// HistogramData holds cumulative bucket counts, the sum and the count of a
// histogram series. The last bucket is always +Inf.
type HistogramData struct {
	Buckets []Bucket
	Count   uint64
	Sum     float64
}

// Bucket is a cumulative histogram bucket.
type Bucket struct {
	UpperBound      float64
	CumulativeCount uint64
}
