package metrics

import (
	"fmt"
	"math"
	"sort"

	dto "github.com/prometheus/client_model/go"
)

// Snapshot returns a read-only copy of every instrument, ordered by metric
// name. Series are ordered by label values and report them in the declared
// key order. Instruments with labels that have not been observed yet appear
// with no series.
func (r *Registry) Snapshot() ([]Family, error) {
	r.mu.RLock()
	descs := make([]*descriptor, 0, len(r.instruments))
	for _, e := range r.instruments {
		descs = append(descs, e.desc)
	}
	r.mu.RUnlock()
	sort.Slice(descs, func(i, j int) bool { return descs[i].name < descs[j].name })

	gathered, err := r.prom.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	byName := make(map[string]*dto.MetricFamily, len(gathered))
	for _, mf := range gathered {
		byName[mf.GetName()] = mf
	}

	families := make([]Family, 0, len(descs))
	for _, d := range descs {
		families = append(families, d.family(byName[d.name]))
	}
	return families, nil
}

// family converts a gathered metric family into the declared schema. mf may
// be nil when no series exist yet.
func (d *descriptor) family(mf *dto.MetricFamily) Family {
	f := Family{
		Name:      d.name,
		Kind:      d.kind,
		Help:      d.help,
		LabelKeys: d.LabelKeys(),
	}
	if mf == nil {
		return f
	}

	f.Series = make([]Series, 0, len(mf.GetMetric()))
	for _, m := range mf.GetMetric() {
		values := make(map[string]string, len(m.GetLabel()))
		for _, lp := range m.GetLabel() {
			values[lp.GetName()] = lp.GetValue()
		}
		s := Series{LabelValues: make([]string, len(d.labelKeys))}
		for i, key := range d.labelKeys {
			s.LabelValues[i] = values[key]
		}

		switch d.kind {
		case KindCounter:
			s.Value = m.GetCounter().GetValue()
		case KindGauge:
			s.Value = m.GetGauge().GetValue()
		case KindHistogram:
			s.Histogram = histogramData(m.GetHistogram())
		}
		f.Series = append(f.Series, s)
	}
	return f
}

func histogramData(h *dto.Histogram) *HistogramData {
	data := &HistogramData{
		Count: h.GetSampleCount(),
		Sum:   h.GetSampleSum(),
	}
	for _, b := range h.GetBucket() {
		if math.IsInf(b.GetUpperBound(), +1) {
			continue
		}
		data.Buckets = append(data.Buckets, Bucket{
			UpperBound:      b.GetUpperBound(),
			CumulativeCount: b.GetCumulativeCount(),
		})
	}
	data.Buckets = append(data.Buckets, Bucket{
		UpperBound:      math.Inf(+1),
		CumulativeCount: data.Count,
	})
	return data
}
