package metrics

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// ContentTypeText is the content type of the plain-text exposition format.
const ContentTypeText = "text/plain; version=0.0.4; charset=utf-8"

var (
	helpEscaper       = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	labelValueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)
)

// WriteText renders families in the plain-text exposition format:
//
//	# HELP http_requests_total Total HTTP Requests
//	# TYPE http_requests_total counter
//	http_requests_total{method="GET",endpoint="/"} 3
//
// Labels are written in declared order. Histograms emit one _bucket line per
// upper bound (le last), followed by _sum and _count.
func WriteText(w io.Writer, families []Family) error {
	bw := bufio.NewWriter(w)
	for _, f := range families {
		bw.WriteString("# HELP ")
		bw.WriteString(f.Name)
		bw.WriteByte(' ')
		bw.WriteString(helpEscaper.Replace(f.Help))
		bw.WriteString("\n# TYPE ")
		bw.WriteString(f.Name)
		bw.WriteByte(' ')
		bw.WriteString(f.Kind.String())
		bw.WriteByte('\n')

		for _, s := range f.Series {
			if f.Kind != KindHistogram || s.Histogram == nil {
				writeSample(bw, f.Name, f.LabelKeys, s.LabelValues, "", 0, s.Value)
				continue
			}
			for _, b := range s.Histogram.Buckets {
				writeSample(bw, f.Name+"_bucket", f.LabelKeys, s.LabelValues, "le", b.UpperBound, float64(b.CumulativeCount))
			}
			writeSample(bw, f.Name+"_sum", f.LabelKeys, s.LabelValues, "", 0, s.Histogram.Sum)
			writeSample(bw, f.Name+"_count", f.LabelKeys, s.LabelValues, "", 0, float64(s.Histogram.Count))
		}
	}
	return bw.Flush()
}

// writeSample writes one sample line. extraKey, when set, is appended after
// the declared labels with extraValue formatted as a float.
func writeSample(bw *bufio.Writer, name string, keys, values []string, extraKey string, extraValue, value float64) {
	bw.WriteString(name)
	if len(keys) > 0 || extraKey != "" {
		bw.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				bw.WriteByte(',')
			}
			writeLabel(bw, key, labelValueEscaper.Replace(values[i]))
		}
		if extraKey != "" {
			if len(keys) > 0 {
				bw.WriteByte(',')
			}
			writeLabel(bw, extraKey, formatFloat(extraValue))
		}
		bw.WriteByte('}')
	}
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(value))
	bw.WriteByte('\n')
}

func writeLabel(bw *bufio.Writer, key, value string) {
	bw.WriteString(key)
	bw.WriteString(`="`)
	bw.WriteString(value)
	bw.WriteByte('"')
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
