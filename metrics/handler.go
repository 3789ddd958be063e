package metrics

import (
	"bytes"
	"net/http"

	"github.com/prometheus/common/expfmt"

	"github.com/aalemi-dev/hello-monitor/logger"
)

// HandlerOpts configures the exposition handler.
type HandlerOpts struct {
	// ErrorLog receives snapshot and encoding failures. Optional.
	ErrorLog logger.Logger
}

// Handler serves the registry at scrape time. Scrape hooks run first, then
// the snapshot is rendered with WriteText as text/plain. Scrapers that
// negotiate protobuf or OpenMetrics through the Accept header are served by
// expfmt instead.
func (r *Registry) Handler(opts HandlerOpts) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.runScrapeHooks()

		format := expfmt.NegotiateIncludingOpenMetrics(req.Header)
		switch format.FormatType() {
		case expfmt.TypeProtoDelim, expfmt.TypeProtoText, expfmt.TypeProtoCompact, expfmt.TypeOpenMetrics:
			r.serveEncoded(w, format, opts)
			return
		}

		families, err := r.Snapshot()
		if err != nil {
			opts.logError("failed to snapshot metrics", err)
			http.Error(w, "failed to collect metrics", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := WriteText(&buf, families); err != nil {
			opts.logError("failed to encode metrics", err)
			http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", ContentTypeText)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	})
}

func (r *Registry) serveEncoded(w http.ResponseWriter, format expfmt.Format, opts HandlerOpts) {
	gathered, err := r.prom.Gather()
	if err != nil {
		opts.logError("failed to gather metrics", err)
		http.Error(w, "failed to collect metrics", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, format)
	for _, mf := range gathered {
		if err := enc.Encode(mf); err != nil {
			opts.logError("failed to encode metrics", err, map[string]interface{}{"format": string(format)})
			http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
			return
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		if err := closer.Close(); err != nil {
			opts.logError("failed to finish metrics encoding", err)
			http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", string(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (o HandlerOpts) logError(msg string, err error, fields ...map[string]interface{}) {
	if o.ErrorLog != nil {
		o.ErrorLog.Error(msg, err, fields...)
	}
}
