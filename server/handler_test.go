package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/metrics"
	"github.com/aalemi-dev/hello-monitor/server"
	"github.com/aalemi-dev/hello-monitor/simulate"
	"github.com/aalemi-dev/hello-monitor/tracer"
)

type fixture struct {
	router   *gin.Engine
	registry *metrics.Registry
	logs     *observer.ObservedLogs
}

func newFixture(t *testing.T, worker simulate.Worker, rng simulate.RandomSource) *fixture {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.LoggerClient{Zap: zap.New(core)}

	tr, err := tracer.NewClient(tracer.Config{ServiceName: "server-test", AppEnv: "test"})
	require.NoError(t, err)

	registry := metrics.NewRegistry()
	inst, err := server.NewInstruments(registry)
	require.NoError(t, err)
	server.RegisterScrapeHooks(registry, inst, log)

	db := server.NewDatabase(rng, inst, log)
	h := server.NewHandler(inst, worker, rng, db, tr, log)

	return &fixture{
		router:   server.NewRouter(h, registry, log),
		registry: registry,
		logs:     logs,
	}
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *fixture) family(t *testing.T, name string) metrics.Family {
	t.Helper()
	families, err := f.registry.Snapshot()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.Name == name {
			return fam
		}
	}
	t.Fatalf("family %q not found", name)
	return metrics.Family{}
}

func (f *fixture) requestCount(t *testing.T) float64 {
	t.Helper()
	s, ok := f.family(t, server.RequestsTotalName).Lookup(metrics.Labels{"method": "GET", "endpoint": "/"})
	if !ok {
		return 0
	}
	return s.Value
}

func TestGreeting_Response(t *testing.T) {
	f := newFixture(t, simulate.NewTimerWorker(), simulate.NewRandomSource())

	start := time.Now()
	rec := f.get(t, "/")
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, server.Greeting, rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.GreaterOrEqual(t, elapsed, simulate.MinWork)
	assert.Less(t, elapsed, 750*time.Millisecond)
}

func TestGreeting_CountsEveryCall(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))

	assert.Zero(t, f.requestCount(t))
	for i := 0; i < 7; i++ {
		require.Equal(t, http.StatusOK, f.get(t, "/").Code)
	}
	assert.Equal(t, 7.0, f.requestCount(t))
}

func TestGreeting_Concurrent(t *testing.T) {
	f := newFixture(t, simulate.NewTimerWorker(), simulate.Fixed(0))

	const k = 50
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(k), f.requestCount(t))
	assert.Less(t, time.Since(start), 2*time.Second, "simulated work must not serialize requests")
}

func TestGreeting_RecordsResponseTime(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))

	for i := 0; i < 4; i++ {
		f.get(t, "/")
	}

	s, ok := f.family(t, server.ResponseTimeName).Lookup(metrics.Labels{"endpoint": "/"})
	require.True(t, ok)
	require.NotNil(t, s.Histogram)
	assert.Equal(t, uint64(4), s.Histogram.Count)
	assert.GreaterOrEqual(t, s.Histogram.Sum, 0.0)

	buckets := s.Histogram.Buckets
	require.NotEmpty(t, buckets)
	for i := 1; i < len(buckets); i++ {
		assert.LessOrEqual(t, buckets[i-1].CumulativeCount, buckets[i].CumulativeCount)
	}
	assert.Equal(t, s.Histogram.Count, buckets[len(buckets)-1].CumulativeCount)
}

func TestGreeting_DBQueryGauge(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.NewRandomSource())

	for i := 0; i < 25; i++ {
		f.get(t, "/")
		s, ok := f.family(t, server.DBQueryDurationName).Lookup(nil)
		require.True(t, ok)
		assert.Equal(t, float64(int(s.Value)), s.Value, "query duration must be whole milliseconds")
		assert.GreaterOrEqual(t, s.Value, 10.0)
		assert.LessOrEqual(t, s.Value, 100.0)
	}
}

func TestGreeting_CancelledRequest(t *testing.T) {
	f := newFixture(t, simulate.NewTimerWorker(), simulate.Fixed(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, f.requestCount(t))
	assert.Equal(t, 1, f.logs.FilterMessage("Simulated work interrupted").Len())
}

// finishingWorker completes its work even when the request is already done.
type finishingWorker struct{}

func (finishingWorker) Work(context.Context, time.Duration) error { return nil }

func TestGreeting_QueryFailure(t *testing.T) {
	f := newFixture(t, finishingWorker{}, simulate.Fixed(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	failures := f.logs.FilterMessage("Simulated query failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.WarnLevel, failures[0].Level)
	assert.Equal(t, context.Canceled.Error(), failures[0].ContextMap()["error"])

	_, ok := f.family(t, server.ResponseTimeName).Lookup(metrics.Labels{"endpoint": "/"})
	assert.False(t, ok)
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))
	f.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := f.get(t, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, f.logs.FilterMessage("Recovered from panic").Len())

	assert.Equal(t, http.StatusOK, f.get(t, "/").Code)
}

func TestMetrics_AfterThreeGreetings(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))

	for i := 0; i < 3; i++ {
		f.get(t, "/")
	}

	rec := f.get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))

	body := rec.Body.String()
	assert.Contains(t, body, "# HELP http_requests_total Total HTTP Requests\n")
	assert.Contains(t, body, "# TYPE http_requests_total counter\n")
	assert.Contains(t, body, "\nhttp_requests_total{method=\"GET\",endpoint=\"/\"} 3\n")
	assert.Contains(t, body, "http_response_time_seconds_count{endpoint=\"/\"} 3\n")
}

func TestMetrics_RepeatedScrapes(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))
	f.get(t, "/")

	for i := 0; i < 5; i++ {
		rec := f.get(t, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		body, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "\ncpu_usage_percent 42.5\n")
	}

	assert.Equal(t, 1.0, f.requestCount(t))

	s, ok := f.family(t, server.CPUUsageName).Lookup(nil)
	require.True(t, ok)
	assert.Equal(t, server.SimulatedCPUPercent, s.Value)
}

func TestMetrics_BeforeAnyGreeting(t *testing.T) {
	f := newFixture(t, simulate.NopWorker{}, simulate.Fixed(0))

	body := f.get(t, "/metrics").Body.String()
	assert.Contains(t, body, "# TYPE http_requests_total counter\n")
	assert.NotContains(t, body, "http_requests_total{")
	assert.Contains(t, body, "\ncpu_usage_percent 42.5\n")
}

func TestNewInstruments_Conflict(t *testing.T) {
	registry := metrics.NewRegistry()
	_, err := registry.CreateGauge(server.RequestsTotalName, "taken", nil)
	require.NoError(t, err)

	_, err = server.NewInstruments(registry)
	assert.ErrorIs(t, err, metrics.ErrDuplicateName)
}
