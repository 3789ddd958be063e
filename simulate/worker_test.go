package simulate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/hello-monitor/simulate"
)

func TestWorkDuration_Bounds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, simulate.MinWork, simulate.WorkDuration(simulate.Fixed(0)))
	assert.InDelta(t, float64(300*time.Millisecond), float64(simulate.WorkDuration(simulate.Fixed(0.5))), float64(time.Microsecond))

	assert.Less(t, simulate.WorkDuration(simulate.Fixed(1)), simulate.MaxWork)

	src := simulate.NewRandomSource()
	for i := 0; i < 1000; i++ {
		d := simulate.WorkDuration(src)
		assert.GreaterOrEqual(t, d, simulate.MinWork)
		assert.Less(t, d, simulate.MaxWork)
	}
}

func TestTimerWorker_Waits(t *testing.T) {
	t.Parallel()
	start := time.Now()
	require.NoError(t, simulate.NewTimerWorker().Work(context.Background(), 50*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestTimerWorker_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := simulate.NewTimerWorker().Work(ctx, 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTimerWorker_ConcurrentCallsOverlap(t *testing.T) {
	t.Parallel()
	w := simulate.NewTimerWorker()

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Work(context.Background(), 100*time.Millisecond))
		}()
	}
	wg.Wait()

	assert.Less(t, time.Since(start), time.Second)
}

func TestNopWorker(t *testing.T) {
	t.Parallel()
	assert.NoError(t, simulate.NopWorker{}.Work(context.Background(), time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, simulate.NopWorker{}.Work(ctx, time.Hour), context.Canceled)
}
