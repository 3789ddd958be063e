package simulate

import (
	"context"
	"time"
)

// Bounds of the simulated request work.
const (
	MinWork = 100 * time.Millisecond
	MaxWork = 500 * time.Millisecond
)

// Worker performs simulated work.
type Worker interface {
	// Work blocks the calling goroutine for d, or until ctx is done, in which
	// case it returns ctx.Err().
	Work(ctx context.Context, d time.Duration) error
}

// TimerWorker waits on a timer without holding any shared resource, so
// concurrent calls never delay each other.
type TimerWorker struct{}

// NewTimerWorker returns a TimerWorker.
func NewTimerWorker() *TimerWorker {
	return &TimerWorker{}
}

func (w *TimerWorker) Work(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopWorker returns immediately.
type NopWorker struct{}

func (NopWorker) Work(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// WorkDuration samples a duration from [MinWork, MaxWork).
func WorkDuration(src RandomSource) time.Duration {
	seconds := src.Uniform(MinWork.Seconds(), MaxWork.Seconds())
	return time.Duration(seconds * float64(time.Second))
}
