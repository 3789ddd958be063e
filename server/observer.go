package server

import (
	"github.com/aalemi-dev/hello-monitor/logger"
	"github.com/aalemi-dev/hello-monitor/observability"
	"github.com/aalemi-dev/hello-monitor/simulate"
)

// NewQueryObserver records successful simulated database queries into the
// db_query_duration_ms gauge as whole milliseconds.
func NewQueryObserver(inst *Instruments, log logger.Logger) observability.Observer {
	return observability.ObserverFunc(func(op observability.OperationContext) {
		if op.Component != "database" || op.Error != nil {
			return
		}
		if err := inst.DBQuery.Set(float64(op.Duration.Milliseconds()), nil); err != nil {
			log.Error("Failed to record query duration", err, map[string]interface{}{"metric": DBQueryDurationName})
		}
	})
}

// NewLogObserver logs every simulated operation at debug level, and failed
// ones at warn level.
func NewLogObserver(log logger.Logger) observability.Observer {
	return observability.ObserverFunc(func(op observability.OperationContext) {
		fields := map[string]interface{}{
			"component":   op.Component,
			"operation":   op.Operation,
			"resource":    op.Resource,
			"duration_ms": op.Duration.Milliseconds(),
		}
		if op.Error != nil {
			log.Warn("Simulated operation failed", op.Error, fields)
			return
		}
		log.Debug("Simulated operation completed", nil, fields)
	})
}

// NewDatabase builds the simulated database reporting to both observers.
func NewDatabase(rng simulate.RandomSource, inst *Instruments, log logger.Logger) *simulate.Database {
	return simulate.NewDatabase(rng, observability.Multi(NewQueryObserver(inst, log), NewLogObserver(log)))
}
