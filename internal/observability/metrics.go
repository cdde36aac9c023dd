package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpleadvert_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UnitOfWorkLatency records transaction latency by operation and outcome.
	UnitOfWorkLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "simpleadvert_unit_of_work_latency_seconds",
		Help:    "Unit of work latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	// PermissionDenials counts operations rejected by ownership or role checks.
	PermissionDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpleadvert_permission_denials_total",
		Help: "Total number of operations rejected by ownership or role checks",
	}, []string{"resource", "operation"})

	// DescriptionConflicts counts advert writes rejected for a duplicate description.
	DescriptionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "simpleadvert_description_conflicts_total",
		Help: "Total number of advert writes rejected for a duplicate description",
	})
)

// TrackUnitOfWork returns a function that records latency when called with the result (e.g. defer).
func TrackUnitOfWork(operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		outcome := "commit"
		if err != nil {
			outcome = "rollback"
		}
		UnitOfWorkLatency.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	}
}
