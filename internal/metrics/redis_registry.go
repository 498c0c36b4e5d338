package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	redisRegistryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "redis_registry",
		Name:      "operations_total",
		Help:      "Count of wallet registry operations.",
	}, []string{"operation", "status"})
	redisRegistryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "redis_registry",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet registry operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})
)

// RedisRegistry tracks metrics for the Redis wallet registry.
type RedisRegistry struct{}

// NewRedisRegistry creates a RedisRegistry metrics collector.
func NewRedisRegistry() *RedisRegistry {
	return &RedisRegistry{}
}

// Observe records duration and status of a registry operation.
func (m RedisRegistry) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	redisRegistryRequestsTotal.WithLabelValues(operation, status).Inc()
	redisRegistryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
