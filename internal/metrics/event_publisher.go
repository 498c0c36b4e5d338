package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_publisher",
		Name:      "messages_total",
		Help:      "Count of published score events.",
	}, []string{"status"})
	eventPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_publisher",
		Name:      "flush_duration_seconds",
		Help:      "Duration of publishing a batch of score events.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// EventPublisher tracks metrics for score event publishing.
type EventPublisher struct{}

// NewEventPublisher creates an EventPublisher metrics collector.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// Observe records a flushed batch of messages.
func (m EventPublisher) Observe(err error, messages int, started time.Time) {
	status := statusOf(err)

	eventPublishTotal.WithLabelValues(status).Add(float64(messages))
	eventPublishDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
