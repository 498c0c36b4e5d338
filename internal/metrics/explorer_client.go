package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of block explorer API calls.",
	}, []string{"operation", "network", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block explorer API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	explorerRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "rows_total",
		Help:      "Count of transaction rows returned by the block explorer.",
	}, []string{"network"})
)

// ExplorerClient tracks metrics for calls to the external transaction source.
type ExplorerClient struct {
	network string
}

// NewExplorerClient constructs a metrics collector for explorer calls.
func NewExplorerClient(network string) *ExplorerClient {
	if network == "" {
		network = "unknown"
	}
	return &ExplorerClient{network: network}
}

// Observe records a single explorer call outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	explorerRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveRows records how many rows a successful call returned.
func (m ExplorerClient) ObserveRows(rows int) {
	explorerRowsTotal.WithLabelValues(m.network).Add(float64(rows))
}
