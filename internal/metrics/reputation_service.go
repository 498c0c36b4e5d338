package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Score request outcomes.
const (
	ScoreCacheHit        = "cache_hit"
	ScoreComputed        = "computed"
	ScoreError           = "error"
	EnhancedBlended      = "enhanced"
	EnhancedDegraded     = "degraded"
	EnhancedStandardOnly = "standard_only"
)

var (
	scoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "score_requests_total",
		Help:      "Count of score requests by outcome.",
	}, []string{"outcome"})

	scoreComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "score_duration_seconds",
		Help:      "Duration of score requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	enhancedRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "enhanced_requests_total",
		Help:      "Count of enhanced score requests by outcome.",
	}, []string{"outcome"})

	recalculationItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "recalculation_items_total",
		Help:      "Count of wallets processed by bulk recalculation.",
	}, []string{"status"})

	recalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "recalculation_duration_seconds",
		Help:      "Duration of bulk recalculation runs.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	})

	syncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "sync_total",
		Help:      "Count of wallet transaction syncs.",
	}, []string{"status"})

	syncInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reputation_service",
		Name:      "sync_inserted_transactions_total",
		Help:      "Count of transactions inserted by syncs.",
	})
)

// ReputationService tracks metrics for the scoring pipeline.
type ReputationService struct{}

// NewReputationService creates a ReputationService metrics collector.
func NewReputationService() *ReputationService {
	return &ReputationService{}
}

// ObserveScore records a standard score request.
func (m ReputationService) ObserveScore(outcome string, started time.Time) {
	scoreRequestsTotal.WithLabelValues(outcome).Inc()
	scoreComputeDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveEnhanced records how an enhanced request resolved.
func (m ReputationService) ObserveEnhanced(outcome string) {
	enhancedRequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRecalculation records a finished bulk recalculation.
func (m ReputationService) ObserveRecalculation(success, failed int, started time.Time) {
	recalculationItemsTotal.WithLabelValues("success").Add(float64(success))
	recalculationItemsTotal.WithLabelValues("error").Add(float64(failed))
	recalculationDuration.Observe(time.Since(started).Seconds())
}

// ObserveSync records one transaction sync.
func (m ReputationService) ObserveSync(err error, inserted int) {
	syncTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		syncInsertedTotal.Add(float64(inserted))
	}
}
