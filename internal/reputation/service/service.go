// Package service is the entry point of the reputation pipeline. It decides between
// cached and fresh scores, runs the score engine, persists results and optionally
// blends in a secondary scorer.
package service

import (
	"time"

	"go.uber.org/zap"
)

// Config tunes the reputation service.
type Config struct {
	// CacheDuration is the maximum age of a stored score that is still served.
	CacheDuration time.Duration
	// SecondaryWeight is the share of the secondary score in an enhanced blend.
	SecondaryWeight float64
	// RecalculationWorkers bounds bulk recompute concurrency; 1 processes wallets sequentially.
	RecalculationWorkers int
}

// DefaultConfig returns the service defaults.
func DefaultConfig() Config {
	return Config{
		CacheDuration:        time.Hour,
		SecondaryWeight:      0.3,
		RecalculationWorkers: 1,
	}
}

// ReputationService orchestrates score computation for wallets.
type ReputationService struct {
	profiles  ProfileResolver
	stats     StatsAggregator
	scores    ScoreStore
	registry  WalletRegistry
	secondary SecondaryScorer
	events    EventPublisher
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
	now       func() time.Time
}

// NewReputationService wires the service. secondary and events may be nil, which
// disables enhanced blending and event publishing respectively.
func NewReputationService(
	profiles ProfileResolver,
	stats StatsAggregator,
	scores ScoreStore,
	registry WalletRegistry,
	secondary SecondaryScorer,
	events EventPublisher,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) *ReputationService {
	defaults := DefaultConfig()
	if cfg.CacheDuration <= 0 {
		cfg.CacheDuration = defaults.CacheDuration
	}
	if cfg.SecondaryWeight <= 0 || cfg.SecondaryWeight >= 1 {
		cfg.SecondaryWeight = defaults.SecondaryWeight
	}
	if cfg.RecalculationWorkers <= 0 {
		cfg.RecalculationWorkers = defaults.RecalculationWorkers
	}

	return &ReputationService{
		profiles:  profiles,
		stats:     stats,
		scores:    scores,
		registry:  registry,
		secondary: secondary,
		events:    events,
		metrics:   metrics,
		logger:    logger.Named("reputation"),
		cfg:       cfg,
		now:       time.Now,
	}
}
