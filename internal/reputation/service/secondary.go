package service

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/clock"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/scoring"
)

const (
	// DefaultSimulatedLatency mimics model inference time.
	DefaultSimulatedLatency = 500 * time.Millisecond

	simulatedSpread = 0.15
)

// SimulatedScorer stands in for a model-backed secondary scorer. It perturbs the
// deterministic score by up to ±15% and attaches two generated factors.
type SimulatedScorer struct {
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedScorer builds a SimulatedScorer; the seed makes its output reproducible.
func NewSimulatedScorer(latency time.Duration, seed uint64) *SimulatedScorer {
	return &SimulatedScorer{
		latency: latency,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Score implements SecondaryScorer.
func (s *SimulatedScorer) Score(ctx context.Context, profile model.WalletProfile, stats model.TransactionStats, weights model.ScoreWeights) (SecondaryResult, error) {
	if err := clock.SleepWithContext(ctx, s.latency); err != nil {
		return SecondaryResult{}, err
	}

	base, err := scoring.Calculate(profile, stats, weights)
	if err != nil {
		return SecondaryResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	adjustment := s.rng.Float64()*2*simulatedSpread - simulatedSpread
	score := math.Round(float64(base.Score) * (1 + adjustment))

	factors := make([]model.ScoreFactor, 0, len(base.Factors)+2)
	factors = append(factors, base.Factors...)
	factors = append(factors,
		model.ScoreFactor{
			Name:         "Network Reputation",
			Value:        s.rng.Float64() * 100,
			Score:        s.rng.Float64() * 100,
			Contribution: s.rng.Float64() * 10,
			Description:  "Reputation derived from network analysis",
		},
		model.ScoreFactor{
			Name:         "Activity Pattern",
			Value:        s.rng.Float64() * 100,
			Score:        s.rng.Float64() * 100,
			Contribution: s.rng.Float64() * 5,
			Description:  "Analysis of transaction timing and patterns",
		},
	)

	return SecondaryResult{
		Score:      int(math.Max(0, math.Min(100, score))),
		Confidence: 0.7 + s.rng.Float64()*0.2,
		Factors:    factors,
	}, nil
}
