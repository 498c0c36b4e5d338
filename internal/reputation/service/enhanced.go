package service

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/agenticid-backend/internal/metrics"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// SecondaryFactorPrefix marks factors that came from the secondary scorer.
const SecondaryFactorPrefix = "AI: "

// SecondaryResult is the output of a SecondaryScorer.
type SecondaryResult struct {
	Score      int
	Confidence float64
	Factors    []model.ScoreFactor
}

// GetEnhancedReputationScore runs the standard path and the secondary scorer concurrently
// and blends them. Enhancement is best-effort: if the secondary scorer fails the standard
// result is returned unchanged, tagged as degraded. Only a standard-path failure is an error.
func (s *ReputationService) GetEnhancedReputationScore(ctx context.Context, address string) (model.EnhancedScoreResult, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.EnhancedScoreResult{}, err
	}

	if s.secondary == nil {
		standard, err := s.GetReputationScore(ctx, addr)
		if err != nil {
			return model.EnhancedScoreResult{}, err
		}
		s.metrics.ObserveEnhanced(metrics.EnhancedStandardOnly)
		return standardOnly(model.ScoreKindStandard, standard), nil
	}

	var (
		g            errgroup.Group
		standard     model.ScoreResult
		secondary    SecondaryResult
		secondaryErr error
	)
	g.Go(func() error {
		var err error
		standard, err = s.GetReputationScore(ctx, addr)
		return err
	})
	g.Go(func() error {
		secondary, secondaryErr = s.secondaryScore(ctx, addr)
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.EnhancedScoreResult{}, err
	}

	if secondaryErr != nil {
		s.logger.Warn("secondary scorer failed, returning standard score",
			zap.String("wallet", addr),
			zap.Error(secondaryErr))
		s.metrics.ObserveEnhanced(metrics.EnhancedDegraded)
		return standardOnly(model.ScoreKindDegraded, standard), nil
	}

	s.metrics.ObserveEnhanced(metrics.EnhancedBlended)
	return Blend(standard, secondary, s.cfg.SecondaryWeight, s.now()), nil
}

func (s *ReputationService) secondaryScore(ctx context.Context, address string) (SecondaryResult, error) {
	weights, err := s.CurrentScoreWeights(ctx)
	if err != nil {
		return SecondaryResult{}, err
	}
	profile, stats, err := s.resolveInputs(ctx, address)
	if err != nil {
		return SecondaryResult{}, err
	}
	return s.secondary.Score(ctx, profile, stats, weights)
}

// Blend combines a standard and a secondary score. The combined score is
// round(standard*(1-weight) + secondary*weight). Secondary factors are renamed with
// SecondaryFactorPrefix and their contribution scaled by weight; factors already
// carrying the prefix are dropped. The merged list is sorted by contribution.
func Blend(standard model.ScoreResult, secondary SecondaryResult, weight float64, now time.Time) model.EnhancedScoreResult {
	combined := int(math.Round(float64(standard.Score)*(1-weight) + float64(secondary.Score)*weight))

	factors := make([]model.ScoreFactor, 0, len(standard.Factors)+len(secondary.Factors))
	factors = append(factors, standard.Factors...)
	for _, f := range secondary.Factors {
		if strings.HasPrefix(f.Name, strings.TrimSpace(SecondaryFactorPrefix)) {
			continue
		}
		f.Name = SecondaryFactorPrefix + f.Name
		f.Contribution *= weight
		factors = append(factors, f)
	}
	model.SortFactors(factors)

	aiScore := secondary.Score
	confidence := secondary.Confidence
	return model.EnhancedScoreResult{
		Kind:          model.ScoreKindEnhanced,
		Score:         combined,
		StandardScore: standard.Score,
		AIScore:       &aiScore,
		Confidence:    &confidence,
		Timestamp:     now,
		Factors:       factors,
		IsCached:      false,
		IsEnhanced:    true,
	}
}

func standardOnly(kind model.ScoreKind, standard model.ScoreResult) model.EnhancedScoreResult {
	return model.EnhancedScoreResult{
		Kind:          kind,
		Score:         standard.Score,
		StandardScore: standard.Score,
		Timestamp:     standard.Timestamp,
		Factors:       standard.Factors,
		IsCached:      standard.IsCached,
	}
}
