package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/metrics"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/scoring"
	"github.com/goodnatureofminers/agenticid-backend/pkg/safe"
)

// GetReputationScore returns the wallet's latest score while it is fresh and computes
// a new one otherwise.
func (s *ReputationService) GetReputationScore(ctx context.Context, address string) (model.ScoreResult, error) {
	return s.CalculateReputationScore(ctx, address, false)
}

// CalculateReputationScore computes and stores a new score. Unless forceRefresh is set,
// a fresh cached score is returned instead.
func (s *ReputationService) CalculateReputationScore(ctx context.Context, address string, forceRefresh bool) (result model.ScoreResult, err error) {
	started := time.Now()
	outcome := metrics.ScoreComputed
	defer func() {
		if err != nil {
			outcome = metrics.ScoreError
		}
		s.metrics.ObserveScore(outcome, started)
	}()

	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.ScoreResult{}, err
	}

	if !forceRefresh {
		cached, ok, err := s.cachedScore(ctx, addr)
		if err != nil {
			return model.ScoreResult{}, err
		}
		if ok {
			outcome = metrics.ScoreCacheHit
			return cached, nil
		}
	}

	return s.computeScore(ctx, addr)
}

// cachedScore returns the latest stored score if it is younger than the cache duration.
// An unreadable factor blob counts as a miss.
func (s *ReputationService) cachedScore(ctx context.Context, address string) (model.ScoreResult, bool, error) {
	record, err := s.scores.LatestScore(ctx, address)
	if err != nil {
		return model.ScoreResult{}, false, fmt.Errorf("latest score: %w", err)
	}
	if record == nil || s.now().Sub(record.Timestamp) >= s.cfg.CacheDuration {
		return model.ScoreResult{}, false, nil
	}

	factors, err := model.DecodeFactors(record.Factors)
	if err != nil {
		s.logger.Warn("cached score factors are corrupt, recomputing",
			zap.String("wallet", address),
			zap.String("score_id", record.ID),
			zap.Error(err))
		return model.ScoreResult{}, false, nil
	}

	s.logger.Debug("score cache hit", zap.String("wallet", address), zap.String("score_id", record.ID))
	return model.ScoreResult{
		Score:     int(record.Score),
		Timestamp: record.Timestamp,
		Factors:   factors,
		IsCached:  true,
	}, true, nil
}

func (s *ReputationService) computeScore(ctx context.Context, address string) (model.ScoreResult, error) {
	weights, err := s.CurrentScoreWeights(ctx)
	if err != nil {
		return model.ScoreResult{}, err
	}

	profile, stats, err := s.resolveInputs(ctx, address)
	if err != nil {
		return model.ScoreResult{}, err
	}

	computed, err := scoring.Calculate(profile, stats, weights)
	if err != nil {
		return model.ScoreResult{}, err
	}

	score := model.ReputationScore{
		ID:            uuid.NewString(),
		WalletAddress: address,
		Score:         computed.Score,
		Factors:       computed.Factors,
		Timestamp:     s.timestamp(),
	}
	if err := s.appendScore(ctx, score); err != nil {
		return model.ScoreResult{}, err
	}

	s.logger.Info("reputation score computed",
		zap.String("wallet", address),
		zap.Int("score", score.Score))
	s.publish(ctx, score)

	return model.ScoreResult{
		Score:     score.Score,
		Timestamp: score.Timestamp,
		Factors:   score.Factors,
		IsCached:  false,
	}, nil
}

// resolveInputs loads the wallet profile and its all-time transaction stats.
func (s *ReputationService) resolveInputs(ctx context.Context, address string) (model.WalletProfile, model.TransactionStats, error) {
	profile, err := s.profiles.GetWalletInfo(ctx, address)
	if err != nil {
		return model.WalletProfile{}, model.TransactionStats{}, fmt.Errorf("wallet info: %w", err)
	}
	stats, err := s.stats.GetTransactionStats(ctx, address, model.MustParsePeriod(model.AllTime))
	if err != nil {
		return model.WalletProfile{}, model.TransactionStats{}, fmt.Errorf("transaction stats: %w", err)
	}
	return profile, stats, nil
}

func (s *ReputationService) appendScore(ctx context.Context, score model.ReputationScore) error {
	blob, err := model.EncodeFactors(score.Factors)
	if err != nil {
		return err
	}
	value, err := safe.Uint8(score.Score)
	if err != nil {
		return fmt.Errorf("score %s: %w", score.ID, err)
	}
	record := model.ScoreRecord{
		ID:            score.ID,
		WalletAddress: score.WalletAddress,
		Score:         value,
		Factors:       blob,
		Timestamp:     score.Timestamp,
	}
	if err := s.scores.InsertScore(ctx, record); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *ReputationService) publish(ctx context.Context, score model.ReputationScore) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishScore(ctx, score); err != nil {
		s.logger.Warn("publish score event failed",
			zap.String("wallet", score.WalletAddress),
			zap.Error(err))
	}
}

// timestamp matches the millisecond precision of the score store.
func (s *ReputationService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
