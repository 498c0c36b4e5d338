package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// GetScoreHistory returns the wallet's scores inside period, oldest first. A record with
// unreadable factors is returned with an empty factor list.
func (s *ReputationService) GetScoreHistory(ctx context.Context, address string, period model.Period) ([]model.ScoreHistoryEntry, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	records, err := s.scores.ScoresSince(ctx, addr, period.StartDate(s.now()))
	if err != nil {
		return nil, fmt.Errorf("scores since: %w", err)
	}

	history := make([]model.ScoreHistoryEntry, 0, len(records))
	for _, record := range records {
		factors, err := model.DecodeFactors(record.Factors)
		if err != nil {
			s.logger.Warn("score history factors are corrupt",
				zap.String("wallet", addr),
				zap.String("score_id", record.ID),
				zap.Error(err))
			factors = []model.ScoreFactor{}
		}
		history = append(history, model.ScoreHistoryEntry{
			Score:     int(record.Score),
			Timestamp: record.Timestamp,
			Factors:   factors,
		})
	}
	return history, nil
}

// CurrentScoreWeights returns the stored weights, or the defaults when none are stored.
func (s *ReputationService) CurrentScoreWeights(ctx context.Context) (model.ScoreWeights, error) {
	weights, ok, err := s.registry.CurrentWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("current weights: %w", err)
	}
	if !ok {
		return model.DefaultScoreWeights(), nil
	}
	return weights, nil
}

// UpdateScoreWeights validates and stores new weights. Invalid weights are rejected as is.
func (s *ReputationService) UpdateScoreWeights(ctx context.Context, weights model.ScoreWeights) (model.ScoreWeights, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := s.registry.SaveWeights(ctx, weights); err != nil {
		return nil, fmt.Errorf("save weights: %w", err)
	}
	s.logger.Info("score weights updated", zap.Any("weights", weights))
	return weights.Clone(), nil
}

// StoreScore appends a manually supplied score with no factors.
func (s *ReputationService) StoreScore(ctx context.Context, address string, score int) (model.ReputationScore, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.ReputationScore{}, err
	}
	if score < 0 || score > 100 {
		return model.ReputationScore{}, model.NewValidationError("score", fmt.Sprint(score), "must be between 0 and 100")
	}

	stored := model.ReputationScore{
		ID:            uuid.NewString(),
		WalletAddress: addr,
		Score:         score,
		Factors:       []model.ScoreFactor{},
		Timestamp:     s.timestamp(),
	}
	if err := s.appendScore(ctx, stored); err != nil {
		return model.ReputationScore{}, err
	}
	return stored, nil
}
