package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/pkg/workerpool"
)

// RecalculateAllScores force-recomputes the score of every known wallet. A wallet that
// fails is recorded in the report and never aborts the batch.
func (s *ReputationService) RecalculateAllScores(ctx context.Context) (model.RecalculationReport, error) {
	started := time.Now()

	wallets, err := s.registry.ListWallets(ctx)
	if err != nil {
		return model.RecalculationReport{}, fmt.Errorf("list wallets: %w", err)
	}

	summary, err := workerpool.Process(ctx, s.cfg.RecalculationWorkers, wallets, func(ctx context.Context, wallet string) error {
		if _, err := s.CalculateReputationScore(ctx, wallet, true); err != nil {
			s.logger.Error("recalculate wallet score failed", zap.String("wallet", wallet), zap.Error(err))
			return err
		}
		return nil
	})

	report := model.RecalculationReport{
		Total:     len(wallets),
		Processed: summary.Processed,
		Success:   summary.Processed - len(summary.Failures),
		Failed:    len(summary.Failures),
		Errors:    make([]string, 0, len(summary.Failures)),
	}
	for _, failure := range summary.Failures {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", failure.Item, failure.Err))
	}
	sort.Strings(report.Errors)

	s.metrics.ObserveRecalculation(report.Success, report.Failed, started)
	if err != nil {
		return report, fmt.Errorf("recalculate scores: %w", err)
	}

	s.logger.Info("score recalculation finished",
		zap.Int("total", report.Total),
		zap.Int("success", report.Success),
		zap.Int("failed", report.Failed),
		zap.Duration("elapsed", time.Since(started)))
	return report, nil
}
