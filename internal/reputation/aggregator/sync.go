package aggregator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

const noTransactionsMessage = "No transactions found"

// SyncWalletTransactions pulls the wallet's transactions from the external source and
// stores the ones not seen before. It never fails outward: problems are reported
// through a SyncResult with Success=false.
func (a *Aggregator) SyncWalletTransactions(ctx context.Context, address string) model.SyncResult {
	result := model.SyncResult{ID: uuid.NewString()}

	addr, err := model.NormalizeAddress(address)
	if err != nil {
		result.Message = err.Error()
		return result
	}

	logger := a.logger.With(zap.String("wallet", addr), zap.String("sync_id", result.ID))

	fetched, inserted, err := a.sync(ctx, addr, logger)
	a.metrics.ObserveSync(err, inserted)
	if err != nil {
		logger.Error("sync wallet transactions failed", zap.Error(err))
		result.Message = fmt.Sprintf("failed to sync wallet transactions: %v", err)
		return result
	}

	result.Success = true
	result.Count = inserted
	if fetched == 0 {
		result.Message = noTransactionsMessage
	}
	logger.Info("wallet transactions synced",
		zap.Int("fetched", fetched),
		zap.Int("inserted", inserted))
	return result
}

func (a *Aggregator) sync(ctx context.Context, address string, logger *zap.Logger) (fetched, inserted int, err error) {
	rows, err := a.source.FetchTransactions(ctx, address)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}

	candidates := make([]model.Transaction, 0, len(rows))
	hashes := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		tx, err := row.Parse()
		if err != nil {
			logger.Warn("skipping invalid transaction row",
				zap.String("hash", row.Hash),
				zap.Error(err))
			continue
		}
		if _, dup := seen[tx.Hash]; dup {
			continue
		}
		seen[tx.Hash] = struct{}{}
		candidates = append(candidates, tx)
		hashes = append(hashes, tx.Hash)
	}
	if len(candidates) == 0 {
		return len(rows), 0, nil
	}

	existing, err := a.store.ExistingTransactionHashes(ctx, hashes)
	if err != nil {
		return len(rows), 0, fmt.Errorf("check existing hashes: %w", err)
	}

	fresh := candidates[:0]
	for _, tx := range candidates {
		if _, ok := existing[tx.Hash]; !ok {
			fresh = append(fresh, tx)
		}
	}
	if len(fresh) == 0 {
		logger.Debug("no new transactions to store", zap.Int("fetched", len(rows)))
		return len(rows), 0, nil
	}

	if err := a.store.InsertTransactions(ctx, fresh); err != nil {
		return len(rows), 0, fmt.Errorf("insert transactions: %w", err)
	}
	return len(rows), len(fresh), nil
}
