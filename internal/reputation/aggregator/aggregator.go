// Package aggregator reads a wallet's stored transactions, backfilling them from the
// external explorer on demand, and summarises them into TransactionStats.
package aggregator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/pkg/safe"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Aggregator serves transaction reads for the reputation pipeline.
type Aggregator struct {
	store   TransactionStore
	source  TransactionSource
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// New builds an Aggregator over the transaction store and the external source.
func New(store TransactionStore, source TransactionSource, metrics Metrics, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		store:   store,
		source:  source,
		metrics: metrics,
		logger:  logger.Named("aggregator"),
		now:     time.Now,
	}
}

// GetTransactionStats summarises the wallet's transactions inside period.
// A wallet with nothing stored is synced once before the summary is computed.
func (a *Aggregator) GetTransactionStats(ctx context.Context, address string, period model.Period) (model.TransactionStats, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.TransactionStats{}, err
	}

	now := a.now()
	since := period.StartDate(now)

	txs, err := a.store.TransactionsByAddress(ctx, addr, since)
	if err != nil {
		return model.TransactionStats{}, err
	}

	if len(txs) == 0 {
		stored, err := a.store.CountWalletTransactions(ctx, addr)
		if err != nil {
			return model.TransactionStats{}, err
		}
		if stored == 0 {
			if res := a.SyncWalletTransactions(ctx, addr); res.Success && res.Count > 0 {
				if txs, err = a.store.TransactionsByAddress(ctx, addr, since); err != nil {
					return model.TransactionStats{}, err
				}
			}
		}
	}

	return summarize(addr, period, txs, now), nil
}

// GetWalletTransactions returns one page of the wallet's transactions ordered by timestamp.
// An empty first page triggers a sync and a single retry.
func (a *Aggregator) GetWalletTransactions(ctx context.Context, address string, page, limit int, order model.SortOrder) (model.TransactionPage, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.TransactionPage{}, err
	}
	if page < 1 {
		return model.TransactionPage{}, model.NewValidationError("page", "", "must be at least 1")
	}
	if limit < 1 || limit > MaxPageLimit {
		return model.TransactionPage{}, model.NewValidationError("limit", "", "must be between 1 and 100")
	}
	if order != model.SortAsc && order != model.SortDesc {
		return model.TransactionPage{}, model.NewValidationError("sort", string(order), `must be "asc" or "desc"`)
	}

	pageSize, err := safe.Uint64(limit)
	if err != nil {
		return model.TransactionPage{}, err
	}
	offset := uint64(page-1) * pageSize

	txs, err := a.store.WalletTransactions(ctx, addr, pageSize, offset, order)
	if err != nil {
		return model.TransactionPage{}, err
	}
	if len(txs) == 0 && page == 1 {
		if res := a.SyncWalletTransactions(ctx, addr); res.Success && res.Count > 0 {
			if txs, err = a.store.WalletTransactions(ctx, addr, pageSize, offset, order); err != nil {
				return model.TransactionPage{}, err
			}
		}
	}

	total, err := a.store.CountWalletTransactions(ctx, addr)
	if err != nil {
		return model.TransactionPage{}, err
	}

	return model.TransactionPage{
		Data: txs,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: (total + pageSize - 1) / pageSize,
		},
	}, nil
}

// GetTransaction returns a stored transaction or model.ErrNotFound.
func (a *Aggregator) GetTransaction(ctx context.Context, hash string) (model.Transaction, error) {
	normalized, err := model.NormalizeHash(hash)
	if err != nil {
		return model.Transaction{}, err
	}
	return a.store.TransactionByHash(ctx, normalized)
}

// GetNetworkActivity summarises every stored transaction inside period.
func (a *Aggregator) GetNetworkActivity(ctx context.Context, period model.Period) (model.NetworkActivity, error) {
	activity, err := a.store.NetworkActivity(ctx, period.StartDate(a.now()))
	if err != nil {
		return model.NetworkActivity{}, err
	}
	activity.Period = period.String()
	if activity.DailyActivity == nil {
		activity.DailyActivity = []model.DailyActivity{}
	}
	return activity, nil
}
