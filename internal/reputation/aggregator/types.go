package aggregator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/explorer"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionStore interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		ExistingTransactionHashes(ctx context.Context, hashes []string) (map[string]struct{}, error)
		TransactionsByAddress(ctx context.Context, address string, since time.Time) ([]model.Transaction, error)
		WalletTransactions(ctx context.Context, address string, limit, offset uint64, order model.SortOrder) ([]model.Transaction, error)
		CountWalletTransactions(ctx context.Context, address string) (uint64, error)
		TransactionByHash(ctx context.Context, hash string) (model.Transaction, error)
		NetworkActivity(ctx context.Context, since time.Time) (model.NetworkActivity, error)
	}
	TransactionSource interface {
		FetchTransactions(ctx context.Context, address string) ([]explorer.Row, error)
	}
	Metrics interface {
		ObserveSync(err error, inserted int)
	}
)
