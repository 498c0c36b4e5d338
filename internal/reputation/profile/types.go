package profile

import (
	"context"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	WalletRegistry interface {
		FindOrCreate(ctx context.Context, address string, now time.Time) (model.Wallet, error)
		Register(ctx context.Context, address string, now time.Time) (model.Wallet, error)
		ListRegistered(ctx context.Context) ([]model.Wallet, error)
	}
	TransactionStore interface {
		EarliestTransaction(ctx context.Context, address string) (*model.Transaction, error)
		WalletTransactionCounts(ctx context.Context, address string) (total, contractInteractions uint64, err error)
	}
)
