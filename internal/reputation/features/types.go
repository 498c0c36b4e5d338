package features

import (
	"context"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatsProvider interface {
		GetTransactionStats(ctx context.Context, address string, period model.Period) (model.TransactionStats, error)
	}
	ProfileProvider interface {
		GetWalletInfo(ctx context.Context, address string) (model.WalletProfile, error)
	}
)
