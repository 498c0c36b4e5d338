//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package transport

import (
	"context"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

type (
	ScoreService interface {
		GetReputationScore(ctx context.Context, address string) (model.ScoreResult, error)
		GetEnhancedReputationScore(ctx context.Context, address string) (model.EnhancedScoreResult, error)
		CalculateReputationScore(ctx context.Context, address string, forceRefresh bool) (model.ScoreResult, error)
		GetScoreHistory(ctx context.Context, address string, period model.Period) ([]model.ScoreHistoryEntry, error)
		RecalculateAllScores(ctx context.Context) (model.RecalculationReport, error)
		UpdateScoreWeights(ctx context.Context, weights model.ScoreWeights) (model.ScoreWeights, error)
	}
	WalletService interface {
		GetWalletInfo(ctx context.Context, address string) (model.WalletProfile, error)
		RegisterWallet(ctx context.Context, address string) (model.Wallet, error)
	}
	TransactionService interface {
		GetWalletTransactions(ctx context.Context, address string, page, limit int, order model.SortOrder) (model.TransactionPage, error)
		GetTransactionStats(ctx context.Context, address string, period model.Period) (model.TransactionStats, error)
		SyncWalletTransactions(ctx context.Context, address string) model.SyncResult
		GetTransaction(ctx context.Context, hash string) (model.Transaction, error)
		GetNetworkActivity(ctx context.Context, period model.Period) (model.NetworkActivity, error)
	}
	FeatureExtractor interface {
		ExtractFeatures(ctx context.Context, address string, period model.Period) (model.WalletFeatures, error)
	}
)
