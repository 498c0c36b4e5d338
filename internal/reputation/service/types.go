package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProfileResolver interface {
		GetWalletInfo(ctx context.Context, address string) (model.WalletProfile, error)
	}
	StatsAggregator interface {
		GetTransactionStats(ctx context.Context, address string, period model.Period) (model.TransactionStats, error)
	}
	ScoreStore interface {
		InsertScore(ctx context.Context, record model.ScoreRecord) error
		LatestScore(ctx context.Context, address string) (*model.ScoreRecord, error)
		ScoresSince(ctx context.Context, address string, since time.Time) ([]model.ScoreRecord, error)
	}
	WalletRegistry interface {
		ListWallets(ctx context.Context) ([]string, error)
		CurrentWeights(ctx context.Context) (model.ScoreWeights, bool, error)
		SaveWeights(ctx context.Context, weights model.ScoreWeights) error
	}
	SecondaryScorer interface {
		Score(ctx context.Context, profile model.WalletProfile, stats model.TransactionStats, weights model.ScoreWeights) (SecondaryResult, error)
	}
	EventPublisher interface {
		PublishScore(ctx context.Context, score model.ReputationScore) error
	}
	Metrics interface {
		ObserveScore(outcome string, started time.Time)
		ObserveEnhanced(outcome string)
		ObserveRecalculation(success, failed int, started time.Time)
	}
)
