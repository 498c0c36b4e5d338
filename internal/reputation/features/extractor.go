// Package features turns transaction stats into a fixed-length numeric feature vector.
package features

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// DefaultPeriod is the window used when the caller does not choose one.
const DefaultPeriod = "180d"

// Names lists the features in vector order.
var Names = []string{
	"transactionCount",
	"sentTransactionCount",
	"receivedTransactionCount",
	"uniqueContacts",
	"transactionVolume",
	"contractInteractions",
	"transactionFrequency",
	"sentToReceivedRatio",
	"averageTransactionValue",
	"contractInteractionRatio",
	"networkDensity",
}

// GlobalStats holds per-feature bounds used for min-max normalization.
type GlobalStats struct {
	Mins []float64
	Maxs []float64
}

// DefaultGlobalStats returns fixed bounds for every feature in Names.
func DefaultGlobalStats() GlobalStats {
	return GlobalStats{
		Mins: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		Maxs: []float64{1000, 800, 500, 200, 1000000, 300, 10, 5, 10000, 1, 1},
	}
}

// Extractor derives WalletFeatures from aggregated stats.
type Extractor struct {
	stats    StatsProvider
	profiles ProfileProvider
	global   GlobalStats
}

// NewExtractor constructs an Extractor normalizing against global.
func NewExtractor(stats StatsProvider, profiles ProfileProvider, global GlobalStats) (*Extractor, error) {
	if len(global.Mins) != len(Names) || len(global.Maxs) != len(Names) {
		return nil, fmt.Errorf("global stats must have %d mins and maxs, got %d and %d",
			len(Names), len(global.Mins), len(global.Maxs))
	}
	return &Extractor{stats: stats, profiles: profiles, global: global}, nil
}

// ExtractFeatures computes the feature vector for address over period.
func (e *Extractor) ExtractFeatures(ctx context.Context, address string, period model.Period) (model.WalletFeatures, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.WalletFeatures{}, err
	}

	stats, err := e.stats.GetTransactionStats(ctx, addr, period)
	if err != nil {
		return model.WalletFeatures{}, fmt.Errorf("transaction stats: %w", err)
	}

	days := period.Days()
	if period.IsAllTime() {
		// An unbounded window spans the wallet's lifetime.
		profile, err := e.profiles.GetWalletInfo(ctx, addr)
		if err != nil {
			return model.WalletFeatures{}, fmt.Errorf("wallet info: %w", err)
		}
		days = profile.WalletAge
	}

	names := make([]string, len(Names))
	copy(names, Names)

	return model.WalletFeatures{
		Address:      addr,
		Features:     Vector(stats, days),
		FeatureNames: names,
	}, nil
}

// Vector lays stats out in Names order. elapsedDays is the window length used for frequency.
func Vector(stats model.TransactionStats, elapsedDays int) []float64 {
	count := float64(stats.TotalTransactions)
	sent := float64(stats.SentTransactions)
	received := float64(stats.ReceivedTransactions)
	contacts := float64(stats.UniqueContacts)
	contracts := float64(stats.ContractInteractions)

	sentToReceived := sent
	if received > 0 {
		sentToReceived = sent / received
	}

	return []float64{
		count,
		sent,
		received,
		contacts,
		stats.TotalValue,
		contracts,
		ratio(count, float64(elapsedDays)),
		sentToReceived,
		ratio(stats.TotalValue, count),
		ratio(contracts, count),
		ratio(contacts, count),
	}
}

// NormalizeFeatures applies min-max scaling per feature. A feature whose bounds
// coincide normalizes to 0.
func (e *Extractor) NormalizeFeatures(features []float64) ([]float64, error) {
	if len(features) != len(Names) {
		return nil, model.NewValidationError("features", "", fmt.Sprintf("expected %d values, got %d", len(Names), len(features)))
	}

	normalized := make([]float64, len(features))
	for i, value := range features {
		lo, hi := e.global.Mins[i], e.global.Maxs[i]
		if hi == lo {
			continue
		}
		normalized[i] = (value - lo) / (hi - lo)
	}
	return normalized, nil
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
