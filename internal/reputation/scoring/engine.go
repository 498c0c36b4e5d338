// Package scoring combines a wallet profile and its transaction stats into a 0-100
// reputation score with explainable factors.
//
// Every category maps its raw metric onto a 0-100 sub-score with a capped log curve,
// so each sub-score grows monotonically with its metric:
//
//	walletAge             days since first activity, 100 at ~1000 days
//	transactionVolume     native units moved, 75 at 1 unit, 100 at 10
//	transactionFrequency  transactions per day, 100 at ~10/day
//	contractInteractions  calls initiated, 100 at ~300
//	networkDiversity      unique counterparties, 100 at ~100
//	stakingHistory        verified identity flag, 0 or 100
package scoring

import (
	"math"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

const (
	maxScore = 100

	recentWindowDays = 30
)

// Result is the score engine output. Factors are sorted by contribution, highest first.
type Result struct {
	Score   int
	Factors []model.ScoreFactor
}

type category struct {
	weight      string
	name        string
	description string
	metric      func(model.WalletProfile, model.TransactionStats) float64
	curve       func(float64) float64
}

var categories = []category{
	{
		weight:      model.WeightWalletAge,
		name:        "Wallet Age",
		description: "Days since the wallet's first observed activity",
		metric: func(p model.WalletProfile, _ model.TransactionStats) float64 {
			return float64(p.WalletAge)
		},
		curve: logCurve(33.3, 1),
	},
	{
		weight:      model.WeightTransactionVolume,
		name:        "Transaction Volume",
		description: "Total value sent and received",
		metric: func(_ model.WalletProfile, s model.TransactionStats) float64 {
			return s.TotalValue
		},
		curve: logCurve(25, 1000),
	},
	{
		weight:      model.WeightTransactionFrequency,
		name:        "Transaction Frequency",
		description: "Average transactions per day",
		metric:      dailyRate,
		curve:       logCurve(50, 10),
	},
	{
		weight:      model.WeightContractInteractions,
		name:        "Contract Interactions",
		description: "Smart contract calls initiated by the wallet",
		metric: func(_ model.WalletProfile, s model.TransactionStats) float64 {
			return float64(s.ContractInteractions)
		},
		curve: logCurve(40, 1),
	},
	{
		weight:      model.WeightNetworkDiversity,
		name:        "Network Diversity",
		description: "Unique addresses the wallet has transacted with",
		metric: func(_ model.WalletProfile, s model.TransactionStats) float64 {
			return float64(s.UniqueContacts)
		},
		curve: logCurve(50, 1),
	},
	{
		weight:      model.WeightStakingHistory,
		name:        "Staking History",
		description: "Whether the wallet holds a verified identity",
		metric: func(p model.WalletProfile, _ model.TransactionStats) float64 {
			if p.IsRegistered {
				return 1
			}
			return 0
		},
		curve: func(v float64) float64 { return v * maxScore },
	},
}

// Calculate scores a wallet. It is a pure function of its inputs; weights are
// validated first and never renormalized.
func Calculate(profile model.WalletProfile, stats model.TransactionStats, weights model.ScoreWeights) (Result, error) {
	if err := weights.Validate(); err != nil {
		return Result{}, err
	}

	factors := make([]model.ScoreFactor, 0, len(categories))
	total := 0.0
	for _, c := range categories {
		value := c.metric(profile, stats)
		sub := clamp(c.curve(value))
		contribution := sub * weights[c.weight]
		total += contribution

		factors = append(factors, model.ScoreFactor{
			Name:         c.name,
			Value:        value,
			Score:        sub,
			Contribution: contribution,
			Description:  c.description,
		})
	}

	model.SortFactors(factors)
	return Result{
		Score:   int(math.Round(clamp(total))),
		Factors: factors,
	}, nil
}

// logCurve returns scale*log10(1+v*unit), capped by clamp.
func logCurve(scale, unit float64) func(float64) float64 {
	return func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return scale * math.Log10(1+v*unit)
	}
}

// dailyRate prefers the period average and falls back to the last 30 days for
// unbounded periods.
func dailyRate(_ model.WalletProfile, s model.TransactionStats) float64 {
	if s.AverageTransactionsPerDay != nil {
		return *s.AverageTransactionsPerDay
	}
	return float64(s.TransactionsLast30Days) / recentWindowDays
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > maxScore:
		return maxScore
	default:
		return v
	}
}
