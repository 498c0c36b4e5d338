package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Weight categories of the score engine.
const (
	WeightWalletAge            = "walletAge"
	WeightTransactionVolume    = "transactionVolume"
	WeightTransactionFrequency = "transactionFrequency"
	WeightContractInteractions = "contractInteractions"
	WeightNetworkDiversity     = "networkDiversity"
	WeightStakingHistory       = "stakingHistory"
)

// WeightSumTolerance is the allowed distance of the weight sum from 1.
const WeightSumTolerance = 0.001

// RequiredWeights lists every category a weight configuration must carry, in scoring order.
var RequiredWeights = []string{
	WeightWalletAge,
	WeightTransactionVolume,
	WeightTransactionFrequency,
	WeightContractInteractions,
	WeightNetworkDiversity,
	WeightStakingHistory,
}

// ScoreWeights maps weight categories to values in [0,1] that sum to 1.
type ScoreWeights map[string]float64

// DefaultScoreWeights returns the weights used until an operator stores others.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		WeightWalletAge:            0.20,
		WeightTransactionVolume:    0.20,
		WeightTransactionFrequency: 0.20,
		WeightContractInteractions: 0.15,
		WeightNetworkDiversity:     0.15,
		WeightStakingHistory:       0.10,
	}
}

// Validate checks that all six categories are present, no unknown category is set,
// every value lies in [0,1] and the sum equals 1 within WeightSumTolerance.
// Invalid weights are never renormalized.
func (w ScoreWeights) Validate() error {
	if w == nil {
		return NewValidationError("weights", "", "weights are required")
	}
	for _, key := range RequiredWeights {
		if _, ok := w[key]; !ok {
			return NewValidationError("weights", key, "missing required weight")
		}
	}

	unknown := make([]string, 0)
	for key := range w {
		if !isRequiredWeight(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return NewValidationError("weights", unknown[0], "unknown weight category")
	}

	sum := 0.0
	for _, key := range RequiredWeights {
		v := w[key]
		if math.IsNaN(v) || v < 0 || v > 1 {
			return NewValidationError("weights", key, "weight must be within [0,1]")
		}
		sum += v
	}
	if math.Abs(sum-1) > WeightSumTolerance {
		return NewValidationError("weights", "", fmt.Sprintf("weights must sum to 1 (current sum: %s)", strconv.FormatFloat(sum, 'f', -1, 64)))
	}
	return nil
}

// Clone returns an independent copy.
func (w ScoreWeights) Clone() ScoreWeights {
	out := make(ScoreWeights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

func isRequiredWeight(key string) bool {
	for _, k := range RequiredWeights {
		if k == key {
			return true
		}
	}
	return false
}
