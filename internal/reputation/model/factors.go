package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// EncodeFactors serializes factors into the blob stored with a score record.
func EncodeFactors(factors []ScoreFactor) (string, error) {
	if factors == nil {
		factors = []ScoreFactor{}
	}
	raw, err := json.Marshal(factors)
	if err != nil {
		return "", fmt.Errorf("marshal score factors: %w", err)
	}
	return string(raw), nil
}

// DecodeFactors parses a stored factor blob.
func DecodeFactors(blob string) ([]ScoreFactor, error) {
	factors := make([]ScoreFactor, 0)
	if err := json.Unmarshal([]byte(blob), &factors); err != nil {
		return nil, fmt.Errorf("unmarshal score factors: %w", err)
	}
	return factors, nil
}

// SortFactors orders factors by contribution, highest first. Equal contributions keep their order.
func SortFactors(factors []ScoreFactor) {
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Contribution > factors[j].Contribution
	})
}
