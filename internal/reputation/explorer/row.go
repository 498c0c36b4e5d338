package explorer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/pkg/safe"
	"github.com/shopspring/decimal"
)

// weiExponent converts wei amounts to native units.
const weiExponent = -18

// Row is a transaction exactly as the explorer returns it; every field is a decimal string.
type Row struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasUsed     string `json:"gasUsed"`
	GasPrice    string `json:"gasPrice"`
	TimeStamp   string `json:"timeStamp"`
	BlockNumber string `json:"blockNumber"`
	Input       string `json:"input"`
	IsError     string `json:"isError"`
}

var (
	errMissingHash        = errors.New("missing hash")
	errMissingFrom        = errors.New("missing from")
	errMissingBlockNumber = errors.New("missing block number")
	errMissingTimestamp   = errors.New("missing timestamp")
)

// Parse validates the row and converts it into a Transaction.
// Hash, from, block number and timestamp are required; amounts default to zero when blank.
func (r Row) Parse() (model.Transaction, error) {
	switch {
	case strings.TrimSpace(r.Hash) == "":
		return model.Transaction{}, errMissingHash
	case strings.TrimSpace(r.From) == "":
		return model.Transaction{}, errMissingFrom
	case strings.TrimSpace(r.BlockNumber) == "":
		return model.Transaction{}, errMissingBlockNumber
	case strings.TrimSpace(r.TimeStamp) == "":
		return model.Transaction{}, errMissingTimestamp
	}

	blockNumber, err := parseUint(r.BlockNumber)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("block number: %w", err)
	}
	unix, err := parseUint(r.TimeStamp)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("timestamp: %w", err)
	}
	gasUsed, err := parseUint(r.GasUsed)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("gas used: %w", err)
	}
	valueWei, err := parseDecimal(r.Value)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("value: %w", err)
	}
	gasPriceWei, err := parseDecimal(r.GasPrice)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("gas price: %w", err)
	}
	if valueWei.IsNegative() || gasPriceWei.IsNegative() {
		return model.Transaction{}, errors.New("negative amount")
	}

	tx := model.Transaction{
		Hash:                  strings.ToLower(r.Hash),
		From:                  strings.ToLower(r.From),
		Value:                 valueWei.Shift(weiExponent).InexactFloat64(),
		GasUsed:               gasUsed,
		GasPrice:              gasPriceWei.Shift(weiExponent).InexactFloat64(),
		TransactionFee:        gasPriceWei.Mul(decimal.NewFromUint64(gasUsed)).Shift(weiExponent).InexactFloat64(),
		Timestamp:             time.Unix(int64(unix), 0).UTC(),
		BlockNumber:           blockNumber,
		IsContractInteraction: r.Input != "" && r.Input != "0x",
		Status:                model.TransactionSuccess,
	}
	if r.IsError != "" && r.IsError != "0" {
		tx.Status = model.TransactionFailed
	}
	if to := strings.TrimSpace(r.To); to != "" {
		lowered := strings.ToLower(to)
		tx.To = &lowered
	}
	return tx, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(raw))
}

func parseUint(raw string) (uint64, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("value %s is not an integer", raw)
	}
	return safe.Uint64(d.IntPart())
}
