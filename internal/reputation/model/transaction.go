// Package model defines domain models for wallet reputation scoring.
package model

import "time"

// TransactionStatus describes the execution outcome of a transaction.
type TransactionStatus string

var (
	// TransactionSuccess marks a transaction that executed without error.
	TransactionSuccess TransactionStatus = "success"
	// TransactionFailed marks a reverted or otherwise failed transaction.
	TransactionFailed TransactionStatus = "failed"
)

// Transaction is an immutable on-chain transfer or call touching a wallet.
type Transaction struct {
	Hash                  string            `json:"hash"`
	From                  string            `json:"from"`
	To                    *string           `json:"to"`
	Value                 float64           `json:"value"`
	GasUsed               uint64            `json:"gasUsed"`
	GasPrice              float64           `json:"gasPrice"`
	TransactionFee        float64           `json:"transactionFee"`
	Timestamp             time.Time         `json:"timestamp"`
	BlockNumber           uint64            `json:"blockNumber"`
	IsContractInteraction bool              `json:"isContractInteraction"`
	Status                TransactionStatus `json:"status"`
}

// Counterpart returns the other side of the transaction relative to address.
// The second value is false for contract creations seen from the sender.
func (t Transaction) Counterpart(address string) (string, bool) {
	if t.From == address {
		if t.To == nil {
			return "", false
		}
		return *t.To, true
	}
	return t.From, true
}

// SortOrder controls timestamp ordering of transaction listings.
type SortOrder string

var (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TransactionPage is one page of a wallet's transactions.
type TransactionPage struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Pagination describes the position of a TransactionPage.
type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
	TotalPages uint64 `json:"totalPages"`
}

// DailyActivity is the number of transactions observed on one UTC day.
type DailyActivity struct {
	Day   time.Time `json:"day"`
	Count uint64    `json:"count"`
}

// NetworkActivity summarises all stored transactions for a period.
type NetworkActivity struct {
	Period            string          `json:"period"`
	TotalTransactions uint64          `json:"totalTransactions"`
	ActiveWallets     uint64          `json:"activeWallets"`
	DailyActivity     []DailyActivity `json:"dailyActivity"`
}
