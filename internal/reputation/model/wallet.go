package model

import "time"

// Wallet is the registry row for an address.
type Wallet struct {
	Address      string     `json:"address"`
	IsRegistered bool       `json:"isRegistered"`
	FirstSeen    time.Time  `json:"firstSeen"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// WalletProfile is a derived view over the registry row and stored transactions.
// Age and counts are recomputed on every read.
type WalletProfile struct {
	Address              string     `json:"address"`
	IsRegistered         bool       `json:"isRegistered"`
	FirstSeen            time.Time  `json:"firstSeen"`
	LastLogin            *time.Time `json:"lastLogin,omitempty"`
	WalletAge            int        `json:"walletAge"`
	TransactionCount     uint64     `json:"transactionCount"`
	ContractInteractions uint64     `json:"contractInteractions"`
	// LastActivity holds the earliest observed transaction timestamp, or FirstSeen
	// when the wallet has no transactions.
	LastActivity time.Time `json:"lastActivity"`
}

// TransactionStats aggregates a wallet's transactions over a period.
type TransactionStats struct {
	Period                    string   `json:"period"`
	TotalTransactions         uint64   `json:"totalTransactions"`
	SentTransactions          uint64   `json:"sentTransactions"`
	ReceivedTransactions      uint64   `json:"receivedTransactions"`
	TotalValue                float64  `json:"totalValue"`
	AvgValue                  float64  `json:"avgValue"`
	NetValueChange            float64  `json:"netValueChange"`
	UniqueContacts            uint64   `json:"uniqueContacts"`
	ContractInteractions      uint64   `json:"contractInteractions"`
	UniqueContractAddresses   uint64   `json:"uniqueContractAddresses"`
	TransactionsLast30Days    uint64   `json:"transactionsLast30Days"`
	TransactionsLast90Days    uint64   `json:"transactionsLast90Days"`
	AverageTransactionsPerDay *float64 `json:"averageTransactionsPerDay"`
}

// WalletFeatures is the numeric feature vector extracted for a wallet.
type WalletFeatures struct {
	Address      string    `json:"address"`
	Features     []float64 `json:"features"`
	FeatureNames []string  `json:"featureNames"`
}
