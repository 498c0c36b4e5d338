package aggregator

import (
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

const day = 24 * time.Hour

func summarize(address string, period model.Period, txs []model.Transaction, now time.Time) model.TransactionStats {
	stats := model.TransactionStats{Period: period.String()}

	var sentValue, receivedValue float64
	contacts := make(map[string]struct{})
	contracts := make(map[string]struct{})
	last30 := now.Add(-30 * day)
	last90 := now.Add(-90 * day)

	for _, tx := range txs {
		if tx.From == address {
			stats.SentTransactions++
			sentValue += tx.Value
			if tx.IsContractInteraction {
				stats.ContractInteractions++
				if tx.To != nil {
					contracts[*tx.To] = struct{}{}
				}
			}
		} else {
			stats.ReceivedTransactions++
			receivedValue += tx.Value
		}

		if counterpart, ok := tx.Counterpart(address); ok && counterpart != address {
			contacts[counterpart] = struct{}{}
		}

		if !tx.Timestamp.Before(last30) {
			stats.TransactionsLast30Days++
		}
		if !tx.Timestamp.Before(last90) {
			stats.TransactionsLast90Days++
		}
	}

	stats.TotalTransactions = stats.SentTransactions + stats.ReceivedTransactions
	stats.TotalValue = sentValue + receivedValue
	stats.NetValueChange = receivedValue - sentValue
	stats.UniqueContacts = uint64(len(contacts))
	stats.UniqueContractAddresses = uint64(len(contracts))
	if stats.TotalTransactions > 0 {
		stats.AvgValue = stats.TotalValue / float64(stats.TotalTransactions)
	}

	// Unbounded windows have no meaningful per-day rate.
	if !period.IsAllTime() && period.Days() > 0 {
		perDay := float64(stats.TotalTransactions) / float64(period.Days())
		stats.AverageTransactionsPerDay = &perDay
	}

	return stats
}
