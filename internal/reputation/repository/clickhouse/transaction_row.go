package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

const transactionColumns = `
	hash,
	from_address,
	to_address,
	value,
	gas_used,
	gas_price,
	transaction_fee,
	timestamp,
	block_number,
	is_contract_interaction,
	status`

// epoch stands in for an unbounded lower time bound; DateTime64 cannot hold the zero time.
var epoch = time.Unix(0, 0).UTC()

type transactionRow struct {
	model.Transaction
	status string
}

func (r *transactionRow) dest() []any {
	return []any{
		&r.Hash,
		&r.From,
		&r.To,
		&r.Value,
		&r.GasUsed,
		&r.GasPrice,
		&r.TransactionFee,
		&r.Timestamp,
		&r.BlockNumber,
		&r.IsContractInteraction,
		&r.status,
	}
}

func (r *transactionRow) transaction() model.Transaction {
	tx := r.Transaction
	tx.Status = model.TransactionStatus(r.status)
	tx.Timestamp = tx.Timestamp.UTC()
	return tx
}

func sinceOrEpoch(since time.Time) time.Time {
	if since.IsZero() || since.Before(epoch) {
		return epoch
	}
	return since.UTC()
}

func scanTransactions(rows Rows) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var row transactionRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		txs = append(txs, row.transaction())
	}
	return txs, nil
}
