package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
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
	status
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.Hash,
			tx.From,
			tx.To,
			tx.Value,
			tx.GasUsed,
			tx.GasPrice,
			tx.TransactionFee,
			tx.Timestamp.UTC(),
			tx.BlockNumber,
			tx.IsContractInteraction,
			string(tx.Status),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
