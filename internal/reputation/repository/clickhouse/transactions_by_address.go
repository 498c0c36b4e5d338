package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// TransactionsByAddress returns every transaction sent or received by address at or after since.
// A zero since selects the whole history.
func (r *Repository) TransactionsByAddress(ctx context.Context, address string, since time.Time) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_address", err, start)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE (from_address = ? OR to_address = ?) AND timestamp >= ?
ORDER BY block_number ASC`

	rows, err := r.conn.Query(ctx, query, address, address, sinceOrEpoch(since))
	if err != nil {
		return nil, fmt.Errorf("query transactions by address: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	txs, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
