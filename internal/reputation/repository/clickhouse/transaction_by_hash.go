package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// TransactionByHash returns a stored transaction or model.ErrNotFound.
func (r *Repository) TransactionByHash(ctx context.Context, hash string) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_hash", err, start)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("query transaction by hash: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Transaction{}, fmt.Errorf("iterate transaction by hash: %w", err)
		}
		err = fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
		return model.Transaction{}, err
	}

	var row transactionRow
	if err = rows.Scan(row.dest()...); err != nil {
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	return row.transaction(), nil
}
