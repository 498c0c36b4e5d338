package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// EarliestTransaction returns the lowest-block transaction touching address, or nil when there is none.
func (r *Repository) EarliestTransaction(ctx context.Context, address string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("earliest_transaction", err, start)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE from_address = ? OR to_address = ?
ORDER BY block_number ASC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address, address)
	if err != nil {
		return nil, fmt.Errorf("query earliest transaction: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate earliest transaction: %w", err)
		}
		return nil, nil
	}

	var row transactionRow
	if err = rows.Scan(row.dest()...); err != nil {
		return nil, fmt.Errorf("scan earliest transaction: %w", err)
	}

	tx := row.transaction()
	return &tx, nil
}
