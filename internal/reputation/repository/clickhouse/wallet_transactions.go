package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// WalletTransactions returns one page of a wallet's transactions ordered by timestamp.
func (r *Repository) WalletTransactions(ctx context.Context, address string, limit, offset uint64, order model.SortOrder) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("wallet_transactions", err, start)
	}()

	const queryAsc = `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE from_address = ? OR to_address = ?
ORDER BY timestamp ASC, hash ASC
LIMIT ? OFFSET ?`

	const queryDesc = `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE from_address = ? OR to_address = ?
ORDER BY timestamp DESC, hash ASC
LIMIT ? OFFSET ?`

	query := queryDesc
	if order == model.SortAsc {
		query = queryAsc
	}

	rows, err := r.conn.Query(ctx, query, address, address, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query wallet transactions: %w", err)
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
		return nil, fmt.Errorf("iterate wallet transactions: %w", err)
	}

	return txs, nil
}
