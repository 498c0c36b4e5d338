package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// WalletTransactionCounts returns the number of transactions touching address and
// how many of them were contract calls sent by it.
func (r *Repository) WalletTransactionCounts(ctx context.Context, address string) (total, contractInteractions uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("wallet_transaction_counts", err, start)
	}()

	const query = `
SELECT
	count() AS total,
	countIf(from_address = ? AND is_contract_interaction) AS contract_interactions
FROM transactions FINAL
WHERE from_address = ? OR to_address = ?`

	rows, err := r.conn.Query(ctx, query, address, address, address)
	if err != nil {
		return 0, 0, fmt.Errorf("query wallet transaction counts: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		return 0, 0, fmt.Errorf("wallet transaction counts not found")
	}

	if err = rows.Scan(&total, &contractInteractions); err != nil {
		return 0, 0, fmt.Errorf("scan wallet transaction counts: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("iterate wallet transaction counts: %w", err)
	}

	return total, contractInteractions, nil
}
