package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// CountWalletTransactions returns the number of transactions touching address.
func (r *Repository) CountWalletTransactions(ctx context.Context, address string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_wallet_transactions", err, start)
	}()

	const query = `
SELECT count()
FROM transactions FINAL
WHERE from_address = ? OR to_address = ?`

	count, err := r.scanCount(ctx, query, address, address)
	if err != nil {
		return 0, fmt.Errorf("count wallet transactions: %w", err)
	}
	return count, nil
}
