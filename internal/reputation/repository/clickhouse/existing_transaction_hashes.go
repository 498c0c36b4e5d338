package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ExistingTransactionHashes returns the subset of hashes already stored.
func (r *Repository) ExistingTransactionHashes(ctx context.Context, hashes []string) (map[string]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("existing_transaction_hashes", err, start)
	}()

	result := make(map[string]struct{}, len(hashes))
	if len(hashes) == 0 {
		return result, nil
	}

	const query = `
SELECT DISTINCT hash
FROM transactions
WHERE hash IN ?`

	rows, err := r.conn.Query(ctx, query, hashes)
	if err != nil {
		return nil, fmt.Errorf("query existing transaction hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan transaction hash: %w", err)
		}
		result[hash] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction hashes: %w", err)
	}

	return result, nil
}
