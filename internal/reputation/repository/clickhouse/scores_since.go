package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// ScoresSince returns score records for address at or after since, oldest first.
func (r *Repository) ScoresSince(ctx context.Context, address string, since time.Time) ([]model.ScoreRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("scores_since", err, start)
	}()

	const query = `
SELECT
	id,
	wallet_address,
	score,
	factors,
	timestamp
FROM reputation_scores
WHERE wallet_address = ? AND timestamp >= ?
ORDER BY timestamp ASC`

	rows, err := r.conn.Query(ctx, query, address, sinceOrEpoch(since))
	if err != nil {
		return nil, fmt.Errorf("query scores since: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	records := make([]model.ScoreRecord, 0)
	for rows.Next() {
		var record model.ScoreRecord
		if err = rows.Scan(
			&record.ID,
			&record.WalletAddress,
			&record.Score,
			&record.Factors,
			&record.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		record.Timestamp = record.Timestamp.UTC()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}

	return records, nil
}
