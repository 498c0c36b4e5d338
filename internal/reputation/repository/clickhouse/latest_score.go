package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// LatestScore returns the most recent score record for address, or nil when none exists.
func (r *Repository) LatestScore(ctx context.Context, address string) (*model.ScoreRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_score", err, start)
	}()

	const query = `
SELECT
	id,
	wallet_address,
	score,
	factors,
	timestamp
FROM reputation_scores
WHERE wallet_address = ?
ORDER BY timestamp DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("query latest score: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate latest score: %w", err)
		}
		return nil, nil
	}

	var record model.ScoreRecord
	if err = rows.Scan(
		&record.ID,
		&record.WalletAddress,
		&record.Score,
		&record.Factors,
		&record.Timestamp,
	); err != nil {
		return nil, fmt.Errorf("scan latest score: %w", err)
	}
	record.Timestamp = record.Timestamp.UTC()

	return &record, nil
}
