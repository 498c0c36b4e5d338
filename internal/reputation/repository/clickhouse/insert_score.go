package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// InsertScore appends a score record. Records are never updated in place.
func (r *Repository) InsertScore(ctx context.Context, record model.ScoreRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_score", err, start)
	}()

	const query = `
INSERT INTO reputation_scores (
	id,
	wallet_address,
	score,
	factors,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare score batch: %w", err)
	}

	if err = batch.Append(
		record.ID,
		record.WalletAddress,
		record.Score,
		record.Factors,
		record.Timestamp.UTC(),
	); err != nil {
		return fmt.Errorf("append score: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}
