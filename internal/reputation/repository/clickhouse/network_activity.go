package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// NetworkActivity summarises all stored transactions at or after since.
func (r *Repository) NetworkActivity(ctx context.Context, since time.Time) (model.NetworkActivity, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("network_activity", err, start)
	}()

	const walletsQuery = `
SELECT uniqExact(address) AS active_wallets
FROM (
	SELECT from_address AS address
	FROM transactions FINAL
	WHERE timestamp >= ?
	UNION ALL
	SELECT assumeNotNull(to_address) AS address
	FROM transactions FINAL
	WHERE timestamp >= ? AND to_address IS NOT NULL
)`

	const countQuery = `
SELECT count()
FROM transactions FINAL
WHERE timestamp >= ?`

	const dailyQuery = `
SELECT
	toStartOfDay(timestamp) AS day,
	count() AS count
FROM transactions FINAL
WHERE timestamp >= ?
GROUP BY day
ORDER BY day ASC`

	from := sinceOrEpoch(since)
	var activity model.NetworkActivity

	activity.TotalTransactions, err = r.scanCount(ctx, countQuery, from)
	if err != nil {
		return model.NetworkActivity{}, fmt.Errorf("count network transactions: %w", err)
	}

	activity.ActiveWallets, err = r.scanCount(ctx, walletsQuery, from, from)
	if err != nil {
		return model.NetworkActivity{}, fmt.Errorf("count active wallets: %w", err)
	}

	activity.DailyActivity, err = r.dailyActivity(ctx, dailyQuery, from)
	if err != nil {
		return model.NetworkActivity{}, err
	}

	return activity, nil
}

func (r *Repository) dailyActivity(ctx context.Context, query string, from time.Time) (days []model.DailyActivity, err error) {
	rows, err := r.conn.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("query daily activity: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	days = make([]model.DailyActivity, 0)
	for rows.Next() {
		var day model.DailyActivity
		if err = rows.Scan(&day.Day, &day.Count); err != nil {
			return nil, fmt.Errorf("scan daily activity: %w", err)
		}
		day.Day = day.Day.UTC()
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily activity: %w", err)
	}
	return days, nil
}

func (r *Repository) scanCount(ctx context.Context, query string, args ...any) (uint64, error) {
	var count uint64
	if err := r.scanRow(ctx, query, []any{&count}, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) scanRow(ctx context.Context, query string, dest []any, args ...any) (err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return fmt.Errorf("iterate: %w", err)
		}
		return fmt.Errorf("no rows")
	}
	if err = rows.Scan(dest...); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return rows.Err()
}
