package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/redis/go-redis/v9"
)

// CurrentWeights returns the stored score weights; ok is false when none were stored yet.
func (r *Registry) CurrentWeights(ctx context.Context) (weights model.ScoreWeights, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("current_weights", err, start)
	}()

	raw, err := r.client.Get(ctx, r.weightsKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get score weights: %w", err)
	}

	if err = json.Unmarshal(raw, &weights); err != nil {
		return nil, false, fmt.Errorf("decode score weights: %w", err)
	}
	return weights, true, nil
}

// SaveWeights replaces the stored score weights. Callers validate before saving.
func (r *Registry) SaveWeights(ctx context.Context, weights model.ScoreWeights) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_weights", err, start)
	}()

	raw, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("encode score weights: %w", err)
	}
	if err = r.client.Set(ctx, r.weightsKey(), raw, 0).Err(); err != nil {
		return fmt.Errorf("set score weights: %w", err)
	}
	return nil
}
