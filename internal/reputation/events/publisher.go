// Package events publishes computed reputation scores to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/goodnatureofminers/agenticid-backend/pkg/batcher"
	"go.uber.org/zap"
)

// ScoreComputedType is the event type carried by every published score.
const ScoreComputedType = "score.computed"

// ScoreEvent is the JSON payload of a score.computed message.
type ScoreEvent struct {
	Type          string              `json:"type"`
	ID            string              `json:"id"`
	WalletAddress string              `json:"walletAddress"`
	Score         int                 `json:"score"`
	Factors       []model.ScoreFactor `json:"factors"`
	Timestamp     time.Time           `json:"timestamp"`
}

// NewSyncProducer connects an acks=all idempotent producer to brokers.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers")
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 10
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Version = sarama.V2_1_0_0

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

// Publisher buffers score events and sends them in batches keyed by wallet address.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	batcher  *batcher.Batcher[model.ReputationScore]
	metrics  Metrics
	logger   *zap.Logger
}

// NewPublisher wraps producer. Call Start before publishing and Close on shutdown.
func NewPublisher(producer sarama.SyncProducer, topic string, metrics Metrics, logger *zap.Logger, cfg batcher.Config) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		metrics:  metrics,
		logger:   logger.Named("events"),
	}
	p.batcher = batcher.New(p.logger, p.flush, cfg)
	return p
}

// Start launches the flushing loop.
func (p *Publisher) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Close flushes buffered events and closes the producer.
func (p *Publisher) Close() error {
	p.batcher.Stop()
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}

// PublishScore queues score for delivery.
func (p *Publisher) PublishScore(ctx context.Context, score model.ReputationScore) error {
	if err := p.batcher.Add(ctx, score); err != nil {
		return fmt.Errorf("queue score event: %w", err)
	}
	return nil
}

func (p *Publisher) flush(_ context.Context, scores []model.ReputationScore) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(err, len(scores), started)
	}()

	msgs := make([]*sarama.ProducerMessage, 0, len(scores))
	for _, s := range scores {
		msg, err := p.message(s)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err = p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("send score events: %w", err)
	}
	return nil
}

func (p *Publisher) message(score model.ReputationScore) (*sarama.ProducerMessage, error) {
	factors := score.Factors
	if factors == nil {
		factors = []model.ScoreFactor{}
	}
	payload, err := json.Marshal(ScoreEvent{
		Type:          ScoreComputedType,
		ID:            score.ID,
		WalletAddress: score.WalletAddress,
		Score:         score.Score,
		Factors:       factors,
		Timestamp:     score.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal score event %s: %w", score.ID, err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(score.WalletAddress),
		Value: sarama.ByteEncoder(payload),
	}, nil
}
