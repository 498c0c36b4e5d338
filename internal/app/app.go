package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/metrics"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/aggregator"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/events"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/explorer"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/features"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/profile"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/registry"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/repository/clickhouse"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/service"
	"go.uber.org/zap"
)

// App holds the wired pipeline components.
type App struct {
	Service    *service.ReputationService
	Aggregator *aggregator.Aggregator
	Profiles   *profile.Resolver
	Features   *features.Extractor

	closers []func() error
}

// New connects to ClickHouse, Redis and optionally Kafka and wires every component.
// On error, anything already opened is closed.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*App, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	a := &App{}
	ready := false
	defer func() {
		if !ready {
			_ = a.Close()
		}
	}()

	repo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, fmt.Errorf("init clickhouse repository: %w", err)
	}
	a.closers = append(a.closers, repo.Close)

	redisClient, err := registry.NewClient(ctx, opts.redisConfig())
	if err != nil {
		return nil, fmt.Errorf("init redis client: %w", err)
	}
	a.closers = append(a.closers, redisClient.Close)
	walletRegistry := registry.NewRegistry(redisClient, opts.RedisPrefix, metrics.NewRedisRegistry())

	source, err := explorer.NewClient(opts.explorerConfig(), metrics.NewExplorerClient(opts.ExplorerChainID))
	if err != nil {
		return nil, fmt.Errorf("init explorer client: %w", err)
	}

	serviceMetrics := metrics.NewReputationService()
	a.Aggregator = aggregator.New(repo, source, serviceMetrics, logger)
	a.Profiles = profile.NewResolver(walletRegistry, repo, logger)
	extractor, err := features.NewExtractor(a.Aggregator, a.Profiles, features.DefaultGlobalStats())
	if err != nil {
		return nil, fmt.Errorf("init feature extractor: %w", err)
	}
	a.Features = extractor

	var secondary service.SecondaryScorer
	if opts.SecondaryScorer {
		secondary = service.NewSimulatedScorer(opts.SecondaryLatency, uint64(time.Now().UnixNano()))
	}

	var publisher service.EventPublisher
	if len(opts.KafkaBrokers) > 0 {
		producer, err := events.NewSyncProducer(opts.KafkaBrokers)
		if err != nil {
			return nil, fmt.Errorf("init kafka producer: %w", err)
		}
		p := events.NewPublisher(producer, opts.KafkaTopic, metrics.NewEventPublisher(), logger, opts.batcherConfig())
		p.Start(ctx)
		a.closers = append(a.closers, p.Close)
		publisher = p
	} else {
		logger.Info("kafka brokers not configured, score events disabled")
	}

	a.Service = service.NewReputationService(
		a.Profiles,
		a.Aggregator,
		repo,
		walletRegistry,
		secondary,
		publisher,
		serviceMetrics,
		logger,
		opts.serviceConfig(),
	)
	ready = true
	return a, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
