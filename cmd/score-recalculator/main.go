// Command score-recalculator force-recomputes the score of every known wallet and prints a report.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/agenticid-backend/internal/app"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	app.Options

	FailOnError bool `long:"fail-on-error" env:"SCORE_RECALCULATOR_FAIL_ON_ERROR" description:"exit non-zero when any wallet fails"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	failed, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("score recalculation failed", zap.Error(err))
	}
	if failed > 0 && cfg.FailOnError {
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (int, error) {
	pipeline, err := app.New(ctx, cfg.Options, logger)
	if err != nil {
		return 0, fmt.Errorf("init pipeline: %w", err)
	}
	defer func() {
		if err := pipeline.Close(); err != nil {
			logger.Error("failed to close pipeline", zap.Error(err))
		}
	}()

	report, err := pipeline.Service.RecalculateAllScores(ctx)
	if err != nil {
		return 0, err
	}
	writeReport(os.Stdout, report)
	return report.Failed, nil
}
