// Package profile derives wallet-level descriptors from the registry and stored transactions.
package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
)

// Resolver builds WalletProfile views. Nothing derived here is persisted.
type Resolver struct {
	registry WalletRegistry
	store    TransactionStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewResolver constructs a Resolver.
func NewResolver(registry WalletRegistry, store TransactionStore, logger *zap.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		store:    store,
		logger:   logger.Named("profile"),
		now:      time.Now,
	}
}

// GetWalletInfo returns the wallet profile, creating an unregistered registry entry
// on first sight.
func (r *Resolver) GetWalletInfo(ctx context.Context, address string) (model.WalletProfile, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.WalletProfile{}, err
	}

	now := r.now()
	wallet, err := r.registry.FindOrCreate(ctx, addr, now)
	if err != nil {
		return model.WalletProfile{}, fmt.Errorf("find or create wallet: %w", err)
	}

	first, err := r.store.EarliestTransaction(ctx, addr)
	if err != nil {
		return model.WalletProfile{}, fmt.Errorf("earliest transaction: %w", err)
	}

	total, contractInteractions, err := r.store.WalletTransactionCounts(ctx, addr)
	if err != nil {
		return model.WalletProfile{}, fmt.Errorf("wallet transaction counts: %w", err)
	}

	// Age and LastActivity both anchor on the first observed transaction.
	anchor := wallet.FirstSeen
	if first != nil {
		anchor = first.Timestamp
	}

	return model.WalletProfile{
		Address:              addr,
		IsRegistered:         wallet.IsRegistered,
		FirstSeen:            wallet.FirstSeen,
		LastLogin:            wallet.LastLogin,
		WalletAge:            ageInDays(anchor, now),
		TransactionCount:     total,
		ContractInteractions: contractInteractions,
		LastActivity:         anchor,
	}, nil
}

// RegisterWallet marks the wallet as registered and stamps its last login.
func (r *Resolver) RegisterWallet(ctx context.Context, address string) (model.Wallet, error) {
	addr, err := model.NormalizeAddress(address)
	if err != nil {
		return model.Wallet{}, err
	}

	wallet, err := r.registry.Register(ctx, addr, r.now())
	if err != nil {
		return model.Wallet{}, fmt.Errorf("register wallet: %w", err)
	}
	r.logger.Info("wallet registered", zap.String("wallet", addr))
	return wallet, nil
}

// ListRegisteredWallets returns registered wallets, newest first.
func (r *Resolver) ListRegisteredWallets(ctx context.Context) ([]model.Wallet, error) {
	wallets, err := r.registry.ListRegistered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registered wallets: %w", err)
	}
	return wallets, nil
}

func ageInDays(since, now time.Time) int {
	if since.IsZero() || !now.After(since) {
		return 0
	}
	return int(now.Sub(since) / (24 * time.Hour))
}
