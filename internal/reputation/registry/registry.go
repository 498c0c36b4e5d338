// Package registry keeps the wallet registry and the runtime score weights in Redis.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/redis/go-redis/v9"
)

const (
	fieldFirstSeen    = "first_seen"
	fieldIsRegistered = "is_registered"
	fieldLastLogin    = "last_login"
)

// Registry stores one hash per wallet plus index sets of known and registered wallets.
type Registry struct {
	client  redis.UniversalClient
	prefix  string
	metrics Metrics
}

// NewRegistry constructs a Registry. Keys are namespaced by prefix.
func NewRegistry(client redis.UniversalClient, prefix string, metrics Metrics) *Registry {
	if prefix == "" {
		prefix = "agenticid"
	}
	return &Registry{client: client, prefix: prefix, metrics: metrics}
}

func (r *Registry) walletKey(address string) string {
	return r.prefix + ":wallet:" + address
}

func (r *Registry) walletsKey() string {
	return r.prefix + ":wallets"
}

func (r *Registry) registeredKey() string {
	return r.prefix + ":wallets:registered"
}

func (r *Registry) weightsKey() string {
	return r.prefix + ":score:weights"
}

// FindOrCreate returns the wallet row, creating it with firstSeen=now and isRegistered=false when absent.
// Creation is a single MULTI/EXEC of HSETNX calls, so concurrent first reads agree on one row.
func (r *Registry) FindOrCreate(ctx context.Context, address string, now time.Time) (wallet model.Wallet, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_or_create", err, start)
	}()

	key := r.walletKey(address)
	var fields *redis.MapStringStringCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldFirstSeen, now.UnixMilli())
		pipe.HSetNX(ctx, key, fieldIsRegistered, "0")
		pipe.SAdd(ctx, r.walletsKey(), address)
		fields = pipe.HGetAll(ctx, key)
		return nil
	})
	if err != nil {
		return model.Wallet{}, fmt.Errorf("find or create wallet: %w", err)
	}

	wallet, err = decodeWallet(address, fields.Val())
	if err != nil {
		return model.Wallet{}, err
	}
	return wallet, nil
}

// Register marks the wallet registered and stamps lastLogin, creating the row if needed.
func (r *Registry) Register(ctx context.Context, address string, now time.Time) (wallet model.Wallet, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("register", err, start)
	}()

	key := r.walletKey(address)
	var fields *redis.MapStringStringCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldFirstSeen, now.UnixMilli())
		pipe.HSet(ctx, key, fieldIsRegistered, "1", fieldLastLogin, now.UnixMilli())
		pipe.SAdd(ctx, r.walletsKey(), address)
		pipe.SAdd(ctx, r.registeredKey(), address)
		fields = pipe.HGetAll(ctx, key)
		return nil
	})
	if err != nil {
		return model.Wallet{}, fmt.Errorf("register wallet: %w", err)
	}

	wallet, err = decodeWallet(address, fields.Val())
	if err != nil {
		return model.Wallet{}, err
	}
	return wallet, nil
}

// ListWallets returns every known wallet address in lexical order.
func (r *Registry) ListWallets(ctx context.Context) (addresses []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_wallets", err, start)
	}()

	addresses, err = r.client.SMembers(ctx, r.walletsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	sort.Strings(addresses)
	return addresses, nil
}

// ListRegistered returns registered wallets, most recently first seen first.
func (r *Registry) ListRegistered(ctx context.Context) (wallets []model.Wallet, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_registered", err, start)
	}()

	addresses, err := r.client.SMembers(ctx, r.registeredKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list registered wallets: %w", err)
	}
	if len(addresses) == 0 {
		return []model.Wallet{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(addresses))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, address := range addresses {
			cmds[i] = pipe.HGetAll(ctx, r.walletKey(address))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load registered wallets: %w", err)
	}

	wallets = make([]model.Wallet, 0, len(addresses))
	for i, address := range addresses {
		wallet, decodeErr := decodeWallet(address, cmds[i].Val())
		if decodeErr != nil {
			err = decodeErr
			return nil, err
		}
		wallets = append(wallets, wallet)
	}

	sort.Slice(wallets, func(i, j int) bool {
		if wallets[i].FirstSeen.Equal(wallets[j].FirstSeen) {
			return wallets[i].Address < wallets[j].Address
		}
		return wallets[i].FirstSeen.After(wallets[j].FirstSeen)
	})
	return wallets, nil
}

func decodeWallet(address string, fields map[string]string) (model.Wallet, error) {
	wallet := model.Wallet{
		Address:      address,
		IsRegistered: fields[fieldIsRegistered] == "1",
	}

	firstSeen, err := parseMillis(fields[fieldFirstSeen])
	if err != nil {
		return model.Wallet{}, fmt.Errorf("decode wallet %s first_seen: %w", address, err)
	}
	wallet.FirstSeen = firstSeen

	if raw, ok := fields[fieldLastLogin]; ok && raw != "" {
		lastLogin, err := parseMillis(raw)
		if err != nil {
			return model.Wallet{}, fmt.Errorf("decode wallet %s last_login: %w", address, err)
		}
		wallet.LastLogin = &lastLogin
	}
	return wallet, nil
}

func parseMillis(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
