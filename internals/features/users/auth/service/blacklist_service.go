// file: internals/features/users/auth/service/blacklist_service.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const blacklistPrefix = "token:blacklist:"

// TokenBlacklist remembers revoked token ids until the token would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisBlacklist struct {
	Client *goredis.Client
}

func (b RedisBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.Client.Set(ctx, blacklistPrefix+jti, 1, ttl).Err()
}

func (b RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.Client.Get(ctx, blacklistPrefix+jti).Err()
	switch {
	case errors.Is(err, goredis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// NewBlacklist uses Redis when connected and an in-process map otherwise.
func NewBlacklist(client *goredis.Client) TokenBlacklist {
	if client == nil {
		return NewMemoryBlacklist(nil)
	}
	return RedisBlacklist{Client: client}
}

// MemoryBlacklist serves single-instance deployments and tests.
type MemoryBlacklist struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
}

func NewMemoryBlacklist(now func() time.Time) *MemoryBlacklist {
	if now == nil {
		now = time.Now
	}
	return &MemoryBlacklist{items: map[string]time.Time{}, now: now}
}

func (b *MemoryBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[jti] = b.now().Add(ttl)
	return nil
}

func (b *MemoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.items[jti]
	if !ok {
		return false, nil
	}
	if !b.now().Before(until) {
		delete(b.items, jti)
		return false, nil
	}
	return true, nil
}
