package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
)

// releaseScript deletes the lock key only if it still holds the caller's
// token, so a holder whose lock already expired cannot delete a lock that a
// later operation legitimately owns.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockManager implements key-scoped mutual exclusion with automatic
// expiry on top of Redis SET NX EX
type RedisLockManager struct {
	client redis.UniversalClient
	logger coreport.Logger
}

// NewRedisLockManager creates a new RedisLockManager
func NewRedisLockManager(client redis.UniversalClient, logger coreport.Logger) *RedisLockManager {
	return &RedisLockManager{
		client: client,
		logger: logger,
	}
}

// Acquire atomically creates the key only if absent, storing a fresh token
// that expires after ttl. Returns the token on success and
// ErrLockNotAcquired when another holder owns the key.
func (m *RedisLockManager) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	created, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		m.logger.Error("Lock backend error on acquire", map[string]any{
			"lock_key": key,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrLockBackend, err.Error())
	}
	if !created {
		return "", errs.ErrLockNotAcquired
	}

	m.logger.Debug("Lock acquired", map[string]any{
		"lock_key": key,
		"ttl":      ttl.String(),
	})
	return token, nil
}

// Release deletes the key only while it still holds the given token.
// Releasing an expired, absent or foreign key is a no-op.
func (m *RedisLockManager) Release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, m.client, []string{key}, token).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		m.logger.Error("Lock backend error on release", map[string]any{
			"lock_key": key,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrLockBackend, err.Error())
	}

	if deleted == 0 {
		m.logger.Debug("Lock was not held at release, nothing to do", map[string]any{
			"lock_key": key,
		})
	}
	return nil
}
