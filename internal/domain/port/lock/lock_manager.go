package lock

import (
	"context"
	"time"
)

// Manager provides short-lived, key-scoped mutual exclusion stored outside
// process memory, so any instance of the service can contend for the same
// lock. Locks self-expire after their TTL; expiry is the sole crash-recovery
// mechanism.
type Manager interface {
	// Acquire atomically creates the key only if absent, with an expiry after
	// ttl, and returns an opaque token identifying this acquisition. Returns
	// ErrLockNotAcquired if another holder currently owns the key.
	//
	// Possible errors:
	// - ErrLockNotAcquired: If the key is already held
	// - ErrLockBackend: If the lock backend is unreachable
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, err error)

	// Release deletes the key only if it still holds the given token, so a
	// holder whose lock already expired cannot release a successor's lock.
	// Releasing an absent or foreign key is a no-op, never an error.
	//
	// Possible errors:
	// - ErrLockBackend: If the lock backend is unreachable
	Release(ctx context.Context, key string, token string) error
}
