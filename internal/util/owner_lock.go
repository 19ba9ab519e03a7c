package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OwnerLock is a per-user advisory lock backed by Redis SetNX. It serializes
// stage synchronization passes for one user across requests and instances.
type OwnerLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOwnerLock(rdb *redis.Client, ttl time.Duration) *OwnerLock {
	return &OwnerLock{rdb: rdb, ttl: ttl}
}

// Acquire takes the lock for a user, polling briefly if another pass holds
// it, and returns the release func. When Redis is unavailable the lock fails
// open: the transactional apply still keeps a single pass consistent.
func (l *OwnerLock) Acquire(ctx context.Context, userID int) func() {
	key := fmt.Sprintf("stage_sync:lock:%d", userID)
	deadline := time.Now().Add(2 * time.Second)

	for {
		ok, err := l.rdb.SetNX(ctx, key, 1, l.ttl).Result()
		if err != nil {
			return func() {}
		}
		if ok {
			return func() {
				l.rdb.Del(context.Background(), key)
			}
		}
		if time.Now().After(deadline) {
			return func() {}
		}
		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(50 * time.Millisecond):
		}
	}
}
