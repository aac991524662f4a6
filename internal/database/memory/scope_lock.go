package memory

import (
	"context"
	"sync"
	"time"

	"talentops/internal/database"
)

// ScopeLocker 行程內的 keyed lock；未設定 Redis 時使用，只保證單一實例內互斥
type ScopeLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

func NewScopeLocker() *ScopeLocker {
	return &ScopeLocker{held: map[string]time.Time{}, clock: time.Now}
}

// TryLock 過期的鎖視同未持有
func (locker *ScopeLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	locker.mu.Lock()
	defer locker.mu.Unlock()
	now := locker.clock()
	if expiresAt, ok := locker.held[key]; ok && now.Before(expiresAt) {
		return nil, database.ErrScopeLocked
	}
	expiresAt := now.Add(ttl)
	locker.held[key] = expiresAt
	return func(context.Context) error {
		locker.mu.Lock()
		defer locker.mu.Unlock()
		if current, ok := locker.held[key]; ok && current.Equal(expiresAt) {
			delete(locker.held, key)
		}
		return nil
	}, nil
}
