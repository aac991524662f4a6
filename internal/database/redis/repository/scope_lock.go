package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentops/internal/core"
	"talentops/internal/database"
	client "talentops/internal/database/client"
	"talentops/internal/telemetry"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript 只刪除自己持有的鎖，避免 TTL 過期後誤刪他人的鎖
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type ScopeLockRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewScopeLockRepository(trace *telemetry.Trace, client *client.RedisClient) *ScopeLockRepository {
	return &ScopeLockRepository{trace: trace, client: client.Client()}
}

// TryLock SET key token NX PX ttl；已被持有時回傳 database.ErrScopeLocked
func (repository *ScopeLockRepository) TryLock(
	contextValue context.Context,
	scopeKey string,
	ttl time.Duration,
) (release func(context.Context) error, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		if errors.Is(returnedError, database.ErrScopeLocked) {
			endSpan(nil)
			return
		}
		endSpan(returnedError)
	}()

	redisKey := repository.buildKey(scopeKey)
	token := uuid.NewString()
	repository.trace.ApplyTraceAttributes(span, struct {
		Key string `trace:"lock.key"`
		TTL int64  `trace:"lock.ttl_ms"`
	}{Key: redisKey, TTL: ttl.Milliseconds()})

	acquired, setError := repository.client.SetNX(contextValue, redisKey, token, ttl).Result()
	if setError != nil {
		return nil, fmt.Errorf("acquire %s: %w", redisKey, setError)
	}
	if !acquired {
		return nil, database.ErrScopeLocked
	}

	return func(releaseContext context.Context) error {
		if err := releaseScript.Run(releaseContext, repository.client, []string{redisKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("release %s: %w", redisKey, err)
		}
		return nil
	}, nil
}

// key 格式：talentops:snapshot_lock:{scope}
func (repository *ScopeLockRepository) buildKey(scopeKey string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeySnapshotLock, scopeKey)
}
