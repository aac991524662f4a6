// Package storage 依設定組裝儲存實作與快照鎖
package storage

import (
	"fmt"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/client"
	fluentdRepo "talentops/internal/database/fluentd/repository"
	"talentops/internal/database/memory"
	mongoRepo "talentops/internal/database/mongodb/repository"
	redisRepo "talentops/internal/database/redis/repository"
	"talentops/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	NewRepositories,
	NewScopeLocker,
	client.NewFluentdClient,
	fluentdRepo.ProviderSet,
)

// NewRepositories app.STORAGE 為空時預設 mongo
func NewRepositories(logger *zap.Logger, conf *config.Configuration) (*database.Repositories, func(), error) {
	switch core.StorageDriver(conf.App.Storage) {
	case "", core.StorageMongo:
		if conf.MongoDB.URI == "" {
			return nil, nil, fmt.Errorf("storage %q requires MONGODB__URI", core.StorageMongo)
		}
		mongoClient, cleanup, err := client.NewMongoClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		repositories, err := mongoRepo.NewRepositories(mongoClient)
		if err != nil {
			logger.Error("mongo repositories init failed", zap.Error(err))
			cleanup()
			return nil, nil, err
		}
		return repositories, cleanup, nil
	case core.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewRepositories(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", conf.App.Storage)
	}
}

// NewScopeLocker 有設定 Redis 時跨實例互斥，否則退回行程內鎖
func NewScopeLocker(logger *zap.Logger, conf *config.Configuration, trace *telemetry.Trace) (database.ScopeLocker, func(), error) {
	if !conf.Redis.Enabled() {
		logger.Info("redis not configured, snapshot locks are process-local")
		return memory.NewScopeLocker(), func() {}, nil
	}
	redisClient, cleanup, err := client.NewRedisClient(logger, conf)
	if err != nil {
		return nil, nil, err
	}
	return redisRepo.NewScopeLockRepository(trace, redisClient), cleanup, nil
}
