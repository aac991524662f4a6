package client

import (
	"context"
	"fmt"
	"time"

	"talentops/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisConnectTimeout = 5 * time.Second

// RedisClient 快照寫入鎖使用的連線
type RedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisClient 啟動時 ping 一次，連不上直接回錯讓程式停止
func NewRedisClient(logger *zap.Logger, conf *config.Configuration) (*RedisClient, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         conf.Redis.Addr(),
		Password:     conf.Redis.Password,
		DB:           conf.Redis.DB,
		DialTimeout:  redisConnectTimeout,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		logger.Error("failed to connect to Redis", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return nil, nil, fmt.Errorf("ping redis %s: %w", conf.Redis.Addr(), err)
	}
	logger.Info("Connected to Redis", zap.String("addr", conf.Redis.Addr()), zap.Int("db", conf.Redis.DB))

	redisClient := WrapRedisClient(logger, rdb)
	cleanup := func() {
		logger.Info("closing the Redis resources")
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close Redis client", zap.Error(err))
		}
	}
	return redisClient, cleanup, nil
}

// WrapRedisClient 使用既有連線（測試或共用連線時）
func WrapRedisClient(logger *zap.Logger, client *redis.Client) *RedisClient {
	return &RedisClient{client: client, logger: logger}
}

func (redisClient *RedisClient) Close() error {
	return redisClient.client.Close()
}

func (redisClient *RedisClient) Client() *redis.Client {
	return redisClient.client
}
