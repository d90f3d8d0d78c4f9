package app

import (
	"context"
	"fmt"
	"time"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const redisKeyPrefix = "storefront:"

// retryDelay is the pause between connection attempts.
var retryDelay = 5 * time.Second

func connectRedisWithRetry(ctx context.Context, cfg config.Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	var err error
	attempts := max(1, cfg.ConnectRetries)
	for i := 1; i <= attempts; i++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
			return rdb, nil
		}

		logger.Warn("redis connect failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if i == attempts || !sleep(ctx, retryDelay) {
			break
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
}

func connectKafkaWithRetry(ctx context.Context, cfg config.Config, logger *zap.Logger) (*kafka.Writer, error) {
	var err error
	attempts := max(1, cfg.ConnectRetries)
	for i := 1; i <= attempts; i++ {
		var conn *kafka.Conn
		conn, err = kafka.DialContext(ctx, "tcp", cfg.KafkaBroker)
		if err == nil {
			_ = conn.Close()
			logger.Info("connected to kafka", zap.String("broker", cfg.KafkaBroker))
			return producer.NewWriter(cfg.KafkaBroker, cfg.KafkaTopic), nil
		}

		logger.Warn("kafka connect failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if i == attempts || !sleep(ctx, retryDelay) {
			break
		}
	}

	return nil, fmt.Errorf("connect kafka %s: %w", cfg.KafkaBroker, err)
}

// newStorage returns the configured KV. An unreachable Redis degrades to the
// in-memory store so the storefront keeps serving carts.
func newStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.KV, func() error) {
	if cfg.StorageDriver != config.DriverRedis {
		logger.Info("using in-memory storage")
		return storage.NewMemoryStore(), func() error { return nil }
	}

	rdb, err := connectRedisWithRetry(ctx, cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, running with in-memory storage", zap.Error(err))
		return storage.NewMemoryStore(), func() error { return nil }
	}
	return storage.NewRedisStore(rdb, redisKeyPrefix), rdb.Close
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
