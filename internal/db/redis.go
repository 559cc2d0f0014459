package db

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/utils"
)

// RedisService owns the process-wide Redis client. It is constructed once at
// startup and handed to every repo, so there is no lazily-initialized global
// connection anywhere in the codebase.
type RedisService struct {
	client *goredis.Client
	log    *logger.Logger
}

func NewRedisService(log *logger.Logger) (*RedisService, error) {
	serviceLog := log.With("service", "RedisService")

	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	database := utils.GetEnvAsInt("REDIS_DB", 0, log)
	pingAttempts := utils.GetEnvAsInt("REDIS_PING_ATTEMPTS", 5, log)

	client := goredis.NewClient(&goredis.Options{
		Addr:            addr,
		Password:        password,
		DB:              database,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 2 * time.Second,
	})

	serviceLog.Info("Connecting to Redis...", "addr", addr)
	if err := pingWithBackoff(client, pingAttempts, serviceLog); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	serviceLog.Info("Redis connected successfully")

	return &RedisService{client: client, log: serviceLog}, nil
}

// pingWithBackoff verifies the connection before the process starts serving.
// Transient failures back off exponentially; exhausting attempts is fatal to
// this connection attempt and surfaces to the caller.
func pingWithBackoff(client *goredis.Client, attempts int, log *logger.Logger) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := 200 * time.Millisecond
	var lastErr error
	for i := 0; i < attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		lastErr = client.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			return nil
		}
		log.Warn("Redis ping failed", "attempt", i+1, "error", lastErr)
		if i < attempts-1 {
			time.Sleep(backoff)
			backoff *= 2
			if backoff > 5*time.Second {
				backoff = 5 * time.Second
			}
		}
	}
	return lastErr
}

// NewRedisServiceFromClient wraps an already-open client. Used by tests that
// point the repos at an in-process server.
func NewRedisServiceFromClient(client *goredis.Client, log *logger.Logger) *RedisService {
	return &RedisService{client: client, log: log.With("service", "RedisService")}
}

func (s *RedisService) Client() *goredis.Client {
	return s.client
}

func (s *RedisService) Close() error {
	s.log.Info("Closing Redis connection...")
	return s.client.Close()
}
