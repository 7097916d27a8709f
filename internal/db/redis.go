package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devrim/examforge/internal/config"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// NewRedisClient connects to redis for the search cache. Returns nil when
// redis is disabled or unreachable; the cache layer degrades to a no-op in
// that case.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		logger.Info().Msg("Redis disabled, search cache inactive")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, search cache inactive")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return client
}
