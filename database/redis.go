package database

import (
	"context"
	"time"

	"github.com/lshigami/aptiprep/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisClient returns nil when no address is configured. A failed ping is
// logged but not fatal; cache reads degrade to misses.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR is empty, leaderboard cache is disabled")
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
		log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Error connecting to Redis")
	} else {
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	}
	return client
}
