package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LeaderboardCache holds rendered period leaderboards. Failures never reach
// the caller: a broken cache behaves like an empty one.
type LeaderboardCache interface {
	Get(ctx context.Context, testID uint, period ranking.Period) (*dto.LeaderboardResponse, bool)
	// Set stores resp as rendered at now, in the ranking location.
	Set(ctx context.Context, resp *dto.LeaderboardResponse, now time.Time)
	Invalidate(ctx context.Context, testID uint)
}

type redisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache returns a no-op cache when client is nil.
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) LeaderboardCache {
	if client == nil {
		return noopLeaderboardCache{}
	}
	return &redisLeaderboardCache{client: client, ttl: ttl}
}

func leaderboardKey(testID uint, period ranking.Period) string {
	return fmt.Sprintf("aptiprep:leaderboard:%d:%s", testID, period)
}

func (c *redisLeaderboardCache) Get(ctx context.Context, testID uint, period ranking.Period) (*dto.LeaderboardResponse, bool) {
	raw, err := c.client.Get(ctx, leaderboardKey(testID, period)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Uint("testID", testID).Msg("LeaderboardCache Get: redis error")
		}
		return nil, false
	}
	var resp dto.LeaderboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("LeaderboardCache Get: corrupt entry")
		return nil, false
	}
	return &resp, true
}

// entryTTL keeps a weekly or monthly entry from outliving its window.
func entryTTL(period ranking.Period, now time.Time, ttl time.Duration) time.Duration {
	end, bounded := ranking.WindowEnd(period, now)
	if !bounded {
		return ttl
	}
	if left := end.Sub(now); ttl <= 0 || left < ttl {
		return left
	}
	return ttl
}

func (c *redisLeaderboardCache) Set(ctx context.Context, resp *dto.LeaderboardResponse, now time.Time) {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Warn().Err(err).Msg("LeaderboardCache Set: marshal")
		return
	}
	period := ranking.Period(resp.Period)
	key := leaderboardKey(resp.TestID, period)
	if err := c.client.Set(ctx, key, raw, entryTTL(period, now, c.ttl)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("LeaderboardCache Set: redis error")
	}
}

func (c *redisLeaderboardCache) Invalidate(ctx context.Context, testID uint) {
	keys := make([]string, 0, len(ranking.Periods))
	for _, p := range ranking.Periods {
		keys = append(keys, leaderboardKey(testID, p))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("LeaderboardCache Invalidate: redis error")
	}
}

type noopLeaderboardCache struct{}

func (noopLeaderboardCache) Get(context.Context, uint, ranking.Period) (*dto.LeaderboardResponse, bool) {
	return nil, false
}

func (noopLeaderboardCache) Set(context.Context, *dto.LeaderboardResponse, time.Time) {}

func (noopLeaderboardCache) Invalidate(context.Context, uint) {}
