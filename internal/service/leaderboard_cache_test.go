package service

import (
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/redis/go-redis/v9"
)

func TestLeaderboardKey(t *testing.T) {
	if got := leaderboardKey(7, ranking.PeriodWeekly); got != "aptiprep:leaderboard:7:weekly" {
		t.Errorf("leaderboardKey = %q", got)
	}
}

func TestEntryTTL(t *testing.T) {
	sundayNight := time.Date(2024, time.May, 19, 23, 59, 0, 0, time.UTC)
	tests := []struct {
		name   string
		period ranking.Period
		now    time.Time
		ttl    time.Duration
		want   time.Duration
	}{
		{"all-time keeps configured ttl", ranking.PeriodAll, sundayNight, 5 * time.Minute, 5 * time.Minute},
		{"weekly capped at monday", ranking.PeriodWeekly, sundayNight, 5 * time.Minute, time.Minute},
		{"weekly far from rollover", ranking.PeriodWeekly, sundayNight.AddDate(0, 0, -3), 5 * time.Minute, 5 * time.Minute},
		{"monthly capped at first of month", ranking.PeriodMonthly, time.Date(2024, time.May, 31, 23, 58, 0, 0, time.UTC), 5 * time.Minute, 2 * time.Minute},
		{"unlimited ttl still expires at rollover", ranking.PeriodWeekly, sundayNight, 0, time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entryTTL(tt.period, tt.now, tt.ttl); got != tt.want {
				t.Errorf("entryTTL = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeaderboardCache_DegradesToMiss(t *testing.T) {
	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { unreachable.Close() })

	caches := map[string]LeaderboardCache{
		"noop":        NewLeaderboardCache(nil, time.Minute),
		"unreachable": NewLeaderboardCache(unreachable, time.Minute),
	}
	for name, cache := range caches {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cache.Set(ctx, &dto.LeaderboardResponse{TestID: 1, Period: string(ranking.PeriodAll)}, time.Now())
			if _, ok := cache.Get(ctx, 1, ranking.PeriodAll); ok {
				t.Error("Get reported a hit, want miss")
			}
			cache.Invalidate(ctx, 1)
		})
	}
}
