package repository

import (
	"context"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardRepository writes the period standings read by the platform's
// leaderboard display. The engine's own leaderboard endpoint recomputes
// from attempts instead.
type LeaderboardRepository interface {
	// Upsert replaces the (user, test, period) row.
	Upsert(ctx context.Context, entry *model.LeaderboardEntry) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Upsert(ctx context.Context, entry *model.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "test_id"}, {Name: "period_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attempt_id", "rank", "score", "time_taken", "percentile", "updated_at",
		}),
	}).Create(entry).Error
}

