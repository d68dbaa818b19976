package repository

import (
	"context"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepository interface {
	// Upsert overwrites every computed column of the (user, category) row.
	Upsert(ctx context.Context, a *model.UserAnalytics) error
	FindByUser(ctx context.Context, userID uint) ([]model.UserAnalytics, error)
	FindTimezone(ctx context.Context, userID uint) (string, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Upsert(ctx context.Context, a *model.UserAnalytics) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"avg_score", "total_time_spent", "weak_areas", "strengths",
			"current_streak_days", "longest_streak_days", "active_days", "last_activity_date", "updated_at",
		}),
	}).Create(a).Error
}

func (r *analyticsRepository) FindByUser(ctx context.Context, userID uint) ([]model.UserAnalytics, error) {
	var rows []model.UserAnalytics
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("category ASC").Find(&rows).Error
	return rows, err
}

// FindTimezone returns the user's stored timezone, or "" when the user has
// no profile row.
func (r *analyticsRepository) FindTimezone(ctx context.Context, userID uint) (string, error) {
	var profiles []model.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&profiles).Error; err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", nil
	}
	return profiles[0].Timezone, nil
}
