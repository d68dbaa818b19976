package repository

import (
	"context"
	"time"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
)

// ActivityRepository reads completion timestamps from the activity sources
// written by the rest of the platform.
type ActivityRepository interface {
	PracticeSessionTimes(ctx context.Context, userID uint) ([]time.Time, error)
	AssignmentCompletionTimes(ctx context.Context, userID uint) ([]time.Time, error)
	CustomTestTimes(ctx context.Context, userID uint) ([]time.Time, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) PracticeSessionTimes(ctx context.Context, userID uint) ([]time.Time, error) {
	return r.completedAt(ctx, &model.PracticeSession{}, userID)
}

func (r *activityRepository) AssignmentCompletionTimes(ctx context.Context, userID uint) ([]time.Time, error) {
	return r.completedAt(ctx, &model.AssignmentCompletion{}, userID)
}

func (r *activityRepository) CustomTestTimes(ctx context.Context, userID uint) ([]time.Time, error) {
	return r.completedAt(ctx, &model.CustomTestAttempt{}, userID)
}

func (r *activityRepository) completedAt(ctx context.Context, table interface{}, userID uint) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(table).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Pluck("completed_at", &times).Error
	return times, err
}
