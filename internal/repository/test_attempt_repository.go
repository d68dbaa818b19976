package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmittedAttempt is the projection ranking and analytics read.
type SubmittedAttempt struct {
	ID               uint
	UserID           uint
	TestID           uint
	Score            float64
	TimeTakenSeconds int
	SubmittedAt      time.Time
}

type TestAttemptRepository interface {
	Create(ctx context.Context, attempt *model.TestAttempt) error
	FindByID(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error)
	// MarkSubmitted writes the submission aggregates. It returns an error
	// wrapping apperr.ErrConflict if the attempt was already submitted.
	MarkSubmitted(ctx context.Context, attempt *model.TestAttempt) error
	UpdateRanking(ctx context.Context, id uint, rank int, percentile float64) error
	FindSubmittedByTest(ctx context.Context, testID uint) ([]SubmittedAttempt, error)
	FindSubmittedByUserAndCategory(ctx context.Context, userID uint, category string) ([]SubmittedAttempt, error)
	SubmissionTimes(ctx context.Context, userID uint, kinds []string) ([]time.Time, error)
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(attempt).Error
}

func (r *testAttemptRepository) FindByID(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, notFound(err, "attempt %d", id)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_id ASC")
		}).
		Preload("Answers.Question").
		First(&attempt, id).Error
	if err != nil {
		return nil, notFound(err, "attempt %d", id)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Where("test_id = ?", testID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) MarkSubmitted(ctx context.Context, attempt *model.TestAttempt) error {
	p := attempt.Proctoring
	res := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ? AND submitted_at IS NULL", attempt.ID).
		Updates(map[string]interface{}{
			"status":                    model.AttemptStatusSubmitted,
			"score":                     attempt.Score,
			"correct_answers":           attempt.CorrectAnswers,
			"skipped_count":             attempt.SkippedCount,
			"marked_for_review_count":   attempt.MarkedForReviewCount,
			"time_taken_seconds":        attempt.TimeTakenSeconds,
			"submitted_at":              attempt.SubmittedAt,
			"tab_switch_count":          p.TabSwitchCount,
			"fullscreen_exit_count":     p.FullscreenExitCount,
			"camera_violation_count":    p.CameraViolationCount,
			"suspicious_activity_count": p.SuspiciousActivityCount,
			"violation_log":             p.ViolationLog,
			"warning_log":               p.WarningLog,
			"capability_flags":          p.CapabilityFlags,
			"browser_info":              p.BrowserInfo,
			"device_type":               p.DeviceType,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, attempt.ID); err != nil {
			return err
		}
		return fmt.Errorf("attempt %d already submitted: %w", attempt.ID, apperr.ErrConflict)
	}
	return nil
}

func (r *testAttemptRepository) UpdateRanking(ctx context.Context, id uint, rank int, percentile float64) error {
	return r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rank": rank, "percentile": percentile}).Error
}

func (r *testAttemptRepository) FindSubmittedByTest(ctx context.Context, testID uint) ([]SubmittedAttempt, error) {
	var rows []SubmittedAttempt
	err := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Select("id, user_id, test_id, score, time_taken_seconds, submitted_at").
		Where("test_id = ? AND submitted_at IS NOT NULL", testID).
		Scan(&rows).Error
	return rows, err
}

func (r *testAttemptRepository) FindSubmittedByUserAndCategory(ctx context.Context, userID uint, category string) ([]SubmittedAttempt, error) {
	var rows []SubmittedAttempt
	err := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Select("test_attempts.id, test_attempts.user_id, test_attempts.test_id, test_attempts.score, test_attempts.time_taken_seconds, test_attempts.submitted_at").
		Joins("JOIN tests ON tests.id = test_attempts.test_id").
		Where("test_attempts.user_id = ? AND tests.category = ? AND test_attempts.submitted_at IS NOT NULL", userID, category).
		Order("test_attempts.submitted_at ASC").
		Scan(&rows).Error
	return rows, err
}

// SubmissionTimes returns submitted_at of the user's attempts on tests of
// the given kinds.
func (r *testAttemptRepository) SubmissionTimes(ctx context.Context, userID uint, kinds []string) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Joins("JOIN tests ON tests.id = test_attempts.test_id").
		Where("test_attempts.user_id = ? AND test_attempts.submitted_at IS NOT NULL AND tests.kind IN ?", userID, kinds).
		Pluck("test_attempts.submitted_at", &times).Error
	return times, err
}
