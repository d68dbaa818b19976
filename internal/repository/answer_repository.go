package repository

import (
	"context"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TopicStat is per-topic correctness over answered (non-skipped) questions.
type TopicStat struct {
	Topic   string
	Total   int
	Correct int
}

type AnswerRepository interface {
	// Upsert saves the in-exam state of one answer, keyed by
	// (test_attempt_id, question_id). Correctness columns are left alone.
	Upsert(ctx context.Context, answer *model.Answer) error
	// UpsertBatch writes the final state of every answer, correctness included.
	UpsertBatch(ctx context.Context, answers []model.Answer) error
	FindByAttempt(ctx context.Context, attemptID uint) ([]model.Answer, error)
	TopicAccuracy(ctx context.Context, userID uint, category string) ([]TopicStat, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

var answerConflictColumns = []clause.Column{{Name: "test_attempt_id"}, {Name: "question_id"}}

func (r *answerRepository) Upsert(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: answerConflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{
			"selected_option", "is_marked_for_review", "is_skipped", "time_taken_seconds", "updated_at",
		}),
	}).Create(answer).Error
}

func (r *answerRepository) UpsertBatch(ctx context.Context, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: answerConflictColumns,
			DoUpdates: clause.AssignmentColumns([]string{
				"selected_option", "is_marked_for_review", "is_skipped", "is_correct",
				"marks_obtained", "time_taken_seconds", "updated_at",
			}),
		}).Create(&answers).Error
	})
}

func (r *answerRepository) FindByAttempt(ctx context.Context, attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).Where("test_attempt_id = ?", attemptID).Order("question_id ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) TopicAccuracy(ctx context.Context, userID uint, category string) ([]TopicStat, error) {
	var stats []TopicStat
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("questions.topic AS topic, COUNT(*) AS total, SUM(CASE WHEN answers.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("JOIN test_attempts ON test_attempts.id = answers.test_attempt_id").
		Joins("JOIN tests ON tests.id = test_attempts.test_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("test_attempts.user_id = ? AND tests.category = ? AND test_attempts.submitted_at IS NOT NULL AND answers.is_correct IS NOT NULL", userID, category).
		Group("questions.topic").
		Order("questions.topic ASC").
		Scan(&stats).Error
	return stats, err
}
