package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
)

type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithQuestionCount(ctx context.Context, category string) ([]TestWithQuestionCount, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// Create inserts the test together with test.Questions.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, notFound(err, "test %d", id)
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_test ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, notFound(err, "test %d", id)
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, category string) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	query := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count").
		Where("tests.deleted_at IS NULL")
	if category != "" {
		query = query.Where("tests.category = ?", category)
	}
	err := query.Order("tests.created_at DESC").Scan(&results).Error
	return results, err
}

// notFound translates gorm.ErrRecordNotFound into apperr.ErrNotFound and
// passes every other error through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), apperr.ErrNotFound)
	}
	return err
}
