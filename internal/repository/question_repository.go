package repository

import (
	"context"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByTestID(ctx context.Context, testID uint) ([]model.Question, error)
	BelongsToTest(ctx context.Context, questionID, testID uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("order_in_test ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) BelongsToTest(ctx context.Context, questionID, testID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ? AND test_id = ?", questionID, testID).
		Count(&count).Error
	return count > 0, err
}
