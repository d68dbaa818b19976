package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/lshigami/aptiprep/internal/scoring"
	"github.com/lshigami/aptiprep/internal/session"
	"github.com/rs/zerolog/log"
)

// CatalogService is the read side of tests and questions.
type CatalogService interface {
	ListTests(ctx context.Context, category string) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID uint) (*dto.TestResponseDTO, error)
	// LoadPaper returns the test with its answer key, for scoring.
	LoadPaper(ctx context.Context, testID uint) (*session.Paper, error)
}

type catalogService struct {
	testRepo repository.TestRepository
}

func NewCatalogService(testRepo repository.TestRepository) CatalogService {
	return &catalogService{testRepo: testRepo}
}

func (s *catalogService) ListTests(ctx context.Context, category string) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount(ctx, category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("ListTests: failed to load tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:              twc.Test.ID,
			Title:           twc.Test.Title,
			Description:     twc.Test.Description,
			Category:        twc.Test.Category,
			Kind:            twc.Test.Kind,
			DurationMinutes: twc.Test.DurationMinutes,
			QuestionCount:   twc.QuestionCount,
			CreatedAt:       twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *catalogService) GetTestDetails(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestDetails: failed to load test")
		return nil, fmt.Errorf("load test %d: %w", testID, err)
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("GetTestDetails: failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) LoadPaper(ctx context.Context, testID uint) (*session.Paper, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("load test %d: %w", testID, err)
	}
	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("test %d has no questions: %w", testID, apperr.ErrInvalidInput)
	}

	paper := &session.Paper{
		TestID:          test.ID,
		DurationSeconds: test.DurationSeconds(),
		NegativeMarking: test.NegativeMarking,
		Questions:       make([]scoring.Question, 0, len(test.Questions)),
	}
	for _, q := range test.Questions {
		paper.Questions = append(paper.Questions, scoring.Question{
			ID:            q.ID,
			CorrectAnswer: q.CorrectAnswer,
			Marks:         q.Marks,
		})
	}
	return paper, nil
}
