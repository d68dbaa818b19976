package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("%w: a test needs at least one question", apperr.ErrInvalidInput)
	}

	orderMap := make(map[int]bool, len(req.Questions))
	questions := make([]model.Question, 0, len(req.Questions))
	totalMarks := 0.0

	for _, qDto := range req.Questions {
		if orderMap[qDto.OrderInTest] {
			return nil, fmt.Errorf("%w: duplicate order_in_test %d", apperr.ErrInvalidInput, qDto.OrderInTest)
		}
		orderMap[qDto.OrderInTest] = true

		if !slices.Contains(qDto.Options, qDto.CorrectAnswer) {
			return nil, fmt.Errorf("%w: correct answer of question %d is not one of its options", apperr.ErrInvalidInput, qDto.OrderInTest)
		}
		options, err := json.Marshal(qDto.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options of question %d: %w", qDto.OrderInTest, err)
		}

		questions = append(questions, model.Question{
			Topic:         qDto.Topic,
			Prompt:        qDto.Prompt,
			Options:       datatypes.JSON(options),
			CorrectAnswer: qDto.CorrectAnswer,
			Marks:         qDto.Marks,
			OrderInTest:   qDto.OrderInTest,
		})
		totalMarks += qDto.Marks
	}

	testModel := model.Test{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Kind:            req.Kind,
		DurationMinutes: req.DurationMinutes,
		NegativeMarking: req.NegativeMarking,
		TotalMarks:      totalMarks,
		Questions:       questions,
	}

	if err := s.testRepo.Create(ctx, &testModel); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(ctx, testModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testModel.ID).Msg("CreateTest: failed to reload created test")
		var fallbackResp dto.TestResponseDTO
		_ = copier.Copy(&fallbackResp, &testModel)
		return &fallbackResp, nil
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		log.Error().Err(err).Msg("CreateTest: failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
