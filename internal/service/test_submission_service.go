package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestSubmissionService is the read side of attempts: history and detail.
type TestSubmissionService interface {
	GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error)
	GetUserAttemptsForTest(ctx context.Context, testID uint, userID *uint) ([]dto.TestAttemptSummaryDTO, error)
}

type testSubmissionService struct {
	testRepo        repository.TestRepository
	testAttemptRepo repository.TestAttemptRepository
	scoreConverter  ScoreConverterService
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	testAttemptRepo repository.TestAttemptRepository,
	scoreConverter ScoreConverterService,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:        testRepo,
		testAttemptRepo: testAttemptRepo,
		scoreConverter:  scoreConverter,
	}
}

func (s *testSubmissionService) GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetTestAttemptDetails: failed to find test attempt")
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}

	sort.SliceStable(attempt.Answers, func(i, j int) bool {
		return attempt.Answers[i].Question.OrderInTest < attempt.Answers[j].Question.OrderInTest
	})

	var resp dto.TestAttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("GetTestAttemptDetails: failed to copy attempt model to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.TestTitle = attempt.Test.Title
	resp.Proctoring = proctoringDTO(attempt.Proctoring)
	if attempt.IsSubmitted() {
		resp.Percentage = s.percentage(attempt.ID, attempt.Score, attempt.Test.TotalMarks)
	}

	resp.Answers = make([]dto.AnswerResponseDTO, len(attempt.Answers))
	for i, ansModel := range attempt.Answers {
		var ansDTO dto.AnswerResponseDTO
		if err := copier.Copy(&ansDTO, &ansModel); err != nil {
			log.Warn().Err(err).Uint("answerID", ansModel.ID).Msg("GetTestAttemptDetails: failed to copy answer")
		}
		var qDTO dto.QuestionResponseDTO
		if err := copier.Copy(&qDTO, &ansModel.Question); err != nil {
			log.Warn().Err(err).Uint("questionID", ansModel.QuestionID).Msg("GetTestAttemptDetails: failed to copy question")
		}
		ansDTO.Question = qDTO
		resp.Answers[i] = ansDTO
	}
	return &resp, nil
}

func (s *testSubmissionService) GetUserAttemptsForTest(ctx context.Context, testID uint, userID *uint) ([]dto.TestAttemptSummaryDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("load test %d: %w", testID, err)
	}
	attempts, err := s.testAttemptRepo.FindAllByTestAndUser(ctx, testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Interface("userID", userID).Msg("GetUserAttemptsForTest: failed to find attempts")
		return nil, fmt.Errorf("error fetching attempts for test %d: %w", testID, err)
	}

	dtos := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.TestAttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempt); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempt.ID).Msg("GetUserAttemptsForTest: error copying attempt to summary DTO")
			continue
		}
		if attempt.IsSubmitted() {
			summary.Percentage = s.percentage(attempt.ID, attempt.Score, test.TotalMarks)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *testSubmissionService) percentage(attemptID uint, score, totalMarks float64) *float64 {
	pct, err := s.scoreConverter.ToPercentage(score, totalMarks)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("Failed to convert score to percentage")
		return nil
	}
	return &pct
}

func proctoringDTO(p model.ProctoringSummary) dto.ProctoringDTO {
	return dto.ProctoringDTO{
		TabSwitchCount:          p.TabSwitchCount,
		FullscreenExitCount:     p.FullscreenExitCount,
		CameraViolationCount:    p.CameraViolationCount,
		SuspiciousActivityCount: p.SuspiciousActivityCount,
		ViolationLog:            json.RawMessage(p.ViolationLog),
		WarningLog:              json.RawMessage(p.WarningLog),
		CapabilityFlags:         json.RawMessage(p.CapabilityFlags),
		BrowserInfo:             p.BrowserInfo,
		DeviceType:              p.DeviceType,
	}
}
