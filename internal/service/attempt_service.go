package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/lshigami/aptiprep/internal/scoring"
	"github.com/lshigami/aptiprep/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// AttemptService is the server side of the answer gateway and the attempt
// store. Correctness and score columns are always derived from the answer
// key, never taken from the caller.
type AttemptService interface {
	session.AnswerGateway
	session.AttemptStore
}

type attemptService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.TestAttemptRepository
	answerRepo   repository.AnswerRepository
	publisher    event.Publisher
	now          func() time.Time
}

func NewAttemptService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.TestAttemptRepository,
	answerRepo repository.AnswerRepository,
	publisher event.Publisher,
) AttemptService {
	return &attemptService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

// transient marks storage failures as retryable. Taxonomy errors the
// repositories already produced pass through untouched.
func transient(op string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrInvalidInput) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrTransientPersistence, err)
}

func (s *attemptService) CreateAttempt(ctx context.Context, a session.NewAttempt) (uint, error) {
	if _, err := s.testRepo.FindByID(ctx, a.TestID); err != nil {
		return 0, transient("create attempt", err)
	}
	total := a.TotalQuestions
	if total <= 0 {
		questions, err := s.questionRepo.FindByTestID(ctx, a.TestID)
		if err != nil {
			return 0, transient("count questions", err)
		}
		total = len(questions)
	}

	attempt := model.TestAttempt{
		TestID:         a.TestID,
		UserID:         a.UserID,
		Status:         model.AttemptStatusInProgress,
		TotalQuestions: total,
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Uint("testID", a.TestID).Uint("userID", a.UserID).Msg("CreateAttempt: failed to insert attempt")
		return 0, transient("create attempt", err)
	}
	log.Info().Uint("attemptID", attempt.ID).Uint("testID", a.TestID).Uint("userID", a.UserID).Msg("Attempt created")
	return attempt.ID, nil
}

// openAttempt loads an attempt that may still accept answers.
func (s *attemptService) openAttempt(ctx context.Context, attemptID uint) (*model.TestAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, transient("load attempt", err)
	}
	if attempt.IsSubmitted() {
		return nil, fmt.Errorf("attempt %d already submitted: %w", attemptID, apperr.ErrConflict)
	}
	return attempt, nil
}

func (s *attemptService) SaveAnswer(ctx context.Context, attemptID uint, rec session.AnswerRecord) error {
	attempt, err := s.openAttempt(ctx, attemptID)
	if err != nil {
		return err
	}
	ok, err := s.questionRepo.BelongsToTest(ctx, rec.QuestionID, attempt.TestID)
	if err != nil {
		return transient("check question", err)
	}
	if !ok {
		return fmt.Errorf("question %d is not part of test %d: %w", rec.QuestionID, attempt.TestID, apperr.ErrInvalidInput)
	}

	selected := normalizeOption(rec.SelectedOption)
	answer := model.Answer{
		TestAttemptID:     attemptID,
		QuestionID:        rec.QuestionID,
		SelectedOption:    selected,
		IsMarkedForReview: rec.IsMarkedForReview,
		IsSkipped:         selected == nil,
		TimeTakenSeconds:  rec.TimeTakenSeconds,
	}
	if err := s.answerRepo.Upsert(ctx, &answer); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Uint("questionID", rec.QuestionID).Msg("SaveAnswer: upsert failed")
		return transient("save answer", err)
	}
	return nil
}

func (s *attemptService) FinalizeAnswers(ctx context.Context, attemptID uint, recs []session.AnswerRecord) error {
	attempt, err := s.openAttempt(ctx, attemptID)
	if err != nil {
		return err
	}
	test, err := s.testRepo.FindByIDWithQuestions(ctx, attempt.TestID)
	if err != nil {
		return transient("load test", err)
	}

	known := make(map[uint]bool, len(test.Questions))
	for _, q := range test.Questions {
		known[q.ID] = true
	}
	byQuestion := make(map[uint]session.AnswerRecord, len(recs))
	answers := make(map[uint]scoring.Answer, len(recs))
	for _, rec := range recs {
		if !known[rec.QuestionID] {
			return fmt.Errorf("question %d is not part of test %d: %w", rec.QuestionID, test.ID, apperr.ErrInvalidInput)
		}
		rec.SelectedOption = normalizeOption(rec.SelectedOption)
		byQuestion[rec.QuestionID] = rec
		answers[rec.QuestionID] = scoring.Answer{SelectedOption: rec.SelectedOption, MarkedForReview: rec.IsMarkedForReview}
	}

	scored := scoring.Score(scoringQuestions(test.Questions), answers, test.NegativeMarking)
	rows := make([]model.Answer, 0, len(scored.Questions))
	for _, qr := range scored.Questions {
		rec := byQuestion[qr.QuestionID]
		rows = append(rows, model.Answer{
			TestAttemptID:     attemptID,
			QuestionID:        qr.QuestionID,
			SelectedOption:    rec.SelectedOption,
			IsMarkedForReview: rec.IsMarkedForReview,
			IsSkipped:         qr.Outcome == scoring.OutcomeSkipped,
			IsCorrect:         qr.IsCorrect(),
			MarksObtained:     qr.MarksObtained,
			TimeTakenSeconds:  rec.TimeTakenSeconds,
		})
	}
	if err := s.answerRepo.UpsertBatch(ctx, rows); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("FinalizeAnswers: batch upsert failed")
		return transient("finalize answers", err)
	}
	return nil
}

// UpdateAttempt records the submission. Score aggregates are recomputed from
// the stored answers; timing and proctoring come from the session.
func (s *attemptService) UpdateAttempt(ctx context.Context, attemptID uint, u session.AttemptUpdate) error {
	attempt, err := s.openAttempt(ctx, attemptID)
	if err != nil {
		return err
	}
	test, err := s.testRepo.FindByIDWithQuestions(ctx, attempt.TestID)
	if err != nil {
		return transient("load test", err)
	}
	stored, err := s.answerRepo.FindByAttempt(ctx, attemptID)
	if err != nil {
		return transient("load answers", err)
	}

	answers := make(map[uint]scoring.Answer, len(stored))
	for _, a := range stored {
		answers[a.QuestionID] = scoring.Answer{SelectedOption: a.SelectedOption, MarkedForReview: a.IsMarkedForReview}
	}
	scored := scoring.Score(scoringQuestions(test.Questions), answers, test.NegativeMarking)

	proctoring, err := proctoringColumns(u.Proctoring)
	if err != nil {
		return fmt.Errorf("encode proctoring summary: %w", err)
	}
	submittedAt := u.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = s.now()
	}
	submittedAt = submittedAt.UTC()
	timeTaken := u.TimeTakenSeconds
	if limit := test.DurationSeconds(); timeTaken > limit {
		timeTaken = limit
	}
	if timeTaken < 0 {
		timeTaken = 0
	}

	attempt.Status = model.AttemptStatusSubmitted
	attempt.Score = scored.Score
	attempt.CorrectAnswers = scored.CorrectAnswers
	attempt.SkippedCount = scored.SkippedCount
	attempt.MarkedForReviewCount = scored.MarkedForReviewCount
	attempt.TimeTakenSeconds = timeTaken
	attempt.SubmittedAt = &submittedAt
	attempt.Proctoring = proctoring

	if err := s.attemptRepo.MarkSubmitted(ctx, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("UpdateAttempt: failed to persist submission")
		return transient("submit attempt", err)
	}
	log.Info().Uint("attemptID", attemptID).Float64("score", scored.Score).Int("timeTaken", timeTaken).Msg("Attempt submitted")

	if err := s.publisher.Publish(ctx, event.AttemptSubmitted, event.AttemptSubmittedPayload{
		AttemptID:        attemptID,
		TestID:           attempt.TestID,
		UserID:           attempt.UserID,
		Score:            scored.Score,
		TimeTakenSeconds: timeTaken,
		SubmittedAt:      submittedAt,
	}); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("UpdateAttempt: failed to publish attempt.submitted")
	}
	return nil
}

func normalizeOption(opt *string) *string {
	if opt == nil || *opt == "" {
		return nil
	}
	v := *opt
	return &v
}

func scoringQuestions(questions []model.Question) []scoring.Question {
	out := make([]scoring.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, scoring.Question{ID: q.ID, CorrectAnswer: q.CorrectAnswer, Marks: q.Marks})
	}
	return out
}

func proctoringColumns(s proctor.Summary) (model.ProctoringSummary, error) {
	violations, err := json.Marshal(nonNil(s.Violations))
	if err != nil {
		return model.ProctoringSummary{}, err
	}
	warnings, err := json.Marshal(nonNil(s.Warnings))
	if err != nil {
		return model.ProctoringSummary{}, err
	}
	flags, err := json.Marshal(s.Flags)
	if err != nil {
		return model.ProctoringSummary{}, err
	}
	return model.ProctoringSummary{
		TabSwitchCount:          s.Counters.TabSwitches,
		FullscreenExitCount:     s.Counters.FullscreenExits,
		CameraViolationCount:    s.Counters.CameraViolations,
		SuspiciousActivityCount: s.Counters.SuspiciousActivity,
		ViolationLog:            datatypes.JSON(violations),
		WarningLog:              datatypes.JSON(warnings),
		CapabilityFlags:         datatypes.JSON(flags),
		BrowserInfo:             s.BrowserInfo,
		DeviceType:              string(s.DeviceType),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
