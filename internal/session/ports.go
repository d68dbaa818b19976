package session

import (
	"context"
	"time"

	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/lshigami/aptiprep/internal/scoring"
)

// Fullscreen is the platform fullscreen capability. Request returns an error
// wrapping apperr.ErrPermission when the platform refuses.
type Fullscreen interface {
	Request(ctx context.Context) error
	Exit() error
}

// AnswerRecord is one question's answer state as sent to the gateway.
// IsCorrect and MarksObtained are only meaningful in FinalizeAnswers.
type AnswerRecord struct {
	QuestionID        uint    `json:"question_id"`
	SelectedOption    *string `json:"selected_option"`
	IsMarkedForReview bool    `json:"is_marked_for_review"`
	IsSkipped         bool    `json:"is_skipped"`
	IsCorrect         *bool   `json:"is_correct,omitempty"`
	MarksObtained     float64 `json:"marks_obtained"`
	TimeTakenSeconds  int     `json:"time_taken_seconds"`
}

// AnswerGateway persists answers keyed by (attempt, question).
type AnswerGateway interface {
	SaveAnswer(ctx context.Context, attemptID uint, rec AnswerRecord) error
	FinalizeAnswers(ctx context.Context, attemptID uint, recs []AnswerRecord) error
}

type NewAttempt struct {
	TestID         uint `json:"test_id"`
	UserID         uint `json:"user_id"`
	TotalQuestions int  `json:"total_questions"`
}

type AttemptUpdate struct {
	Score                float64         `json:"score"`
	CorrectAnswers       int             `json:"correct_answers"`
	SkippedCount         int             `json:"skipped_count"`
	MarkedForReviewCount int             `json:"marked_for_review_count"`
	TimeTakenSeconds     int             `json:"time_taken_seconds"`
	SubmittedAt          time.Time       `json:"submitted_at"`
	Proctoring           proctor.Summary `json:"proctoring"`
}

// AttemptStore owns one attempt's aggregate state. UpdateAttempt returns an
// error wrapping apperr.ErrConflict when the attempt was already submitted.
type AttemptStore interface {
	CreateAttempt(ctx context.Context, a NewAttempt) (uint, error)
	UpdateAttempt(ctx context.Context, attemptID uint, u AttemptUpdate) error
}

type Ranker interface {
	Rank(ctx context.Context, req ranking.Request) (*ranking.Result, error)
}

type AnalyticsRefresher interface {
	RefreshAnalytics(ctx context.Context, userID, testID uint) error
}

// Paper is the test as the controller needs it: timing, marking policy and
// the ordered questions with their keys.
type Paper struct {
	TestID          uint
	DurationSeconds int
	NegativeMarking bool
	Questions       []scoring.Question
}
