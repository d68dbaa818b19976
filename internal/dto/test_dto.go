package dto

import (
	"encoding/json"
	"time"
)

// QuestionResponseDTO is used for displaying question details to users.
// The answer key is never part of it.
type QuestionResponseDTO struct {
	ID          uint            `json:"id"`
	TestID      uint            `json:"test_id"`
	Topic       string          `json:"topic"`
	Prompt      string          `json:"prompt"`
	Options     json.RawMessage `json:"options" swaggertype:"array,string"`
	Marks       float64         `json:"marks"`
	OrderInTest int             `json:"order_in_test"`
}

// TestResponseDTO is used for displaying full test details to users.
type TestResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	Category        string                `json:"category"`
	Kind            string                `json:"kind"`
	DurationMinutes int                   `json:"duration_minutes"`
	NegativeMarking bool                  `json:"negative_marking"`
	TotalMarks      float64               `json:"total_marks"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	Kind            string    `json:"kind"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// AnswerResponseDTO is one answer inside an attempt detail view.
type AnswerResponseDTO struct {
	ID                uint                `json:"id"`
	QuestionID        uint                `json:"question_id"`
	Question          QuestionResponseDTO `json:"question,omitempty"`
	SelectedOption    *string             `json:"selected_option"`
	IsMarkedForReview bool                `json:"is_marked_for_review"`
	IsSkipped         bool                `json:"is_skipped"`
	IsCorrect         *bool               `json:"is_correct,omitempty"`
	MarksObtained     float64             `json:"marks_obtained"`
	TimeTakenSeconds  int                 `json:"time_taken_seconds"`
}

type ProctoringDTO struct {
	TabSwitchCount          int             `json:"tab_switch_count"`
	FullscreenExitCount     int             `json:"fullscreen_exit_count"`
	CameraViolationCount    int             `json:"camera_violation_count"`
	SuspiciousActivityCount int             `json:"suspicious_activity_count"`
	ViolationLog            json.RawMessage `json:"violation_log,omitempty" swaggertype:"object"`
	WarningLog              json.RawMessage `json:"warning_log,omitempty" swaggertype:"object"`
	CapabilityFlags         json.RawMessage `json:"capability_flags,omitempty" swaggertype:"object"`
	BrowserInfo             string          `json:"browser_info,omitempty"`
	DeviceType              string          `json:"device_type,omitempty"`
}

// TestAttemptDetailDTO is for displaying the full details of a specific test attempt.
type TestAttemptDetailDTO struct {
	ID                   uint                `json:"id"`
	TestID               uint                `json:"test_id"`
	TestTitle            string              `json:"test_title,omitempty"`
	UserID               uint                `json:"user_id"`
	Status               string              `json:"status"`
	TotalQuestions       int                 `json:"total_questions"`
	Score                float64             `json:"score"`
	Percentage           *float64            `json:"percentage,omitempty"`
	CorrectAnswers       int                 `json:"correct_answers"`
	SkippedCount         int                 `json:"skipped_count"`
	MarkedForReviewCount int                 `json:"marked_for_review_count"`
	TimeTakenSeconds     int                 `json:"time_taken_seconds"`
	SubmittedAt          *time.Time          `json:"submitted_at,omitempty"`
	Rank                 *int                `json:"rank,omitempty"`
	Percentile           *float64            `json:"percentile,omitempty"`
	Proctoring           ProctoringDTO       `json:"proctoring"`
	Answers              []AnswerResponseDTO `json:"answers,omitempty"`
}

// TestAttemptSummaryDTO is for listing a user's attempts for a particular test.
type TestAttemptSummaryDTO struct {
	ID               uint       `json:"id"`
	TestID           uint       `json:"test_id"`
	UserID           uint       `json:"user_id"`
	Status           string     `json:"status"`
	Score            float64    `json:"score"`
	Percentage       *float64   `json:"percentage,omitempty"`
	TimeTakenSeconds int        `json:"time_taken_seconds"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty"`
	Rank             *int       `json:"rank,omitempty"`
	Percentile       *float64   `json:"percentile,omitempty"`
}
