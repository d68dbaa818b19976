package dto

import (
	"time"

	"github.com/lshigami/aptiprep/internal/proctor"
)

// CreateAttemptRequest opens an attempt for an externally driven session.
type CreateAttemptRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// SaveAnswerRequest is the in-exam state of one question.
type SaveAnswerRequest struct {
	SelectedOption    *string `json:"selected_option"`
	IsMarkedForReview bool    `json:"is_marked_for_review"`
	TimeTakenSeconds  int     `json:"time_taken_seconds" binding:"gte=0"`
}

type FinalAnswerDTO struct {
	QuestionID        uint    `json:"question_id" binding:"required"`
	SelectedOption    *string `json:"selected_option"`
	IsMarkedForReview bool    `json:"is_marked_for_review"`
	TimeTakenSeconds  int     `json:"time_taken_seconds" binding:"gte=0"`
}

// FinalizeAnswersRequest carries every answer of the attempt. Correctness
// is computed by the server from the answer key.
type FinalizeAnswersRequest struct {
	Answers []FinalAnswerDTO `json:"answers" binding:"required,dive"`
}

// SubmitAttemptRequest persists the submission aggregates. Score columns
// are recomputed from the finalized answers.
type SubmitAttemptRequest struct {
	TimeTakenSeconds int             `json:"time_taken_seconds" binding:"gte=0"`
	SubmittedAt      *time.Time      `json:"submitted_at"`
	Proctoring       proctor.Summary `json:"proctoring"`
}

// StartSessionRequest opens a server-hosted session. Fullscreen and
// CameraGranted report what the browser obtained before calling.
type StartSessionRequest struct {
	TestID        uint   `json:"test_id" binding:"required"`
	UserID        uint   `json:"user_id" binding:"required"`
	DeviceType    string `json:"device_type"`
	BrowserInfo   string `json:"browser_info"`
	Fullscreen    bool   `json:"fullscreen"`
	CameraGranted bool   `json:"camera_granted"`
}

// SessionEventRequest is one capability signal from the browser.
type SessionEventRequest struct {
	Type   string `json:"type" binding:"required,oneof=fullscreen visibility input camera"`
	Active *bool  `json:"active"`
	Hidden *bool  `json:"hidden"`
	Input  string `json:"input"`
	Live   *bool  `json:"live"`
}

type SelectOptionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Option     string `json:"option"`
}

type MarkForReviewRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
}

type NavigateRequest struct {
	Index *int `json:"index" binding:"required,gte=0"`
}

// RankAttemptRequest mirrors ranking.Request for the HTTP surface.
type RankAttemptRequest struct {
	AttemptID uint `json:"attempt_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
	TestID    uint `json:"test_id" binding:"required"`
}

type RefreshAnalyticsRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	TestID uint `json:"test_id" binding:"required"`
}

type LeaderboardQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=all weekly monthly"`
	Limit  int    `form:"limit" binding:"gte=0,lte=500"`
}
