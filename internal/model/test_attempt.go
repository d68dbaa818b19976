package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
)

// ProctoringSummary is written once, at submission.
type ProctoringSummary struct {
	TabSwitchCount          int            `json:"tab_switch_count" gorm:"not null;default:0"`
	FullscreenExitCount     int            `json:"fullscreen_exit_count" gorm:"not null;default:0"`
	CameraViolationCount    int            `json:"camera_violation_count" gorm:"not null;default:0"`
	SuspiciousActivityCount int            `json:"suspicious_activity_count" gorm:"not null;default:0"`
	ViolationLog            datatypes.JSON `json:"violation_log,omitempty" gorm:"type:jsonb"`
	WarningLog              datatypes.JSON `json:"warning_log,omitempty" gorm:"type:jsonb"`
	CapabilityFlags         datatypes.JSON `json:"capability_flags,omitempty" gorm:"type:jsonb"`
	BrowserInfo             string         `json:"browser_info,omitempty"`
	DeviceType              string         `json:"device_type,omitempty"`
}

type TestAttempt struct {
	ID                   uint              `gorm:"primarykey" json:"id"`
	TestID               uint              `json:"test_id" gorm:"not null;index"`
	Test                 Test              `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserID               uint              `json:"user_id" gorm:"not null;index"`
	Status               string            `json:"status" gorm:"not null;default:'in_progress';index"`
	TotalQuestions       int               `json:"total_questions" gorm:"not null"`
	Score                float64           `json:"score"`
	CorrectAnswers       int               `json:"correct_answers"`
	SkippedCount         int               `json:"skipped_count"`
	MarkedForReviewCount int               `json:"marked_for_review_count"`
	TimeTakenSeconds     int               `json:"time_taken_seconds"`
	SubmittedAt          *time.Time        `json:"submitted_at,omitempty" gorm:"index"`
	Rank                 *int              `json:"rank,omitempty"`
	Percentile           *float64          `json:"percentile,omitempty"`
	Proctoring           ProctoringSummary `json:"proctoring" gorm:"embedded"`
	Answers              []Answer          `json:"answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (a *TestAttempt) IsSubmitted() bool {
	return a.SubmittedAt != nil
}
