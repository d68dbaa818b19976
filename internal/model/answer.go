package model

import (
	"time"
)

// Answer is unique per (test_attempt_id, question_id); saving again overwrites.
type Answer struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	TestAttemptID     uint      `json:"test_attempt_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	QuestionID        uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	Question          Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOption    *string   `json:"selected_option"`
	IsMarkedForReview bool      `json:"is_marked_for_review" gorm:"not null;default:false"`
	IsSkipped         bool      `json:"is_skipped" gorm:"not null;default:false"`
	IsCorrect         *bool     `json:"is_correct"`
	MarksObtained     float64   `json:"marks_obtained"`
	TimeTakenSeconds  int       `json:"time_taken_seconds"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
