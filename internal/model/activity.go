package model

import "time"

// Activity sources that feed the daily streak alongside test submissions.
// They are written by other parts of the platform; the engine only reads them.

type PracticeSession struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Category    string     `json:"category"`
	CompletedAt *time.Time `json:"completed_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AssignmentCompletion struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	AssignmentID uint      `json:"assignment_id" gorm:"not null"`
	CompletedAt  time.Time `json:"completed_at" gorm:"not null;index"`
}

type CustomTestAttempt struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Score       float64    `json:"score"`
	CompletedAt *time.Time `json:"completed_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AllModels lists every table the engine migrates.
func AllModels() []interface{} {
	return []interface{}{
		&Test{},
		&Question{},
		&TestAttempt{},
		&Answer{},
		&LeaderboardEntry{},
		&UserAnalytics{},
		&UserProfile{},
		&PracticeSession{},
		&AssignmentCompletion{},
		&CustomTestAttempt{},
	}
}
