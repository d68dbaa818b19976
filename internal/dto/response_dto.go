package dto

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type CreateAttemptResponse struct {
	AttemptID uint `json:"attempt_id"`
}

type RankingResponse struct {
	Rank          int     `json:"rank"`
	Percentile    float64 `json:"percentile"`
	TotalAttempts int     `json:"total_attempts"`
}

type LeaderboardEntryDTO struct {
	Rank             int       `json:"rank"`
	UserID           uint      `json:"user_id"`
	AttemptID        uint      `json:"attempt_id"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	Percentile       float64   `json:"percentile"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type LeaderboardResponse struct {
	TestID  uint                  `json:"test_id"`
	Period  string                `json:"period"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}

type UserAnalyticsDTO struct {
	Category          string          `json:"category"`
	AvgScore          float64         `json:"avg_score"`
	TotalTimeSpent    int             `json:"total_time_spent"`
	WeakAreas         json.RawMessage `json:"weak_areas" swaggertype:"object"`
	Strengths         json.RawMessage `json:"strengths" swaggertype:"object"`
	CurrentStreakDays int             `json:"current_streak_days"`
	LongestStreakDays int             `json:"longest_streak_days"`
	ActiveDays        int             `json:"active_days"`
	LastActivityDate  *time.Time      `json:"last_activity_date,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	AttemptID uint   `json:"attempt_id"`
}
