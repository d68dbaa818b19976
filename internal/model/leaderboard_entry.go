package model

import "time"

type LeaderboardEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_leaderboard_key"`
	TestID     uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_leaderboard_key;index"`
	PeriodType string    `json:"period_type" gorm:"not null;size:16;uniqueIndex:idx_leaderboard_key"` // all, weekly, monthly
	AttemptID  uint      `json:"attempt_id"`
	Rank       int       `json:"rank"`
	Score      float64   `json:"score"`
	TimeTaken  int       `json:"time_taken"`
	Percentile float64   `json:"percentile"`
	UpdatedAt  time.Time `json:"updated_at"`
}
