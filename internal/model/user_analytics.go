package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserAnalytics struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	UserID            uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_analytics_key"`
	Category          string         `json:"category" gorm:"not null;uniqueIndex:idx_user_analytics_key"`
	AvgScore          float64        `json:"avg_score"`
	TotalTimeSpent    int            `json:"total_time_spent"`
	WeakAreas         datatypes.JSON `json:"weak_areas" gorm:"type:jsonb"` // topic -> accuracy %
	Strengths         datatypes.JSON `json:"strengths" gorm:"type:jsonb"`
	CurrentStreakDays int            `json:"current_streak_days"`
	LongestStreakDays int            `json:"longest_streak_days"`
	ActiveDays        int            `json:"active_days"`
	LastActivityDate  *time.Time     `json:"last_activity_date,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// UserProfile carries the only profile field the engine reads.
type UserProfile struct {
	UserID   uint   `gorm:"primarykey" json:"user_id"`
	Timezone string `json:"timezone"`
}
