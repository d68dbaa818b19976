package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Topic         string         `json:"topic" gorm:"not null;index"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options" gorm:"type:jsonb"` // ["A) 12", "B) 16", ...]
	CorrectAnswer string         `json:"-" gorm:"not null"`
	Marks         float64        `json:"marks" gorm:"not null;default:1"`
	OrderInTest   int            `json:"order_in_test" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
