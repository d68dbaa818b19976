package model

import (
	"time"

	"gorm.io/gorm"
)

// Test kinds. Only mock and company-specific submissions count toward the
// activity streak; adaptive practice attempts are tracked but excluded there.
const (
	TestKindMock             = "mock"
	TestKindCompanySpecific  = "company_specific"
	TestKindAdaptivePractice = "adaptive_practice"
)

type Test struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;uniqueIndex"`
	Description     string         `json:"description,omitempty"`
	Category        string         `json:"category" gorm:"not null;index"` // "quantitative", "logical", "verbal", ...
	Kind            string         `json:"kind" gorm:"not null;default:'mock'"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	NegativeMarking bool           `json:"negative_marking" gorm:"not null;default:false"`
	TotalMarks      float64        `json:"total_marks"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Test) DurationSeconds() int {
	return t.DurationMinutes * 60
}
