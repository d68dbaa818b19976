package service

import (
	"fmt"

	"github.com/lshigami/aptiprep/internal/scoring"
)

// ScoreConverterService turns raw marks into the percentage shown next to
// an attempt. Negative totals are possible under negative marking and are
// reported as negative percentages.
type ScoreConverterService interface {
	ToPercentage(score, totalMarks float64) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ToPercentage(score, totalMarks float64) (float64, error) {
	if totalMarks <= 0 {
		return 0, fmt.Errorf("total marks %.2f must be positive", totalMarks)
	}
	if score > totalMarks {
		return 0, fmt.Errorf("score %.2f exceeds total marks %.2f", score, totalMarks)
	}
	return scoring.Percentage(score, totalMarks), nil
}
