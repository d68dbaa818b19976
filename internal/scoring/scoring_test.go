package scoring

import (
	"math"
	"testing"
)

func strPtr(s string) *string { return &s }

func tenQuestions() []Question {
	qs := make([]Question, 10)
	for i := range qs {
		qs[i] = Question{ID: uint(i + 1), CorrectAnswer: "A", Marks: 1}
	}
	return qs
}

func TestScoreMixedWithNegativeMarking(t *testing.T) {
	answers := map[uint]Answer{}
	for id := uint(1); id <= 6; id++ {
		answers[id] = Answer{SelectedOption: strPtr("A")}
	}
	answers[7] = Answer{SelectedOption: strPtr("B"), MarkedForReview: true}
	answers[8] = Answer{SelectedOption: strPtr("C")}
	answers[9] = Answer{MarkedForReview: true}

	got := Score(tenQuestions(), answers, true)

	if got.Score != 5.5 {
		t.Fatalf("Score = %v, want 5.5", got.Score)
	}
	if got.CorrectAnswers != 6 || got.IncorrectAnswers != 2 || got.SkippedCount != 2 {
		t.Fatalf("counts = %d/%d/%d, want 6/2/2", got.CorrectAnswers, got.IncorrectAnswers, got.SkippedCount)
	}
	if got.MarkedForReviewCount != 2 {
		t.Fatalf("MarkedForReviewCount = %d, want 2", got.MarkedForReviewCount)
	}
}

func TestScoreIncorrectMarks(t *testing.T) {
	questions := []Question{{ID: 1, CorrectAnswer: "B", Marks: 4}}
	answers := map[uint]Answer{1: {SelectedOption: strPtr("D")}}

	tests := []struct {
		name     string
		negative bool
		want     float64
	}{
		{name: "negative marking", negative: true, want: -1},
		{name: "no negative marking", negative: false, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(questions, answers, tc.negative)
			if got.Questions[0].Outcome != OutcomeIncorrect {
				t.Fatalf("Outcome = %s, want incorrect", got.Questions[0].Outcome)
			}
			if got.Questions[0].MarksObtained != tc.want {
				t.Fatalf("MarksObtained = %v, want %v", got.Questions[0].MarksObtained, tc.want)
			}
			if c := got.Questions[0].IsCorrect(); c == nil || *c {
				t.Fatalf("IsCorrect = %v, want false", c)
			}
		})
	}
}

func TestScoreEmptySelectionIsSkipped(t *testing.T) {
	questions := []Question{{ID: 1, CorrectAnswer: "A", Marks: 1}}
	got := Score(questions, map[uint]Answer{1: {SelectedOption: strPtr("")}}, true)

	if got.SkippedCount != 1 || got.Score != 0 {
		t.Fatalf("got skipped=%d score=%v, want 1 and 0", got.SkippedCount, got.Score)
	}
	if got.Questions[0].IsCorrect() != nil {
		t.Fatalf("IsCorrect should be nil for skipped question")
	}
}

func TestScoreInvariants(t *testing.T) {
	questions := []Question{
		{ID: 11, CorrectAnswer: "A", Marks: 2},
		{ID: 12, CorrectAnswer: "B", Marks: 1.5},
		{ID: 13, CorrectAnswer: "C", Marks: 3},
		{ID: 14, CorrectAnswer: "D", Marks: 1},
		{ID: 15, CorrectAnswer: "A", Marks: 2},
	}
	answers := map[uint]Answer{
		11: {SelectedOption: strPtr("A")},
		12: {SelectedOption: strPtr("C")},
		13: {SelectedOption: strPtr("C"), MarkedForReview: true},
		99: {SelectedOption: strPtr("A")}, // not on the paper
	}

	for _, negative := range []bool{true, false} {
		got := Score(questions, answers, negative)

		sum := 0.0
		for _, qr := range got.Questions {
			sum += qr.MarksObtained
		}
		if math.Abs(sum-got.Score) > 1e-9 {
			t.Fatalf("negative=%v: Score %v != sum of marks %v", negative, got.Score, sum)
		}
		if got.SkippedCount+got.CorrectAnswers+got.IncorrectAnswers != got.TotalQuestions() {
			t.Fatalf("negative=%v: outcome counts do not partition %d questions", negative, got.TotalQuestions())
		}
		if got.TotalQuestions() != len(questions) {
			t.Fatalf("TotalQuestions = %d, want %d", got.TotalQuestions(), len(questions))
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := map[uint]Answer{1: {SelectedOption: strPtr("A")}, 2: {SelectedOption: strPtr("B")}}
	first := Score(tenQuestions(), answers, true)
	second := Score(tenQuestions(), answers, true)

	if first.Score != second.Score || first.CorrectAnswers != second.CorrectAnswers {
		t.Fatalf("re-running Score changed the result: %+v vs %+v", first, second)
	}
	for i := range first.Questions {
		if first.Questions[i] != second.Questions[i] {
			t.Fatalf("question %d differs between runs", i)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total float64
		want         float64
	}{
		{5.5, 10, 55},
		{2.25, 3, 75},
		{7, 20, 35},
		{0.75, 4, 18.75},
		{-0.5, 2, -25},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%v, %v) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}
