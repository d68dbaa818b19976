// Package scoring turns stored answers and question keys into per-question
// and aggregate marks. Everything here is pure.
package scoring

// NegativeMarkingRatio is the fraction of a question's marks deducted for an
// incorrect answer when the test uses negative marking.
const NegativeMarkingRatio = 0.25

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

type Question struct {
	ID            uint
	CorrectAnswer string
	Marks         float64
}

type Answer struct {
	SelectedOption  *string
	MarkedForReview bool
}

func (a Answer) Selected() bool {
	return a.SelectedOption != nil && *a.SelectedOption != ""
}

type QuestionResult struct {
	QuestionID      uint
	Outcome         Outcome
	MarksObtained   float64
	MarkedForReview bool
}

// IsCorrect is nil for skipped questions.
func (r QuestionResult) IsCorrect() *bool {
	if r.Outcome == OutcomeSkipped {
		return nil
	}
	correct := r.Outcome == OutcomeCorrect
	return &correct
}

type Result struct {
	Questions            []QuestionResult
	Score                float64
	CorrectAnswers       int
	IncorrectAnswers     int
	SkippedCount         int
	MarkedForReviewCount int
}

func (r Result) TotalQuestions() int {
	return len(r.Questions)
}

// Score grades answers keyed by question ID. Questions without an entry in
// answers are skipped. Results keep the order of questions.
func Score(questions []Question, answers map[uint]Answer, negativeMarking bool) Result {
	res := Result{Questions: make([]QuestionResult, 0, len(questions))}

	for _, q := range questions {
		ans := answers[q.ID]
		qr := QuestionResult{QuestionID: q.ID, MarkedForReview: ans.MarkedForReview}

		switch {
		case !ans.Selected():
			qr.Outcome = OutcomeSkipped
			res.SkippedCount++
		case *ans.SelectedOption == q.CorrectAnswer:
			qr.Outcome = OutcomeCorrect
			qr.MarksObtained = q.Marks
			res.CorrectAnswers++
		default:
			qr.Outcome = OutcomeIncorrect
			if negativeMarking {
				qr.MarksObtained = -(q.Marks * NegativeMarkingRatio)
			}
			res.IncorrectAnswers++
		}

		if ans.MarkedForReview {
			res.MarkedForReviewCount++
		}
		res.Score += qr.MarksObtained
		res.Questions = append(res.Questions, qr)
	}

	return res
}

// Percentage maps a raw score onto 0-100 of the test's total marks.
func Percentage(score, totalMarks float64) float64 {
	if totalMarks <= 0 {
		return 0
	}
	return score * 100 / totalMarks
}
