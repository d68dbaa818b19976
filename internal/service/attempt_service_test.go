package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/session"
)

func TestAttemptService_CreateAttempt(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Quant 1", "quantitative", model.TestKindMock, true, "algebra", "geometry")

	id, err := f.attempts.CreateAttempt(t.Context(), session.NewAttempt{TestID: test.ID, UserID: 7})
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	var stored model.TestAttempt
	if err := f.db.First(&stored, id).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if stored.TotalQuestions != 2 || stored.Status != model.AttemptStatusInProgress || stored.SubmittedAt != nil {
		t.Fatalf("unexpected new attempt: %+v", stored)
	}

	_, err = f.attempts.CreateAttempt(t.Context(), session.NewAttempt{TestID: 999, UserID: 7})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing test, got %v", err)
	}
}

func TestAttemptService_SaveAnswer(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Quant 1", "quantitative", model.TestKindMock, true, "algebra", "geometry")
	other := f.createTest(t, "Verbal 1", "verbal", model.TestKindMock, false, "grammar")
	ctx := t.Context()

	id, err := f.attempts.CreateAttempt(ctx, session.NewAttempt{TestID: test.ID, UserID: 1})
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	q := test.Questions[0].ID
	rec := session.AnswerRecord{QuestionID: q, SelectedOption: strPtr("B"), TimeTakenSeconds: 12}
	for i := 0; i < 2; i++ {
		if err := f.attempts.SaveAnswer(ctx, id, rec); err != nil {
			t.Fatalf("SaveAnswer #%d: %v", i+1, err)
		}
	}

	var answers []model.Answer
	if err := f.db.Where("test_attempt_id = ?", id).Find(&answers).Error; err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected one stored record, got %d", len(answers))
	}
	if answers[0].SelectedOption == nil || *answers[0].SelectedOption != "B" || answers[0].IsCorrect != nil {
		t.Fatalf("unexpected stored answer: %+v", answers[0])
	}

	// Clearing the option marks the question skipped.
	if err := f.attempts.SaveAnswer(ctx, id, session.AnswerRecord{QuestionID: q, SelectedOption: strPtr("")}); err != nil {
		t.Fatalf("SaveAnswer clear: %v", err)
	}
	var cleared model.Answer
	if err := f.db.Where("test_attempt_id = ? AND question_id = ?", id, q).First(&cleared).Error; err != nil {
		t.Fatalf("load cleared: %v", err)
	}
	if cleared.SelectedOption != nil || !cleared.IsSkipped {
		t.Fatalf("expected a skipped answer, got %+v", cleared)
	}

	err = f.attempts.SaveAnswer(ctx, id, session.AnswerRecord{QuestionID: other.Questions[0].ID})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a foreign question, got %v", err)
	}
}

func TestAttemptService_SubmitScoresFromKey(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Quant 1", "quantitative", model.TestKindMock, true, "algebra", "geometry", "algebra", "percentages")
	ctx := t.Context()

	id, err := f.attempts.CreateAttempt(ctx, session.NewAttempt{TestID: test.ID, UserID: 3})
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	yes := true
	recs := []session.AnswerRecord{
		{QuestionID: test.Questions[0].ID, SelectedOption: strPtr("A")},
		// The client claims this one is correct; the key says otherwise.
		{QuestionID: test.Questions[1].ID, SelectedOption: strPtr("C"), IsCorrect: &yes, MarksObtained: 1},
		{QuestionID: test.Questions[2].ID, IsMarkedForReview: true},
	}
	if err := f.attempts.FinalizeAnswers(ctx, id, recs); err != nil {
		t.Fatalf("FinalizeAnswers: %v", err)
	}

	submittedAt := f.now.Add(-time.Minute)
	err = f.attempts.UpdateAttempt(ctx, id, session.AttemptUpdate{
		Score:            99,
		TimeTakenSeconds: 5000,
		SubmittedAt:      submittedAt,
		Proctoring: proctor.Summary{
			Counters:   proctor.Counters{TabSwitches: 2},
			Violations: []proctor.Violation{{Timestamp: submittedAt, Kind: proctor.KindTabSwitch, Severity: proctor.SeverityMedium}},
			DeviceType: proctor.DeviceLaptop,
		},
	})
	if err != nil {
		t.Fatalf("UpdateAttempt: %v", err)
	}

	var stored model.TestAttempt
	if err := f.db.First(&stored, id).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if stored.Score != 0.75 {
		t.Errorf("score = %v, want 0.75", stored.Score)
	}
	if stored.CorrectAnswers != 1 || stored.SkippedCount != 2 || stored.MarkedForReviewCount != 1 {
		t.Errorf("unexpected aggregates: %+v", stored)
	}
	if stored.TimeTakenSeconds != 600 {
		t.Errorf("time taken = %d, want it clamped to 600", stored.TimeTakenSeconds)
	}
	if stored.SubmittedAt == nil || !stored.SubmittedAt.Equal(submittedAt) {
		t.Errorf("submitted_at = %v, want %v", stored.SubmittedAt, submittedAt)
	}
	if stored.Proctoring.TabSwitchCount != 2 || stored.Proctoring.DeviceType != "laptop" {
		t.Errorf("unexpected proctoring columns: %+v", stored.Proctoring)
	}

	var wrong model.Answer
	if err := f.db.Where("test_attempt_id = ? AND question_id = ?", id, test.Questions[1].ID).First(&wrong).Error; err != nil {
		t.Fatalf("load answer: %v", err)
	}
	if wrong.IsCorrect == nil || *wrong.IsCorrect || wrong.MarksObtained != -0.25 {
		t.Errorf("incorrect answer stored as %+v", wrong)
	}

	if got := f.events.Types(); len(got) != 1 || got[0] != event.AttemptSubmitted {
		t.Errorf("published events = %v", got)
	}
}

func TestAttemptService_SubmitOnlyOnce(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Quant 1", "quantitative", model.TestKindMock, false, "algebra")
	ctx := t.Context()

	id := f.submit(t, test, 1, map[int]string{0: "A"}, 60, f.now)

	err := f.attempts.UpdateAttempt(ctx, id, session.AttemptUpdate{TimeTakenSeconds: 90, SubmittedAt: f.now.Add(time.Hour)})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second UpdateAttempt: expected ErrConflict, got %v", err)
	}
	err = f.attempts.SaveAnswer(ctx, id, session.AnswerRecord{QuestionID: test.Questions[0].ID, SelectedOption: strPtr("B")})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("SaveAnswer after submit: expected ErrConflict, got %v", err)
	}

	var stored model.TestAttempt
	if err := f.db.First(&stored, id).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if !stored.SubmittedAt.Equal(f.now) || stored.TimeTakenSeconds != 60 {
		t.Fatalf("first submission was overwritten: %+v", stored)
	}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"not found passes through", apperr.ErrNotFound, false},
		{"conflict passes through", apperr.ErrConflict, false},
		{"driver error is transient", errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transient("op", tt.err)
			if !errors.Is(err, tt.err) {
				t.Fatalf("lost the cause: %v", err)
			}
			if got := errors.Is(err, apperr.ErrTransientPersistence); got != tt.retryable {
				t.Fatalf("transient = %v, want %v", got, tt.retryable)
			}
		})
	}
}
