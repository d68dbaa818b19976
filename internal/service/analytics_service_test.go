package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
)

func TestAnalyticsService_RefreshAnalytics(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		current  int
		longest  int
		active   int
		lastDay  string
	}{
		// 2024-03-12 20:00 UTC is already the 13th in Kolkata.
		{"user timezone", "Asia/Kolkata", 3, 3, 4, "2024-03-13"},
		{"no profile timezone", "", 2, 2, 3, "2024-03-12"},
		{"unknown timezone falls back to UTC", "Mars/Olympus", 2, 2, 3, "2024-03-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := t.Context()
			const user = 1

			mock := f.createTest(t, "Quant mock", "quantitative", model.TestKindMock, false, "algebra", "algebra", "geometry", "geometry", "percentages")
			adaptive := f.createTest(t, "Quant adaptive", "quantitative", model.TestKindAdaptivePractice, false, "algebra")

			f.submit(t, mock, user, map[int]string{0: "A", 1: "A", 2: "B", 3: "A"}, 120, time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC))
			// Adaptive practice would bridge the gap on the 10th if it counted.
			f.submit(t, adaptive, user, map[int]string{0: "A"}, 60, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

			practice := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
			custom := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
			seed := []interface{}{
				&model.PracticeSession{UserID: user, Category: "quantitative", CompletedAt: &practice},
				&model.AssignmentCompletion{UserID: user, AssignmentID: 1, CompletedAt: time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC)},
				&model.CustomTestAttempt{UserID: user, Score: 4, CompletedAt: &custom},
				&model.PracticeSession{UserID: user + 1, CompletedAt: &f.now},
			}
			if tt.timezone != "" {
				seed = append(seed, &model.UserProfile{UserID: user, Timezone: tt.timezone})
			}
			for _, row := range seed {
				if err := f.db.Create(row).Error; err != nil {
					t.Fatalf("seed %T: %v", row, err)
				}
			}

			for i := 0; i < 2; i++ {
				if err := f.analytics.RefreshAnalytics(ctx, user, mock.ID); err != nil {
					t.Fatalf("RefreshAnalytics #%d: %v", i+1, err)
				}
			}

			var rows []model.UserAnalytics
			if err := f.db.Where("user_id = ?", user).Find(&rows).Error; err != nil {
				t.Fatalf("load analytics: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("expected one row per (user, category), got %d", len(rows))
			}
			got := rows[0]
			if got.Category != "quantitative" {
				t.Errorf("category = %q", got.Category)
			}
			if got.CurrentStreakDays != tt.current || got.LongestStreakDays != tt.longest {
				t.Errorf("streak = %d/%d, want %d/%d", got.CurrentStreakDays, got.LongestStreakDays, tt.current, tt.longest)
			}
			if got.ActiveDays != tt.active {
				t.Errorf("active days = %d, want %d", got.ActiveDays, tt.active)
			}
			if got.LastActivityDate == nil || got.LastActivityDate.Format("2006-01-02") != tt.lastDay {
				t.Errorf("last activity = %v, want %s", got.LastActivityDate, tt.lastDay)
			}
			if got.AvgScore != 2 || got.TotalTimeSpent != 180 {
				t.Errorf("avg score %v total time %d, want 2 and 180", got.AvgScore, got.TotalTimeSpent)
			}

			var weak, strong map[string]float64
			if err := json.Unmarshal(got.WeakAreas, &weak); err != nil {
				t.Fatalf("weak areas: %v", err)
			}
			if err := json.Unmarshal(got.Strengths, &strong); err != nil {
				t.Fatalf("strengths: %v", err)
			}
			if len(weak) != 1 || weak["geometry"] != 50 {
				t.Errorf("weak areas = %v", weak)
			}
			if len(strong) != 1 || strong["algebra"] != 100 {
				t.Errorf("strengths = %v", strong)
			}

			list, err := f.analytics.GetUserAnalytics(ctx, user)
			if err != nil {
				t.Fatalf("GetUserAnalytics: %v", err)
			}
			if len(list) != 1 || list[0].CurrentStreakDays != tt.current || list[0].ActiveDays != tt.active {
				t.Errorf("GetUserAnalytics = %+v", list)
			}
		})
	}
}

func TestAnalyticsService_RefreshMissingTest(t *testing.T) {
	f := newFixture(t)
	if err := f.analytics.RefreshAnalytics(t.Context(), 1, 404); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClassifyTopics(t *testing.T) {
	weak, strong := classifyTopics([]repository.TopicStat{
		{Topic: "algebra", Total: 4, Correct: 3},
		{Topic: "geometry", Total: 3, Correct: 1},
		{Topic: "series", Total: 10, Correct: 6},
		{Topic: "empty", Total: 0, Correct: 0},
		{Topic: "probability", Total: 20000, Correct: 11999},
		{Topic: "ratios", Total: 20000, Correct: 14999},
	})
	if len(weak) != 2 || weak["geometry"] != 33.33 {
		t.Errorf("weak = %v", weak)
	}
	if _, ok := weak["probability"]; !ok {
		t.Errorf("59.995%% accuracy must be weak, weak = %v", weak)
	}
	if len(strong) != 1 || strong["algebra"] != 75 {
		t.Errorf("strong = %v", strong)
	}
	if _, ok := strong["ratios"]; ok {
		t.Errorf("74.995%% accuracy must not be a strength, strong = %v", strong)
	}
}
