package ranking

import (
	"testing"
	"time"
)

var base = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC) // Wednesday

func TestComputeOrdersByScoreThenTime(t *testing.T) {
	entries := []Entry{
		{AttemptID: 1, UserID: 10, Score: 40, TimeTakenSeconds: 900},
		{AttemptID: 2, UserID: 11, Score: 55, TimeTakenSeconds: 1200},
		{AttemptID: 3, UserID: 12, Score: 55, TimeTakenSeconds: 800},
		{AttemptID: 4, UserID: 13, Score: 10, TimeTakenSeconds: 100},
	}

	tests := []struct {
		attempt    uint
		rank       int
		percentile float64
	}{
		{attempt: 3, rank: 1, percentile: 100},
		{attempt: 2, rank: 2, percentile: 100 * 2.0 / 3.0},
		{attempt: 1, rank: 3, percentile: 100 * 1.0 / 3.0},
		{attempt: 4, rank: 4, percentile: 0},
	}
	for _, tc := range tests {
		got, ok := Compute(entries, tc.attempt)
		if !ok {
			t.Fatalf("attempt %d not found", tc.attempt)
		}
		if got.Rank != tc.rank {
			t.Errorf("attempt %d: rank = %d, want %d", tc.attempt, got.Rank, tc.rank)
		}
		if diff := got.Percentile - tc.percentile; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("attempt %d: percentile = %v, want %v", tc.attempt, got.Percentile, tc.percentile)
		}
		if got.TotalAttempts != 4 {
			t.Errorf("attempt %d: total = %d, want 4", tc.attempt, got.TotalAttempts)
		}
	}
}

func TestComputeMonotonic(t *testing.T) {
	entries := []Entry{
		{AttemptID: 1, Score: 10, TimeTakenSeconds: 50},
		{AttemptID: 2, Score: 20, TimeTakenSeconds: 500},
		{AttemptID: 3, Score: 20, TimeTakenSeconds: 400},
		{AttemptID: 4, Score: 5, TimeTakenSeconds: 5},
		{AttemptID: 5, Score: 15, TimeTakenSeconds: 300},
	}
	ranks := map[uint]int{}
	for _, e := range entries {
		r, _ := Compute(entries, e.AttemptID)
		ranks[e.AttemptID] = r.Rank
	}
	for _, a := range entries {
		for _, b := range entries {
			if a.Score > b.Score && ranks[a.AttemptID] >= ranks[b.AttemptID] {
				t.Fatalf("score %v ranked %d, not ahead of score %v ranked %d", a.Score, ranks[a.AttemptID], b.Score, ranks[b.AttemptID])
			}
			if a.Score == b.Score && a.TimeTakenSeconds < b.TimeTakenSeconds && ranks[a.AttemptID] >= ranks[b.AttemptID] {
				t.Fatalf("faster attempt %d not ranked ahead of %d", a.AttemptID, b.AttemptID)
			}
		}
	}
}

func TestPercentileSingleAttempt(t *testing.T) {
	got, ok := Compute([]Entry{{AttemptID: 7, Score: 0, TimeTakenSeconds: 60}}, 7)
	if !ok || got.Rank != 1 || got.Percentile != 100 || got.TotalAttempts != 1 {
		t.Fatalf("Compute single = %+v (ok=%v), want rank 1 percentile 100", got, ok)
	}
}

func TestComputeMissingAttempt(t *testing.T) {
	if _, ok := Compute([]Entry{{AttemptID: 1}}, 2); ok {
		t.Fatalf("expected ok=false for attempt outside entries")
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		now    time.Time
		want   time.Time
	}{
		{name: "weekly midweek", period: PeriodWeekly, now: base, want: time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)},
		{name: "weekly on monday", period: PeriodWeekly, now: time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC), want: time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)},
		{name: "weekly on sunday", period: PeriodWeekly, now: time.Date(2024, time.May, 19, 23, 59, 0, 0, time.UTC), want: time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)},
		{name: "weekly across month", period: PeriodWeekly, now: time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC), want: time.Date(2024, time.May, 27, 0, 0, 0, 0, time.UTC)},
		{name: "monthly", period: PeriodMonthly, now: base, want: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := WindowStart(tc.period, tc.now)
			if !ok || !got.Equal(tc.want) {
				t.Fatalf("WindowStart = %v (ok=%v), want %v", got, ok, tc.want)
			}
		})
	}
	if _, ok := WindowStart(PeriodAll, base); ok {
		t.Fatalf("all-time period should be unbounded")
	}
}

func TestWindowEnd(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		now    time.Time
		want   time.Time
	}{
		{name: "weekly midweek", period: PeriodWeekly, now: base, want: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)},
		{name: "weekly on sunday", period: PeriodWeekly, now: time.Date(2024, time.May, 19, 23, 59, 0, 0, time.UTC), want: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)},
		{name: "monthly", period: PeriodMonthly, now: base, want: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{name: "monthly in december", period: PeriodMonthly, now: time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC), want: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := WindowEnd(tc.period, tc.now)
			if !ok || !got.Equal(tc.want) {
				t.Fatalf("WindowEnd = %v (ok=%v), want %v", got, ok, tc.want)
			}
		})
	}
	if _, ok := WindowEnd(PeriodAll, base); ok {
		t.Fatalf("all-time period should be unbounded")
	}
}

func TestWithin(t *testing.T) {
	entries := []Entry{
		{AttemptID: 1, SubmittedAt: base},
		{AttemptID: 2, SubmittedAt: base.AddDate(0, 0, -3)}, // Sunday of previous week
		{AttemptID: 3, SubmittedAt: base.AddDate(0, -1, 0)},
	}
	if got := Within(entries, PeriodAll, base); len(got) != 3 {
		t.Fatalf("all: got %d entries, want 3", len(got))
	}
	if got := Within(entries, PeriodWeekly, base); len(got) != 1 || got[0].AttemptID != 1 {
		t.Fatalf("weekly: got %+v, want only attempt 1", got)
	}
	if got := Within(entries, PeriodMonthly, base); len(got) != 2 {
		t.Fatalf("monthly: got %d entries, want 2", len(got))
	}
}

func TestBestPerUserBreaksTiesBySubmission(t *testing.T) {
	entries := []Entry{
		{AttemptID: 1, UserID: 1, Score: 30, TimeTakenSeconds: 100, SubmittedAt: base.Add(time.Hour)},
		{AttemptID: 2, UserID: 1, Score: 20, TimeTakenSeconds: 90, SubmittedAt: base},
		{AttemptID: 3, UserID: 2, Score: 30, TimeTakenSeconds: 100, SubmittedAt: base},
		{AttemptID: 4, UserID: 3, Score: 50, TimeTakenSeconds: 400, SubmittedAt: base},
	}
	got := BestPerUser(entries)
	want := []uint{4, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].AttemptID != id {
			t.Fatalf("row %d = attempt %d, want %d", i, got[i].AttemptID, id)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	if p, ok := ParsePeriod(""); !ok || p != PeriodAll {
		t.Fatalf("empty period should default to all")
	}
	if _, ok := ParsePeriod("yearly"); ok {
		t.Fatalf("yearly should be rejected")
	}
}
