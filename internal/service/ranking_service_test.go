package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/lshigami/aptiprep/internal/session"
)

func TestRankingService_Rank(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Logic 1", "logical", model.TestKindMock, false, "series", "syllogism")
	ctx := t.Context()

	all := map[int]string{0: "A", 1: "A"}
	top := f.submit(t, test, 1, all, 300, f.now.Add(-time.Hour))
	fast := f.submit(t, test, 2, map[int]string{0: "A"}, 100, f.now.Add(-time.Hour))
	slow := f.submit(t, test, 3, map[int]string{0: "A"}, 200, f.now.Add(-time.Hour))

	tests := []struct {
		attempt    uint
		user       uint
		rank       int
		percentile float64
	}{
		{top, 1, 1, 100},
		{fast, 2, 2, 50},
		{slow, 3, 3, 0},
	}
	for _, tt := range tests {
		res, err := f.ranking.Rank(ctx, ranking.Request{AttemptID: tt.attempt, UserID: tt.user, TestID: test.ID})
		if err != nil {
			t.Fatalf("Rank(%d): %v", tt.attempt, err)
		}
		if res.Rank != tt.rank || res.Percentile != tt.percentile || res.TotalAttempts != 3 {
			t.Errorf("Rank(%d) = %+v, want rank %d percentile %v", tt.attempt, res, tt.rank, tt.percentile)
		}

		var stored model.TestAttempt
		if err := f.db.First(&stored, tt.attempt).Error; err != nil {
			t.Fatalf("load attempt: %v", err)
		}
		if stored.Rank == nil || *stored.Rank != tt.rank {
			t.Errorf("stored rank of %d = %v, want %d", tt.attempt, stored.Rank, tt.rank)
		}
	}

	var rows []model.LeaderboardEntry
	if err := f.db.Where("user_id = ?", 2).Order("period_type").Find(&rows).Error; err != nil {
		t.Fatalf("load leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected all, monthly and weekly rows, got %d", len(rows))
	}

	last := f.events.Types()
	if last[len(last)-1] != event.LeaderboardUpdated {
		t.Errorf("last event = %s, want %s", last[len(last)-1], event.LeaderboardUpdated)
	}
}

func TestRankingService_RankOutsideWindow(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Logic 1", "logical", model.TestKindMock, false, "series")
	ctx := t.Context()

	// Last month: only the all-time row may be written.
	old := f.submit(t, test, 5, map[int]string{0: "A"}, 60, f.now.AddDate(0, -1, 0))
	if _, err := f.ranking.Rank(ctx, ranking.Request{AttemptID: old, UserID: 5, TestID: test.ID}); err != nil {
		t.Fatalf("Rank: %v", err)
	}

	var periods []string
	if err := f.db.Model(&model.LeaderboardEntry{}).Where("user_id = ?", 5).Pluck("period_type", &periods).Error; err != nil {
		t.Fatalf("load leaderboard: %v", err)
	}
	if len(periods) != 1 || periods[0] != string(ranking.PeriodAll) {
		t.Fatalf("periods = %v, want [all]", periods)
	}
}

func TestRankingService_RankRejects(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Logic 1", "logical", model.TestKindMock, false, "series")
	ctx := t.Context()

	open, err := f.attempts.CreateAttempt(ctx, session.NewAttempt{TestID: test.ID, UserID: 1})
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	done := f.submit(t, test, 2, nil, 30, f.now)

	tests := []struct {
		name string
		req  ranking.Request
		want error
	}{
		{"unsubmitted attempt", ranking.Request{AttemptID: open, UserID: 1, TestID: test.ID}, apperr.ErrComputationSkipped},
		{"wrong user", ranking.Request{AttemptID: done, UserID: 9, TestID: test.ID}, apperr.ErrInvalidInput},
		{"missing attempt", ranking.Request{AttemptID: 404, UserID: 1, TestID: test.ID}, apperr.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.ranking.Rank(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("Rank error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRankingService_GetLeaderboard(t *testing.T) {
	f := newFixture(t)
	test := f.createTest(t, "Logic 1", "logical", model.TestKindMock, false, "series", "syllogism")
	ctx := t.Context()

	f.submit(t, test, 1, map[int]string{0: "A"}, 100, f.now.Add(-3*time.Hour))
	f.submit(t, test, 1, map[int]string{0: "A", 1: "A"}, 400, f.now.Add(-2*time.Hour))
	f.submit(t, test, 2, map[int]string{0: "A"}, 100, f.now.Add(-time.Hour))
	f.submit(t, test, 3, map[int]string{0: "A"}, 100, f.now.Add(-4*time.Hour))

	board, err := f.ranking.GetLeaderboard(ctx, test.ID, ranking.PeriodAll, 0)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	wantUsers := []uint{1, 3, 2}
	if len(board.Entries) != len(wantUsers) {
		t.Fatalf("entries = %+v", board.Entries)
	}
	for i, want := range wantUsers {
		e := board.Entries[i]
		if e.UserID != want || e.Rank != i+1 {
			t.Errorf("entry %d = user %d rank %d, want user %d rank %d", i, e.UserID, e.Rank, want, i+1)
		}
	}
	if board.Entries[0].Score != 2 {
		t.Errorf("user 1 should be listed with the best attempt, got score %v", board.Entries[0].Score)
	}

	limited, err := f.ranking.GetLeaderboard(ctx, test.ID, ranking.PeriodWeekly, 1)
	if err != nil {
		t.Fatalf("GetLeaderboard limited: %v", err)
	}
	if len(limited.Entries) != 1 || limited.Period != "weekly" {
		t.Errorf("limited board = %+v", limited)
	}

	if _, err := f.ranking.GetLeaderboard(ctx, 404, ranking.PeriodAll, 0); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing test: expected ErrNotFound, got %v", err)
	}
}
