// Package ranking orders submitted attempts of one test and derives rank,
// percentile and the period windows used for leaderboard rows.
package ranking

import (
	"sort"
	"time"
)

type Period string

const (
	PeriodAll     Period = "all"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var Periods = []Period{PeriodAll, PeriodWeekly, PeriodMonthly}

func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodAll, PeriodWeekly, PeriodMonthly:
		return Period(s), true
	case "":
		return PeriodAll, true
	}
	return "", false
}

// Entry is one submitted attempt as seen by the ranking engine.
type Entry struct {
	AttemptID        uint
	UserID           uint
	Score            float64
	TimeTakenSeconds int
	SubmittedAt      time.Time
}

type Request struct {
	AttemptID uint `json:"attempt_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
	TestID    uint `json:"test_id" binding:"required"`
}

type Result struct {
	Rank          int     `json:"rank"`
	Percentile    float64 `json:"percentile"`
	TotalAttempts int     `json:"total_attempts"`
}

// better reports whether a outranks b: higher score, then faster completion.
func better(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.TimeTakenSeconds < b.TimeTakenSeconds
}

// Order sorts by score descending then time taken ascending. Equal score and
// equal time keep their input order.
func Order(entries []Entry) []Entry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return better(ordered[i], ordered[j])
	})
	return ordered
}

// Percentile is 100 x (attempts strictly worse than target) / (n - 1), and
// 100 when target is the only attempt.
func Percentile(ordered []Entry, target Entry) float64 {
	n := len(ordered)
	if n <= 1 {
		return 100
	}
	worse := 0
	for _, e := range ordered {
		if e.AttemptID != target.AttemptID && better(target, e) {
			worse++
		}
	}
	return 100 * float64(worse) / float64(n-1)
}

// Compute ranks attemptID among entries. ok is false when the attempt is not
// part of entries.
func Compute(entries []Entry, attemptID uint) (Result, bool) {
	ordered := Order(entries)
	for i, e := range ordered {
		if e.AttemptID == attemptID {
			return Result{
				Rank:          i + 1,
				Percentile:    Percentile(ordered, e),
				TotalAttempts: len(ordered),
			}, true
		}
	}
	return Result{TotalAttempts: len(ordered)}, false
}

// WindowStart returns the inclusive lower bound of the period in now's
// location. The all-time period has no bound.
func WindowStart(p Period, now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	switch p {
	case PeriodWeekly:
		// Monday = 0 ... Sunday = 6
		offset := (int(now.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location()), true
	case PeriodMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// WindowEnd is the exclusive end of the window WindowStart opens.
func WindowEnd(p Period, now time.Time) (time.Time, bool) {
	start, bounded := WindowStart(p, now)
	if !bounded {
		return time.Time{}, false
	}
	if p == PeriodWeekly {
		return start.AddDate(0, 0, 7), true
	}
	return start.AddDate(0, 1, 0), true
}

// Within filters entries submitted at or after the period start.
func Within(entries []Entry, p Period, now time.Time) []Entry {
	start, bounded := WindowStart(p, now)
	if !bounded {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.SubmittedAt.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// BestPerUser keeps each user's best attempt and orders the result for
// display. Unlike Order, ties on score and time are broken by earlier
// submission.
func BestPerUser(entries []Entry) []Entry {
	best := make(map[uint]Entry, len(entries))
	for _, e := range entries {
		cur, ok := best[e.UserID]
		if !ok || displayBefore(e, cur) {
			best[e.UserID] = e
		}
	}
	out := make([]Entry, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if displayBefore(out[i], out[j]) {
			return true
		}
		if displayBefore(out[j], out[i]) {
			return false
		}
		return out[i].AttemptID < out[j].AttemptID
	})
	return out
}

func displayBefore(a, b Entry) bool {
	if better(a, b) {
		return true
	}
	if better(b, a) {
		return false
	}
	return a.SubmittedAt.Before(b.SubmittedAt)
}
