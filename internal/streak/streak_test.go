package streak

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone %s unavailable: %v", name, err)
	}
	return loc
}

func TestKeyUsesUserTimezone(t *testing.T) {
	kolkata := mustLoad(t, "Asia/Kolkata")
	// 20:00 UTC on the 1st is 01:30 on the 2nd in Kolkata.
	ts := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)

	if got := KeyString(Key(ts, time.UTC)); got != "2024-03-01" {
		t.Fatalf("UTC key = %s, want 2024-03-01", got)
	}
	if got := KeyString(Key(ts, kolkata)); got != "2024-03-02" {
		t.Fatalf("Kolkata key = %s, want 2024-03-02", got)
	}
	if k := Key(ts, kolkata); k.Location() != time.UTC || k.Hour() != 0 {
		t.Fatalf("key %v is not UTC midnight", k)
	}
}

func TestComputeThreeDayStreak(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, loc)
	activity := []time.Time{
		now.Add(-2 * time.Hour),
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -1).Add(time.Hour), // same day twice
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -4),
	}

	got := Compute(activity, now, loc)
	if got.Current != 3 {
		t.Fatalf("Current = %d, want 3", got.Current)
	}
	if got.Longest < 3 {
		t.Fatalf("Longest = %d, want >= 3", got.Longest)
	}
	if got.ActiveDays != 4 {
		t.Fatalf("ActiveDays = %d, want 4", got.ActiveDays)
	}
	if got.LastActivity == nil || KeyString(*got.LastActivity) != "2024-04-10" {
		t.Fatalf("LastActivity = %v, want 2024-04-10", got.LastActivity)
	}
}

func TestCurrentStartsFromYesterday(t *testing.T) {
	now := time.Date(2024, time.April, 10, 8, 0, 0, 0, time.UTC)
	activity := []time.Time{now.AddDate(0, 0, -1), now.AddDate(0, 0, -2)}

	if got := Compute(activity, now, time.UTC).Current; got != 2 {
		t.Fatalf("Current = %d, want 2", got)
	}
	stale := []time.Time{now.AddDate(0, 0, -2), now.AddDate(0, 0, -3)}
	if got := Compute(stale, now, time.UTC).Current; got != 0 {
		t.Fatalf("Current for stale activity = %d, want 0", got)
	}
}

func TestStreakAcrossDSTTransition(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	// Clocks spring forward on 2024-03-10; that day is 23 hours long.
	activity := []time.Time{
		time.Date(2024, time.March, 9, 23, 30, 0, 0, ny),
		time.Date(2024, time.March, 10, 23, 30, 0, 0, ny),
		time.Date(2024, time.March, 11, 0, 15, 0, 0, ny),
	}
	now := time.Date(2024, time.March, 11, 12, 0, 0, 0, ny)

	got := Compute(activity, now, ny)
	if got.Current != 3 || got.Longest != 3 {
		t.Fatalf("DST streak = current %d longest %d, want 3 and 3", got.Current, got.Longest)
	}

	// Fall back on 2024-11-03 (25 hour day).
	fall := []time.Time{
		time.Date(2024, time.November, 2, 22, 0, 0, 0, ny),
		time.Date(2024, time.November, 3, 23, 0, 0, 0, ny),
	}
	if got := Longest(Keys(fall, ny)); got != 2 {
		t.Fatalf("fall-back Longest = %d, want 2", got)
	}
}

func TestLongest(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	tests := []struct {
		name string
		keys []time.Time
		want int
	}{
		{name: "empty", keys: nil, want: 0},
		{name: "single", keys: []time.Time{day(3)}, want: 1},
		{name: "gap", keys: []time.Time{day(1), day(2), day(4), day(5), day(6), day(9)}, want: 3},
		{name: "month boundary", keys: []time.Time{day(30), day(31), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)}, want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Longest(tc.keys); got != tc.want {
				t.Fatalf("Longest = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeNoActivity(t *testing.T) {
	got := Compute(nil, time.Now(), nil)
	if got.Current != 0 || got.Longest != 0 || got.LastActivity != nil {
		t.Fatalf("Compute(nil) = %+v, want zero summary", got)
	}
}
