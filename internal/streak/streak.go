// Package streak computes daily-activity streaks on calendar-day keys.
//
// A key is the activity's date in the user's timezone, formatted as
// YYYY-MM-DD and re-read as midnight UTC. Day arithmetic on keys never sees
// DST shifts or server-clock offsets because keys carry no wall-clock time.
package streak

import (
	"sort"
	"time"
)

const keyLayout = "2006-01-02"

// Key renders t as a calendar day in loc and returns it as UTC midnight.
func Key(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	day := t.In(loc).Format(keyLayout)
	key, _ := time.Parse(keyLayout, day)
	return key
}

func KeyString(key time.Time) string {
	return key.Format(keyLayout)
}

// Keys de-duplicates timestamps into ascending day keys.
func Keys(timestamps []time.Time, loc *time.Location) []time.Time {
	seen := make(map[string]time.Time, len(timestamps))
	for _, ts := range timestamps {
		k := Key(ts, loc)
		seen[KeyString(k)] = k
	}
	keys := make([]time.Time, 0, len(seen))
	for _, k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

func nextDay(key time.Time) time.Time {
	return key.AddDate(0, 0, 1)
}

// Current counts consecutive days ending today, or ending yesterday when
// today has no activity yet. keys must be ascending.
func Current(keys []time.Time, today time.Time) int {
	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[KeyString(k)] = true
	}

	day := today
	if !present[KeyString(day)] {
		day = day.AddDate(0, 0, -1)
		if !present[KeyString(day)] {
			return 0
		}
	}

	count := 0
	for present[KeyString(day)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// Longest finds the longest run of consecutive day keys. keys must be
// ascending and unique.
func Longest(keys []time.Time) int {
	if len(keys) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		if keys[i].Equal(nextDay(keys[i-1])) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

type Summary struct {
	Current      int
	Longest      int
	LastActivity *time.Time
	ActiveDays   int
}

// Compute builds the streak summary for activity timestamps as observed at
// now, with day boundaries in loc.
func Compute(timestamps []time.Time, now time.Time, loc *time.Location) Summary {
	keys := Keys(timestamps, loc)
	s := Summary{ActiveDays: len(keys)}
	if len(keys) == 0 {
		return s
	}
	last := keys[len(keys)-1]
	s.LastActivity = &last
	s.Current = Current(keys, Key(now, loc))
	s.Longest = Longest(keys)
	return s
}
