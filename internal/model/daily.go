package model

import (
	"sort"
	"time"
)

// DateFormat is the calendar date key used for solutions and counters
const DateFormat = "2006-01-02"

// dailyEpoch is the fixed reference date for solution rotation.
// Changing it reshuffles which character falls on which day.
var dailyEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateKey returns the UTC calendar date key for t
func DateKey(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// DailySolution picks the solution for the given instant: the roster is
// sorted by name and indexed by whole days elapsed since the epoch, so every
// instance agrees on the same character for the same UTC date and the
// solution rotates exactly once per UTC midnight.
func DailySolution(roster []Character, t time.Time) (*Character, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	sorted := make([]Character, len(roster))
	copy(sorted, roster)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	utc := t.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	days := int(midnight.Sub(dailyEpoch).Hours() / 24)

	idx := days % len(sorted)
	if idx < 0 {
		idx += len(sorted)
	}

	solution := sorted[idx]
	return &solution, nil
}
