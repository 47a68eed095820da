package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(names ...string) []Character {
	roster := make([]Character, 0, len(names))
	for _, name := range names {
		roster = append(roster, Character{Name: name})
	}
	return roster
}

func TestDailySolutionEmptyRoster(t *testing.T) {
	_, err := DailySolution(nil, time.Now())
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestDailySolutionDeterministic(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina", "Adriana")
	at := time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)

	first, err := DailySolution(roster, at)
	require.NoError(t, err)
	second, err := DailySolution(roster, at)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDailySolutionIndependentOfInputOrder(t *testing.T) {
	at := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	a, err := DailySolution(testRoster("Adina", "Abigail", "Adela"), at)
	require.NoError(t, err)
	b, err := DailySolution(testRoster("Adela", "Adina", "Abigail"), at)
	require.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
}

func TestDailySolutionSameForWholeUTCDay(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina")

	morning := time.Date(2026, time.August, 30, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, time.August, 30, 23, 59, 59, 0, time.UTC)

	a, err := DailySolution(roster, morning)
	require.NoError(t, err)
	b, err := DailySolution(roster, night)
	require.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
}

func TestDailySolutionRotatesAtUTCMidnight(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina")

	before := time.Date(2026, time.August, 30, 23, 59, 59, 0, time.UTC)
	after := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	a, err := DailySolution(roster, before)
	require.NoError(t, err)
	b, err := DailySolution(roster, after)
	require.NoError(t, err)

	assert.NotEqual(t, a.Name, b.Name)
}

func TestDailySolutionCyclesThroughWholeRoster(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina", "Adriana", "Aiden")
	start := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for day := 0; day < len(roster); day++ {
		solution, err := DailySolution(roster, start.AddDate(0, 0, day))
		require.NoError(t, err)
		assert.False(t, seen[solution.Name], "repeat within one cycle: %s", solution.Name)
		seen[solution.Name] = true
	}
	assert.Len(t, seen, len(roster))
}

func TestDailySolutionHandlesDatesBeforeEpoch(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina")

	solution, err := DailySolution(roster, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEmpty(t, solution.Name)
}

func TestDailySolutionUsesUTCDate(t *testing.T) {
	roster := testRoster("Abigail", "Adela", "Adina", "Adriana", "Aiden", "Alex", "Alonso")

	// 2026-08-30 23:00 in UTC-5 is 2026-08-31 04:00 UTC
	offset := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, time.August, 30, 23, 0, 0, 0, offset)
	utc := time.Date(2026, time.August, 31, 4, 0, 0, 0, time.UTC)

	a, err := DailySolution(roster, local)
	require.NoError(t, err)
	b, err := DailySolution(roster, utc)
	require.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
}

func TestDateKey(t *testing.T) {
	offset := time.FixedZone("UTC+9", 9*60*60)
	// 05:00 UTC+9 is still the previous day in UTC
	assert.Equal(t, "2026-08-30", DateKey(time.Date(2026, time.August, 31, 5, 0, 0, 0, offset)))
	assert.Equal(t, "2026-08-30", DateKey(time.Date(2026, time.August, 30, 22, 0, 0, 0, time.UTC)))
}
