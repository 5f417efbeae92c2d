package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionWindow(t *testing.T) {
	m := Mission{ID: "PRJ001", StartDate: "2024-01-10", EndDate: "2024-01-15"}
	start, end, err := m.Window()
	require.NoError(t, err)
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 15, end.Day())
}

func TestMissionWindowHumanDates(t *testing.T) {
	m := Mission{ID: "PRJ002", StartDate: "Jan 10, 2024", EndDate: "15 January 2024"}
	_, end, err := m.Window()
	require.NoError(t, err)
	assert.Equal(t, time.January, end.Month())
}

func TestMissionWindowInvalid(t *testing.T) {
	for _, m := range []Mission{
		{ID: "a", StartDate: "", EndDate: "2024-01-15"},
		{ID: "b", StartDate: "not a date", EndDate: "2024-01-15"},
		{ID: "c", StartDate: "2024-01-15", EndDate: "2024-01-10"},
	} {
		_, _, err := m.Window()
		assert.Error(t, err, "mission %s", m.ID)
	}
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	assert.True(t, Overlaps(day(10), day(15), day(15), day(20)), "shared boundary day counts")
	assert.True(t, Overlaps(day(10), day(15), day(12), day(13)))
	assert.False(t, Overlaps(day(10), day(15), day(16), day(20)))
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 4, PriorityUrgent.Rank())
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityStandard.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 1, Priority("Whenever").Rank())
}

func TestHasAssignment(t *testing.T) {
	assert.False(t, HasAssignment(""))
	assert.False(t, HasAssignment(" "))
	assert.False(t, HasAssignment("-"))
	assert.False(t, HasAssignment("–"))
	assert.True(t, HasAssignment("PRJ001"))
}
