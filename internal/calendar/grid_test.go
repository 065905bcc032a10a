package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makyelver-commits/eventor/internal/event"
)

func TestBuildGridAlwaysReturns42Cells(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{name: "February non-leap", year: 2025, month: time.February},
		{name: "February leap", year: 2024, month: time.February},
		{name: "31-day month", year: 2025, month: time.March},
		{name: "30-day month", year: 2025, month: time.April},
		{name: "Month starting on Sunday", year: 2025, month: time.June},
		{name: "December year boundary", year: 2025, month: time.December},
		{name: "January year boundary", year: 2025, month: time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(tt.year, tt.month, nil)
			require.Len(t, grid, GridSize)

			current := 0
			for _, day := range grid {
				if day.IsCurrentMonth {
					current++
				}
			}
			assert.Equal(t, DaysInMonth(tt.year, tt.month), current)
		})
	}
}

func TestBuildGridCellsAreContiguous(t *testing.T) {
	grid := BuildGrid(2025, time.March, nil)

	for i := 1; i < len(grid); i++ {
		prev := grid[i-1].Date
		assert.Equal(t, prev.AddDate(0, 0, 1).Day(), grid[i].Date.Day(),
			"cell %d does not follow cell %d", i, i-1)
	}
}

func TestBuildGridBucketsEventExactlyOnce(t *testing.T) {
	events := []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-03-15", Time: "21:00", OwnerID: "u1"},
	}

	grid := BuildGrid(2025, time.March, events)

	hits := 0
	for _, day := range grid {
		for _, e := range day.Events {
			if e.ID == "e1" {
				hits++
				assert.Equal(t, "2025-03-15", day.DateKey)
				assert.True(t, day.IsCurrentMonth)
			}
		}
	}
	assert.Equal(t, 1, hits)
}

func TestBuildGridEventOutsideMonthAppearsNowhere(t *testing.T) {
	events := []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-03-15", Time: "21:00", OwnerID: "u1"},
	}

	grid := BuildGrid(2025, time.June, events)

	for _, day := range grid {
		assert.Empty(t, day.Events, "cell %s should have no events", day.DateKey)
	}
}

func TestBuildGridSpilloverEventLands(t *testing.T) {
	// March 2025 starts on a Saturday; the leading cells belong to
	// February and an event there must still be bucketed.
	events := []event.Event{
		{ID: "e1", Title: "Warmup", Date: "2025-02-25", Time: "18:00", OwnerID: "u1"},
	}

	grid := BuildGrid(2025, time.March, events)

	found := false
	for _, day := range grid {
		if day.DateKey == "2025-02-25" {
			found = true
			assert.False(t, day.IsCurrentMonth)
			assert.Len(t, day.Events, 1)
		}
	}
	assert.True(t, found, "spillover cell for 2025-02-25 missing")
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}
