package calendar

import (
	"time"

	"github.com/makyelver-commits/eventor/internal/event"
)

// GridSize is the fixed cell count of the monthly view: 6 full weeks,
// padded with spillover days so the layout never changes height.
const GridSize = 42

// Day is one cell of the rendered grid. Rebuilt from scratch on every
// month change or event mutation, never mutated in place.
type Day struct {
	Date           time.Time     `json:"date"`
	DateKey        string        `json:"date_key"`
	IsCurrentMonth bool          `json:"is_current_month"`
	Events         []event.Event `json:"events"`
}

// BuildGrid produces the 42-cell grid for the given month with events
// bucketed per day by exact date-key match. Cells are contiguous and
// chronologically ordered; leading cells come from the previous month,
// trailing cells from the next.
func BuildGrid(year int, month time.Month, events []event.Event) []Day {
	// Bucket events once by date key; cells look up their own key.
	buckets := make(map[string][]event.Event, len(events))
	for _, e := range events {
		buckets[e.Date] = append(buckets[e.Date], e)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday()) // 0 = Sunday, first weekday position

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := first.AddDate(0, 0, i-lead)
		key := ToDateKey(date)
		days = append(days, Day{
			Date:           date,
			DateKey:        key,
			IsCurrentMonth: date.Month() == month && date.Year() == year,
			Events:         buckets[key],
		})
	}

	return days
}

// DaysInMonth returns the day count of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
