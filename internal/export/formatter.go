package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/makyelver-commits/eventor/internal/calendar"
	"github.com/makyelver-commits/eventor/internal/event"
)

// ===========================
// 📋 Schedule Report Builder
// ===========================

// dateGroup holds all events sharing one calendar date.
type dateGroup struct {
	Key    string
	Events []event.Event
}

// monthGroup holds the date groups of one calendar month, in ascending order.
type monthGroup struct {
	Label string
	Dates []dateGroup
}

// scheduleReport is the format-independent shape of the export: upcoming
// events grouped month -> date, plus the summary figures every renderer
// prints at the end.
type scheduleReport struct {
	Months      []monthGroup
	Total       int
	FirstDate   string
	LastDate    string
	GeneratedAt time.Time
}

// buildReport filters the event list to dates on or after today, sorts it
// ascending and groups it by month and date. Date keys are zero-padded
// YYYY-MM-DD strings, so plain string comparison orders them correctly.
func buildReport(events []event.Event, today string, now time.Time) scheduleReport {
	upcoming := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if ev.Date >= today {
			upcoming = append(upcoming, ev)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})

	report := scheduleReport{GeneratedAt: now, Total: len(upcoming)}
	if len(upcoming) == 0 {
		return report
	}
	report.FirstDate = upcoming[0].Date
	report.LastDate = upcoming[len(upcoming)-1].Date

	for _, ev := range upcoming {
		label := monthLabel(ev.Date)

		if len(report.Months) == 0 || report.Months[len(report.Months)-1].Label != label {
			report.Months = append(report.Months, monthGroup{Label: label})
		}
		month := &report.Months[len(report.Months)-1]

		if len(month.Dates) == 0 || month.Dates[len(month.Dates)-1].Key != ev.Date {
			month.Dates = append(month.Dates, dateGroup{Key: ev.Date})
		}
		date := &month.Dates[len(month.Dates)-1]
		date.Events = append(date.Events, ev)
	}

	return report
}

// monthLabel turns a date key into its month heading, e.g. "January 2025".
func monthLabel(dateKey string) string {
	t, err := calendar.FromDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// dateHeading renders a date key as a long-form heading for the report body.
func dateHeading(dateKey string) string {
	t, err := calendar.FromDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Monday, January 2, 2006")
}

// ===========================
// 📄 Plain-Text Renderer
// ===========================

func renderTXT(report scheduleReport) []byte {
	var b strings.Builder

	b.WriteString("==========================================\n")
	b.WriteString("           UPCOMING EVENTS REPORT\n")
	b.WriteString("==========================================\n\n")

	if report.Total == 0 {
		b.WriteString("No upcoming events.\n\n")
		writeSummary(&b, report)
		return []byte(b.String())
	}

	for _, month := range report.Months {
		b.WriteString(strings.ToUpper(month.Label))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len(month.Label)))
		b.WriteString("\n\n")

		for _, date := range month.Dates {
			b.WriteString("  ")
			b.WriteString(dateHeading(date.Key))
			b.WriteString("\n")

			for _, ev := range date.Events {
				fmt.Fprintf(&b, "    * %s at %s\n", ev.Title, ev.Time)
				if ev.Location != "" {
					fmt.Fprintf(&b, "      Location: %s\n", ev.Location)
				}
				if ev.Notes != "" {
					fmt.Fprintf(&b, "      Notes: %s\n", ev.Notes)
				}
				if ev.ImageURL != "" {
					fmt.Fprintf(&b, "      Image: %s\n", ev.ImageURL)
				}
				fmt.Fprintf(&b, "      Color: %s\n", ev.Color)
				fmt.Fprintf(&b, "      Created: %s | Updated: %s\n",
					ev.CreatedAt.Format("2006-01-02 15:04:05"),
					ev.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			b.WriteString("\n")
		}
	}

	writeSummary(&b, report)
	return []byte(b.String())
}

func writeSummary(b *strings.Builder, report scheduleReport) {
	b.WriteString("==========================================\n")
	b.WriteString("SUMMARY\n")
	fmt.Fprintf(b, "Total events: %d\n", report.Total)
	fmt.Fprintf(b, "Months covered: %d\n", len(report.Months))
	if report.Total > 0 {
		fmt.Fprintf(b, "First event: %s\n", report.FirstDate)
		fmt.Fprintf(b, "Last event: %s\n", report.LastDate)
	}
	fmt.Fprintf(b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("==========================================\n")
}
