package calendar

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makyelver-commits/eventor/internal/event"
)

// fixedClock pins the scheduler to a known "today".
func fixedClock(s *Scheduler, t time.Time) {
	s.now = func() time.Time { return t }
}

func TestRefreshArmsWhenEventsToday(t *testing.T) {
	s := NewScheduler(time.Hour)
	today := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	fixedClock(s, today)
	defer s.Stop()

	events := []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
		{ID: "e2", Title: "Elsewhere", Date: "2025-06-12", Time: "20:00", OwnerID: "u1"},
	}

	s.Refresh("u1", events)

	assert.True(t, s.Active("u1"))

	// The Idle -> Active transition fires a prompt immediately.
	prompt, ok := s.LatestPrompt("u1")
	require.True(t, ok)
	assert.NotEmpty(t, prompt.Title)
	assert.NotEmpty(t, prompt.Message)
	assert.Equal(t, today, prompt.At)
}

func TestRefreshStaysIdleWithoutTodayEvents(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))
	defer s.Stop()

	events := []event.Event{
		{ID: "e1", Title: "Future", Date: "2025-07-01", Time: "21:00", OwnerID: "u1"},
	}

	s.Refresh("u1", events)

	assert.False(t, s.Active("u1"))
	_, ok := s.LatestPrompt("u1")
	assert.False(t, ok)
}

func TestRefreshWithEmptyTodaySetCancels(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))
	defer s.Stop()

	s.Refresh("u1", []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
	})
	require.True(t, s.Active("u1"))

	// The last today event was deleted: Active -> Idle.
	s.Refresh("u1", nil)
	assert.False(t, s.Active("u1"))
}

func TestTeardownAlwaysCancels(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))

	s.Refresh("u1", []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
	})
	require.True(t, s.Active("u1"))

	s.Teardown("u1")
	assert.False(t, s.Active("u1"))

	// Teardown of an idle owner is a no-op, not a panic.
	s.Teardown("u1")
	s.Teardown("never-armed")
}

func TestSessionsAreIsolatedPerOwner(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))
	defer s.Stop()

	s.Refresh("u1", []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
	})
	s.Refresh("u2", []event.Event{
		{ID: "e2", Title: "Show B", Date: "2025-06-10", Time: "22:00", OwnerID: "u2"},
	})

	assert.True(t, s.Active("u1"))
	assert.True(t, s.Active("u2"))

	s.Teardown("u1")
	assert.False(t, s.Active("u1"))
	assert.True(t, s.Active("u2"))
}

func TestMultipleEventsPromptSubstitutesCount(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))
	defer s.Stop()

	events := []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "19:00", OwnerID: "u1"},
		{ID: "e2", Title: "Show B", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
		{ID: "e3", Title: "Show C", Date: "2025-06-10", Time: "23:00", OwnerID: "u1"},
	}

	s.Refresh("u1", events)

	prompt, ok := s.LatestPrompt("u1")
	require.True(t, ok)
	assert.NotContains(t, prompt.Message, "%d")
	assert.Contains(t, prompt.Message, "3")
}

func TestTickTearsDownAfterDayRollover(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 23, 50, 0, 0, time.Local))
	defer s.Stop()

	s.Refresh("u1", []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "23:55", OwnerID: "u1"},
	})
	require.True(t, s.Active("u1"))

	// Midnight passes between ticks; yesterday's session no longer applies.
	fixedClock(s, time.Date(2025, 6, 11, 0, 5, 0, 0, time.Local))
	s.tick("u1")

	assert.False(t, s.Active("u1"))
}

func TestEmitterReceivesPrompts(t *testing.T) {
	s := NewScheduler(time.Hour)
	fixedClock(s, time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local))
	defer s.Stop()

	var mu sync.Mutex
	var got []Prompt
	s.SetEmitter(func(ownerID string, p Prompt) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "u1", ownerID)
		got = append(got, p)
	})

	s.Refresh("u1", []event.Event{
		{ID: "e1", Title: "Show A", Date: "2025-06-10", Time: "21:00", OwnerID: "u1"},
	})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].Title)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "3 stages, one artist", formatCount("%d stages, one artist", 3))
	assert.Equal(t, "2 events, 2 chances", formatCount("%d events, %d chances", 2))
	assert.Equal(t, "no verbs", formatCount("no verbs", 7))
}

func TestPromptTemplatesAreWellFormed(t *testing.T) {
	for _, tpl := range singleTemplates {
		assert.False(t, strings.Contains(tpl.Message, "%d"),
			"single-event template must not need a count: %q", tpl.Message)
	}
	for _, tpl := range multipleTemplates {
		assert.True(t, strings.Contains(tpl.Message, "%d"),
			"multi-event template must carry a count: %q", tpl.Message)
	}
}
