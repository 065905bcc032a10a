package calendar

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/event"
)

type Handler struct {
	Events    *event.Service
	Scheduler *Scheduler
}

func NewHandler(events *event.Service, scheduler *Scheduler) *Handler {
	return &Handler{Events: events, Scheduler: scheduler}
}

// gridCell is one grid day plus its derived visual parameters.
type gridCell struct {
	Day
	Style DayStyle `json:"style"`
}

func ownerFromContext(c *gin.Context) (string, bool) {
	raw, exists := c.Get("owner_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner context missing"})
		return "", false
	}
	ownerID, ok := raw.(string)
	if !ok || ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid owner context"})
		return "", false
	}
	return ownerID, true
}

// yearMonthFromQuery parses ?year=&month=, defaulting to the current month.
func yearMonthFromQuery(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return 0, 0, false
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return 0, 0, false
		}
		month = v
	}
	return year, time.Month(month), true
}

// ===========================
// 📅 Month Grid - GET /calendar/grid?year=&month=
func (h *Handler) GetGrid(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	events, err := h.Events.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
		return
	}

	days := BuildGrid(year, month, events)
	cells := make([]gridCell, 0, len(days))
	for _, d := range days {
		sort.Slice(d.Events, func(i, j int) bool { return d.Events[i].Time < d.Events[j].Time })
		colors := make([]string, 0, len(d.Events))
		for _, e := range d.Events {
			colors = append(colors, e.Color)
		}
		cells = append(cells, gridCell{Day: d, Style: StyleForColors(colors)})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  cells,
	})
}

// ===========================
// 📄 Month Events - GET /calendar/month?year=&month=
func (h *Handler) GetMonthEvents(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	events, err := h.Events.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
		return
	}

	monthEvents := make([]event.Event, 0)
	for _, e := range events {
		d, err := FromDateKey(e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			monthEvents = append(monthEvents, e)
		}
	}
	sort.Slice(monthEvents, func(i, j int) bool {
		if monthEvents[i].Date != monthEvents[j].Date {
			return monthEvents[i].Date < monthEvents[j].Date
		}
		return monthEvents[i].Time < monthEvents[j].Time
	})

	c.JSON(http.StatusOK, monthEvents)
}

// ===========================
// ⏰ Arm Reminders - POST /reminders/arm
func (h *Handler) ArmReminders(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	events, err := h.Events.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
		return
	}

	h.Scheduler.Refresh(ownerID, events)

	c.JSON(http.StatusOK, gin.H{"active": h.Scheduler.Active(ownerID)})
}

// ===========================
// ⏰ Teardown Reminders - DELETE /reminders
func (h *Handler) TeardownReminders(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	h.Scheduler.Teardown(ownerID)
	c.JSON(http.StatusOK, gin.H{"active": false})
}

// ===========================
// 💬 Latest Prompt - GET /reminders/message
func (h *Handler) GetReminderMessage(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	p, found := h.Scheduler.LatestPrompt(ownerID)
	if !found {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, p)
}
