package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/calendar"
	"github.com/makyelver-commits/eventor/internal/event"
)

type Handler struct {
	Events   *event.Service
	Exporter Exporter
}

func NewHandler(events *event.Service) *Handler {
	return &Handler{Events: events, Exporter: NewExporter()}
}

// ===========================
// 📤 Export Events - GET /events/export?format=txt|pdf|xlsx
func (h *Handler) ExportEvents(c *gin.Context) {
	raw, exists := c.Get("owner_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner context missing"})
		return
	}
	ownerID, ok := raw.(string)
	if !ok || ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid owner context"})
		return
	}

	format := c.DefaultQuery("format", FormatTXT)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	events, err := h.Events.List(ctx, ownerID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
		return
	}

	today := calendar.ToDateKey(time.Now())
	data, filename, contentType, err := h.Exporter.Export(format, events, today)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
