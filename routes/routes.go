package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/makyelver-commits/eventor/config"
	"github.com/makyelver-commits/eventor/internal/auth"
	"github.com/makyelver-commits/eventor/internal/calendar"
	"github.com/makyelver-commits/eventor/internal/event"
	"github.com/makyelver-commits/eventor/internal/export"
	"github.com/makyelver-commits/eventor/internal/storage"
	"github.com/makyelver-commits/eventor/internal/usersettings"
	"github.com/makyelver-commits/eventor/middleware"
)

// Setup wires every module and registers the API routes. The returned
// scheduler must be stopped on shutdown so no reminder timer outlives
// the server.
func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) *calendar.Scheduler {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")

	// ========== Event Store ==========
	userStore := event.NewGormStore(db)
	guestStore := event.NewGuestStore()
	eventSvc := event.NewService(userStore, guestStore)

	// ========== Reminder Scheduler ==========
	scheduler := calendar.NewScheduler(time.Duration(cfg.ReminderPeriodMinutes) * time.Minute)

	// Every event-list mutation re-feeds the scheduler so the "events
	// today" set is never stale. An empty today set cancels the session.
	eventSvc.OnChange = func(ownerID string) {
		events, err := eventSvc.List(context.Background(), ownerID)
		if err != nil {
			return
		}
		scheduler.Refresh(ownerID, events)
	}

	// ========== Auth ==========
	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg)

	// Guest logout wipes the guest's local event collection and any
	// armed reminder session. The trade-off is disclosed: guest data
	// does not survive the session.
	authHandler := auth.NewHandler(authSvc, func(ownerID string) {
		_, _ = guestStore.DeleteAll(context.Background(), ownerID)
		scheduler.Teardown(ownerID)
	})

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimiter())
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/guest", authHandler.Guest)
		authGroup.POST("/refresh", authHandler.Refresh)

		// Forgot/Reset
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)

		// Logout requires Auth Middleware
		authGroup.POST("/logout", middleware.AuthMiddleware(cfg), authHandler.Logout)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))

	// ========== Events ==========
	eventHandler := event.NewHandler(eventSvc)
	{
		protected.GET("/events", eventHandler.ListEvents)
		protected.POST("/events", eventHandler.CreateEvent)
		protected.PUT("/events/:id", eventHandler.UpdateEvent)
		protected.DELETE("/events/:id", eventHandler.DeleteEvent)
		protected.DELETE("/events", eventHandler.ClearEvents)
	}

	// ========== Calendar & Reminders ==========
	calendarHandler := calendar.NewHandler(eventSvc, scheduler)
	{
		protected.GET("/calendar/grid", calendarHandler.GetGrid)
		protected.GET("/calendar/month", calendarHandler.GetMonthEvents)
		protected.POST("/reminders/arm", calendarHandler.ArmReminders)
		protected.DELETE("/reminders", calendarHandler.TeardownReminders)
		protected.GET("/reminders/message", calendarHandler.GetReminderMessage)
	}

	// ========== Export ==========
	exportHandler := export.NewHandler(eventSvc)
	protected.GET("/events/export", exportHandler.ExportEvents)

	// ========== Settings & Profile ==========
	imageStore := storage.NewLocalStore(config.UploadPath, config.BaseURL)
	settingsRepo := usersettings.NewRepository(db)
	settingsSvc := usersettings.NewService(settingsRepo, authRepo)
	settingsHandler := usersettings.NewHandler(settingsSvc, imageStore)
	{
		protected.GET("/settings", settingsHandler.GetSettings)
		protected.PUT("/settings", settingsHandler.UpdateSettings)
		protected.GET("/profile", settingsHandler.GetProfile)
		protected.PUT("/profile", settingsHandler.UpdateProfile)
		protected.POST("/profile/image", settingsHandler.UploadProfileImage)
		protected.POST("/uploads", settingsHandler.UploadFlyer)
	}

	return scheduler
}
