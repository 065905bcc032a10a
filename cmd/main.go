package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/makyelver-commits/eventor/config"
	"github.com/makyelver-commits/eventor/database"
	"github.com/makyelver-commits/eventor/internal/auth"
	"github.com/makyelver-commits/eventor/internal/event"
	"github.com/makyelver-commits/eventor/internal/usersettings"
	"github.com/makyelver-commits/eventor/routes"
	"github.com/makyelver-commits/eventor/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (reset-token store)
	if err := utils.InitRedis(); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&event.Event{},
		&usersettings.UserSettings{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create uploads directory
	if err := os.MkdirAll(config.UploadPath, os.ModePerm); err != nil {
		panic(fmt.Sprintf("❌ Failed to create upload directory: %v", err))
	}

	// Flyer and profile images: /uploads/{ownerID}/{filename}
	router.GET("/uploads/:ownerID/:filename", func(c *gin.Context) {
		serveOwnerFile(c, config.UploadPath)
	})

	scheduler := routes.Setup(router, cfg, db)
	defer scheduler.Stop()

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("📁 Upload directory: %s\n", config.UploadPath)

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}

// serveOwnerFile serves an uploaded image from an owner's directory.
func serveOwnerFile(c *gin.Context, uploadDir string) {
	ownerID := c.Param("ownerID")
	filename := c.Param("filename")

	if ownerID == "" || filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters"})
		return
	}

	filePath := filepath.Join(uploadDir, ownerID, filename)
	cleanPath := filepath.Clean(filePath)

	if !strings.HasPrefix(cleanPath, filepath.Clean(uploadDir)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	fileInfo, err := os.Stat(cleanPath)
	if os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File access error"})
		return
	}

	setContentType(c, filename)
	c.Header("Content-Length", fmt.Sprintf("%d", fileInfo.Size()))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", filename))

	c.File(cleanPath)
}

func setContentType(c *gin.Context, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType := "application/octet-stream"

	switch ext {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".webp":
		contentType = "image/webp"
	}

	c.Header("Content-Type", contentType)
	return contentType
}
