package usersettings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/storage"
)

type Handler struct {
	Service *Service
	Store   *storage.LocalStore
}

func NewHandler(s *Service, store *storage.LocalStore) *Handler {
	return &Handler{Service: s, Store: store}
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

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

// ===========================
// 🎨 Get Settings - GET /settings
func (h *Handler) GetSettings(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	palette, err := h.Service.GetPalette(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"eventColors": palette})
}

// ===========================
// 🎨 Update Settings - PUT /settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	palette, err := h.Service.UpdatePalette(ownerID, req.EventColors)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"eventColors": palette})
}

// ===========================
// 👤 Get Profile - GET /profile
func (h *Handler) GetProfile(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	profile, err := h.Service.GetProfile(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ===========================
// 👤 Update Profile - PUT /profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ===========================
// 🖼 Upload Profile Image - POST /profile/image
func (h *Handler) UploadProfileImage(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := h.Store.SaveImage(ownerID, header)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.SetProfileImage(ownerID, url); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": url,
	})
}

// ===========================
// 🖼 Upload Flyer - POST /uploads (event images; client stores the URL)
func (h *Handler) UploadFlyer(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := h.Store.SaveImage(ownerID, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
