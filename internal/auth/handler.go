package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

type Handler struct {
	service Service

	// onGuestLogout wipes the guest's in-memory data when the session ends.
	onGuestLogout func(ownerID string)
}

func NewHandler(s Service, onGuestLogout func(ownerID string)) *Handler {
	return &Handler{service: s, onGuestLogout: onGuestLogout}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(RegisterInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, user, err := h.service.Login(LoginInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// ===============================
// Guest Session
// ===============================

func (h *Handler) Guest(c *gin.Context) {
	tokens, guestID, err := h.service.GuestSession()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"id":      guestID,
			"isGuest": true,
			"name":    "Guest",
		},
		"notice": "Guest events are kept only for this session",
	})
}

// ===============================
// Logout — guests lose their data here, by design
// ===============================

func (h *Handler) Logout(c *gin.Context) {
	if ownerRaw, exists := c.Get("owner_id"); exists {
		if isGuest, _ := c.Get("is_guest"); isGuest == true {
			if ownerID, ok := ownerRaw.(string); ok && h.onGuestLogout != nil {
				h.onGuestLogout(ownerID)
			}
		}
	}
	// JWT is stateless — the client just drops its tokens.
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ===============================
// Refresh
// ===============================

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}

// ===============================
// Forgot / Reset Password
// ===============================

type forgotReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		respondError(c, err)
		return
	}

	// Identical response whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{
		"message": "If the email is registered, you will receive a recovery link",
	})
}

type resetReq struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ResetPassword(req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
