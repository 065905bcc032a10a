package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/makyelver-commits/eventor/config"
	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/event"
	"github.com/makyelver-commits/eventor/utils"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Register(input RegisterInput) (*User, error)
	Login(input LoginInput) (*TokenPair, *User, error)
	GuestSession() (*TokenPair, string, error)
	Refresh(refreshToken string) (string, error)
	GetUserByID(userID string) (*User, error)

	// Password reset methods
	RequestPasswordReset(email string) error
	ResetPassword(token string, newPassword string) error
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config) Service {
	accessTTL := time.Duration(cfg.JWTAccessTTLHours) * time.Hour
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	refreshTTL := time.Duration(cfg.JWTRefreshTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &service{
		repo:          r,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (s *service) Register(in RegisterInput) (*User, error) {
	if !emailRe.MatchString(in.Email) {
		return nil, apperr.New(apperr.Validation, "invalid email format")
	}
	if len(in.Password) < 6 {
		return nil, apperr.New(apperr.Validation, "password must be at least 6 characters")
	}

	if _, err := s.repo.FindByEmail(in.Email); err == nil {
		return nil, apperr.New(apperr.Conflict, "this email is already registered")
	} else if apperr.KindOf(err) != apperr.NotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to hash password", err)
	}

	name := in.Name
	if name == "" {
		name = "User"
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		ProfileName:  name,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(in LoginInput) (*TokenPair, *User, error) {
	user, err := s.repo.FindByEmail(in.Email)
	if err != nil {
		// Same response as a wrong password: never disclose whether the
		// account exists.
		return nil, nil, apperr.New(apperr.Auth, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, apperr.New(apperr.Auth, "invalid credentials")
	}

	tokens, err := s.tokenPair(user.ID, false)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// =============================
// Guest Session
// =============================

// GuestSession issues a throwaway owner ID plus tokens. Guest events
// live only in process memory and are wiped on logout.
func (s *service) GuestSession() (*TokenPair, string, error) {
	guestID := fmt.Sprintf("%s%d", event.GuestPrefix, time.Now().UnixMilli())
	tokens, err := s.tokenPair(guestID, true)
	if err != nil {
		return nil, "", err
	}
	return tokens, guestID, nil
}

func (s *service) tokenPair(ownerID string, isGuest bool) (*TokenPair, error) {
	access, err := s.signToken(ownerID, isGuest, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to sign access token", err)
	}
	refresh, err := s.signToken(ownerID, isGuest, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to sign refresh token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) signToken(ownerID string, isGuest bool, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  ownerID,
		"is_guest": isGuest,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// =============================
// Refresh
// =============================

func (s *service) Refresh(refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperr.New(apperr.Auth, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return "", apperr.New(apperr.Auth, "invalid token claims")
	}

	ownerID, _ := claims["user_id"].(string)
	isGuest, _ := claims["is_guest"].(bool)

	if !isGuest {
		if _, err := s.repo.FindByID(ownerID); err != nil {
			return "", apperr.New(apperr.Auth, "user not found")
		}
	}

	return s.signToken(ownerID, isGuest, s.accessSecret, s.accessTTL)
}

// =============================
// Forgot Password
// =============================

// RequestPasswordReset always reports success so the endpoint cannot be
// used to enumerate accounts. The token is single-use with a 1h expiry.
func (s *service) RequestPasswordReset(email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil
	}

	resetToken := generateSecureToken()
	key := fmt.Sprintf("reset_token:%s", resetToken)

	if err := utils.SetToken(key, user.ID, time.Hour); err != nil {
		log.Printf("⚠️ Could not save reset token: %v", err)
		return nil
	}

	if err := utils.SendResetLink(user.Email, resetToken); err != nil {
		log.Printf("⚠️ Failed to send reset email: %v", err)
	}

	return nil
}

func (s *service) ResetPassword(token string, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.New(apperr.Validation, "password must be at least 6 characters")
	}

	key := fmt.Sprintf("reset_token:%s", token)
	userID, err := utils.GetToken(key)
	if err != nil {
		return apperr.New(apperr.Auth, "invalid or expired token")
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return apperr.New(apperr.Auth, "invalid or expired token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	if err := s.repo.Update(user); err != nil {
		return err
	}

	_ = utils.DeleteToken(key) // Single use

	return nil
}

// =============================
// Get User By ID
// =============================

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.FindByID(userID)
}

// =============================
// Helpers (for reset tokens)
// =============================

func generateSecureToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
