package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID string) (*User, error)
	Update(user *User) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create a new user
func (r *repository) Create(user *User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "failed to create user", err)
	}
	return nil
}

// Find user by email (used in login & password reset)
func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to load user", err)
	}
	return &u, nil
}

// Find user by ID
func (r *repository) FindByID(userID string) (*User, error) {
	var u User
	err := r.db.First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to load user", err)
	}
	return &u, nil
}

// Update an existing user
func (r *repository) Update(user *User) error {
	if err := r.db.Save(user).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "failed to update user", err)
	}
	return nil
}
