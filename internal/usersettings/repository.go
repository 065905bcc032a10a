package usersettings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

type Repository interface {
	FindByUserID(userID string) (*UserSettings, error)
	Save(settings *UserSettings) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) FindByUserID(userID string) (*UserSettings, error) {
	var s UserSettings
	err := r.db.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "settings not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to load settings", err)
	}
	return &s, nil
}

func (r *repository) Save(settings *UserSettings) error {
	if err := r.db.Save(settings).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "failed to save settings", err)
	}
	return nil
}
