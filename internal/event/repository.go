package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// GormStore is the Store implementation backing registered users.
// Every gorm error is converted to an apperr kind before it escapes.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// ===========================
// 📄 List Events for an owner, date then time ascending
func (s *GormStore) List(ctx context.Context, ownerID string) ([]Event, error) {
	var events []Event
	err := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC, time ASC").
		Find(&events).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to list events", err)
	}
	return events, nil
}

// ===========================
// 🎯 Create Event
func (s *GormStore) Create(ctx context.Context, ownerID string, req *CreateEventRequest) (*Event, error) {
	now := time.Now()
	e := &Event{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Notes:     req.Notes,
		Color:     req.Color,
		ImageURL:  req.ImageURL,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.DB.WithContext(ctx).Create(e).Error; err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to create event", err)
	}
	return e, nil
}

// ===========================
// 🛠 Update Event (owner checked in the same lookup)
func (s *GormStore) Update(ctx context.Context, id, ownerID string, req *UpdateEventRequest) (*Event, error) {
	var e Event
	err := s.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "event not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to load event", err)
	}

	applyUpdate(&e, req)
	e.UpdatedAt = time.Now()

	if err := s.DB.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to update event", err)
	}
	return &e, nil
}

// ===========================
// ❌ Delete Event
func (s *GormStore) Delete(ctx context.Context, id, ownerID string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Event{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Upstream, "failed to delete event", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "event not found")
	}
	return nil
}

// ===========================
// 🧹 Delete All Events for an owner (reset all, irreversible)
func (s *GormStore) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&Event{})
	if res.Error != nil {
		return 0, apperr.Wrap(apperr.Upstream, "failed to clear events", res.Error)
	}
	return res.RowsAffected, nil
}
