package event

import (
	"context"
	"time"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// DefaultColor is used when a create request carries no color.
const DefaultColor = "#3B82F6"

// Service wraps validation and store selection for calendar events.
// Registered users hit the database store; guest sessions hit the
// in-memory store behind the same contract.
type Service struct {
	Users  Store
	Guests Store

	// OnChange is invoked after every successful mutation so the
	// reminder scheduler can re-arm against the fresh event list.
	OnChange func(ownerID string)
}

func NewService(users, guests Store) *Service {
	return &Service{Users: users, Guests: guests}
}

// storeFor picks the backing store from the owner marker.
func (s *Service) storeFor(ownerID string) Store {
	if IsGuestOwner(ownerID) {
		return s.Guests
	}
	return s.Users
}

func (s *Service) notifyChange(ownerID string) {
	if s.OnChange != nil {
		s.OnChange(ownerID)
	}
}

// ===========================
// 📄 List Events
func (s *Service) List(ctx context.Context, ownerID string) ([]Event, error) {
	if ownerID == "" {
		return nil, apperr.New(apperr.Validation, "owner is required")
	}
	return s.storeFor(ownerID).List(ctx, ownerID)
}

// ===========================
// 🎯 Create Event
func (s *Service) Create(ctx context.Context, ownerID string, req *CreateEventRequest) (*Event, error) {
	if ownerID == "" {
		return nil, apperr.New(apperr.Validation, "owner is required")
	}
	if req.Title == "" {
		return nil, apperr.New(apperr.Validation, "title is required")
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateTime(req.Time); err != nil {
		return nil, err
	}
	if req.Color == "" {
		req.Color = DefaultColor
	}

	e, err := s.storeFor(ownerID).Create(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}
	s.notifyChange(ownerID)
	return e, nil
}

// ===========================
// 🛠 Update Event
func (s *Service) Update(ctx context.Context, id, ownerID string, req *UpdateEventRequest) (*Event, error) {
	if ownerID == "" {
		return nil, apperr.New(apperr.Validation, "owner is required")
	}
	if req.Title != nil && *req.Title == "" {
		return nil, apperr.New(apperr.Validation, "title cannot be empty")
	}
	if req.Date != nil {
		if err := validateDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Time != nil {
		if err := validateTime(*req.Time); err != nil {
			return nil, err
		}
	}

	e, err := s.storeFor(ownerID).Update(ctx, id, ownerID, req)
	if err != nil {
		return nil, err
	}
	s.notifyChange(ownerID)
	return e, nil
}

// ===========================
// ❌ Delete Event
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return apperr.New(apperr.Validation, "owner is required")
	}
	if err := s.storeFor(ownerID).Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.notifyChange(ownerID)
	return nil
}

// ===========================
// 🧹 Clear All Events (reset all)
func (s *Service) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, apperr.New(apperr.Validation, "owner is required")
	}
	n, err := s.storeFor(ownerID).DeleteAll(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	s.notifyChange(ownerID)
	return n, nil
}

func validateDate(raw string) error {
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return apperr.New(apperr.Validation, "invalid date format. Use YYYY-MM-DD")
	}
	return nil
}

func validateTime(raw string) error {
	if _, err := time.Parse("15:04", raw); err != nil {
		return apperr.New(apperr.Validation, "invalid time format. Use HH:MM in 24-hour format")
	}
	return nil
}
