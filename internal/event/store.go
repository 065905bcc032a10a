package event

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// Store is the persistence contract shared by real users and guests.
// Update and Delete verify ownership before mutating; a mismatch is
// indistinguishable from a missing record.
type Store interface {
	List(ctx context.Context, ownerID string) ([]Event, error)
	Create(ctx context.Context, ownerID string, req *CreateEventRequest) (*Event, error)
	Update(ctx context.Context, id, ownerID string, req *UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteAll(ctx context.Context, ownerID string) (int64, error)
}

// ===========================
// 👻 Guest Store — per-session process memory. The whole collection is
// lost when the session ends; that is the disclosed guest trade-off.
type GuestStore struct {
	mu     sync.Mutex
	events map[string]Event // by event ID
	seq    int
}

func NewGuestStore() *GuestStore {
	return &GuestStore{events: make(map[string]Event)}
}

func (s *GuestStore) List(_ context.Context, ownerID string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, 0)
	for _, e := range s.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (s *GuestStore) Create(_ context.Context, ownerID string, req *CreateEventRequest) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Timestamp-derived ID with a sequence suffix so two creates in the
	// same millisecond never collide within a session.
	s.seq++
	now := time.Now()
	e := Event{
		ID:        fmt.Sprintf("guest-%d-%d", now.UnixMilli(), s.seq),
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
	s.events[e.ID] = e
	return &e, nil
}

func (s *GuestStore) Update(_ context.Context, id, ownerID string, req *UpdateEventRequest) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok || e.OwnerID != ownerID {
		return nil, apperr.New(apperr.NotFound, "event not found")
	}

	applyUpdate(&e, req)
	e.UpdatedAt = time.Now()
	s.events[id] = e
	return &e, nil
}

func (s *GuestStore) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok || e.OwnerID != ownerID {
		return apperr.New(apperr.NotFound, "event not found")
	}
	delete(s.events, id)
	return nil
}

func (s *GuestStore) DeleteAll(_ context.Context, ownerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, e := range s.events {
		if e.OwnerID == ownerID {
			delete(s.events, id)
			n++
		}
	}
	return n, nil
}

func applyUpdate(e *Event, req *UpdateEventRequest) {
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Time != nil {
		e.Time = *req.Time
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	if req.Color != nil {
		e.Color = *req.Color
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}
}
