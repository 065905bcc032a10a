package usersettings

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/auth"
	"github.com/makyelver-commits/eventor/internal/event"
)

// Service manages the per-user color palette and profile fields.
// Guests never touch the database: they get the default palette and
// have no profile to edit.
type Service struct {
	Repo  Repository
	Users auth.Repository
}

func NewService(repo Repository, users auth.Repository) *Service {
	return &Service{Repo: repo, Users: users}
}

// ===========================
// 🎨 Get Palette
func (s *Service) GetPalette(ownerID string) ([]ColorTag, error) {
	if event.IsGuestOwner(ownerID) {
		return DefaultPalette(), nil
	}

	settings, err := s.Repo.FindByUserID(ownerID)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return DefaultPalette(), nil
		}
		return nil, err
	}
	return settings.Palette(), nil
}

// ===========================
// 🎨 Update Palette
func (s *Service) UpdatePalette(ownerID string, tags []ColorTag) ([]ColorTag, error) {
	if event.IsGuestOwner(ownerID) {
		return nil, apperr.New(apperr.Validation, "guest sessions cannot save settings")
	}
	if len(tags) == 0 {
		return nil, apperr.New(apperr.Validation, "eventColors cannot be empty")
	}
	for _, t := range tags {
		if t.Color == "" {
			return nil, apperr.New(apperr.Validation, "every palette entry needs a color")
		}
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to encode palette", err)
	}

	settings, err := s.Repo.FindByUserID(ownerID)
	if err != nil {
		if apperr.KindOf(err) != apperr.NotFound {
			return nil, err
		}
		settings = &UserSettings{ID: uuid.NewString(), UserID: ownerID}
	}
	settings.EventColors = raw

	if err := s.Repo.Save(settings); err != nil {
		return nil, err
	}
	return tags, nil
}

// ===========================
// 👤 Get Profile
func (s *Service) GetProfile(ownerID string) (*ProfileResponse, error) {
	if event.IsGuestOwner(ownerID) {
		return &ProfileResponse{ProfileName: "Guest"}, nil
	}

	user, err := s.Users.FindByID(ownerID)
	if err != nil {
		return nil, err
	}
	name := user.ProfileName
	if name == "" {
		name = user.Name
	}
	return &ProfileResponse{
		ProfileName:  name,
		ProfileImage: user.ProfileImage,
		Email:        user.Email,
	}, nil
}

// ===========================
// 👤 Update Profile
func (s *Service) UpdateProfile(ownerID string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if event.IsGuestOwner(ownerID) {
		return nil, apperr.New(apperr.Validation, "guest sessions cannot save a profile")
	}

	user, err := s.Users.FindByID(ownerID)
	if err != nil {
		return nil, err
	}

	if req.ProfileName != nil {
		user.ProfileName = *req.ProfileName
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.Users.Update(user); err != nil {
		return nil, err
	}

	return &ProfileResponse{
		ProfileName:  user.ProfileName,
		ProfileImage: user.ProfileImage,
		Email:        user.Email,
	}, nil
}

// SetProfileImage stores an uploaded image URL on the user.
func (s *Service) SetProfileImage(ownerID, imageURL string) error {
	url := imageURL
	_, err := s.UpdateProfile(ownerID, &UpdateProfileRequest{ProfileImage: &url})
	return err
}
