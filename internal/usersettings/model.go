package usersettings

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ColorTag is one named palette entry. The palette doubles as the
// default color for new events and the selectable set in the editor.
type ColorTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultPalette is used whenever a user has no stored palette.
func DefaultPalette() []ColorTag {
	return []ColorTag{
		{Name: "Blue", Color: "#3B82F6"},
		{Name: "Green", Color: "#10B981"},
		{Name: "Red", Color: "#EF4444"},
		{Name: "Purple", Color: "#8B5CF6"},
		{Name: "Orange", Color: "#F97316"},
		{Name: "Pink", Color: "#EC4899"},
	}
}

// ============================
// 🔷 GORM Settings Model
type UserSettings struct {
	ID          string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID      string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"userId"`
	EventColors datatypes.JSON `gorm:"type:jsonb" json:"eventColors"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Palette decodes the stored colors, falling back to the default set.
func (s *UserSettings) Palette() []ColorTag {
	if len(s.EventColors) == 0 {
		return DefaultPalette()
	}
	var tags []ColorTag
	if err := json.Unmarshal(s.EventColors, &tags); err != nil || len(tags) == 0 {
		return DefaultPalette()
	}
	return tags
}

// ============================
// 🟡 Requests
type UpdateSettingsRequest struct {
	EventColors []ColorTag `json:"eventColors" binding:"required,dive"`
}

type UpdateProfileRequest struct {
	ProfileName  *string `json:"profileName,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// ProfileResponse mirrors what the settings panel shows.
type ProfileResponse struct {
	ProfileName  string `json:"profileName"`
	ProfileImage string `json:"profileImage"`
	Email        string `json:"email"`
}
