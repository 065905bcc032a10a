package event

import (
	"strings"
	"time"
)

// GuestPrefix marks owner IDs belonging to guest sessions. Guest data
// lives only in process memory and is wiped on guest logout.
const GuestPrefix = "guest-"

// IsGuestOwner reports whether an owner ID belongs to a guest session.
func IsGuestOwner(ownerID string) bool {
	return strings.HasPrefix(ownerID, GuestPrefix)
}

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"` // 🛠 "2006-01-02"
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`        // 🛠 "15:04"
	Location  string    `gorm:"type:text" json:"location"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Color     string    `gorm:"type:varchar(9);not null" json:"color"`
	ImageURL  string    `gorm:"type:text" json:"imageUrl"`
	OwnerID   string    `gorm:"type:varchar(64);not null;index" json:"ownerId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"` // 🛠 string format: "2006-01-02"
	Time     string `json:"time" binding:"required"` // 🛠 string format: "15:04"
	Location string `json:"location"`
	Notes    string `json:"notes"`
	Color    string `json:"color"`
	ImageURL string `json:"imageUrl"`
}

// ============================
// 🟠 Update Event Request — all fields optional; absent fields keep
// their previous value so a failed parse never half-applies.
type UpdateEventRequest struct {
	Title    *string `json:"title,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Color    *string `json:"color,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}
