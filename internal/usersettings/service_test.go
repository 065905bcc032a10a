package usersettings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/auth"
)

func newTestService(t *testing.T) (*Service, auth.Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.User{}, &UserSettings{}))

	users := auth.NewRepository(db)
	return NewService(NewRepository(db), users), users
}

func seedUser(t *testing.T, users auth.Repository) *auth.User {
	t.Helper()
	user := &auth.User{
		ID:          uuid.NewString(),
		Email:       "jo@example.com",
		Name:        "Jo",
		ProfileName: "Jo",
	}
	require.NoError(t, users.Create(user))
	return user
}

func TestGetPaletteDefaultsWhenUnset(t *testing.T) {
	svc, users := newTestService(t)
	user := seedUser(t, users)

	palette, err := svc.GetPalette(user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), palette)
}

func TestUpdateAndGetPalette(t *testing.T) {
	svc, users := newTestService(t)
	user := seedUser(t, users)

	custom := []ColorTag{
		{Name: "Stage", Color: "#112233"},
		{Name: "Rehearsal", Color: "#445566"},
	}

	saved, err := svc.UpdatePalette(user.ID, custom)
	require.NoError(t, err)
	assert.Equal(t, custom, saved)

	palette, err := svc.GetPalette(user.ID)
	require.NoError(t, err)
	assert.Equal(t, custom, palette)

	// A second update overwrites the same row.
	next := []ColorTag{{Name: "Only", Color: "#778899"}}
	_, err = svc.UpdatePalette(user.ID, next)
	require.NoError(t, err)

	palette, err = svc.GetPalette(user.ID)
	require.NoError(t, err)
	assert.Equal(t, next, palette)
}

func TestUpdatePaletteValidation(t *testing.T) {
	svc, users := newTestService(t)
	user := seedUser(t, users)

	_, err := svc.UpdatePalette(user.ID, nil)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.UpdatePalette(user.ID, []ColorTag{{Name: "NoColor"}})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestGuestsGetDefaultsAndCannotSave(t *testing.T) {
	svc, _ := newTestService(t)

	palette, err := svc.GetPalette("guest-1718000000000")
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), palette)

	_, err = svc.UpdatePalette("guest-1718000000000", []ColorTag{{Name: "x", Color: "#111111"}})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	profile, err := svc.GetProfile("guest-1718000000000")
	require.NoError(t, err)
	assert.Equal(t, "Guest", profile.ProfileName)

	name := "Nope"
	_, err = svc.UpdateProfile("guest-1718000000000", &UpdateProfileRequest{ProfileName: &name})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	svc, users := newTestService(t)
	user := seedUser(t, users)

	name := "DJ Jo"
	profile, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{ProfileName: &name})
	require.NoError(t, err)
	assert.Equal(t, "DJ Jo", profile.ProfileName)
	assert.Equal(t, "jo@example.com", profile.Email)

	require.NoError(t, svc.SetProfileImage(user.ID, "http://localhost:8080/uploads/u1/me.png"))

	profile, err = svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "DJ Jo", profile.ProfileName)
	assert.Equal(t, "http://localhost:8080/uploads/u1/me.png", profile.ProfileImage)
}
