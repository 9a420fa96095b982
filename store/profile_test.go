package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wanderlist/models"
)

func TestProfilesEnsureLazyCreate(t *testing.T) {
	db := testDB(t)
	alice := makeUser(t, db, "alice")
	s := NewProfiles(db)

	// drop the hook-provisioned row to model an account that predates it
	require.NoError(t, db.Where("user_id = ?", alice.ID).Delete(&models.Profile{}).Error)

	p, err := s.Ensure(alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, p.UserID)
	require.Equal(t, "alice", p.Username)

	again, err := s.Ensure(alice.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, again.ID)
}

func TestProfilesEnsureUnknownUser(t *testing.T) {
	db := testDB(t)
	s := NewProfiles(db)

	_, err := s.Ensure(12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProfilesSetPicture(t *testing.T) {
	db := testDB(t)
	alice := makeUser(t, db, "alice")
	s := NewProfiles(db)

	p, err := s.SetPicture(alice.ID, "profile_pics/abc.jpg")
	require.NoError(t, err)
	require.Equal(t, "profile_pics/abc.jpg", p.Picture)

	var stored models.Profile
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&stored).Error)
	require.Equal(t, "profile_pics/abc.jpg", stored.Picture)
}
