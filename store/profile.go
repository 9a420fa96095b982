package store

import (
	"errors"

	"gorm.io/gorm"

	"wanderlist/models"
)

// Profiles persists per-user profile data.
type Profiles struct {
	db *gorm.DB
}

func NewProfiles(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

// Ensure returns the profile for userID, lazily creating it when missing
// (covers accounts that predate the auto-provisioning hook).
func (s *Profiles) Ensure(userID uint) (*models.Profile, error) {
	var p *models.Profile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var err error
		p, err = models.EnsureProfile(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetPicture records the stored path of the user's profile picture.
func (s *Profiles) SetPicture(userID uint, path string) (*models.Profile, error) {
	p, err := s.Ensure(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(p).Update("picture", path).Error; err != nil {
		return nil, err
	}
	return p, nil
}
