package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profile holds per-user display data (one-to-one with User). Username and
// Email are cached copies of the owning User's fields; SyncProfile overwrites
// them whenever the User is saved, so they are never edited directly.
type Profile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint   `gorm:"uniqueIndex;not null"` // one-to-one relation
	Username  string `gorm:"size:150"`
	Email     string `gorm:"size:150"`
	Picture   string `gorm:"size:512"` // stored path of the profile picture, empty if none
}

// EnsureProfile fetches the profile for user, creating an empty one if it does
// not exist yet. Safe to call repeatedly and from concurrent requests: the
// unique index on user_id makes the create path lose a race at most once, in
// which case the winner's row is fetched instead.
func EnsureProfile(tx *gorm.DB, user *User) (*Profile, error) {
	var p Profile
	err := tx.Where("user_id = ?", user.ID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = Profile{UserID: user.ID, Username: user.Username, Email: user.Email}
	// ON CONFLICT DO NOTHING rather than a plain insert: this always runs
	// inside the caller's transaction, and on Postgres a raw unique-violation
	// failure would abort that transaction and take the follow-up fetch (and
	// the triggering user write) down with it.
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// lost the race; use the winner's row
		p = Profile{}
		if err := tx.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// SyncProfile guarantees the profile exists and overwrites its cached
// username/email from the user. Invoked by the User AfterSave hook.
func SyncProfile(tx *gorm.DB, user *User) error {
	p, err := EnsureProfile(tx, user)
	if err != nil {
		return err
	}
	if p.Username == user.Username && p.Email == user.Email {
		return nil
	}
	return tx.Model(p).Updates(map[string]any{
		"username": user.Username,
		"email":    user.Email,
	}).Error
}
