package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the authentication identity. The Profile and all Destinations hang off it.
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Username       string `gorm:"size:150;not null;unique"`
	Email          string `gorm:"size:150"`
	HashedPassword []byte `gorm:"not null" json:"-"`
	Profile        *Profile
	Destinations   []Destination
}

// AfterSave keeps the Profile's cached username/email in step with the User on
// every persisted write, creation included. It runs inside the transaction of
// the triggering write, so a failed sync rolls that write back too.
func (u *User) AfterSave(tx *gorm.DB) error {
	return SyncProfile(tx, u)
}
