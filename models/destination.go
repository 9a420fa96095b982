package models

import (
	"fmt"
	"time"
)

// Status classifies a destination on the user's list.
type Status string

const (
	StatusWishlist Status = "Wishlist"
	StatusVisited  Status = "Visited"
	StatusVacation Status = "Vacation"
)

// DefaultName is used when a destination is stored without an explicit name.
const DefaultName = "Unnamed Destination"

// ParseStatus validates a status value. The empty string maps to Wishlist.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusWishlist, nil
	case StatusWishlist, StatusVisited, StatusVacation:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Destination is one travel record, owned by exactly one user.
type Destination struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint    `gorm:"index;not null"`
	Name        string  `gorm:"size:255;not null;default:'Unnamed Destination'"`
	CountryCode *string `gorm:"size:2"` // ISO-3166 alpha-2, nil when not chosen
	City        *string `gorm:"size:100"`
	Status      Status  `gorm:"size:50;not null;default:'Wishlist'"`
}
