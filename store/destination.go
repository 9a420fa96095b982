package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"wanderlist/models"
	"wanderlist/pkg/countries"
)

// Destinations persists travel records for their owning users.
type Destinations struct {
	db *gorm.DB
}

func NewDestinations(db *gorm.DB) *Destinations {
	return &Destinations{db: db}
}

// DestinationInput carries the user-editable fields of a destination.
// CountryCode and City may be empty; Status defaults to Wishlist when empty.
type DestinationInput struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Status      string `json:"status"`
}

// List returns all destinations owned by userID, most recently touched first
// (updated_at desc, then created_at desc). Never nil.
func (s *Destinations) List(userID uint) ([]models.Destination, error) {
	items := []models.Destination{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create validates in and persists a new destination owned by userID.
func (s *Destinations) Create(userID uint, in DestinationInput) (*models.Destination, error) {
	d, err := applyInput(&models.Destination{UserID: userID}, in)
	if err != nil {
		return nil, err
	}
	// Pin both timestamps to one instant so created_at == updated_at holds
	// exactly on fresh rows.
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := s.db.Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// GetOwned fetches a destination by id and owner in a single query. A row that
// exists but belongs to someone else yields the same ErrNotFound as a row that
// does not exist at all.
func (s *Destinations) GetOwned(userID, id uint) (*models.Destination, error) {
	return getOwned(s.db, userID, id)
}

// Update replaces the editable fields of an owned destination. The updated_at
// timestamp is refreshed even if nothing actually changed; id, owner and
// created_at are never touched.
func (s *Destinations) Update(userID, id uint, in DestinationInput) (*models.Destination, error) {
	var out *models.Destination
	err := s.db.Transaction(func(tx *gorm.DB) error {
		d, err := getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		if _, err := applyInput(d, in); err != nil {
			return err
		}
		// Save always rewrites updated_at, changed fields or not.
		if err := tx.Save(d).Error; err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete permanently removes an owned destination.
func (s *Destinations) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		d, err := getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		return tx.Delete(d).Error
	})
}

func getOwned(tx *gorm.DB, userID, id uint) (*models.Destination, error) {
	var d models.Destination
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// applyInput validates in and writes the editable fields onto d. Nothing is
// mutated on validation failure.
func applyInput(d *models.Destination, in DestinationInput) (*models.Destination, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fields["name"] = "name is required"
	}

	var cc *string
	if code := strings.TrimSpace(in.CountryCode); code != "" {
		if !countries.Valid(code) {
			fields["country_code"] = "unknown country code"
		} else {
			up := strings.ToUpper(code)
			cc = &up
		}
	}

	status, err := models.ParseStatus(strings.TrimSpace(in.Status))
	if err != nil {
		fields["status"] = "status must be Wishlist, Visited or Vacation"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var city *string
	if c := strings.TrimSpace(in.City); c != "" {
		city = &c
	}

	d.Name = name
	d.CountryCode = cc
	d.City = city
	d.Status = status
	return d, nil
}
