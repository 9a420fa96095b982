package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"wanderlist/models"
	"wanderlist/store"
)

// ErrUserExists is returned when the requested username is already taken.
var ErrUserExists = errors.New("user already exists")

// RegisterUser creates an account. The profile is provisioned automatically by
// the User save hook, inside the same transaction as the insert. Bad input
// yields a store.ValidationError, a taken username yields ErrUserExists.
func RegisterUser(username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return &store.ValidationError{Fields: map[string]string{"username": "username required"}}
	}
	if len(password) < 6 { // basic password policy
		return &store.ValidationError{Fields: map[string]string{"password": "password too short (min 6)"}}
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return ErrUserExists
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Username: username, Email: email, HashedPassword: hashedPassword}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Authenticate verifies the credential. Unknown user and wrong password are
// indistinguishable to the caller.
func Authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint")
}
