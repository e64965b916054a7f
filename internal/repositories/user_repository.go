package repositories

import (
	"errors"

	"vitrine/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a unique constraint, such
// as two accounts racing for the same email.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// UpdateFields applies a partial update to the user record and returns the
	// fresh record. Zero values in the map clear the corresponding columns.
	UpdateFields(id string, fields map[string]interface{}) (*models.User, error)
}
