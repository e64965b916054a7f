package services

import (
	"errors"
	"fmt"
	"log"

	"vitrine/internal/apperr"
	"vitrine/internal/checklist"
	"vitrine/internal/models"
	"vitrine/internal/repositories"
	"vitrine/internal/validation"
	"vitrine/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// ProfileService handles business logic for single-field profile updates.
// Each operation validates its input, performs exactly one persistence write
// on success and none on failure.
type ProfileService struct {
	userRepo repositories.UserRepository
	mqClient rabbitmq.Publisher // nil when messaging is disabled
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repositories.UserRepository, mqClient rabbitmq.Publisher) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// GetProfile returns the current user record.
func (s *ProfileService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}
	return user, nil
}

// GetChecklist returns the derived profile-completeness checklist for the user.
func (s *ProfileService) GetChecklist(userID string) ([]models.ChecklistItem, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return checklist.Derive(user), nil
}

// UpdateName validates, normalizes and persists a new display name.
// Re-submitting the current name is a no-op change but still succeeds.
func (s *ProfileService) UpdateName(userID, rawName string) (*models.User, error) {
	nome, err := validation.Name(rawName)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateFields(userID, map[string]interface{}{"nome": nome})
	if err != nil {
		return nil, mapRepoError(err, "failed to update name")
	}

	s.publishEvent("profile.name_changed", userID, map[string]interface{}{"nome": nome})
	return user, nil
}

// UpdatePhone validates and persists a new phone number.
func (s *ProfileService) UpdatePhone(userID, rawPhone string) (*models.User, error) {
	telefone, err := validation.Phone(rawPhone)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateFields(userID, map[string]interface{}{"telefone": telefone})
	if err != nil {
		return nil, mapRepoError(err, "failed to update phone")
	}

	s.publishEvent("profile.phone_changed", userID, map[string]interface{}{"telefone": telefone})
	return user, nil
}

// UpdateLocation validates and persists the cidade/estado pair as a unit.
// A partial location is never stored.
func (s *ProfileService) UpdateLocation(userID, rawCidade, rawEstado string) (*models.User, error) {
	cidade, estado, err := validation.Location(rawCidade, rawEstado)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"cidade": cidade,
		"estado": estado,
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to update location")
	}

	s.publishEvent("profile.location_changed", userID, map[string]interface{}{
		"cidade": cidade,
		"estado": estado,
	})
	return user, nil
}

// UpdateEmail validates the new address, verifies the current password
// against the stored credential hash and persists the change. A wrong
// password leaves the stored email untouched.
func (s *ProfileService) UpdateEmail(userID, rawEmail, currentPassword string) (*models.User, error) {
	email, err := validation.Email(rawEmail, currentPassword)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, apperr.InvalidCredential("current password does not match")
	}

	existing, err := s.userRepo.GetByEmail(email)
	switch {
	case err == nil && existing != nil && existing.ID != userID:
		return nil, apperr.Conflict(fmt.Sprintf("email '%s' already registered", email))
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, apperr.Upstream("failed to check email availability", err)
	}

	updated, err := s.userRepo.UpdateFields(userID, map[string]interface{}{"email": email})
	if err != nil {
		return nil, mapRepoError(err, "failed to update email")
	}

	s.publishEvent("profile.email_changed", userID, map[string]interface{}{"email": email})
	return updated, nil
}

// publishEvent publishes a profile change event. Failures are logged and
// never propagated; the write has already happened.
func (s *ProfileService) publishEvent(eventType, userID string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProfileEvent(eventType, userID, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", eventType, userID, err)
	}
}

// mapRepoError translates repository errors into the domain taxonomy. A
// duplicate-key violation surfaces as Conflict so a registration racing the
// email-availability pre-check still gets the right answer.
func mapRepoError(err error, msg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound("user not found")
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperr.Conflict("email already registered")
	}
	return apperr.Upstream(msg, err)
}
