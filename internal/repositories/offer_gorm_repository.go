package repositories

import (
	"errors"
	"fmt"

	"vitrine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOfferRepository is a GORM implementation of OfferRepository.
type GORMOfferRepository struct {
	db *gorm.DB
}

// NewGORMOfferRepository creates a new instance of GORMOfferRepository.
func NewGORMOfferRepository(db *gorm.DB) *GORMOfferRepository {
	return &GORMOfferRepository{
		db: db,
	}
}

// GetAll retrieves all offers from the database.
func (r *GORMOfferRepository) GetAll() ([]models.Offer, error) {
	var offers []models.Offer
	if err := r.db.Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all offers: %w", err)
	}
	return offers, nil
}

// GetByID retrieves a single offer by its ID from the database.
func (r *GORMOfferRepository) GetByID(id string) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get offer by ID %s: %w", id, err)
	}
	return &offer, nil
}

// GetByUserID retrieves all offers published by a user.
func (r *GORMOfferRepository) GetByUserID(userID string) ([]models.Offer, error) {
	var offers []models.Offer
	if err := r.db.Find(&offers, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get offers for user %s: %w", userID, err)
	}
	return offers, nil
}

// Create creates a new offer in the database.
func (r *GORMOfferRepository) Create(offer *models.Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if err := r.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// Update modifies an existing offer in the database.
func (r *GORMOfferRepository) Update(offer *models.Offer) error {
	result := r.db.Model(&models.Offer{}).Where("id = ?", offer.ID).Updates(offer)
	if result.Error != nil {
		return fmt.Errorf("failed to update offer %s: %w", offer.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s: %w", offer.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an offer by its ID from the database.
func (r *GORMOfferRepository) Delete(id string) error {
	result := r.db.Delete(&models.Offer{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete offer %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
