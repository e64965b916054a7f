package repositories

import (
	"vitrine/internal/models"
)

// OfferRepository defines the interface for offer data access.
type OfferRepository interface {
	GetAll() ([]models.Offer, error)
	GetByID(id string) (*models.Offer, error)
	GetByUserID(userID string) ([]models.Offer, error)
	Create(offer *models.Offer) error
	Update(offer *models.Offer) error
	Delete(id string) error
}
