package services

import (
	"vitrine/internal/apperr"
	"vitrine/internal/models"
	"vitrine/internal/repositories"
)

// OfferService handles business logic related to offer listings.
type OfferService struct {
	repo repositories.OfferRepository
}

// NewOfferService creates a new OfferService.
func NewOfferService(repo repositories.OfferRepository) *OfferService {
	return &OfferService{
		repo: repo,
	}
}

// GetAllOffers retrieves all offers.
func (s *OfferService) GetAllOffers() ([]models.Offer, error) {
	return s.repo.GetAll()
}

// GetOfferByID retrieves a single offer by its ID.
func (s *OfferService) GetOfferByID(id string) (*models.Offer, error) {
	return s.repo.GetByID(id)
}

// GetOffersByUser retrieves all offers published by a user.
func (s *OfferService) GetOffersByUser(userID string) ([]models.Offer, error) {
	return s.repo.GetByUserID(userID)
}

// CreateOffer creates a new offer owned by the acting user.
func (s *OfferService) CreateOffer(userID string, offer *models.Offer) error {
	offer.UserID = userID
	return s.repo.Create(offer)
}

// UpdateOffer updates an existing offer. Only the owner may modify it.
func (s *OfferService) UpdateOffer(userID string, offer *models.Offer) error {
	existing, err := s.repo.GetByID(offer.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.Unauthorized("only the owner can modify this offer")
	}
	offer.UserID = existing.UserID
	return s.repo.Update(offer)
}

// DeleteOffer deletes an offer by its ID. Only the owner may delete it.
func (s *OfferService) DeleteOffer(userID, id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.Unauthorized("only the owner can delete this offer")
	}
	return s.repo.Delete(id)
}
