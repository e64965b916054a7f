package repositories

import (
	"fmt"
	"sync"

	"vitrine/internal/models"

	"github.com/google/uuid"
)

// MockOfferRepository is an in-memory implementation of OfferRepository.
type MockOfferRepository struct {
	offers map[string]models.Offer
	mu     sync.RWMutex
}

// NewMockOfferRepository creates a new instance of MockOfferRepository.
func NewMockOfferRepository() *MockOfferRepository {
	return &MockOfferRepository{
		offers: make(map[string]models.Offer),
	}
}

// GetAll returns all offers.
func (r *MockOfferRepository) GetAll() ([]models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offerList := make([]models.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		offerList = append(offerList, o)
	}
	return offerList, nil
}

// GetByID returns an offer by its ID.
func (r *MockOfferRepository) GetByID(id string) (*models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[id]
	if !ok {
		return nil, fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}
	return &offer, nil
}

// GetByUserID returns all offers published by a user.
func (r *MockOfferRepository) GetByUserID(userID string) ([]models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var offerList []models.Offer
	for _, o := range r.offers {
		if o.UserID == userID {
			offerList = append(offerList, o)
		}
	}
	return offerList, nil
}

// Create adds a new offer.
func (r *MockOfferRepository) Create(offer *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	r.offers[offer.ID] = *offer
	return nil
}

// Update modifies an existing offer.
func (r *MockOfferRepository) Update(offer *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.offers[offer.ID]
	if !ok {
		return fmt.Errorf("offer with ID %s: %w", offer.ID, ErrNotFound)
	}
	r.offers[offer.ID] = *offer
	return nil
}

// Delete removes an offer by its ID.
func (r *MockOfferRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.offers[id]
	if !ok {
		return fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}
	delete(r.offers, id)
	return nil
}
