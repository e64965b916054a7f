package repositories_test

import (
	"errors"
	"testing"

	"vitrine/internal/models"
	"vitrine/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockOfferRepository_CRUD(t *testing.T) {
	repo := repositories.NewMockOfferRepository()

	offer := &models.Offer{
		UserID:      "user-123",
		Title:       "Aulas de violão",
		Description: "Aulas para iniciantes",
		Price:       80,
		Category:    "aulas",
	}
	assert.NoError(t, repo.Create(offer))
	assert.NotEmpty(t, offer.ID)

	got, err := repo.GetByID(offer.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Aulas de violão", got.Title)

	offer.Price = 90
	assert.NoError(t, repo.Update(offer))
	got, err = repo.GetByID(offer.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(90), got.Price)

	assert.NoError(t, repo.Delete(offer.ID))
	_, err = repo.GetByID(offer.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestMockOfferRepository_GetByUserID(t *testing.T) {
	repo := repositories.NewMockOfferRepository()

	assert.NoError(t, repo.Create(&models.Offer{UserID: "user-1", Title: "Aulas"}))
	assert.NoError(t, repo.Create(&models.Offer{UserID: "user-1", Title: "Consertos"}))
	assert.NoError(t, repo.Create(&models.Offer{UserID: "user-2", Title: "Fretes"}))

	mine, err := repo.GetByUserID("user-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMockOfferRepository_UpdateAndDeleteMissing(t *testing.T) {
	repo := repositories.NewMockOfferRepository()

	err := repo.Update(&models.Offer{ID: "missing"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	err = repo.Delete("missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}
