package repositories_test

import (
	"errors"
	"testing"

	"vitrine/internal/models"
	"vitrine/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockUserRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	user := &models.User{
		Nome:       "Maria das Dores",
		Email:      "maria@example.com",
		TipoPessoa: models.PessoaFisica,
		CPF:        "11144477735",
	}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID, "Create should assign an ID")

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "maria@example.com", byID.Email)

	byEmail, err := repo.GetByEmail("maria@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestMockUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	assert.NoError(t, repo.Create(&models.User{Email: "maria@example.com"}))

	err := repo.Create(&models.User{Email: "maria@example.com"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrDuplicate))
}

func TestMockUserRepository_NotFound(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	_, err := repo.GetByID("missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repo.GetByEmail("nobody@example.com")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repo.UpdateFields("missing", map[string]interface{}{"nome": "Ana"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestMockUserRepository_UpdateFields(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	user := &models.User{
		Email:          "maria@example.com",
		Avatar:         "https://media.example.com/img-1.jpg",
		AvatarPublicID: "img-1",
		AvatarBlurhash: "LEHV6nWB2yk8",
	}
	assert.NoError(t, repo.Create(user))

	updated, err := repo.UpdateFields(user.ID, map[string]interface{}{
		"nome":     "Ana Clara",
		"telefone": "(11) 99999-9999",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Clara", updated.Nome)
	assert.Equal(t, "(11) 99999-9999", updated.Telefone)

	// Empty strings clear columns, matching the gorm map-update semantics
	cleared, err := repo.UpdateFields(user.ID, map[string]interface{}{
		"avatar":           "",
		"avatar_public_id": "",
		"avatar_blurhash":  "",
	})
	assert.NoError(t, err)
	assert.Empty(t, cleared.Avatar)
	assert.Empty(t, cleared.AvatarPublicID)
	assert.Empty(t, cleared.AvatarBlurhash)

	// The change is persisted, not just reflected in the return value
	fresh, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ana Clara", fresh.Nome)
	assert.False(t, fresh.HasAvatar())
}

func TestMockUserRepository_UpdateFieldsUnknownColumn(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	user := &models.User{Email: "maria@example.com"}
	assert.NoError(t, repo.Create(user))

	_, err := repo.UpdateFields(user.ID, map[string]interface{}{"senha": "x"})
	assert.Error(t, err)
}
