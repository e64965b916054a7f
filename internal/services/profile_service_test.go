package services_test

import (
	"errors"
	"testing"

	"vitrine/internal/apperr"
	"vitrine/internal/models"
	"vitrine/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestProfileService_UpdateName(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	updated := &models.User{ID: "user-123", Nome: "Maria das Dores"}

	// The persisted value is the normalized form
	mockRepo.On("UpdateFields", "user-123", map[string]interface{}{"nome": "Maria das Dores"}).
		Return(updated, nil).Once()

	user, err := service.UpdateName("user-123", "  Maria   das  Dores ")
	assert.NoError(t, err)
	assert.Equal(t, "Maria das Dores", user.Nome)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateName_InvalidNoWrite(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	_, err := service.UpdateName("user-123", "Maria 2")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Equal(t, apperr.ReasonInvalidCharacters, appErr.Reason)
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestProfileService_UpdatePhone(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	updated := &models.User{ID: "user-123", Telefone: "(11) 99999-9999"}
	mockRepo.On("UpdateFields", "user-123", map[string]interface{}{"telefone": "(11) 99999-9999"}).
		Return(updated, nil).Once()

	user, err := service.UpdatePhone("user-123", "(11) 99999-9999")
	assert.NoError(t, err)
	assert.Equal(t, "(11) 99999-9999", user.Telefone)
	mockRepo.AssertExpectations(t)

	// Missing punctuation is rejected without a write
	_, err = service.UpdatePhone("user-123", "11999999999")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateLocation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	updated := &models.User{ID: "user-123", Cidade: "São Paulo", Estado: "SP"}

	// cidade and estado are written as a unit, estado upper-cased
	mockRepo.On("UpdateFields", "user-123", map[string]interface{}{
		"cidade": "São Paulo",
		"estado": "SP",
	}).Return(updated, nil).Once()

	user, err := service.UpdateLocation("user-123", "São Paulo", "sp")
	assert.NoError(t, err)
	assert.Equal(t, "SP", user.Estado)
	mockRepo.AssertExpectations(t)

	// Invalid estado rejects the pair; nothing is stored
	_, err = service.UpdateLocation("user-123", "São Paulo", "XYZ")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "old@example.com", Password: string(hashed)}
	updated := &models.User{ID: "user-123", Email: "new@example.com", Password: string(hashed)}

	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("UpdateFields", "user-123", map[string]interface{}{"email": "new@example.com"}).
		Return(updated, nil).Once()

	user, err := service.UpdateEmail("user-123", " New@Example.com ", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "old@example.com", Password: string(hashed)}

	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()

	_, err := service.UpdateEmail("user-123", "new@example.com", "wrongpass")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindInvalidCredential, appErr.Kind)
	// The stored email must remain unchanged: no write happened
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail_Conflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "old@example.com", Password: string(hashed)}
	other := &models.User{ID: "user-456", Email: "new@example.com"}

	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(other, nil).Once()

	_, err := service.UpdateEmail("user-123", "new@example.com", "password123")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail_DuplicateOnWrite(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "old@example.com", Password: string(hashed)}

	// The other account registers between the availability check and the
	// write; the unique-index violation maps to Conflict, not Upstream
	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("UpdateFields", "user-123", map[string]interface{}{"email": "new@example.com"}).
		Return(nil, duplicateErr("user user-123")).Once()

	_, err := service.UpdateEmail("user-123", "new@example.com", "password123")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail_AvailabilityCheckFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "old@example.com", Password: string(hashed)}

	// A transport failure during the check must not read as "email free"
	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, errors.New("connection reset")).Once()

	_, err := service.UpdateEmail("user-123", "new@example.com", "password123")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindUpstream, appErr.Kind)
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateEmail_MissingCredentialShape(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	// A too-short current password is rejected before the user is even loaded
	_, err := service.UpdateEmail("user-123", "new@example.com", "123")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonMissingCredential, appErr.Reason)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestProfileService_GetChecklist(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	user := &models.User{ID: "user-123", TipoPessoa: models.PessoaFisica}
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()

	items, err := service.GetChecklist("user-123")
	assert.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, "avatar", items[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_NotFoundUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewProfileService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, notFoundErr("user")).Once()

	_, err := service.GetProfile("missing")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	mockRepo.AssertExpectations(t)
}
