package repositories

import (
	"fmt"
	"sync"

	"vitrine/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// UpdateFields applies a partial update to the stored user. Only the column
// names used by the services are recognized.
func (r *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}

	for column, value := range fields {
		s, _ := value.(string)
		switch column {
		case "nome":
			user.Nome = s
		case "telefone":
			user.Telefone = s
		case "cidade":
			user.Cidade = s
		case "estado":
			user.Estado = s
		case "email":
			user.Email = s
		case "avatar":
			user.Avatar = s
		case "avatar_public_id":
			user.AvatarPublicID = s
		case "avatar_blurhash":
			user.AvatarBlurhash = s
		case "cpf":
			user.CPF = s
		case "cnpj":
			user.CNPJ = s
		case "razao_social":
			user.RazaoSocial = s
		case "nome_fantasia":
			user.NomeFantasia = s
		default:
			return nil, fmt.Errorf("unknown column %s in update for user %s", column, id)
		}
	}

	r.users[id] = user
	return &user, nil
}
