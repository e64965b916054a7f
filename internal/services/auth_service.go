package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vitrine/internal/apperr"
	"vitrine/internal/models"
	"vitrine/internal/repositories"
	"vitrine/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser registers a new user, hashes their password, and saves them to
// the database. The document fields required depend on the account kind: PF
// accounts must carry a CPF that passes the checksum, PJ accounts a CNPJ plus
// razão social and nome fantasia.
func (s *AuthService) RegisterUser(user *models.User) error {
	nome, err := validation.Name(user.Nome)
	if err != nil {
		return err
	}
	user.Nome = nome

	// Stored emails are always lower-cased and trimmed, same as on email change.
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	switch user.TipoPessoa {
	case models.PessoaFisica:
		if !validation.ValidCPF(user.CPF) {
			return apperr.Validation("cpf", apperr.ReasonInvalidFormat, "cpf is not a valid document number")
		}
		user.CPF = validation.OnlyDigits(user.CPF)
	case models.PessoaJuridica:
		if !validation.ValidCNPJ(user.CNPJ) {
			return apperr.Validation("cnpj", apperr.ReasonInvalidFormat, "cnpj must have at least 14 digits")
		}
		if user.RazaoSocial == "" {
			return apperr.Validation("razaoSocial", apperr.ReasonTooShort, "razão social is required for PJ accounts")
		}
		if user.NomeFantasia == "" {
			return apperr.Validation("nomeFantasia", apperr.ReasonTooShort, "nome fantasia is required for PJ accounts")
		}
	default:
		return apperr.Validation("tipoPessoa", apperr.ReasonInvalidFormat, "tipoPessoa must be PF or PJ")
	}

	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return apperr.Conflict(fmt.Sprintf("email '%s' already registered", user.Email))
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// A concurrent registration can slip past the pre-check and hit
			// the unique index instead.
			return apperr.Conflict(fmt.Sprintf("email '%s' already registered", user.Email))
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user by email and returns a JWT token if successful.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	// Generate JWT token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"tipo_pessoa": string(user.TipoPessoa),
		"exp":         time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":         time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
