package validation

import (
	"regexp"
	"strings"

	"vitrine/internal/apperr"
)

var (
	// Letters (including accented Latin ranges) and spaces only.
	nameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	// (DD) DDDD-DDDD or (DD) DDDDD-DDDD.
	phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Exactly two letters for the state code.
	estadoRe = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// Name trims the input, collapses internal whitespace runs to single spaces
// and checks length and character constraints. Returns the normalized name.
func Name(raw string) (string, error) {
	normalized := strings.Join(strings.Fields(raw), " ")
	runes := []rune(normalized)
	if len(runes) < 3 {
		return "", apperr.Validation("nome", apperr.ReasonTooShort, "nome must have at least 3 characters")
	}
	if len(runes) > 50 {
		return "", apperr.Validation("nome", apperr.ReasonTooLong, "nome must have at most 50 characters")
	}
	if !nameRe.MatchString(normalized) {
		return "", apperr.Validation("nome", apperr.ReasonInvalidCharacters, "nome must contain only letters and spaces")
	}
	return normalized, nil
}

// Phone trims the input and checks the canonical punctuation. The client is
// responsible for producing the mask; no normalization happens here.
func Phone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !phoneRe.MatchString(trimmed) {
		return "", apperr.Validation("telefone", apperr.ReasonInvalidFormat, "telefone must match the format (DD) DDDDD-DDDD")
	}
	return trimmed, nil
}

// Location validates the cidade/estado pair. Estado is upper-cased on output.
// Both values are validated together; a partial location is never accepted.
func Location(cidade, estado string) (string, string, error) {
	cidade = strings.TrimSpace(cidade)
	if len([]rune(cidade)) < 2 {
		return "", "", apperr.Validation("cidade", apperr.ReasonTooShort, "cidade must have at least 2 characters")
	}
	if len([]rune(cidade)) > 50 {
		return "", "", apperr.Validation("cidade", apperr.ReasonTooLong, "cidade must have at most 50 characters")
	}
	estado = strings.TrimSpace(estado)
	if !estadoRe.MatchString(estado) {
		return "", "", apperr.Validation("estado", apperr.ReasonInvalidLength, "estado must be exactly 2 letters")
	}
	return cidade, strings.ToUpper(estado), nil
}

// Email trims and lower-cases the address and checks its syntax. The
// accompanying current password is only checked for shape here; the actual
// credential comparison happens in the profile service.
func Email(rawEmail, currentPassword string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(rawEmail))
	if !emailRe.MatchString(email) {
		return "", apperr.Validation("email", apperr.ReasonInvalidFormat, "email must be a valid address")
	}
	if len(currentPassword) < 6 {
		return "", apperr.Validation("currentPassword", apperr.ReasonMissingCredential, "current password is required to change email")
	}
	return email, nil
}
