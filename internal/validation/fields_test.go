package validation_test

import (
	"strings"
	"testing"

	"vitrine/internal/apperr"
	"vitrine/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestName_Normalization(t *testing.T) {
	// Extra internal, leading and trailing whitespace collapses to single spaces
	name, err := validation.Name("  Maria   das    Dores  ")
	assert.NoError(t, err)
	assert.Equal(t, "Maria das Dores", name)

	// Validating the output again yields the same output (idempotent)
	again, err := validation.Name(name)
	assert.NoError(t, err)
	assert.Equal(t, name, again)
}

func TestName_AcceptsAccentedLetters(t *testing.T) {
	name, err := validation.Name("Conceição Água")
	assert.NoError(t, err)
	assert.Equal(t, "Conceição Água", name)
}

func TestName_RejectsDigitsAndSymbols(t *testing.T) {
	for _, raw := range []string{"Maria 2", "John_Doe", "Ana-Clara", "a@b"} {
		_, err := validation.Name(raw)
		assert.Error(t, err, "expected rejection for %q", raw)
		appErr, ok := apperr.As(err)
		assert.True(t, ok)
		assert.Equal(t, apperr.ReasonInvalidCharacters, appErr.Reason)
	}
}

func TestName_LengthBoundaries(t *testing.T) {
	_, err := validation.Name("Jo")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonTooShort, appErr.Reason)

	name, err := validation.Name("Ana")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", name)

	fifty := strings.Repeat("ab cd ", 8) + "ef" // 50 characters
	name, err = validation.Name(fifty)
	assert.NoError(t, err)
	assert.Len(t, []rune(name), 50)

	_, err = validation.Name(strings.Repeat("a", 51))
	appErr, ok = apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonTooLong, appErr.Reason)
}

func TestPhone(t *testing.T) {
	for _, raw := range []string{"(11) 99999-9999", "(11) 9999-9999"} {
		phone, err := validation.Phone(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, phone)
	}

	for _, raw := range []string{"11999999999", "(1) 99999-9999", "(11) 999999-9999", "(11)99999-9999", ""} {
		_, err := validation.Phone(raw)
		assert.Error(t, err, "expected rejection for %q", raw)
		appErr, ok := apperr.As(err)
		assert.True(t, ok)
		assert.Equal(t, apperr.ReasonInvalidFormat, appErr.Reason)
	}
}

func TestLocation(t *testing.T) {
	cidade, estado, err := validation.Location(" São Paulo ", " sp ")
	assert.NoError(t, err)
	assert.Equal(t, "São Paulo", cidade)
	assert.Equal(t, "SP", estado)

	_, _, err = validation.Location("A", "SP")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonTooShort, appErr.Reason)
	assert.Equal(t, "cidade", appErr.Field)

	_, _, err = validation.Location(strings.Repeat("a", 51), "SP")
	appErr, ok = apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonTooLong, appErr.Reason)

	for _, estado := range []string{"S", "SPO", "S1", ""} {
		_, _, err := validation.Location("Recife", estado)
		assert.Error(t, err, "expected rejection for estado %q", estado)
		appErr, ok := apperr.As(err)
		assert.True(t, ok)
		assert.Equal(t, apperr.ReasonInvalidLength, appErr.Reason)
		assert.Equal(t, "estado", appErr.Field)
	}
}

func TestEmail(t *testing.T) {
	email, err := validation.Email("  User@Example.COM ", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)

	_, err = validation.Email("not-an-email", "secret123")
	appErr, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonInvalidFormat, appErr.Reason)

	// The current password is only checked for shape here
	_, err = validation.Email("user@example.com", "12345")
	appErr, ok = apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ReasonMissingCredential, appErr.Reason)
	assert.Equal(t, "currentPassword", appErr.Field)
}
