package auth

import (
	"testing"

	domainerrors "vaxtrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	strong := "StrongPhrase123!"
	hash, err := hasher.Hash(strong)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strong, hash)

	assert.True(t, hasher.Check(strong, hash))
	assert.False(t, hasher.Check("WrongPhrase123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(strong, "invalid_hash"))
}

func TestBcryptHasher_HashRejectsWeakPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	weakPasswords := []string{
		"123",            // Too short
		"Password123!",   // Forbidden word
		"STRONGPHRASE1!", // No lowercase
		"strongphrase1!", // No uppercase
		"StrongPhrase!",  // No numbers
		"StrongPhrase1",  // No special characters
	}

	for _, weak := range weakPasswords {
		_, err := hasher.Hash(weak)
		assert.Error(t, err, "expected error for weak password: %s", weak)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	validPasswords := []string{
		"StrongPhrase123!",
		"MySecure@Word1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "expected valid: %s", password)
	}

	// Unicode letters count like any other letter.
	assert.NoError(t, hasher.ValidatePasswordStrength("Pässphräse123!"))

	// Special characters alone are not enough.
	assert.Error(t, hasher.ValidatePasswordStrength("!@#$%^&*()"))

	// Empty password fails on length.
	assert.Error(t, hasher.ValidatePasswordStrength(""))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("StrongPhrase123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_ForbiddenWords(t *testing.T) {
	hasher := &bcryptHasher{cost: bcrypt.MinCost, policy: defaultPolicy}

	word, found := findForbiddenWord("MyPassword123!")
	assert.True(t, found)
	assert.Equal(t, "password", word)

	word, found = findForbiddenWord("AdminUser99!")
	assert.True(t, found)
	assert.Equal(t, "admin", word)

	_, found = findForbiddenWord("SecurePhrase123!")
	assert.False(t, found)

	assert.ErrorIs(t, hasher.ValidatePasswordStrength("MyAdmin123!"), domainerrors.ErrPasswordStrength)
}
