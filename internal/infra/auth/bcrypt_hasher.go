// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"vaxtrack/config"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/service"
)

// Words that must not appear anywhere in a password, case-insensitively.
var forbiddenWords = []string{"password", "admin", "vaxtrack", "qwerty", "123456"}

// defaultPolicy applies when no password strength section is configured.
var defaultPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        128,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and strength policy come from configuration, with sane defaults.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPolicy
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the
// default strength policy. Useful for tests where a low cost keeps them fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, policy: defaultPolicy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password is validated against the strength policy first.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength rejects passwords that fail the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}
	if h.policy.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs an uppercase letter")
	}
	if h.policy.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a lowercase letter")
	}
	if h.policy.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a digit")
	}
	if h.policy.RequireSpecial && !containsFunc(password, isSpecialChar) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a special character")
	}
	if word, found := findForbiddenWord(password); found {
		return domainerrors.ErrPasswordStrength.WithDetails("password contains forbidden word: " + word)
	}

	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}

	return false
}

func isSpecialChar(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}

func findForbiddenWord(password string) (string, bool) {
	lowered := strings.ToLower(password)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, word) {
			return word, true
		}
	}

	return "", false
}
