// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vaxtrack/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new guardian account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	ClientIP string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
	ClientIP     string
}

// LogoutInput carries the raw refresh token whose lineage should end.
type LogoutInput struct {
	RefreshToken string
	ClientIP     string
}

// UpdateProfileInput defines the editable guardian profile fields.
type UpdateProfileInput struct {
	Scope       entity.AccessScope
	Name        string
	Phone       string
	Address     string
	DeviceToken string
	Locale      string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token pair after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Access token lifetime in seconds.
	User         *entity.User
}

// RefreshOutput returns the rotated token pair. Both tokens are always new:
// the presented refresh token is dead the moment rotation succeeds.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// UserUsecase defines the interface for account and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates the presented refresh token. A token that was already
	// rotated is treated as stolen: the whole lineage is revoked and
	// ErrRefreshTokenReused is returned.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout revokes the lineage of the presented refresh token. Invalid
	// tokens still succeed; logout is idempotent.
	Logout(ctx context.Context, input *LogoutInput) error

	GetMe(ctx context.Context, scope entity.AccessScope) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount soft-deletes the account and revokes every session.
	DeleteAccount(ctx context.Context, scope entity.AccessScope, clientIP string) error
}
