package service

import (
	"time"

	"vaxtrack/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by both token types.
type Claims struct {
	UserID    uuid.UUID   // Parsed from the "sub" claim.
	Role      entity.Role // Only present on access tokens.
	SessionID uuid.UUID   // Rotation lineage id ("sid"), only on refresh tokens.
	TokenType string      // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// access/refresh token pair. Access and refresh tokens are signed with
// distinct secrets so one leaking never compromises the other.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair. The
	// refresh token embeds sessionID so rotation can locate its lineage.
	GenerateTokens(userID uuid.UUID, role entity.Role, sessionID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies signature, expiry and token type.
	// Returns domainerrors.ErrTokenExpired on lapsed expiry and
	// domainerrors.ErrTokenInvalid on any other defect.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken is ValidateAccessToken for the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the SHA-256 hex digest of a raw token. Only hashes
	// are ever persisted.
	HashToken(tokenString string) string

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
