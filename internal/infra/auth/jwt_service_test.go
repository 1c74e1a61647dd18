package auth

import (
	"testing"
	"time"

	"vaxtrack/config"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	sessionID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, entity.RoleGuardian, sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.RoleGuardian, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.TokenType)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, sessionID, refreshClaims.SessionID)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestJWTService_TokenTypeConfusionRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), entity.RoleAdmin, uuid.New())
	require.NoError(t, err)

	// A refresh token must never validate as an access token, and vice
	// versa. The secrets differ, so the signature check already fails.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), entity.RoleGuardian, uuid.New())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_RejectsSharedSecrets(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	hash := jwtService.HashToken("some-raw-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-raw-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-raw-token"))
}

func TestJWTService_Durations(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute * 5,
		RefreshTokenTTL: time.Hour * 24 * 14,
	}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Minute*5, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*14, jwtService.RefreshTokenDuration())
}

func TestJWTService_DefaultDurations(t *testing.T) {
	// No auth config at all: the fallback TTLs apply.
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*7, jwtService.RefreshTokenDuration())
}
