package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/service"
	mockSvc "vaxtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, entity.AccessScope, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured entity.AccessScope
	var reached bool
	next := func(c echo.Context) error {
		captured, reached = GetScope(c)

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, captured, reached
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Role:   entity.RoleGuardian,
	}, nil)

	rec, scope, reached := performAuth(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, userID, scope.UserID)
	assert.Equal(t, entity.RoleGuardian, scope.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, reached := performAuth(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, reached := performAuth(t, tokenSvc, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("stale").Return(nil, domainerrors.ErrTokenExpired)

	rec, _, reached := performAuth(t, tokenSvc, "Bearer stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("garbage").Return(nil, domainerrors.ErrTokenInvalid)

	rec, _, reached := performAuth(t, tokenSvc, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/drives", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(KeyAccessScope, entity.AccessScope{UserID: uuid.New(), Role: entity.RoleAdmin})

		err := m.RequireAdmin(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("guardian gets forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/drives", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(KeyAccessScope, entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian})

		err := m.RequireAdmin(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated gets unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/drives", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.RequireAdmin(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestScopeContextRoundTrip(t *testing.T) {
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := WithScope(req.Context(), scope)

	got, ok := ScopeFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, scope, got)
}
