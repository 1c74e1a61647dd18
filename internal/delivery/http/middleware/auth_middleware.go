package middleware

import (
	"context"
	"net/http"
	"strings"

	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyAccessScope is the echo.Context key under which the authenticated
	// scope is stored for handlers.
	KeyAccessScope = "accessScope"
)

type scopeContextKey struct{}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the resulting
// AccessScope on both the echo.Context and the request context. Scoped
// repositories read the scope from there, so an operation can never run
// without an authenticated identity attached.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return response.Unauthorized(c, domainerrors.ErrTokenExpired.ErrorCode(), "Access token has expired")
			}

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid access token")
		}

		scope := entity.AccessScope{UserID: claims.UserID, Role: claims.Role}
		c.Set(KeyAccessScope, scope)
		c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), scope)))

		return next(c)
	}
}

// RequireAdmin gates a route group on the admin capability. It must be used
// AFTER Authenticate. Shared resources use this; per-owner resources rely on
// repository scoping instead, where a foreign id resolves to not-found.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		scope, ok := GetScope(c)
		if !ok {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
		}

		if !scope.IsAdmin() {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Administrator capability required")
		}

		return next(c)
	}
}

// GetScope returns the authenticated scope stored by Authenticate.
func GetScope(c echo.Context) (entity.AccessScope, bool) {
	scope, ok := c.Get(KeyAccessScope).(entity.AccessScope)

	return scope, ok
}

// WithScope returns a context carrying the authenticated scope.
func WithScope(ctx context.Context, scope entity.AccessScope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

// ScopeFromContext returns the scope stored by WithScope.
func ScopeFromContext(ctx context.Context) (entity.AccessScope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(entity.AccessScope)

	return scope, ok
}

// MustScope is a handler helper: it returns the scope or fails with 401.
// Kept here so every handler resolves identity the same way.
func MustScope(c echo.Context) (entity.AccessScope, error) {
	scope, ok := GetScope(c)
	if !ok {
		return entity.AccessScope{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	return scope, nil
}
