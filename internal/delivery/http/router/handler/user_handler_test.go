package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/validator"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	mockusecase "vaxtrack/internal/mocks/usecase"
	"vaxtrack/internal/usecase"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	return e
}

func performJSON(e *echo.Echo, method, target, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(_ context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "Alice Wang", input.Name)
			assert.Equal(t, "alice@example.com", input.Email)
		}).
		Return(&usecase.RegisterOutput{
			User: &entity.User{
				ID:    userID,
				Name:  "Alice Wang",
				Email: "alice@example.com",
				Role:  entity.RoleGuardian,
			},
		}, nil)

	body := `{"name":"Alice Wang","email":"alice@example.com","password":"secret-password","phone":"0912345678"}`
	rec := performJSON(e, http.MethodPost, "/auth/register", body, h.Register)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), `"role":"guardian"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	body := `{"name":"Alice","email":"not-an-email","password":"secret"}`
	rec := performJSON(e, http.MethodPost, "/auth/register", body, h.Register)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Register")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong"}`
	rec := performJSON(e, http.MethodPost, "/auth/login", body, h.Login)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken:  "access.jwt",
			RefreshToken: "refresh.raw",
			ExpiresIn:    900,
			User: &entity.User{
				ID:    userID,
				Name:  "Alice Wang",
				Email: "alice@example.com",
				Role:  entity.RoleGuardian,
			},
		}, nil)

	body := `{"email":"alice@example.com","password":"secret-password"}`
	rec := performJSON(e, http.MethodPost, "/auth/login", body, h.Login)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access.jwt"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
	assert.Contains(t, rec.Body.String(), `"expires_in":900`)
}

func TestUserHandler_Refresh_ReusedTokenReturns401(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Refresh(mock.Anything, mock.AnythingOfType("*usecase.RefreshInput")).
		Return(nil, domainerrors.ErrRefreshTokenReused)

	body := `{"refresh_token":"already-rotated"}`
	rec := performJSON(e, http.MethodPost, "/auth/refresh", body, h.Refresh)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "REFRESH_TOKEN_REUSED")
}

func TestUserHandler_Logout_AlwaysSucceeds(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Logout(mock.Anything, mock.AnythingOfType("*usecase.LogoutInput")).Return(nil)

	body := `{"refresh_token":"whatever"}`
	rec := performJSON(e, http.MethodPost, "/auth/logout", body, h.Logout)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetMe_RequiresScope(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	rec := performJSON(e, http.MethodGet, "/me", "", h.GetMe)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "GetMe")
}

func TestUserHandler_GetMe_ReturnsProfile(t *testing.T) {
	e := newTestEcho(t)
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	scope := entity.AccessScope{UserID: userID, Role: entity.RoleGuardian}
	uc.EXPECT().GetMe(mock.Anything, scope).Return(&entity.User{
		ID:    userID,
		Name:  "Alice Wang",
		Email: "alice@example.com",
		Role:  entity.RoleGuardian,
		GuardianProfile: &entity.GuardianProfile{
			Phone:  "0912345678",
			Locale: "zh-TW",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyAccessScope, scope)
	if err := h.GetMe(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"phone":"0912345678"`)
	assert.Contains(t, rec.Body.String(), `"locale":"zh-TW"`)
}
