// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and token handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register handles the guardian registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash never leaves the server.
	return response.Success(c, http.StatusCreated, userResponse{
		ID:    output.User.ID.String(),
		Name:  output.User.Name,
		Email: output.User.Email,
		Role:  output.User.Role.String(),
	}, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *userResponse `json:"user,omitempty"`
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
		User: &userResponse{
			ID:    output.User.ID.String(),
			Name:  output.User.Name,
			Email: output.User.Email,
			Role:  output.User.Role.String(),
		},
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles the token rotation request. A reused refresh token comes
// back 401 with its lineage already revoked.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
		ClientIP:     c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
	}, "Token refreshed successfully")
}

// Logout handles the user logout request. Always 200: logout is idempotent.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
		ClientIP:     c.RealIP(),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

type profileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DeviceToken string `json:"device_token,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// GetMe returns the authenticated user's account and guardian profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetMe(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := profileResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	}
	if user.GuardianProfile != nil {
		resp.Phone = user.GuardianProfile.Phone
		resp.Address = user.GuardianProfile.Address
		resp.DeviceToken = user.GuardianProfile.DeviceToken
		resp.Locale = user.GuardianProfile.Locale
	}

	return response.Success(c, http.StatusOK, resp, "Profile retrieved successfully")
}

type updateProfileRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	DeviceToken string `json:"device_token" validate:"omitempty,max=512"`
	Locale      string `json:"locale" validate:"omitempty,max=16"`
}

// UpdateProfile updates the caller's display name and guardian contact data.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		Scope:       scope,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		DeviceToken: req.DeviceToken,
		Locale:      req.Locale,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := profileResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	}
	if user.GuardianProfile != nil {
		resp.Phone = user.GuardianProfile.Phone
		resp.Address = user.GuardianProfile.Address
		resp.DeviceToken = user.GuardianProfile.DeviceToken
		resp.Locale = user.GuardianProfile.Locale
	}

	return response.Success(c, http.StatusOK, resp, "Profile updated successfully")
}

// DeleteAccount soft-deletes the caller's account and ends every session.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), scope, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}
