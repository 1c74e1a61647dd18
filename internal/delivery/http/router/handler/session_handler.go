package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes refresh token lineage management.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type sessionResponse struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	ExpiresAt string  `json:"expires_at"`
	RotatedAt *string `json:"rotated_at,omitempty"`
	IsActive  bool    `json:"is_active"`
}

// ListSessions returns the caller's sessions, active ones first.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.GetActiveSessions(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		item := sessionResponse{
			ID:        session.ID.String(),
			CreatedAt: session.CreatedAt.Format(time.RFC3339),
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
			IsActive:  session.IsActive,
		}
		if session.RotatedAt != nil {
			rotated := session.RotatedAt.Format(time.RFC3339)
			item.RotatedAt = &rotated
		}
		resp = append(resp, item)
	}

	return response.Success(c, http.StatusOK, resp, "Sessions retrieved successfully")
}

// RevokeSession ends one session. Another user's session id resolves to 404.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session id")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), scope, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked successfully")
}

// RevokeAllSessions ends every session of the caller, including the current one.
func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	if err := h.uc.RevokeAllSessions(c.Request().Context(), scope); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Sessions revoked successfully")
}
