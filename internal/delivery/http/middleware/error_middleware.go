package middleware

import (
	"log/slog"
	"net/http"

	"vaxtrack/internal/delivery/http/response"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Repository sentinels surface as the shared not-found error. This is
	// also where cross-tenant lookups land: a row owned by someone else is
	// indistinguishable from a row that does not exist.
	if isNotFoundSentinel(err) {
		err = domainerrors.ErrNotFound
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log error and return generic message. The
	// underlying cause stays in the log only.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &response.ErrorInfo{
			Code:    domainerrors.ErrInternalError.ErrorCode(),
			Details: "",
		},
	})
}

func isNotFoundSentinel(err error) bool {
	for _, sentinel := range []error{
		repository.ErrUserNotFound,
		repository.ErrRefreshTokenNotFound,
		repository.ErrChildNotFound,
		repository.ErrRecordNotFound,
		repository.ErrDriveNotFound,
		repository.ErrNotificationNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
