// Package handler contains the scheduled-task handlers of the worker process.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"vaxtrack/config"
	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// ReminderHandler serves the scheduled-task endpoints hit by Cloud Scheduler
// (or curl in development): the due-dose reminder sweep and the expired
// session cleanup.
type ReminderHandler struct {
	verifyTaskAuth     bool
	pushServiceAccount string
	logger             *slog.Logger
	reminderUC         usecase.ReminderUsecase
	sessionUC          usecase.SessionUsecase
}

// ReminderHandlerParams holds dependencies for the ReminderHandler.
type ReminderHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
	SessionUC  usecase.SessionUsecase
}

// NewReminderHandler creates the scheduled-task handler.
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	verifyTaskAuth := params.Config.Reminder != nil && params.Config.Reminder.VerifyPushToken
	var pushServiceAccount string
	if params.Config.Reminder != nil {
		pushServiceAccount = params.Config.Reminder.PushServiceAccount
	}

	return &ReminderHandler{
		verifyTaskAuth:     verifyTaskAuth,
		pushServiceAccount: pushServiceAccount,
		logger:             params.Logger,
		reminderUC:         params.ReminderUC,
		sessionUC:          params.SessionUC,
	}
}

// HandleReminderSweep runs one due-dose reminder sweep.
func (h *ReminderHandler) HandleReminderSweep(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyTaskAuth {
		if err := h.verifySchedulerToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid scheduler token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	output, err := h.reminderUC.SendDueReminders(ctx)
	if err != nil {
		logger.Error("[Worker] Reminder sweep failed", slog.Any("error", err))

		// 503 lets the scheduler retry the sweep.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, map[string]int{
		"children_scanned":   output.ChildrenScanned,
		"due_doses":          output.DueDoses,
		"notified_guardians": output.NotifiedGuardians,
		"push_success":       output.PushSuccess,
		"push_failure":       output.PushFailure,
	})
}

// HandleSessionCleanup prunes refresh token lineages past expiry.
func (h *ReminderHandler) HandleSessionCleanup(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyTaskAuth {
		if err := h.verifySchedulerToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid scheduler token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	deleted, err := h.sessionUC.CleanupExpiredSessions(ctx)
	if err != nil {
		logger.Error("[Worker] Session cleanup failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("[Worker] Session cleanup completed", slog.Int64("deleted", deleted))

	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// verifySchedulerToken verifies the OIDC token Cloud Scheduler attaches to
// task requests.
// Reference: https://cloud.google.com/scheduler/docs/http-target-auth
func (h *ReminderHandler) verifySchedulerToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if h.pushServiceAccount != "" {
		email, _ := payload.Claims["email"].(string)
		if email != h.pushServiceAccount {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
