package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditHandler exposes the audit trail for review. Admins see every entry;
// guardians only the entries their own actions produced.
type AuditHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		uc:     uc,
		logger: logger,
	}
}

type auditEntryResponse struct {
	ID        string `json:"id"`
	ActorID   string `json:"actor_id,omitempty"`
	Action    string `json:"action"`
	Outcome   string `json:"outcome"`
	Subject   string `json:"subject,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListRecent returns the newest audit entries visible to the caller.
func (h *AuditHandler) ListRecent(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		limit = min(parsed, maxAuditLimit)
	}

	entries, err := h.uc.ListRecent(c.Request().Context(), scope, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]auditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := auditEntryResponse{
			ID:        entry.ID.String(),
			Action:    entry.Action,
			Outcome:   entry.Outcome,
			Subject:   entry.Subject,
			ClientIP:  entry.ClientIP,
			Detail:    entry.Detail,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.ActorID != nil {
			item.ActorID = entry.ActorID.String()
		}
		resp = append(resp, item)
	}

	return response.Success(c, http.StatusOK, resp, "Audit entries retrieved successfully")
}
