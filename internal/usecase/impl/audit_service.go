// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements both AuditRecorder and AuditUsecase. Entries are
// written to PostgreSQL as the authoritative record and exported to the
// Pub/Sub sink for downstream consumers.
type auditService struct {
	auditRepo repository.AuditRepository
	publisher service.AuditPublisher
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for auditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditRepository
	Publisher service.AuditPublisher
	Logger    *slog.Logger
}

// AuditServiceResult groups the two interfaces auditService satisfies.
type AuditServiceResult struct {
	fx.Out

	Recorder usecase.AuditRecorder
	Usecase  usecase.AuditUsecase
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) AuditServiceResult {
	svc := &auditService{
		auditRepo: params.AuditRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}

	return AuditServiceResult{Recorder: svc, Usecase: svc}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends one entry and exports it. Best-effort on both legs: a failed
// append or export is logged, never returned, so the audited operation's
// outcome is unaffected.
func (srv *auditService) Record(ctx context.Context, entry *entity.AuditEntry) {
	if err := srv.auditRepo.Append(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to append audit entry",
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)

		return
	}

	event := &service.AuditEvent{
		EntryID:   entry.ID.String(),
		Action:    entry.Action,
		Outcome:   entry.Outcome,
		Subject:   entry.Subject,
		ClientIP:  entry.ClientIP,
		Detail:    entry.Detail,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if entry.ActorID != nil {
		event.ActorID = entry.ActorID.String()
	}

	if err := srv.publisher.PublishAuditEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to export audit event",
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)
	}
}

// ListRecent retrieves the newest audit entries visible to the scope.
func (srv *auditService) ListRecent(ctx context.Context, scope entity.AccessScope, limit int) ([]*entity.AuditEntry, error) {
	entries, err := srv.auditRepo.ListRecent(ctx, scope, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list audit entries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return entries, nil
}
