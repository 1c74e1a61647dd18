package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	audit            usecase.AuditRecorder
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Audit            usecase.AuditRecorder
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: params.RefreshTokenRepo,
		audit:            params.Audit,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions lists every lineage belonging to the caller, newest first.
// Revoked and expired lineages are included with IsActive false so clients
// can render session history.
func (srv *sessionService) GetActiveSessions(ctx context.Context, scope entity.AccessScope) ([]*entity.SessionInfo, error) {
	lineages, err := srv.refreshTokenRepo.FindByUserID(ctx, scope.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	now := time.Now()
	sessions := make([]*entity.SessionInfo, 0, len(lineages))
	for _, lineage := range lineages {
		sessions = append(sessions, &entity.SessionInfo{
			ID:        lineage.ID,
			UserID:    lineage.UserID,
			CreatedAt: lineage.CreatedAt,
			ExpiresAt: lineage.ExpiresAt,
			RotatedAt: lineage.RotatedAt,
			IsActive:  lineage.Active(now),
		})
	}

	return sessions, nil
}

// RevokeSession revokes a single lineage. Callers may only revoke their own
// sessions; a session belonging to someone else looks like it does not exist.
func (srv *sessionService) RevokeSession(ctx context.Context, scope entity.AccessScope, sessionID uuid.UUID) error {
	lineage, err := srv.refreshTokenRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("session not found")
		}

		return errors.Wrap(err, "failed to load session")
	}

	if lineage.UserID != scope.UserID && !scope.IsAdmin() {
		// Existence of another user's session is not disclosed.
		return domainerrors.ErrNotFound.WrapMessage("session not found")
	}

	if err := srv.refreshTokenRepo.Revoke(ctx, sessionID, entity.RevokeReasonManual); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	actorID := scope.UserID
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID: &actorID,
		Action:  entity.AuditActionRevoke,
		Outcome: entity.AuditOutcomeOK,
		Subject: "session:" + sessionID.String(),
	})
	srv.log(ctx).Info("Session revoked", slog.Any("sessionID", sessionID))

	return nil
}

// RevokeAllSessions revokes every active lineage of the caller.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, scope entity.AccessScope) error {
	if err := srv.refreshTokenRepo.RevokeAllByUserID(ctx, scope.UserID, entity.RevokeReasonManual); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	actorID := scope.UserID
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID: &actorID,
		Action:  entity.AuditActionRevoke,
		Outcome: entity.AuditOutcomeOK,
		Subject: "user:" + scope.UserID.String(),
		Detail:  "all sessions",
	})

	return nil
}

// CleanupExpiredSessions deletes lineages past expiry. Revoked rows are kept
// until they expire so reuse of a revoked token stays detectable.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}
