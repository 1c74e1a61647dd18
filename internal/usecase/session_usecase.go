// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
// A session is one refresh token lineage; revoking it invalidates every
// refresh token ever rotated within it.
type SessionUsecase interface {
	GetActiveSessions(ctx context.Context, scope entity.AccessScope) ([]*entity.SessionInfo, error)
	RevokeSession(ctx context.Context, scope entity.AccessScope, sessionID uuid.UUID) error
	RevokeAllSessions(ctx context.Context, scope entity.AccessScope) error

	// CleanupExpiredSessions prunes lineages past their expiry. Run
	// periodically; returns the number of rows removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
