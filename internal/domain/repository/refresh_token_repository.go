package repository

import (
	"context"
	"time"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshTokenRepository defines persistence operations for refresh token
// lineages. One row represents one login session; rotation swaps the stored
// hash in place.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByID returns the lineage regardless of its revoked/expired state so
	// callers can distinguish replay from plain invalidity.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// FindActiveByTokenHash returns the lineage currently bound to hash.
	// Revoked lineages yield ErrRefreshTokenNotFound, expired ones
	// ErrRefreshTokenExpired.
	FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RotateTokenHash atomically replaces oldHash with newHash on lineage id,
	// provided the lineage is unrevoked, unexpired, and still bound to
	// oldHash. It returns the number of rows updated: 1 on success, 0 when
	// the conditional check failed. Two concurrent rotations of the same
	// token therefore yield exactly one success.
	RotateTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash string, now time.Time) (int64, error)

	// Revoke marks the lineage invalid. Idempotent: revoking an already
	// revoked lineage keeps the first revocation record.
	Revoke(ctx context.Context, id uuid.UUID, reason string) error

	// RevokeByTokenHash revokes the lineage currently bound to hash.
	RevokeByTokenHash(ctx context.Context, tokenHash string, reason string) error

	// RevokeAllByUserID revokes every lineage belonging to the user.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID, reason string) error

	// FindByUserID returns the user's lineages, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// CountActiveByUserID returns the number of active lineages for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes lineages whose expiry has passed and returns the
	// number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
