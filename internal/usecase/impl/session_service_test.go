package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	mockRepo "vaxtrack/internal/mocks/repository"
	mockUC "vaxtrack/internal/mocks/usecase"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	audit            *mockUC.MockAuditRecorder
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	audit := mockUC.NewMockAuditRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSessionService(SessionServiceParams{
		RefreshTokenRepo: refreshTokenRepo,
		Audit:            audit,
		Logger:           logger,
	})

	return sessionServiceFixtures{
		service:          svc,
		refreshTokenRepo: refreshTokenRepo,
		audit:            audit,
	}
}

func TestSessionService_GetActiveSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	revokedAt := time.Now().Add(-time.Hour)

	lineages := []*entity.RefreshToken{
		{
			ID:        uuid.New(),
			UserID:    scope.UserID,
			ExpiresAt: time.Now().Add(time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    scope.UserID,
			ExpiresAt: time.Now().Add(time.Hour),
			RevokedAt: &revokedAt,
		},
		{
			ID:        uuid.New(),
			UserID:    scope.UserID,
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}

	fx.refreshTokenRepo.EXPECT().FindByUserID(ctx, scope.UserID).Return(lineages, nil)

	sessions, err := fx.service.GetActiveSessions(ctx, scope)

	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.True(t, sessions[0].IsActive)
	assert.False(t, sessions[1].IsActive) // revoked
	assert.False(t, sessions[2].IsActive) // expired
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{ID: sessionID, UserID: scope.UserID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.refreshTokenRepo.EXPECT().
		Revoke(ctx, sessionID, entity.RevokeReasonManual).
		Return(nil)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.RevokeSession(ctx, scope, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_OtherUsersSessionLooksMissing(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}, nil)

	err := fx.service.RevokeSession(ctx, scope, sessionID)

	require.Error(t, err)
	// Another user's session resolves to not-found, never forbidden.
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeSession_AdminMayRevokeAny(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleAdmin}
	sessionID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.refreshTokenRepo.EXPECT().
		Revoke(ctx, sessionID, entity.RevokeReasonManual).
		Return(nil)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.RevokeSession(ctx, scope, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.RevokeSession(ctx, scope, sessionID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}

	fx.refreshTokenRepo.EXPECT().
		RevokeAllByUserID(ctx, scope.UserID, entity.RevokeReasonManual).
		Return(nil)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.RevokeAllSessions(ctx, scope)

	require.NoError(t, err)
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(7), nil)

	removed, err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)
}
