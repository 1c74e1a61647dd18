package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/service"
	mockRepo "vaxtrack/internal/mocks/repository"
	mockSvc "vaxtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type auditServiceFixtures struct {
	result    AuditServiceResult
	auditRepo *mockRepo.MockAuditRepository
	publisher *mockSvc.MockAuditPublisher
}

func createTestAuditService(t *testing.T) auditServiceFixtures {
	auditRepo := mockRepo.NewMockAuditRepository(t)
	publisher := mockSvc.NewMockAuditPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	result := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return auditServiceFixtures{
		result:    result,
		auditRepo: auditRepo,
		publisher: publisher,
	}
}

func TestAuditService_Record_AppendsAndPublishes(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	actorID := uuid.New()
	entry := &entity.AuditEntry{
		ID:       uuid.New(),
		ActorID:  &actorID,
		Action:   entity.AuditActionLogin,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "session:" + uuid.NewString(),
		ClientIP: "203.0.113.9",
	}

	fx.auditRepo.EXPECT().Append(ctx, entry).Return(nil)
	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Run(func(ctx context.Context, event *service.AuditEvent) {
			assert.Equal(t, entry.ID.String(), event.EntryID)
			assert.Equal(t, actorID.String(), event.ActorID)
			assert.Equal(t, entity.AuditActionLogin, event.Action)
			assert.NotEmpty(t, event.EmittedAt)
		}).
		Return(nil)

	fx.result.Recorder.Record(ctx, entry)
}

func TestAuditService_Record_AppendFailureIsSwallowed(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	entry := &entity.AuditEntry{
		ID:      uuid.New(),
		Action:  entity.AuditActionRefresh,
		Outcome: entity.AuditOutcomeOK,
	}

	fx.auditRepo.EXPECT().Append(ctx, entry).Return(assert.AnError)

	// No publish when the append fails and no panic either; audit outages
	// must never affect the audited operation.
	fx.result.Recorder.Record(ctx, entry)
}

func TestAuditService_Record_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	entry := &entity.AuditEntry{
		ID:      uuid.New(),
		Action:  entity.AuditActionRefreshReused,
		Outcome: entity.AuditOutcomeDenied,
	}

	fx.auditRepo.EXPECT().Append(ctx, entry).Return(nil)
	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(assert.AnError)

	fx.result.Recorder.Record(ctx, entry)
}

func TestAuditService_ListRecent(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleAdmin}
	entries := []*entity.AuditEntry{
		{ID: uuid.New(), Action: entity.AuditActionLogin, Outcome: entity.AuditOutcomeOK},
	}

	fx.auditRepo.EXPECT().ListRecent(ctx, scope, 50).Return(entries, nil)

	got, err := fx.result.Usecase.ListRecent(ctx, scope, 50)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
