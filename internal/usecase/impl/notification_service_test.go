package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"
	mockRepo "vaxtrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           logger,
	})

	return notificationServiceFixtures{
		service:          services,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_ListNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: scope.UserID, Kind: entity.NotificationKindDue, Title: "疫苗接種提醒：MMR"},
		{ID: uuid.New(), UserID: scope.UserID, Kind: entity.NotificationKindDrive, Title: "接種活動：流感疫苗"},
	}

	fx.notificationRepo.EXPECT().ListByUser(ctx, scope).Return(notifications, nil)

	got, err := fx.service.ListNotifications(ctx, scope)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, scope, notificationID).Return(nil)

	err := fx.service.MarkRead(ctx, scope, notificationID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_OtherUsersNotificationLooksMissing(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, scope, notificationID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, scope, notificationID)

	require.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
