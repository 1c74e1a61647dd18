package impl

import (
	"context"
	"log/slog"

	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// ListNotifications returns the caller's inbox, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, scope entity.AccessScope) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead marks one notification as read. A notification owned by someone
// else resolves to not-found at the repository layer.
func (srv *notificationService) MarkRead(ctx context.Context, scope entity.AccessScope, notificationID uuid.UUID) error {
	return srv.notificationRepo.MarkRead(ctx, scope, notificationID)
}
