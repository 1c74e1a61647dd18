// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for a user's notification feed.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, scope entity.AccessScope) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, scope entity.AccessScope, notificationID uuid.UUID) error
}
