// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 500

// notificationRepository implements the domain's NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists one notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CreateBatch persists notifications for many users in chunks, used when a
// drive announcement fans out.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		models = append(models, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, notificationBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	return nil
}

// ListByUser retrieves the scope owner's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, scope entity.AccessScope) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", scope.UserID).
		Order("created_at DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, toNotificationDomain(&notificationModels[i]))
	}

	return notifications, nil
}

// MarkRead stamps read_at on a notification the scope owns. Someone else's
// notification is indistinguishable from a missing one.
func (repo *notificationRepository) MarkRead(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error {
	tx := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", id)
	if !scope.IsAdmin() {
		tx = tx.Where("user_id = ?", scope.UserID)
	}

	result := tx.Update("read_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      entity.NotificationKind(data.Kind),
		Title:     data.Title,
		Body:      data.Body,
		DriveID:   data.DriveID,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      string(data.Kind),
		Title:     data.Title,
		Body:      data.Body,
		DriveID:   data.DriveID,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
