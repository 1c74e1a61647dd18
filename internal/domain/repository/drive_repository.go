package repository

import (
	"context"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// VaccineDriveRepository defines persistence operations for the drive catalog.
// Drives are read-shared, so reads take no scope; writes are gated by the
// admin capability in the use case layer.
type VaccineDriveRepository interface {
	Create(ctx context.Context, drive *entity.VaccineDrive) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VaccineDrive, error)
	ListActive(ctx context.Context) ([]*entity.VaccineDrive, error)
	Update(ctx context.Context, drive *entity.VaccineDrive) error
}

// NotificationRepository defines persistence operations for per-user
// notifications, scoped like any other user-owned resource.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error
	ListByUser(ctx context.Context, scope entity.AccessScope) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error
}

// AuditRepository appends and reads the immutable audit log. There is
// deliberately no update or delete operation.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error

	// ListRecent returns the newest entries first. Non-admin scopes only see
	// entries where they are the actor.
	ListRecent(ctx context.Context, scope entity.AccessScope, limit int) ([]*entity.AuditEntry, error)
}
