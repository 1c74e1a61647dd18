// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultAuditListLimit = 100

// auditRepository implements the domain's AuditRepository interface.
// The table is append-only: no update or delete is exposed.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Append persists one audit entry.
func (repo *auditRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := fromAuditEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListRecent retrieves the newest entries first. Non-admin scopes only see
// entries where they are the actor.
func (repo *auditRepository) ListRecent(ctx context.Context, scope entity.AccessScope, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 || limit > defaultAuditListLimit {
		limit = defaultAuditListLimit
	}

	tx := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if !scope.IsAdmin() {
		tx = tx.Where("actor_id = ?", scope.UserID)
	}

	var entryModels []model.AuditLogModel
	err := tx.
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.AuditEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, toAuditEntryDomain(&entryModels[i]))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toAuditEntryDomain converts a GORM AuditLogModel to a domain entity.
func toAuditEntryDomain(data *model.AuditLogModel) *entity.AuditEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditEntry{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Outcome:   data.Outcome,
		Subject:   data.Subject,
		ClientIP:  data.ClientIP,
		Detail:    data.Detail,
		CreatedAt: data.CreatedAt,
	}
}

// fromAuditEntryDomain converts a domain entity to a GORM AuditLogModel.
func fromAuditEntryDomain(data *entity.AuditEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Outcome:   data.Outcome,
		Subject:   data.Subject,
		ClientIP:  data.ClientIP,
		Detail:    data.Detail,
		CreatedAt: data.CreatedAt,
	}
}
