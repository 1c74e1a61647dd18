// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vaccineRecordRepository implements the domain's VaccineRecordRepository interface.
//
// Record ownership is transitive through the child, so non-admin scopes join
// on children and filter by guardian_id. Cross-tenant rows fall out of the
// join and surface as ErrRecordNotFound.
type vaccineRecordRepository struct {
	db *gorm.DB
}

// NewVaccineRecordRepository is the constructor for vaccineRecordRepository.
func NewVaccineRecordRepository(db *gorm.DB) repository.VaccineRecordRepository {
	return &vaccineRecordRepository{db: db}
}

// scoped appends the transitive owner predicate for non-admin scopes.
func (repo *vaccineRecordRepository) scoped(ctx context.Context, scope entity.AccessScope) *gorm.DB {
	tx := repo.db.WithContext(ctx).Model(&model.VaccineRecordModel{})
	if !scope.IsAdmin() {
		tx = tx.
			Joins("JOIN children ON children.id = vaccine_records.child_id").
			Where("children.guardian_id = ?", scope.UserID)
	}

	return tx
}

// childVisible reports whether the scope may touch the given child at all.
func (repo *vaccineRecordRepository) childVisible(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) error {
	tx := repo.db.WithContext(ctx).Model(&model.ChildModel{}).Where("id = ?", childID)
	if !scope.IsAdmin() {
		tx = tx.Where("guardian_id = ?", scope.UserID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return errors.WithStack(err)
	}
	if count == 0 {
		return repository.ErrChildNotFound
	}

	return nil
}

// Create persists a new vaccine record after resolving child visibility.
func (repo *vaccineRecordRepository) Create(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) error {
	if err := repo.childVisible(ctx, scope, record.ChildID); err != nil {
		return err
	}

	recordM := fromVaccineRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrChildNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vaccine record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByID retrieves a vaccine record visible to the scope.
func (repo *vaccineRecordRepository) FindByID(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.VaccineRecord, error) {
	var recordM model.VaccineRecordModel

	err := repo.scoped(ctx, scope).
		Where("vaccine_records.id = ?", id).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVaccineRecordDomain(&recordM), nil
}

// ListByChild retrieves a child's records in administration order.
func (repo *vaccineRecordRepository) ListByChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]*entity.VaccineRecord, error) {
	if err := repo.childVisible(ctx, scope, childID); err != nil {
		return nil, err
	}

	var recordModels []model.VaccineRecordModel

	err := repo.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("administered_at ASC, dose_number ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	records := make([]*entity.VaccineRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, toVaccineRecordDomain(&recordModels[i]))
	}

	return records, nil
}

// Update persists changes to a record visible to the scope.
func (repo *vaccineRecordRepository) Update(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) error {
	// GORM can't combine JOIN with UPDATE portably, so resolve visibility
	// first and update by primary key.
	if _, err := repo.FindByID(ctx, scope, record.ID); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VaccineRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"vaccine_name":    record.VaccineName,
			"dose_number":     record.DoseNumber,
			"administered_at": record.AdministeredAt,
			"administered_by": record.AdministeredBy,
			"drive_id":        record.DriveID,
			"notes":           record.Notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vaccine record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a record visible to the scope.
func (repo *vaccineRecordRepository) Delete(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error {
	if _, err := repo.FindByID(ctx, scope, id); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VaccineRecordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vaccine record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVaccineRecordDomain converts a GORM VaccineRecordModel to a domain entity.
func toVaccineRecordDomain(data *model.VaccineRecordModel) *entity.VaccineRecord {
	if data == nil {
		return nil
	}

	return &entity.VaccineRecord{
		ID:             data.ID,
		ChildID:        data.ChildID,
		VaccineName:    data.VaccineName,
		DoseNumber:     data.DoseNumber,
		AdministeredAt: data.AdministeredAt,
		AdministeredBy: data.AdministeredBy,
		DriveID:        data.DriveID,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromVaccineRecordDomain converts a domain entity to a GORM VaccineRecordModel.
func fromVaccineRecordDomain(data *entity.VaccineRecord) *model.VaccineRecordModel {
	if data == nil {
		return nil
	}

	return &model.VaccineRecordModel{
		ID:             data.ID,
		ChildID:        data.ChildID,
		VaccineName:    data.VaccineName,
		DoseNumber:     data.DoseNumber,
		AdministeredAt: data.AdministeredAt,
		AdministeredBy: data.AdministeredBy,
		DriveID:        data.DriveID,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
