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

// vaccineDriveRepository implements the domain's VaccineDriveRepository interface.
// Drives are a shared catalog, so reads take no scope.
type vaccineDriveRepository struct {
	db *gorm.DB
}

// NewVaccineDriveRepository is the constructor for vaccineDriveRepository.
func NewVaccineDriveRepository(db *gorm.DB) repository.VaccineDriveRepository {
	return &vaccineDriveRepository{db: db}
}

// Create persists a new vaccination drive.
func (repo *vaccineDriveRepository) Create(ctx context.Context, drive *entity.VaccineDrive) error {
	driveM := fromVaccineDriveDomain(drive)

	if err := repo.db.WithContext(ctx).Create(driveM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required drive information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vaccine drive")
	}

	drive.ID = driveM.ID
	drive.CreatedAt = driveM.CreatedAt
	drive.UpdatedAt = driveM.UpdatedAt

	return nil
}

// FindByID retrieves a drive by primary key.
func (repo *vaccineDriveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VaccineDrive, error) {
	var driveM model.VaccineDriveModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&driveM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriveNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVaccineDriveDomain(&driveM), nil
}

// ListActive retrieves drives that are flagged active and not yet over,
// soonest first.
func (repo *vaccineDriveRepository) ListActive(ctx context.Context) ([]*entity.VaccineDrive, error) {
	var driveModels []model.VaccineDriveModel

	err := repo.db.WithContext(ctx).
		Where("active AND ends_at > ?", time.Now()).
		Order("starts_at ASC").
		Find(&driveModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	drives := make([]*entity.VaccineDrive, 0, len(driveModels))
	for i := range driveModels {
		drives = append(drives, toVaccineDriveDomain(&driveModels[i]))
	}

	return drives, nil
}

// Update persists changes to a drive.
func (repo *vaccineDriveRepository) Update(ctx context.Context, drive *entity.VaccineDrive) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VaccineDriveModel{}).
		Where("id = ?", drive.ID).
		Updates(map[string]any{
			"title":        drive.Title,
			"vaccine_name": drive.VaccineName,
			"description":  drive.Description,
			"location":     drive.Location,
			"starts_at":    drive.StartsAt,
			"ends_at":      drive.EndsAt,
			"active":       drive.Active,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vaccine drive")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDriveNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVaccineDriveDomain converts a GORM VaccineDriveModel to a domain entity.
func toVaccineDriveDomain(data *model.VaccineDriveModel) *entity.VaccineDrive {
	if data == nil {
		return nil
	}

	return &entity.VaccineDrive{
		ID:          data.ID,
		Title:       data.Title,
		VaccineName: data.VaccineName,
		Description: data.Description,
		Location:    data.Location,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromVaccineDriveDomain converts a domain entity to a GORM VaccineDriveModel.
func fromVaccineDriveDomain(data *entity.VaccineDrive) *model.VaccineDriveModel {
	if data == nil {
		return nil
	}

	return &model.VaccineDriveModel{
		ID:          data.ID,
		Title:       data.Title,
		VaccineName: data.VaccineName,
		Description: data.Description,
		Location:    data.Location,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
