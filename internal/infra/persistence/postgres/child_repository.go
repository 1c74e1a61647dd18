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

// childRepository implements the domain's ChildRepository interface.
//
// Every query on children carries the scope predicate: unless the scope holds
// the admin capability, a guardian_id filter is appended at the query layer.
// A row owned by someone else therefore never reaches the mapper, and the
// caller sees the same ErrChildNotFound a truly missing row produces.
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository is the constructor for childRepository.
func NewChildRepository(db *gorm.DB) repository.ChildRepository {
	return &childRepository{db: db}
}

// scoped appends the owner predicate for non-admin scopes.
func (repo *childRepository) scoped(ctx context.Context, scope entity.AccessScope) *gorm.DB {
	tx := repo.db.WithContext(ctx).Model(&model.ChildModel{})
	if !scope.IsAdmin() {
		tx = tx.Where("guardian_id = ?", scope.UserID)
	}

	return tx
}

// Create persists a new child under the owning guardian.
func (repo *childRepository) Create(ctx context.Context, child *entity.Child) error {
	childM := fromChildDomain(child)

	if err := repo.db.WithContext(ctx).Create(childM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrChildAlreadyExists.WrapMessage("birth certificate number already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required child information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create child")
	}

	child.ID = childM.ID
	child.CreatedAt = childM.CreatedAt
	child.UpdatedAt = childM.UpdatedAt

	return nil
}

// FindByID retrieves a child visible to the scope.
func (repo *childRepository) FindByID(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Child, error) {
	var childM model.ChildModel

	err := repo.scoped(ctx, scope).
		Where("id = ?", id).
		First(&childM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChildNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toChildDomain(&childM), nil
}

// ListOwned retrieves the children visible to the scope, oldest first.
func (repo *childRepository) ListOwned(ctx context.Context, scope entity.AccessScope) ([]*entity.Child, error) {
	var childModels []model.ChildModel

	err := repo.scoped(ctx, scope).
		Order("created_at ASC").
		Find(&childModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	children := make([]*entity.Child, 0, len(childModels))
	for i := range childModels {
		children = append(children, toChildDomain(&childModels[i]))
	}

	return children, nil
}

// Update persists changes to a child visible to the scope.
func (repo *childRepository) Update(ctx context.Context, scope entity.AccessScope, child *entity.Child) error {
	result := repo.scoped(ctx, scope).
		Where("id = ?", child.ID).
		Updates(map[string]any{
			"name":          child.Name,
			"birth_date":    child.BirthDate,
			"sex":           child.Sex,
			"birth_cert_no": child.BirthCertNo,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrChildAlreadyExists.WrapMessage("birth certificate number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update child")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChildNotFound
	}

	return nil
}

// Delete removes a child visible to the scope together with its records.
func (repo *childRepository) Delete(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error {
	tx := repo.db.WithContext(ctx)

	// Resolve visibility first so the record purge can't touch another
	// guardian's rows.
	var childM model.ChildModel
	err := repo.scoped(ctx, scope).
		Where("id = ?", id).
		First(&childM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrChildNotFound
		}

		return errors.WithStack(err)
	}

	if err := tx.Where("child_id = ?", childM.ID).Delete(&model.VaccineRecordModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete child records")
	}

	if err := tx.Where("id = ?", childM.ID).Delete(&model.ChildModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete child")
	}

	return nil
}

// --- Mapper Functions ---

// toChildDomain converts a GORM ChildModel to a domain Child entity.
func toChildDomain(data *model.ChildModel) *entity.Child {
	if data == nil {
		return nil
	}

	return &entity.Child{
		ID:          data.ID,
		GuardianID:  data.GuardianID,
		Name:        data.Name,
		BirthDate:   data.BirthDate,
		Sex:         data.Sex,
		BirthCertNo: data.BirthCertNo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromChildDomain converts a domain Child entity to a GORM ChildModel.
func fromChildDomain(data *entity.Child) *model.ChildModel {
	if data == nil {
		return nil
	}

	return &model.ChildModel{
		ID:          data.ID,
		GuardianID:  data.GuardianID,
		Name:        data.Name,
		BirthDate:   data.BirthDate,
		Sex:         data.Sex,
		BirthCertNo: data.BirthCertNo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
