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
	"gorm.io/gorm/clause"
)

// userRepository implements the domain's UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user and their guardian profile by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("GuardianProfile").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by their login identifier.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("GuardianProfile").
		Where("email = ? AND deleted_at IS NULL", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// Update persists changes to the user's core fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", user.ID).
		Updates(map[string]any{
			"email":         user.Email,
			"name":          user.Name,
			"password_hash": user.PasswordHash,
			"role":          user.Role.String(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpsertGuardianProfile creates or replaces the guardian profile attached to a user.
func (repo *userRepository) UpsertGuardianProfile(ctx context.Context, profile *entity.GuardianProfile) error {
	profileM := fromGuardianProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone", "address", "device_token", "locale", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert guardian profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete soft-deletes the account by stamping deleted_at.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AcquireSessionMutex takes a row lock on the user so concurrent logins
// serialize around the active-session count. Only meaningful inside a transaction.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}

// ListGuardianDeviceTokens returns the non-empty FCM device tokens of all guardians.
func (repo *userRepository) ListGuardianDeviceTokens(ctx context.Context) (map[uuid.UUID]string, error) {
	var rows []struct {
		UserID      uuid.UUID
		DeviceToken string
	}

	err := repo.db.WithContext(ctx).
		Model(&model.GuardianProfileModel{}).
		Select("guardian_profiles.user_id, guardian_profiles.device_token").
		Joins("JOIN users ON users.id = guardian_profiles.user_id AND users.deleted_at IS NULL").
		Where("users.role = ? AND guardian_profiles.device_token <> ''", entity.RoleGuardian.String()).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		tokens[row.UserID] = row.DeviceToken
	}

	return tokens, nil
}

// ListGuardianIDs returns the ids of all guardian accounts.
func (repo *userRepository) ListGuardianIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ? AND deleted_at IS NULL", entity.RoleGuardian.String()).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return ids, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		GuardianProfile: toGuardianProfileDomain(data.GuardianProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toGuardianProfileDomain converts a GORM GuardianProfileModel to a domain entity.
func toGuardianProfileDomain(data *model.GuardianProfileModel) *entity.GuardianProfile {
	if data == nil {
		return nil
	}

	return &entity.GuardianProfile{
		UserID:      data.UserID,
		Phone:       data.Phone,
		Address:     data.Address,
		DeviceToken: data.DeviceToken,
		Locale:      data.Locale,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromGuardianProfileDomain converts a domain entity to a GORM GuardianProfileModel.
func fromGuardianProfileDomain(data *entity.GuardianProfile) *model.GuardianProfileModel {
	if data == nil {
		return nil
	}

	return &model.GuardianProfileModel{
		UserID:      data.UserID,
		Phone:       data.Phone,
		Address:     data.Address,
		DeviceToken: data.DeviceToken,
		Locale:      data.Locale,
		UpdatedAt:   data.UpdatedAt,
	}
}
