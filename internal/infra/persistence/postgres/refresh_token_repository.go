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

// refreshTokenRepository implements the domain's RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token lineage, representing a login session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("refresh token hash already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByID retrieves a lineage regardless of its revoked or expired state,
// so callers can tell a replayed token apart from a plainly invalid one.
func (repo *refreshTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// FindActiveByTokenHash retrieves the lineage currently bound to the given hash.
func (repo *refreshTokenRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	token := toRefreshTokenDomain(&tokenM)

	if token.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return token, nil
}

// RotateTokenHash atomically replaces oldHash with newHash on the lineage.
// The WHERE clause is the whole point: the update succeeds only when the
// lineage is unrevoked, unexpired, and still bound to oldHash, so two
// concurrent rotations of the same token yield exactly one success.
func (repo *refreshTokenRepository) RotateTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash string, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("id = ? AND token_hash = ? AND revoked_at IS NULL AND expires_at > ?", id, oldHash, now).
		Updates(map[string]any{
			"token_hash": newHash,
			"rotated_at": now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			// The new hash collided with another lineage. Treat as a failed
			// rotation; the caller will re-issue.
			return 0, domainerrors.ErrConflict.WrapMessage("rotated token hash already exists")
		}

		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// Revoke marks the lineage invalid. Revoking an already revoked lineage keeps
// the first revocation record.
func (repo *refreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Updates(map[string]any{
			"revoked_at":     time.Now(),
			"revoked_reason": reason,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	return nil
}

// RevokeByTokenHash revokes the lineage currently bound to the given hash.
func (repo *refreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Updates(map[string]any{
			"revoked_at":     time.Now(),
			"revoked_reason": reason,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// RevokeAllByUserID revokes every lineage belonging to the user.
func (repo *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Updates(map[string]any{
			"revoked_at":     time.Now(),
			"revoked_reason": reason,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	return nil
}

// FindByUserID retrieves the user's lineages, newest first.
func (repo *refreshTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var tokenModels []model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokenModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make([]*entity.RefreshToken, 0, len(tokenModels))
	for i := range tokenModels {
		tokens = append(tokens, toRefreshTokenDomain(&tokenModels[i]))
	}

	return tokens, nil
}

// CountActiveByUserID returns the number of active (unrevoked, unexpired) lineages.
func (repo *refreshTokenRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// DeleteExpired removes lineages whose expiry has passed.
func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:            data.ID,
		UserID:        data.UserID,
		TokenHash:     data.TokenHash,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		RotatedAt:     data.RotatedAt,
		RevokedAt:     data.RevokedAt,
		RevokedReason: data.RevokedReason,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:            data.ID,
		UserID:        data.UserID,
		TokenHash:     data.TokenHash,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		RotatedAt:     data.RotatedAt,
		RevokedAt:     data.RevokedAt,
		RevokedReason: data.RevokedReason,
	}
}
