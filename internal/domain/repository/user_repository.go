package repository

import (
	"context"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for User entities and their
// guardian profiles. Lookups by email are used by the credential check at
// login; both lookups return ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// UpsertGuardianProfile creates or replaces the guardian profile attached
	// to a user.
	UpsertGuardianProfile(ctx context.Context, profile *entity.GuardianProfile) error

	// Delete soft-deletes the account. Children, records, notifications and
	// refresh tokens are removed by the configured cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AcquireSessionMutex takes a row lock on the user so concurrent logins
	// serialize around the active-session count. Only meaningful inside a
	// transaction.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error

	// ListGuardianDeviceTokens returns the non-empty FCM device tokens of all
	// guardians, used for drive announcement pushes.
	ListGuardianDeviceTokens(ctx context.Context) (map[uuid.UUID]string, error)

	// ListGuardianIDs returns the ids of all guardian accounts.
	ListGuardianIDs(ctx context.Context) ([]uuid.UUID, error)
}
