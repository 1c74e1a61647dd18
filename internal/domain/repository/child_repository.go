package repository

import (
	"context"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ChildRepository defines persistence operations for Child entities.
//
// Every read, update and delete takes an AccessScope and appends the owner
// predicate at the query layer unless the scope carries the admin capability.
// A row owned by someone else is indistinguishable from a missing row: both
// return ErrChildNotFound. This is the access-scoping layer; handlers must
// never be the only place ownership is checked.
type ChildRepository interface {
	Create(ctx context.Context, child *entity.Child) error
	FindByID(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Child, error)
	ListOwned(ctx context.Context, scope entity.AccessScope) ([]*entity.Child, error)
	Update(ctx context.Context, scope entity.AccessScope, child *entity.Child) error
	Delete(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error
}

// VaccineRecordRepository defines persistence operations for VaccineRecord
// entities. Ownership is transitive: the scope predicate joins through the
// child to its guardian, with the same not-found semantics as ChildRepository.
type VaccineRecordRepository interface {
	Create(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) error
	FindByID(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.VaccineRecord, error)
	ListByChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]*entity.VaccineRecord, error)
	Update(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) error
	Delete(ctx context.Context, scope entity.AccessScope, id uuid.UUID) error
}
