// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateChildInput defines the data required to register a child.
type CreateChildInput struct {
	Scope       entity.AccessScope
	Name        string
	BirthDate   time.Time
	Sex         string
	BirthCertNo string
}

// UpdateChildInput defines the editable child fields.
type UpdateChildInput struct {
	Scope       entity.AccessScope
	ChildID     uuid.UUID
	Name        string
	BirthDate   time.Time
	Sex         string
	BirthCertNo string
}

// ChildUsecase defines the interface for child registry operations. Every
// operation is scoped: guardians only ever see their own children, and a
// cross-tenant id resolves to not-found.
type ChildUsecase interface {
	CreateChild(ctx context.Context, input *CreateChildInput) (*entity.Child, error)
	GetChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) (*entity.Child, error)
	ListChildren(ctx context.Context, scope entity.AccessScope) ([]*entity.Child, error)
	UpdateChild(ctx context.Context, input *UpdateChildInput) (*entity.Child, error)
	DeleteChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID, clientIP string) error

	// GenerateCardQR renders the immunization card QR code PNG for a child
	// visible to the scope.
	GenerateCardQR(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]byte, error)
}
