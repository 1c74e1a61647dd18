// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddRecordInput defines the data required to record an administered dose.
type AddRecordInput struct {
	Scope          entity.AccessScope
	ChildID        uuid.UUID
	VaccineName    string
	DoseNumber     int
	AdministeredAt time.Time
	AdministeredBy string
	DriveID        *uuid.UUID
	Notes          string
}

// UpdateRecordInput defines the editable record fields.
type UpdateRecordInput struct {
	Scope          entity.AccessScope
	RecordID       uuid.UUID
	VaccineName    string
	DoseNumber     int
	AdministeredAt time.Time
	AdministeredBy string
	DriveID        *uuid.UUID
	Notes          string
}

// RecordUsecase defines the interface for vaccine record operations. Access
// is scoped transitively through the child's guardian.
type RecordUsecase interface {
	AddRecord(ctx context.Context, input *AddRecordInput) (*entity.VaccineRecord, error)
	GetRecord(ctx context.Context, scope entity.AccessScope, recordID uuid.UUID) (*entity.VaccineRecord, error)
	ListRecords(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]*entity.VaccineRecord, error)
	UpdateRecord(ctx context.Context, input *UpdateRecordInput) (*entity.VaccineRecord, error)
	DeleteRecord(ctx context.Context, scope entity.AccessScope, recordID uuid.UUID) error
}
