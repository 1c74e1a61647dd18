// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vaxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDriveInput defines the data required to publish a vaccination drive.
type CreateDriveInput struct {
	Scope       entity.AccessScope
	Title       string
	VaccineName string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
}

// UpdateDriveInput defines the editable drive fields.
type UpdateDriveInput struct {
	Scope       entity.AccessScope
	DriveID     uuid.UUID
	Title       string
	VaccineName string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Active      bool
}

// AnnounceDriveOutput reports the announcement fan-out result.
type AnnounceDriveOutput struct {
	NotifiedGuardians int
	PushSuccess       int
	PushFailure       int
}

// DriveUsecase defines the interface for the shared drive catalog. Reads are
// open to every authenticated user; writes and announcements require the
// admin capability and fail with ErrForbidden otherwise.
type DriveUsecase interface {
	CreateDrive(ctx context.Context, input *CreateDriveInput) (*entity.VaccineDrive, error)
	GetDrive(ctx context.Context, driveID uuid.UUID) (*entity.VaccineDrive, error)
	ListActiveDrives(ctx context.Context) ([]*entity.VaccineDrive, error)
	UpdateDrive(ctx context.Context, input *UpdateDriveInput) (*entity.VaccineDrive, error)

	// AnnounceDrive fans the drive out to every guardian: an in-app
	// notification per guardian plus a push to each registered device.
	AnnounceDrive(ctx context.Context, scope entity.AccessScope, driveID uuid.UUID, clientIP string) (*AnnounceDriveOutput, error)
}
