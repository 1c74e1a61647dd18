package impl

import (
	"context"
	"log/slog"

	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	recordRepo repository.VaccineRecordRepository
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	RecordRepo repository.VaccineRecordRepository
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddRecord records an administered dose on a child visible to the scope.
// The repository rejects the insert with ErrChildNotFound when the child is
// not visible, so a guardian cannot attach records to someone else's child.
func (srv *recordService) AddRecord(ctx context.Context, input *usecase.AddRecordInput) (*entity.VaccineRecord, error) {
	record := &entity.VaccineRecord{
		ChildID:        input.ChildID,
		VaccineName:    input.VaccineName,
		DoseNumber:     input.DoseNumber,
		AdministeredAt: input.AdministeredAt,
		AdministeredBy: input.AdministeredBy,
		DriveID:        input.DriveID,
		Notes:          input.Notes,
	}

	if err := srv.recordRepo.Create(ctx, input.Scope, record); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Vaccine record added",
		slog.Any("recordID", record.ID),
		slog.Any("childID", record.ChildID),
		slog.String("vaccine", record.VaccineName),
	)

	return record, nil
}

// GetRecord returns a record visible to the scope.
func (srv *recordService) GetRecord(ctx context.Context, scope entity.AccessScope, recordID uuid.UUID) (*entity.VaccineRecord, error) {
	return srv.recordRepo.FindByID(ctx, scope, recordID)
}

// ListRecords returns the dose history of a child visible to the scope,
// ordered by administration date.
func (srv *recordService) ListRecords(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]*entity.VaccineRecord, error) {
	records, err := srv.recordRepo.ListByChild(ctx, scope, childID)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateRecord updates the editable fields of a record visible to the scope.
func (srv *recordService) UpdateRecord(ctx context.Context, input *usecase.UpdateRecordInput) (*entity.VaccineRecord, error) {
	record, err := srv.recordRepo.FindByID(ctx, input.Scope, input.RecordID)
	if err != nil {
		return nil, err
	}

	if input.VaccineName != "" {
		record.VaccineName = input.VaccineName
	}
	if input.DoseNumber > 0 {
		record.DoseNumber = input.DoseNumber
	}
	if !input.AdministeredAt.IsZero() {
		record.AdministeredAt = input.AdministeredAt
	}
	if input.AdministeredBy != "" {
		record.AdministeredBy = input.AdministeredBy
	}
	if input.DriveID != nil {
		record.DriveID = input.DriveID
	}
	if input.Notes != "" {
		record.Notes = input.Notes
	}

	if err := srv.recordRepo.Update(ctx, input.Scope, record); err != nil {
		return nil, errors.Wrap(err, "failed to update vaccine record")
	}

	return record, nil
}

// DeleteRecord removes a record visible to the scope.
func (srv *recordService) DeleteRecord(ctx context.Context, scope entity.AccessScope, recordID uuid.UUID) error {
	if err := srv.recordRepo.Delete(ctx, scope, recordID); err != nil {
		return err
	}

	srv.log(ctx).Info("Vaccine record deleted", slog.Any("recordID", recordID))

	return nil
}
