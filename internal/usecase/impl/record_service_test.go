package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"
	mockRepo "vaxtrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordServiceFixtures struct {
	service    usecase.RecordUsecase
	recordRepo *mockRepo.MockVaccineRecordRepository
}

func createTestRecordService(t *testing.T) recordServiceFixtures {
	recordRepo := mockRepo.NewMockVaccineRecordRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := NewRecordService(RecordServiceParams{
		RecordRepo: recordRepo,
		Logger:     logger,
	})

	return recordServiceFixtures{
		service:    services,
		recordRepo: recordRepo,
	}
}

func TestRecordService_AddRecord_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	childID := uuid.New()
	administeredAt := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	fx.recordRepo.EXPECT().
		Create(ctx, scope, mock.AnythingOfType("*entity.VaccineRecord")).
		Run(func(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) {
			record.ID = uuid.New()
			assert.Equal(t, childID, record.ChildID)
			assert.Equal(t, "HepB", record.VaccineName)
			assert.Equal(t, 2, record.DoseNumber)
		}).
		Return(nil)

	record, err := fx.service.AddRecord(ctx, &usecase.AddRecordInput{
		Scope:          scope,
		ChildID:        childID,
		VaccineName:    "HepB",
		DoseNumber:     2,
		AdministeredAt: administeredAt,
		AdministeredBy: "Dr. Chen",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, administeredAt, record.AdministeredAt)
}

func TestRecordService_AddRecord_InvisibleChildLooksMissing(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}

	fx.recordRepo.EXPECT().
		Create(ctx, scope, mock.AnythingOfType("*entity.VaccineRecord")).
		Return(repository.ErrChildNotFound)

	_, err := fx.service.AddRecord(ctx, &usecase.AddRecordInput{
		Scope:       scope,
		ChildID:     uuid.New(),
		VaccineName: "MMR",
		DoseNumber:  1,
	})

	require.ErrorIs(t, err, repository.ErrChildNotFound)
}

func TestRecordService_ListRecords(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	childID := uuid.New()
	records := []*entity.VaccineRecord{
		{ID: uuid.New(), ChildID: childID, VaccineName: "HepB", DoseNumber: 1},
		{ID: uuid.New(), ChildID: childID, VaccineName: "HepB", DoseNumber: 2},
	}

	fx.recordRepo.EXPECT().ListByChild(ctx, scope, childID).Return(records, nil)

	got, err := fx.service.ListRecords(ctx, scope, childID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecordService_UpdateRecord_PartialFields(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	recordID := uuid.New()
	existing := &entity.VaccineRecord{
		ID:          recordID,
		ChildID:     uuid.New(),
		VaccineName: "DTaP",
		DoseNumber:  1,
		Notes:       "left arm",
	}

	fx.recordRepo.EXPECT().FindByID(ctx, scope, recordID).Return(existing, nil)
	fx.recordRepo.EXPECT().
		Update(ctx, scope, mock.AnythingOfType("*entity.VaccineRecord")).
		Run(func(ctx context.Context, scope entity.AccessScope, record *entity.VaccineRecord) {
			assert.Equal(t, "no adverse reaction", record.Notes)
			// Untouched fields keep their stored values.
			assert.Equal(t, "DTaP", record.VaccineName)
			assert.Equal(t, 1, record.DoseNumber)
		}).
		Return(nil)

	record, err := fx.service.UpdateRecord(ctx, &usecase.UpdateRecordInput{
		Scope:    scope,
		RecordID: recordID,
		Notes:    "no adverse reaction",
	})

	require.NoError(t, err)
	assert.Equal(t, "no adverse reaction", record.Notes)
}

func TestRecordService_GetRecord_CrossTenantLooksMissing(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	recordID := uuid.New()

	fx.recordRepo.EXPECT().FindByID(ctx, scope, recordID).Return(nil, repository.ErrRecordNotFound)

	_, err := fx.service.GetRecord(ctx, scope, recordID)

	require.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestRecordService_DeleteRecord(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	recordID := uuid.New()

	fx.recordRepo.EXPECT().Delete(ctx, scope, recordID).Return(nil)

	err := fx.service.DeleteRecord(ctx, scope, recordID)

	require.NoError(t, err)
}
