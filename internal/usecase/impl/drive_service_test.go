package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	mockRepo "vaxtrack/internal/mocks/repository"
	mockSvc "vaxtrack/internal/mocks/service"
	mockUC "vaxtrack/internal/mocks/usecase"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type driveServiceFixtures struct {
	service    usecase.DriveUsecase
	txManager  *mockRepo.MockTransactionManager
	driveRepo  *mockRepo.MockVaccineDriveRepository
	userRepo   *mockRepo.MockUserRepository
	pushSender *mockSvc.MockPushSender
	audit      *mockUC.MockAuditRecorder
}

func createTestDriveService(t *testing.T) driveServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	driveRepo := mockRepo.NewMockVaccineDriveRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	audit := mockUC.NewMockAuditRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDriveService(DriveServiceParams{
		TxManager:  txManager,
		DriveRepo:  driveRepo,
		UserRepo:   userRepo,
		PushSender: pushSender,
		Audit:      audit,
		Logger:     logger,
	})

	return driveServiceFixtures{
		service:    svc,
		txManager:  txManager,
		driveRepo:  driveRepo,
		userRepo:   userRepo,
		pushSender: pushSender,
		audit:      audit,
	}
}

func adminScope() entity.AccessScope {
	return entity.AccessScope{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func TestDriveService_CreateDrive_AdminOnly(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	input := &usecase.CreateDriveInput{
		Scope:       entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian},
		Title:       "秋季流感接種",
		VaccineName: "Influenza",
	}

	drive, err := fx.service.CreateDrive(ctx, input)

	require.Error(t, err)
	assert.Nil(t, drive)
	// Catalog existence is public, so the denial is Forbidden rather than
	// the not-found used for scoped resources.
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDriveService_CreateDrive_Success(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	input := &usecase.CreateDriveInput{
		Scope:       adminScope(),
		Title:       "秋季流感接種",
		VaccineName: "Influenza",
		Location:    "台北市衛生所",
		StartsAt:    time.Now().Add(24 * time.Hour),
		EndsAt:      time.Now().Add(48 * time.Hour),
	}

	fx.driveRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VaccineDrive")).
		Run(func(ctx context.Context, drive *entity.VaccineDrive) {
			drive.ID = uuid.New()
		}).
		Return(nil)

	drive, err := fx.service.CreateDrive(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, drive)
	assert.Equal(t, input.Title, drive.Title)
	assert.True(t, drive.Active)
}

func TestDriveService_ListActiveDrives(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	drives := []*entity.VaccineDrive{
		{ID: uuid.New(), Title: "秋季流感接種", Active: true},
	}

	fx.driveRepo.EXPECT().ListActive(ctx).Return(drives, nil)

	got, err := fx.service.ListActiveDrives(ctx)

	require.NoError(t, err)
	assert.Equal(t, drives, got)
}

func TestDriveService_UpdateDrive_AdminOnly(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	input := &usecase.UpdateDriveInput{
		Scope:   entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian},
		DriveID: uuid.New(),
		Title:   "改名",
	}

	drive, err := fx.service.UpdateDrive(ctx, input)

	require.Error(t, err)
	assert.Nil(t, drive)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDriveService_AnnounceDrive_FansOutToGuardians(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	scope := adminScope()
	drive := &entity.VaccineDrive{
		ID:          uuid.New(),
		Title:       "秋季流感接種",
		VaccineName: "Influenza",
		Location:    "台北市衛生所",
		Active:      true,
	}
	guardianA := uuid.New()
	guardianB := uuid.New()

	fx.driveRepo.EXPECT().FindByID(ctx, drive.ID).Return(drive, nil)
	fx.userRepo.EXPECT().
		ListGuardianIDs(ctx).
		Return([]uuid.UUID{guardianA, guardianB}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockNotificationRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
				Run(func(ctx context.Context, notifications []*entity.Notification) {
					require.Len(t, notifications, 2)
					assert.Equal(t, entity.NotificationKindDrive, notifications[0].Kind)
					assert.Equal(t, &drive.ID, notifications[0].DriveID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		ListGuardianDeviceTokens(ctx).
		Return(map[uuid.UUID]string{guardianA: "token-a"}, nil)
	fx.pushSender.EXPECT().
		SendToDevices(ctx, []string{"token-a"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.AnnounceDrive(ctx, scope, drive.ID, "203.0.113.9")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 2, output.NotifiedGuardians)
	assert.Equal(t, 1, output.PushSuccess)
	assert.Equal(t, 0, output.PushFailure)
}

func TestDriveService_AnnounceDrive_PushOutageKeepsInAppCopy(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	scope := adminScope()
	drive := &entity.VaccineDrive{ID: uuid.New(), Title: "秋季流感接種", Active: true}
	guardian := uuid.New()

	fx.driveRepo.EXPECT().FindByID(ctx, drive.ID).Return(drive, nil)
	fx.userRepo.EXPECT().ListGuardianIDs(ctx).Return([]uuid.UUID{guardian}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)
			mockNotificationRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		ListGuardianDeviceTokens(ctx).
		Return(map[uuid.UUID]string{guardian: "token-a"}, nil)
	fx.pushSender.EXPECT().
		SendToDevices(ctx, []string{"token-a"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, assert.AnError)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.AnnounceDrive(ctx, scope, drive.ID, "203.0.113.9")

	// Push failure is degradation, not an error: the stored notifications
	// already committed.
	require.NoError(t, err)
	assert.Equal(t, 1, output.NotifiedGuardians)
	assert.Equal(t, 0, output.PushSuccess)
	assert.Equal(t, 1, output.PushFailure)
}

func TestDriveService_AnnounceDrive_DriveNotFound(t *testing.T) {
	fx := createTestDriveService(t)

	ctx := context.Background()
	driveID := uuid.New()

	fx.driveRepo.EXPECT().FindByID(ctx, driveID).Return(nil, repository.ErrDriveNotFound)

	output, err := fx.service.AnnounceDrive(ctx, adminScope(), driveID, "203.0.113.9")

	require.Error(t, err)
	assert.Nil(t, output)
}
