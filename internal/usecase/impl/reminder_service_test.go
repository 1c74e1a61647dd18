package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vaxtrack/config"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/usecase"
	mockRepo "vaxtrack/internal/mocks/repository"
	mockSvc "vaxtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderServiceFixtures struct {
	service    usecase.ReminderUsecase
	txManager  *mockRepo.MockTransactionManager
	childRepo  *mockRepo.MockChildRepository
	recordRepo *mockRepo.MockVaccineRecordRepository
	userRepo   *mockRepo.MockUserRepository
	pushSender *mockSvc.MockPushSender
}

func createTestReminderService(t *testing.T, leadDays int) reminderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	childRepo := mockRepo.NewMockChildRepository(t)
	recordRepo := mockRepo.NewMockVaccineRecordRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := NewReminderService(ReminderServiceParams{
		TxManager:  txManager,
		ChildRepo:  childRepo,
		RecordRepo: recordRepo,
		UserRepo:   userRepo,
		PushSender: pushSender,
		Config:     &config.Config{Reminder: &config.ReminderConfig{LeadDays: leadDays}},
		Logger:     logger,
	})

	return reminderServiceFixtures{
		service:    services,
		txManager:  txManager,
		childRepo:  childRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		pushSender: pushSender,
	}
}

func TestReminderService_SendDueReminders_NotifiesMissingDoses(t *testing.T) {
	fx := createTestReminderService(t, 7)

	ctx := context.Background()
	guardianID := uuid.New()
	// Born one month ago: HepB dose 1 (at birth) is overdue and HepB dose 2
	// (one month) falls inside the lead window. Dose 1 is already recorded.
	child := &entity.Child{
		ID:         uuid.New(),
		GuardianID: guardianID,
		Name:       "小明",
		BirthDate:  time.Now().AddDate(0, -1, 0),
	}

	fx.childRepo.EXPECT().
		ListOwned(ctx, mock.AnythingOfType("entity.AccessScope")).
		Return([]*entity.Child{child}, nil)
	fx.recordRepo.EXPECT().
		ListByChild(ctx, mock.AnythingOfType("entity.AccessScope"), child.ID).
		Return([]*entity.VaccineRecord{
			{ID: uuid.New(), ChildID: child.ID, VaccineName: "HepB", DoseNumber: 1},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			notificationRepo := mockRepo.NewMockNotificationRepository(t)
			factory.EXPECT().NotificationRepo().Return(notificationRepo)
			notificationRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
				Run(func(ctx context.Context, notifications []*entity.Notification) {
					require.Len(t, notifications, 1)
					assert.Equal(t, guardianID, notifications[0].UserID)
					assert.Equal(t, entity.NotificationKindDue, notifications[0].Kind)
					assert.Contains(t, notifications[0].Body, "HepB 第 2 劑")
				}).
				Return(nil)

			return fn(factory)
		})

	fx.userRepo.EXPECT().
		ListGuardianDeviceTokens(ctx).
		Return(map[uuid.UUID]string{guardianID: "device-token-1"}, nil)
	fx.pushSender.EXPECT().
		SendToDevice(ctx, "device-token-1", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	output, err := fx.service.SendDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, output.ChildrenScanned)
	assert.Equal(t, 1, output.DueDoses)
	assert.Equal(t, 1, output.NotifiedGuardians)
	assert.Equal(t, 1, output.PushSuccess)
	assert.Equal(t, 0, output.PushFailure)
}

func TestReminderService_SendDueReminders_NothingDue(t *testing.T) {
	fx := createTestReminderService(t, 7)

	ctx := context.Background()
	// Born today with the birth dose already recorded; the next dose is a
	// month out, beyond a 7-day lead window.
	child := &entity.Child{
		ID:         uuid.New(),
		GuardianID: uuid.New(),
		Name:       "小華",
		BirthDate:  time.Now(),
	}

	fx.childRepo.EXPECT().
		ListOwned(ctx, mock.AnythingOfType("entity.AccessScope")).
		Return([]*entity.Child{child}, nil)
	fx.recordRepo.EXPECT().
		ListByChild(ctx, mock.AnythingOfType("entity.AccessScope"), child.ID).
		Return([]*entity.VaccineRecord{
			{ID: uuid.New(), ChildID: child.ID, VaccineName: "HepB", DoseNumber: 1},
		}, nil)

	output, err := fx.service.SendDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, output.ChildrenScanned)
	assert.Equal(t, 0, output.DueDoses)
	assert.Equal(t, 0, output.NotifiedGuardians)
}

func TestReminderService_SendDueReminders_PushFailureDoesNotFailSweep(t *testing.T) {
	fx := createTestReminderService(t, 7)

	ctx := context.Background()
	guardianID := uuid.New()
	child := &entity.Child{
		ID:         uuid.New(),
		GuardianID: guardianID,
		Name:       "小美",
		BirthDate:  time.Now().AddDate(0, -1, 0),
	}

	fx.childRepo.EXPECT().
		ListOwned(ctx, mock.AnythingOfType("entity.AccessScope")).
		Return([]*entity.Child{child}, nil)
	fx.recordRepo.EXPECT().
		ListByChild(ctx, mock.AnythingOfType("entity.AccessScope"), child.ID).
		Return([]*entity.VaccineRecord{
			{ID: uuid.New(), ChildID: child.ID, VaccineName: "HepB", DoseNumber: 1},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			notificationRepo := mockRepo.NewMockNotificationRepository(t)
			factory.EXPECT().NotificationRepo().Return(notificationRepo)
			notificationRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
				Return(nil)

			return fn(factory)
		})

	fx.userRepo.EXPECT().
		ListGuardianDeviceTokens(ctx).
		Return(map[uuid.UUID]string{guardianID: "device-token-1"}, nil)
	fx.pushSender.EXPECT().
		SendToDevice(ctx, "device-token-1", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(assert.AnError)

	output, err := fx.service.SendDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, output.PushFailure)
	assert.Equal(t, 0, output.PushSuccess)
}
