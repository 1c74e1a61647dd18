package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vaxtrack/internal/domain/entity"
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

type childServiceFixtures struct {
	service   usecase.ChildUsecase
	txManager *mockRepo.MockTransactionManager
	childRepo *mockRepo.MockChildRepository
	cardQR    *mockSvc.MockCardQRService
	audit     *mockUC.MockAuditRecorder
}

func createTestChildService(t *testing.T) childServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	childRepo := mockRepo.NewMockChildRepository(t)
	cardQR := mockSvc.NewMockCardQRService(t)
	audit := mockUC.NewMockAuditRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewChildService(ChildServiceParams{
		TxManager: txManager,
		ChildRepo: childRepo,
		CardQR:    cardQR,
		Audit:     audit,
		Logger:    logger,
	})

	return childServiceFixtures{
		service:   svc,
		txManager: txManager,
		childRepo: childRepo,
		cardQR:    cardQR,
		audit:     audit,
	}
}

func TestChildService_CreateChild_OwnerIsAlwaysCaller(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	input := &usecase.CreateChildInput{
		Scope:     scope,
		Name:      "小明",
		BirthDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Sex:       "male",
	}

	fx.childRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Child")).
		Run(func(ctx context.Context, child *entity.Child) {
			assert.Equal(t, scope.UserID, child.GuardianID)
			child.ID = uuid.New()
		}).
		Return(nil)

	child, err := fx.service.CreateChild(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, child)
	assert.Equal(t, scope.UserID, child.GuardianID)
	assert.Equal(t, input.Name, child.Name)
}

func TestChildService_GetChild_CrossTenantLooksMissing(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	childID := uuid.New()

	// The repository applies the owner predicate, so another guardian's
	// child id surfaces as not-found here.
	fx.childRepo.EXPECT().
		FindByID(ctx, scope, childID).
		Return(nil, repository.ErrChildNotFound)

	child, err := fx.service.GetChild(ctx, scope, childID)

	require.Error(t, err)
	assert.Nil(t, child)
	assert.ErrorIs(t, err, repository.ErrChildNotFound)
}

func TestChildService_ListChildren(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	children := []*entity.Child{
		{ID: uuid.New(), GuardianID: scope.UserID, Name: "小明"},
		{ID: uuid.New(), GuardianID: scope.UserID, Name: "小華"},
	}

	fx.childRepo.EXPECT().ListOwned(ctx, scope).Return(children, nil)

	got, err := fx.service.ListChildren(ctx, scope)

	require.NoError(t, err)
	assert.Equal(t, children, got)
}

func TestChildService_UpdateChild_PartialFields(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	existing := &entity.Child{
		ID:         uuid.New(),
		GuardianID: scope.UserID,
		Name:       "小明",
		Sex:        "male",
		BirthDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	input := &usecase.UpdateChildInput{
		Scope:   scope,
		ChildID: existing.ID,
		Name:    "王小明",
	}

	fx.childRepo.EXPECT().FindByID(ctx, scope, existing.ID).Return(existing, nil)
	fx.childRepo.EXPECT().
		Update(ctx, scope, mock.AnythingOfType("*entity.Child")).
		Run(func(ctx context.Context, scope entity.AccessScope, child *entity.Child) {
			assert.Equal(t, "王小明", child.Name)
			assert.Equal(t, "male", child.Sex) // untouched
		}).
		Return(nil)

	child, err := fx.service.UpdateChild(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "王小明", child.Name)
}

func TestChildService_DeleteChild(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	childID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockChildRepo := mockRepo.NewMockChildRepository(t)

			mockFactory.EXPECT().ChildRepo().Return(mockChildRepo)
			mockChildRepo.EXPECT().Delete(ctx, scope, childID).Return(nil)

			return fn(mockFactory)
		})

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.DeleteChild(ctx, scope, childID, "203.0.113.9")

	require.NoError(t, err)
}

func TestChildService_GenerateCardQR(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	child := &entity.Child{ID: uuid.New(), GuardianID: scope.UserID, Name: "小明"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.childRepo.EXPECT().FindByID(ctx, scope, child.ID).Return(child, nil)
	fx.cardQR.EXPECT().GenerateCardQR(child.ID).Return(png, nil)

	got, err := fx.service.GenerateCardQR(ctx, scope, child.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestChildService_GenerateCardQR_InvisibleChildYieldsNoQR(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	childID := uuid.New()

	fx.childRepo.EXPECT().
		FindByID(ctx, scope, childID).
		Return(nil, repository.ErrChildNotFound)

	got, err := fx.service.GenerateCardQR(ctx, scope, childID)

	require.Error(t, err)
	assert.Nil(t, got)
}
