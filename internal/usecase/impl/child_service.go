package impl

import (
	"context"
	"log/slog"

	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// childService implements the ChildUsecase interface.
type childService struct {
	txManager repository.TransactionManager
	childRepo repository.ChildRepository
	cardQR    service.CardQRService
	audit     usecase.AuditRecorder
	logger    *slog.Logger
}

// ChildServiceParams holds dependencies for ChildService, injected by Fx.
type ChildServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ChildRepo repository.ChildRepository
	CardQR    service.CardQRService
	Audit     usecase.AuditRecorder
	Logger    *slog.Logger
}

// NewChildService is the constructor for childService.
func NewChildService(params ChildServiceParams) usecase.ChildUsecase {
	return &childService{
		txManager: params.TxManager,
		childRepo: params.ChildRepo,
		cardQR:    params.CardQR,
		audit:     params.Audit,
		logger:    params.Logger,
	}
}

func (srv *childService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateChild registers a child under the calling guardian. The owner is
// always the caller; there is no way to create a child for someone else.
func (srv *childService) CreateChild(ctx context.Context, input *usecase.CreateChildInput) (*entity.Child, error) {
	child := &entity.Child{
		GuardianID:  input.Scope.UserID,
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		Sex:         input.Sex,
		BirthCertNo: input.BirthCertNo,
	}

	if err := srv.childRepo.Create(ctx, child); err != nil {
		srv.log(ctx).Warn("Failed to create child", slog.Any("guardianID", input.Scope.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Child registered", slog.Any("childID", child.ID), slog.Any("guardianID", child.GuardianID))

	return child, nil
}

// GetChild returns a child visible to the scope.
func (srv *childService) GetChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) (*entity.Child, error) {
	child, err := srv.childRepo.FindByID(ctx, scope, childID)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// ListChildren returns every child visible to the scope.
func (srv *childService) ListChildren(ctx context.Context, scope entity.AccessScope) ([]*entity.Child, error) {
	children, err := srv.childRepo.ListOwned(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children")
	}

	return children, nil
}

// UpdateChild updates the editable fields of a child visible to the scope.
func (srv *childService) UpdateChild(ctx context.Context, input *usecase.UpdateChildInput) (*entity.Child, error) {
	child, err := srv.childRepo.FindByID(ctx, input.Scope, input.ChildID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		child.Name = input.Name
	}
	if !input.BirthDate.IsZero() {
		child.BirthDate = input.BirthDate
	}
	if input.Sex != "" {
		child.Sex = input.Sex
	}
	if input.BirthCertNo != "" {
		child.BirthCertNo = input.BirthCertNo
	}

	if err := srv.childRepo.Update(ctx, input.Scope, child); err != nil {
		return nil, err
	}

	return child, nil
}

// DeleteChild removes a child and all of its vaccine records in one
// transaction.
func (srv *childService) DeleteChild(ctx context.Context, scope entity.AccessScope, childID uuid.UUID, clientIP string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ChildRepo().Delete(ctx, scope, childID)
	})
	if err != nil {
		return err
	}

	actorID := scope.UserID
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &actorID,
		Action:   entity.AuditActionChildDelete,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "child:" + childID.String(),
		ClientIP: clientIP,
	})
	srv.log(ctx).Info("Child deleted", slog.Any("childID", childID))

	return nil
}

// GenerateCardQR renders the immunization card QR code for a child visible
// to the scope. The visibility check runs first so a cross-tenant child id
// yields not-found, never a QR code.
func (srv *childService) GenerateCardQR(ctx context.Context, scope entity.AccessScope, childID uuid.UUID) ([]byte, error) {
	child, err := srv.childRepo.FindByID(ctx, scope, childID)
	if err != nil {
		return nil, err
	}

	png, err := srv.cardQR.GenerateCardQR(child.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate card QR code")
	}

	return png, nil
}
