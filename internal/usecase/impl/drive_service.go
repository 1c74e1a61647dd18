package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBatchSize matches the FCM multicast limit.
const pushBatchSize = 500

// driveService implements the DriveUsecase interface.
type driveService struct {
	txManager  repository.TransactionManager
	driveRepo  repository.VaccineDriveRepository
	userRepo   repository.UserRepository
	pushSender service.PushSender
	audit      usecase.AuditRecorder
	logger     *slog.Logger
}

// DriveServiceParams holds dependencies for DriveService, injected by Fx.
type DriveServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DriveRepo  repository.VaccineDriveRepository
	UserRepo   repository.UserRepository
	PushSender service.PushSender `optional:"true"`
	Audit      usecase.AuditRecorder
	Logger     *slog.Logger
}

// NewDriveService is the constructor for driveService. PushSender is
// optional: without it announcements still create in-app notifications.
func NewDriveService(params DriveServiceParams) usecase.DriveUsecase {
	return &driveService{
		txManager:  params.TxManager,
		driveRepo:  params.DriveRepo,
		userRepo:   params.UserRepo,
		pushSender: params.PushSender,
		audit:      params.Audit,
		logger:     params.Logger,
	}
}

func (srv *driveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin gates catalog writes. Unlike scoped resources the drive's
// existence is public, so a denied write is Forbidden, not NotFound.
func requireAdmin(scope entity.AccessScope) error {
	if !scope.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("drive management requires admin")
	}

	return nil
}

// CreateDrive publishes a new drive. Admin only.
func (srv *driveService) CreateDrive(ctx context.Context, input *usecase.CreateDriveInput) (*entity.VaccineDrive, error) {
	if err := requireAdmin(input.Scope); err != nil {
		return nil, err
	}

	drive := &entity.VaccineDrive{
		Title:       input.Title,
		VaccineName: input.VaccineName,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Active:      true,
	}

	if err := srv.driveRepo.Create(ctx, drive); err != nil {
		return nil, errors.Wrap(err, "failed to create drive")
	}

	srv.log(ctx).Info("Drive created", slog.Any("driveID", drive.ID), slog.String("title", drive.Title))

	return drive, nil
}

// GetDrive returns one drive. Open to all authenticated users.
func (srv *driveService) GetDrive(ctx context.Context, driveID uuid.UUID) (*entity.VaccineDrive, error) {
	return srv.driveRepo.FindByID(ctx, driveID)
}

// ListActiveDrives returns currently running and upcoming drives.
func (srv *driveService) ListActiveDrives(ctx context.Context) ([]*entity.VaccineDrive, error) {
	drives, err := srv.driveRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drives")
	}

	return drives, nil
}

// UpdateDrive updates a drive's details. Admin only.
func (srv *driveService) UpdateDrive(ctx context.Context, input *usecase.UpdateDriveInput) (*entity.VaccineDrive, error) {
	if err := requireAdmin(input.Scope); err != nil {
		return nil, err
	}

	drive, err := srv.driveRepo.FindByID(ctx, input.DriveID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		drive.Title = input.Title
	}
	if input.VaccineName != "" {
		drive.VaccineName = input.VaccineName
	}
	if input.Description != "" {
		drive.Description = input.Description
	}
	if input.Location != "" {
		drive.Location = input.Location
	}
	if !input.StartsAt.IsZero() {
		drive.StartsAt = input.StartsAt
	}
	if !input.EndsAt.IsZero() {
		drive.EndsAt = input.EndsAt
	}
	drive.Active = input.Active

	if err := srv.driveRepo.Update(ctx, drive); err != nil {
		return nil, errors.Wrap(err, "failed to update drive")
	}

	return drive, nil
}

// AnnounceDrive fans a drive out to every guardian. In-app notifications are
// written in one transaction; push delivery runs after commit and is
// best-effort, so a push outage never loses the in-app copy.
func (srv *driveService) AnnounceDrive(ctx context.Context, scope entity.AccessScope, driveID uuid.UUID, clientIP string) (*usecase.AnnounceDriveOutput, error) {
	if err := requireAdmin(scope); err != nil {
		return nil, err
	}

	drive, err := srv.driveRepo.FindByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	guardianIDs, err := srv.userRepo.ListGuardianIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians for announcement")
	}

	title := fmt.Sprintf("接種活動：%s", drive.Title)
	body := fmt.Sprintf("%s，地點：%s", drive.VaccineName, drive.Location)

	notifications := make([]*entity.Notification, 0, len(guardianIDs))
	for _, guardianID := range guardianIDs {
		notifications = append(notifications, &entity.Notification{
			UserID:  guardianID,
			Kind:    entity.NotificationKindDrive,
			Title:   title,
			Body:    body,
			DriveID: &drive.ID,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().CreateBatch(ctx, notifications)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store drive notifications")
	}

	output := &usecase.AnnounceDriveOutput{NotifiedGuardians: len(guardianIDs)}
	srv.sendDrivePush(ctx, drive, output)

	actorID := scope.UserID
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &actorID,
		Action:   entity.AuditActionDriveAnnounce,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "drive:" + drive.ID.String(),
		ClientIP: clientIP,
		Detail:   fmt.Sprintf("notified %d guardians", len(guardianIDs)),
	})
	srv.log(ctx).Info("Drive announced",
		slog.Any("driveID", drive.ID),
		slog.Int("guardians", output.NotifiedGuardians),
		slog.Int("pushSuccess", output.PushSuccess),
		slog.Int("pushFailure", output.PushFailure),
	)

	return output, nil
}

// sendDrivePush delivers the announcement to registered devices in FCM-sized
// batches. Failures are counted, logged and otherwise ignored.
func (srv *driveService) sendDrivePush(ctx context.Context, drive *entity.VaccineDrive, output *usecase.AnnounceDriveOutput) {
	if srv.pushSender == nil {
		return
	}

	tokensByUser, err := srv.userRepo.ListGuardianDeviceTokens(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load device tokens for announcement", slog.Any("error", err))

		return
	}
	if len(tokensByUser) == 0 {
		return
	}

	tokens := make([]string, 0, len(tokensByUser))
	for _, token := range tokensByUser {
		tokens = append(tokens, token)
	}

	title := fmt.Sprintf("接種活動：%s", drive.Title)
	body := fmt.Sprintf("%s，地點：%s", drive.VaccineName, drive.Location)
	data := map[string]string{
		"kind":     string(entity.NotificationKindDrive),
		"drive_id": drive.ID.String(),
	}

	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))

		success, failure, invalidTokens, err := srv.pushSender.SendToDevices(ctx, tokens[start:end], title, body, data)
		if err != nil {
			srv.log(ctx).Warn("Push batch failed", slog.Any("error", err))
			output.PushFailure += end - start

			continue
		}

		output.PushSuccess += success
		output.PushFailure += failure
		if len(invalidTokens) > 0 {
			srv.log(ctx).Info("Invalid device tokens reported by FCM", slog.Int("count", len(invalidTokens)))
		}
	}
}
