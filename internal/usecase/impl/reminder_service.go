package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vaxtrack/config"
	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReminderLeadDays = 7

// scheduleEntry is one dose of the routine childhood immunization schedule,
// expressed as the age in months at which it is due.
type scheduleEntry struct {
	VaccineName string
	DoseNumber  int
	AgeMonths   int
}

// routineSchedule follows the Taiwan CDC routine childhood schedule.
var routineSchedule = []scheduleEntry{
	{VaccineName: "HepB", DoseNumber: 1, AgeMonths: 0},
	{VaccineName: "HepB", DoseNumber: 2, AgeMonths: 1},
	{VaccineName: "HepB", DoseNumber: 3, AgeMonths: 6},
	{VaccineName: "DTaP", DoseNumber: 1, AgeMonths: 2},
	{VaccineName: "DTaP", DoseNumber: 2, AgeMonths: 4},
	{VaccineName: "DTaP", DoseNumber: 3, AgeMonths: 6},
	{VaccineName: "DTaP", DoseNumber: 4, AgeMonths: 18},
	{VaccineName: "PCV13", DoseNumber: 1, AgeMonths: 2},
	{VaccineName: "PCV13", DoseNumber: 2, AgeMonths: 4},
	{VaccineName: "PCV13", DoseNumber: 3, AgeMonths: 12},
	{VaccineName: "MMR", DoseNumber: 1, AgeMonths: 12},
	{VaccineName: "MMR", DoseNumber: 2, AgeMonths: 60},
	{VaccineName: "Varicella", DoseNumber: 1, AgeMonths: 12},
	{VaccineName: "JE", DoseNumber: 1, AgeMonths: 15},
	{VaccineName: "JE", DoseNumber: 2, AgeMonths: 27},
}

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	txManager  repository.TransactionManager
	childRepo  repository.ChildRepository
	recordRepo repository.VaccineRecordRepository
	userRepo   repository.UserRepository
	pushSender service.PushSender
	leadDays   int
	logger     *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ChildRepo  repository.ChildRepository
	RecordRepo repository.VaccineRecordRepository
	UserRepo   repository.UserRepository
	PushSender service.PushSender `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	leadDays := defaultReminderLeadDays
	if params.Config != nil && params.Config.Reminder != nil && params.Config.Reminder.LeadDays > 0 {
		leadDays = params.Config.Reminder.LeadDays
	}

	return &reminderService{
		txManager:  params.TxManager,
		childRepo:  params.ChildRepo,
		recordRepo: params.RecordRepo,
		userRepo:   params.UserRepo,
		pushSender: params.PushSender,
		leadDays:   leadDays,
		logger:     params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// systemScope is the scope the sweep runs under. The worker is trusted
// infrastructure, so it reads across all guardians.
func systemScope() entity.AccessScope {
	return entity.AccessScope{Role: entity.RoleAdmin}
}

// dueDose is one dose coming due for one child.
type dueDose struct {
	child *entity.Child
	entry scheduleEntry
	dueAt time.Time
}

// SendDueReminders performs one sweep: for every child, compare the routine
// schedule against recorded doses and notify the guardian about doses due
// within the lead window. Doses already overdue are included so a missed
// sweep does not silence them.
func (srv *reminderService) SendDueReminders(ctx context.Context) (*usecase.ReminderRunOutput, error) {
	scope := systemScope()
	now := time.Now()
	windowEnd := now.AddDate(0, 0, srv.leadDays)

	children, err := srv.childRepo.ListOwned(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children for reminder sweep")
	}

	output := &usecase.ReminderRunOutput{ChildrenScanned: len(children)}

	var due []dueDose
	for _, child := range children {
		records, err := srv.recordRepo.ListByChild(ctx, scope, child.ID)
		if err != nil {
			srv.log(ctx).Warn("Skipping child in reminder sweep", slog.Any("childID", child.ID), slog.Any("error", err))

			continue
		}

		administered := make(map[string]bool, len(records))
		for _, record := range records {
			administered[doseKey(record.VaccineName, record.DoseNumber)] = true
		}

		for _, entry := range routineSchedule {
			if administered[doseKey(entry.VaccineName, entry.DoseNumber)] {
				continue
			}

			dueAt := child.BirthDate.AddDate(0, entry.AgeMonths, 0)
			if dueAt.After(windowEnd) {
				continue
			}

			due = append(due, dueDose{child: child, entry: entry, dueAt: dueAt})
		}
	}

	output.DueDoses = len(due)
	if len(due) == 0 {
		return output, nil
	}

	notifications := buildDueNotifications(due)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().CreateBatch(ctx, notifications)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store due-dose notifications")
	}

	guardians := make(map[string]bool, len(notifications))
	for _, notification := range notifications {
		guardians[notification.UserID.String()] = true
	}
	output.NotifiedGuardians = len(guardians)

	srv.sendDuePush(ctx, due, output)

	srv.log(ctx).Info("Reminder sweep completed",
		slog.Int("children", output.ChildrenScanned),
		slog.Int("dueDoses", output.DueDoses),
		slog.Int("guardians", output.NotifiedGuardians),
	)

	return output, nil
}

func doseKey(vaccineName string, doseNumber int) string {
	return fmt.Sprintf("%s#%d", vaccineName, doseNumber)
}

func buildDueNotifications(due []dueDose) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(due))
	for _, d := range due {
		notifications = append(notifications, &entity.Notification{
			UserID: d.child.GuardianID,
			Kind:   entity.NotificationKindDue,
			Title:  fmt.Sprintf("疫苗接種提醒：%s", d.child.Name),
			Body: fmt.Sprintf("%s 第 %d 劑將於 %s 到期",
				d.entry.VaccineName, d.entry.DoseNumber, d.dueAt.Format("2006-01-02")),
		})
	}

	return notifications
}

// sendDuePush delivers one push per due dose to the guardian's device, when
// one is registered. Best-effort.
func (srv *reminderService) sendDuePush(ctx context.Context, due []dueDose, output *usecase.ReminderRunOutput) {
	if srv.pushSender == nil {
		return
	}

	tokensByUser, err := srv.userRepo.ListGuardianDeviceTokens(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load device tokens for reminder sweep", slog.Any("error", err))

		return
	}

	for _, d := range due {
		token, ok := tokensByUser[d.child.GuardianID]
		if !ok {
			continue
		}

		title := fmt.Sprintf("疫苗接種提醒：%s", d.child.Name)
		body := fmt.Sprintf("%s 第 %d 劑將於 %s 到期",
			d.entry.VaccineName, d.entry.DoseNumber, d.dueAt.Format("2006-01-02"))
		data := map[string]string{
			"kind":     string(entity.NotificationKindDue),
			"child_id": d.child.ID.String(),
		}

		if err := srv.pushSender.SendToDevice(ctx, token, title, body, data); err != nil {
			output.PushFailure++
			srv.log(ctx).Warn("Reminder push failed", slog.Any("childID", d.child.ID), slog.Any("error", err))

			continue
		}
		output.PushSuccess++
	}
}
