// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ReminderRunOutput reports the result of one reminder sweep.
type ReminderRunOutput struct {
	ChildrenScanned   int
	DueDoses          int
	NotifiedGuardians int
	PushSuccess       int
	PushFailure       int
}

// ReminderUsecase computes doses coming due within the configured lead
// window and notifies the owning guardians. Driven by the worker process on
// a schedule, not by user requests.
type ReminderUsecase interface {
	SendDueReminders(ctx context.Context) (*ReminderRunOutput, error)
}
