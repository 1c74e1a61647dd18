// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies why a notification was created.
type NotificationKind string

const (
	// NotificationKindDrive announces a vaccination drive.
	NotificationKindDrive NotificationKind = "drive"
	// NotificationKindDue reminds a guardian that a dose is due for a child.
	NotificationKindDue NotificationKind = "due"
	// NotificationKindSecurity flags authentication anomalies, e.g. a
	// refresh token replayed after rotation.
	NotificationKindSecurity NotificationKind = "security"
)

// Notification is a per-user message shown in the app inbox. Push delivery
// through FCM is best-effort on top of the stored row.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID // The owning user. Notifications are never shared.
	Kind      NotificationKind
	Title     string
	Body      string
	DriveID   *uuid.UUID // Set for drive announcements.
	ReadAt    *time.Time // Nil while unread.
	CreatedAt time.Time
}
