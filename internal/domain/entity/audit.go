// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for sensitive operations. Kept as plain strings in
// dotted form so downstream sinks can filter by prefix.
const (
	AuditActionRegister      = "auth.register"
	AuditActionLogin         = "auth.login"
	AuditActionRefresh       = "auth.refresh"
	AuditActionRefreshReused = "auth.refresh.reused"
	AuditActionLogout        = "auth.logout"
	AuditActionRevoke        = "auth.revoke"
	AuditActionChildDelete   = "child.delete"
	AuditActionDriveAnnounce = "drive.announce"
	AuditActionAccountDelete = "account.delete"
)

// Audit outcomes.
const (
	AuditOutcomeOK     = "ok"
	AuditOutcomeDenied = "denied"
	AuditOutcomeError  = "error"
)

// AuditEntry is an immutable, append-only record of a sensitive operation.
// Application code only ever inserts and reads these rows; there is no
// update or delete path anywhere in the system.
type AuditEntry struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID // Nil for failed logins where no identity was established.
	Action    string     // One of the AuditAction constants.
	Outcome   string     // One of the AuditOutcome constants.
	Subject   string     // Identifier of the affected resource, e.g. a session or child id.
	ClientIP  string     // Remote address of the request that caused the event.
	Detail    string     // Short human-readable context. Never contains secrets.
	CreatedAt time.Time
}
