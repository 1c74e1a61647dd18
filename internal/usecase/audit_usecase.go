// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vaxtrack/internal/domain/entity"
)

// AuditRecorder appends entries to the audit trail. Recording is best-effort:
// implementations log failures and never propagate them, so an audit outage
// cannot break the operation being audited.
type AuditRecorder interface {
	Record(ctx context.Context, entry *entity.AuditEntry)
}

// AuditUsecase exposes the audit trail for review. Admins see everything;
// other scopes only the entries they produced.
type AuditUsecase interface {
	ListRecent(ctx context.Context, scope entity.AccessScope, limit int) ([]*entity.AuditEntry, error)
}
