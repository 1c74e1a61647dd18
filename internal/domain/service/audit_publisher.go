package service

import "context"

// AuditEvent is the wire form of an audit entry exported to the external
// audit sink. The database row remains the authoritative record; the event
// stream exists for downstream consumers (SIEM, reporting).
type AuditEvent struct {
	EntryID   string `json:"entry_id"`
	ActorID   string `json:"actor_id,omitempty"`
	Action    string `json:"action"`
	Outcome   string `json:"outcome"`
	Subject   string `json:"subject,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	EmittedAt string `json:"emitted_at"`
}

// AuditPublisher exports audit events to an append-only sink. Publishing is
// best-effort: failures are logged, never surfaced to the caller of the
// audited operation.
type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error
	Close() error
}
