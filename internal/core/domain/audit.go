package domain

import "time"

// Audit actions recorded by the services.
const (
	AuditUserCreated       = "user.created"
	AuditUserRoleUpdated   = "user.role_updated"
	AuditUserDeleted       = "user.deleted"
	AuditJobCreated        = "job.created"
	AuditJobUpdated        = "job.updated"
	AuditJobDeleted        = "job.deleted"
	AuditSubmissionDeleted = "submission.deleted"
	AuditMailSent          = "mail.sent"
	AuditMailFailed        = "mail.failed"
	AuditMailSkipped       = "mail.skipped"
)

// AuditEvent is an append-only record of a privileged action or of a
// notification outcome.
type AuditEvent struct {
	Action     string
	ActorID    string
	ActorRole  Role
	TargetType string
	TargetID   string
	Detail     map[string]string
	OccurredAt time.Time
}
