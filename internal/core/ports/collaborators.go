package ports

import (
	"context"
	"io"
	"time"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

// TokenIssuer signs identity claims.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, time.Time, error)
	TTL() time.Duration
}

// TokenVerifier decodes and validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// MailSender delivers a single message synchronously.
type MailSender interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// MailQueue accepts messages for background delivery. Enqueue never blocks;
// it reports false when the message was dropped.
type MailQueue interface {
	Enqueue(msg domain.MailMessage) bool
}

// NotificationDedup remembers recently delivered notifications.
type NotificationDedup interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// AuditLog records security-relevant actions. Callers treat failures as
// non-fatal.
type AuditLog interface {
	Record(ctx context.Context, ev domain.AuditEvent) error
}

// ResumeStore persists uploaded resumes.
type ResumeStore interface {
	// Save stores r under a generated name, sniffing its content type.
	// Returns domain.ErrUnsupportedResumeType or domain.ErrResumeTooLarge.
	Save(ctx context.Context, originalName string, r io.Reader) (domain.StoredFile, error)
	// Resolve maps a stored path to a readable filesystem path.
	Resolve(path string) (string, error)
	Remove(ctx context.Context, path string) error
}
