package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// recordAudit writes ev to the audit log. Failures are logged and swallowed.
func recordAudit(ctx context.Context, audit ports.AuditLog, log zerolog.Logger, ev domain.AuditEvent) {
	if audit == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := audit.Record(ctx, ev); err != nil {
		log.Warn().Err(err).Str("action", ev.Action).Str("target_id", ev.TargetID).Msg("failed to record audit event")
	}
}

func actorEvent(action string, actor domain.Identity, targetType, targetID string) domain.AuditEvent {
	return domain.AuditEvent{
		Action:     action,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		TargetType: targetType,
		TargetID:   targetID,
	}
}
