package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository implements ports.AuditLog on an append-only collection.
type AuditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// EnsureIndexes creates the lookup indexes used by operators.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}}, Options: options.Index().SetSparse(true)},
	})
	if err != nil {
		return fmt.Errorf("audit indexes: %w", err)
	}
	return nil
}

// Record inserts ev.
func (r *AuditRepository) Record(ctx context.Context, ev domain.AuditEvent) error {
	_, err := r.coll.InsertOne(ctx, auditDocument(ev))
	if err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}
	return nil
}

func auditDocument(ev domain.AuditEvent) bson.M {
	occurred := ev.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	doc := bson.M{
		"action":      ev.Action,
		"target_type": ev.TargetType,
		"target_id":   ev.TargetID,
		"occurred_at": occurred.UTC(),
	}
	if ev.ActorID != "" {
		doc["actor_id"] = ev.ActorID
		doc["actor_role"] = string(ev.ActorRole)
	}
	if len(ev.Detail) > 0 {
		doc["detail"] = ev.Detail
	}
	return doc
}
