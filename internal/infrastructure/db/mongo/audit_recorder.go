package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRecorder appends security audit events to the audit collection.
// Writes happen only from the audit dispatcher workers, never on the request
// path.
type AuditRecorder struct {
	coll *mongo.Collection
}

func NewAuditRecorder(db *mongo.Database) *AuditRecorder {
	return &AuditRecorder{coll: db.Collection(auditCollection)}
}

func (r *AuditRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
