package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// AuditSink accepts audit events without blocking the request path. An
// implementation may drop events under pressure; it must never fail a request.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRecorder persists audit events. Called from the audit dispatcher
// workers, never directly from request handlers.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
