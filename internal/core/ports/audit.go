package ports

import (
	"context"

	"github.com/smatech/auth-service/internal/core/domain"
)

// AuditRecorder accepts authentication events for asynchronous recording.
// Record is fire-and-forget from the engine's point of view: a full queue or
// failing sink never fails the request that produced the event.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditService persists a single audit event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository is the storage contract for the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

// UserListingCache caches role-partition listings. A miss is (nil, false,
// nil); cache failures are advisory and never fail a read.
type UserListingCache interface {
	Get(ctx context.Context, role domain.Role) ([]*domain.User, bool, error)
	Set(ctx context.Context, role domain.Role, users []*domain.User) error
	Invalidate(ctx context.Context, role domain.Role) error
}
