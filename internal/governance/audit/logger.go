// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, tenantID, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetTenantID(tenantID).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogDelete records a completed cascade delete of one root entity.
func (l *Logger) LogDelete(ctx context.Context, tenantID string, kind domain.Kind, id, actor string, affected int) error {
	return l.LogAction(ctx, tenantID, kind.String()+".delete", kind.String(), id, actor, map[string]interface{}{
		"affected": affected,
	})
}

// MutationObserver returns an observer that appends one audit row per
// cascade mutation. Cascade deletes of large subtrees produce one row per
// touched entity; that is intentional, the trail answers "what happened
// to this row" queries.
func (l *Logger) MutationObserver() domain.MutationObserver {
	return func(ctx context.Context, m domain.Mutation) error {
		actor := m.Actor
		if actor == "" {
			actor = "system"
		}
		return l.LogAction(ctx, m.TenantID, m.Kind+"."+mutationAction(m.Type), m.Kind, m.EntityID, actor, nil)
	}
}

func mutationAction(t domain.MutationType) string {
	switch t {
	case domain.MutationSoftDeleted:
		return "soft_delete"
	case domain.MutationDeactivated:
		return "deactivate"
	case domain.MutationOrphaned:
		return "orphan"
	case domain.MutationLinkRemoved:
		return "unlink"
	case domain.MutationCounterStep:
		return "counter_adjust"
	default:
		return "mutate"
	}
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
