package domain

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"aquafarm.io/steward/internal/pkg/logger"
)

// MutationType classifies one entity state change applied by the cascade
// executor.
type MutationType string

const (
	MutationSoftDeleted MutationType = "SOFT_DELETED"
	MutationDeactivated MutationType = "DEACTIVATED"
	MutationOrphaned    MutationType = "ORPHANED"
	MutationLinkRemoved MutationType = "LINK_REMOVED"
	MutationCounterStep MutationType = "COUNTER_DECREMENTED"
)

// Mutation records one entity state change within a cascade.
type Mutation struct {
	Type     MutationType `json:"type"`
	Kind     string       `json:"kind"` // entity kind or "sub_equipment"/"link"
	EntityID string       `json:"entity_id"`
	TenantID string       `json:"tenant_id"`
	Actor    string       `json:"actor,omitempty"`
}

// MutationObserver receives each mutation exactly once, after the cascade
// transaction committed. Event persistence/publishing can be hung off this
// hook without touching the cascade algorithm; errors are logged, never
// propagated into the delete result.
type MutationObserver func(ctx context.Context, m Mutation) error

// MutationDispatcher fans mutations out to registered observers.
type MutationDispatcher struct {
	observers []MutationObserver
	mu        sync.RWMutex
}

// NewMutationDispatcher creates an empty dispatcher.
func NewMutationDispatcher() *MutationDispatcher {
	return &MutationDispatcher{}
}

// Register adds an observer.
func (d *MutationDispatcher) Register(obs MutationObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, obs)
}

// Notify delivers every mutation to every observer, best-effort.
func (d *MutationDispatcher) Notify(ctx context.Context, mutations []Mutation) {
	d.mu.RLock()
	observers := make([]MutationObserver, len(d.observers))
	copy(observers, d.observers)
	d.mu.RUnlock()

	for _, obs := range observers {
		for _, m := range mutations {
			if err := obs(ctx, m); err != nil {
				logger.Warn("mutation observer failed",
					zap.String("type", string(m.Type)),
					zap.String("kind", m.Kind),
					zap.String("entity_id", m.EntityID),
					zap.Error(err),
				)
			}
		}
	}
}

// Observer returns the dispatcher as a single MutationObserver, or nil
// when no observers are registered.
func (d *MutationDispatcher) Observer() MutationObserver {
	return func(ctx context.Context, m Mutation) error {
		d.Notify(ctx, []Mutation{m})
		return nil
	}
}
