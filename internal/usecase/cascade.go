// Package usecase provides the public entry points of the referential-
// integrity engine: one preview/delete pair per entity kind, composed
// from the hierarchy resolver, blocker evaluator and affected-set
// aggregator in internal/service.
package usecase

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"aquafarm.io/steward/internal/domain"
	apperrors "aquafarm.io/steward/internal/pkg/errors"
	"aquafarm.io/steward/internal/pkg/logger"
)

// DeleteInput is the confirmed delete request shared by all kinds.
type DeleteInput struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`

	// Cascade=false fails with HAS_DEPENDENTS when dependents exist.
	// Cascade=true recursively applies the per-relation delete policy.
	// Neither bypasses blockers.
	Cascade bool `json:"cascade"`
}

// DeleteResult reports what an executed delete touched.
type DeleteResult struct {
	Deleted     bool              `json:"deleted"`
	Mutations   []domain.Mutation `json:"-"`
	Affected    int               `json:"affected"`
	Orphaned    int               `json:"orphaned"`
	Deactivated int               `json:"deactivated"`
	LinksCut    int               `json:"links_cut"`
}

// blockedError builds the absolute-veto error. Carried blockers are the
// human-readable strings from the blocker evaluator.
func blockedError(blockers []string) error {
	msg := "deletion blocked"
	if len(blockers) > 0 {
		msg = blockers[0]
	}
	return apperrors.Conflict(apperrors.CodeDeleteBlocked, msg).
		WithParams(map[string]interface{}{"blockers": blockers})
}

// hasDependentsError builds the cascade=false rejection. Unlike
// DELETE_BLOCKED this one is resolved by re-invoking with cascade=true.
func hasDependentsError(kind domain.Kind, count int) error {
	return apperrors.Conflict(
		apperrors.CodeHasDependents,
		fmt.Sprintf("%s has %d dependent item(s); re-run with cascade=true to delete them", kind, count),
	).WithParams(map[string]interface{}{
		"kind":            kind.String(),
		"dependent_count": count,
	})
}

// storeFailure wraps a persistence error with the failed step so an
// operator can re-run the same delete call; every cascade update is
// idempotent, so the retry finishes the job.
func storeFailure(err error, step, entityID string) error {
	return apperrors.Wrap(err, apperrors.CodeStoreFailure, "cascade step failed", http.StatusInternalServerError).
		WithParams(map[string]interface{}{
			"step":      step,
			"entity_id": entityID,
		})
}

// dependentCount sums the affected-set classes that count toward
// HAS_DEPENDENTS for the given kind under the configured policy.
func dependentCount(policy domain.DependentPolicy, kind domain.Kind, set domain.AffectedSet) int {
	n := 0
	if policy.Counts(kind, domain.DependentDepartments) {
		n += len(set.Departments)
	}
	if policy.Counts(kind, domain.DependentSystems) {
		n += len(set.Systems)
	}
	if policy.Counts(kind, domain.DependentEquipment) {
		n += len(set.Equipment)
	}
	if policy.Counts(kind, domain.DependentTanks) {
		n += len(set.Tanks)
	}
	if policy.Counts(kind, domain.DependentSubEquipment) {
		n += len(set.SubEquipment)
	}
	if policy.Counts(kind, domain.DependentLinks) {
		n += len(set.Links)
	}
	return n
}

// newMutation builds one mutation log entry for the given delete call.
func newMutation(t domain.MutationType, kind, entityID string, input DeleteInput) domain.Mutation {
	return domain.Mutation{
		Type:     t,
		Kind:     kind,
		EntityID: entityID,
		TenantID: input.TenantID,
		Actor:    input.UserID,
	}
}

// notifyMutations delivers the committed mutation log to the observer,
// best-effort. Observer failures never affect the delete result.
func notifyMutations(ctx context.Context, observer domain.MutationObserver, mutations []domain.Mutation) {
	if observer == nil {
		return
	}
	for _, m := range mutations {
		if err := observer(ctx, m); err != nil {
			logger.Warn("mutation observer failed",
				zap.String("type", string(m.Type)),
				zap.String("kind", m.Kind),
				zap.String("entity_id", m.EntityID),
				zap.Error(err),
			)
		}
	}
}

// orderEquipmentLeavesFirst groups a flat equipment set into delete
// levels, leaves first, using parent pointers within the set. Rows whose
// parent is outside the set count as roots. A defensive cap dumps any
// remainder (cyclic parent pointers) into a final level so the cascade
// still terminates.
func orderEquipmentLeavesFirst(items []*domain.Equipment) [][]*domain.Equipment {
	if len(items) == 0 {
		return nil
	}

	inSet := make(map[string]*domain.Equipment, len(items))
	childCount := make(map[string]int, len(items))
	for _, it := range items {
		inSet[it.ID] = it
	}
	for _, it := range items {
		if _, ok := inSet[it.ParentEquipmentID]; ok {
			childCount[it.ParentEquipmentID]++
		}
	}

	remaining := make(map[string]*domain.Equipment, len(items))
	for id, it := range inSet {
		remaining[id] = it
	}

	var levels [][]*domain.Equipment
	for len(remaining) > 0 {
		var level []*domain.Equipment
		// Preserve input order within each level for determinism.
		for _, it := range items {
			if _, ok := remaining[it.ID]; !ok {
				continue
			}
			if childCount[it.ID] == 0 {
				level = append(level, it)
			}
		}
		if len(level) == 0 {
			// Cycle: emit whatever is left and stop.
			for _, it := range items {
				if _, ok := remaining[it.ID]; ok {
					level = append(level, it)
				}
			}
			levels = append(levels, level)
			break
		}
		for _, it := range level {
			delete(remaining, it.ID)
			if parent, ok := inSet[it.ParentEquipmentID]; ok {
				childCount[parent.ID]--
			}
		}
		levels = append(levels, level)
	}
	return levels
}

func summaryIDs(items []domain.ItemSummary) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func tankIDs(items []domain.TankSummary) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func equipmentIDs(items []*domain.Equipment) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
