// Package service contains the building blocks of the referential-
// integrity engine: hierarchy resolution, blocker evaluation and
// affected-set aggregation. The usecase layer composes them into the
// preview and delete entry points.
package service

import (
	"context"
	"fmt"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/store"
)

// HierarchyResolver computes the transitive closure of descendants in the
// self-referencing System and Equipment trees.
//
// Traversal is breadth-first, level by level: each level's children become
// the next level's roots. Only non-deleted rows are visited. A visited set
// keyed by id terminates traversal on cycles; the data model is not
// expected to contain them, but a corrupted parent pointer must not hang
// a delete request.
type HierarchyResolver struct {
	store store.Store
}

// NewHierarchyResolver creates a resolver over the given store.
func NewHierarchyResolver(st store.Store) *HierarchyResolver {
	return &HierarchyResolver{store: st}
}

// SystemLevels returns the descendant systems of rootID grouped by BFS
// level, nearest level first. The root itself is not included. An unknown
// root yields no levels; absence of a root is the caller's concern.
func (r *HierarchyResolver) SystemLevels(ctx context.Context, tenantID, rootID string) ([][]*domain.System, error) {
	visited := map[string]struct{}{rootID: {}}
	frontier := []string{rootID}

	var levels [][]*domain.System
	for len(frontier) > 0 {
		var level []*domain.System
		var next []string
		for _, parentID := range frontier {
			children, err := r.store.ChildSystems(ctx, tenantID, parentID)
			if err != nil {
				return nil, fmt.Errorf("resolve child systems of %s: %w", parentID, err)
			}
			for _, child := range children {
				if _, seen := visited[child.ID]; seen {
					continue
				}
				visited[child.ID] = struct{}{}
				level = append(level, child)
				next = append(next, child.ID)
			}
		}
		if len(level) > 0 {
			levels = append(levels, level)
		}
		frontier = next
	}
	return levels, nil
}

// EquipmentLevels returns the descendant equipment of rootID grouped by
// BFS level, nearest level first. Semantics match SystemLevels.
func (r *HierarchyResolver) EquipmentLevels(ctx context.Context, tenantID, rootID string) ([][]*domain.Equipment, error) {
	visited := map[string]struct{}{rootID: {}}
	frontier := []string{rootID}

	var levels [][]*domain.Equipment
	for len(frontier) > 0 {
		var level []*domain.Equipment
		var next []string
		for _, parentID := range frontier {
			children, err := r.store.ChildEquipment(ctx, tenantID, parentID)
			if err != nil {
				return nil, fmt.Errorf("resolve child equipment of %s: %w", parentID, err)
			}
			for _, child := range children {
				if _, seen := visited[child.ID]; seen {
					continue
				}
				visited[child.ID] = struct{}{}
				level = append(level, child)
				next = append(next, child.ID)
			}
		}
		if len(level) > 0 {
			levels = append(levels, level)
		}
		frontier = next
	}
	return levels, nil
}

// FlattenSystems concatenates levels into parent-before-child order.
// Consumers deleting rows must walk the result in reverse.
func FlattenSystems(levels [][]*domain.System) []*domain.System {
	var out []*domain.System
	for _, level := range levels {
		out = append(out, level...)
	}
	return out
}

// FlattenEquipment concatenates levels into parent-before-child order.
func FlattenEquipment(levels [][]*domain.Equipment) []*domain.Equipment {
	var out []*domain.Equipment
	for _, level := range levels {
		out = append(out, level...)
	}
	return out
}
