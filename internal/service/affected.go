package service

import (
	"context"
	"fmt"
	"sync"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/pkg/worker"
	"aquafarm.io/steward/internal/store"
)

// AffectedResult is an affected set plus the tank rows that feed the
// blocker evaluator. BlockerTanks may include the root itself (deleting a
// tank with live biomass is blocked too), which never appears in the
// summaries; the affected set lists dependents only.
type AffectedResult struct {
	Set          domain.AffectedSet
	BlockerTanks []*domain.Equipment

	// SystemLevels / EquipmentLevels carry the descendant rows grouped by
	// BFS level, nearest first, for the cascade executor, so execute does
	// not re-walk the tree after previewing it.
	SystemLevels    [][]*domain.System
	EquipmentLevels [][]*domain.Equipment

	// FlatEquipment carries the unordered equipment rows of a department
	// aggregation (tanks included); the executor orders them leaves-first
	// before soft-deleting.
	FlatEquipment []*domain.Equipment
}

// AffectedAggregator combines hierarchy-resolver output and per-kind query
// fan-outs into one preview structure. Summaries carry display-relevant
// fields only, never full entity payloads.
type AffectedAggregator struct {
	store     store.Store
	hierarchy *HierarchyResolver

	// queryPool, when set, bounds the concurrency of the per-department
	// fan-out on site previews. Nil means sequential.
	queryPool *worker.Pool
}

// NewAffectedAggregator creates an aggregator over the given store.
func NewAffectedAggregator(st store.Store, hierarchy *HierarchyResolver) *AffectedAggregator {
	return &AffectedAggregator{store: st, hierarchy: hierarchy}
}

// WithQueryPool sets the bounded pool used for site fan-out queries.
func (a *AffectedAggregator) WithQueryPool(pool *worker.Pool) *AffectedAggregator {
	a.queryPool = pool
	return a
}

// ForSite aggregates everything a site delete would touch: the site's
// departments plus the tanks and equipment of those departments.
func (a *AffectedAggregator) ForSite(ctx context.Context, site *domain.Site) (*AffectedResult, error) {
	departments, err := a.store.DepartmentsBySite(ctx, site.TenantID, site.ID)
	if err != nil {
		return nil, fmt.Errorf("list departments of site %s: %w", site.ID, err)
	}

	result := &AffectedResult{}
	for _, dep := range departments {
		result.Set.Departments = append(result.Set.Departments, departmentSummary(dep))
	}

	equipmentPerDept, err := a.equipmentFanOut(ctx, site.TenantID, departments)
	if err != nil {
		return nil, err
	}
	for _, items := range equipmentPerDept {
		for _, eq := range items {
			if eq.IsTank {
				result.Set.Tanks = append(result.Set.Tanks, tankSummary(eq))
				result.BlockerTanks = append(result.BlockerTanks, eq)
				continue
			}
			result.Set.Equipment = append(result.Set.Equipment, equipmentSummary(eq))
		}
	}
	return result, nil
}

// ForDepartment aggregates the department's equipment closure (tanks
// split out), the sub-equipment and junction rows of that closure, and
// the systems that would be orphaned.
func (a *AffectedAggregator) ForDepartment(ctx context.Context, dep *domain.Department) (*AffectedResult, error) {
	result := &AffectedResult{}

	equipment, err := a.store.EquipmentByDepartment(ctx, dep.TenantID, dep.ID)
	if err != nil {
		return nil, fmt.Errorf("list equipment of department %s: %w", dep.ID, err)
	}

	// Equipment trees can reach past the department_id filter (children
	// keep parent_equipment_id but not always department_id), so each
	// direct row is expanded through the hierarchy before deduping into
	// one flat closure.
	flat := make([]*domain.Equipment, 0, len(equipment))
	seen := make(map[string]struct{}, len(equipment))
	for _, eq := range equipment {
		flat = append(flat, eq)
		seen[eq.ID] = struct{}{}
	}
	for _, root := range equipment {
		levels, err := a.hierarchy.EquipmentLevels(ctx, dep.TenantID, root.ID)
		if err != nil {
			return nil, err
		}
		for _, descendant := range FlattenEquipment(levels) {
			if _, ok := seen[descendant.ID]; ok {
				continue
			}
			seen[descendant.ID] = struct{}{}
			flat = append(flat, descendant)
		}
	}

	result.FlatEquipment = flat
	equipmentIDs := make([]string, 0, len(flat))
	for _, eq := range flat {
		equipmentIDs = append(equipmentIDs, eq.ID)
		if eq.IsTank {
			result.Set.Tanks = append(result.Set.Tanks, tankSummary(eq))
			result.BlockerTanks = append(result.BlockerTanks, eq)
			continue
		}
		result.Set.Equipment = append(result.Set.Equipment, equipmentSummary(eq))
	}

	if len(equipmentIDs) > 0 {
		subs, err := a.store.SubEquipmentByParents(ctx, dep.TenantID, equipmentIDs)
		if err != nil {
			return nil, fmt.Errorf("list sub-equipment of department %s: %w", dep.ID, err)
		}
		for _, sub := range subs {
			result.Set.SubEquipment = append(result.Set.SubEquipment, subEquipmentSummary(sub))
		}

		links, err := a.store.LinksByEquipment(ctx, dep.TenantID, equipmentIDs)
		if err != nil {
			return nil, fmt.Errorf("list equipment-system links of department %s: %w", dep.ID, err)
		}
		for _, link := range links {
			result.Set.Links = append(result.Set.Links, linkSummary(link))
		}
	}

	systems, err := a.store.SystemsByDepartment(ctx, dep.TenantID, dep.ID)
	if err != nil {
		return nil, fmt.Errorf("list systems of department %s: %w", dep.ID, err)
	}
	for _, sys := range systems {
		result.Set.Systems = append(result.Set.Systems, systemSummary(sys))
	}
	return result, nil
}

// ForSystem aggregates the descendant system tree, the junction rows of
// the whole closure, and the equipment connected through them.
func (a *AffectedAggregator) ForSystem(ctx context.Context, sys *domain.System) (*AffectedResult, error) {
	levels, err := a.hierarchy.SystemLevels(ctx, sys.TenantID, sys.ID)
	if err != nil {
		return nil, err
	}

	result := &AffectedResult{SystemLevels: levels}
	closureIDs := []string{sys.ID}
	for _, descendant := range FlattenSystems(levels) {
		result.Set.Systems = append(result.Set.Systems, systemSummary(descendant))
		closureIDs = append(closureIDs, descendant.ID)
	}

	links, err := a.store.LinksBySystems(ctx, sys.TenantID, closureIDs)
	if err != nil {
		return nil, fmt.Errorf("list links of system closure %s: %w", sys.ID, err)
	}
	equipmentIDs := make([]string, 0, len(links))
	seen := make(map[string]struct{}, len(links))
	for _, link := range links {
		result.Set.Links = append(result.Set.Links, linkSummary(link))
		if _, ok := seen[link.EquipmentID]; ok {
			continue
		}
		seen[link.EquipmentID] = struct{}{}
		equipmentIDs = append(equipmentIDs, link.EquipmentID)
	}

	if len(equipmentIDs) > 0 {
		connected, err := a.store.EquipmentByIDs(ctx, sys.TenantID, equipmentIDs)
		if err != nil {
			return nil, fmt.Errorf("load equipment connected to system %s: %w", sys.ID, err)
		}
		for _, eq := range connected {
			if eq.IsTank {
				result.Set.Tanks = append(result.Set.Tanks, tankSummary(eq))
				result.BlockerTanks = append(result.BlockerTanks, eq)
				continue
			}
			result.Set.Equipment = append(result.Set.Equipment, equipmentSummary(eq))
		}
	}
	return result, nil
}

// ForEquipment aggregates the descendant equipment tree, the
// sub-equipment and junction rows of the closure, and every tank in the
// closure, root included, since a tank root with live biomass blocks
// its own deletion.
func (a *AffectedAggregator) ForEquipment(ctx context.Context, eq *domain.Equipment) (*AffectedResult, error) {
	levels, err := a.hierarchy.EquipmentLevels(ctx, eq.TenantID, eq.ID)
	if err != nil {
		return nil, err
	}

	result := &AffectedResult{EquipmentLevels: levels}
	if eq.IsTank {
		result.BlockerTanks = append(result.BlockerTanks, eq)
	}

	closureIDs := []string{eq.ID}
	for _, descendant := range FlattenEquipment(levels) {
		closureIDs = append(closureIDs, descendant.ID)
		if descendant.IsTank {
			result.Set.Tanks = append(result.Set.Tanks, tankSummary(descendant))
			result.BlockerTanks = append(result.BlockerTanks, descendant)
			continue
		}
		result.Set.Equipment = append(result.Set.Equipment, equipmentSummary(descendant))
	}

	subs, err := a.store.SubEquipmentByParents(ctx, eq.TenantID, closureIDs)
	if err != nil {
		return nil, fmt.Errorf("list sub-equipment of equipment closure %s: %w", eq.ID, err)
	}
	for _, sub := range subs {
		result.Set.SubEquipment = append(result.Set.SubEquipment, subEquipmentSummary(sub))
	}

	links, err := a.store.LinksByEquipment(ctx, eq.TenantID, closureIDs)
	if err != nil {
		return nil, fmt.Errorf("list links of equipment closure %s: %w", eq.ID, err)
	}
	for _, link := range links {
		result.Set.Links = append(result.Set.Links, linkSummary(link))
	}
	return result, nil
}

// equipmentFanOut loads the equipment of each department, through the
// query pool when one is configured. Results keep department order so
// previews are deterministic.
func (a *AffectedAggregator) equipmentFanOut(ctx context.Context, tenantID string, departments []*domain.Department) ([][]*domain.Equipment, error) {
	results := make([][]*domain.Equipment, len(departments))
	if len(departments) == 0 {
		return results, nil
	}

	if a.queryPool == nil {
		for i, dep := range departments {
			items, err := a.store.EquipmentByDepartment(ctx, tenantID, dep.ID)
			if err != nil {
				return nil, fmt.Errorf("list equipment of department %s: %w", dep.ID, err)
			}
			results[i] = items
		}
		return results, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, dep := range departments {
		wg.Add(1)
		submitErr := a.queryPool.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			// Cancelled while queued: signal completion without querying.
			if err := ctx.Err(); err != nil {
				mu.Lock()
				defer mu.Unlock()
				if firstErr == nil {
					firstErr = fmt.Errorf("list equipment of department %s: %w", dep.ID, err)
				}
				return
			}
			items, err := a.store.EquipmentByDepartment(ctx, tenantID, dep.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("list equipment of department %s: %w", dep.ID, err)
				}
				return
			}
			results[i] = items
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit department query %s: %w", dep.ID, submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func departmentSummary(d *domain.Department) domain.ItemSummary {
	return domain.ItemSummary{ID: d.ID, Name: d.Name, Code: d.Code, IsActive: d.IsActive}
}

func systemSummary(s *domain.System) domain.ItemSummary {
	return domain.ItemSummary{ID: s.ID, Name: s.Name, Code: s.Code, IsActive: s.IsActive}
}

func equipmentSummary(e *domain.Equipment) domain.ItemSummary {
	return domain.ItemSummary{ID: e.ID, Name: e.Name, Code: e.Code, IsActive: e.IsActive}
}

func subEquipmentSummary(s *domain.SubEquipment) domain.ItemSummary {
	return domain.ItemSummary{ID: s.ID, Name: s.Name, IsActive: s.IsActive}
}

func tankSummary(e *domain.Equipment) domain.TankSummary {
	return domain.TankSummary{ID: e.ID, Name: e.Name, CurrentBiomass: e.CurrentBiomass}
}

func linkSummary(l *domain.EquipmentSystemLink) domain.LinkSummary {
	return domain.LinkSummary{EquipmentID: l.EquipmentID, SystemID: l.SystemID, IsPrimary: l.IsPrimary}
}
