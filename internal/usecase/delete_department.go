package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aquafarm.io/steward/internal/domain"
	apperrors "aquafarm.io/steward/internal/pkg/errors"
	"aquafarm.io/steward/internal/pkg/logger"
	"aquafarm.io/steward/internal/service"
	"aquafarm.io/steward/internal/store"
)

// DeleteDepartmentUseCase deletes a department with its cascade:
// sub-equipment of the department's equipment is deactivated, the
// equipment's junction rows are hard-deleted, the equipment itself
// (tanks included) is soft-deleted leaves first, the department's
// systems are detached (department_id cleared), then the department is
// soft-deleted.
type DeleteDepartmentUseCase struct {
	store    store.Store
	affected *service.AffectedAggregator
	policy   domain.DependentPolicy
	observer domain.MutationObserver
}

// NewDeleteDepartmentUseCase creates the use case with the default
// dependent policy.
func NewDeleteDepartmentUseCase(st store.Store, affected *service.AffectedAggregator) *DeleteDepartmentUseCase {
	return &DeleteDepartmentUseCase{store: st, affected: affected, policy: domain.DefaultDependentPolicy()}
}

// WithPolicy overrides the dependent policy (optional dependency).
func (uc *DeleteDepartmentUseCase) WithPolicy(p domain.DependentPolicy) *DeleteDepartmentUseCase {
	uc.policy = p
	return uc
}

// WithObserver sets the post-commit mutation observer (optional dependency).
func (uc *DeleteDepartmentUseCase) WithObserver(obs domain.MutationObserver) *DeleteDepartmentUseCase {
	uc.observer = obs
	return uc
}

// Preview computes the dry-run result without mutating anything.
func (uc *DeleteDepartmentUseCase) Preview(ctx context.Context, tenantID, id string) (*domain.Preview, error) {
	dep, err := uc.store.DepartmentByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get department %s: %w", id, err)
	}
	if dep == nil {
		return nil, apperrors.NotFound(apperrors.CodeDepartmentNotFound, fmt.Sprintf("department %s not found", id))
	}

	res, err := uc.affected.ForDepartment(ctx, dep)
	if err != nil {
		return nil, err
	}
	blockers := service.FindBiomassBlockers(res.BlockerTanks)
	return &domain.Preview{
		CanDelete:  len(blockers) == 0,
		Blockers:   blockers,
		Affected:   res.Set,
		TotalCount: res.Set.TotalCount(),
	}, nil
}

// Execute runs the department delete. Blockers are re-evaluated here
// regardless of any earlier preview.
func (uc *DeleteDepartmentUseCase) Execute(ctx context.Context, input DeleteInput) (*DeleteResult, error) {
	dep, err := uc.store.DepartmentByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get department %s: %w", input.ID, err)
	}
	if dep == nil {
		return nil, apperrors.NotFound(apperrors.CodeDepartmentNotFound, fmt.Sprintf("department %s not found", input.ID))
	}

	res, err := uc.affected.ForDepartment(ctx, dep)
	if err != nil {
		return nil, err
	}
	if blockers := service.FindBiomassBlockers(res.BlockerTanks); len(blockers) > 0 {
		return nil, blockedError(blockers)
	}
	if !input.Cascade {
		if n := dependentCount(uc.policy, domain.KindDepartment, res.Set); n > 0 {
			return nil, hasDependentsError(domain.KindDepartment, n)
		}
	}

	stamp := domain.NewDeleteStamp(input.UserID)
	result := &DeleteResult{}
	var mutations []domain.Mutation
	allEquipmentIDs := equipmentIDs(res.FlatEquipment)

	err = uc.store.InTx(ctx, func(tx store.Store) error {
		// Sub-equipment has no soft delete; it is switched off before its
		// parents disappear.
		if len(allEquipmentIDs) > 0 {
			n, err := tx.DeactivateSubEquipmentByParents(ctx, input.TenantID, allEquipmentIDs)
			if err != nil {
				return storeFailure(err, "deactivate_sub_equipment", input.ID)
			}
			result.Deactivated += n
			for _, subID := range summaryIDs(res.Set.SubEquipment) {
				mutations = append(mutations, newMutation(domain.MutationDeactivated, "sub_equipment", subID, input))
			}

			n, err = tx.DeleteLinksByEquipment(ctx, input.TenantID, allEquipmentIDs)
			if err != nil {
				return storeFailure(err, "delete_links", input.ID)
			}
			result.LinksCut += n
			for _, link := range res.Set.Links {
				mutations = append(mutations, newMutation(domain.MutationLinkRemoved, "link",
					fmt.Sprintf("%s:%s", link.EquipmentID, link.SystemID), input))
			}
		}

		// Equipment of a department is a flat set with internal parent
		// pointers; delete the leaves before their parents.
		for _, level := range orderEquipmentLeavesFirst(res.FlatEquipment) {
			ids := equipmentIDs(level)
			n, err := tx.SoftDeleteEquipment(ctx, input.TenantID, ids, stamp)
			if err != nil {
				return storeFailure(err, "soft_delete_equipment", input.ID)
			}
			result.Affected += n
			for _, eqID := range ids {
				mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindEquipment.String(), eqID, input))
			}
		}

		n, err := tx.OrphanSystemsOfDepartment(ctx, input.TenantID, dep.ID)
		if err != nil {
			return storeFailure(err, "orphan_systems", input.ID)
		}
		result.Orphaned += n
		for _, sysID := range summaryIDs(res.Set.Systems) {
			mutations = append(mutations, newMutation(domain.MutationOrphaned, domain.KindSystem.String(), sysID, input))
		}

		if _, err := tx.SoftDeleteDepartments(ctx, input.TenantID, []string{dep.ID}, stamp); err != nil {
			return storeFailure(err, "soft_delete_department", input.ID)
		}
		mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindDepartment.String(), dep.ID, input))
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Deleted = true
	result.Mutations = mutations
	notifyMutations(ctx, uc.observer, mutations)

	logger.Info("department deleted",
		zap.String("department_id", dep.ID),
		zap.String("tenant_id", input.TenantID),
		zap.String("deleted_by", input.UserID),
		zap.Int("equipment_deleted", result.Affected),
		zap.Int("systems_orphaned", result.Orphaned),
		zap.Int("links_removed", result.LinksCut),
	)
	return result, nil
}
