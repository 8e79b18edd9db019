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

// DeleteEquipmentUseCase deletes an equipment subtree: sub-equipment of
// the closure is deactivated, the closure's junction rows are
// hard-deleted, descendants are soft-deleted leaves first, the root is
// soft-deleted, and the parent's denormalized child counter steps down by
// one.
type DeleteEquipmentUseCase struct {
	store    store.Store
	affected *service.AffectedAggregator
	policy   domain.DependentPolicy
	observer domain.MutationObserver
}

// NewDeleteEquipmentUseCase creates the use case with the default
// dependent policy.
func NewDeleteEquipmentUseCase(st store.Store, affected *service.AffectedAggregator) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{store: st, affected: affected, policy: domain.DefaultDependentPolicy()}
}

// WithPolicy overrides the dependent policy (optional dependency).
func (uc *DeleteEquipmentUseCase) WithPolicy(p domain.DependentPolicy) *DeleteEquipmentUseCase {
	uc.policy = p
	return uc
}

// WithObserver sets the post-commit mutation observer (optional dependency).
func (uc *DeleteEquipmentUseCase) WithObserver(obs domain.MutationObserver) *DeleteEquipmentUseCase {
	uc.observer = obs
	return uc
}

// Preview computes the dry-run result without mutating anything. A tank
// root with live biomass blocks its own deletion; it shows up in the
// blockers but not in the affected summaries.
func (uc *DeleteEquipmentUseCase) Preview(ctx context.Context, tenantID, id string) (*domain.Preview, error) {
	eq, err := uc.store.EquipmentByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment %s: %w", id, err)
	}
	if eq == nil {
		return nil, apperrors.NotFound(apperrors.CodeEquipmentNotFound, fmt.Sprintf("equipment %s not found", id))
	}

	res, err := uc.affected.ForEquipment(ctx, eq)
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

// Execute runs the equipment delete. Blockers are re-evaluated here
// regardless of any earlier preview.
//
// The counter decrement runs once per successful delete; a repeated call
// stops at NOT_FOUND before reaching it, so the parent's counter never
// drops twice for the same child.
func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, input DeleteInput) (*DeleteResult, error) {
	eq, err := uc.store.EquipmentByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get equipment %s: %w", input.ID, err)
	}
	if eq == nil {
		return nil, apperrors.NotFound(apperrors.CodeEquipmentNotFound, fmt.Sprintf("equipment %s not found", input.ID))
	}

	res, err := uc.affected.ForEquipment(ctx, eq)
	if err != nil {
		return nil, err
	}
	if blockers := service.FindBiomassBlockers(res.BlockerTanks); len(blockers) > 0 {
		return nil, blockedError(blockers)
	}
	if !input.Cascade {
		if n := dependentCount(uc.policy, domain.KindEquipment, res.Set); n > 0 {
			return nil, hasDependentsError(domain.KindEquipment, n)
		}
	}

	stamp := domain.NewDeleteStamp(input.UserID)
	result := &DeleteResult{}
	var mutations []domain.Mutation

	closureIDs := []string{eq.ID}
	for _, descendant := range service.FlattenEquipment(res.EquipmentLevels) {
		closureIDs = append(closureIDs, descendant.ID)
	}

	err = uc.store.InTx(ctx, func(tx store.Store) error {
		n, err := tx.DeactivateSubEquipmentByParents(ctx, input.TenantID, closureIDs)
		if err != nil {
			return storeFailure(err, "deactivate_sub_equipment", input.ID)
		}
		result.Deactivated += n
		for _, subID := range summaryIDs(res.Set.SubEquipment) {
			mutations = append(mutations, newMutation(domain.MutationDeactivated, "sub_equipment", subID, input))
		}

		n, err = tx.DeleteLinksByEquipment(ctx, input.TenantID, closureIDs)
		if err != nil {
			return storeFailure(err, "delete_links", input.ID)
		}
		result.LinksCut += n
		for _, link := range res.Set.Links {
			mutations = append(mutations, newMutation(domain.MutationLinkRemoved, "link",
				fmt.Sprintf("%s:%s", link.EquipmentID, link.SystemID), input))
		}

		// Descendants go deepest level first.
		for i := len(res.EquipmentLevels) - 1; i >= 0; i-- {
			ids := equipmentIDs(res.EquipmentLevels[i])
			n, err := tx.SoftDeleteEquipment(ctx, input.TenantID, ids, stamp)
			if err != nil {
				return storeFailure(err, "soft_delete_descendant_equipment", input.ID)
			}
			result.Affected += n
			for _, eqID := range ids {
				mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindEquipment.String(), eqID, input))
			}
		}

		if _, err := tx.SoftDeleteEquipment(ctx, input.TenantID, []string{eq.ID}, stamp); err != nil {
			return storeFailure(err, "soft_delete_equipment", input.ID)
		}
		mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindEquipment.String(), eq.ID, input))

		// One step down on the direct parent only; ancestors further up
		// never counted this subtree's inner nodes.
		if eq.ParentEquipmentID != "" {
			if err := tx.AddSubEquipmentCount(ctx, input.TenantID, eq.ParentEquipmentID, -1); err != nil {
				return storeFailure(err, "decrement_parent_counter", input.ID)
			}
			mutations = append(mutations, newMutation(domain.MutationCounterStep, domain.KindEquipment.String(), eq.ParentEquipmentID, input))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Deleted = true
	result.Mutations = mutations
	notifyMutations(ctx, uc.observer, mutations)

	logger.Info("equipment deleted",
		zap.String("equipment_id", eq.ID),
		zap.String("tenant_id", input.TenantID),
		zap.String("deleted_by", input.UserID),
		zap.Int("descendants_deleted", result.Affected),
		zap.Int("sub_equipment_deactivated", result.Deactivated),
		zap.Int("links_removed", result.LinksCut),
	)
	return result, nil
}
