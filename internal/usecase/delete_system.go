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

// DeleteSystemUseCase deletes a system subtree: descendants are
// soft-deleted leaves first, the junction rows of the whole closure are
// hard-deleted, connected equipment is deactivated (never deleted), then
// the root system is soft-deleted.
type DeleteSystemUseCase struct {
	store    store.Store
	affected *service.AffectedAggregator
	policy   domain.DependentPolicy
	observer domain.MutationObserver
}

// NewDeleteSystemUseCase creates the use case with the default dependent
// policy.
func NewDeleteSystemUseCase(st store.Store, affected *service.AffectedAggregator) *DeleteSystemUseCase {
	return &DeleteSystemUseCase{store: st, affected: affected, policy: domain.DefaultDependentPolicy()}
}

// WithPolicy overrides the dependent policy (optional dependency).
func (uc *DeleteSystemUseCase) WithPolicy(p domain.DependentPolicy) *DeleteSystemUseCase {
	uc.policy = p
	return uc
}

// WithObserver sets the post-commit mutation observer (optional dependency).
func (uc *DeleteSystemUseCase) WithObserver(obs domain.MutationObserver) *DeleteSystemUseCase {
	uc.observer = obs
	return uc
}

// Preview computes the dry-run result without mutating anything.
func (uc *DeleteSystemUseCase) Preview(ctx context.Context, tenantID, id string) (*domain.Preview, error) {
	sys, err := uc.store.SystemByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get system %s: %w", id, err)
	}
	if sys == nil {
		return nil, apperrors.NotFound(apperrors.CodeSystemNotFound, fmt.Sprintf("system %s not found", id))
	}

	res, err := uc.affected.ForSystem(ctx, sys)
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

// Execute runs the system delete. Blockers are re-evaluated here
// regardless of any earlier preview.
func (uc *DeleteSystemUseCase) Execute(ctx context.Context, input DeleteInput) (*DeleteResult, error) {
	sys, err := uc.store.SystemByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get system %s: %w", input.ID, err)
	}
	if sys == nil {
		return nil, apperrors.NotFound(apperrors.CodeSystemNotFound, fmt.Sprintf("system %s not found", input.ID))
	}

	res, err := uc.affected.ForSystem(ctx, sys)
	if err != nil {
		return nil, err
	}
	if blockers := service.FindBiomassBlockers(res.BlockerTanks); len(blockers) > 0 {
		return nil, blockedError(blockers)
	}
	if !input.Cascade {
		if n := dependentCount(uc.policy, domain.KindSystem, res.Set); n > 0 {
			return nil, hasDependentsError(domain.KindSystem, n)
		}
	}

	stamp := domain.NewDeleteStamp(input.UserID)
	result := &DeleteResult{}
	var mutations []domain.Mutation

	closureIDs := []string{sys.ID}
	for _, descendant := range service.FlattenSystems(res.SystemLevels) {
		closureIDs = append(closureIDs, descendant.ID)
	}
	connectedIDs := append(summaryIDs(res.Set.Equipment), tankIDs(res.Set.Tanks)...)

	err = uc.store.InTx(ctx, func(tx store.Store) error {
		// Descendants go deepest level first.
		for i := len(res.SystemLevels) - 1; i >= 0; i-- {
			ids := make([]string, 0, len(res.SystemLevels[i]))
			for _, s := range res.SystemLevels[i] {
				ids = append(ids, s.ID)
			}
			n, err := tx.SoftDeleteSystems(ctx, input.TenantID, ids, stamp)
			if err != nil {
				return storeFailure(err, "soft_delete_descendant_systems", input.ID)
			}
			result.Affected += n
			for _, sysID := range ids {
				mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindSystem.String(), sysID, input))
			}
		}

		n, err := tx.DeleteLinksBySystems(ctx, input.TenantID, closureIDs)
		if err != nil {
			return storeFailure(err, "delete_links", input.ID)
		}
		result.LinksCut += n
		for _, link := range res.Set.Links {
			mutations = append(mutations, newMutation(domain.MutationLinkRemoved, "link",
				fmt.Sprintf("%s:%s", link.EquipmentID, link.SystemID), input))
		}

		// Connected equipment survives with is_active=false; it may still
		// be linked to other systems or re-wired later.
		if len(connectedIDs) > 0 {
			n, err := tx.DeactivateEquipment(ctx, input.TenantID, connectedIDs)
			if err != nil {
				return storeFailure(err, "deactivate_equipment", input.ID)
			}
			result.Deactivated += n
			for _, eqID := range connectedIDs {
				mutations = append(mutations, newMutation(domain.MutationDeactivated, domain.KindEquipment.String(), eqID, input))
			}
		}

		if _, err := tx.SoftDeleteSystems(ctx, input.TenantID, []string{sys.ID}, stamp); err != nil {
			return storeFailure(err, "soft_delete_system", input.ID)
		}
		mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindSystem.String(), sys.ID, input))
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Deleted = true
	result.Mutations = mutations
	notifyMutations(ctx, uc.observer, mutations)

	logger.Info("system deleted",
		zap.String("system_id", sys.ID),
		zap.String("tenant_id", input.TenantID),
		zap.String("deleted_by", input.UserID),
		zap.Int("descendants_deleted", result.Affected),
		zap.Int("equipment_deactivated", result.Deactivated),
		zap.Int("links_removed", result.LinksCut),
	)
	return result, nil
}
