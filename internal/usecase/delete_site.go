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

// DeleteSiteUseCase deletes a site with its cascade:
// the tanks of its departments are soft-deleted, the departments are
// detached (site_id cleared) but survive, then the site is soft-deleted.
// Non-tank equipment of the departments stays with the orphaned
// departments.
type DeleteSiteUseCase struct {
	store    store.Store
	affected *service.AffectedAggregator
	policy   domain.DependentPolicy
	observer domain.MutationObserver
}

// NewDeleteSiteUseCase creates the use case with the default dependent
// policy.
func NewDeleteSiteUseCase(st store.Store, affected *service.AffectedAggregator) *DeleteSiteUseCase {
	return &DeleteSiteUseCase{store: st, affected: affected, policy: domain.DefaultDependentPolicy()}
}

// WithPolicy overrides the dependent policy (optional dependency).
func (uc *DeleteSiteUseCase) WithPolicy(p domain.DependentPolicy) *DeleteSiteUseCase {
	uc.policy = p
	return uc
}

// WithObserver sets the post-commit mutation observer (optional dependency).
func (uc *DeleteSiteUseCase) WithObserver(obs domain.MutationObserver) *DeleteSiteUseCase {
	uc.observer = obs
	return uc
}

// Preview computes the dry-run result without mutating anything.
func (uc *DeleteSiteUseCase) Preview(ctx context.Context, tenantID, id string) (*domain.Preview, error) {
	site, err := uc.store.SiteByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", id, err)
	}
	if site == nil {
		return nil, apperrors.NotFound(apperrors.CodeSiteNotFound, fmt.Sprintf("site %s not found", id))
	}

	res, err := uc.affected.ForSite(ctx, site)
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

// Execute runs the site delete.
// Step 1: fetch the root; a missing or already-deleted site is NOT_FOUND.
// Step 2: aggregate the affected set and re-evaluate blockers; preview
// results are advisory, never trusted here.
// Step 3: without cascade, any counted dependent fails the call.
// Step 4: apply the cascade in one transaction, leaves first.
// Step 5: after commit, hand the mutation log to the observer.
func (uc *DeleteSiteUseCase) Execute(ctx context.Context, input DeleteInput) (*DeleteResult, error) {
	site, err := uc.store.SiteByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", input.ID, err)
	}
	if site == nil {
		return nil, apperrors.NotFound(apperrors.CodeSiteNotFound, fmt.Sprintf("site %s not found", input.ID))
	}

	res, err := uc.affected.ForSite(ctx, site)
	if err != nil {
		return nil, err
	}
	if blockers := service.FindBiomassBlockers(res.BlockerTanks); len(blockers) > 0 {
		return nil, blockedError(blockers)
	}
	if !input.Cascade {
		if n := dependentCount(uc.policy, domain.KindSite, res.Set); n > 0 {
			return nil, hasDependentsError(domain.KindSite, n)
		}
	}

	stamp := domain.NewDeleteStamp(input.UserID)
	result := &DeleteResult{}
	var mutations []domain.Mutation

	err = uc.store.InTx(ctx, func(tx store.Store) error {
		// Tanks go first: they are the deepest rows this cascade touches.
		if ids := tankIDs(res.Set.Tanks); len(ids) > 0 {
			n, err := tx.SoftDeleteEquipment(ctx, input.TenantID, ids, stamp)
			if err != nil {
				return storeFailure(err, "soft_delete_tanks", input.ID)
			}
			result.Affected += n
			for _, tankID := range ids {
				mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindEquipment.String(), tankID, input))
			}
		}

		n, err := tx.OrphanDepartmentsOfSite(ctx, input.TenantID, site.ID)
		if err != nil {
			return storeFailure(err, "orphan_departments", input.ID)
		}
		result.Orphaned += n
		for _, depID := range summaryIDs(res.Set.Departments) {
			mutations = append(mutations, newMutation(domain.MutationOrphaned, domain.KindDepartment.String(), depID, input))
		}

		if _, err := tx.SoftDeleteSites(ctx, input.TenantID, []string{site.ID}, stamp); err != nil {
			return storeFailure(err, "soft_delete_site", input.ID)
		}
		mutations = append(mutations, newMutation(domain.MutationSoftDeleted, domain.KindSite.String(), site.ID, input))
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Deleted = true
	result.Mutations = mutations
	notifyMutations(ctx, uc.observer, mutations)

	logger.Info("site deleted",
		zap.String("site_id", site.ID),
		zap.String("tenant_id", input.TenantID),
		zap.String("deleted_by", input.UserID),
		zap.Int("tanks_deleted", result.Affected),
		zap.Int("departments_orphaned", result.Orphaned),
	)
	return result, nil
}
