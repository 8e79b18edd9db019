package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"aquafarm.io/steward/internal/domain"
	apperrors "aquafarm.io/steward/internal/pkg/errors"
	"aquafarm.io/steward/internal/service"
	"aquafarm.io/steward/internal/store/storetest"
)

const testTenant = "tenant-1"

// seedFarm builds the reference topology: site S with department D,
// tank T1 in D, and an independent system SYS attached to D.
func seedFarm(tankBiomass float64) *storetest.Store {
	return storetest.New().
		AddSite(domain.Site{ID: "S", TenantID: testTenant, Name: "North Farm", IsActive: true}).
		AddDepartment(domain.Department{ID: "D", TenantID: testTenant, SiteID: "S", Name: "Grow-out", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "T1", TenantID: testTenant, DepartmentID: "D", Name: "Tank 1", IsTank: true, CurrentBiomass: tankBiomass, IsActive: true}).
		AddSystem(domain.System{ID: "SYS", TenantID: testTenant, DepartmentID: "D", Name: "RAS Loop", IsActive: true})
}

func newSiteUseCase(st *storetest.Store) *DeleteSiteUseCase {
	agg := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st))
	return NewDeleteSiteUseCase(st, agg)
}

func TestDeleteSitePreviewBlockedByBiomass(t *testing.T) {
	t.Parallel()

	uc := newSiteUseCase(seedFarm(12.5))
	preview, err := uc.Preview(context.Background(), testTenant, "S")
	require.NoError(t, err)

	require.False(t, preview.CanDelete)
	require.Equal(t,
		[]string{"1 tank(s) contain 12.50 kg of active biomass. Please harvest or transfer fish before deleting."},
		preview.Blockers)
	require.Len(t, preview.Affected.Departments, 1)
	require.Len(t, preview.Affected.Tanks, 1)
	require.Equal(t, 2, preview.TotalCount)
}

func TestDeleteSiteExecuteBlockedByBiomass(t *testing.T) {
	t.Parallel()

	uc := newSiteUseCase(seedFarm(12.5))
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Contains(t, appErr.Params, "blockers")
}

func TestDeleteSiteCascadeOrphansDepartments(t *testing.T) {
	t.Parallel()

	st := seedFarm(0) // harvested
	uc := newSiteUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.True(t, result.Deleted)

	// Department survives, detached from the site.
	dep := st.DepartmentState("D")
	require.False(t, dep.IsDeleted)
	require.Empty(t, dep.SiteID)

	// Tank and site are soft-deleted, and soft delete implies inactive.
	tank := st.EquipmentState("T1")
	require.True(t, tank.IsDeleted)
	require.False(t, tank.IsActive)

	site := st.SiteState("S")
	require.True(t, site.IsDeleted)
	require.False(t, site.IsActive)

	// Tanks drop before the departments detach, the root goes last.
	ops := st.Ops()
	require.Less(t, st.OpIndex("SoftDeleteEquipment"), st.OpIndex("OrphanDepartmentsOfSite"))
	require.Less(t, st.OpIndex("OrphanDepartmentsOfSite"), st.OpIndex("SoftDeleteSites"))
	require.Len(t, ops, 3)
}

func TestDeleteSiteWithoutCascadeFailsOnDependents(t *testing.T) {
	t.Parallel()

	uc := newSiteUseCase(seedFarm(0))
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents))
}

func TestDeleteSiteNotFound(t *testing.T) {
	t.Parallel()

	uc := newSiteUseCase(storetest.New())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "missing", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeSiteNotFound))

	_, err = uc.Preview(context.Background(), testTenant, "missing")
	require.True(t, apperrors.IsCode(err, apperrors.CodeSiteNotFound))
}

func TestDeleteSiteIdempotent(t *testing.T) {
	t.Parallel()

	st := seedFarm(0)
	uc := newSiteUseCase(st)
	input := DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1", Cascade: true}

	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	// The second call stops at the lookup: deleted rows are invisible.
	_, err = uc.Execute(context.Background(), input)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSiteNotFound))
}

func TestDeleteSiteObserverReceivesMutations(t *testing.T) {
	t.Parallel()

	st := seedFarm(0)
	var seen []domain.Mutation
	uc := newSiteUseCase(st).WithObserver(func(_ context.Context, m domain.Mutation) error {
		seen = append(seen, m)
		return nil
	})

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.Equal(t, result.Mutations, seen)

	types := make([]domain.MutationType, 0, len(seen))
	for _, m := range seen {
		types = append(types, m.Type)
	}
	require.Equal(t, []domain.MutationType{
		domain.MutationSoftDeleted, // tank
		domain.MutationOrphaned,    // department
		domain.MutationSoftDeleted, // site
	}, types)
}

func TestDeleteSiteStoreFailureWrapsStep(t *testing.T) {
	t.Parallel()

	st := seedFarm(0)
	st.FailOn["OrphanDepartmentsOfSite"] = context.DeadlineExceeded
	uc := newSiteUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "S", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeStoreFailure))

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, "orphan_departments", appErr.Params["step"])
}
