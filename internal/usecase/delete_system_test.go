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

// seedSystemTree builds system ROOT with children A, B and grandchild A1,
// plus a pump linked to A1 and a tank linked to ROOT.
func seedSystemTree(tankBiomass float64) *storetest.Store {
	return storetest.New().
		AddSystem(domain.System{ID: "ROOT", TenantID: testTenant, IsActive: true}).
		AddSystem(domain.System{ID: "A", TenantID: testTenant, ParentSystemID: "ROOT", IsActive: true}).
		AddSystem(domain.System{ID: "B", TenantID: testTenant, ParentSystemID: "ROOT", IsActive: true}).
		AddSystem(domain.System{ID: "A1", TenantID: testTenant, ParentSystemID: "A", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "pump", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "tank", TenantID: testTenant, IsTank: true, CurrentBiomass: tankBiomass, IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "L1", TenantID: testTenant, EquipmentID: "pump", SystemID: "A1"}).
		AddLink(domain.EquipmentSystemLink{ID: "L2", TenantID: testTenant, EquipmentID: "tank", SystemID: "ROOT"})
}

func newSystemUseCase(st *storetest.Store) *DeleteSystemUseCase {
	agg := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st))
	return NewDeleteSystemUseCase(st, agg)
}

func TestDeleteSystemCascade(t *testing.T) {
	t.Parallel()

	st := seedSystemTree(0)
	uc := newSystemUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "ROOT", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.True(t, result.Deleted)
	require.Equal(t, 3, result.Affected) // A, B, A1
	require.Equal(t, 2, result.LinksCut)
	require.Equal(t, 2, result.Deactivated)

	// Deepest level first: A1 drops before A and B, root goes last.
	require.Less(t, st.OpIndex("SoftDeleteSystems(A1"), st.OpIndex("SoftDeleteSystems(A,B"))
	require.Less(t, st.OpIndex("SoftDeleteSystems(A,B"), st.OpIndex("DeleteLinksBySystems"))
	require.Less(t, st.OpIndex("DeleteLinksBySystems"), st.OpIndex("DeactivateEquipment"))
	require.Less(t, st.OpIndex("DeactivateEquipment"), st.OpIndex("SoftDeleteSystems(ROOT"))

	// Connected equipment is switched off, never deleted.
	pump := st.EquipmentState("pump")
	require.False(t, pump.IsDeleted)
	require.False(t, pump.IsActive)

	require.Zero(t, st.RemainingLinks(testTenant))

	for _, id := range []string{"ROOT", "A", "B", "A1"} {
		sys := st.SystemState(id)
		require.True(t, sys.IsDeleted, id)
		require.False(t, sys.IsActive, id)
	}
}

func TestDeleteSystemBlockedByConnectedTank(t *testing.T) {
	t.Parallel()

	uc := newSystemUseCase(seedSystemTree(4.2))
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "ROOT", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))
}

func TestDeleteSystemDependentsCountChildSystemsOnly(t *testing.T) {
	t.Parallel()

	// Leaf system with a linked pump: connected equipment does not count
	// toward HAS_DEPENDENTS, so a non-cascade delete goes through.
	st := storetest.New().
		AddSystem(domain.System{ID: "leaf", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "pump", TenantID: testTenant, IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "L", TenantID: testTenant, EquipmentID: "pump", SystemID: "leaf"})
	uc := newSystemUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "leaf", TenantID: testTenant, UserID: "u1"})
	require.NoError(t, err)
	require.True(t, result.Deleted)
	require.Equal(t, 1, result.LinksCut)
	require.Equal(t, 1, result.Deactivated)
}

func TestDeleteSystemWithChildrenWithoutCascadeFails(t *testing.T) {
	t.Parallel()

	uc := newSystemUseCase(seedSystemTree(0))
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "ROOT", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents))
}

func TestDeleteSystemNotFound(t *testing.T) {
	t.Parallel()

	uc := newSystemUseCase(storetest.New())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "nope", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeSystemNotFound))
}
