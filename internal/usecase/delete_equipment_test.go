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

// seedEquipmentTree builds PARENT -> TARGET -> CHILD with a sensor on
// CHILD and a junction row from TARGET to system SYS. PARENT's counter
// starts at 1 (TARGET is its only child).
func seedEquipmentTree() *storetest.Store {
	return storetest.New().
		AddEquipment(domain.Equipment{ID: "PARENT", TenantID: testTenant, SubEquipmentCount: 1, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "TARGET", TenantID: testTenant, ParentEquipmentID: "PARENT", SubEquipmentCount: 1, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "CHILD", TenantID: testTenant, ParentEquipmentID: "TARGET", IsActive: true}).
		AddSubEquipment(domain.SubEquipment{ID: "sensor", TenantID: testTenant, ParentEquipmentID: "CHILD", IsActive: true}).
		AddSystem(domain.System{ID: "SYS", TenantID: testTenant, IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "L", TenantID: testTenant, EquipmentID: "TARGET", SystemID: "SYS"})
}

func newEquipmentUseCase(st *storetest.Store) *DeleteEquipmentUseCase {
	agg := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st))
	return NewDeleteEquipmentUseCase(st, agg)
}

func TestDeleteEquipmentCascade(t *testing.T) {
	t.Parallel()

	st := seedEquipmentTree()
	uc := newEquipmentUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "TARGET", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.True(t, result.Deleted)
	require.Equal(t, 1, result.Affected) // CHILD
	require.Equal(t, 1, result.Deactivated)
	require.Equal(t, 1, result.LinksCut)

	// Subs off, links gone, descendants leaves-first, root, counter.
	require.Less(t, st.OpIndex("DeactivateSubEquipmentByParents"), st.OpIndex("DeleteLinksByEquipment"))
	require.Less(t, st.OpIndex("DeleteLinksByEquipment"), st.OpIndex("SoftDeleteEquipment(CHILD"))
	require.Less(t, st.OpIndex("SoftDeleteEquipment(CHILD"), st.OpIndex("SoftDeleteEquipment(TARGET"))
	require.Less(t, st.OpIndex("SoftDeleteEquipment(TARGET"), st.OpIndex("AddSubEquipmentCount"))

	parent := st.EquipmentState("PARENT")
	require.False(t, parent.IsDeleted)
	require.Equal(t, 0, parent.SubEquipmentCount)

	require.False(t, st.SubEquipmentState("sensor").IsActive)
	require.Zero(t, st.RemainingLinks(testTenant))
}

func TestDeleteEquipmentCounterDecrementsOnce(t *testing.T) {
	t.Parallel()

	st := seedEquipmentTree()
	uc := newEquipmentUseCase(st)
	input := DeleteInput{ID: "TARGET", TenantID: testTenant, UserID: "u1", Cascade: true}

	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	// Repeating the call stops at NOT_FOUND before the counter step.
	_, err = uc.Execute(context.Background(), input)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEquipmentNotFound))
	require.Equal(t, 0, st.EquipmentState("PARENT").SubEquipmentCount)
}

func TestDeleteEquipmentRootWithoutParentSkipsCounter(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddEquipment(domain.Equipment{ID: "solo", TenantID: testTenant, IsActive: true})
	uc := newEquipmentUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "solo", TenantID: testTenant, UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, -1, st.OpIndex("AddSubEquipmentCount"))
}

func TestDeleteEquipmentTankWithBiomassBlocksItself(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddEquipment(domain.Equipment{ID: "tank", TenantID: testTenant, IsTank: true, CurrentBiomass: 2.5, IsActive: true})
	uc := newEquipmentUseCase(st)

	preview, err := uc.Preview(context.Background(), testTenant, "tank")
	require.NoError(t, err)
	require.False(t, preview.CanDelete)
	require.Zero(t, preview.TotalCount) // the root is not its own dependent

	_, err = uc.Execute(context.Background(), DeleteInput{ID: "tank", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))
}

func TestDeleteEquipmentDescendantTankBlocks(t *testing.T) {
	t.Parallel()

	st := seedEquipmentTree().
		AddEquipment(domain.Equipment{ID: "nested-tank", TenantID: testTenant, ParentEquipmentID: "CHILD", IsTank: true, CurrentBiomass: 1, IsActive: true})
	uc := newEquipmentUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "TARGET", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))
}

func TestDeleteEquipmentWithoutCascadeFailsOnChildren(t *testing.T) {
	t.Parallel()

	uc := newEquipmentUseCase(seedEquipmentTree())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "TARGET", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents))
}

func TestDeleteEquipmentStoreFailureSurfacesStep(t *testing.T) {
	t.Parallel()

	st := seedEquipmentTree()
	st.FailOn["DeleteLinksByEquipment"] = context.DeadlineExceeded
	uc := newEquipmentUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "TARGET", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeStoreFailure))

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, "delete_links", appErr.Params["step"])
}
