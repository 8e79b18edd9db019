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

// seedDepartment builds department D with a filter chain
// (filter-parent -> filter-child), a harvested tank, a sensor mounted on
// the parent filter, a junction row to system SYS, and SYS itself owned
// by D.
func seedDepartment() *storetest.Store {
	return storetest.New().
		AddDepartment(domain.Department{ID: "D", TenantID: testTenant, Name: "Grow-out", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "filter-parent", TenantID: testTenant, DepartmentID: "D", SubEquipmentCount: 1, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "filter-child", TenantID: testTenant, DepartmentID: "D", ParentEquipmentID: "filter-parent", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "tank", TenantID: testTenant, DepartmentID: "D", IsTank: true, IsActive: true}).
		AddSubEquipment(domain.SubEquipment{ID: "sensor", TenantID: testTenant, ParentEquipmentID: "filter-parent", IsActive: true}).
		AddSystem(domain.System{ID: "SYS", TenantID: testTenant, DepartmentID: "D", IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "L", TenantID: testTenant, EquipmentID: "filter-parent", SystemID: "SYS"})
}

func newDepartmentUseCase(st *storetest.Store) *DeleteDepartmentUseCase {
	agg := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st))
	return NewDeleteDepartmentUseCase(st, agg)
}

func TestDeleteDepartmentPreview(t *testing.T) {
	t.Parallel()

	uc := newDepartmentUseCase(seedDepartment())
	preview, err := uc.Preview(context.Background(), testTenant, "D")
	require.NoError(t, err)

	require.True(t, preview.CanDelete)
	require.Len(t, preview.Affected.Equipment, 2)
	require.Len(t, preview.Affected.Tanks, 1)
	require.Len(t, preview.Affected.SubEquipment, 1)
	require.Len(t, preview.Affected.Links, 1)
	require.Len(t, preview.Affected.Systems, 1)
	require.Equal(t, 6, preview.TotalCount)
}

func TestDeleteDepartmentCascadeReachesUndepartmentedChildren(t *testing.T) {
	t.Parallel()

	// The child rig rows never got a department FK; only the parent
	// points at D. The cascade must still take the whole tree down,
	// leaves first, so no live child keeps pointing at a deleted parent.
	st := storetest.New().
		AddDepartment(domain.Department{ID: "D", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "rig", TenantID: testTenant, DepartmentID: "D", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "rig-arm", TenantID: testTenant, ParentEquipmentID: "rig", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "rig-arm-valve", TenantID: testTenant, ParentEquipmentID: "rig-arm", IsActive: true})
	uc := newDepartmentUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.True(t, result.Deleted)
	require.Equal(t, 3, result.Affected)

	for _, id := range []string{"rig", "rig-arm", "rig-arm-valve"} {
		require.True(t, st.EquipmentState(id).IsDeleted, "equipment %s must be soft-deleted", id)
	}
	require.Less(t, st.OpIndex("SoftDeleteEquipment(rig-arm-valve"), st.OpIndex("SoftDeleteEquipment(rig-arm)"))
	require.Less(t, st.OpIndex("SoftDeleteEquipment(rig-arm)"), st.OpIndex("SoftDeleteEquipment(rig)"))
}

func TestDeleteDepartmentBlockedByDeepTank(t *testing.T) {
	t.Parallel()

	// A stocked tank hanging off a child without a department FK still
	// vetoes the delete.
	st := storetest.New().
		AddDepartment(domain.Department{ID: "D", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "rig", TenantID: testTenant, DepartmentID: "D", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "deep-tank", TenantID: testTenant, ParentEquipmentID: "rig", IsTank: true, CurrentBiomass: 4.5, IsActive: true})
	uc := newDepartmentUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))
	require.Empty(t, st.Ops())
}

func TestDeleteDepartmentCascadeOrder(t *testing.T) {
	t.Parallel()

	st := seedDepartment()
	uc := newDepartmentUseCase(st)

	result, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.NoError(t, err)
	require.True(t, result.Deleted)
	require.Equal(t, 3, result.Affected)
	require.Equal(t, 1, result.Deactivated)
	require.Equal(t, 1, result.LinksCut)
	require.Equal(t, 1, result.Orphaned)

	// Sub-equipment off, links gone, then equipment leaves-first, then
	// systems detached, root last.
	require.Less(t, st.OpIndex("DeactivateSubEquipmentByParents"), st.OpIndex("DeleteLinksByEquipment"))
	require.Less(t, st.OpIndex("DeleteLinksByEquipment"), st.OpIndex("SoftDeleteEquipment"))
	require.Less(t, st.OpIndex("SoftDeleteEquipment"), st.OpIndex("OrphanSystemsOfDepartment"))
	require.Less(t, st.OpIndex("OrphanSystemsOfDepartment"), st.OpIndex("SoftDeleteDepartments"))

	// filter-child must drop before filter-parent.
	require.Less(t, st.OpIndex("SoftDeleteEquipment(filter-child"), st.OpIndex("SoftDeleteEquipment(filter-parent"))

	// Junction table holds no rows for the tenant afterwards.
	require.Zero(t, st.RemainingLinks(testTenant))

	sensor := st.SubEquipmentState("sensor")
	require.False(t, sensor.IsActive)

	sys := st.SystemState("SYS")
	require.False(t, sys.IsDeleted)
	require.Empty(t, sys.DepartmentID)
}

func TestDeleteDepartmentBlockedByBiomass(t *testing.T) {
	t.Parallel()

	st := seedDepartment().
		AddEquipment(domain.Equipment{ID: "full-tank", TenantID: testTenant, DepartmentID: "D", IsTank: true, CurrentBiomass: 7.75, IsActive: true})
	uc := newDepartmentUseCase(st)

	_, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: testTenant, UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDeleteBlocked))

	// Nothing was touched.
	require.Empty(t, st.Ops())
}

func TestDeleteDepartmentWithoutCascadeFailsOnDependents(t *testing.T) {
	t.Parallel()

	uc := newDepartmentUseCase(seedDepartment())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents))
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	t.Parallel()

	uc := newDepartmentUseCase(storetest.New())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "nope", TenantID: testTenant, UserID: "u1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDepartmentNotFound))
}

func TestDeleteDepartmentTenantScoping(t *testing.T) {
	t.Parallel()

	uc := newDepartmentUseCase(seedDepartment())
	_, err := uc.Execute(context.Background(), DeleteInput{ID: "D", TenantID: "other-tenant", UserID: "u1", Cascade: true})
	require.True(t, apperrors.IsCode(err, apperrors.CodeDepartmentNotFound))
}
