package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/store/storetest"
)

const testTenant = "tenant-1"

func system(id, parentID string) domain.System {
	return domain.System{ID: id, TenantID: testTenant, Name: id, ParentSystemID: parentID, IsActive: true}
}

func equipment(id, parentID string) domain.Equipment {
	return domain.Equipment{ID: id, TenantID: testTenant, Name: id, ParentEquipmentID: parentID, IsActive: true}
}

func TestSystemLevels(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddSystem(system("root", "")).
		AddSystem(system("a", "root")).
		AddSystem(system("b", "root")).
		AddSystem(system("a1", "a")).
		AddSystem(system("unrelated", ""))

	levels, err := NewHierarchyResolver(st).SystemLevels(context.Background(), testTenant, "root")
	require.NoError(t, err)
	require.Len(t, levels, 2)

	require.Equal(t, []string{"a", "b"}, systemIDsOf(levels[0]))
	require.Equal(t, []string{"a1"}, systemIDsOf(levels[1]))
}

func TestSystemLevelsSkipsDeleted(t *testing.T) {
	t.Parallel()

	deleted := system("a", "root")
	deleted.IsDeleted = true

	st := storetest.New().
		AddSystem(system("root", "")).
		AddSystem(deleted).
		AddSystem(system("a1", "a")). // unreachable: parent is deleted
		AddSystem(system("b", "root"))

	levels, err := NewHierarchyResolver(st).SystemLevels(context.Background(), testTenant, "root")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.Equal(t, []string{"b"}, systemIDsOf(levels[0]))
}

func TestEquipmentLevelsCycleTerminates(t *testing.T) {
	t.Parallel()

	// a -> b -> a: corrupted parent pointers must not hang the walk.
	st := storetest.New().
		AddEquipment(equipment("a", "b")).
		AddEquipment(equipment("b", "a"))

	levels, err := NewHierarchyResolver(st).EquipmentLevels(context.Background(), testTenant, "a")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.Equal(t, []string{"b"}, equipmentIDsOf(levels[0]))
}

func TestFlattenEquipmentParentBeforeChild(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddEquipment(equipment("root", "")).
		AddEquipment(equipment("mid", "root")).
		AddEquipment(equipment("leaf", "mid"))

	levels, err := NewHierarchyResolver(st).EquipmentLevels(context.Background(), testTenant, "root")
	require.NoError(t, err)

	flat := FlattenEquipment(levels)
	require.Equal(t, []string{"mid", "leaf"}, equipmentIDsOf(flat))
}

func systemIDsOf(items []*domain.System) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func equipmentIDsOf(items []*domain.Equipment) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
