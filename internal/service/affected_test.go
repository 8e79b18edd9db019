package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/pkg/worker"
	"aquafarm.io/steward/internal/store/storetest"
)

func newAggregator(st *storetest.Store) *AffectedAggregator {
	return NewAffectedAggregator(st, NewHierarchyResolver(st))
}

func TestForSiteSplitsTanksFromEquipment(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddSite(domain.Site{ID: "s1", TenantID: testTenant, Name: "North Farm", IsActive: true}).
		AddDepartment(domain.Department{ID: "d1", TenantID: testTenant, SiteID: "s1", IsActive: true}).
		AddDepartment(domain.Department{ID: "d2", TenantID: testTenant, SiteID: "s1", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "t1", TenantID: testTenant, DepartmentID: "d1", IsTank: true, CurrentBiomass: 12.5, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "e1", TenantID: testTenant, DepartmentID: "d2", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "other", TenantID: testTenant, DepartmentID: "elsewhere", IsTank: true, IsActive: true})

	site, err := st.SiteByID(context.Background(), testTenant, "s1")
	require.NoError(t, err)

	res, err := newAggregator(st).ForSite(context.Background(), site)
	require.NoError(t, err)

	require.Len(t, res.Set.Departments, 2)
	require.Len(t, res.Set.Tanks, 1)
	require.Equal(t, "t1", res.Set.Tanks[0].ID)
	require.Equal(t, 12.5, res.Set.Tanks[0].CurrentBiomass)
	require.Len(t, res.Set.Equipment, 1)
	require.Equal(t, "e1", res.Set.Equipment[0].ID)
	require.Len(t, res.BlockerTanks, 1)
	require.Equal(t, 4, res.Set.TotalCount())
}

func TestForSiteWithQueryPool(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddSite(domain.Site{ID: "s1", TenantID: testTenant, IsActive: true})
	for _, dep := range []string{"d1", "d2", "d3", "d4"} {
		st.AddDepartment(domain.Department{ID: dep, TenantID: testTenant, SiteID: "s1", IsActive: true})
		st.AddEquipment(domain.Equipment{ID: "eq-" + dep, TenantID: testTenant, DepartmentID: dep, IsActive: true})
	}

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{GeneralPoolSize: 2, QueryPoolSize: 2})
	require.NoError(t, err)
	defer pools.Shutdown()

	site, err := st.SiteByID(context.Background(), testTenant, "s1")
	require.NoError(t, err)

	res, err := newAggregator(st).WithQueryPool(pools.Query).ForSite(context.Background(), site)
	require.NoError(t, err)
	require.Len(t, res.Set.Equipment, 4)
}

func TestForDepartmentExpandsEquipmentTrees(t *testing.T) {
	t.Parallel()

	// e1 carries the department FK; its descendants only carry
	// parent_equipment_id. The closure must still reach them.
	st := storetest.New().
		AddDepartment(domain.Department{ID: "d1", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "e1", TenantID: testTenant, DepartmentID: "d1", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "e2", TenantID: testTenant, ParentEquipmentID: "e1", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "t3", TenantID: testTenant, ParentEquipmentID: "e2", IsTank: true, CurrentBiomass: 7.5, IsActive: true}).
		AddSubEquipment(domain.SubEquipment{ID: "se1", TenantID: testTenant, ParentEquipmentID: "e2", IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "l1", TenantID: testTenant, EquipmentID: "e2", SystemID: "sys"})

	dep, err := st.DepartmentByID(context.Background(), testTenant, "d1")
	require.NoError(t, err)

	res, err := newAggregator(st).ForDepartment(context.Background(), dep)
	require.NoError(t, err)

	flatIDs := make([]string, 0, len(res.FlatEquipment))
	for _, eq := range res.FlatEquipment {
		flatIDs = append(flatIDs, eq.ID)
	}
	require.ElementsMatch(t, []string{"e1", "e2", "t3"}, flatIDs)

	require.Len(t, res.Set.Equipment, 2)
	require.Len(t, res.Set.Tanks, 1)
	require.Equal(t, "t3", res.Set.Tanks[0].ID)
	require.Len(t, res.BlockerTanks, 1)

	// Sub-equipment and junction rows of the deep child are in scope too.
	require.Len(t, res.Set.SubEquipment, 1)
	require.Equal(t, "se1", res.Set.SubEquipment[0].ID)
	require.Len(t, res.Set.Links, 1)
}

func TestForSiteReturnsAfterCancelledFanOut(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddSite(domain.Site{ID: "s1", TenantID: testTenant, IsActive: true}).
		AddDepartment(domain.Department{ID: "d1", TenantID: testTenant, SiteID: "s1", IsActive: true})

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{GeneralPoolSize: 1, QueryPoolSize: 1})
	require.NoError(t, err)
	defer pools.Shutdown()

	// Occupy the single query worker so the fan-out task has to wait.
	block := make(chan struct{})
	occupied := make(chan struct{})
	require.NoError(t, pools.Query.Submit(context.Background(), func(ctx context.Context) {
		close(occupied)
		<-block
	}))
	<-occupied

	site, err := st.SiteByID(context.Background(), testTenant, "s1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	agg := newAggregator(st).WithQueryPool(pools.Query)

	done := make(chan error, 1)
	go func() {
		_, err := agg.ForSite(ctx, site)
		done <- err
	}()

	// Cancel while the fan-out waits for a worker, then free it.
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(block)

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("ForSite still blocked after the worker freed")
	}
}

func TestForEquipmentRootTankBlocksButIsNotListed(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddEquipment(domain.Equipment{ID: "tank", TenantID: testTenant, IsTank: true, CurrentBiomass: 3, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "child", TenantID: testTenant, ParentEquipmentID: "tank", IsActive: true})

	root, err := st.EquipmentByID(context.Background(), testTenant, "tank")
	require.NoError(t, err)

	res, err := newAggregator(st).ForEquipment(context.Background(), root)
	require.NoError(t, err)

	// The root vetoes its own deletion but dependents-only summaries skip it.
	require.Len(t, res.BlockerTanks, 1)
	require.Equal(t, "tank", res.BlockerTanks[0].ID)
	require.Empty(t, res.Set.Tanks)
	require.Len(t, res.Set.Equipment, 1)
	require.Equal(t, "child", res.Set.Equipment[0].ID)
}

func TestForSystemCollectsClosureLinksAndConnectedEquipment(t *testing.T) {
	t.Parallel()

	st := storetest.New().
		AddSystem(domain.System{ID: "sys", TenantID: testTenant, IsActive: true}).
		AddSystem(domain.System{ID: "sub", TenantID: testTenant, ParentSystemID: "sys", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "pump", TenantID: testTenant, IsActive: true}).
		AddEquipment(domain.Equipment{ID: "tank", TenantID: testTenant, IsTank: true, CurrentBiomass: 8, IsActive: true}).
		AddLink(domain.EquipmentSystemLink{ID: "l1", TenantID: testTenant, EquipmentID: "pump", SystemID: "sys"}).
		AddLink(domain.EquipmentSystemLink{ID: "l2", TenantID: testTenant, EquipmentID: "tank", SystemID: "sub"}).
		AddLink(domain.EquipmentSystemLink{ID: "l3", TenantID: testTenant, EquipmentID: "pump", SystemID: "sub"})

	sys, err := st.SystemByID(context.Background(), testTenant, "sys")
	require.NoError(t, err)

	res, err := newAggregator(st).ForSystem(context.Background(), sys)
	require.NoError(t, err)

	require.Len(t, res.Set.Systems, 1)
	require.Len(t, res.Set.Links, 3)
	// pump linked twice still appears once.
	require.Len(t, res.Set.Equipment, 1)
	require.Len(t, res.Set.Tanks, 1)
	require.Len(t, res.BlockerTanks, 1)
}
