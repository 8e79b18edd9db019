package entstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/store"
	"aquafarm.io/steward/internal/testutil"
)

// These tests need a real PostgreSQL (TEST_DATABASE_URL); they are skipped
// otherwise. The engine itself is covered by the in-memory store tests.

const testTenant = "tenant-1"

func seedClient(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	_, err := client.Site.Create().
		SetID("S").SetTenantID(testTenant).
		SetName("North Farm").SetCode("NF").SetCreatedBy("seed").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Department.Create().
		SetID("D").SetTenantID(testTenant).
		SetName("Grow-out").SetCode("GO").SetSiteID("S").SetCreatedBy("seed").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Equipment.Create().
		SetID("T1").SetTenantID(testTenant).
		SetName("Tank 1").SetCode("T1").SetDepartmentID("D").
		SetIsTank(true).SetCurrentBiomass(42.5).SetCreatedBy("seed").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Equipment.Create().
		SetID("F1").SetTenantID(testTenant).
		SetName("Drum Filter").SetCode("DF1").SetDepartmentID("D").
		SetSubEquipmentCount(1).SetCreatedBy("seed").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SubEquipment.Create().
		SetID("SE1").SetTenantID(testTenant).
		SetName("O2 Sensor").SetParentEquipmentID("F1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.System.Create().
		SetID("SYS").SetTenantID(testTenant).
		SetName("RAS Loop").SetCode("RAS").SetDepartmentID("D").SetCreatedBy("seed").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.EquipmentSystem.Create().
		SetID("L1").SetTenantID(testTenant).
		SetEquipmentID("F1").SetSystemID("SYS").
		Save(ctx)
	require.NoError(t, err)
}

func TestStoreLookupsAndSoftDelete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore")
	seedClient(t, client)

	st := New(client)
	ctx := context.Background()

	site, err := st.SiteByID(ctx, testTenant, "S")
	require.NoError(t, err)
	require.NotNil(t, site)
	assert.Equal(t, "North Farm", site.Name)

	// Wrong tenant sees nothing.
	site, err = st.SiteByID(ctx, "tenant-2", "S")
	require.NoError(t, err)
	assert.Nil(t, site)

	tanks, err := st.TanksByDepartments(ctx, testTenant, []string{"D"})
	require.NoError(t, err)
	require.Len(t, tanks, 1)
	assert.InDelta(t, 42.5, tanks[0].CurrentBiomass, 0.001)

	stamp := domain.NewDeleteStamp("u-1")
	n, err := st.SoftDeleteSites(ctx, testTenant, []string{"S"}, stamp)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Deleted rows become invisible and a second pass is a no-op.
	site, err = st.SiteByID(ctx, testTenant, "S")
	require.NoError(t, err)
	assert.Nil(t, site)

	n, err = st.SoftDeleteSites(ctx, testTenant, []string{"S"}, stamp)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreOrphanAndLinks(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore")
	seedClient(t, client)

	st := New(client)
	ctx := context.Background()

	n, err := st.OrphanDepartmentsOfSite(ctx, testTenant, "S")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dept, err := st.DepartmentByID(ctx, testTenant, "D")
	require.NoError(t, err)
	require.NotNil(t, dept)
	assert.Empty(t, dept.SiteID)

	links, err := st.LinksByEquipment(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	require.Len(t, links, 1)

	n, err = st.DeleteLinksByEquipment(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	links, err = st.LinksByEquipment(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestStoreSubEquipmentAndCounter(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore")
	seedClient(t, client)

	st := New(client)
	ctx := context.Background()

	subs, err := st.SubEquipmentByParents(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	require.Len(t, subs, 1)

	n, err := st.DeactivateSubEquipmentByParents(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Inactive sub-equipment drops out of the listing.
	subs, err = st.SubEquipmentByParents(ctx, testTenant, []string{"F1"})
	require.NoError(t, err)
	assert.Empty(t, subs)

	require.NoError(t, st.AddSubEquipmentCount(ctx, testTenant, "F1", -1))
	eq, err := st.EquipmentByID(ctx, testTenant, "F1")
	require.NoError(t, err)
	require.NotNil(t, eq)
	assert.Equal(t, 0, eq.SubEquipmentCount)

	// Decrement below zero is a no-op, not an error.
	require.NoError(t, st.AddSubEquipmentCount(ctx, testTenant, "F1", -1))
	eq, err = st.EquipmentByID(ctx, testTenant, "F1")
	require.NoError(t, err)
	assert.Equal(t, 0, eq.SubEquipmentCount)
}

func TestStoreInTxRollsBackOnError(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore")
	seedClient(t, client)

	st := New(client)
	ctx := context.Background()
	stamp := domain.NewDeleteStamp("u-1")

	err := st.InTx(ctx, func(tx store.Store) error {
		n, err := tx.SoftDeleteSites(ctx, testTenant, []string{"S"}, stamp)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	// The delete rolled back with the failed transaction.
	site, err := st.SiteByID(ctx, testTenant, "S")
	require.NoError(t, err)
	assert.NotNil(t, site)
}
