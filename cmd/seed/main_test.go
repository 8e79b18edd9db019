package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTopology = `
tenant_id: tenant-1
created_by: ops
sites:
  - id: site-north
    name: North Farm
    code: NF
    location: Coastal zone 3
    departments:
      - id: dept-growout
        name: Grow-out
        code: GO
        equipment:
          - id: tank-1
            name: Tank 1
            code: T1
            is_tank: true
            current_biomass: 120.5
          - id: filter-1
            name: Drum Filter
            code: DF1
            sub_equipment:
              - id: sensor-1
                name: O2 Sensor
        systems:
          - id: sys-ras
            name: RAS Loop
            code: RAS
links:
  - equipment_id: tank-1
    system_id: sys-ras
    is_primary: true
    criticality: HIGH
`

func writeTopology(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTopology(t *testing.T) {
	topo, err := loadTopology(writeTopology(t, sampleTopology))
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", topo.TenantID)
	assert.Equal(t, "ops", topo.CreatedBy)
	require.Len(t, topo.Sites, 1)

	site := topo.Sites[0]
	require.Len(t, site.Departments, 1)

	dept := site.Departments[0]
	require.Len(t, dept.Equipment, 2)
	assert.True(t, dept.Equipment[0].IsTank)
	assert.InDelta(t, 120.5, dept.Equipment[0].CurrentBiomass, 0.001)
	require.Len(t, dept.Equipment[1].SubEquipment, 1)
	require.Len(t, dept.Systems, 1)

	require.Len(t, topo.Links, 1)
	assert.Equal(t, "HIGH", topo.Links[0].Criticality)
}

func TestLoadTopology_MissingFile(t *testing.T) {
	_, err := loadTopology(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestTopologyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Topology)
		wantErr string
	}{
		{
			name:    "missing tenant",
			mutate:  func(tp *Topology) { tp.TenantID = "" },
			wantErr: "tenant_id is required",
		},
		{
			name:    "site without code",
			mutate:  func(tp *Topology) { tp.Sites[0].Code = "" },
			wantErr: "sites[0]: name and code are required",
		},
		{
			name:    "department without name",
			mutate:  func(tp *Topology) { tp.Sites[0].Departments[0].Name = "" },
			wantErr: "sites[0].departments[0]: name and code are required",
		},
		{
			name:    "link without system",
			mutate:  func(tp *Topology) { tp.Links[0].SystemID = "" },
			wantErr: "links[0]: equipment_id and system_id are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := loadTopology(writeTopology(t, sampleTopology))
			require.NoError(t, err)

			tt.mutate(topo)
			err = topo.Validate()
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateDefaultsCreatedBy(t *testing.T) {
	topo := &Topology{TenantID: "tenant-1"}
	require.NoError(t, topo.Validate())
	assert.Equal(t, "seed", topo.CreatedBy)
}

func TestOrNewID(t *testing.T) {
	assert.Equal(t, "fixed", orNewID("fixed"))
	assert.NotEmpty(t, orNewID(""))
	assert.NotEqual(t, orNewID(""), orNewID(""))
}
