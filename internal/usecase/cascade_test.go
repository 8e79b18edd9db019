package usecase

import (
	"os"
	"testing"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func TestOrderEquipmentLeavesFirst(t *testing.T) {
	t.Parallel()

	eq := func(id, parent string) *domain.Equipment {
		return &domain.Equipment{ID: id, ParentEquipmentID: parent}
	}

	tests := []struct {
		name  string
		items []*domain.Equipment
		want  [][]string
	}{
		{
			name:  "empty",
			items: nil,
			want:  nil,
		},
		{
			name:  "flat set with no internal parents",
			items: []*domain.Equipment{eq("a", ""), eq("b", "outside")},
			want:  [][]string{{"a", "b"}},
		},
		{
			name: "chain peels from the leaf",
			items: []*domain.Equipment{
				eq("root", ""), eq("mid", "root"), eq("leaf", "mid"),
			},
			want: [][]string{{"leaf"}, {"mid"}, {"root"}},
		},
		{
			name: "two subtrees peel level by level",
			items: []*domain.Equipment{
				eq("r1", ""), eq("r2", ""),
				eq("c1", "r1"), eq("c2", "r2"),
			},
			want: [][]string{{"c1", "c2"}, {"r1", "r2"}},
		},
		{
			name: "cycle dumps remainder in one final level",
			items: []*domain.Equipment{
				eq("a", "b"), eq("b", "a"), eq("free", ""),
			},
			want: [][]string{{"free"}, {"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderEquipmentLeavesFirst(tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("levels = %d, want %d", len(got), len(tt.want))
			}
			for i, level := range got {
				ids := equipmentIDs(level)
				if len(ids) != len(tt.want[i]) {
					t.Fatalf("level %d = %v, want %v", i, ids, tt.want[i])
				}
				for j := range ids {
					if ids[j] != tt.want[i][j] {
						t.Errorf("level %d = %v, want %v", i, ids, tt.want[i])
						break
					}
				}
			}
		})
	}
}

func TestDependentCount(t *testing.T) {
	t.Parallel()

	set := domain.AffectedSet{
		Departments: []domain.ItemSummary{{ID: "d1"}},
		Systems:     []domain.ItemSummary{{ID: "s1"}, {ID: "s2"}},
		Equipment:   []domain.ItemSummary{{ID: "e1"}},
		Tanks:       []domain.TankSummary{{ID: "t1"}},
		Links:       []domain.LinkSummary{{EquipmentID: "e1", SystemID: "s1"}},
	}
	policy := domain.DefaultDependentPolicy()

	tests := []struct {
		kind domain.Kind
		want int
	}{
		{domain.KindSite, 1},       // departments only
		{domain.KindDepartment, 2}, // equipment + tanks
		{domain.KindSystem, 2},     // child systems only, connected equipment ignored
		{domain.KindEquipment, 2},  // child equipment + tanks
	}
	for _, tt := range tests {
		if got := dependentCount(policy, tt.kind, set); got != tt.want {
			t.Errorf("dependentCount(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
