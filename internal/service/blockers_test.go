package service

import (
	"testing"

	"aquafarm.io/steward/internal/domain"
)

func TestFindBiomassBlockers(t *testing.T) {
	t.Parallel()

	tank := func(id string, biomass float64) *domain.Equipment {
		return &domain.Equipment{ID: id, IsTank: true, CurrentBiomass: biomass}
	}

	tests := []struct {
		name  string
		tanks []*domain.Equipment
		want  []string
	}{
		{
			name:  "no tanks",
			tanks: nil,
			want:  nil,
		},
		{
			name:  "zero biomass tanks do not block",
			tanks: []*domain.Equipment{tank("t1", 0), tank("t2", 0)},
			want:  nil,
		},
		{
			name:  "single blocking tank",
			tanks: []*domain.Equipment{tank("t1", 12.5)},
			want:  []string{"1 tank(s) contain 12.50 kg of active biomass. Please harvest or transfer fish before deleting."},
		},
		{
			name:  "multiple tanks aggregate into one message",
			tanks: []*domain.Equipment{tank("t1", 10), tank("t2", 0), tank("t3", 5.25)},
			want:  []string{"2 tank(s) contain 15.25 kg of active biomass. Please harvest or transfer fish before deleting."},
		},
		{
			name: "non-tank equipment with stray biomass ignored",
			tanks: []*domain.Equipment{
				{ID: "e1", IsTank: false, CurrentBiomass: 99},
				tank("t1", 1),
			},
			want: []string{"1 tank(s) contain 1.00 kg of active biomass. Please harvest or transfer fish before deleting."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindBiomassBlockers(tt.tanks)
			if got == nil {
				t.Fatal("blockers must be an empty list, not nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("blockers = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("blocker[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
