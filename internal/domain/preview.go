package domain

// ItemSummary carries the display-relevant fields of one affected entity.
// Never full entity payloads; previews go straight to confirmation UIs.
type ItemSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	IsActive bool   `json:"is_active"`
}

// TankSummary is an ItemSummary specialization for tanks, carrying the
// biomass that drives the delete blocker.
type TankSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CurrentBiomass float64 `json:"current_biomass"`
}

// LinkSummary describes one equipment↔system junction row in an affected set.
type LinkSummary struct {
	EquipmentID string `json:"equipment_id"`
	SystemID    string `json:"system_id"`
	IsPrimary   bool   `json:"is_primary"`
}

// AffectedSet is the transitive closure of entities a delete would touch,
// grouped per kind. TotalCount() is UI/telemetry sugar, never a
// correctness input.
type AffectedSet struct {
	Departments  []ItemSummary `json:"departments,omitempty"`
	Systems      []ItemSummary `json:"systems,omitempty"`
	Equipment    []ItemSummary `json:"equipment,omitempty"`
	SubEquipment []ItemSummary `json:"sub_equipment,omitempty"`
	Tanks        []TankSummary `json:"tanks,omitempty"`
	Links        []LinkSummary `json:"links,omitempty"`
}

// TotalCount returns the sum of all summary list lengths.
func (a AffectedSet) TotalCount() int {
	return len(a.Departments) + len(a.Systems) + len(a.Equipment) +
		len(a.SubEquipment) + len(a.Tanks) + len(a.Links)
}

// Empty reports whether nothing would be affected beyond the root itself.
func (a AffectedSet) Empty() bool { return a.TotalCount() == 0 }

// Preview is the dry-run result returned to confirmation flows.
// Advisory only: delete re-evaluates blockers at execute time.
type Preview struct {
	CanDelete  bool        `json:"can_delete"`
	Blockers   []string    `json:"blockers"`
	Affected   AffectedSet `json:"affected"`
	TotalCount int         `json:"total_count"`
}
