package domain

// DependentClass names one category of dependents that can count toward
// the non-cascade "has dependents" check.
type DependentClass string

const (
	DependentDepartments  DependentClass = "departments"
	DependentSystems      DependentClass = "systems"
	DependentEquipment    DependentClass = "equipment"
	DependentTanks        DependentClass = "tanks"
	DependentSubEquipment DependentClass = "sub_equipment"
	DependentLinks        DependentClass = "links"
)

// DependentPolicy declares, per root kind, which dependent classes make a
// non-cascade delete fail with HAS_DEPENDENTS. This is a configuration
// table rather than per-kind code: the legacy coverage is inconsistent
// across kinds (systems ignore their connected equipment, departments do
// not), and callers may tighten it without touching the cascade algorithm.
type DependentPolicy map[Kind][]DependentClass

// DefaultDependentPolicy mirrors the legacy behavior:
//   - site: departments
//   - department: equipment + tanks
//   - system: child systems only (connected equipment deliberately ignored)
//   - equipment: child equipment and tanks
func DefaultDependentPolicy() DependentPolicy {
	return DependentPolicy{
		KindSite:       {DependentDepartments},
		KindDepartment: {DependentEquipment, DependentTanks},
		KindSystem:     {DependentSystems},
		KindEquipment:  {DependentEquipment, DependentTanks},
	}
}

// Counts reports whether class counts toward HAS_DEPENDENTS for kind.
func (p DependentPolicy) Counts(kind Kind, class DependentClass) bool {
	for _, c := range p[kind] {
		if c == class {
			return true
		}
	}
	return false
}
