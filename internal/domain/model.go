// Package domain provides domain models for AquaFarm Steward.
//
// Store implementations return domain types, NOT ORM rows (Anti-Corruption Layer).
package domain

import "time"

// Kind identifies one of the deletable entity kinds in the farm hierarchy.
// The set is fixed and small; the integrity engine dispatches over it
// explicitly instead of using reflection-style generic repositories.
type Kind string

const (
	KindSite       Kind = "site"
	KindDepartment Kind = "department"
	KindSystem     Kind = "system"
	KindEquipment  Kind = "equipment"
)

// String returns the kind identifier.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSite, KindDepartment, KindSystem, KindEquipment:
		return true
	}
	return false
}

// Site is the top of the farm hierarchy.
type Site struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Location  string    `json:"location,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Department groups tanks, equipment and systems under a site.
// SiteID is empty after the owning site was deleted (orphan policy).
type Department struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	SiteID    string    `json:"site_id,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// System is a self-referencing tree node linked to equipment through the
// EquipmentSystem junction.
type System struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	SiteID         string    `json:"site_id,omitempty"`
	DepartmentID   string    `json:"department_id,omitempty"`
	ParentSystemID string    `json:"parent_system_id,omitempty"`
	IsDeleted      bool      `json:"is_deleted"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Equipment is a self-referencing tree node. A tank is equipment with
// IsTank=true; CurrentBiomass is only meaningful for tanks.
type Equipment struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"tenant_id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	DepartmentID      string    `json:"department_id,omitempty"`
	ParentEquipmentID string    `json:"parent_equipment_id,omitempty"`
	SubEquipmentCount int       `json:"sub_equipment_count"`
	IsTank            bool      `json:"is_tank"`
	CurrentBiomass    float64   `json:"current_biomass"`
	IsDeleted         bool      `json:"is_deleted"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// SubEquipment is an accessory part mounted on an equipment item.
// It has no soft-delete fields; deactivation is terminal.
type SubEquipment struct {
	ID                string `json:"id"`
	TenantID          string `json:"tenant_id"`
	Name              string `json:"name"`
	ParentEquipmentID string `json:"parent_equipment_id"`
	IsActive          bool   `json:"is_active"`
}

// EquipmentSystemLink is a row of the equipment↔system junction table.
type EquipmentSystemLink struct {
	ID               string `json:"id"`
	TenantID         string `json:"tenant_id"`
	EquipmentID      string `json:"equipment_id"`
	SystemID         string `json:"system_id"`
	IsPrimary        bool   `json:"is_primary"`
	CriticalityLevel string `json:"criticality_level"`
}

// DeleteStamp carries the audit fields written on every soft delete.
// A single stamp is created per delete call so deleted_at is identical
// across the whole cascade of one operation.
type DeleteStamp struct {
	At time.Time
	By string
}

// NewDeleteStamp creates a stamp for the acting user at the current time.
func NewDeleteStamp(userID string) DeleteStamp {
	return DeleteStamp{At: time.Now().UTC(), By: userID}
}
