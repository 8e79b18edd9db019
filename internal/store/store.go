// Package store defines the tenant-scoped data-access surface consumed by
// the referential-integrity engine.
//
// The entity kinds are fixed and small, so the surface is a typed
// per-kind interface set instead of string-keyed generic repositories.
// Every method takes the tenant id as a mandatory filter; cross-tenant
// visibility of any entity is a correctness violation.
//
// Lookup and child queries return non-deleted rows only: dependents of an
// already-deleted node are never re-visited. Absent rows are reported as
// (nil, nil), not errors; absence of a root is classified by the caller.
//
// All bulk mutations are idempotent (re-applying "set is_deleted=true" is
// a no-op); on stores with transactions the whole cascade runs inside
// InTx, on stores without, the leaves-first ordering alone keeps partial
// failures resumable.
package store

import (
	"context"

	"aquafarm.io/steward/internal/domain"
)

// Sites is the Site slice of the store surface.
type Sites interface {
	// SiteByID returns the non-deleted site or (nil, nil).
	SiteByID(ctx context.Context, tenantID, id string) (*domain.Site, error)

	// SoftDeleteSites marks the given non-deleted sites deleted and
	// inactive with the stamp. Returns the number of rows transitioned.
	SoftDeleteSites(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error)
}

// Departments is the Department slice of the store surface.
type Departments interface {
	DepartmentByID(ctx context.Context, tenantID, id string) (*domain.Department, error)

	// DepartmentsBySite returns non-deleted departments owned by the site.
	DepartmentsBySite(ctx context.Context, tenantID, siteID string) ([]*domain.Department, error)

	// OrphanDepartmentsOfSite clears site_id on all non-deleted
	// departments of the site. The departments themselves survive.
	OrphanDepartmentsOfSite(ctx context.Context, tenantID, siteID string) (int, error)

	SoftDeleteDepartments(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error)
}

// Systems is the System slice of the store surface.
type Systems interface {
	SystemByID(ctx context.Context, tenantID, id string) (*domain.System, error)

	// ChildSystems returns non-deleted systems whose parent_system_id is
	// parentID; one BFS level of the system tree.
	ChildSystems(ctx context.Context, tenantID, parentID string) ([]*domain.System, error)

	SystemsByDepartment(ctx context.Context, tenantID, departmentID string) ([]*domain.System, error)

	// OrphanSystemsOfDepartment clears department_id on all non-deleted
	// systems of the department.
	OrphanSystemsOfDepartment(ctx context.Context, tenantID, departmentID string) (int, error)

	SoftDeleteSystems(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error)
}

// EquipmentAccess is the Equipment slice of the store surface.
type EquipmentAccess interface {
	EquipmentByID(ctx context.Context, tenantID, id string) (*domain.Equipment, error)

	// ChildEquipment returns non-deleted equipment whose
	// parent_equipment_id is parentID; one BFS level of the tree.
	ChildEquipment(ctx context.Context, tenantID, parentID string) ([]*domain.Equipment, error)

	EquipmentByDepartment(ctx context.Context, tenantID, departmentID string) ([]*domain.Equipment, error)

	EquipmentByIDs(ctx context.Context, tenantID string, ids []string) ([]*domain.Equipment, error)

	// TanksByDepartments returns non-deleted tank equipment
	// (is_tank=true) across the given departments.
	TanksByDepartments(ctx context.Context, tenantID string, departmentIDs []string) ([]*domain.Equipment, error)

	SoftDeleteEquipment(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error)

	// DeactivateEquipment sets is_active=false only. is_deleted is left
	// untouched; the equipment may still be reachable from elsewhere.
	DeactivateEquipment(ctx context.Context, tenantID string, ids []string) (int, error)

	// AddSubEquipmentCount adjusts the denormalized child counter.
	// A negative delta never takes the counter below zero.
	AddSubEquipmentCount(ctx context.Context, tenantID, id string, delta int) error
}

// SubEquipmentAccess is the SubEquipment slice of the store surface.
type SubEquipmentAccess interface {
	SubEquipmentByParents(ctx context.Context, tenantID string, parentIDs []string) ([]*domain.SubEquipment, error)

	// DeactivateSubEquipmentByParents sets is_active=false on all active
	// sub-equipment mounted on the given equipment. SubEquipment has no
	// soft-delete fields; deactivation is terminal.
	DeactivateSubEquipmentByParents(ctx context.Context, tenantID string, parentIDs []string) (int, error)
}

// Links is the EquipmentSystem junction slice of the store surface.
// Junction rows are hard-deleted, never soft-deleted.
type Links interface {
	LinksBySystems(ctx context.Context, tenantID string, systemIDs []string) ([]*domain.EquipmentSystemLink, error)

	LinksByEquipment(ctx context.Context, tenantID string, equipmentIDs []string) ([]*domain.EquipmentSystemLink, error)

	DeleteLinksBySystems(ctx context.Context, tenantID string, systemIDs []string) (int, error)

	DeleteLinksByEquipment(ctx context.Context, tenantID string, equipmentIDs []string) (int, error)
}

// Store is the full data-access surface of the integrity engine.
type Store interface {
	Sites
	Departments
	Systems
	EquipmentAccess
	SubEquipmentAccess
	Links

	// InTx runs fn against a transactional view of the store and commits
	// when fn returns nil. Implementations without transaction support
	// may run fn against the store itself; the cascade's leaves-first
	// ordering keeps a partial failure resumable either way.
	InTx(ctx context.Context, fn func(tx Store) error) error
}
