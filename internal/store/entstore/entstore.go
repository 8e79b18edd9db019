// Package entstore implements store.Store on the Ent client.
//
// All queries carry the tenant predicate plus is_deleted=false; cascades
// run inside a single Ent transaction through InTx. Bulk soft-delete
// updates filter on is_deleted=false themselves, so re-running a
// partially applied cascade is a no-op for the rows already done.
package entstore

import (
	"context"
	"fmt"

	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/ent/department"
	"aquafarm.io/steward/ent/equipment"
	"aquafarm.io/steward/ent/equipmentsystem"
	"aquafarm.io/steward/ent/site"
	"aquafarm.io/steward/ent/subequipment"
	entsystem "aquafarm.io/steward/ent/system"
	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/store"
)

// Store is the Ent-backed store.Store implementation.
type Store struct {
	client *ent.Client
}

// New creates a store over the given Ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// InTx implements store.Store. The callback runs against a store bound to
// the transactional client; commit happens when fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(&Store{client: tx.Client()}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// SiteByID implements store.Sites.
func (s *Store) SiteByID(ctx context.Context, tenantID, id string) (*domain.Site, error) {
	row, err := s.client.Site.Query().
		Where(site.IDEQ(id), site.TenantIDEQ(tenantID), site.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query site %s: %w", id, err)
	}
	return siteFromEnt(row), nil
}

// SoftDeleteSites implements store.Sites.
func (s *Store) SoftDeleteSites(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Site.Update().
		Where(site.TenantIDEQ(tenantID), site.IDIn(ids...), site.IsDeleted(false)).
		SetIsDeleted(true).
		SetIsActive(false).
		SetDeletedAt(stamp.At).
		SetDeletedBy(stamp.By).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("soft delete sites: %w", err)
	}
	return n, nil
}

// DepartmentByID implements store.Departments.
func (s *Store) DepartmentByID(ctx context.Context, tenantID, id string) (*domain.Department, error) {
	row, err := s.client.Department.Query().
		Where(department.IDEQ(id), department.TenantIDEQ(tenantID), department.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query department %s: %w", id, err)
	}
	return departmentFromEnt(row), nil
}

// DepartmentsBySite implements store.Departments.
func (s *Store) DepartmentsBySite(ctx context.Context, tenantID, siteID string) ([]*domain.Department, error) {
	rows, err := s.client.Department.Query().
		Where(department.TenantIDEQ(tenantID), department.SiteIDEQ(siteID), department.IsDeleted(false)).
		Order(ent.Asc(department.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query departments of site %s: %w", siteID, err)
	}
	return departmentsFromEnt(rows), nil
}

// OrphanDepartmentsOfSite implements store.Departments.
func (s *Store) OrphanDepartmentsOfSite(ctx context.Context, tenantID, siteID string) (int, error) {
	n, err := s.client.Department.Update().
		Where(department.TenantIDEQ(tenantID), department.SiteIDEQ(siteID), department.IsDeleted(false)).
		ClearSiteID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("orphan departments of site %s: %w", siteID, err)
	}
	return n, nil
}

// SoftDeleteDepartments implements store.Departments.
func (s *Store) SoftDeleteDepartments(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Department.Update().
		Where(department.TenantIDEQ(tenantID), department.IDIn(ids...), department.IsDeleted(false)).
		SetIsDeleted(true).
		SetIsActive(false).
		SetDeletedAt(stamp.At).
		SetDeletedBy(stamp.By).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("soft delete departments: %w", err)
	}
	return n, nil
}

// SystemByID implements store.Systems.
func (s *Store) SystemByID(ctx context.Context, tenantID, id string) (*domain.System, error) {
	row, err := s.client.System.Query().
		Where(entsystem.IDEQ(id), entsystem.TenantIDEQ(tenantID), entsystem.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query system %s: %w", id, err)
	}
	return systemFromEnt(row), nil
}

// ChildSystems implements store.Systems.
func (s *Store) ChildSystems(ctx context.Context, tenantID, parentID string) ([]*domain.System, error) {
	rows, err := s.client.System.Query().
		Where(entsystem.TenantIDEQ(tenantID), entsystem.ParentSystemIDEQ(parentID), entsystem.IsDeleted(false)).
		Order(ent.Asc(entsystem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query child systems of %s: %w", parentID, err)
	}
	return systemsFromEnt(rows), nil
}

// SystemsByDepartment implements store.Systems.
func (s *Store) SystemsByDepartment(ctx context.Context, tenantID, departmentID string) ([]*domain.System, error) {
	rows, err := s.client.System.Query().
		Where(entsystem.TenantIDEQ(tenantID), entsystem.DepartmentIDEQ(departmentID), entsystem.IsDeleted(false)).
		Order(ent.Asc(entsystem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query systems of department %s: %w", departmentID, err)
	}
	return systemsFromEnt(rows), nil
}

// OrphanSystemsOfDepartment implements store.Systems.
func (s *Store) OrphanSystemsOfDepartment(ctx context.Context, tenantID, departmentID string) (int, error) {
	n, err := s.client.System.Update().
		Where(entsystem.TenantIDEQ(tenantID), entsystem.DepartmentIDEQ(departmentID), entsystem.IsDeleted(false)).
		ClearDepartmentID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("orphan systems of department %s: %w", departmentID, err)
	}
	return n, nil
}

// SoftDeleteSystems implements store.Systems.
func (s *Store) SoftDeleteSystems(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.System.Update().
		Where(entsystem.TenantIDEQ(tenantID), entsystem.IDIn(ids...), entsystem.IsDeleted(false)).
		SetIsDeleted(true).
		SetIsActive(false).
		SetDeletedAt(stamp.At).
		SetDeletedBy(stamp.By).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("soft delete systems: %w", err)
	}
	return n, nil
}

// EquipmentByID implements store.EquipmentAccess.
func (s *Store) EquipmentByID(ctx context.Context, tenantID, id string) (*domain.Equipment, error) {
	row, err := s.client.Equipment.Query().
		Where(equipment.IDEQ(id), equipment.TenantIDEQ(tenantID), equipment.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query equipment %s: %w", id, err)
	}
	return equipmentFromEnt(row), nil
}

// ChildEquipment implements store.EquipmentAccess.
func (s *Store) ChildEquipment(ctx context.Context, tenantID, parentID string) ([]*domain.Equipment, error) {
	rows, err := s.client.Equipment.Query().
		Where(equipment.TenantIDEQ(tenantID), equipment.ParentEquipmentIDEQ(parentID), equipment.IsDeleted(false)).
		Order(ent.Asc(equipment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query child equipment of %s: %w", parentID, err)
	}
	return equipmentListFromEnt(rows), nil
}

// EquipmentByDepartment implements store.EquipmentAccess.
func (s *Store) EquipmentByDepartment(ctx context.Context, tenantID, departmentID string) ([]*domain.Equipment, error) {
	rows, err := s.client.Equipment.Query().
		Where(equipment.TenantIDEQ(tenantID), equipment.DepartmentIDEQ(departmentID), equipment.IsDeleted(false)).
		Order(ent.Asc(equipment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query equipment of department %s: %w", departmentID, err)
	}
	return equipmentListFromEnt(rows), nil
}

// EquipmentByIDs implements store.EquipmentAccess.
func (s *Store) EquipmentByIDs(ctx context.Context, tenantID string, ids []string) ([]*domain.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.client.Equipment.Query().
		Where(equipment.TenantIDEQ(tenantID), equipment.IDIn(ids...), equipment.IsDeleted(false)).
		Order(ent.Asc(equipment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query equipment by ids: %w", err)
	}
	return equipmentListFromEnt(rows), nil
}

// TanksByDepartments implements store.EquipmentAccess.
func (s *Store) TanksByDepartments(ctx context.Context, tenantID string, departmentIDs []string) ([]*domain.Equipment, error) {
	if len(departmentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.Equipment.Query().
		Where(
			equipment.TenantIDEQ(tenantID),
			equipment.DepartmentIDIn(departmentIDs...),
			equipment.IsTank(true),
			equipment.IsDeleted(false),
		).
		Order(ent.Asc(equipment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tanks of departments: %w", err)
	}
	return equipmentListFromEnt(rows), nil
}

// SoftDeleteEquipment implements store.EquipmentAccess.
func (s *Store) SoftDeleteEquipment(ctx context.Context, tenantID string, ids []string, stamp domain.DeleteStamp) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Equipment.Update().
		Where(equipment.TenantIDEQ(tenantID), equipment.IDIn(ids...), equipment.IsDeleted(false)).
		SetIsDeleted(true).
		SetIsActive(false).
		SetDeletedAt(stamp.At).
		SetDeletedBy(stamp.By).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("soft delete equipment: %w", err)
	}
	return n, nil
}

// DeactivateEquipment implements store.EquipmentAccess.
func (s *Store) DeactivateEquipment(ctx context.Context, tenantID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.Equipment.Update().
		Where(
			equipment.TenantIDEQ(tenantID),
			equipment.IDIn(ids...),
			equipment.IsDeleted(false),
			equipment.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("deactivate equipment: %w", err)
	}
	return n, nil
}

// AddSubEquipmentCount implements store.EquipmentAccess. A negative delta
// only applies to rows with a positive counter, so the value never goes
// below zero.
func (s *Store) AddSubEquipmentCount(ctx context.Context, tenantID, id string, delta int) error {
	upd := s.client.Equipment.Update().
		Where(equipment.TenantIDEQ(tenantID), equipment.IDEQ(id))
	if delta < 0 {
		upd = upd.Where(equipment.SubEquipmentCountGT(0))
	}
	if _, err := upd.AddSubEquipmentCount(delta).Save(ctx); err != nil {
		return fmt.Errorf("adjust sub-equipment count of %s: %w", id, err)
	}
	return nil
}

// SubEquipmentByParents implements store.SubEquipmentAccess. Only active
// rows are returned; deactivation is terminal for sub-equipment.
func (s *Store) SubEquipmentByParents(ctx context.Context, tenantID string, parentIDs []string) ([]*domain.SubEquipment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.SubEquipment.Query().
		Where(
			subequipment.TenantIDEQ(tenantID),
			subequipment.ParentEquipmentIDIn(parentIDs...),
			subequipment.IsActive(true),
		).
		Order(ent.Asc(subequipment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sub-equipment: %w", err)
	}
	return subEquipmentFromEnt(rows), nil
}

// DeactivateSubEquipmentByParents implements store.SubEquipmentAccess.
func (s *Store) DeactivateSubEquipmentByParents(ctx context.Context, tenantID string, parentIDs []string) (int, error) {
	if len(parentIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.SubEquipment.Update().
		Where(
			subequipment.TenantIDEQ(tenantID),
			subequipment.ParentEquipmentIDIn(parentIDs...),
			subequipment.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("deactivate sub-equipment: %w", err)
	}
	return n, nil
}

// LinksBySystems implements store.Links.
func (s *Store) LinksBySystems(ctx context.Context, tenantID string, systemIDs []string) ([]*domain.EquipmentSystemLink, error) {
	if len(systemIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.EquipmentSystem.Query().
		Where(equipmentsystem.TenantIDEQ(tenantID), equipmentsystem.SystemIDIn(systemIDs...)).
		Order(ent.Asc(equipmentsystem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query links by systems: %w", err)
	}
	return linksFromEnt(rows), nil
}

// LinksByEquipment implements store.Links.
func (s *Store) LinksByEquipment(ctx context.Context, tenantID string, equipmentIDs []string) ([]*domain.EquipmentSystemLink, error) {
	if len(equipmentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.EquipmentSystem.Query().
		Where(equipmentsystem.TenantIDEQ(tenantID), equipmentsystem.EquipmentIDIn(equipmentIDs...)).
		Order(ent.Asc(equipmentsystem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query links by equipment: %w", err)
	}
	return linksFromEnt(rows), nil
}

// DeleteLinksBySystems implements store.Links.
func (s *Store) DeleteLinksBySystems(ctx context.Context, tenantID string, systemIDs []string) (int, error) {
	if len(systemIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.EquipmentSystem.Delete().
		Where(equipmentsystem.TenantIDEQ(tenantID), equipmentsystem.SystemIDIn(systemIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete links by systems: %w", err)
	}
	return n, nil
}

// DeleteLinksByEquipment implements store.Links.
func (s *Store) DeleteLinksByEquipment(ctx context.Context, tenantID string, equipmentIDs []string) (int, error) {
	if len(equipmentIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.EquipmentSystem.Delete().
		Where(equipmentsystem.TenantIDEQ(tenantID), equipmentsystem.EquipmentIDIn(equipmentIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete links by equipment: %w", err)
	}
	return n, nil
}
