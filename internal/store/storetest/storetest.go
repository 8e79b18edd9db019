// Package storetest provides an in-memory store.Store for engine tests.
//
// Entities live in insertion-ordered slices so query results are
// deterministic. Every mutating call is appended to an operation log;
// tests assert cascade ordering against that log instead of poking at
// private state. FailOn injects an error into a named method to exercise
// the STORE_FAILURE path.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/store"
)

// Store is an in-memory, mutex-guarded store.Store implementation.
type Store struct {
	mu sync.Mutex

	sites        []*domain.Site
	departments  []*domain.Department
	systems      []*domain.System
	equipment    []*domain.Equipment
	subEquipment []*domain.SubEquipment
	links        []*domain.EquipmentSystemLink

	ops []string

	// FailOn maps a method name (e.g. "SoftDeleteEquipment") to the error
	// that method should return.
	FailOn map[string]error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{FailOn: map[string]error{}}
}

// Seed helpers. They take the entity by value so tests can reuse
// literals without aliasing surprises.

func (s *Store) AddSite(v domain.Site) *Store {
	s.sites = append(s.sites, &v)
	return s
}

func (s *Store) AddDepartment(v domain.Department) *Store {
	s.departments = append(s.departments, &v)
	return s
}

func (s *Store) AddSystem(v domain.System) *Store {
	s.systems = append(s.systems, &v)
	return s
}

func (s *Store) AddEquipment(v domain.Equipment) *Store {
	s.equipment = append(s.equipment, &v)
	return s
}

func (s *Store) AddSubEquipment(v domain.SubEquipment) *Store {
	s.subEquipment = append(s.subEquipment, &v)
	return s
}

func (s *Store) AddLink(v domain.EquipmentSystemLink) *Store {
	s.links = append(s.links, &v)
	return s
}

// Ops returns a copy of the operation log.
func (s *Store) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ops))
	copy(out, s.ops)
	return out
}

// OpIndex returns the log position of the first operation with the given
// prefix, or -1.
func (s *Store) OpIndex(prefix string) int {
	for i, op := range s.Ops() {
		if strings.HasPrefix(op, prefix) {
			return i
		}
	}
	return -1
}

// SiteByID implements store.Sites.
func (s *Store) SiteByID(_ context.Context, tenantID, id string) (*domain.Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.sites {
		if v.TenantID == tenantID && v.ID == id && !v.IsDeleted {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

// SoftDeleteSites implements store.Sites.
func (s *Store) SoftDeleteSites(_ context.Context, tenantID string, ids []string, _ domain.DeleteStamp) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SoftDeleteSites"); err != nil {
		return 0, err
	}
	s.logOp("SoftDeleteSites", ids)
	n := 0
	for _, v := range s.sites {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted {
			v.IsDeleted = true
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// DepartmentByID implements store.Departments.
func (s *Store) DepartmentByID(_ context.Context, tenantID, id string) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.departments {
		if v.TenantID == tenantID && v.ID == id && !v.IsDeleted {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

// DepartmentsBySite implements store.Departments.
func (s *Store) DepartmentsBySite(_ context.Context, tenantID, siteID string) ([]*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Department
	for _, v := range s.departments {
		if v.TenantID == tenantID && v.SiteID == siteID && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// OrphanDepartmentsOfSite implements store.Departments.
func (s *Store) OrphanDepartmentsOfSite(_ context.Context, tenantID, siteID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("OrphanDepartmentsOfSite"); err != nil {
		return 0, err
	}
	s.logOp("OrphanDepartmentsOfSite", []string{siteID})
	n := 0
	for _, v := range s.departments {
		if v.TenantID == tenantID && v.SiteID == siteID && !v.IsDeleted {
			v.SiteID = ""
			n++
		}
	}
	return n, nil
}

// SoftDeleteDepartments implements store.Departments.
func (s *Store) SoftDeleteDepartments(_ context.Context, tenantID string, ids []string, _ domain.DeleteStamp) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SoftDeleteDepartments"); err != nil {
		return 0, err
	}
	s.logOp("SoftDeleteDepartments", ids)
	n := 0
	for _, v := range s.departments {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted {
			v.IsDeleted = true
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// SystemByID implements store.Systems.
func (s *Store) SystemByID(_ context.Context, tenantID, id string) (*domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.systems {
		if v.TenantID == tenantID && v.ID == id && !v.IsDeleted {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

// ChildSystems implements store.Systems.
func (s *Store) ChildSystems(_ context.Context, tenantID, parentID string) ([]*domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.System
	for _, v := range s.systems {
		if v.TenantID == tenantID && v.ParentSystemID == parentID && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// SystemsByDepartment implements store.Systems.
func (s *Store) SystemsByDepartment(_ context.Context, tenantID, departmentID string) ([]*domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.System
	for _, v := range s.systems {
		if v.TenantID == tenantID && v.DepartmentID == departmentID && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// OrphanSystemsOfDepartment implements store.Systems.
func (s *Store) OrphanSystemsOfDepartment(_ context.Context, tenantID, departmentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("OrphanSystemsOfDepartment"); err != nil {
		return 0, err
	}
	s.logOp("OrphanSystemsOfDepartment", []string{departmentID})
	n := 0
	for _, v := range s.systems {
		if v.TenantID == tenantID && v.DepartmentID == departmentID && !v.IsDeleted {
			v.DepartmentID = ""
			n++
		}
	}
	return n, nil
}

// SoftDeleteSystems implements store.Systems.
func (s *Store) SoftDeleteSystems(_ context.Context, tenantID string, ids []string, _ domain.DeleteStamp) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SoftDeleteSystems"); err != nil {
		return 0, err
	}
	s.logOp("SoftDeleteSystems", ids)
	n := 0
	for _, v := range s.systems {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted {
			v.IsDeleted = true
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// EquipmentByID implements store.EquipmentAccess.
func (s *Store) EquipmentByID(_ context.Context, tenantID, id string) (*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.equipment {
		if v.TenantID == tenantID && v.ID == id && !v.IsDeleted {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

// ChildEquipment implements store.EquipmentAccess.
func (s *Store) ChildEquipment(_ context.Context, tenantID, parentID string) ([]*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Equipment
	for _, v := range s.equipment {
		if v.TenantID == tenantID && v.ParentEquipmentID == parentID && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// EquipmentByDepartment implements store.EquipmentAccess.
func (s *Store) EquipmentByDepartment(_ context.Context, tenantID, departmentID string) ([]*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Equipment
	for _, v := range s.equipment {
		if v.TenantID == tenantID && v.DepartmentID == departmentID && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// EquipmentByIDs implements store.EquipmentAccess.
func (s *Store) EquipmentByIDs(_ context.Context, tenantID string, ids []string) ([]*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Equipment
	for _, v := range s.equipment {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// TanksByDepartments implements store.EquipmentAccess.
func (s *Store) TanksByDepartments(_ context.Context, tenantID string, departmentIDs []string) ([]*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Equipment
	for _, v := range s.equipment {
		if v.TenantID == tenantID && v.IsTank && contains(departmentIDs, v.DepartmentID) && !v.IsDeleted {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// SoftDeleteEquipment implements store.EquipmentAccess.
func (s *Store) SoftDeleteEquipment(_ context.Context, tenantID string, ids []string, _ domain.DeleteStamp) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SoftDeleteEquipment"); err != nil {
		return 0, err
	}
	s.logOp("SoftDeleteEquipment", ids)
	n := 0
	for _, v := range s.equipment {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted {
			v.IsDeleted = true
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// DeactivateEquipment implements store.EquipmentAccess.
func (s *Store) DeactivateEquipment(_ context.Context, tenantID string, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeactivateEquipment"); err != nil {
		return 0, err
	}
	s.logOp("DeactivateEquipment", ids)
	n := 0
	for _, v := range s.equipment {
		if v.TenantID == tenantID && contains(ids, v.ID) && !v.IsDeleted && v.IsActive {
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// AddSubEquipmentCount implements store.EquipmentAccess.
func (s *Store) AddSubEquipmentCount(_ context.Context, tenantID, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("AddSubEquipmentCount"); err != nil {
		return err
	}
	s.logOp("AddSubEquipmentCount", []string{fmt.Sprintf("%s:%d", id, delta)})
	for _, v := range s.equipment {
		if v.TenantID == tenantID && v.ID == id {
			v.SubEquipmentCount += delta
			if v.SubEquipmentCount < 0 {
				v.SubEquipmentCount = 0
			}
			return nil
		}
	}
	return nil
}

// SubEquipmentByParents implements store.SubEquipmentAccess. Only active
// rows are returned; deactivation is terminal for sub-equipment.
func (s *Store) SubEquipmentByParents(_ context.Context, tenantID string, parentIDs []string) ([]*domain.SubEquipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.SubEquipment
	for _, v := range s.subEquipment {
		if v.TenantID == tenantID && contains(parentIDs, v.ParentEquipmentID) && v.IsActive {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// DeactivateSubEquipmentByParents implements store.SubEquipmentAccess.
func (s *Store) DeactivateSubEquipmentByParents(_ context.Context, tenantID string, parentIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeactivateSubEquipmentByParents"); err != nil {
		return 0, err
	}
	s.logOp("DeactivateSubEquipmentByParents", parentIDs)
	n := 0
	for _, v := range s.subEquipment {
		if v.TenantID == tenantID && contains(parentIDs, v.ParentEquipmentID) && v.IsActive {
			v.IsActive = false
			n++
		}
	}
	return n, nil
}

// LinksBySystems implements store.Links.
func (s *Store) LinksBySystems(_ context.Context, tenantID string, systemIDs []string) ([]*domain.EquipmentSystemLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.EquipmentSystemLink
	for _, v := range s.links {
		if v.TenantID == tenantID && contains(systemIDs, v.SystemID) {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// LinksByEquipment implements store.Links.
func (s *Store) LinksByEquipment(_ context.Context, tenantID string, equipmentIDs []string) ([]*domain.EquipmentSystemLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.EquipmentSystemLink
	for _, v := range s.links {
		if v.TenantID == tenantID && contains(equipmentIDs, v.EquipmentID) {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// DeleteLinksBySystems implements store.Links.
func (s *Store) DeleteLinksBySystems(_ context.Context, tenantID string, systemIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteLinksBySystems"); err != nil {
		return 0, err
	}
	s.logOp("DeleteLinksBySystems", systemIDs)
	return s.deleteLinks(func(l *domain.EquipmentSystemLink) bool {
		return l.TenantID == tenantID && contains(systemIDs, l.SystemID)
	}), nil
}

// DeleteLinksByEquipment implements store.Links.
func (s *Store) DeleteLinksByEquipment(_ context.Context, tenantID string, equipmentIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteLinksByEquipment"); err != nil {
		return 0, err
	}
	s.logOp("DeleteLinksByEquipment", equipmentIDs)
	return s.deleteLinks(func(l *domain.EquipmentSystemLink) bool {
		return l.TenantID == tenantID && contains(equipmentIDs, l.EquipmentID)
	}), nil
}

// InTx implements store.Store. There is no transactional isolation here;
// the engine's leaves-first ordering is what tests verify.
func (s *Store) InTx(_ context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

// RemainingLinks returns the current junction row count for a tenant.
func (s *Store) RemainingLinks(tenantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.links {
		if v.TenantID == tenantID {
			n++
		}
	}
	return n
}

// EquipmentState returns the stored row regardless of deletion state, for
// post-cascade assertions.
func (s *Store) EquipmentState(id string) *domain.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.equipment {
		if v.ID == id {
			c := *v
			return &c
		}
	}
	return nil
}

// DepartmentState returns the stored row regardless of deletion state.
func (s *Store) DepartmentState(id string) *domain.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.departments {
		if v.ID == id {
			c := *v
			return &c
		}
	}
	return nil
}

// SystemState returns the stored row regardless of deletion state.
func (s *Store) SystemState(id string) *domain.System {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.systems {
		if v.ID == id {
			c := *v
			return &c
		}
	}
	return nil
}

// SiteState returns the stored row regardless of deletion state.
func (s *Store) SiteState(id string) *domain.Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.sites {
		if v.ID == id {
			c := *v
			return &c
		}
	}
	return nil
}

// SubEquipmentState returns the stored row, for deactivation assertions.
func (s *Store) SubEquipmentState(id string) *domain.SubEquipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.subEquipment {
		if v.ID == id {
			c := *v
			return &c
		}
	}
	return nil
}

func (s *Store) deleteLinks(match func(*domain.EquipmentSystemLink) bool) int {
	kept := s.links[:0]
	n := 0
	for _, v := range s.links {
		if match(v) {
			n++
			continue
		}
		kept = append(kept, v)
	}
	s.links = kept
	return n
}

func (s *Store) failure(method string) error {
	if err, ok := s.FailOn[method]; ok {
		return err
	}
	return nil
}

func (s *Store) logOp(method string, ids []string) {
	s.ops = append(s.ops, method+"("+strings.Join(ids, ",")+")")
}

func contains(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
