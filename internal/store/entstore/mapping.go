package entstore

import (
	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/internal/domain"
)

// Ent rows never leave this package; the engine works on domain types.

func siteFromEnt(row *ent.Site) *domain.Site {
	return &domain.Site{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Code:      row.Code,
		Location:  row.Location,
		IsDeleted: row.IsDeleted,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

func departmentFromEnt(row *ent.Department) *domain.Department {
	return &domain.Department{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Code:      row.Code,
		SiteID:    row.SiteID,
		IsDeleted: row.IsDeleted,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

func departmentsFromEnt(rows []*ent.Department) []*domain.Department {
	out := make([]*domain.Department, 0, len(rows))
	for _, row := range rows {
		out = append(out, departmentFromEnt(row))
	}
	return out
}

func systemFromEnt(row *ent.System) *domain.System {
	return &domain.System{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Name:           row.Name,
		Code:           row.Code,
		SiteID:         row.SiteID,
		DepartmentID:   row.DepartmentID,
		ParentSystemID: row.ParentSystemID,
		IsDeleted:      row.IsDeleted,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
	}
}

func systemsFromEnt(rows []*ent.System) []*domain.System {
	out := make([]*domain.System, 0, len(rows))
	for _, row := range rows {
		out = append(out, systemFromEnt(row))
	}
	return out
}

func equipmentFromEnt(row *ent.Equipment) *domain.Equipment {
	return &domain.Equipment{
		ID:                row.ID,
		TenantID:          row.TenantID,
		Name:              row.Name,
		Code:              row.Code,
		DepartmentID:      row.DepartmentID,
		ParentEquipmentID: row.ParentEquipmentID,
		SubEquipmentCount: row.SubEquipmentCount,
		IsTank:            row.IsTank,
		CurrentBiomass:    row.CurrentBiomass,
		IsDeleted:         row.IsDeleted,
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt,
	}
}

func equipmentListFromEnt(rows []*ent.Equipment) []*domain.Equipment {
	out := make([]*domain.Equipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, equipmentFromEnt(row))
	}
	return out
}

func subEquipmentFromEnt(rows []*ent.SubEquipment) []*domain.SubEquipment {
	out := make([]*domain.SubEquipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.SubEquipment{
			ID:                row.ID,
			TenantID:          row.TenantID,
			Name:              row.Name,
			ParentEquipmentID: row.ParentEquipmentID,
			IsActive:          row.IsActive,
		})
	}
	return out
}

func linksFromEnt(rows []*ent.EquipmentSystem) []*domain.EquipmentSystemLink {
	out := make([]*domain.EquipmentSystemLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.EquipmentSystemLink{
			ID:               row.ID,
			TenantID:         row.TenantID,
			EquipmentID:      row.EquipmentID,
			SystemID:         row.SystemID,
			IsPrimary:        row.IsPrimary,
			CriticalityLevel: string(row.CriticalityLevel),
		})
	}
	return out
}
