// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_tenant_id_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[4], AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_by", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "site_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "department_tenant_id_site_id",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[3], DepartmentsColumns[10]},
			},
			{
				Name:    "department_tenant_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[3], DepartmentsColumns[4]},
			},
		},
	}
	// EquipmentColumns holds the columns for the "equipment" table.
	EquipmentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_by", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "department_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_equipment_id", Type: field.TypeString, Nullable: true},
		{Name: "sub_equipment_count", Type: field.TypeInt, Default: 0},
		{Name: "is_tank", Type: field.TypeBool, Default: false},
		{Name: "current_biomass", Type: field.TypeFloat64, Default: 0},
		{Name: "created_by", Type: field.TypeString},
	}
	// EquipmentTable holds the schema information for the "equipment" table.
	EquipmentTable = &schema.Table{
		Name:       "equipment",
		Columns:    EquipmentColumns,
		PrimaryKey: []*schema.Column{EquipmentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "equipment_tenant_id_department_id",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[3], EquipmentColumns[10]},
			},
			{
				Name:    "equipment_tenant_id_parent_equipment_id",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[3], EquipmentColumns[11]},
			},
			{
				Name:    "equipment_tenant_id_is_tank",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[3], EquipmentColumns[13]},
			},
			{
				Name:    "equipment_tenant_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[3], EquipmentColumns[4]},
			},
		},
	}
	// EquipmentSystemsColumns holds the columns for the "equipment_systems" table.
	EquipmentSystemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "equipment_id", Type: field.TypeString},
		{Name: "system_id", Type: field.TypeString},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "criticality_level", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}, Default: "MEDIUM"},
	}
	// EquipmentSystemsTable holds the schema information for the "equipment_systems" table.
	EquipmentSystemsTable = &schema.Table{
		Name:       "equipment_systems",
		Columns:    EquipmentSystemsColumns,
		PrimaryKey: []*schema.Column{EquipmentSystemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "equipmentsystem_tenant_id_equipment_id_system_id",
				Unique:  true,
				Columns: []*schema.Column{EquipmentSystemsColumns[3], EquipmentSystemsColumns[4], EquipmentSystemsColumns[5]},
			},
			{
				Name:    "equipmentsystem_tenant_id_system_id",
				Unique:  false,
				Columns: []*schema.Column{EquipmentSystemsColumns[3], EquipmentSystemsColumns[5]},
			},
		},
	}
	// SitesColumns holds the columns for the "sites" table.
	SitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_by", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// SitesTable holds the schema information for the "sites" table.
	SitesTable = &schema.Table{
		Name:       "sites",
		Columns:    SitesColumns,
		PrimaryKey: []*schema.Column{SitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "site_tenant_id_code",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[3], SitesColumns[9]},
			},
			{
				Name:    "site_tenant_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[3], SitesColumns[4]},
			},
		},
	}
	// SubEquipmentsColumns holds the columns for the "sub_equipments" table.
	SubEquipmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "parent_equipment_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// SubEquipmentsTable holds the schema information for the "sub_equipments" table.
	SubEquipmentsTable = &schema.Table{
		Name:       "sub_equipments",
		Columns:    SubEquipmentsColumns,
		PrimaryKey: []*schema.Column{SubEquipmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subequipment_tenant_id_parent_equipment_id",
				Unique:  false,
				Columns: []*schema.Column{SubEquipmentsColumns[3], SubEquipmentsColumns[5]},
			},
		},
	}
	// SystemsColumns holds the columns for the "systems" table.
	SystemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_by", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "site_id", Type: field.TypeString, Nullable: true},
		{Name: "department_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_system_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// SystemsTable holds the schema information for the "systems" table.
	SystemsTable = &schema.Table{
		Name:       "systems",
		Columns:    SystemsColumns,
		PrimaryKey: []*schema.Column{SystemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "system_tenant_id_parent_system_id",
				Unique:  false,
				Columns: []*schema.Column{SystemsColumns[3], SystemsColumns[12]},
			},
			{
				Name:    "system_tenant_id_department_id",
				Unique:  false,
				Columns: []*schema.Column{SystemsColumns[3], SystemsColumns[11]},
			},
			{
				Name:    "system_tenant_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{SystemsColumns[3], SystemsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		DepartmentsTable,
		EquipmentTable,
		EquipmentSystemsTable,
		SitesTable,
		SubEquipmentsTable,
		SystemsTable,
	}
)

func init() {
}
