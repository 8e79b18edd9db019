// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"aquafarm.io/steward/ent/auditlog"
	"aquafarm.io/steward/ent/department"
	"aquafarm.io/steward/ent/equipment"
	"aquafarm.io/steward/ent/equipmentsystem"
	"aquafarm.io/steward/ent/schema"
	"aquafarm.io/steward/ent/site"
	"aquafarm.io/steward/ent/subequipment"
	"aquafarm.io/steward/ent/system"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescTenantID is the schema descriptor for tenant_id field.
	auditlogDescTenantID := auditlogFields[1].Descriptor()
	// auditlog.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	auditlog.TenantIDValidator = auditlogDescTenantID.Validators[0].(func(string) error)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[3].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[4].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[5].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentMixinFields1 := departmentMixin[1].Fields()
	_ = departmentMixinFields1
	departmentMixinFields2 := departmentMixin[2].Fields()
	_ = departmentMixinFields2
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields0[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields0[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescTenantID is the schema descriptor for tenant_id field.
	departmentDescTenantID := departmentMixinFields1[0].Descriptor()
	// department.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	department.TenantIDValidator = departmentDescTenantID.Validators[0].(func(string) error)
	// departmentDescIsDeleted is the schema descriptor for is_deleted field.
	departmentDescIsDeleted := departmentMixinFields2[0].Descriptor()
	// department.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	department.DefaultIsDeleted = departmentDescIsDeleted.Default.(bool)
	// departmentDescIsActive is the schema descriptor for is_active field.
	departmentDescIsActive := departmentMixinFields2[3].Descriptor()
	// department.DefaultIsActive holds the default value on creation for the is_active field.
	department.DefaultIsActive = departmentDescIsActive.Default.(bool)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[1].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = departmentDescName.Validators[0].(func(string) error)
	// departmentDescCode is the schema descriptor for code field.
	departmentDescCode := departmentFields[2].Descriptor()
	// department.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	department.CodeValidator = departmentDescCode.Validators[0].(func(string) error)
	// departmentDescCreatedBy is the schema descriptor for created_by field.
	departmentDescCreatedBy := departmentFields[4].Descriptor()
	// department.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	department.CreatedByValidator = departmentDescCreatedBy.Validators[0].(func(string) error)
	equipmentMixin := schema.Equipment{}.Mixin()
	equipmentMixinFields0 := equipmentMixin[0].Fields()
	_ = equipmentMixinFields0
	equipmentMixinFields1 := equipmentMixin[1].Fields()
	_ = equipmentMixinFields1
	equipmentMixinFields2 := equipmentMixin[2].Fields()
	_ = equipmentMixinFields2
	equipmentFields := schema.Equipment{}.Fields()
	_ = equipmentFields
	// equipmentDescCreatedAt is the schema descriptor for created_at field.
	equipmentDescCreatedAt := equipmentMixinFields0[0].Descriptor()
	// equipment.DefaultCreatedAt holds the default value on creation for the created_at field.
	equipment.DefaultCreatedAt = equipmentDescCreatedAt.Default.(func() time.Time)
	// equipmentDescUpdatedAt is the schema descriptor for updated_at field.
	equipmentDescUpdatedAt := equipmentMixinFields0[1].Descriptor()
	// equipment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	equipment.DefaultUpdatedAt = equipmentDescUpdatedAt.Default.(func() time.Time)
	// equipment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	equipment.UpdateDefaultUpdatedAt = equipmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// equipmentDescTenantID is the schema descriptor for tenant_id field.
	equipmentDescTenantID := equipmentMixinFields1[0].Descriptor()
	// equipment.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	equipment.TenantIDValidator = equipmentDescTenantID.Validators[0].(func(string) error)
	// equipmentDescIsDeleted is the schema descriptor for is_deleted field.
	equipmentDescIsDeleted := equipmentMixinFields2[0].Descriptor()
	// equipment.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	equipment.DefaultIsDeleted = equipmentDescIsDeleted.Default.(bool)
	// equipmentDescIsActive is the schema descriptor for is_active field.
	equipmentDescIsActive := equipmentMixinFields2[3].Descriptor()
	// equipment.DefaultIsActive holds the default value on creation for the is_active field.
	equipment.DefaultIsActive = equipmentDescIsActive.Default.(bool)
	// equipmentDescName is the schema descriptor for name field.
	equipmentDescName := equipmentFields[1].Descriptor()
	// equipment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	equipment.NameValidator = equipmentDescName.Validators[0].(func(string) error)
	// equipmentDescCode is the schema descriptor for code field.
	equipmentDescCode := equipmentFields[2].Descriptor()
	// equipment.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	equipment.CodeValidator = equipmentDescCode.Validators[0].(func(string) error)
	// equipmentDescSubEquipmentCount is the schema descriptor for sub_equipment_count field.
	equipmentDescSubEquipmentCount := equipmentFields[5].Descriptor()
	// equipment.DefaultSubEquipmentCount holds the default value on creation for the sub_equipment_count field.
	equipment.DefaultSubEquipmentCount = equipmentDescSubEquipmentCount.Default.(int)
	// equipment.SubEquipmentCountValidator is a validator for the "sub_equipment_count" field. It is called by the builders before save.
	equipment.SubEquipmentCountValidator = equipmentDescSubEquipmentCount.Validators[0].(func(int) error)
	// equipmentDescIsTank is the schema descriptor for is_tank field.
	equipmentDescIsTank := equipmentFields[6].Descriptor()
	// equipment.DefaultIsTank holds the default value on creation for the is_tank field.
	equipment.DefaultIsTank = equipmentDescIsTank.Default.(bool)
	// equipmentDescCurrentBiomass is the schema descriptor for current_biomass field.
	equipmentDescCurrentBiomass := equipmentFields[7].Descriptor()
	// equipment.DefaultCurrentBiomass holds the default value on creation for the current_biomass field.
	equipment.DefaultCurrentBiomass = equipmentDescCurrentBiomass.Default.(float64)
	// equipmentDescCreatedBy is the schema descriptor for created_by field.
	equipmentDescCreatedBy := equipmentFields[8].Descriptor()
	// equipment.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	equipment.CreatedByValidator = equipmentDescCreatedBy.Validators[0].(func(string) error)
	equipmentsystemMixin := schema.EquipmentSystem{}.Mixin()
	equipmentsystemMixinFields0 := equipmentsystemMixin[0].Fields()
	_ = equipmentsystemMixinFields0
	equipmentsystemMixinFields1 := equipmentsystemMixin[1].Fields()
	_ = equipmentsystemMixinFields1
	equipmentsystemFields := schema.EquipmentSystem{}.Fields()
	_ = equipmentsystemFields
	// equipmentsystemDescCreatedAt is the schema descriptor for created_at field.
	equipmentsystemDescCreatedAt := equipmentsystemMixinFields0[0].Descriptor()
	// equipmentsystem.DefaultCreatedAt holds the default value on creation for the created_at field.
	equipmentsystem.DefaultCreatedAt = equipmentsystemDescCreatedAt.Default.(func() time.Time)
	// equipmentsystemDescUpdatedAt is the schema descriptor for updated_at field.
	equipmentsystemDescUpdatedAt := equipmentsystemMixinFields0[1].Descriptor()
	// equipmentsystem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	equipmentsystem.DefaultUpdatedAt = equipmentsystemDescUpdatedAt.Default.(func() time.Time)
	// equipmentsystem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	equipmentsystem.UpdateDefaultUpdatedAt = equipmentsystemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// equipmentsystemDescTenantID is the schema descriptor for tenant_id field.
	equipmentsystemDescTenantID := equipmentsystemMixinFields1[0].Descriptor()
	// equipmentsystem.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	equipmentsystem.TenantIDValidator = equipmentsystemDescTenantID.Validators[0].(func(string) error)
	// equipmentsystemDescEquipmentID is the schema descriptor for equipment_id field.
	equipmentsystemDescEquipmentID := equipmentsystemFields[1].Descriptor()
	// equipmentsystem.EquipmentIDValidator is a validator for the "equipment_id" field. It is called by the builders before save.
	equipmentsystem.EquipmentIDValidator = equipmentsystemDescEquipmentID.Validators[0].(func(string) error)
	// equipmentsystemDescSystemID is the schema descriptor for system_id field.
	equipmentsystemDescSystemID := equipmentsystemFields[2].Descriptor()
	// equipmentsystem.SystemIDValidator is a validator for the "system_id" field. It is called by the builders before save.
	equipmentsystem.SystemIDValidator = equipmentsystemDescSystemID.Validators[0].(func(string) error)
	// equipmentsystemDescIsPrimary is the schema descriptor for is_primary field.
	equipmentsystemDescIsPrimary := equipmentsystemFields[3].Descriptor()
	// equipmentsystem.DefaultIsPrimary holds the default value on creation for the is_primary field.
	equipmentsystem.DefaultIsPrimary = equipmentsystemDescIsPrimary.Default.(bool)
	siteMixin := schema.Site{}.Mixin()
	siteMixinFields0 := siteMixin[0].Fields()
	_ = siteMixinFields0
	siteMixinFields1 := siteMixin[1].Fields()
	_ = siteMixinFields1
	siteMixinFields2 := siteMixin[2].Fields()
	_ = siteMixinFields2
	siteFields := schema.Site{}.Fields()
	_ = siteFields
	// siteDescCreatedAt is the schema descriptor for created_at field.
	siteDescCreatedAt := siteMixinFields0[0].Descriptor()
	// site.DefaultCreatedAt holds the default value on creation for the created_at field.
	site.DefaultCreatedAt = siteDescCreatedAt.Default.(func() time.Time)
	// siteDescUpdatedAt is the schema descriptor for updated_at field.
	siteDescUpdatedAt := siteMixinFields0[1].Descriptor()
	// site.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	site.DefaultUpdatedAt = siteDescUpdatedAt.Default.(func() time.Time)
	// site.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	site.UpdateDefaultUpdatedAt = siteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// siteDescTenantID is the schema descriptor for tenant_id field.
	siteDescTenantID := siteMixinFields1[0].Descriptor()
	// site.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	site.TenantIDValidator = siteDescTenantID.Validators[0].(func(string) error)
	// siteDescIsDeleted is the schema descriptor for is_deleted field.
	siteDescIsDeleted := siteMixinFields2[0].Descriptor()
	// site.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	site.DefaultIsDeleted = siteDescIsDeleted.Default.(bool)
	// siteDescIsActive is the schema descriptor for is_active field.
	siteDescIsActive := siteMixinFields2[3].Descriptor()
	// site.DefaultIsActive holds the default value on creation for the is_active field.
	site.DefaultIsActive = siteDescIsActive.Default.(bool)
	// siteDescName is the schema descriptor for name field.
	siteDescName := siteFields[1].Descriptor()
	// site.NameValidator is a validator for the "name" field. It is called by the builders before save.
	site.NameValidator = siteDescName.Validators[0].(func(string) error)
	// siteDescCode is the schema descriptor for code field.
	siteDescCode := siteFields[2].Descriptor()
	// site.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	site.CodeValidator = siteDescCode.Validators[0].(func(string) error)
	// siteDescCreatedBy is the schema descriptor for created_by field.
	siteDescCreatedBy := siteFields[4].Descriptor()
	// site.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	site.CreatedByValidator = siteDescCreatedBy.Validators[0].(func(string) error)
	subequipmentMixin := schema.SubEquipment{}.Mixin()
	subequipmentMixinFields0 := subequipmentMixin[0].Fields()
	_ = subequipmentMixinFields0
	subequipmentMixinFields1 := subequipmentMixin[1].Fields()
	_ = subequipmentMixinFields1
	subequipmentFields := schema.SubEquipment{}.Fields()
	_ = subequipmentFields
	// subequipmentDescCreatedAt is the schema descriptor for created_at field.
	subequipmentDescCreatedAt := subequipmentMixinFields0[0].Descriptor()
	// subequipment.DefaultCreatedAt holds the default value on creation for the created_at field.
	subequipment.DefaultCreatedAt = subequipmentDescCreatedAt.Default.(func() time.Time)
	// subequipmentDescUpdatedAt is the schema descriptor for updated_at field.
	subequipmentDescUpdatedAt := subequipmentMixinFields0[1].Descriptor()
	// subequipment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subequipment.DefaultUpdatedAt = subequipmentDescUpdatedAt.Default.(func() time.Time)
	// subequipment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subequipment.UpdateDefaultUpdatedAt = subequipmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subequipmentDescTenantID is the schema descriptor for tenant_id field.
	subequipmentDescTenantID := subequipmentMixinFields1[0].Descriptor()
	// subequipment.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	subequipment.TenantIDValidator = subequipmentDescTenantID.Validators[0].(func(string) error)
	// subequipmentDescName is the schema descriptor for name field.
	subequipmentDescName := subequipmentFields[1].Descriptor()
	// subequipment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subequipment.NameValidator = subequipmentDescName.Validators[0].(func(string) error)
	// subequipmentDescParentEquipmentID is the schema descriptor for parent_equipment_id field.
	subequipmentDescParentEquipmentID := subequipmentFields[2].Descriptor()
	// subequipment.ParentEquipmentIDValidator is a validator for the "parent_equipment_id" field. It is called by the builders before save.
	subequipment.ParentEquipmentIDValidator = subequipmentDescParentEquipmentID.Validators[0].(func(string) error)
	// subequipmentDescIsActive is the schema descriptor for is_active field.
	subequipmentDescIsActive := subequipmentFields[3].Descriptor()
	// subequipment.DefaultIsActive holds the default value on creation for the is_active field.
	subequipment.DefaultIsActive = subequipmentDescIsActive.Default.(bool)
	systemMixin := schema.System{}.Mixin()
	systemMixinFields0 := systemMixin[0].Fields()
	_ = systemMixinFields0
	systemMixinFields1 := systemMixin[1].Fields()
	_ = systemMixinFields1
	systemMixinFields2 := systemMixin[2].Fields()
	_ = systemMixinFields2
	systemFields := schema.System{}.Fields()
	_ = systemFields
	// systemDescCreatedAt is the schema descriptor for created_at field.
	systemDescCreatedAt := systemMixinFields0[0].Descriptor()
	// system.DefaultCreatedAt holds the default value on creation for the created_at field.
	system.DefaultCreatedAt = systemDescCreatedAt.Default.(func() time.Time)
	// systemDescUpdatedAt is the schema descriptor for updated_at field.
	systemDescUpdatedAt := systemMixinFields0[1].Descriptor()
	// system.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	system.DefaultUpdatedAt = systemDescUpdatedAt.Default.(func() time.Time)
	// system.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	system.UpdateDefaultUpdatedAt = systemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// systemDescTenantID is the schema descriptor for tenant_id field.
	systemDescTenantID := systemMixinFields1[0].Descriptor()
	// system.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	system.TenantIDValidator = systemDescTenantID.Validators[0].(func(string) error)
	// systemDescIsDeleted is the schema descriptor for is_deleted field.
	systemDescIsDeleted := systemMixinFields2[0].Descriptor()
	// system.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	system.DefaultIsDeleted = systemDescIsDeleted.Default.(bool)
	// systemDescIsActive is the schema descriptor for is_active field.
	systemDescIsActive := systemMixinFields2[3].Descriptor()
	// system.DefaultIsActive holds the default value on creation for the is_active field.
	system.DefaultIsActive = systemDescIsActive.Default.(bool)
	// systemDescName is the schema descriptor for name field.
	systemDescName := systemFields[1].Descriptor()
	// system.NameValidator is a validator for the "name" field. It is called by the builders before save.
	system.NameValidator = systemDescName.Validators[0].(func(string) error)
	// systemDescCode is the schema descriptor for code field.
	systemDescCode := systemFields[2].Descriptor()
	// system.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	system.CodeValidator = systemDescCode.Validators[0].(func(string) error)
	// systemDescCreatedBy is the schema descriptor for created_by field.
	systemDescCreatedBy := systemFields[6].Descriptor()
	// system.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	system.CreatedByValidator = systemDescCreatedBy.Validators[0].(func(string) error)
}
