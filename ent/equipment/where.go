// Code generated by ent, DO NOT EDIT.

package equipment

import (
	"time"

	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldTenantID, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsDeleted, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedBy applies equality check predicate on the "deleted_by" field. It's identical to DeletedByEQ.
func DeletedBy(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDeletedBy, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsActive, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldName, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCode, v))
}

// DepartmentID applies equality check predicate on the "department_id" field. It's identical to DepartmentIDEQ.
func DepartmentID(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDepartmentID, v))
}

// ParentEquipmentID applies equality check predicate on the "parent_equipment_id" field. It's identical to ParentEquipmentIDEQ.
func ParentEquipmentID(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldParentEquipmentID, v))
}

// SubEquipmentCount applies equality check predicate on the "sub_equipment_count" field. It's identical to SubEquipmentCountEQ.
func SubEquipmentCount(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldSubEquipmentCount, v))
}

// IsTank applies equality check predicate on the "is_tank" field. It's identical to IsTankEQ.
func IsTank(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsTank, v))
}

// CurrentBiomass applies equality check predicate on the "current_biomass" field. It's identical to CurrentBiomassEQ.
func CurrentBiomass(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCurrentBiomass, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldTenantID, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldIsDeleted, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldDeletedAt))
}

// DeletedByEQ applies the EQ predicate on the "deleted_by" field.
func DeletedByEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDeletedBy, v))
}

// DeletedByNEQ applies the NEQ predicate on the "deleted_by" field.
func DeletedByNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldDeletedBy, v))
}

// DeletedByIn applies the In predicate on the "deleted_by" field.
func DeletedByIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldDeletedBy, vs...))
}

// DeletedByNotIn applies the NotIn predicate on the "deleted_by" field.
func DeletedByNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldDeletedBy, vs...))
}

// DeletedByGT applies the GT predicate on the "deleted_by" field.
func DeletedByGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldDeletedBy, v))
}

// DeletedByGTE applies the GTE predicate on the "deleted_by" field.
func DeletedByGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldDeletedBy, v))
}

// DeletedByLT applies the LT predicate on the "deleted_by" field.
func DeletedByLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldDeletedBy, v))
}

// DeletedByLTE applies the LTE predicate on the "deleted_by" field.
func DeletedByLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldDeletedBy, v))
}

// DeletedByContains applies the Contains predicate on the "deleted_by" field.
func DeletedByContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldDeletedBy, v))
}

// DeletedByHasPrefix applies the HasPrefix predicate on the "deleted_by" field.
func DeletedByHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldDeletedBy, v))
}

// DeletedByHasSuffix applies the HasSuffix predicate on the "deleted_by" field.
func DeletedByHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldDeletedBy, v))
}

// DeletedByIsNil applies the IsNil predicate on the "deleted_by" field.
func DeletedByIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldDeletedBy))
}

// DeletedByNotNil applies the NotNil predicate on the "deleted_by" field.
func DeletedByNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldDeletedBy))
}

// DeletedByEqualFold applies the EqualFold predicate on the "deleted_by" field.
func DeletedByEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldDeletedBy, v))
}

// DeletedByContainsFold applies the ContainsFold predicate on the "deleted_by" field.
func DeletedByContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldDeletedBy, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldIsActive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldName, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldCode, v))
}

// DepartmentIDEQ applies the EQ predicate on the "department_id" field.
func DepartmentIDEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldDepartmentID, v))
}

// DepartmentIDNEQ applies the NEQ predicate on the "department_id" field.
func DepartmentIDNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldDepartmentID, v))
}

// DepartmentIDIn applies the In predicate on the "department_id" field.
func DepartmentIDIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldDepartmentID, vs...))
}

// DepartmentIDNotIn applies the NotIn predicate on the "department_id" field.
func DepartmentIDNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldDepartmentID, vs...))
}

// DepartmentIDGT applies the GT predicate on the "department_id" field.
func DepartmentIDGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldDepartmentID, v))
}

// DepartmentIDGTE applies the GTE predicate on the "department_id" field.
func DepartmentIDGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldDepartmentID, v))
}

// DepartmentIDLT applies the LT predicate on the "department_id" field.
func DepartmentIDLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldDepartmentID, v))
}

// DepartmentIDLTE applies the LTE predicate on the "department_id" field.
func DepartmentIDLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldDepartmentID, v))
}

// DepartmentIDContains applies the Contains predicate on the "department_id" field.
func DepartmentIDContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldDepartmentID, v))
}

// DepartmentIDHasPrefix applies the HasPrefix predicate on the "department_id" field.
func DepartmentIDHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldDepartmentID, v))
}

// DepartmentIDHasSuffix applies the HasSuffix predicate on the "department_id" field.
func DepartmentIDHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldDepartmentID, v))
}

// DepartmentIDIsNil applies the IsNil predicate on the "department_id" field.
func DepartmentIDIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldDepartmentID))
}

// DepartmentIDNotNil applies the NotNil predicate on the "department_id" field.
func DepartmentIDNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldDepartmentID))
}

// DepartmentIDEqualFold applies the EqualFold predicate on the "department_id" field.
func DepartmentIDEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldDepartmentID, v))
}

// DepartmentIDContainsFold applies the ContainsFold predicate on the "department_id" field.
func DepartmentIDContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldDepartmentID, v))
}

// ParentEquipmentIDEQ applies the EQ predicate on the "parent_equipment_id" field.
func ParentEquipmentIDEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldParentEquipmentID, v))
}

// ParentEquipmentIDNEQ applies the NEQ predicate on the "parent_equipment_id" field.
func ParentEquipmentIDNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldParentEquipmentID, v))
}

// ParentEquipmentIDIn applies the In predicate on the "parent_equipment_id" field.
func ParentEquipmentIDIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldParentEquipmentID, vs...))
}

// ParentEquipmentIDNotIn applies the NotIn predicate on the "parent_equipment_id" field.
func ParentEquipmentIDNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldParentEquipmentID, vs...))
}

// ParentEquipmentIDGT applies the GT predicate on the "parent_equipment_id" field.
func ParentEquipmentIDGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldParentEquipmentID, v))
}

// ParentEquipmentIDGTE applies the GTE predicate on the "parent_equipment_id" field.
func ParentEquipmentIDGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldParentEquipmentID, v))
}

// ParentEquipmentIDLT applies the LT predicate on the "parent_equipment_id" field.
func ParentEquipmentIDLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldParentEquipmentID, v))
}

// ParentEquipmentIDLTE applies the LTE predicate on the "parent_equipment_id" field.
func ParentEquipmentIDLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldParentEquipmentID, v))
}

// ParentEquipmentIDContains applies the Contains predicate on the "parent_equipment_id" field.
func ParentEquipmentIDContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldParentEquipmentID, v))
}

// ParentEquipmentIDHasPrefix applies the HasPrefix predicate on the "parent_equipment_id" field.
func ParentEquipmentIDHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldParentEquipmentID, v))
}

// ParentEquipmentIDHasSuffix applies the HasSuffix predicate on the "parent_equipment_id" field.
func ParentEquipmentIDHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldParentEquipmentID, v))
}

// ParentEquipmentIDIsNil applies the IsNil predicate on the "parent_equipment_id" field.
func ParentEquipmentIDIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldParentEquipmentID))
}

// ParentEquipmentIDNotNil applies the NotNil predicate on the "parent_equipment_id" field.
func ParentEquipmentIDNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldParentEquipmentID))
}

// ParentEquipmentIDEqualFold applies the EqualFold predicate on the "parent_equipment_id" field.
func ParentEquipmentIDEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldParentEquipmentID, v))
}

// ParentEquipmentIDContainsFold applies the ContainsFold predicate on the "parent_equipment_id" field.
func ParentEquipmentIDContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldParentEquipmentID, v))
}

// SubEquipmentCountEQ applies the EQ predicate on the "sub_equipment_count" field.
func SubEquipmentCountEQ(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldSubEquipmentCount, v))
}

// SubEquipmentCountNEQ applies the NEQ predicate on the "sub_equipment_count" field.
func SubEquipmentCountNEQ(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldSubEquipmentCount, v))
}

// SubEquipmentCountIn applies the In predicate on the "sub_equipment_count" field.
func SubEquipmentCountIn(vs ...int) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldSubEquipmentCount, vs...))
}

// SubEquipmentCountNotIn applies the NotIn predicate on the "sub_equipment_count" field.
func SubEquipmentCountNotIn(vs ...int) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldSubEquipmentCount, vs...))
}

// SubEquipmentCountGT applies the GT predicate on the "sub_equipment_count" field.
func SubEquipmentCountGT(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldSubEquipmentCount, v))
}

// SubEquipmentCountGTE applies the GTE predicate on the "sub_equipment_count" field.
func SubEquipmentCountGTE(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldSubEquipmentCount, v))
}

// SubEquipmentCountLT applies the LT predicate on the "sub_equipment_count" field.
func SubEquipmentCountLT(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldSubEquipmentCount, v))
}

// SubEquipmentCountLTE applies the LTE predicate on the "sub_equipment_count" field.
func SubEquipmentCountLTE(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldSubEquipmentCount, v))
}

// IsTankEQ applies the EQ predicate on the "is_tank" field.
func IsTankEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIsTank, v))
}

// IsTankNEQ applies the NEQ predicate on the "is_tank" field.
func IsTankNEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldIsTank, v))
}

// CurrentBiomassEQ applies the EQ predicate on the "current_biomass" field.
func CurrentBiomassEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCurrentBiomass, v))
}

// CurrentBiomassNEQ applies the NEQ predicate on the "current_biomass" field.
func CurrentBiomassNEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCurrentBiomass, v))
}

// CurrentBiomassIn applies the In predicate on the "current_biomass" field.
func CurrentBiomassIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCurrentBiomass, vs...))
}

// CurrentBiomassNotIn applies the NotIn predicate on the "current_biomass" field.
func CurrentBiomassNotIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCurrentBiomass, vs...))
}

// CurrentBiomassGT applies the GT predicate on the "current_biomass" field.
func CurrentBiomassGT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCurrentBiomass, v))
}

// CurrentBiomassGTE applies the GTE predicate on the "current_biomass" field.
func CurrentBiomassGTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCurrentBiomass, v))
}

// CurrentBiomassLT applies the LT predicate on the "current_biomass" field.
func CurrentBiomassLT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCurrentBiomass, v))
}

// CurrentBiomassLTE applies the LTE predicate on the "current_biomass" field.
func CurrentBiomassLTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCurrentBiomass, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.NotPredicates(p))
}
