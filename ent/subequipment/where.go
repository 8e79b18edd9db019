// Code generated by ent, DO NOT EDIT.

package subequipment

import (
	"time"

	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldName, v))
}

// ParentEquipmentID applies equality check predicate on the "parent_equipment_id" field. It's identical to ParentEquipmentIDEQ.
func ParentEquipmentID(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldParentEquipmentID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContainsFold(FieldName, v))
}

// ParentEquipmentIDEQ applies the EQ predicate on the "parent_equipment_id" field.
func ParentEquipmentIDEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldParentEquipmentID, v))
}

// ParentEquipmentIDNEQ applies the NEQ predicate on the "parent_equipment_id" field.
func ParentEquipmentIDNEQ(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldParentEquipmentID, v))
}

// ParentEquipmentIDIn applies the In predicate on the "parent_equipment_id" field.
func ParentEquipmentIDIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldIn(FieldParentEquipmentID, vs...))
}

// ParentEquipmentIDNotIn applies the NotIn predicate on the "parent_equipment_id" field.
func ParentEquipmentIDNotIn(vs ...string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNotIn(FieldParentEquipmentID, vs...))
}

// ParentEquipmentIDGT applies the GT predicate on the "parent_equipment_id" field.
func ParentEquipmentIDGT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGT(FieldParentEquipmentID, v))
}

// ParentEquipmentIDGTE applies the GTE predicate on the "parent_equipment_id" field.
func ParentEquipmentIDGTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldGTE(FieldParentEquipmentID, v))
}

// ParentEquipmentIDLT applies the LT predicate on the "parent_equipment_id" field.
func ParentEquipmentIDLT(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLT(FieldParentEquipmentID, v))
}

// ParentEquipmentIDLTE applies the LTE predicate on the "parent_equipment_id" field.
func ParentEquipmentIDLTE(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldLTE(FieldParentEquipmentID, v))
}

// ParentEquipmentIDContains applies the Contains predicate on the "parent_equipment_id" field.
func ParentEquipmentIDContains(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContains(FieldParentEquipmentID, v))
}

// ParentEquipmentIDHasPrefix applies the HasPrefix predicate on the "parent_equipment_id" field.
func ParentEquipmentIDHasPrefix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasPrefix(FieldParentEquipmentID, v))
}

// ParentEquipmentIDHasSuffix applies the HasSuffix predicate on the "parent_equipment_id" field.
func ParentEquipmentIDHasSuffix(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldHasSuffix(FieldParentEquipmentID, v))
}

// ParentEquipmentIDEqualFold applies the EqualFold predicate on the "parent_equipment_id" field.
func ParentEquipmentIDEqualFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEqualFold(FieldParentEquipmentID, v))
}

// ParentEquipmentIDContainsFold applies the ContainsFold predicate on the "parent_equipment_id" field.
func ParentEquipmentIDContainsFold(v string) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldContainsFold(FieldParentEquipmentID, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SubEquipment {
	return predicate.SubEquipment(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubEquipment) predicate.SubEquipment {
	return predicate.SubEquipment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubEquipment) predicate.SubEquipment {
	return predicate.SubEquipment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubEquipment) predicate.SubEquipment {
	return predicate.SubEquipment(sql.NotPredicates(p))
}
