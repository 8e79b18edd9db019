// Code generated by ent, DO NOT EDIT.

package equipmentsystem

import (
	"time"

	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldTenantID, v))
}

// EquipmentID applies equality check predicate on the "equipment_id" field. It's identical to EquipmentIDEQ.
func EquipmentID(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldEquipmentID, v))
}

// SystemID applies equality check predicate on the "system_id" field. It's identical to SystemIDEQ.
func SystemID(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldSystemID, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldIsPrimary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContainsFold(FieldTenantID, v))
}

// EquipmentIDEQ applies the EQ predicate on the "equipment_id" field.
func EquipmentIDEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldEquipmentID, v))
}

// EquipmentIDNEQ applies the NEQ predicate on the "equipment_id" field.
func EquipmentIDNEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldEquipmentID, v))
}

// EquipmentIDIn applies the In predicate on the "equipment_id" field.
func EquipmentIDIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldEquipmentID, vs...))
}

// EquipmentIDNotIn applies the NotIn predicate on the "equipment_id" field.
func EquipmentIDNotIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldEquipmentID, vs...))
}

// EquipmentIDGT applies the GT predicate on the "equipment_id" field.
func EquipmentIDGT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldEquipmentID, v))
}

// EquipmentIDGTE applies the GTE predicate on the "equipment_id" field.
func EquipmentIDGTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldEquipmentID, v))
}

// EquipmentIDLT applies the LT predicate on the "equipment_id" field.
func EquipmentIDLT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldEquipmentID, v))
}

// EquipmentIDLTE applies the LTE predicate on the "equipment_id" field.
func EquipmentIDLTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldEquipmentID, v))
}

// EquipmentIDContains applies the Contains predicate on the "equipment_id" field.
func EquipmentIDContains(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContains(FieldEquipmentID, v))
}

// EquipmentIDHasPrefix applies the HasPrefix predicate on the "equipment_id" field.
func EquipmentIDHasPrefix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasPrefix(FieldEquipmentID, v))
}

// EquipmentIDHasSuffix applies the HasSuffix predicate on the "equipment_id" field.
func EquipmentIDHasSuffix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasSuffix(FieldEquipmentID, v))
}

// EquipmentIDEqualFold applies the EqualFold predicate on the "equipment_id" field.
func EquipmentIDEqualFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEqualFold(FieldEquipmentID, v))
}

// EquipmentIDContainsFold applies the ContainsFold predicate on the "equipment_id" field.
func EquipmentIDContainsFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContainsFold(FieldEquipmentID, v))
}

// SystemIDEQ applies the EQ predicate on the "system_id" field.
func SystemIDEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldSystemID, v))
}

// SystemIDNEQ applies the NEQ predicate on the "system_id" field.
func SystemIDNEQ(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldSystemID, v))
}

// SystemIDIn applies the In predicate on the "system_id" field.
func SystemIDIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldSystemID, vs...))
}

// SystemIDNotIn applies the NotIn predicate on the "system_id" field.
func SystemIDNotIn(vs ...string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldSystemID, vs...))
}

// SystemIDGT applies the GT predicate on the "system_id" field.
func SystemIDGT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGT(FieldSystemID, v))
}

// SystemIDGTE applies the GTE predicate on the "system_id" field.
func SystemIDGTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldGTE(FieldSystemID, v))
}

// SystemIDLT applies the LT predicate on the "system_id" field.
func SystemIDLT(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLT(FieldSystemID, v))
}

// SystemIDLTE applies the LTE predicate on the "system_id" field.
func SystemIDLTE(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldLTE(FieldSystemID, v))
}

// SystemIDContains applies the Contains predicate on the "system_id" field.
func SystemIDContains(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContains(FieldSystemID, v))
}

// SystemIDHasPrefix applies the HasPrefix predicate on the "system_id" field.
func SystemIDHasPrefix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasPrefix(FieldSystemID, v))
}

// SystemIDHasSuffix applies the HasSuffix predicate on the "system_id" field.
func SystemIDHasSuffix(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldHasSuffix(FieldSystemID, v))
}

// SystemIDEqualFold applies the EqualFold predicate on the "system_id" field.
func SystemIDEqualFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEqualFold(FieldSystemID, v))
}

// SystemIDContainsFold applies the ContainsFold predicate on the "system_id" field.
func SystemIDContainsFold(v string) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldContainsFold(FieldSystemID, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldIsPrimary, v))
}

// CriticalityLevelEQ applies the EQ predicate on the "criticality_level" field.
func CriticalityLevelEQ(v CriticalityLevel) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldEQ(FieldCriticalityLevel, v))
}

// CriticalityLevelNEQ applies the NEQ predicate on the "criticality_level" field.
func CriticalityLevelNEQ(v CriticalityLevel) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNEQ(FieldCriticalityLevel, v))
}

// CriticalityLevelIn applies the In predicate on the "criticality_level" field.
func CriticalityLevelIn(vs ...CriticalityLevel) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldIn(FieldCriticalityLevel, vs...))
}

// CriticalityLevelNotIn applies the NotIn predicate on the "criticality_level" field.
func CriticalityLevelNotIn(vs ...CriticalityLevel) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.FieldNotIn(FieldCriticalityLevel, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EquipmentSystem) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EquipmentSystem) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EquipmentSystem) predicate.EquipmentSystem {
	return predicate.EquipmentSystem(sql.NotPredicates(p))
}
