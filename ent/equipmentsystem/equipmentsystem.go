// Code generated by ent, DO NOT EDIT.

package equipmentsystem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the equipmentsystem type in the database.
	Label = "equipment_system"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldEquipmentID holds the string denoting the equipment_id field in the database.
	FieldEquipmentID = "equipment_id"
	// FieldSystemID holds the string denoting the system_id field in the database.
	FieldSystemID = "system_id"
	// FieldIsPrimary holds the string denoting the is_primary field in the database.
	FieldIsPrimary = "is_primary"
	// FieldCriticalityLevel holds the string denoting the criticality_level field in the database.
	FieldCriticalityLevel = "criticality_level"
	// Table holds the table name of the equipmentsystem in the database.
	Table = "equipment_systems"
)

// Columns holds all SQL columns for equipmentsystem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTenantID,
	FieldEquipmentID,
	FieldSystemID,
	FieldIsPrimary,
	FieldCriticalityLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// EquipmentIDValidator is a validator for the "equipment_id" field. It is called by the builders before save.
	EquipmentIDValidator func(string) error
	// SystemIDValidator is a validator for the "system_id" field. It is called by the builders before save.
	SystemIDValidator func(string) error
	// DefaultIsPrimary holds the default value on creation for the "is_primary" field.
	DefaultIsPrimary bool
)

// CriticalityLevel defines the type for the "criticality_level" enum field.
type CriticalityLevel string

// CriticalityLevelMEDIUM is the default value of the CriticalityLevel enum.
const DefaultCriticalityLevel = CriticalityLevelMEDIUM

// CriticalityLevel values.
const (
	CriticalityLevelLOW      CriticalityLevel = "LOW"
	CriticalityLevelMEDIUM   CriticalityLevel = "MEDIUM"
	CriticalityLevelHIGH     CriticalityLevel = "HIGH"
	CriticalityLevelCRITICAL CriticalityLevel = "CRITICAL"
)

func (cl CriticalityLevel) String() string {
	return string(cl)
}

// CriticalityLevelValidator is a validator for the "criticality_level" field enum values. It is called by the builders before save.
func CriticalityLevelValidator(cl CriticalityLevel) error {
	switch cl {
	case CriticalityLevelLOW, CriticalityLevelMEDIUM, CriticalityLevelHIGH, CriticalityLevelCRITICAL:
		return nil
	default:
		return fmt.Errorf("equipmentsystem: invalid enum value for criticality_level field: %q", cl)
	}
}

// OrderOption defines the ordering options for the EquipmentSystem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByEquipmentID orders the results by the equipment_id field.
func ByEquipmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEquipmentID, opts...).ToFunc()
}

// BySystemID orders the results by the system_id field.
func BySystemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemID, opts...).ToFunc()
}

// ByIsPrimary orders the results by the is_primary field.
func ByIsPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrimary, opts...).ToFunc()
}

// ByCriticalityLevel orders the results by the criticality_level field.
func ByCriticalityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalityLevel, opts...).ToFunc()
}
