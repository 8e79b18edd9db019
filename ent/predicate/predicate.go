// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Equipment is the predicate function for equipment builders.
type Equipment func(*sql.Selector)

// EquipmentSystem is the predicate function for equipmentsystem builders.
type EquipmentSystem func(*sql.Selector)

// Site is the predicate function for site builders.
type Site func(*sql.Selector)

// SubEquipment is the predicate function for subequipment builders.
type SubEquipment func(*sql.Selector)

// System is the predicate function for system builders.
type System func(*sql.Selector)
