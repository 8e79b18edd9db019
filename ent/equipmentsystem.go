// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"aquafarm.io/steward/ent/equipmentsystem"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// EquipmentSystem is the model entity for the EquipmentSystem schema.
type EquipmentSystem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// EquipmentID holds the value of the "equipment_id" field.
	EquipmentID string `json:"equipment_id,omitempty"`
	// SystemID holds the value of the "system_id" field.
	SystemID string `json:"system_id,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// CriticalityLevel holds the value of the "criticality_level" field.
	CriticalityLevel equipmentsystem.CriticalityLevel `json:"criticality_level,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EquipmentSystem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case equipmentsystem.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case equipmentsystem.FieldID, equipmentsystem.FieldTenantID, equipmentsystem.FieldEquipmentID, equipmentsystem.FieldSystemID, equipmentsystem.FieldCriticalityLevel:
			values[i] = new(sql.NullString)
		case equipmentsystem.FieldCreatedAt, equipmentsystem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EquipmentSystem fields.
func (_m *EquipmentSystem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case equipmentsystem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case equipmentsystem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case equipmentsystem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case equipmentsystem.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case equipmentsystem.FieldEquipmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field equipment_id", values[i])
			} else if value.Valid {
				_m.EquipmentID = value.String
			}
		case equipmentsystem.FieldSystemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_id", values[i])
			} else if value.Valid {
				_m.SystemID = value.String
			}
		case equipmentsystem.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case equipmentsystem.FieldCriticalityLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criticality_level", values[i])
			} else if value.Valid {
				_m.CriticalityLevel = equipmentsystem.CriticalityLevel(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EquipmentSystem.
// This includes values selected through modifiers, order, etc.
func (_m *EquipmentSystem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EquipmentSystem.
// Note that you need to call EquipmentSystem.Unwrap() before calling this method if this EquipmentSystem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EquipmentSystem) Update() *EquipmentSystemUpdateOne {
	return NewEquipmentSystemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EquipmentSystem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EquipmentSystem) Unwrap() *EquipmentSystem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EquipmentSystem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EquipmentSystem) String() string {
	var builder strings.Builder
	builder.WriteString("EquipmentSystem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("equipment_id=")
	builder.WriteString(_m.EquipmentID)
	builder.WriteString(", ")
	builder.WriteString("system_id=")
	builder.WriteString(_m.SystemID)
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("criticality_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalityLevel))
	builder.WriteByte(')')
	return builder.String()
}

// EquipmentSystems is a parsable slice of EquipmentSystem.
type EquipmentSystems []*EquipmentSystem
