package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubEquipment holds the schema definition for accessory parts mounted on
// an Equipment item (sensors, aerators, valves). SubEquipment has no
// soft-delete fields — deactivation (is_active=false) is terminal.
type SubEquipment struct {
	ent.Schema
}

// Mixin of the SubEquipment.
func (SubEquipment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
	}
}

// Fields of the SubEquipment.
func (SubEquipment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("parent_equipment_id").
			NotEmpty(),
		field.Bool("is_active").
			Default(true),
	}
}

// Indexes of the SubEquipment.
func (SubEquipment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "parent_equipment_id"),
	}
}
