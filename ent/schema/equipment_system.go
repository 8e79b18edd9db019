package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EquipmentSystem holds the schema definition for the equipment↔system
// many-to-many junction. Junction rows are hard-deleted (not soft) when
// either side's hierarchy is cascade-deleted.
type EquipmentSystem struct {
	ent.Schema
}

// Mixin of the EquipmentSystem.
func (EquipmentSystem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
	}
}

// Fields of the EquipmentSystem.
func (EquipmentSystem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("equipment_id").
			NotEmpty(),
		field.String("system_id").
			NotEmpty(),
		field.Bool("is_primary").
			Default(false),
		field.Enum("criticality_level").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL").
			Default("MEDIUM"),
	}
}

// Indexes of the EquipmentSystem.
func (EquipmentSystem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "equipment_id", "system_id").Unique(),
		index.Fields("tenant_id", "system_id"),
	}
}
