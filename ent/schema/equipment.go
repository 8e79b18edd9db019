package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Equipment holds the schema definition for the Equipment entity.
// Equipment forms a self-referencing tree via parent_equipment_id.
// Tanks are equipment rows with is_tank=true; current_biomass on a tank
// is the one absolute delete blocker in the hierarchy.
type Equipment struct {
	ent.Schema
}

// Mixin of the Equipment.
func (Equipment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Equipment.
func (Equipment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("code").
			NotEmpty(),
		field.String("department_id").
			Optional(),
		field.String("parent_equipment_id").
			Optional(),
		// Denormalized count of non-deleted child equipment rows.
		// Kept consistent by the cascade executor; the counter_reconcile
		// job repairs drift.
		field.Int("sub_equipment_count").
			Default(0).
			Min(0),
		field.Bool("is_tank").
			Default(false),
		// Kilograms of live fish currently in the tank. Only meaningful
		// when is_tank=true.
		field.Float("current_biomass").
			Default(0),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the Equipment.
func (Equipment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "department_id"),
		index.Fields("tenant_id", "parent_equipment_id"),
		index.Fields("tenant_id", "is_tank"),
		index.Fields("tenant_id", "is_deleted"),
	}
}
