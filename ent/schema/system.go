package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// System holds the schema definition for the System entity (water
// treatment, feeding, monitoring, ...). Systems form a self-referencing
// tree via parent_system_id and connect to Equipment through the
// EquipmentSystem junction.
type System struct {
	ent.Schema
}

// Mixin of the System.
func (System) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the System.
func (System) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("code").
			NotEmpty(),
		field.String("site_id").
			Optional(),
		// Nullable: cleared when the owning department is deleted
		// (Department→System uses the orphan policy).
		field.String("department_id").
			Optional(),
		field.String("parent_system_id").
			Optional(),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the System.
func (System) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "parent_system_id"),
		index.Fields("tenant_id", "department_id"),
		index.Fields("tenant_id", "is_deleted"),
	}
}
