package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Department holds the schema definition for the Department entity.
// site_id is a nullable soft FK: clearing it (orphaning) is the delete
// policy for Site→Department, so no Ent edge with DB-level cascade is used.
type Department struct {
	ent.Schema
}

// Mixin of the Department.
func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Department.
func (Department) Fields() []ent.Field {
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
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the Department.
func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "site_id"),
		index.Fields("tenant_id", "is_deleted"),
	}
}
