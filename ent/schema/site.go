package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Site holds the schema definition for the Site entity — the top of the
// farm hierarchy. Departments reference a site through a nullable FK and
// are orphaned (site_id cleared), never deleted, when the site goes away.
type Site struct {
	ent.Schema
}

// Mixin of the Site.
func (Site) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		TenantMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Site.
func (Site) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("code").
			NotEmpty(),
		field.String("location").
			Optional(),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the Site.
func (Site) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "code"),
		index.Fields("tenant_id", "is_deleted"),
	}
}
