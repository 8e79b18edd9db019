// Package schema contains Ent schema definitions for AquaFarm Steward.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// TimeMixin adds created_at and updated_at fields to schemas.
// Ent best practice: use mixin for shared timestamp fields.
type TimeMixin struct {
	mixin.Schema
}

// Fields of the TimeMixin.
func (TimeMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// TenantMixin adds the mandatory tenant scope to every farm entity.
// Every query and mutation in the integrity engine filters on tenant_id.
type TenantMixin struct {
	mixin.Schema
}

// Fields of the TenantMixin.
func (TenantMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
	}
}

// SoftDeleteMixin adds the soft-delete triple plus the activity flag.
// Invariant: is_deleted=true implies is_active=false; deleted_at/deleted_by
// are set exactly when is_deleted transitions false→true. The store layer
// owns that invariant — the fields are never written independently.
type SoftDeleteMixin struct {
	mixin.Schema
}

// Fields of the SoftDeleteMixin.
func (SoftDeleteMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("is_deleted").
			Default(false),
		field.Time("deleted_at").
			Optional().
			Nillable(),
		field.String("deleted_by").
			Optional(),
		field.Bool("is_active").
			Default(true),
	}
}

// AuditMixin adds created_at (immutable, no updated_at) for append-only tables.
type AuditMixin struct {
	mixin.Schema
}

// Fields of the AuditMixin.
func (AuditMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
