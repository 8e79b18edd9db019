// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/subequipment"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubEquipmentCreate is the builder for creating a SubEquipment entity.
type SubEquipmentCreate struct {
	config
	mutation *SubEquipmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubEquipmentCreate) SetCreatedAt(v time.Time) *SubEquipmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubEquipmentCreate) SetNillableCreatedAt(v *time.Time) *SubEquipmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubEquipmentCreate) SetUpdatedAt(v time.Time) *SubEquipmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubEquipmentCreate) SetNillableUpdatedAt(v *time.Time) *SubEquipmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *SubEquipmentCreate) SetTenantID(v string) *SubEquipmentCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SubEquipmentCreate) SetName(v string) *SubEquipmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_c *SubEquipmentCreate) SetParentEquipmentID(v string) *SubEquipmentCreate {
	_c.mutation.SetParentEquipmentID(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SubEquipmentCreate) SetIsActive(v bool) *SubEquipmentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SubEquipmentCreate) SetNillableIsActive(v *bool) *SubEquipmentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubEquipmentCreate) SetID(v string) *SubEquipmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SubEquipmentMutation object of the builder.
func (_c *SubEquipmentCreate) Mutation() *SubEquipmentMutation {
	return _c.mutation
}

// Save creates the SubEquipment in the database.
func (_c *SubEquipmentCreate) Save(ctx context.Context) (*SubEquipment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubEquipmentCreate) SaveX(ctx context.Context) *SubEquipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubEquipmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubEquipmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubEquipmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subequipment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subequipment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := subequipment.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubEquipmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubEquipment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubEquipment.updated_at"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SubEquipment.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := subequipment.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SubEquipment.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subequipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParentEquipmentID(); !ok {
		return &ValidationError{Name: "parent_equipment_id", err: errors.New(`ent: missing required field "SubEquipment.parent_equipment_id"`)}
	}
	if v, ok := _c.mutation.ParentEquipmentID(); ok {
		if err := subequipment.ParentEquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_equipment_id", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.parent_equipment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SubEquipment.is_active"`)}
	}
	return nil
}

func (_c *SubEquipmentCreate) sqlSave(ctx context.Context) (*SubEquipment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SubEquipment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubEquipmentCreate) createSpec() (*SubEquipment, *sqlgraph.CreateSpec) {
	var (
		_node = &SubEquipment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subequipment.Table, sqlgraph.NewFieldSpec(subequipment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subequipment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subequipment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(subequipment.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subequipment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ParentEquipmentID(); ok {
		_spec.SetField(subequipment.FieldParentEquipmentID, field.TypeString, value)
		_node.ParentEquipmentID = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(subequipment.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// SubEquipmentCreateBulk is the builder for creating many SubEquipment entities in bulk.
type SubEquipmentCreateBulk struct {
	config
	err      error
	builders []*SubEquipmentCreate
}

// Save creates the SubEquipment entities in the database.
func (_c *SubEquipmentCreateBulk) Save(ctx context.Context) ([]*SubEquipment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubEquipment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubEquipmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubEquipmentCreateBulk) SaveX(ctx context.Context) []*SubEquipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubEquipmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubEquipmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
