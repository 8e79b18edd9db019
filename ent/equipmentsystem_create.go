// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/equipmentsystem"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EquipmentSystemCreate is the builder for creating a EquipmentSystem entity.
type EquipmentSystemCreate struct {
	config
	mutation *EquipmentSystemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EquipmentSystemCreate) SetCreatedAt(v time.Time) *EquipmentSystemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EquipmentSystemCreate) SetNillableCreatedAt(v *time.Time) *EquipmentSystemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EquipmentSystemCreate) SetUpdatedAt(v time.Time) *EquipmentSystemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EquipmentSystemCreate) SetNillableUpdatedAt(v *time.Time) *EquipmentSystemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *EquipmentSystemCreate) SetTenantID(v string) *EquipmentSystemCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEquipmentID sets the "equipment_id" field.
func (_c *EquipmentSystemCreate) SetEquipmentID(v string) *EquipmentSystemCreate {
	_c.mutation.SetEquipmentID(v)
	return _c
}

// SetSystemID sets the "system_id" field.
func (_c *EquipmentSystemCreate) SetSystemID(v string) *EquipmentSystemCreate {
	_c.mutation.SetSystemID(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *EquipmentSystemCreate) SetIsPrimary(v bool) *EquipmentSystemCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *EquipmentSystemCreate) SetNillableIsPrimary(v *bool) *EquipmentSystemCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetCriticalityLevel sets the "criticality_level" field.
func (_c *EquipmentSystemCreate) SetCriticalityLevel(v equipmentsystem.CriticalityLevel) *EquipmentSystemCreate {
	_c.mutation.SetCriticalityLevel(v)
	return _c
}

// SetNillableCriticalityLevel sets the "criticality_level" field if the given value is not nil.
func (_c *EquipmentSystemCreate) SetNillableCriticalityLevel(v *equipmentsystem.CriticalityLevel) *EquipmentSystemCreate {
	if v != nil {
		_c.SetCriticalityLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EquipmentSystemCreate) SetID(v string) *EquipmentSystemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EquipmentSystemMutation object of the builder.
func (_c *EquipmentSystemCreate) Mutation() *EquipmentSystemMutation {
	return _c.mutation
}

// Save creates the EquipmentSystem in the database.
func (_c *EquipmentSystemCreate) Save(ctx context.Context) (*EquipmentSystem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EquipmentSystemCreate) SaveX(ctx context.Context) *EquipmentSystem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EquipmentSystemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EquipmentSystemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EquipmentSystemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := equipmentsystem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := equipmentsystem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := equipmentsystem.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.CriticalityLevel(); !ok {
		v := equipmentsystem.DefaultCriticalityLevel
		_c.mutation.SetCriticalityLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EquipmentSystemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EquipmentSystem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EquipmentSystem.updated_at"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EquipmentSystem.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := equipmentsystem.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EquipmentID(); !ok {
		return &ValidationError{Name: "equipment_id", err: errors.New(`ent: missing required field "EquipmentSystem.equipment_id"`)}
	}
	if v, ok := _c.mutation.EquipmentID(); ok {
		if err := equipmentsystem.EquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "equipment_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.equipment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemID(); !ok {
		return &ValidationError{Name: "system_id", err: errors.New(`ent: missing required field "EquipmentSystem.system_id"`)}
	}
	if v, ok := _c.mutation.SystemID(); ok {
		if err := equipmentsystem.SystemIDValidator(v); err != nil {
			return &ValidationError{Name: "system_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.system_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "EquipmentSystem.is_primary"`)}
	}
	if _, ok := _c.mutation.CriticalityLevel(); !ok {
		return &ValidationError{Name: "criticality_level", err: errors.New(`ent: missing required field "EquipmentSystem.criticality_level"`)}
	}
	if v, ok := _c.mutation.CriticalityLevel(); ok {
		if err := equipmentsystem.CriticalityLevelValidator(v); err != nil {
			return &ValidationError{Name: "criticality_level", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.criticality_level": %w`, err)}
		}
	}
	return nil
}

func (_c *EquipmentSystemCreate) sqlSave(ctx context.Context) (*EquipmentSystem, error) {
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
			return nil, fmt.Errorf("unexpected EquipmentSystem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EquipmentSystemCreate) createSpec() (*EquipmentSystem, *sqlgraph.CreateSpec) {
	var (
		_node = &EquipmentSystem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(equipmentsystem.Table, sqlgraph.NewFieldSpec(equipmentsystem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(equipmentsystem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(equipmentsystem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(equipmentsystem.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.EquipmentID(); ok {
		_spec.SetField(equipmentsystem.FieldEquipmentID, field.TypeString, value)
		_node.EquipmentID = value
	}
	if value, ok := _c.mutation.SystemID(); ok {
		_spec.SetField(equipmentsystem.FieldSystemID, field.TypeString, value)
		_node.SystemID = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(equipmentsystem.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.CriticalityLevel(); ok {
		_spec.SetField(equipmentsystem.FieldCriticalityLevel, field.TypeEnum, value)
		_node.CriticalityLevel = value
	}
	return _node, _spec
}

// EquipmentSystemCreateBulk is the builder for creating many EquipmentSystem entities in bulk.
type EquipmentSystemCreateBulk struct {
	config
	err      error
	builders []*EquipmentSystemCreate
}

// Save creates the EquipmentSystem entities in the database.
func (_c *EquipmentSystemCreateBulk) Save(ctx context.Context) ([]*EquipmentSystem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EquipmentSystem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EquipmentSystemMutation)
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
func (_c *EquipmentSystemCreateBulk) SaveX(ctx context.Context) []*EquipmentSystem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EquipmentSystemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EquipmentSystemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
