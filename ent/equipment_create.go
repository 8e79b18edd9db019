// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/equipment"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EquipmentCreate is the builder for creating a Equipment entity.
type EquipmentCreate struct {
	config
	mutation *EquipmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EquipmentCreate) SetCreatedAt(v time.Time) *EquipmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableCreatedAt(v *time.Time) *EquipmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EquipmentCreate) SetUpdatedAt(v time.Time) *EquipmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableUpdatedAt(v *time.Time) *EquipmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *EquipmentCreate) SetTenantID(v string) *EquipmentCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *EquipmentCreate) SetIsDeleted(v bool) *EquipmentCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableIsDeleted(v *bool) *EquipmentCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EquipmentCreate) SetDeletedAt(v time.Time) *EquipmentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableDeletedAt(v *time.Time) *EquipmentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDeletedBy sets the "deleted_by" field.
func (_c *EquipmentCreate) SetDeletedBy(v string) *EquipmentCreate {
	_c.mutation.SetDeletedBy(v)
	return _c
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableDeletedBy(v *string) *EquipmentCreate {
	if v != nil {
		_c.SetDeletedBy(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *EquipmentCreate) SetIsActive(v bool) *EquipmentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableIsActive(v *bool) *EquipmentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *EquipmentCreate) SetName(v string) *EquipmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *EquipmentCreate) SetCode(v string) *EquipmentCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDepartmentID sets the "department_id" field.
func (_c *EquipmentCreate) SetDepartmentID(v string) *EquipmentCreate {
	_c.mutation.SetDepartmentID(v)
	return _c
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableDepartmentID(v *string) *EquipmentCreate {
	if v != nil {
		_c.SetDepartmentID(*v)
	}
	return _c
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_c *EquipmentCreate) SetParentEquipmentID(v string) *EquipmentCreate {
	_c.mutation.SetParentEquipmentID(v)
	return _c
}

// SetNillableParentEquipmentID sets the "parent_equipment_id" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableParentEquipmentID(v *string) *EquipmentCreate {
	if v != nil {
		_c.SetParentEquipmentID(*v)
	}
	return _c
}

// SetSubEquipmentCount sets the "sub_equipment_count" field.
func (_c *EquipmentCreate) SetSubEquipmentCount(v int) *EquipmentCreate {
	_c.mutation.SetSubEquipmentCount(v)
	return _c
}

// SetNillableSubEquipmentCount sets the "sub_equipment_count" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableSubEquipmentCount(v *int) *EquipmentCreate {
	if v != nil {
		_c.SetSubEquipmentCount(*v)
	}
	return _c
}

// SetIsTank sets the "is_tank" field.
func (_c *EquipmentCreate) SetIsTank(v bool) *EquipmentCreate {
	_c.mutation.SetIsTank(v)
	return _c
}

// SetNillableIsTank sets the "is_tank" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableIsTank(v *bool) *EquipmentCreate {
	if v != nil {
		_c.SetIsTank(*v)
	}
	return _c
}

// SetCurrentBiomass sets the "current_biomass" field.
func (_c *EquipmentCreate) SetCurrentBiomass(v float64) *EquipmentCreate {
	_c.mutation.SetCurrentBiomass(v)
	return _c
}

// SetNillableCurrentBiomass sets the "current_biomass" field if the given value is not nil.
func (_c *EquipmentCreate) SetNillableCurrentBiomass(v *float64) *EquipmentCreate {
	if v != nil {
		_c.SetCurrentBiomass(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *EquipmentCreate) SetCreatedBy(v string) *EquipmentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EquipmentCreate) SetID(v string) *EquipmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EquipmentMutation object of the builder.
func (_c *EquipmentCreate) Mutation() *EquipmentMutation {
	return _c.mutation
}

// Save creates the Equipment in the database.
func (_c *EquipmentCreate) Save(ctx context.Context) (*Equipment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EquipmentCreate) SaveX(ctx context.Context) *Equipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EquipmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EquipmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EquipmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := equipment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := equipment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := equipment.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := equipment.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.SubEquipmentCount(); !ok {
		v := equipment.DefaultSubEquipmentCount
		_c.mutation.SetSubEquipmentCount(v)
	}
	if _, ok := _c.mutation.IsTank(); !ok {
		v := equipment.DefaultIsTank
		_c.mutation.SetIsTank(v)
	}
	if _, ok := _c.mutation.CurrentBiomass(); !ok {
		v := equipment.DefaultCurrentBiomass
		_c.mutation.SetCurrentBiomass(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EquipmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Equipment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Equipment.updated_at"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Equipment.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := equipment.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Equipment.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Equipment.is_deleted"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Equipment.is_active"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Equipment.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Equipment.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := equipment.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Equipment.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubEquipmentCount(); !ok {
		return &ValidationError{Name: "sub_equipment_count", err: errors.New(`ent: missing required field "Equipment.sub_equipment_count"`)}
	}
	if v, ok := _c.mutation.SubEquipmentCount(); ok {
		if err := equipment.SubEquipmentCountValidator(v); err != nil {
			return &ValidationError{Name: "sub_equipment_count", err: fmt.Errorf(`ent: validator failed for field "Equipment.sub_equipment_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTank(); !ok {
		return &ValidationError{Name: "is_tank", err: errors.New(`ent: missing required field "Equipment.is_tank"`)}
	}
	if _, ok := _c.mutation.CurrentBiomass(); !ok {
		return &ValidationError{Name: "current_biomass", err: errors.New(`ent: missing required field "Equipment.current_biomass"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Equipment.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := equipment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Equipment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *EquipmentCreate) sqlSave(ctx context.Context) (*Equipment, error) {
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
			return nil, fmt.Errorf("unexpected Equipment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EquipmentCreate) createSpec() (*Equipment, *sqlgraph.CreateSpec) {
	var (
		_node = &Equipment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(equipment.Table, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(equipment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(equipment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(equipment.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(equipment.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(equipment.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DeletedBy(); ok {
		_spec.SetField(equipment.FieldDeletedBy, field.TypeString, value)
		_node.DeletedBy = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(equipment.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(equipment.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.DepartmentID(); ok {
		_spec.SetField(equipment.FieldDepartmentID, field.TypeString, value)
		_node.DepartmentID = value
	}
	if value, ok := _c.mutation.ParentEquipmentID(); ok {
		_spec.SetField(equipment.FieldParentEquipmentID, field.TypeString, value)
		_node.ParentEquipmentID = value
	}
	if value, ok := _c.mutation.SubEquipmentCount(); ok {
		_spec.SetField(equipment.FieldSubEquipmentCount, field.TypeInt, value)
		_node.SubEquipmentCount = value
	}
	if value, ok := _c.mutation.IsTank(); ok {
		_spec.SetField(equipment.FieldIsTank, field.TypeBool, value)
		_node.IsTank = value
	}
	if value, ok := _c.mutation.CurrentBiomass(); ok {
		_spec.SetField(equipment.FieldCurrentBiomass, field.TypeFloat64, value)
		_node.CurrentBiomass = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(equipment.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// EquipmentCreateBulk is the builder for creating many Equipment entities in bulk.
type EquipmentCreateBulk struct {
	config
	err      error
	builders []*EquipmentCreate
}

// Save creates the Equipment entities in the database.
func (_c *EquipmentCreateBulk) Save(ctx context.Context) ([]*Equipment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Equipment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EquipmentMutation)
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
func (_c *EquipmentCreateBulk) SaveX(ctx context.Context) []*Equipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EquipmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EquipmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
