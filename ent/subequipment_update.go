// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/predicate"
	"aquafarm.io/steward/ent/subequipment"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubEquipmentUpdate is the builder for updating SubEquipment entities.
type SubEquipmentUpdate struct {
	config
	hooks    []Hook
	mutation *SubEquipmentMutation
}

// Where appends a list predicates to the SubEquipmentUpdate builder.
func (_u *SubEquipmentUpdate) Where(ps ...predicate.SubEquipment) *SubEquipmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubEquipmentUpdate) SetUpdatedAt(v time.Time) *SubEquipmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubEquipmentUpdate) SetName(v string) *SubEquipmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubEquipmentUpdate) SetNillableName(v *string) *SubEquipmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_u *SubEquipmentUpdate) SetParentEquipmentID(v string) *SubEquipmentUpdate {
	_u.mutation.SetParentEquipmentID(v)
	return _u
}

// SetNillableParentEquipmentID sets the "parent_equipment_id" field if the given value is not nil.
func (_u *SubEquipmentUpdate) SetNillableParentEquipmentID(v *string) *SubEquipmentUpdate {
	if v != nil {
		_u.SetParentEquipmentID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SubEquipmentUpdate) SetIsActive(v bool) *SubEquipmentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SubEquipmentUpdate) SetNillableIsActive(v *bool) *SubEquipmentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SubEquipmentMutation object of the builder.
func (_u *SubEquipmentUpdate) Mutation() *SubEquipmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubEquipmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubEquipmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubEquipmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubEquipmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubEquipmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subequipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubEquipmentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subequipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParentEquipmentID(); ok {
		if err := subequipment.ParentEquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_equipment_id", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.parent_equipment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubEquipmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subequipment.Table, subequipment.Columns, sqlgraph.NewFieldSpec(subequipment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subequipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subequipment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentEquipmentID(); ok {
		_spec.SetField(subequipment.FieldParentEquipmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(subequipment.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subequipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubEquipmentUpdateOne is the builder for updating a single SubEquipment entity.
type SubEquipmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubEquipmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubEquipmentUpdateOne) SetUpdatedAt(v time.Time) *SubEquipmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubEquipmentUpdateOne) SetName(v string) *SubEquipmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubEquipmentUpdateOne) SetNillableName(v *string) *SubEquipmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_u *SubEquipmentUpdateOne) SetParentEquipmentID(v string) *SubEquipmentUpdateOne {
	_u.mutation.SetParentEquipmentID(v)
	return _u
}

// SetNillableParentEquipmentID sets the "parent_equipment_id" field if the given value is not nil.
func (_u *SubEquipmentUpdateOne) SetNillableParentEquipmentID(v *string) *SubEquipmentUpdateOne {
	if v != nil {
		_u.SetParentEquipmentID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SubEquipmentUpdateOne) SetIsActive(v bool) *SubEquipmentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SubEquipmentUpdateOne) SetNillableIsActive(v *bool) *SubEquipmentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SubEquipmentMutation object of the builder.
func (_u *SubEquipmentUpdateOne) Mutation() *SubEquipmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubEquipmentUpdate builder.
func (_u *SubEquipmentUpdateOne) Where(ps ...predicate.SubEquipment) *SubEquipmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubEquipmentUpdateOne) Select(field string, fields ...string) *SubEquipmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubEquipment entity.
func (_u *SubEquipmentUpdateOne) Save(ctx context.Context) (*SubEquipment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubEquipmentUpdateOne) SaveX(ctx context.Context) *SubEquipment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubEquipmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubEquipmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubEquipmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subequipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubEquipmentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subequipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParentEquipmentID(); ok {
		if err := subequipment.ParentEquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_equipment_id", err: fmt.Errorf(`ent: validator failed for field "SubEquipment.parent_equipment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubEquipmentUpdateOne) sqlSave(ctx context.Context) (_node *SubEquipment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subequipment.Table, subequipment.Columns, sqlgraph.NewFieldSpec(subequipment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubEquipment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subequipment.FieldID)
		for _, f := range fields {
			if !subequipment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subequipment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subequipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subequipment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentEquipmentID(); ok {
		_spec.SetField(subequipment.FieldParentEquipmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(subequipment.FieldIsActive, field.TypeBool, value)
	}
	_node = &SubEquipment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subequipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
