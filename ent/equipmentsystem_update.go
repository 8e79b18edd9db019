// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/equipmentsystem"
	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EquipmentSystemUpdate is the builder for updating EquipmentSystem entities.
type EquipmentSystemUpdate struct {
	config
	hooks    []Hook
	mutation *EquipmentSystemMutation
}

// Where appends a list predicates to the EquipmentSystemUpdate builder.
func (_u *EquipmentSystemUpdate) Where(ps ...predicate.EquipmentSystem) *EquipmentSystemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EquipmentSystemUpdate) SetUpdatedAt(v time.Time) *EquipmentSystemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEquipmentID sets the "equipment_id" field.
func (_u *EquipmentSystemUpdate) SetEquipmentID(v string) *EquipmentSystemUpdate {
	_u.mutation.SetEquipmentID(v)
	return _u
}

// SetNillableEquipmentID sets the "equipment_id" field if the given value is not nil.
func (_u *EquipmentSystemUpdate) SetNillableEquipmentID(v *string) *EquipmentSystemUpdate {
	if v != nil {
		_u.SetEquipmentID(*v)
	}
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *EquipmentSystemUpdate) SetSystemID(v string) *EquipmentSystemUpdate {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *EquipmentSystemUpdate) SetNillableSystemID(v *string) *EquipmentSystemUpdate {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EquipmentSystemUpdate) SetIsPrimary(v bool) *EquipmentSystemUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EquipmentSystemUpdate) SetNillableIsPrimary(v *bool) *EquipmentSystemUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetCriticalityLevel sets the "criticality_level" field.
func (_u *EquipmentSystemUpdate) SetCriticalityLevel(v equipmentsystem.CriticalityLevel) *EquipmentSystemUpdate {
	_u.mutation.SetCriticalityLevel(v)
	return _u
}

// SetNillableCriticalityLevel sets the "criticality_level" field if the given value is not nil.
func (_u *EquipmentSystemUpdate) SetNillableCriticalityLevel(v *equipmentsystem.CriticalityLevel) *EquipmentSystemUpdate {
	if v != nil {
		_u.SetCriticalityLevel(*v)
	}
	return _u
}

// Mutation returns the EquipmentSystemMutation object of the builder.
func (_u *EquipmentSystemUpdate) Mutation() *EquipmentSystemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EquipmentSystemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EquipmentSystemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EquipmentSystemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EquipmentSystemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EquipmentSystemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := equipmentsystem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EquipmentSystemUpdate) check() error {
	if v, ok := _u.mutation.EquipmentID(); ok {
		if err := equipmentsystem.EquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "equipment_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.equipment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SystemID(); ok {
		if err := equipmentsystem.SystemIDValidator(v); err != nil {
			return &ValidationError{Name: "system_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.system_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalityLevel(); ok {
		if err := equipmentsystem.CriticalityLevelValidator(v); err != nil {
			return &ValidationError{Name: "criticality_level", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.criticality_level": %w`, err)}
		}
	}
	return nil
}

func (_u *EquipmentSystemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipmentsystem.Table, equipmentsystem.Columns, sqlgraph.NewFieldSpec(equipmentsystem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(equipmentsystem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EquipmentID(); ok {
		_spec.SetField(equipmentsystem.FieldEquipmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemID(); ok {
		_spec.SetField(equipmentsystem.FieldSystemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(equipmentsystem.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CriticalityLevel(); ok {
		_spec.SetField(equipmentsystem.FieldCriticalityLevel, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipmentsystem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EquipmentSystemUpdateOne is the builder for updating a single EquipmentSystem entity.
type EquipmentSystemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EquipmentSystemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EquipmentSystemUpdateOne) SetUpdatedAt(v time.Time) *EquipmentSystemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEquipmentID sets the "equipment_id" field.
func (_u *EquipmentSystemUpdateOne) SetEquipmentID(v string) *EquipmentSystemUpdateOne {
	_u.mutation.SetEquipmentID(v)
	return _u
}

// SetNillableEquipmentID sets the "equipment_id" field if the given value is not nil.
func (_u *EquipmentSystemUpdateOne) SetNillableEquipmentID(v *string) *EquipmentSystemUpdateOne {
	if v != nil {
		_u.SetEquipmentID(*v)
	}
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *EquipmentSystemUpdateOne) SetSystemID(v string) *EquipmentSystemUpdateOne {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *EquipmentSystemUpdateOne) SetNillableSystemID(v *string) *EquipmentSystemUpdateOne {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EquipmentSystemUpdateOne) SetIsPrimary(v bool) *EquipmentSystemUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EquipmentSystemUpdateOne) SetNillableIsPrimary(v *bool) *EquipmentSystemUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetCriticalityLevel sets the "criticality_level" field.
func (_u *EquipmentSystemUpdateOne) SetCriticalityLevel(v equipmentsystem.CriticalityLevel) *EquipmentSystemUpdateOne {
	_u.mutation.SetCriticalityLevel(v)
	return _u
}

// SetNillableCriticalityLevel sets the "criticality_level" field if the given value is not nil.
func (_u *EquipmentSystemUpdateOne) SetNillableCriticalityLevel(v *equipmentsystem.CriticalityLevel) *EquipmentSystemUpdateOne {
	if v != nil {
		_u.SetCriticalityLevel(*v)
	}
	return _u
}

// Mutation returns the EquipmentSystemMutation object of the builder.
func (_u *EquipmentSystemUpdateOne) Mutation() *EquipmentSystemMutation {
	return _u.mutation
}

// Where appends a list predicates to the EquipmentSystemUpdate builder.
func (_u *EquipmentSystemUpdateOne) Where(ps ...predicate.EquipmentSystem) *EquipmentSystemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EquipmentSystemUpdateOne) Select(field string, fields ...string) *EquipmentSystemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EquipmentSystem entity.
func (_u *EquipmentSystemUpdateOne) Save(ctx context.Context) (*EquipmentSystem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EquipmentSystemUpdateOne) SaveX(ctx context.Context) *EquipmentSystem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EquipmentSystemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EquipmentSystemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EquipmentSystemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := equipmentsystem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EquipmentSystemUpdateOne) check() error {
	if v, ok := _u.mutation.EquipmentID(); ok {
		if err := equipmentsystem.EquipmentIDValidator(v); err != nil {
			return &ValidationError{Name: "equipment_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.equipment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SystemID(); ok {
		if err := equipmentsystem.SystemIDValidator(v); err != nil {
			return &ValidationError{Name: "system_id", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.system_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalityLevel(); ok {
		if err := equipmentsystem.CriticalityLevelValidator(v); err != nil {
			return &ValidationError{Name: "criticality_level", err: fmt.Errorf(`ent: validator failed for field "EquipmentSystem.criticality_level": %w`, err)}
		}
	}
	return nil
}

func (_u *EquipmentSystemUpdateOne) sqlSave(ctx context.Context) (_node *EquipmentSystem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipmentsystem.Table, equipmentsystem.Columns, sqlgraph.NewFieldSpec(equipmentsystem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EquipmentSystem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, equipmentsystem.FieldID)
		for _, f := range fields {
			if !equipmentsystem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != equipmentsystem.FieldID {
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
		_spec.SetField(equipmentsystem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EquipmentID(); ok {
		_spec.SetField(equipmentsystem.FieldEquipmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemID(); ok {
		_spec.SetField(equipmentsystem.FieldSystemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(equipmentsystem.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CriticalityLevel(); ok {
		_spec.SetField(equipmentsystem.FieldCriticalityLevel, field.TypeEnum, value)
	}
	_node = &EquipmentSystem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipmentsystem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
