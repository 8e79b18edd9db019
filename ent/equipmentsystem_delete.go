// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"aquafarm.io/steward/ent/equipmentsystem"
	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EquipmentSystemDelete is the builder for deleting a EquipmentSystem entity.
type EquipmentSystemDelete struct {
	config
	hooks    []Hook
	mutation *EquipmentSystemMutation
}

// Where appends a list predicates to the EquipmentSystemDelete builder.
func (_d *EquipmentSystemDelete) Where(ps ...predicate.EquipmentSystem) *EquipmentSystemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EquipmentSystemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EquipmentSystemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EquipmentSystemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(equipmentsystem.Table, sqlgraph.NewFieldSpec(equipmentsystem.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EquipmentSystemDeleteOne is the builder for deleting a single EquipmentSystem entity.
type EquipmentSystemDeleteOne struct {
	_d *EquipmentSystemDelete
}

// Where appends a list predicates to the EquipmentSystemDelete builder.
func (_d *EquipmentSystemDeleteOne) Where(ps ...predicate.EquipmentSystem) *EquipmentSystemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EquipmentSystemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{equipmentsystem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EquipmentSystemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
