// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/predicate"
	"aquafarm.io/steward/ent/system"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SystemUpdate is the builder for updating System entities.
type SystemUpdate struct {
	config
	hooks    []Hook
	mutation *SystemMutation
}

// Where appends a list predicates to the SystemUpdate builder.
func (_u *SystemUpdate) Where(ps ...predicate.System) *SystemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SystemUpdate) SetUpdatedAt(v time.Time) *SystemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *SystemUpdate) SetIsDeleted(v bool) *SystemUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableIsDeleted(v *bool) *SystemUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SystemUpdate) SetDeletedAt(v time.Time) *SystemUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableDeletedAt(v *time.Time) *SystemUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SystemUpdate) ClearDeletedAt() *SystemUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletedBy sets the "deleted_by" field.
func (_u *SystemUpdate) SetDeletedBy(v string) *SystemUpdate {
	_u.mutation.SetDeletedBy(v)
	return _u
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableDeletedBy(v *string) *SystemUpdate {
	if v != nil {
		_u.SetDeletedBy(*v)
	}
	return _u
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (_u *SystemUpdate) ClearDeletedBy() *SystemUpdate {
	_u.mutation.ClearDeletedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SystemUpdate) SetIsActive(v bool) *SystemUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableIsActive(v *bool) *SystemUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SystemUpdate) SetName(v string) *SystemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableName(v *string) *SystemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SystemUpdate) SetCode(v string) *SystemUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableCode(v *string) *SystemUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *SystemUpdate) SetSiteID(v string) *SystemUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableSiteID(v *string) *SystemUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *SystemUpdate) ClearSiteID() *SystemUpdate {
	_u.mutation.ClearSiteID()
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *SystemUpdate) SetDepartmentID(v string) *SystemUpdate {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableDepartmentID(v *string) *SystemUpdate {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *SystemUpdate) ClearDepartmentID() *SystemUpdate {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetParentSystemID sets the "parent_system_id" field.
func (_u *SystemUpdate) SetParentSystemID(v string) *SystemUpdate {
	_u.mutation.SetParentSystemID(v)
	return _u
}

// SetNillableParentSystemID sets the "parent_system_id" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableParentSystemID(v *string) *SystemUpdate {
	if v != nil {
		_u.SetParentSystemID(*v)
	}
	return _u
}

// ClearParentSystemID clears the value of the "parent_system_id" field.
func (_u *SystemUpdate) ClearParentSystemID() *SystemUpdate {
	_u.mutation.ClearParentSystemID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SystemUpdate) SetCreatedBy(v string) *SystemUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SystemUpdate) SetNillableCreatedBy(v *string) *SystemUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the SystemMutation object of the builder.
func (_u *SystemUpdate) Mutation() *SystemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SystemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SystemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SystemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := system.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SystemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := system.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "System.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := system.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "System.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := system.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "System.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SystemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(system.Table, system.Columns, sqlgraph.NewFieldSpec(system.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(system.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(system.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(system.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(system.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedBy(); ok {
		_spec.SetField(system.FieldDeletedBy, field.TypeString, value)
	}
	if _u.mutation.DeletedByCleared() {
		_spec.ClearField(system.FieldDeletedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(system.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(system.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(system.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(system.FieldSiteID, field.TypeString, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(system.FieldSiteID, field.TypeString)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(system.FieldDepartmentID, field.TypeString, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(system.FieldDepartmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSystemID(); ok {
		_spec.SetField(system.FieldParentSystemID, field.TypeString, value)
	}
	if _u.mutation.ParentSystemIDCleared() {
		_spec.ClearField(system.FieldParentSystemID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(system.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{system.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SystemUpdateOne is the builder for updating a single System entity.
type SystemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SystemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SystemUpdateOne) SetUpdatedAt(v time.Time) *SystemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *SystemUpdateOne) SetIsDeleted(v bool) *SystemUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableIsDeleted(v *bool) *SystemUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SystemUpdateOne) SetDeletedAt(v time.Time) *SystemUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableDeletedAt(v *time.Time) *SystemUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SystemUpdateOne) ClearDeletedAt() *SystemUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletedBy sets the "deleted_by" field.
func (_u *SystemUpdateOne) SetDeletedBy(v string) *SystemUpdateOne {
	_u.mutation.SetDeletedBy(v)
	return _u
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableDeletedBy(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetDeletedBy(*v)
	}
	return _u
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (_u *SystemUpdateOne) ClearDeletedBy() *SystemUpdateOne {
	_u.mutation.ClearDeletedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SystemUpdateOne) SetIsActive(v bool) *SystemUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableIsActive(v *bool) *SystemUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SystemUpdateOne) SetName(v string) *SystemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableName(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SystemUpdateOne) SetCode(v string) *SystemUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableCode(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *SystemUpdateOne) SetSiteID(v string) *SystemUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableSiteID(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *SystemUpdateOne) ClearSiteID() *SystemUpdateOne {
	_u.mutation.ClearSiteID()
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *SystemUpdateOne) SetDepartmentID(v string) *SystemUpdateOne {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableDepartmentID(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *SystemUpdateOne) ClearDepartmentID() *SystemUpdateOne {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetParentSystemID sets the "parent_system_id" field.
func (_u *SystemUpdateOne) SetParentSystemID(v string) *SystemUpdateOne {
	_u.mutation.SetParentSystemID(v)
	return _u
}

// SetNillableParentSystemID sets the "parent_system_id" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableParentSystemID(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetParentSystemID(*v)
	}
	return _u
}

// ClearParentSystemID clears the value of the "parent_system_id" field.
func (_u *SystemUpdateOne) ClearParentSystemID() *SystemUpdateOne {
	_u.mutation.ClearParentSystemID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SystemUpdateOne) SetCreatedBy(v string) *SystemUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SystemUpdateOne) SetNillableCreatedBy(v *string) *SystemUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the SystemMutation object of the builder.
func (_u *SystemUpdateOne) Mutation() *SystemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SystemUpdate builder.
func (_u *SystemUpdateOne) Where(ps ...predicate.System) *SystemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SystemUpdateOne) Select(field string, fields ...string) *SystemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated System entity.
func (_u *SystemUpdateOne) Save(ctx context.Context) (*System, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemUpdateOne) SaveX(ctx context.Context) *System {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SystemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SystemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := system.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SystemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := system.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "System.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := system.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "System.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := system.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "System.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SystemUpdateOne) sqlSave(ctx context.Context) (_node *System, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(system.Table, system.Columns, sqlgraph.NewFieldSpec(system.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "System.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, system.FieldID)
		for _, f := range fields {
			if !system.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != system.FieldID {
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
		_spec.SetField(system.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(system.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(system.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(system.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedBy(); ok {
		_spec.SetField(system.FieldDeletedBy, field.TypeString, value)
	}
	if _u.mutation.DeletedByCleared() {
		_spec.ClearField(system.FieldDeletedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(system.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(system.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(system.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(system.FieldSiteID, field.TypeString, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(system.FieldSiteID, field.TypeString)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(system.FieldDepartmentID, field.TypeString, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(system.FieldDepartmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSystemID(); ok {
		_spec.SetField(system.FieldParentSystemID, field.TypeString, value)
	}
	if _u.mutation.ParentSystemIDCleared() {
		_spec.ClearField(system.FieldParentSystemID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(system.FieldCreatedBy, field.TypeString, value)
	}
	_node = &System{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{system.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
