// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquafarm.io/steward/ent/equipment"
	"aquafarm.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EquipmentUpdate is the builder for updating Equipment entities.
type EquipmentUpdate struct {
	config
	hooks    []Hook
	mutation *EquipmentMutation
}

// Where appends a list predicates to the EquipmentUpdate builder.
func (_u *EquipmentUpdate) Where(ps ...predicate.Equipment) *EquipmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EquipmentUpdate) SetUpdatedAt(v time.Time) *EquipmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EquipmentUpdate) SetIsDeleted(v bool) *EquipmentUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableIsDeleted(v *bool) *EquipmentUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EquipmentUpdate) SetDeletedAt(v time.Time) *EquipmentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableDeletedAt(v *time.Time) *EquipmentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EquipmentUpdate) ClearDeletedAt() *EquipmentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletedBy sets the "deleted_by" field.
func (_u *EquipmentUpdate) SetDeletedBy(v string) *EquipmentUpdate {
	_u.mutation.SetDeletedBy(v)
	return _u
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableDeletedBy(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetDeletedBy(*v)
	}
	return _u
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (_u *EquipmentUpdate) ClearDeletedBy() *EquipmentUpdate {
	_u.mutation.ClearDeletedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EquipmentUpdate) SetIsActive(v bool) *EquipmentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableIsActive(v *bool) *EquipmentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EquipmentUpdate) SetName(v string) *EquipmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableName(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *EquipmentUpdate) SetCode(v string) *EquipmentUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableCode(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *EquipmentUpdate) SetDepartmentID(v string) *EquipmentUpdate {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableDepartmentID(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *EquipmentUpdate) ClearDepartmentID() *EquipmentUpdate {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_u *EquipmentUpdate) SetParentEquipmentID(v string) *EquipmentUpdate {
	_u.mutation.SetParentEquipmentID(v)
	return _u
}

// SetNillableParentEquipmentID sets the "parent_equipment_id" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableParentEquipmentID(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetParentEquipmentID(*v)
	}
	return _u
}

// ClearParentEquipmentID clears the value of the "parent_equipment_id" field.
func (_u *EquipmentUpdate) ClearParentEquipmentID() *EquipmentUpdate {
	_u.mutation.ClearParentEquipmentID()
	return _u
}

// SetSubEquipmentCount sets the "sub_equipment_count" field.
func (_u *EquipmentUpdate) SetSubEquipmentCount(v int) *EquipmentUpdate {
	_u.mutation.ResetSubEquipmentCount()
	_u.mutation.SetSubEquipmentCount(v)
	return _u
}

// SetNillableSubEquipmentCount sets the "sub_equipment_count" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableSubEquipmentCount(v *int) *EquipmentUpdate {
	if v != nil {
		_u.SetSubEquipmentCount(*v)
	}
	return _u
}

// AddSubEquipmentCount adds value to the "sub_equipment_count" field.
func (_u *EquipmentUpdate) AddSubEquipmentCount(v int) *EquipmentUpdate {
	_u.mutation.AddSubEquipmentCount(v)
	return _u
}

// SetIsTank sets the "is_tank" field.
func (_u *EquipmentUpdate) SetIsTank(v bool) *EquipmentUpdate {
	_u.mutation.SetIsTank(v)
	return _u
}

// SetNillableIsTank sets the "is_tank" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableIsTank(v *bool) *EquipmentUpdate {
	if v != nil {
		_u.SetIsTank(*v)
	}
	return _u
}

// SetCurrentBiomass sets the "current_biomass" field.
func (_u *EquipmentUpdate) SetCurrentBiomass(v float64) *EquipmentUpdate {
	_u.mutation.ResetCurrentBiomass()
	_u.mutation.SetCurrentBiomass(v)
	return _u
}

// SetNillableCurrentBiomass sets the "current_biomass" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableCurrentBiomass(v *float64) *EquipmentUpdate {
	if v != nil {
		_u.SetCurrentBiomass(*v)
	}
	return _u
}

// AddCurrentBiomass adds value to the "current_biomass" field.
func (_u *EquipmentUpdate) AddCurrentBiomass(v float64) *EquipmentUpdate {
	_u.mutation.AddCurrentBiomass(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EquipmentUpdate) SetCreatedBy(v string) *EquipmentUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EquipmentUpdate) SetNillableCreatedBy(v *string) *EquipmentUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the EquipmentMutation object of the builder.
func (_u *EquipmentUpdate) Mutation() *EquipmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EquipmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EquipmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EquipmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EquipmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EquipmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := equipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EquipmentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := equipment.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Equipment.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubEquipmentCount(); ok {
		if err := equipment.SubEquipmentCountValidator(v); err != nil {
			return &ValidationError{Name: "sub_equipment_count", err: fmt.Errorf(`ent: validator failed for field "Equipment.sub_equipment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := equipment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Equipment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *EquipmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipment.Table, equipment.Columns, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(equipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(equipment.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(equipment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(equipment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedBy(); ok {
		_spec.SetField(equipment.FieldDeletedBy, field.TypeString, value)
	}
	if _u.mutation.DeletedByCleared() {
		_spec.ClearField(equipment.FieldDeletedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(equipment.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(equipment.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(equipment.FieldDepartmentID, field.TypeString, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(equipment.FieldDepartmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentEquipmentID(); ok {
		_spec.SetField(equipment.FieldParentEquipmentID, field.TypeString, value)
	}
	if _u.mutation.ParentEquipmentIDCleared() {
		_spec.ClearField(equipment.FieldParentEquipmentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubEquipmentCount(); ok {
		_spec.SetField(equipment.FieldSubEquipmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubEquipmentCount(); ok {
		_spec.AddField(equipment.FieldSubEquipmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTank(); ok {
		_spec.SetField(equipment.FieldIsTank, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentBiomass(); ok {
		_spec.SetField(equipment.FieldCurrentBiomass, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBiomass(); ok {
		_spec.AddField(equipment.FieldCurrentBiomass, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(equipment.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EquipmentUpdateOne is the builder for updating a single Equipment entity.
type EquipmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EquipmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EquipmentUpdateOne) SetUpdatedAt(v time.Time) *EquipmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EquipmentUpdateOne) SetIsDeleted(v bool) *EquipmentUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableIsDeleted(v *bool) *EquipmentUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EquipmentUpdateOne) SetDeletedAt(v time.Time) *EquipmentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableDeletedAt(v *time.Time) *EquipmentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EquipmentUpdateOne) ClearDeletedAt() *EquipmentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletedBy sets the "deleted_by" field.
func (_u *EquipmentUpdateOne) SetDeletedBy(v string) *EquipmentUpdateOne {
	_u.mutation.SetDeletedBy(v)
	return _u
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableDeletedBy(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetDeletedBy(*v)
	}
	return _u
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (_u *EquipmentUpdateOne) ClearDeletedBy() *EquipmentUpdateOne {
	_u.mutation.ClearDeletedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EquipmentUpdateOne) SetIsActive(v bool) *EquipmentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableIsActive(v *bool) *EquipmentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EquipmentUpdateOne) SetName(v string) *EquipmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableName(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *EquipmentUpdateOne) SetCode(v string) *EquipmentUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableCode(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *EquipmentUpdateOne) SetDepartmentID(v string) *EquipmentUpdateOne {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableDepartmentID(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *EquipmentUpdateOne) ClearDepartmentID() *EquipmentUpdateOne {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetParentEquipmentID sets the "parent_equipment_id" field.
func (_u *EquipmentUpdateOne) SetParentEquipmentID(v string) *EquipmentUpdateOne {
	_u.mutation.SetParentEquipmentID(v)
	return _u
}

// SetNillableParentEquipmentID sets the "parent_equipment_id" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableParentEquipmentID(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetParentEquipmentID(*v)
	}
	return _u
}

// ClearParentEquipmentID clears the value of the "parent_equipment_id" field.
func (_u *EquipmentUpdateOne) ClearParentEquipmentID() *EquipmentUpdateOne {
	_u.mutation.ClearParentEquipmentID()
	return _u
}

// SetSubEquipmentCount sets the "sub_equipment_count" field.
func (_u *EquipmentUpdateOne) SetSubEquipmentCount(v int) *EquipmentUpdateOne {
	_u.mutation.ResetSubEquipmentCount()
	_u.mutation.SetSubEquipmentCount(v)
	return _u
}

// SetNillableSubEquipmentCount sets the "sub_equipment_count" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableSubEquipmentCount(v *int) *EquipmentUpdateOne {
	if v != nil {
		_u.SetSubEquipmentCount(*v)
	}
	return _u
}

// AddSubEquipmentCount adds value to the "sub_equipment_count" field.
func (_u *EquipmentUpdateOne) AddSubEquipmentCount(v int) *EquipmentUpdateOne {
	_u.mutation.AddSubEquipmentCount(v)
	return _u
}

// SetIsTank sets the "is_tank" field.
func (_u *EquipmentUpdateOne) SetIsTank(v bool) *EquipmentUpdateOne {
	_u.mutation.SetIsTank(v)
	return _u
}

// SetNillableIsTank sets the "is_tank" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableIsTank(v *bool) *EquipmentUpdateOne {
	if v != nil {
		_u.SetIsTank(*v)
	}
	return _u
}

// SetCurrentBiomass sets the "current_biomass" field.
func (_u *EquipmentUpdateOne) SetCurrentBiomass(v float64) *EquipmentUpdateOne {
	_u.mutation.ResetCurrentBiomass()
	_u.mutation.SetCurrentBiomass(v)
	return _u
}

// SetNillableCurrentBiomass sets the "current_biomass" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableCurrentBiomass(v *float64) *EquipmentUpdateOne {
	if v != nil {
		_u.SetCurrentBiomass(*v)
	}
	return _u
}

// AddCurrentBiomass adds value to the "current_biomass" field.
func (_u *EquipmentUpdateOne) AddCurrentBiomass(v float64) *EquipmentUpdateOne {
	_u.mutation.AddCurrentBiomass(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EquipmentUpdateOne) SetCreatedBy(v string) *EquipmentUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EquipmentUpdateOne) SetNillableCreatedBy(v *string) *EquipmentUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the EquipmentMutation object of the builder.
func (_u *EquipmentUpdateOne) Mutation() *EquipmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EquipmentUpdate builder.
func (_u *EquipmentUpdateOne) Where(ps ...predicate.Equipment) *EquipmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EquipmentUpdateOne) Select(field string, fields ...string) *EquipmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Equipment entity.
func (_u *EquipmentUpdateOne) Save(ctx context.Context) (*Equipment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EquipmentUpdateOne) SaveX(ctx context.Context) *Equipment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EquipmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EquipmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EquipmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := equipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EquipmentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := equipment.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Equipment.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubEquipmentCount(); ok {
		if err := equipment.SubEquipmentCountValidator(v); err != nil {
			return &ValidationError{Name: "sub_equipment_count", err: fmt.Errorf(`ent: validator failed for field "Equipment.sub_equipment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := equipment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Equipment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *EquipmentUpdateOne) sqlSave(ctx context.Context) (_node *Equipment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipment.Table, equipment.Columns, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Equipment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, equipment.FieldID)
		for _, f := range fields {
			if !equipment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != equipment.FieldID {
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
		_spec.SetField(equipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(equipment.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(equipment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(equipment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedBy(); ok {
		_spec.SetField(equipment.FieldDeletedBy, field.TypeString, value)
	}
	if _u.mutation.DeletedByCleared() {
		_spec.ClearField(equipment.FieldDeletedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(equipment.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(equipment.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(equipment.FieldDepartmentID, field.TypeString, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(equipment.FieldDepartmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentEquipmentID(); ok {
		_spec.SetField(equipment.FieldParentEquipmentID, field.TypeString, value)
	}
	if _u.mutation.ParentEquipmentIDCleared() {
		_spec.ClearField(equipment.FieldParentEquipmentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubEquipmentCount(); ok {
		_spec.SetField(equipment.FieldSubEquipmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubEquipmentCount(); ok {
		_spec.AddField(equipment.FieldSubEquipmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTank(); ok {
		_spec.SetField(equipment.FieldIsTank, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentBiomass(); ok {
		_spec.SetField(equipment.FieldCurrentBiomass, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBiomass(); ok {
		_spec.AddField(equipment.FieldCurrentBiomass, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(equipment.FieldCreatedBy, field.TypeString, value)
	}
	_node = &Equipment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
