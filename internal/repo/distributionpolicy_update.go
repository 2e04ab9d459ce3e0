// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/internal/repo/predicate"
)

// DistributionPolicyUpdate is the builder for updating DistributionPolicy entities.
type DistributionPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *DistributionPolicyMutation
}

// Where appends a list predicates to the DistributionPolicyUpdate builder.
func (_u *DistributionPolicyUpdate) Where(ps ...predicate.DistributionPolicy) *DistributionPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionPolicyUpdate) SetUpdatedAt(v time.Time) *DistributionPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DistributionPolicyUpdate) SetName(v string) *DistributionPolicyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableName(v *string) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *DistributionPolicyUpdate) SetMode(v distributionpolicy.Mode) *DistributionPolicyUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableMode(v *distributionpolicy.Mode) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAdminShare sets the "admin_share" field.
func (_u *DistributionPolicyUpdate) SetAdminShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.ResetAdminShare()
	_u.mutation.SetAdminShare(v)
	return _u
}

// SetNillableAdminShare sets the "admin_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableAdminShare(v *float64) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetAdminShare(*v)
	}
	return _u
}

// AddAdminShare adds value to the "admin_share" field.
func (_u *DistributionPolicyUpdate) AddAdminShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.AddAdminShare(v)
	return _u
}

// ClearAdminShare clears the value of the "admin_share" field.
func (_u *DistributionPolicyUpdate) ClearAdminShare() *DistributionPolicyUpdate {
	_u.mutation.ClearAdminShare()
	return _u
}

// SetTherapistShare sets the "therapist_share" field.
func (_u *DistributionPolicyUpdate) SetTherapistShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.ResetTherapistShare()
	_u.mutation.SetTherapistShare(v)
	return _u
}

// SetNillableTherapistShare sets the "therapist_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableTherapistShare(v *float64) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetTherapistShare(*v)
	}
	return _u
}

// AddTherapistShare adds value to the "therapist_share" field.
func (_u *DistributionPolicyUpdate) AddTherapistShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.AddTherapistShare(v)
	return _u
}

// ClearTherapistShare clears the value of the "therapist_share" field.
func (_u *DistributionPolicyUpdate) ClearTherapistShare() *DistributionPolicyUpdate {
	_u.mutation.ClearTherapistShare()
	return _u
}

// SetDoctorShare sets the "doctor_share" field.
func (_u *DistributionPolicyUpdate) SetDoctorShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.ResetDoctorShare()
	_u.mutation.SetDoctorShare(v)
	return _u
}

// SetNillableDoctorShare sets the "doctor_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableDoctorShare(v *float64) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetDoctorShare(*v)
	}
	return _u
}

// AddDoctorShare adds value to the "doctor_share" field.
func (_u *DistributionPolicyUpdate) AddDoctorShare(v float64) *DistributionPolicyUpdate {
	_u.mutation.AddDoctorShare(v)
	return _u
}

// ClearDoctorShare clears the value of the "doctor_share" field.
func (_u *DistributionPolicyUpdate) ClearDoctorShare() *DistributionPolicyUpdate {
	_u.mutation.ClearDoctorShare()
	return _u
}

// SetAutoBalanceRole sets the "auto_balance_role" field.
func (_u *DistributionPolicyUpdate) SetAutoBalanceRole(v distributionpolicy.AutoBalanceRole) *DistributionPolicyUpdate {
	_u.mutation.SetAutoBalanceRole(v)
	return _u
}

// SetNillableAutoBalanceRole sets the "auto_balance_role" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableAutoBalanceRole(v *distributionpolicy.AutoBalanceRole) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetAutoBalanceRole(*v)
	}
	return _u
}

// ClearAutoBalanceRole clears the value of the "auto_balance_role" field.
func (_u *DistributionPolicyUpdate) ClearAutoBalanceRole() *DistributionPolicyUpdate {
	_u.mutation.ClearAutoBalanceRole()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *DistributionPolicyUpdate) SetIsDefault(v bool) *DistributionPolicyUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableIsDefault(v *bool) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DistributionPolicyUpdate) SetIsActive(v bool) *DistributionPolicyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DistributionPolicyUpdate) SetNillableIsActive(v *bool) *DistributionPolicyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DistributionPolicyMutation object of the builder.
func (_u *DistributionPolicyUpdate) Mutation() *DistributionPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributionPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributionPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distributionpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionPolicyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := distributionpolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := distributionpolicy.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AutoBalanceRole(); ok {
		if err := distributionpolicy.AutoBalanceRoleValidator(v); err != nil {
			return &ValidationError{Name: "auto_balance_role", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.auto_balance_role": %w`, err)}
		}
	}
	return nil
}

func (_u *DistributionPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributionpolicy.Table, distributionpolicy.Columns, sqlgraph.NewFieldSpec(distributionpolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(distributionpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(distributionpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(distributionpolicy.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminShare(); ok {
		_spec.SetField(distributionpolicy.FieldAdminShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminShare(); ok {
		_spec.AddField(distributionpolicy.FieldAdminShare, field.TypeFloat64, value)
	}
	if _u.mutation.AdminShareCleared() {
		_spec.ClearField(distributionpolicy.FieldAdminShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TherapistShare(); ok {
		_spec.SetField(distributionpolicy.FieldTherapistShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTherapistShare(); ok {
		_spec.AddField(distributionpolicy.FieldTherapistShare, field.TypeFloat64, value)
	}
	if _u.mutation.TherapistShareCleared() {
		_spec.ClearField(distributionpolicy.FieldTherapistShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DoctorShare(); ok {
		_spec.SetField(distributionpolicy.FieldDoctorShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDoctorShare(); ok {
		_spec.AddField(distributionpolicy.FieldDoctorShare, field.TypeFloat64, value)
	}
	if _u.mutation.DoctorShareCleared() {
		_spec.ClearField(distributionpolicy.FieldDoctorShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AutoBalanceRole(); ok {
		_spec.SetField(distributionpolicy.FieldAutoBalanceRole, field.TypeEnum, value)
	}
	if _u.mutation.AutoBalanceRoleCleared() {
		_spec.ClearField(distributionpolicy.FieldAutoBalanceRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(distributionpolicy.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(distributionpolicy.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributionpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributionPolicyUpdateOne is the builder for updating a single DistributionPolicy entity.
type DistributionPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributionPolicyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionPolicyUpdateOne) SetUpdatedAt(v time.Time) *DistributionPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DistributionPolicyUpdateOne) SetName(v string) *DistributionPolicyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableName(v *string) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *DistributionPolicyUpdateOne) SetMode(v distributionpolicy.Mode) *DistributionPolicyUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableMode(v *distributionpolicy.Mode) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAdminShare sets the "admin_share" field.
func (_u *DistributionPolicyUpdateOne) SetAdminShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.ResetAdminShare()
	_u.mutation.SetAdminShare(v)
	return _u
}

// SetNillableAdminShare sets the "admin_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableAdminShare(v *float64) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetAdminShare(*v)
	}
	return _u
}

// AddAdminShare adds value to the "admin_share" field.
func (_u *DistributionPolicyUpdateOne) AddAdminShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.AddAdminShare(v)
	return _u
}

// ClearAdminShare clears the value of the "admin_share" field.
func (_u *DistributionPolicyUpdateOne) ClearAdminShare() *DistributionPolicyUpdateOne {
	_u.mutation.ClearAdminShare()
	return _u
}

// SetTherapistShare sets the "therapist_share" field.
func (_u *DistributionPolicyUpdateOne) SetTherapistShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.ResetTherapistShare()
	_u.mutation.SetTherapistShare(v)
	return _u
}

// SetNillableTherapistShare sets the "therapist_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableTherapistShare(v *float64) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetTherapistShare(*v)
	}
	return _u
}

// AddTherapistShare adds value to the "therapist_share" field.
func (_u *DistributionPolicyUpdateOne) AddTherapistShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.AddTherapistShare(v)
	return _u
}

// ClearTherapistShare clears the value of the "therapist_share" field.
func (_u *DistributionPolicyUpdateOne) ClearTherapistShare() *DistributionPolicyUpdateOne {
	_u.mutation.ClearTherapistShare()
	return _u
}

// SetDoctorShare sets the "doctor_share" field.
func (_u *DistributionPolicyUpdateOne) SetDoctorShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.ResetDoctorShare()
	_u.mutation.SetDoctorShare(v)
	return _u
}

// SetNillableDoctorShare sets the "doctor_share" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableDoctorShare(v *float64) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetDoctorShare(*v)
	}
	return _u
}

// AddDoctorShare adds value to the "doctor_share" field.
func (_u *DistributionPolicyUpdateOne) AddDoctorShare(v float64) *DistributionPolicyUpdateOne {
	_u.mutation.AddDoctorShare(v)
	return _u
}

// ClearDoctorShare clears the value of the "doctor_share" field.
func (_u *DistributionPolicyUpdateOne) ClearDoctorShare() *DistributionPolicyUpdateOne {
	_u.mutation.ClearDoctorShare()
	return _u
}

// SetAutoBalanceRole sets the "auto_balance_role" field.
func (_u *DistributionPolicyUpdateOne) SetAutoBalanceRole(v distributionpolicy.AutoBalanceRole) *DistributionPolicyUpdateOne {
	_u.mutation.SetAutoBalanceRole(v)
	return _u
}

// SetNillableAutoBalanceRole sets the "auto_balance_role" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableAutoBalanceRole(v *distributionpolicy.AutoBalanceRole) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetAutoBalanceRole(*v)
	}
	return _u
}

// ClearAutoBalanceRole clears the value of the "auto_balance_role" field.
func (_u *DistributionPolicyUpdateOne) ClearAutoBalanceRole() *DistributionPolicyUpdateOne {
	_u.mutation.ClearAutoBalanceRole()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *DistributionPolicyUpdateOne) SetIsDefault(v bool) *DistributionPolicyUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableIsDefault(v *bool) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DistributionPolicyUpdateOne) SetIsActive(v bool) *DistributionPolicyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DistributionPolicyUpdateOne) SetNillableIsActive(v *bool) *DistributionPolicyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DistributionPolicyMutation object of the builder.
func (_u *DistributionPolicyUpdateOne) Mutation() *DistributionPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the DistributionPolicyUpdate builder.
func (_u *DistributionPolicyUpdateOne) Where(ps ...predicate.DistributionPolicy) *DistributionPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributionPolicyUpdateOne) Select(field string, fields ...string) *DistributionPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DistributionPolicy entity.
func (_u *DistributionPolicyUpdateOne) Save(ctx context.Context) (*DistributionPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionPolicyUpdateOne) SaveX(ctx context.Context) *DistributionPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributionPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distributionpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := distributionpolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := distributionpolicy.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AutoBalanceRole(); ok {
		if err := distributionpolicy.AutoBalanceRoleValidator(v); err != nil {
			return &ValidationError{Name: "auto_balance_role", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.auto_balance_role": %w`, err)}
		}
	}
	return nil
}

func (_u *DistributionPolicyUpdateOne) sqlSave(ctx context.Context) (_node *DistributionPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributionpolicy.Table, distributionpolicy.Columns, sqlgraph.NewFieldSpec(distributionpolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DistributionPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributionpolicy.FieldID)
		for _, f := range fields {
			if !distributionpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != distributionpolicy.FieldID {
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
		_spec.SetField(distributionpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(distributionpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(distributionpolicy.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminShare(); ok {
		_spec.SetField(distributionpolicy.FieldAdminShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdminShare(); ok {
		_spec.AddField(distributionpolicy.FieldAdminShare, field.TypeFloat64, value)
	}
	if _u.mutation.AdminShareCleared() {
		_spec.ClearField(distributionpolicy.FieldAdminShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TherapistShare(); ok {
		_spec.SetField(distributionpolicy.FieldTherapistShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTherapistShare(); ok {
		_spec.AddField(distributionpolicy.FieldTherapistShare, field.TypeFloat64, value)
	}
	if _u.mutation.TherapistShareCleared() {
		_spec.ClearField(distributionpolicy.FieldTherapistShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DoctorShare(); ok {
		_spec.SetField(distributionpolicy.FieldDoctorShare, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDoctorShare(); ok {
		_spec.AddField(distributionpolicy.FieldDoctorShare, field.TypeFloat64, value)
	}
	if _u.mutation.DoctorShareCleared() {
		_spec.ClearField(distributionpolicy.FieldDoctorShare, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AutoBalanceRole(); ok {
		_spec.SetField(distributionpolicy.FieldAutoBalanceRole, field.TypeEnum, value)
	}
	if _u.mutation.AutoBalanceRoleCleared() {
		_spec.ClearField(distributionpolicy.FieldAutoBalanceRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(distributionpolicy.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(distributionpolicy.FieldIsActive, field.TypeBool, value)
	}
	_node = &DistributionPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributionpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
