// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
)

// DistributionPolicyCreate is the builder for creating a DistributionPolicy entity.
type DistributionPolicyCreate struct {
	config
	mutation *DistributionPolicyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DistributionPolicyCreate) SetCreatedAt(v time.Time) *DistributionPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableCreatedAt(v *time.Time) *DistributionPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DistributionPolicyCreate) SetUpdatedAt(v time.Time) *DistributionPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableUpdatedAt(v *time.Time) *DistributionPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DistributionPolicyCreate) SetName(v string) *DistributionPolicyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *DistributionPolicyCreate) SetMode(v distributionpolicy.Mode) *DistributionPolicyCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableMode(v *distributionpolicy.Mode) *DistributionPolicyCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetAdminShare sets the "admin_share" field.
func (_c *DistributionPolicyCreate) SetAdminShare(v float64) *DistributionPolicyCreate {
	_c.mutation.SetAdminShare(v)
	return _c
}

// SetNillableAdminShare sets the "admin_share" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableAdminShare(v *float64) *DistributionPolicyCreate {
	if v != nil {
		_c.SetAdminShare(*v)
	}
	return _c
}

// SetTherapistShare sets the "therapist_share" field.
func (_c *DistributionPolicyCreate) SetTherapistShare(v float64) *DistributionPolicyCreate {
	_c.mutation.SetTherapistShare(v)
	return _c
}

// SetNillableTherapistShare sets the "therapist_share" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableTherapistShare(v *float64) *DistributionPolicyCreate {
	if v != nil {
		_c.SetTherapistShare(*v)
	}
	return _c
}

// SetDoctorShare sets the "doctor_share" field.
func (_c *DistributionPolicyCreate) SetDoctorShare(v float64) *DistributionPolicyCreate {
	_c.mutation.SetDoctorShare(v)
	return _c
}

// SetNillableDoctorShare sets the "doctor_share" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableDoctorShare(v *float64) *DistributionPolicyCreate {
	if v != nil {
		_c.SetDoctorShare(*v)
	}
	return _c
}

// SetAutoBalanceRole sets the "auto_balance_role" field.
func (_c *DistributionPolicyCreate) SetAutoBalanceRole(v distributionpolicy.AutoBalanceRole) *DistributionPolicyCreate {
	_c.mutation.SetAutoBalanceRole(v)
	return _c
}

// SetNillableAutoBalanceRole sets the "auto_balance_role" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableAutoBalanceRole(v *distributionpolicy.AutoBalanceRole) *DistributionPolicyCreate {
	if v != nil {
		_c.SetAutoBalanceRole(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *DistributionPolicyCreate) SetIsDefault(v bool) *DistributionPolicyCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableIsDefault(v *bool) *DistributionPolicyCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DistributionPolicyCreate) SetIsActive(v bool) *DistributionPolicyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableIsActive(v *bool) *DistributionPolicyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DistributionPolicyCreate) SetID(v uuid.UUID) *DistributionPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributionPolicyCreate) SetNillableID(v *uuid.UUID) *DistributionPolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DistributionPolicyMutation object of the builder.
func (_c *DistributionPolicyCreate) Mutation() *DistributionPolicyMutation {
	return _c.mutation
}

// Save creates the DistributionPolicy in the database.
func (_c *DistributionPolicyCreate) Save(ctx context.Context) (*DistributionPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributionPolicyCreate) SaveX(ctx context.Context) *DistributionPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributionPolicyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := distributionpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := distributionpolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := distributionpolicy.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := distributionpolicy.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := distributionpolicy.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := distributionpolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributionPolicyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DistributionPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DistributionPolicy.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "DistributionPolicy.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := distributionpolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`repo: missing required field "DistributionPolicy.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := distributionpolicy.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.mode": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AutoBalanceRole(); ok {
		if err := distributionpolicy.AutoBalanceRoleValidator(v); err != nil {
			return &ValidationError{Name: "auto_balance_role", err: fmt.Errorf(`repo: validator failed for field "DistributionPolicy.auto_balance_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`repo: missing required field "DistributionPolicy.is_default"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "DistributionPolicy.is_active"`)}
	}
	return nil
}

func (_c *DistributionPolicyCreate) sqlSave(ctx context.Context) (*DistributionPolicy, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DistributionPolicyCreate) createSpec() (*DistributionPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &DistributionPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributionpolicy.Table, sqlgraph.NewFieldSpec(distributionpolicy.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(distributionpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(distributionpolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(distributionpolicy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(distributionpolicy.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.AdminShare(); ok {
		_spec.SetField(distributionpolicy.FieldAdminShare, field.TypeFloat64, value)
		_node.AdminShare = &value
	}
	if value, ok := _c.mutation.TherapistShare(); ok {
		_spec.SetField(distributionpolicy.FieldTherapistShare, field.TypeFloat64, value)
		_node.TherapistShare = &value
	}
	if value, ok := _c.mutation.DoctorShare(); ok {
		_spec.SetField(distributionpolicy.FieldDoctorShare, field.TypeFloat64, value)
		_node.DoctorShare = &value
	}
	if value, ok := _c.mutation.AutoBalanceRole(); ok {
		_spec.SetField(distributionpolicy.FieldAutoBalanceRole, field.TypeEnum, value)
		_node.AutoBalanceRole = &value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(distributionpolicy.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(distributionpolicy.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// DistributionPolicyCreateBulk is the builder for creating many DistributionPolicy entities in bulk.
type DistributionPolicyCreateBulk struct {
	config
	err      error
	builders []*DistributionPolicyCreate
}

// Save creates the DistributionPolicy entities in the database.
func (_c *DistributionPolicyCreateBulk) Save(ctx context.Context) ([]*DistributionPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DistributionPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributionPolicyMutation)
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
func (_c *DistributionPolicyCreateBulk) SaveX(ctx context.Context) []*DistributionPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
