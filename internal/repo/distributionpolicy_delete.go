// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/internal/repo/predicate"
)

// DistributionPolicyDelete is the builder for deleting a DistributionPolicy entity.
type DistributionPolicyDelete struct {
	config
	hooks    []Hook
	mutation *DistributionPolicyMutation
}

// Where appends a list predicates to the DistributionPolicyDelete builder.
func (_d *DistributionPolicyDelete) Where(ps ...predicate.DistributionPolicy) *DistributionPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DistributionPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributionPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DistributionPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(distributionpolicy.Table, sqlgraph.NewFieldSpec(distributionpolicy.FieldID, field.TypeUUID))
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

// DistributionPolicyDeleteOne is the builder for deleting a single DistributionPolicy entity.
type DistributionPolicyDeleteOne struct {
	_d *DistributionPolicyDelete
}

// Where appends a list predicates to the DistributionPolicyDelete builder.
func (_d *DistributionPolicyDeleteOne) Where(ps ...predicate.DistributionPolicy) *DistributionPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DistributionPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{distributionpolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributionPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
