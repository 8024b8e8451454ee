// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/confusionevent"
	"github.com/stepwiselabs/stepwise/ent/predicate"
)

// ConfusionEventDelete is the builder for deleting a ConfusionEvent entity.
type ConfusionEventDelete struct {
	config
	hooks    []Hook
	mutation *ConfusionEventMutation
}

// Where appends a list predicates to the ConfusionEventDelete builder.
func (_d *ConfusionEventDelete) Where(ps ...predicate.ConfusionEvent) *ConfusionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConfusionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfusionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConfusionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(confusionevent.Table, sqlgraph.NewFieldSpec(confusionevent.FieldID, field.TypeInt))
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

// ConfusionEventDeleteOne is the builder for deleting a single ConfusionEvent entity.
type ConfusionEventDeleteOne struct {
	_d *ConfusionEventDelete
}

// Where appends a list predicates to the ConfusionEventDelete builder.
func (_d *ConfusionEventDeleteOne) Where(ps ...predicate.ConfusionEvent) *ConfusionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConfusionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{confusionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfusionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
