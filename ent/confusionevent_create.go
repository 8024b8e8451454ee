// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/confusionevent"
)

// ConfusionEventCreate is the builder for creating a ConfusionEvent entity.
type ConfusionEventCreate struct {
	config
	mutation *ConfusionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ConfusionEventCreate) SetSequence(v int64) *ConfusionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ConfusionEventCreate) SetTimestamp(v time.Time) *ConfusionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableTimestamp(v *time.Time) *ConfusionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConfusionEventCreate) SetSessionID(v string) *ConfusionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *ConfusionEventCreate) SetStudentID(v string) *ConfusionEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableStudentID(v *string) *ConfusionEventCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ConfusionEventCreate) SetSource(v string) *ConfusionEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ConfusionEventCreate) SetReason(v string) *ConfusionEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableReason(v *string) *ConfusionEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ConfusionEventCreate) SetSeverity(v float64) *ConfusionEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableSeverity(v *float64) *ConfusionEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStepIDHint sets the "step_id_hint" field.
func (_c *ConfusionEventCreate) SetStepIDHint(v string) *ConfusionEventCreate {
	_c.mutation.SetStepIDHint(v)
	return _c
}

// SetNillableStepIDHint sets the "step_id_hint" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableStepIDHint(v *string) *ConfusionEventCreate {
	if v != nil {
		_c.SetStepIDHint(*v)
	}
	return _c
}

// SetResolvedStepID sets the "resolved_step_id" field.
func (_c *ConfusionEventCreate) SetResolvedStepID(v string) *ConfusionEventCreate {
	_c.mutation.SetResolvedStepID(v)
	return _c
}

// SetNillableResolvedStepID sets the "resolved_step_id" field if the given value is not nil.
func (_c *ConfusionEventCreate) SetNillableResolvedStepID(v *string) *ConfusionEventCreate {
	if v != nil {
		_c.SetResolvedStepID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *ConfusionEventCreate) SetAction(v string) *ConfusionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// Mutation returns the ConfusionEventMutation object of the builder.
func (_c *ConfusionEventCreate) Mutation() *ConfusionEventMutation {
	return _c.mutation
}

// Save creates the ConfusionEvent in the database.
func (_c *ConfusionEventCreate) Save(ctx context.Context) (*ConfusionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfusionEventCreate) SaveX(ctx context.Context) *ConfusionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfusionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfusionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfusionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := confusionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		v := confusionevent.DefaultStudentID
		_c.mutation.SetStudentID(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := confusionevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := confusionevent.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.StepIDHint(); !ok {
		v := confusionevent.DefaultStepIDHint
		_c.mutation.SetStepIDHint(v)
	}
	if _, ok := _c.mutation.ResolvedStepID(); !ok {
		v := confusionevent.DefaultResolvedStepID
		_c.mutation.SetResolvedStepID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfusionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ConfusionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ConfusionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConfusionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ConfusionEvent.student_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ConfusionEvent.source"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ConfusionEvent.reason"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ConfusionEvent.severity"`)}
	}
	if _, ok := _c.mutation.StepIDHint(); !ok {
		return &ValidationError{Name: "step_id_hint", err: errors.New(`ent: missing required field "ConfusionEvent.step_id_hint"`)}
	}
	if _, ok := _c.mutation.ResolvedStepID(); !ok {
		return &ValidationError{Name: "resolved_step_id", err: errors.New(`ent: missing required field "ConfusionEvent.resolved_step_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ConfusionEvent.action"`)}
	}
	return nil
}

func (_c *ConfusionEventCreate) sqlSave(ctx context.Context) (*ConfusionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfusionEventCreate) createSpec() (*ConfusionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfusionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(confusionevent.Table, sqlgraph.NewFieldSpec(confusionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(confusionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(confusionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(confusionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(confusionevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(confusionevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(confusionevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(confusionevent.FieldSeverity, field.TypeFloat64, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.StepIDHint(); ok {
		_spec.SetField(confusionevent.FieldStepIDHint, field.TypeString, value)
		_node.StepIDHint = value
	}
	if value, ok := _c.mutation.ResolvedStepID(); ok {
		_spec.SetField(confusionevent.FieldResolvedStepID, field.TypeString, value)
		_node.ResolvedStepID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(confusionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	return _node, _spec
}

// ConfusionEventCreateBulk is the builder for creating many ConfusionEvent entities in bulk.
type ConfusionEventCreateBulk struct {
	config
	err      error
	builders []*ConfusionEventCreate
}

// Save creates the ConfusionEvent entities in the database.
func (_c *ConfusionEventCreateBulk) Save(ctx context.Context) ([]*ConfusionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfusionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfusionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ConfusionEventCreateBulk) SaveX(ctx context.Context) []*ConfusionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfusionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfusionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
