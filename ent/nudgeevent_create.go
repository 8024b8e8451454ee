// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/nudgeevent"
)

// NudgeEventCreate is the builder for creating a NudgeEvent entity.
type NudgeEventCreate struct {
	config
	mutation *NudgeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *NudgeEventCreate) SetSequence(v int64) *NudgeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *NudgeEventCreate) SetTimestamp(v time.Time) *NudgeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableTimestamp(v *time.Time) *NudgeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *NudgeEventCreate) SetSessionID(v string) *NudgeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *NudgeEventCreate) SetStudentID(v string) *NudgeEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableStudentID(v *string) *NudgeEventCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *NudgeEventCreate) SetOfferID(v string) *NudgeEventCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *NudgeEventCreate) SetStepID(v string) *NudgeEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableStepID(v *string) *NudgeEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *NudgeEventCreate) SetSource(v string) *NudgeEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableSource(v *string) *NudgeEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *NudgeEventCreate) SetReason(v string) *NudgeEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableReason(v *string) *NudgeEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *NudgeEventCreate) SetSeverity(v float64) *NudgeEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *NudgeEventCreate) SetNillableSeverity(v *float64) *NudgeEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *NudgeEventCreate) SetAction(v string) *NudgeEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// Mutation returns the NudgeEventMutation object of the builder.
func (_c *NudgeEventCreate) Mutation() *NudgeEventMutation {
	return _c.mutation
}

// Save creates the NudgeEvent in the database.
func (_c *NudgeEventCreate) Save(ctx context.Context) (*NudgeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NudgeEventCreate) SaveX(ctx context.Context) *NudgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NudgeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NudgeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NudgeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := nudgeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		v := nudgeevent.DefaultStudentID
		_c.mutation.SetStudentID(v)
	}
	if _, ok := _c.mutation.StepID(); !ok {
		v := nudgeevent.DefaultStepID
		_c.mutation.SetStepID(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := nudgeevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := nudgeevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := nudgeevent.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NudgeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "NudgeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "NudgeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "NudgeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "NudgeEvent.student_id"`)}
	}
	if _, ok := _c.mutation.OfferID(); !ok {
		return &ValidationError{Name: "offer_id", err: errors.New(`ent: missing required field "NudgeEvent.offer_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "NudgeEvent.step_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "NudgeEvent.source"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "NudgeEvent.reason"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "NudgeEvent.severity"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "NudgeEvent.action"`)}
	}
	return nil
}

func (_c *NudgeEventCreate) sqlSave(ctx context.Context) (*NudgeEvent, error) {
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

func (_c *NudgeEventCreate) createSpec() (*NudgeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &NudgeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nudgeevent.Table, sqlgraph.NewFieldSpec(nudgeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(nudgeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(nudgeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(nudgeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(nudgeevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.OfferID(); ok {
		_spec.SetField(nudgeevent.FieldOfferID, field.TypeString, value)
		_node.OfferID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(nudgeevent.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(nudgeevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(nudgeevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(nudgeevent.FieldSeverity, field.TypeFloat64, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(nudgeevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	return _node, _spec
}

// NudgeEventCreateBulk is the builder for creating many NudgeEvent entities in bulk.
type NudgeEventCreateBulk struct {
	config
	err      error
	builders []*NudgeEventCreate
}

// Save creates the NudgeEvent entities in the database.
func (_c *NudgeEventCreateBulk) Save(ctx context.Context) ([]*NudgeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NudgeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NudgeEventMutation)
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
func (_c *NudgeEventCreateBulk) SaveX(ctx context.Context) []*NudgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NudgeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NudgeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
