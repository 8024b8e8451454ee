// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/predicate"
	"github.com/stepwiselabs/stepwise/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdate) SetStudentID(v string) *SessionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStudentID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepsEmitted sets the "steps_emitted" field.
func (_u *SessionEventUpdate) SetStepsEmitted(v int) *SessionEventUpdate {
	_u.mutation.ResetStepsEmitted()
	_u.mutation.SetStepsEmitted(v)
	return _u
}

// SetNillableStepsEmitted sets the "steps_emitted" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStepsEmitted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetStepsEmitted(*v)
	}
	return _u
}

// AddStepsEmitted adds value to the "steps_emitted" field.
func (_u *SessionEventUpdate) AddStepsEmitted(v int) *SessionEventUpdate {
	_u.mutation.AddStepsEmitted(v)
	return _u
}

// SetInterruptions sets the "interruptions" field.
func (_u *SessionEventUpdate) SetInterruptions(v int) *SessionEventUpdate {
	_u.mutation.ResetInterruptions()
	_u.mutation.SetInterruptions(v)
	return _u
}

// SetNillableInterruptions sets the "interruptions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInterruptions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetInterruptions(*v)
	}
	return _u
}

// AddInterruptions adds value to the "interruptions" field.
func (_u *SessionEventUpdate) AddInterruptions(v int) *SessionEventUpdate {
	_u.mutation.AddInterruptions(v)
	return _u
}

// SetNudgesOffered sets the "nudges_offered" field.
func (_u *SessionEventUpdate) SetNudgesOffered(v int) *SessionEventUpdate {
	_u.mutation.ResetNudgesOffered()
	_u.mutation.SetNudgesOffered(v)
	return _u
}

// SetNillableNudgesOffered sets the "nudges_offered" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableNudgesOffered(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetNudgesOffered(*v)
	}
	return _u
}

// AddNudgesOffered adds value to the "nudges_offered" field.
func (_u *SessionEventUpdate) AddNudgesOffered(v int) *SessionEventUpdate {
	_u.mutation.AddNudgesOffered(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionEventUpdate) SetDurationMs(v int64) *SessionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationMs(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionEventUpdate) AddDurationMs(v int64) *SessionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsEmitted(); ok {
		_spec.SetField(sessionevent.FieldStepsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsEmitted(); ok {
		_spec.AddField(sessionevent.FieldStepsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interruptions(); ok {
		_spec.SetField(sessionevent.FieldInterruptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterruptions(); ok {
		_spec.AddField(sessionevent.FieldInterruptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NudgesOffered(); ok {
		_spec.SetField(sessionevent.FieldNudgesOffered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgesOffered(); ok {
		_spec.AddField(sessionevent.FieldNudgesOffered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdateOne) SetStudentID(v string) *SessionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStudentID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepsEmitted sets the "steps_emitted" field.
func (_u *SessionEventUpdateOne) SetStepsEmitted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetStepsEmitted()
	_u.mutation.SetStepsEmitted(v)
	return _u
}

// SetNillableStepsEmitted sets the "steps_emitted" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStepsEmitted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStepsEmitted(*v)
	}
	return _u
}

// AddStepsEmitted adds value to the "steps_emitted" field.
func (_u *SessionEventUpdateOne) AddStepsEmitted(v int) *SessionEventUpdateOne {
	_u.mutation.AddStepsEmitted(v)
	return _u
}

// SetInterruptions sets the "interruptions" field.
func (_u *SessionEventUpdateOne) SetInterruptions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetInterruptions()
	_u.mutation.SetInterruptions(v)
	return _u
}

// SetNillableInterruptions sets the "interruptions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInterruptions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInterruptions(*v)
	}
	return _u
}

// AddInterruptions adds value to the "interruptions" field.
func (_u *SessionEventUpdateOne) AddInterruptions(v int) *SessionEventUpdateOne {
	_u.mutation.AddInterruptions(v)
	return _u
}

// SetNudgesOffered sets the "nudges_offered" field.
func (_u *SessionEventUpdateOne) SetNudgesOffered(v int) *SessionEventUpdateOne {
	_u.mutation.ResetNudgesOffered()
	_u.mutation.SetNudgesOffered(v)
	return _u
}

// SetNillableNudgesOffered sets the "nudges_offered" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableNudgesOffered(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetNudgesOffered(*v)
	}
	return _u
}

// AddNudgesOffered adds value to the "nudges_offered" field.
func (_u *SessionEventUpdateOne) AddNudgesOffered(v int) *SessionEventUpdateOne {
	_u.mutation.AddNudgesOffered(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionEventUpdateOne) SetDurationMs(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationMs(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionEventUpdateOne) AddDurationMs(v int64) *SessionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsEmitted(); ok {
		_spec.SetField(sessionevent.FieldStepsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsEmitted(); ok {
		_spec.AddField(sessionevent.FieldStepsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interruptions(); ok {
		_spec.SetField(sessionevent.FieldInterruptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterruptions(); ok {
		_spec.AddField(sessionevent.FieldInterruptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NudgesOffered(); ok {
		_spec.SetField(sessionevent.FieldNudgesOffered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgesOffered(); ok {
		_spec.AddField(sessionevent.FieldNudgesOffered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
