// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/confusionevent"
	"github.com/stepwiselabs/stepwise/ent/predicate"
)

// ConfusionEventUpdate is the builder for updating ConfusionEvent entities.
type ConfusionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ConfusionEventMutation
}

// Where appends a list predicates to the ConfusionEventUpdate builder.
func (_u *ConfusionEventUpdate) Where(ps ...predicate.ConfusionEvent) *ConfusionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ConfusionEventUpdate) SetSessionID(v string) *ConfusionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableSessionID(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ConfusionEventUpdate) SetStudentID(v string) *ConfusionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableStudentID(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConfusionEventUpdate) SetSource(v string) *ConfusionEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableSource(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConfusionEventUpdate) SetReason(v string) *ConfusionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableReason(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ConfusionEventUpdate) SetSeverity(v float64) *ConfusionEventUpdate {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableSeverity(v *float64) *ConfusionEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *ConfusionEventUpdate) AddSeverity(v float64) *ConfusionEventUpdate {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetStepIDHint sets the "step_id_hint" field.
func (_u *ConfusionEventUpdate) SetStepIDHint(v string) *ConfusionEventUpdate {
	_u.mutation.SetStepIDHint(v)
	return _u
}

// SetNillableStepIDHint sets the "step_id_hint" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableStepIDHint(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetStepIDHint(*v)
	}
	return _u
}

// SetResolvedStepID sets the "resolved_step_id" field.
func (_u *ConfusionEventUpdate) SetResolvedStepID(v string) *ConfusionEventUpdate {
	_u.mutation.SetResolvedStepID(v)
	return _u
}

// SetNillableResolvedStepID sets the "resolved_step_id" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableResolvedStepID(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetResolvedStepID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ConfusionEventUpdate) SetAction(v string) *ConfusionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ConfusionEventUpdate) SetNillableAction(v *string) *ConfusionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the ConfusionEventMutation object of the builder.
func (_u *ConfusionEventUpdate) Mutation() *ConfusionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfusionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfusionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfusionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfusionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConfusionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(confusionevent.Table, confusionevent.Columns, sqlgraph.NewFieldSpec(confusionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(confusionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(confusionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(confusionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(confusionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(confusionevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(confusionevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StepIDHint(); ok {
		_spec.SetField(confusionevent.FieldStepIDHint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedStepID(); ok {
		_spec.SetField(confusionevent.FieldResolvedStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(confusionevent.FieldAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfusionEventUpdateOne is the builder for updating a single ConfusionEvent entity.
type ConfusionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfusionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ConfusionEventUpdateOne) SetSessionID(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableSessionID(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ConfusionEventUpdateOne) SetStudentID(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableStudentID(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConfusionEventUpdateOne) SetSource(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableSource(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConfusionEventUpdateOne) SetReason(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableReason(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ConfusionEventUpdateOne) SetSeverity(v float64) *ConfusionEventUpdateOne {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableSeverity(v *float64) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *ConfusionEventUpdateOne) AddSeverity(v float64) *ConfusionEventUpdateOne {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetStepIDHint sets the "step_id_hint" field.
func (_u *ConfusionEventUpdateOne) SetStepIDHint(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetStepIDHint(v)
	return _u
}

// SetNillableStepIDHint sets the "step_id_hint" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableStepIDHint(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetStepIDHint(*v)
	}
	return _u
}

// SetResolvedStepID sets the "resolved_step_id" field.
func (_u *ConfusionEventUpdateOne) SetResolvedStepID(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetResolvedStepID(v)
	return _u
}

// SetNillableResolvedStepID sets the "resolved_step_id" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableResolvedStepID(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetResolvedStepID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ConfusionEventUpdateOne) SetAction(v string) *ConfusionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ConfusionEventUpdateOne) SetNillableAction(v *string) *ConfusionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the ConfusionEventMutation object of the builder.
func (_u *ConfusionEventUpdateOne) Mutation() *ConfusionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfusionEventUpdate builder.
func (_u *ConfusionEventUpdateOne) Where(ps ...predicate.ConfusionEvent) *ConfusionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfusionEventUpdateOne) Select(field string, fields ...string) *ConfusionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfusionEvent entity.
func (_u *ConfusionEventUpdateOne) Save(ctx context.Context) (*ConfusionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfusionEventUpdateOne) SaveX(ctx context.Context) *ConfusionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfusionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfusionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConfusionEventUpdateOne) sqlSave(ctx context.Context) (_node *ConfusionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(confusionevent.Table, confusionevent.Columns, sqlgraph.NewFieldSpec(confusionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfusionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, confusionevent.FieldID)
		for _, f := range fields {
			if !confusionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != confusionevent.FieldID {
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
		_spec.SetField(confusionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(confusionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(confusionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(confusionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(confusionevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(confusionevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StepIDHint(); ok {
		_spec.SetField(confusionevent.FieldStepIDHint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedStepID(); ok {
		_spec.SetField(confusionevent.FieldResolvedStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(confusionevent.FieldAction, field.TypeString, value)
	}
	_node = &ConfusionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
