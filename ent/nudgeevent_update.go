// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/nudgeevent"
	"github.com/stepwiselabs/stepwise/ent/predicate"
)

// NudgeEventUpdate is the builder for updating NudgeEvent entities.
type NudgeEventUpdate struct {
	config
	hooks    []Hook
	mutation *NudgeEventMutation
}

// Where appends a list predicates to the NudgeEventUpdate builder.
func (_u *NudgeEventUpdate) Where(ps ...predicate.NudgeEvent) *NudgeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *NudgeEventUpdate) SetSessionID(v string) *NudgeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableSessionID(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *NudgeEventUpdate) SetStudentID(v string) *NudgeEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableStudentID(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *NudgeEventUpdate) SetOfferID(v string) *NudgeEventUpdate {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableOfferID(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *NudgeEventUpdate) SetStepID(v string) *NudgeEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableStepID(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *NudgeEventUpdate) SetSource(v string) *NudgeEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableSource(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NudgeEventUpdate) SetReason(v string) *NudgeEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableReason(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *NudgeEventUpdate) SetSeverity(v float64) *NudgeEventUpdate {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableSeverity(v *float64) *NudgeEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *NudgeEventUpdate) AddSeverity(v float64) *NudgeEventUpdate {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *NudgeEventUpdate) SetAction(v string) *NudgeEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *NudgeEventUpdate) SetNillableAction(v *string) *NudgeEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the NudgeEventMutation object of the builder.
func (_u *NudgeEventUpdate) Mutation() *NudgeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NudgeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NudgeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NudgeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NudgeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NudgeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nudgeevent.Table, nudgeevent.Columns, sqlgraph.NewFieldSpec(nudgeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(nudgeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(nudgeevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(nudgeevent.FieldOfferID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(nudgeevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(nudgeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(nudgeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(nudgeevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(nudgeevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(nudgeevent.FieldAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nudgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NudgeEventUpdateOne is the builder for updating a single NudgeEvent entity.
type NudgeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NudgeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *NudgeEventUpdateOne) SetSessionID(v string) *NudgeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableSessionID(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *NudgeEventUpdateOne) SetStudentID(v string) *NudgeEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableStudentID(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *NudgeEventUpdateOne) SetOfferID(v string) *NudgeEventUpdateOne {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableOfferID(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *NudgeEventUpdateOne) SetStepID(v string) *NudgeEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableStepID(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *NudgeEventUpdateOne) SetSource(v string) *NudgeEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableSource(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NudgeEventUpdateOne) SetReason(v string) *NudgeEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableReason(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *NudgeEventUpdateOne) SetSeverity(v float64) *NudgeEventUpdateOne {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableSeverity(v *float64) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *NudgeEventUpdateOne) AddSeverity(v float64) *NudgeEventUpdateOne {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *NudgeEventUpdateOne) SetAction(v string) *NudgeEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *NudgeEventUpdateOne) SetNillableAction(v *string) *NudgeEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the NudgeEventMutation object of the builder.
func (_u *NudgeEventUpdateOne) Mutation() *NudgeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the NudgeEventUpdate builder.
func (_u *NudgeEventUpdateOne) Where(ps ...predicate.NudgeEvent) *NudgeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NudgeEventUpdateOne) Select(field string, fields ...string) *NudgeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NudgeEvent entity.
func (_u *NudgeEventUpdateOne) Save(ctx context.Context) (*NudgeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NudgeEventUpdateOne) SaveX(ctx context.Context) *NudgeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NudgeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NudgeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NudgeEventUpdateOne) sqlSave(ctx context.Context) (_node *NudgeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(nudgeevent.Table, nudgeevent.Columns, sqlgraph.NewFieldSpec(nudgeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NudgeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nudgeevent.FieldID)
		for _, f := range fields {
			if !nudgeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nudgeevent.FieldID {
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
		_spec.SetField(nudgeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(nudgeevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(nudgeevent.FieldOfferID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(nudgeevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(nudgeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(nudgeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(nudgeevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(nudgeevent.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(nudgeevent.FieldAction, field.TypeString, value)
	}
	_node = &NudgeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nudgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
