// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/predicate"
	"github.com/stepwiselabs/stepwise/ent/studentdoc"
)

// StudentDocUpdate is the builder for updating StudentDoc entities.
type StudentDocUpdate struct {
	config
	hooks    []Hook
	mutation *StudentDocMutation
}

// Where appends a list predicates to the StudentDocUpdate builder.
func (_u *StudentDocUpdate) Where(ps ...predicate.StudentDoc) *StudentDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *StudentDocUpdate) SetStudentID(v string) *StudentDocUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentDocUpdate) SetNillableStudentID(v *string) *StudentDocUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StudentDocUpdate) SetKind(v string) *StudentDocUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StudentDocUpdate) SetNillableKind(v *string) *StudentDocUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *StudentDocUpdate) SetSchemaVersion(v int) *StudentDocUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *StudentDocUpdate) SetNillableSchemaVersion(v *int) *StudentDocUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *StudentDocUpdate) AddSchemaVersion(v int) *StudentDocUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StudentDocUpdate) SetPayload(v []byte) *StudentDocUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentDocUpdate) SetUpdatedAt(v time.Time) *StudentDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentDocMutation object of the builder.
func (_u *StudentDocUpdate) Mutation() *StudentDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentdoc.Table, studentdoc.Columns, sqlgraph.NewFieldSpec(studentdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentdoc.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(studentdoc.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(studentdoc.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(studentdoc.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(studentdoc.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentDocUpdateOne is the builder for updating a single StudentDoc entity.
type StudentDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentDocMutation
}

// SetStudentID sets the "student_id" field.
func (_u *StudentDocUpdateOne) SetStudentID(v string) *StudentDocUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentDocUpdateOne) SetNillableStudentID(v *string) *StudentDocUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StudentDocUpdateOne) SetKind(v string) *StudentDocUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StudentDocUpdateOne) SetNillableKind(v *string) *StudentDocUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *StudentDocUpdateOne) SetSchemaVersion(v int) *StudentDocUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *StudentDocUpdateOne) SetNillableSchemaVersion(v *int) *StudentDocUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *StudentDocUpdateOne) AddSchemaVersion(v int) *StudentDocUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StudentDocUpdateOne) SetPayload(v []byte) *StudentDocUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentDocUpdateOne) SetUpdatedAt(v time.Time) *StudentDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentDocMutation object of the builder.
func (_u *StudentDocUpdateOne) Mutation() *StudentDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentDocUpdate builder.
func (_u *StudentDocUpdateOne) Where(ps ...predicate.StudentDoc) *StudentDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentDocUpdateOne) Select(field string, fields ...string) *StudentDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentDoc entity.
func (_u *StudentDocUpdateOne) Save(ctx context.Context) (*StudentDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDocUpdateOne) SaveX(ctx context.Context) *StudentDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentDocUpdateOne) sqlSave(ctx context.Context) (_node *StudentDoc, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentdoc.Table, studentdoc.Columns, sqlgraph.NewFieldSpec(studentdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentdoc.FieldID)
		for _, f := range fields {
			if !studentdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentdoc.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentdoc.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(studentdoc.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(studentdoc.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(studentdoc.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(studentdoc.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
