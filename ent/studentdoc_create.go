// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepwiselabs/stepwise/ent/studentdoc"
)

// StudentDocCreate is the builder for creating a StudentDoc entity.
type StudentDocCreate struct {
	config
	mutation *StudentDocMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentDocCreate) SetStudentID(v string) *StudentDocCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *StudentDocCreate) SetKind(v string) *StudentDocCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *StudentDocCreate) SetSchemaVersion(v int) *StudentDocCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StudentDocCreate) SetPayload(v []byte) *StudentDocCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentDocCreate) SetUpdatedAt(v time.Time) *StudentDocCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentDocCreate) SetNillableUpdatedAt(v *time.Time) *StudentDocCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StudentDocMutation object of the builder.
func (_c *StudentDocCreate) Mutation() *StudentDocMutation {
	return _c.mutation
}

// Save creates the StudentDoc in the database.
func (_c *StudentDocCreate) Save(ctx context.Context) (*StudentDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentDocCreate) SaveX(ctx context.Context) *StudentDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentDocCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentdoc.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentDocCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentDoc.student_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "StudentDoc.kind"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "StudentDoc.schema_version"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StudentDoc.payload"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentDoc.updated_at"`)}
	}
	return nil
}

func (_c *StudentDocCreate) sqlSave(ctx context.Context) (*StudentDoc, error) {
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

func (_c *StudentDocCreate) createSpec() (*StudentDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentdoc.Table, sqlgraph.NewFieldSpec(studentdoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentdoc.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(studentdoc.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(studentdoc.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(studentdoc.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentdoc.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudentDocCreateBulk is the builder for creating many StudentDoc entities in bulk.
type StudentDocCreateBulk struct {
	config
	err      error
	builders []*StudentDocCreate
}

// Save creates the StudentDoc entities in the database.
func (_c *StudentDocCreateBulk) Save(ctx context.Context) ([]*StudentDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentDocMutation)
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
func (_c *StudentDocCreateBulk) SaveX(ctx context.Context) []*StudentDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
