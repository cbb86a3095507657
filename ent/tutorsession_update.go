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
	"github.com/yojanabuddy/teachme/ent/predicate"
	"github.com/yojanabuddy/teachme/ent/tutorsession"
)

// TutorSessionUpdate is the builder for updating TutorSession entities.
type TutorSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TutorSessionMutation
}

// Where appends a list predicates to the TutorSessionUpdate builder.
func (_u *TutorSessionUpdate) Where(ps ...predicate.TutorSession) *TutorSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *TutorSessionUpdate) SetMode(v string) *TutorSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TutorSessionUpdate) SetNillableMode(v *string) *TutorSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TutorSessionUpdate) SetIsCompleted(v bool) *TutorSessionUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TutorSessionUpdate) SetNillableIsCompleted(v *bool) *TutorSessionUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TutorSessionUpdate) SetVersion(v int64) *TutorSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TutorSessionUpdate) SetNillableVersion(v *int64) *TutorSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TutorSessionUpdate) AddVersion(v int64) *TutorSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetData sets the "data" field.
func (_u *TutorSessionUpdate) SetData(v map[string]interface{}) *TutorSessionUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorSessionUpdate) SetUpdatedAt(v time.Time) *TutorSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TutorSessionUpdate) SetNillableUpdatedAt(v *time.Time) *TutorSessionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TutorSessionMutation object of the builder.
func (_u *TutorSessionUpdate) Mutation() *TutorSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorsession.Table, tutorsession.Columns, sqlgraph.NewFieldSpec(tutorsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(tutorsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(tutorsession.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tutorsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tutorsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(tutorsession.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorSessionUpdateOne is the builder for updating a single TutorSession entity.
type TutorSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorSessionMutation
}

// SetMode sets the "mode" field.
func (_u *TutorSessionUpdateOne) SetMode(v string) *TutorSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TutorSessionUpdateOne) SetNillableMode(v *string) *TutorSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TutorSessionUpdateOne) SetIsCompleted(v bool) *TutorSessionUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TutorSessionUpdateOne) SetNillableIsCompleted(v *bool) *TutorSessionUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TutorSessionUpdateOne) SetVersion(v int64) *TutorSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TutorSessionUpdateOne) SetNillableVersion(v *int64) *TutorSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TutorSessionUpdateOne) AddVersion(v int64) *TutorSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetData sets the "data" field.
func (_u *TutorSessionUpdateOne) SetData(v map[string]interface{}) *TutorSessionUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorSessionUpdateOne) SetUpdatedAt(v time.Time) *TutorSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TutorSessionUpdateOne) SetNillableUpdatedAt(v *time.Time) *TutorSessionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TutorSessionMutation object of the builder.
func (_u *TutorSessionUpdateOne) Mutation() *TutorSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorSessionUpdate builder.
func (_u *TutorSessionUpdateOne) Where(ps ...predicate.TutorSession) *TutorSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorSessionUpdateOne) Select(field string, fields ...string) *TutorSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorSession entity.
func (_u *TutorSessionUpdateOne) Save(ctx context.Context) (*TutorSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorSessionUpdateOne) SaveX(ctx context.Context) *TutorSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorSessionUpdateOne) sqlSave(ctx context.Context) (_node *TutorSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorsession.Table, tutorsession.Columns, sqlgraph.NewFieldSpec(tutorsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorsession.FieldID)
		for _, f := range fields {
			if !tutorsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorsession.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(tutorsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(tutorsession.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tutorsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tutorsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(tutorsession.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TutorSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
