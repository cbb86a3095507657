// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yojanabuddy/teachme/ent/tutorsession"
)

// TutorSessionCreate is the builder for creating a TutorSession entity.
type TutorSessionCreate struct {
	config
	mutation *TutorSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TutorSessionCreate) SetUserID(v string) *TutorSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNoteID sets the "note_id" field.
func (_c *TutorSessionCreate) SetNoteID(v string) *TutorSessionCreate {
	_c.mutation.SetNoteID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *TutorSessionCreate) SetMode(v string) *TutorSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *TutorSessionCreate) SetNillableMode(v *string) *TutorSessionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *TutorSessionCreate) SetIsCompleted(v bool) *TutorSessionCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *TutorSessionCreate) SetNillableIsCompleted(v *bool) *TutorSessionCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *TutorSessionCreate) SetVersion(v int64) *TutorSessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TutorSessionCreate) SetNillableVersion(v *int64) *TutorSessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *TutorSessionCreate) SetData(v map[string]interface{}) *TutorSessionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorSessionCreate) SetCreatedAt(v time.Time) *TutorSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorSessionCreate) SetNillableCreatedAt(v *time.Time) *TutorSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TutorSessionCreate) SetUpdatedAt(v time.Time) *TutorSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TutorSessionCreate) SetNillableUpdatedAt(v *time.Time) *TutorSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TutorSessionCreate) SetID(v string) *TutorSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TutorSessionMutation object of the builder.
func (_c *TutorSessionCreate) Mutation() *TutorSessionMutation {
	return _c.mutation
}

// Save creates the TutorSession in the database.
func (_c *TutorSessionCreate) Save(ctx context.Context) (*TutorSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorSessionCreate) SaveX(ctx context.Context) *TutorSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorSessionCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := tutorsession.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := tutorsession.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := tutorsession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tutorsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TutorSession.user_id"`)}
	}
	if _, ok := _c.mutation.NoteID(); !ok {
		return &ValidationError{Name: "note_id", err: errors.New(`ent: missing required field "TutorSession.note_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "TutorSession.mode"`)}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`ent: missing required field "TutorSession.is_completed"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "TutorSession.version"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "TutorSession.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TutorSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TutorSession.updated_at"`)}
	}
	return nil
}

func (_c *TutorSessionCreate) sqlSave(ctx context.Context) (*TutorSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TutorSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TutorSessionCreate) createSpec() (*TutorSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorsession.Table, sqlgraph.NewFieldSpec(tutorsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tutorsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.NoteID(); ok {
		_spec.SetField(tutorsession.FieldNoteID, field.TypeString, value)
		_node.NoteID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(tutorsession.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(tutorsession.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(tutorsession.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(tutorsession.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorSession.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorSessionCreate) OnConflict(opts ...sql.ConflictOption) *TutorSessionUpsertOne {
	_c.conflict = opts
	return &TutorSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorSessionCreate) OnConflictColumns(columns ...string) *TutorSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorSessionUpsertOne{
		create: _c,
	}
}

type (
	// TutorSessionUpsertOne is the builder for "upsert"-ing
	//  one TutorSession node.
	TutorSessionUpsertOne struct {
		create *TutorSessionCreate
	}

	// TutorSessionUpsert is the "OnConflict" setter.
	TutorSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMode sets the "mode" field.
func (u *TutorSessionUpsert) SetMode(v string) *TutorSessionUpsert {
	u.Set(tutorsession.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TutorSessionUpsert) UpdateMode() *TutorSessionUpsert {
	u.SetExcluded(tutorsession.FieldMode)
	return u
}

// SetIsCompleted sets the "is_completed" field.
func (u *TutorSessionUpsert) SetIsCompleted(v bool) *TutorSessionUpsert {
	u.Set(tutorsession.FieldIsCompleted, v)
	return u
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *TutorSessionUpsert) UpdateIsCompleted() *TutorSessionUpsert {
	u.SetExcluded(tutorsession.FieldIsCompleted)
	return u
}

// SetVersion sets the "version" field.
func (u *TutorSessionUpsert) SetVersion(v int64) *TutorSessionUpsert {
	u.Set(tutorsession.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TutorSessionUpsert) UpdateVersion() *TutorSessionUpsert {
	u.SetExcluded(tutorsession.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *TutorSessionUpsert) AddVersion(v int64) *TutorSessionUpsert {
	u.Add(tutorsession.FieldVersion, v)
	return u
}

// SetData sets the "data" field.
func (u *TutorSessionUpsert) SetData(v map[string]interface{}) *TutorSessionUpsert {
	u.Set(tutorsession.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TutorSessionUpsert) UpdateData() *TutorSessionUpsert {
	u.SetExcluded(tutorsession.FieldData)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorSessionUpsert) SetUpdatedAt(v time.Time) *TutorSessionUpsert {
	u.Set(tutorsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorSessionUpsert) UpdateUpdatedAt() *TutorSessionUpsert {
	u.SetExcluded(tutorsession.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorSessionUpsertOne) UpdateNewValues() *TutorSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tutorsession.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(tutorsession.FieldUserID)
		}
		if _, exists := u.create.mutation.NoteID(); exists {
			s.SetIgnore(tutorsession.FieldNoteID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tutorsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TutorSessionUpsertOne) Ignore() *TutorSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorSessionUpsertOne) DoNothing() *TutorSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorSessionCreate.OnConflict
// documentation for more info.
func (u *TutorSessionUpsertOne) Update(set func(*TutorSessionUpsert)) *TutorSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *TutorSessionUpsertOne) SetMode(v string) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TutorSessionUpsertOne) UpdateMode() *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateMode()
	})
}

// SetIsCompleted sets the "is_completed" field.
func (u *TutorSessionUpsertOne) SetIsCompleted(v bool) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetIsCompleted(v)
	})
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *TutorSessionUpsertOne) UpdateIsCompleted() *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateIsCompleted()
	})
}

// SetVersion sets the "version" field.
func (u *TutorSessionUpsertOne) SetVersion(v int64) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TutorSessionUpsertOne) AddVersion(v int64) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TutorSessionUpsertOne) UpdateVersion() *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateVersion()
	})
}

// SetData sets the "data" field.
func (u *TutorSessionUpsertOne) SetData(v map[string]interface{}) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TutorSessionUpsertOne) UpdateData() *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorSessionUpsertOne) SetUpdatedAt(v time.Time) *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorSessionUpsertOne) UpdateUpdatedAt() *TutorSessionUpsertOne {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TutorSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TutorSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TutorSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TutorSessionUpsertOne.ID is not supported by MySQL driver. Use TutorSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TutorSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TutorSessionCreateBulk is the builder for creating many TutorSession entities in bulk.
type TutorSessionCreateBulk struct {
	config
	err      error
	builders []*TutorSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the TutorSession entities in the database.
func (_c *TutorSessionCreateBulk) Save(ctx context.Context) ([]*TutorSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorSessionMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TutorSessionCreateBulk) SaveX(ctx context.Context) []*TutorSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TutorSessionUpsertBulk {
	_c.conflict = opts
	return &TutorSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorSessionCreateBulk) OnConflictColumns(columns ...string) *TutorSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorSessionUpsertBulk{
		create: _c,
	}
}

// TutorSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of TutorSession nodes.
type TutorSessionUpsertBulk struct {
	create *TutorSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorSessionUpsertBulk) UpdateNewValues() *TutorSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tutorsession.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(tutorsession.FieldUserID)
			}
			if _, exists := b.mutation.NoteID(); exists {
				s.SetIgnore(tutorsession.FieldNoteID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tutorsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TutorSessionUpsertBulk) Ignore() *TutorSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorSessionUpsertBulk) DoNothing() *TutorSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorSessionCreateBulk.OnConflict
// documentation for more info.
func (u *TutorSessionUpsertBulk) Update(set func(*TutorSessionUpsert)) *TutorSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *TutorSessionUpsertBulk) SetMode(v string) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TutorSessionUpsertBulk) UpdateMode() *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateMode()
	})
}

// SetIsCompleted sets the "is_completed" field.
func (u *TutorSessionUpsertBulk) SetIsCompleted(v bool) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetIsCompleted(v)
	})
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *TutorSessionUpsertBulk) UpdateIsCompleted() *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateIsCompleted()
	})
}

// SetVersion sets the "version" field.
func (u *TutorSessionUpsertBulk) SetVersion(v int64) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TutorSessionUpsertBulk) AddVersion(v int64) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TutorSessionUpsertBulk) UpdateVersion() *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateVersion()
	})
}

// SetData sets the "data" field.
func (u *TutorSessionUpsertBulk) SetData(v map[string]interface{}) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TutorSessionUpsertBulk) UpdateData() *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorSessionUpsertBulk) SetUpdatedAt(v time.Time) *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorSessionUpsertBulk) UpdateUpdatedAt() *TutorSessionUpsertBulk {
	return u.Update(func(s *TutorSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TutorSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TutorSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TutorSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
