// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
)

// AnonymousUserCreate is the builder for creating a AnonymousUser entity.
type AnonymousUserCreate struct {
	config
	mutation *AnonymousUserMutation
	hooks    []Hook
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AnonymousUserCreate) SetFingerprint(v string) *AnonymousUserCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetIP sets the "ip" field.
func (_c *AnonymousUserCreate) SetIP(v string) *AnonymousUserCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableIP(v *string) *AnonymousUserCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *AnonymousUserCreate) SetUserAgent(v string) *AnonymousUserCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableUserAgent(v *string) *AnonymousUserCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetTranscriptionCount sets the "transcription_count" field.
func (_c *AnonymousUserCreate) SetTranscriptionCount(v int) *AnonymousUserCreate {
	_c.mutation.SetTranscriptionCount(v)
	return _c
}

// SetNillableTranscriptionCount sets the "transcription_count" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableTranscriptionCount(v *int) *AnonymousUserCreate {
	if v != nil {
		_c.SetTranscriptionCount(*v)
	}
	return _c
}

// SetIsTransferUsed sets the "is_transfer_used" field.
func (_c *AnonymousUserCreate) SetIsTransferUsed(v bool) *AnonymousUserCreate {
	_c.mutation.SetIsTransferUsed(v)
	return _c
}

// SetNillableIsTransferUsed sets the "is_transfer_used" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableIsTransferUsed(v *bool) *AnonymousUserCreate {
	if v != nil {
		_c.SetIsTransferUsed(*v)
	}
	return _c
}

// SetTransferredToUserID sets the "transferred_to_user_id" field.
func (_c *AnonymousUserCreate) SetTransferredToUserID(v int) *AnonymousUserCreate {
	_c.mutation.SetTransferredToUserID(v)
	return _c
}

// SetNillableTransferredToUserID sets the "transferred_to_user_id" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableTransferredToUserID(v *int) *AnonymousUserCreate {
	if v != nil {
		_c.SetTransferredToUserID(*v)
	}
	return _c
}

// SetTransferredAt sets the "transferred_at" field.
func (_c *AnonymousUserCreate) SetTransferredAt(v time.Time) *AnonymousUserCreate {
	_c.mutation.SetTransferredAt(v)
	return _c
}

// SetNillableTransferredAt sets the "transferred_at" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableTransferredAt(v *time.Time) *AnonymousUserCreate {
	if v != nil {
		_c.SetTransferredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnonymousUserCreate) SetCreatedAt(v time.Time) *AnonymousUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableCreatedAt(v *time.Time) *AnonymousUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnonymousUserCreate) SetUpdatedAt(v time.Time) *AnonymousUserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnonymousUserCreate) SetNillableUpdatedAt(v *time.Time) *AnonymousUserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AnonymousUserMutation object of the builder.
func (_c *AnonymousUserCreate) Mutation() *AnonymousUserMutation {
	return _c.mutation
}

// Save creates the AnonymousUser in the database.
func (_c *AnonymousUserCreate) Save(ctx context.Context) (*AnonymousUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnonymousUserCreate) SaveX(ctx context.Context) *AnonymousUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonymousUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonymousUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnonymousUserCreate) defaults() {
	if _, ok := _c.mutation.IP(); !ok {
		v := anonymoususer.DefaultIP
		_c.mutation.SetIP(v)
	}
	if _, ok := _c.mutation.UserAgent(); !ok {
		v := anonymoususer.DefaultUserAgent
		_c.mutation.SetUserAgent(v)
	}
	if _, ok := _c.mutation.TranscriptionCount(); !ok {
		v := anonymoususer.DefaultTranscriptionCount
		_c.mutation.SetTranscriptionCount(v)
	}
	if _, ok := _c.mutation.IsTransferUsed(); !ok {
		v := anonymoususer.DefaultIsTransferUsed
		_c.mutation.SetIsTransferUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anonymoususer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := anonymoususer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnonymousUserCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "AnonymousUser.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := anonymoususer.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TranscriptionCount(); !ok {
		return &ValidationError{Name: "transcription_count", err: errors.New(`ent: missing required field "AnonymousUser.transcription_count"`)}
	}
	if v, ok := _c.mutation.TranscriptionCount(); ok {
		if err := anonymoususer.TranscriptionCountValidator(v); err != nil {
			return &ValidationError{Name: "transcription_count", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.transcription_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTransferUsed(); !ok {
		return &ValidationError{Name: "is_transfer_used", err: errors.New(`ent: missing required field "AnonymousUser.is_transfer_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnonymousUser.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnonymousUser.updated_at"`)}
	}
	return nil
}

func (_c *AnonymousUserCreate) sqlSave(ctx context.Context) (*AnonymousUser, error) {
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

func (_c *AnonymousUserCreate) createSpec() (*AnonymousUser, *sqlgraph.CreateSpec) {
	var (
		_node = &AnonymousUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anonymoususer.Table, sqlgraph.NewFieldSpec(anonymoususer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(anonymoususer.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(anonymoususer.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(anonymoususer.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.TranscriptionCount(); ok {
		_spec.SetField(anonymoususer.FieldTranscriptionCount, field.TypeInt, value)
		_node.TranscriptionCount = value
	}
	if value, ok := _c.mutation.IsTransferUsed(); ok {
		_spec.SetField(anonymoususer.FieldIsTransferUsed, field.TypeBool, value)
		_node.IsTransferUsed = value
	}
	if value, ok := _c.mutation.TransferredToUserID(); ok {
		_spec.SetField(anonymoususer.FieldTransferredToUserID, field.TypeInt, value)
		_node.TransferredToUserID = value
	}
	if value, ok := _c.mutation.TransferredAt(); ok {
		_spec.SetField(anonymoususer.FieldTransferredAt, field.TypeTime, value)
		_node.TransferredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anonymoususer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(anonymoususer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AnonymousUserCreateBulk is the builder for creating many AnonymousUser entities in bulk.
type AnonymousUserCreateBulk struct {
	config
	err      error
	builders []*AnonymousUserCreate
}

// Save creates the AnonymousUser entities in the database.
func (_c *AnonymousUserCreateBulk) Save(ctx context.Context) ([]*AnonymousUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnonymousUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnonymousUserMutation)
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
func (_c *AnonymousUserCreateBulk) SaveX(ctx context.Context) []*AnonymousUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonymousUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonymousUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
