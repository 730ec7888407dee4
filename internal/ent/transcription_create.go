// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// TranscriptionCreate is the builder for creating a Transcription entity.
type TranscriptionCreate struct {
	config
	mutation *TranscriptionMutation
	hooks    []Hook
}

// SetSourceURL sets the "source_url" field.
func (_c *TranscriptionCreate) SetSourceURL(v string) *TranscriptionCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TranscriptionCreate) SetTitle(v string) *TranscriptionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableTitle(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *TranscriptionCreate) SetDurationSeconds(v float64) *TranscriptionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableDurationSeconds(v *float64) *TranscriptionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *TranscriptionCreate) SetLanguage(v string) *TranscriptionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableLanguage(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TranscriptionCreate) SetStatus(v string) *TranscriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableStatus(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *TranscriptionCreate) SetTranscript(v string) *TranscriptionCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableTranscript(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TranscriptionCreate) SetError(v string) *TranscriptionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableError(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetShareToken sets the "share_token" field.
func (_c *TranscriptionCreate) SetShareToken(v string) *TranscriptionCreate {
	_c.mutation.SetShareToken(v)
	return _c
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableShareToken(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetShareToken(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *TranscriptionCreate) SetFingerprint(v string) *TranscriptionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableFingerprint(v *string) *TranscriptionCreate {
	if v != nil {
		_c.SetFingerprint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptionCreate) SetCreatedAt(v time.Time) *TranscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableCreatedAt(v *time.Time) *TranscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TranscriptionCreate) SetUpdatedAt(v time.Time) *TranscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableUpdatedAt(v *time.Time) *TranscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *TranscriptionCreate) SetOwnerID(id int) *TranscriptionCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableOwnerID(id *int) *TranscriptionCreate {
	if id != nil {
		_c = _c.SetOwnerID(*id)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *TranscriptionCreate) SetOwner(v *User) *TranscriptionCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_c *TranscriptionCreate) Mutation() *TranscriptionMutation {
	return _c.mutation
}

// Save creates the Transcription in the database.
func (_c *TranscriptionCreate) Save(ctx context.Context) (*Transcription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptionCreate) SaveX(ctx context.Context) *Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptionCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := transcription.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := transcription.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := transcription.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := transcription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		v := transcription.DefaultTranscript
		_c.mutation.SetTranscript(v)
	}
	if _, ok := _c.mutation.Error(); !ok {
		v := transcription.DefaultError
		_c.mutation.SetError(v)
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		v := transcription.DefaultFingerprint
		_c.mutation.SetFingerprint(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transcription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptionCreate) check() error {
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Transcription.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := transcription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transcription.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "Transcription.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Transcription.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Transcription.updated_at"`)}
	}
	return nil
}

func (_c *TranscriptionCreate) sqlSave(ctx context.Context) (*Transcription, error) {
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

func (_c *TranscriptionCreate) createSpec() (*Transcription, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcription.Table, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(transcription.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(transcription.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(transcription.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transcription.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(transcription.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(transcription.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.ShareToken(); ok {
		_spec.SetField(transcription.FieldShareToken, field.TypeString, value)
		_node.ShareToken = &value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(transcription.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcription.OwnerTable,
			Columns: []string{transcription.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_transcriptions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptionCreateBulk is the builder for creating many Transcription entities in bulk.
type TranscriptionCreateBulk struct {
	config
	err      error
	builders []*TranscriptionCreate
}

// Save creates the Transcription entities in the database.
func (_c *TranscriptionCreateBulk) Save(ctx context.Context) ([]*Transcription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptionMutation)
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
func (_c *TranscriptionCreateBulk) SaveX(ctx context.Context) []*Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
