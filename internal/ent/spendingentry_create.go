// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// SpendingEntryCreate is the builder for creating a SpendingEntry entity.
type SpendingEntryCreate struct {
	config
	mutation *SpendingEntryMutation
	hooks    []Hook
}

// SetAction sets the "action" field.
func (_c *SpendingEntryCreate) SetAction(v string) *SpendingEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTokensChanged sets the "tokens_changed" field.
func (_c *SpendingEntryCreate) SetTokensChanged(v int) *SpendingEntryCreate {
	_c.mutation.SetTokensChanged(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *SpendingEntryCreate) SetBalanceAfter(v int) *SpendingEntryCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SpendingEntryCreate) SetDescription(v string) *SpendingEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SpendingEntryCreate) SetNillableDescription(v *string) *SpendingEntryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpendingEntryCreate) SetCreatedAt(v time.Time) *SpendingEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpendingEntryCreate) SetNillableCreatedAt(v *time.Time) *SpendingEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *SpendingEntryCreate) SetOwnerID(id int) *SpendingEntryCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *SpendingEntryCreate) SetOwner(v *User) *SpendingEntryCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the SpendingEntryMutation object of the builder.
func (_c *SpendingEntryCreate) Mutation() *SpendingEntryMutation {
	return _c.mutation
}

// Save creates the SpendingEntry in the database.
func (_c *SpendingEntryCreate) Save(ctx context.Context) (*SpendingEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpendingEntryCreate) SaveX(ctx context.Context) *SpendingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpendingEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpendingEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpendingEntryCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := spendingentry.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spendingentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpendingEntryCreate) check() error {
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SpendingEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := spendingentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SpendingEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensChanged(); !ok {
		return &ValidationError{Name: "tokens_changed", err: errors.New(`ent: missing required field "SpendingEntry.tokens_changed"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "SpendingEntry.balance_after"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpendingEntry.created_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "SpendingEntry.owner"`)}
	}
	return nil
}

func (_c *SpendingEntryCreate) sqlSave(ctx context.Context) (*SpendingEntry, error) {
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

func (_c *SpendingEntryCreate) createSpec() (*SpendingEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SpendingEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spendingentry.Table, sqlgraph.NewFieldSpec(spendingentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(spendingentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.TokensChanged(); ok {
		_spec.SetField(spendingentry.FieldTokensChanged, field.TypeInt, value)
		_node.TokensChanged = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(spendingentry.FieldBalanceAfter, field.TypeInt, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(spendingentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spendingentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spendingentry.OwnerTable,
			Columns: []string{spendingentry.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_spending_entries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpendingEntryCreateBulk is the builder for creating many SpendingEntry entities in bulk.
type SpendingEntryCreateBulk struct {
	config
	err      error
	builders []*SpendingEntryCreate
}

// Save creates the SpendingEntry entities in the database.
func (_c *SpendingEntryCreateBulk) Save(ctx context.Context) ([]*SpendingEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpendingEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpendingEntryMutation)
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
func (_c *SpendingEntryCreateBulk) SaveX(ctx context.Context) []*SpendingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpendingEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpendingEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
