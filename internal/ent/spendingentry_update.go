// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/predicate"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// SpendingEntryUpdate is the builder for updating SpendingEntry entities.
type SpendingEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SpendingEntryMutation
}

// Where appends a list predicates to the SpendingEntryUpdate builder.
func (_u *SpendingEntryUpdate) Where(ps ...predicate.SpendingEntry) *SpendingEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *SpendingEntryUpdate) SetAction(v string) *SpendingEntryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SpendingEntryUpdate) SetNillableAction(v *string) *SpendingEntryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTokensChanged sets the "tokens_changed" field.
func (_u *SpendingEntryUpdate) SetTokensChanged(v int) *SpendingEntryUpdate {
	_u.mutation.ResetTokensChanged()
	_u.mutation.SetTokensChanged(v)
	return _u
}

// SetNillableTokensChanged sets the "tokens_changed" field if the given value is not nil.
func (_u *SpendingEntryUpdate) SetNillableTokensChanged(v *int) *SpendingEntryUpdate {
	if v != nil {
		_u.SetTokensChanged(*v)
	}
	return _u
}

// AddTokensChanged adds value to the "tokens_changed" field.
func (_u *SpendingEntryUpdate) AddTokensChanged(v int) *SpendingEntryUpdate {
	_u.mutation.AddTokensChanged(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *SpendingEntryUpdate) SetBalanceAfter(v int) *SpendingEntryUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *SpendingEntryUpdate) SetNillableBalanceAfter(v *int) *SpendingEntryUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *SpendingEntryUpdate) AddBalanceAfter(v int) *SpendingEntryUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpendingEntryUpdate) SetDescription(v string) *SpendingEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpendingEntryUpdate) SetNillableDescription(v *string) *SpendingEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SpendingEntryUpdate) ClearDescription() *SpendingEntryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SpendingEntryUpdate) SetOwnerID(id int) *SpendingEntryUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SpendingEntryUpdate) SetOwner(v *User) *SpendingEntryUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SpendingEntryMutation object of the builder.
func (_u *SpendingEntryUpdate) Mutation() *SpendingEntryMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SpendingEntryUpdate) ClearOwner() *SpendingEntryUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpendingEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpendingEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpendingEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpendingEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpendingEntryUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := spendingentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SpendingEntry.action": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpendingEntry.owner"`)
	}
	return nil
}

func (_u *SpendingEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spendingentry.Table, spendingentry.Columns, sqlgraph.NewFieldSpec(spendingentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(spendingentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensChanged(); ok {
		_spec.SetField(spendingentry.FieldTokensChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensChanged(); ok {
		_spec.AddField(spendingentry.FieldTokensChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(spendingentry.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(spendingentry.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(spendingentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(spendingentry.FieldDescription, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spendingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpendingEntryUpdateOne is the builder for updating a single SpendingEntry entity.
type SpendingEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpendingEntryMutation
}

// SetAction sets the "action" field.
func (_u *SpendingEntryUpdateOne) SetAction(v string) *SpendingEntryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SpendingEntryUpdateOne) SetNillableAction(v *string) *SpendingEntryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTokensChanged sets the "tokens_changed" field.
func (_u *SpendingEntryUpdateOne) SetTokensChanged(v int) *SpendingEntryUpdateOne {
	_u.mutation.ResetTokensChanged()
	_u.mutation.SetTokensChanged(v)
	return _u
}

// SetNillableTokensChanged sets the "tokens_changed" field if the given value is not nil.
func (_u *SpendingEntryUpdateOne) SetNillableTokensChanged(v *int) *SpendingEntryUpdateOne {
	if v != nil {
		_u.SetTokensChanged(*v)
	}
	return _u
}

// AddTokensChanged adds value to the "tokens_changed" field.
func (_u *SpendingEntryUpdateOne) AddTokensChanged(v int) *SpendingEntryUpdateOne {
	_u.mutation.AddTokensChanged(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *SpendingEntryUpdateOne) SetBalanceAfter(v int) *SpendingEntryUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *SpendingEntryUpdateOne) SetNillableBalanceAfter(v *int) *SpendingEntryUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *SpendingEntryUpdateOne) AddBalanceAfter(v int) *SpendingEntryUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpendingEntryUpdateOne) SetDescription(v string) *SpendingEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpendingEntryUpdateOne) SetNillableDescription(v *string) *SpendingEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SpendingEntryUpdateOne) ClearDescription() *SpendingEntryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SpendingEntryUpdateOne) SetOwnerID(id int) *SpendingEntryUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SpendingEntryUpdateOne) SetOwner(v *User) *SpendingEntryUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SpendingEntryMutation object of the builder.
func (_u *SpendingEntryUpdateOne) Mutation() *SpendingEntryMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SpendingEntryUpdateOne) ClearOwner() *SpendingEntryUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the SpendingEntryUpdate builder.
func (_u *SpendingEntryUpdateOne) Where(ps ...predicate.SpendingEntry) *SpendingEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpendingEntryUpdateOne) Select(field string, fields ...string) *SpendingEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpendingEntry entity.
func (_u *SpendingEntryUpdateOne) Save(ctx context.Context) (*SpendingEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpendingEntryUpdateOne) SaveX(ctx context.Context) *SpendingEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpendingEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpendingEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpendingEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := spendingentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SpendingEntry.action": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpendingEntry.owner"`)
	}
	return nil
}

func (_u *SpendingEntryUpdateOne) sqlSave(ctx context.Context) (_node *SpendingEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spendingentry.Table, spendingentry.Columns, sqlgraph.NewFieldSpec(spendingentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpendingEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spendingentry.FieldID)
		for _, f := range fields {
			if !spendingentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spendingentry.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(spendingentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensChanged(); ok {
		_spec.SetField(spendingentry.FieldTokensChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensChanged(); ok {
		_spec.AddField(spendingentry.FieldTokensChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(spendingentry.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(spendingentry.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(spendingentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(spendingentry.FieldDescription, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SpendingEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spendingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
