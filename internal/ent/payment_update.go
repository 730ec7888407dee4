// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/payment"
	"github.com/nolan/scribecloud/internal/ent/predicate"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (_u *PaymentUpdate) SetStripeSessionID(v string) *PaymentUpdate {
	_u.mutation.SetStripeSessionID(v)
	return _u
}

// SetNillableStripeSessionID sets the "stripe_session_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableStripeSessionID(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetStripeSessionID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentUpdate) SetAmountCents(v int64) *PaymentUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableAmountCents(v *int64) *PaymentUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentUpdate) AddAmountCents(v int64) *PaymentUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentUpdate) SetCurrency(v string) *PaymentUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableCurrency(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTokensAdded sets the "tokens_added" field.
func (_u *PaymentUpdate) SetTokensAdded(v int) *PaymentUpdate {
	_u.mutation.ResetTokensAdded()
	_u.mutation.SetTokensAdded(v)
	return _u
}

// SetNillableTokensAdded sets the "tokens_added" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableTokensAdded(v *int) *PaymentUpdate {
	if v != nil {
		_u.SetTokensAdded(*v)
	}
	return _u
}

// AddTokensAdded adds value to the "tokens_added" field.
func (_u *PaymentUpdate) AddTokensAdded(v int) *PaymentUpdate {
	_u.mutation.AddTokensAdded(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentUpdate) SetStatus(v string) *PaymentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableStatus(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *PaymentUpdate) SetOwnerID(id int) *PaymentUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PaymentUpdate) SetOwner(v *User) *PaymentUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PaymentUpdate) ClearOwner() *PaymentUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.StripeSessionID(); ok {
		if err := payment.StripeSessionIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_session_id", err: fmt.Errorf(`ent: validator failed for field "Payment.stripe_session_id": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Payment.owner"`)
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StripeSessionID(); ok {
		_spec.SetField(payment.FieldStripeSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(payment.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(payment.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(payment.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensAdded(); ok {
		_spec.SetField(payment.FieldTokensAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensAdded(); ok {
		_spec.AddField(payment.FieldTokensAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.OwnerTable,
			Columns: []string{payment.OwnerColumn},
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
			Table:   payment.OwnerTable,
			Columns: []string{payment.OwnerColumn},
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
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (_u *PaymentUpdateOne) SetStripeSessionID(v string) *PaymentUpdateOne {
	_u.mutation.SetStripeSessionID(v)
	return _u
}

// SetNillableStripeSessionID sets the "stripe_session_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableStripeSessionID(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetStripeSessionID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentUpdateOne) SetAmountCents(v int64) *PaymentUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableAmountCents(v *int64) *PaymentUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentUpdateOne) AddAmountCents(v int64) *PaymentUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentUpdateOne) SetCurrency(v string) *PaymentUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableCurrency(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTokensAdded sets the "tokens_added" field.
func (_u *PaymentUpdateOne) SetTokensAdded(v int) *PaymentUpdateOne {
	_u.mutation.ResetTokensAdded()
	_u.mutation.SetTokensAdded(v)
	return _u
}

// SetNillableTokensAdded sets the "tokens_added" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableTokensAdded(v *int) *PaymentUpdateOne {
	if v != nil {
		_u.SetTokensAdded(*v)
	}
	return _u
}

// AddTokensAdded adds value to the "tokens_added" field.
func (_u *PaymentUpdateOne) AddTokensAdded(v int) *PaymentUpdateOne {
	_u.mutation.AddTokensAdded(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentUpdateOne) SetStatus(v string) *PaymentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableStatus(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *PaymentUpdateOne) SetOwnerID(id int) *PaymentUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PaymentUpdateOne) SetOwner(v *User) *PaymentUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PaymentUpdateOne) ClearOwner() *PaymentUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.StripeSessionID(); ok {
		if err := payment.StripeSessionIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_session_id", err: fmt.Errorf(`ent: validator failed for field "Payment.stripe_session_id": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Payment.owner"`)
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
	if value, ok := _u.mutation.StripeSessionID(); ok {
		_spec.SetField(payment.FieldStripeSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(payment.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(payment.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(payment.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensAdded(); ok {
		_spec.SetField(payment.FieldTokensAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensAdded(); ok {
		_spec.AddField(payment.FieldTokensAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.OwnerTable,
			Columns: []string{payment.OwnerColumn},
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
			Table:   payment.OwnerTable,
			Columns: []string{payment.OwnerColumn},
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
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
