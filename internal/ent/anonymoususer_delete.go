// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/predicate"
)

// AnonymousUserDelete is the builder for deleting a AnonymousUser entity.
type AnonymousUserDelete struct {
	config
	hooks    []Hook
	mutation *AnonymousUserMutation
}

// Where appends a list predicates to the AnonymousUserDelete builder.
func (_d *AnonymousUserDelete) Where(ps ...predicate.AnonymousUser) *AnonymousUserDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnonymousUserDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnonymousUserDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnonymousUserDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(anonymoususer.Table, sqlgraph.NewFieldSpec(anonymoususer.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnonymousUserDeleteOne is the builder for deleting a single AnonymousUser entity.
type AnonymousUserDeleteOne struct {
	_d *AnonymousUserDelete
}

// Where appends a list predicates to the AnonymousUserDelete builder.
func (_d *AnonymousUserDeleteOne) Where(ps ...predicate.AnonymousUser) *AnonymousUserDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnonymousUserDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{anonymoususer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnonymousUserDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
