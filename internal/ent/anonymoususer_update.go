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
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/predicate"
)

// AnonymousUserUpdate is the builder for updating AnonymousUser entities.
type AnonymousUserUpdate struct {
	config
	hooks    []Hook
	mutation *AnonymousUserMutation
}

// Where appends a list predicates to the AnonymousUserUpdate builder.
func (_u *AnonymousUserUpdate) Where(ps ...predicate.AnonymousUser) *AnonymousUserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnonymousUserUpdate) SetFingerprint(v string) *AnonymousUserUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableFingerprint(v *string) *AnonymousUserUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *AnonymousUserUpdate) SetIP(v string) *AnonymousUserUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableIP(v *string) *AnonymousUserUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *AnonymousUserUpdate) ClearIP() *AnonymousUserUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *AnonymousUserUpdate) SetUserAgent(v string) *AnonymousUserUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableUserAgent(v *string) *AnonymousUserUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *AnonymousUserUpdate) ClearUserAgent() *AnonymousUserUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetTranscriptionCount sets the "transcription_count" field.
func (_u *AnonymousUserUpdate) SetTranscriptionCount(v int) *AnonymousUserUpdate {
	_u.mutation.ResetTranscriptionCount()
	_u.mutation.SetTranscriptionCount(v)
	return _u
}

// SetNillableTranscriptionCount sets the "transcription_count" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableTranscriptionCount(v *int) *AnonymousUserUpdate {
	if v != nil {
		_u.SetTranscriptionCount(*v)
	}
	return _u
}

// AddTranscriptionCount adds value to the "transcription_count" field.
func (_u *AnonymousUserUpdate) AddTranscriptionCount(v int) *AnonymousUserUpdate {
	_u.mutation.AddTranscriptionCount(v)
	return _u
}

// SetIsTransferUsed sets the "is_transfer_used" field.
func (_u *AnonymousUserUpdate) SetIsTransferUsed(v bool) *AnonymousUserUpdate {
	_u.mutation.SetIsTransferUsed(v)
	return _u
}

// SetNillableIsTransferUsed sets the "is_transfer_used" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableIsTransferUsed(v *bool) *AnonymousUserUpdate {
	if v != nil {
		_u.SetIsTransferUsed(*v)
	}
	return _u
}

// SetTransferredToUserID sets the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdate) SetTransferredToUserID(v int) *AnonymousUserUpdate {
	_u.mutation.ResetTransferredToUserID()
	_u.mutation.SetTransferredToUserID(v)
	return _u
}

// SetNillableTransferredToUserID sets the "transferred_to_user_id" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableTransferredToUserID(v *int) *AnonymousUserUpdate {
	if v != nil {
		_u.SetTransferredToUserID(*v)
	}
	return _u
}

// AddTransferredToUserID adds value to the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdate) AddTransferredToUserID(v int) *AnonymousUserUpdate {
	_u.mutation.AddTransferredToUserID(v)
	return _u
}

// ClearTransferredToUserID clears the value of the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdate) ClearTransferredToUserID() *AnonymousUserUpdate {
	_u.mutation.ClearTransferredToUserID()
	return _u
}

// SetTransferredAt sets the "transferred_at" field.
func (_u *AnonymousUserUpdate) SetTransferredAt(v time.Time) *AnonymousUserUpdate {
	_u.mutation.SetTransferredAt(v)
	return _u
}

// SetNillableTransferredAt sets the "transferred_at" field if the given value is not nil.
func (_u *AnonymousUserUpdate) SetNillableTransferredAt(v *time.Time) *AnonymousUserUpdate {
	if v != nil {
		_u.SetTransferredAt(*v)
	}
	return _u
}

// ClearTransferredAt clears the value of the "transferred_at" field.
func (_u *AnonymousUserUpdate) ClearTransferredAt() *AnonymousUserUpdate {
	_u.mutation.ClearTransferredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnonymousUserUpdate) SetUpdatedAt(v time.Time) *AnonymousUserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AnonymousUserMutation object of the builder.
func (_u *AnonymousUserUpdate) Mutation() *AnonymousUserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnonymousUserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonymousUserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnonymousUserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonymousUserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnonymousUserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anonymoususer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnonymousUserUpdate) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := anonymoususer.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionCount(); ok {
		if err := anonymoususer.TranscriptionCountValidator(v); err != nil {
			return &ValidationError{Name: "transcription_count", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.transcription_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AnonymousUserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anonymoususer.Table, anonymoususer.Columns, sqlgraph.NewFieldSpec(anonymoususer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(anonymoususer.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(anonymoususer.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(anonymoususer.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(anonymoususer.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(anonymoususer.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptionCount(); ok {
		_spec.SetField(anonymoususer.FieldTranscriptionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptionCount(); ok {
		_spec.AddField(anonymoususer.FieldTranscriptionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTransferUsed(); ok {
		_spec.SetField(anonymoususer.FieldIsTransferUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TransferredToUserID(); ok {
		_spec.SetField(anonymoususer.FieldTransferredToUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransferredToUserID(); ok {
		_spec.AddField(anonymoususer.FieldTransferredToUserID, field.TypeInt, value)
	}
	if _u.mutation.TransferredToUserIDCleared() {
		_spec.ClearField(anonymoususer.FieldTransferredToUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.TransferredAt(); ok {
		_spec.SetField(anonymoususer.FieldTransferredAt, field.TypeTime, value)
	}
	if _u.mutation.TransferredAtCleared() {
		_spec.ClearField(anonymoususer.FieldTransferredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(anonymoususer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anonymoususer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnonymousUserUpdateOne is the builder for updating a single AnonymousUser entity.
type AnonymousUserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnonymousUserMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnonymousUserUpdateOne) SetFingerprint(v string) *AnonymousUserUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableFingerprint(v *string) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *AnonymousUserUpdateOne) SetIP(v string) *AnonymousUserUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableIP(v *string) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *AnonymousUserUpdateOne) ClearIP() *AnonymousUserUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *AnonymousUserUpdateOne) SetUserAgent(v string) *AnonymousUserUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableUserAgent(v *string) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *AnonymousUserUpdateOne) ClearUserAgent() *AnonymousUserUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetTranscriptionCount sets the "transcription_count" field.
func (_u *AnonymousUserUpdateOne) SetTranscriptionCount(v int) *AnonymousUserUpdateOne {
	_u.mutation.ResetTranscriptionCount()
	_u.mutation.SetTranscriptionCount(v)
	return _u
}

// SetNillableTranscriptionCount sets the "transcription_count" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableTranscriptionCount(v *int) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetTranscriptionCount(*v)
	}
	return _u
}

// AddTranscriptionCount adds value to the "transcription_count" field.
func (_u *AnonymousUserUpdateOne) AddTranscriptionCount(v int) *AnonymousUserUpdateOne {
	_u.mutation.AddTranscriptionCount(v)
	return _u
}

// SetIsTransferUsed sets the "is_transfer_used" field.
func (_u *AnonymousUserUpdateOne) SetIsTransferUsed(v bool) *AnonymousUserUpdateOne {
	_u.mutation.SetIsTransferUsed(v)
	return _u
}

// SetNillableIsTransferUsed sets the "is_transfer_used" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableIsTransferUsed(v *bool) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetIsTransferUsed(*v)
	}
	return _u
}

// SetTransferredToUserID sets the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdateOne) SetTransferredToUserID(v int) *AnonymousUserUpdateOne {
	_u.mutation.ResetTransferredToUserID()
	_u.mutation.SetTransferredToUserID(v)
	return _u
}

// SetNillableTransferredToUserID sets the "transferred_to_user_id" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableTransferredToUserID(v *int) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetTransferredToUserID(*v)
	}
	return _u
}

// AddTransferredToUserID adds value to the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdateOne) AddTransferredToUserID(v int) *AnonymousUserUpdateOne {
	_u.mutation.AddTransferredToUserID(v)
	return _u
}

// ClearTransferredToUserID clears the value of the "transferred_to_user_id" field.
func (_u *AnonymousUserUpdateOne) ClearTransferredToUserID() *AnonymousUserUpdateOne {
	_u.mutation.ClearTransferredToUserID()
	return _u
}

// SetTransferredAt sets the "transferred_at" field.
func (_u *AnonymousUserUpdateOne) SetTransferredAt(v time.Time) *AnonymousUserUpdateOne {
	_u.mutation.SetTransferredAt(v)
	return _u
}

// SetNillableTransferredAt sets the "transferred_at" field if the given value is not nil.
func (_u *AnonymousUserUpdateOne) SetNillableTransferredAt(v *time.Time) *AnonymousUserUpdateOne {
	if v != nil {
		_u.SetTransferredAt(*v)
	}
	return _u
}

// ClearTransferredAt clears the value of the "transferred_at" field.
func (_u *AnonymousUserUpdateOne) ClearTransferredAt() *AnonymousUserUpdateOne {
	_u.mutation.ClearTransferredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnonymousUserUpdateOne) SetUpdatedAt(v time.Time) *AnonymousUserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AnonymousUserMutation object of the builder.
func (_u *AnonymousUserUpdateOne) Mutation() *AnonymousUserMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnonymousUserUpdate builder.
func (_u *AnonymousUserUpdateOne) Where(ps ...predicate.AnonymousUser) *AnonymousUserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnonymousUserUpdateOne) Select(field string, fields ...string) *AnonymousUserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnonymousUser entity.
func (_u *AnonymousUserUpdateOne) Save(ctx context.Context) (*AnonymousUser, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonymousUserUpdateOne) SaveX(ctx context.Context) *AnonymousUser {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnonymousUserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonymousUserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnonymousUserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anonymoususer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnonymousUserUpdateOne) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := anonymoususer.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionCount(); ok {
		if err := anonymoususer.TranscriptionCountValidator(v); err != nil {
			return &ValidationError{Name: "transcription_count", err: fmt.Errorf(`ent: validator failed for field "AnonymousUser.transcription_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AnonymousUserUpdateOne) sqlSave(ctx context.Context) (_node *AnonymousUser, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anonymoususer.Table, anonymoususer.Columns, sqlgraph.NewFieldSpec(anonymoususer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnonymousUser.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anonymoususer.FieldID)
		for _, f := range fields {
			if !anonymoususer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anonymoususer.FieldID {
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
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(anonymoususer.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(anonymoususer.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(anonymoususer.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(anonymoususer.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(anonymoususer.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptionCount(); ok {
		_spec.SetField(anonymoususer.FieldTranscriptionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptionCount(); ok {
		_spec.AddField(anonymoususer.FieldTranscriptionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTransferUsed(); ok {
		_spec.SetField(anonymoususer.FieldIsTransferUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TransferredToUserID(); ok {
		_spec.SetField(anonymoususer.FieldTransferredToUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransferredToUserID(); ok {
		_spec.AddField(anonymoususer.FieldTransferredToUserID, field.TypeInt, value)
	}
	if _u.mutation.TransferredToUserIDCleared() {
		_spec.ClearField(anonymoususer.FieldTransferredToUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.TransferredAt(); ok {
		_spec.SetField(anonymoususer.FieldTransferredAt, field.TypeTime, value)
	}
	if _u.mutation.TransferredAtCleared() {
		_spec.ClearField(anonymoususer.FieldTransferredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(anonymoususer.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AnonymousUser{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anonymoususer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
