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
	"github.com/nolan/scribecloud/internal/ent/predicate"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// TranscriptionUpdate is the builder for updating Transcription entities.
type TranscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptionMutation
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdate) Where(ps ...predicate.Transcription) *TranscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TranscriptionUpdate) SetSourceURL(v string) *TranscriptionUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableSourceURL(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TranscriptionUpdate) SetTitle(v string) *TranscriptionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableTitle(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TranscriptionUpdate) ClearTitle() *TranscriptionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TranscriptionUpdate) SetDurationSeconds(v float64) *TranscriptionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableDurationSeconds(v *float64) *TranscriptionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TranscriptionUpdate) AddDurationSeconds(v float64) *TranscriptionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptionUpdate) SetLanguage(v string) *TranscriptionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableLanguage(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TranscriptionUpdate) ClearLanguage() *TranscriptionUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranscriptionUpdate) SetStatus(v string) *TranscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableStatus(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TranscriptionUpdate) SetTranscript(v string) *TranscriptionUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableTranscript(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *TranscriptionUpdate) ClearTranscript() *TranscriptionUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetError sets the "error" field.
func (_u *TranscriptionUpdate) SetError(v string) *TranscriptionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableError(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TranscriptionUpdate) ClearError() *TranscriptionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *TranscriptionUpdate) SetShareToken(v string) *TranscriptionUpdate {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableShareToken(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *TranscriptionUpdate) ClearShareToken() *TranscriptionUpdate {
	_u.mutation.ClearShareToken()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *TranscriptionUpdate) SetFingerprint(v string) *TranscriptionUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableFingerprint(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *TranscriptionUpdate) ClearFingerprint() *TranscriptionUpdate {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptionUpdate) SetUpdatedAt(v time.Time) *TranscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *TranscriptionUpdate) SetOwnerID(id int) *TranscriptionUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableOwnerID(id *int) *TranscriptionUpdate {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *TranscriptionUpdate) SetOwner(v *User) *TranscriptionUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdate) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *TranscriptionUpdate) ClearOwner() *TranscriptionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionUpdate) check() error {
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := transcription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transcription.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(transcription.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transcription.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(transcription.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(transcription.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(transcription.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(transcription.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcription.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(transcription.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(transcription.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(transcription.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(transcription.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(transcription.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(transcription.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(transcription.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(transcription.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptionUpdateOne is the builder for updating a single Transcription entity.
type TranscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptionMutation
}

// SetSourceURL sets the "source_url" field.
func (_u *TranscriptionUpdateOne) SetSourceURL(v string) *TranscriptionUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableSourceURL(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TranscriptionUpdateOne) SetTitle(v string) *TranscriptionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableTitle(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TranscriptionUpdateOne) ClearTitle() *TranscriptionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TranscriptionUpdateOne) SetDurationSeconds(v float64) *TranscriptionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableDurationSeconds(v *float64) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TranscriptionUpdateOne) AddDurationSeconds(v float64) *TranscriptionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptionUpdateOne) SetLanguage(v string) *TranscriptionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableLanguage(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TranscriptionUpdateOne) ClearLanguage() *TranscriptionUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranscriptionUpdateOne) SetStatus(v string) *TranscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableStatus(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TranscriptionUpdateOne) SetTranscript(v string) *TranscriptionUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableTranscript(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *TranscriptionUpdateOne) ClearTranscript() *TranscriptionUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetError sets the "error" field.
func (_u *TranscriptionUpdateOne) SetError(v string) *TranscriptionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableError(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TranscriptionUpdateOne) ClearError() *TranscriptionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *TranscriptionUpdateOne) SetShareToken(v string) *TranscriptionUpdateOne {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableShareToken(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *TranscriptionUpdateOne) ClearShareToken() *TranscriptionUpdateOne {
	_u.mutation.ClearShareToken()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *TranscriptionUpdateOne) SetFingerprint(v string) *TranscriptionUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableFingerprint(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *TranscriptionUpdateOne) ClearFingerprint() *TranscriptionUpdateOne {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptionUpdateOne) SetUpdatedAt(v time.Time) *TranscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *TranscriptionUpdateOne) SetOwnerID(id int) *TranscriptionUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableOwnerID(id *int) *TranscriptionUpdateOne {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *TranscriptionUpdateOne) SetOwner(v *User) *TranscriptionUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdateOne) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *TranscriptionUpdateOne) ClearOwner() *TranscriptionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdateOne) Where(ps ...predicate.Transcription) *TranscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptionUpdateOne) Select(field string, fields ...string) *TranscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcription entity.
func (_u *TranscriptionUpdateOne) Save(ctx context.Context) (*Transcription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) SaveX(ctx context.Context) *Transcription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := transcription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transcription.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Transcription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcription.FieldID)
		for _, f := range fields {
			if !transcription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcription.FieldID {
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
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(transcription.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transcription.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(transcription.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(transcription.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(transcription.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(transcription.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcription.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(transcription.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(transcription.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(transcription.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(transcription.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(transcription.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(transcription.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(transcription.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(transcription.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
