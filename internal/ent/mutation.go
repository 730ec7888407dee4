// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/payment"
	"github.com/nolan/scribecloud/internal/ent/predicate"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnonymousUser = "AnonymousUser"
	TypePayment       = "Payment"
	TypeSpendingEntry = "SpendingEntry"
	TypeTranscription = "Transcription"
	TypeUser          = "User"
)

// AnonymousUserMutation represents an operation that mutates the AnonymousUser nodes in the graph.
type AnonymousUserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	fingerprint               *string
	ip                        *string
	user_agent                *string
	transcription_count       *int
	addtranscription_count    *int
	is_transfer_used          *bool
	transferred_to_user_id    *int
	addtransferred_to_user_id *int
	transferred_at            *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*AnonymousUser, error)
	predicates                []predicate.AnonymousUser
}

var _ ent.Mutation = (*AnonymousUserMutation)(nil)

// anonymoususerOption allows management of the mutation configuration using functional options.
type anonymoususerOption func(*AnonymousUserMutation)

// newAnonymousUserMutation creates new mutation for the AnonymousUser entity.
func newAnonymousUserMutation(c config, op Op, opts ...anonymoususerOption) *AnonymousUserMutation {
	m := &AnonymousUserMutation{
		config:        c,
		op:            op,
		typ:           TypeAnonymousUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnonymousUserID sets the ID field of the mutation.
func withAnonymousUserID(id int) anonymoususerOption {
	return func(m *AnonymousUserMutation) {
		var (
			err   error
			once  sync.Once
			value *AnonymousUser
		)
		m.oldValue = func(ctx context.Context) (*AnonymousUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnonymousUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnonymousUser sets the old AnonymousUser of the mutation.
func withAnonymousUser(node *AnonymousUser) anonymoususerOption {
	return func(m *AnonymousUserMutation) {
		m.oldValue = func(context.Context) (*AnonymousUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnonymousUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnonymousUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnonymousUserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnonymousUserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnonymousUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *AnonymousUserMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AnonymousUserMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AnonymousUserMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetIP sets the "ip" field.
func (m *AnonymousUserMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *AnonymousUserMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *AnonymousUserMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[anonymoususer.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *AnonymousUserMutation) IPCleared() bool {
	_, ok := m.clearedFields[anonymoususer.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *AnonymousUserMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, anonymoususer.FieldIP)
}

// SetUserAgent sets the "user_agent" field.
func (m *AnonymousUserMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AnonymousUserMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AnonymousUserMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[anonymoususer.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AnonymousUserMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[anonymoususer.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AnonymousUserMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, anonymoususer.FieldUserAgent)
}

// SetTranscriptionCount sets the "transcription_count" field.
func (m *AnonymousUserMutation) SetTranscriptionCount(i int) {
	m.transcription_count = &i
	m.addtranscription_count = nil
}

// TranscriptionCount returns the value of the "transcription_count" field in the mutation.
func (m *AnonymousUserMutation) TranscriptionCount() (r int, exists bool) {
	v := m.transcription_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionCount returns the old "transcription_count" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldTranscriptionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionCount: %w", err)
	}
	return oldValue.TranscriptionCount, nil
}

// AddTranscriptionCount adds i to the "transcription_count" field.
func (m *AnonymousUserMutation) AddTranscriptionCount(i int) {
	if m.addtranscription_count != nil {
		*m.addtranscription_count += i
	} else {
		m.addtranscription_count = &i
	}
}

// AddedTranscriptionCount returns the value that was added to the "transcription_count" field in this mutation.
func (m *AnonymousUserMutation) AddedTranscriptionCount() (r int, exists bool) {
	v := m.addtranscription_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTranscriptionCount resets all changes to the "transcription_count" field.
func (m *AnonymousUserMutation) ResetTranscriptionCount() {
	m.transcription_count = nil
	m.addtranscription_count = nil
}

// SetIsTransferUsed sets the "is_transfer_used" field.
func (m *AnonymousUserMutation) SetIsTransferUsed(b bool) {
	m.is_transfer_used = &b
}

// IsTransferUsed returns the value of the "is_transfer_used" field in the mutation.
func (m *AnonymousUserMutation) IsTransferUsed() (r bool, exists bool) {
	v := m.is_transfer_used
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTransferUsed returns the old "is_transfer_used" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldIsTransferUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTransferUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTransferUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTransferUsed: %w", err)
	}
	return oldValue.IsTransferUsed, nil
}

// ResetIsTransferUsed resets all changes to the "is_transfer_used" field.
func (m *AnonymousUserMutation) ResetIsTransferUsed() {
	m.is_transfer_used = nil
}

// SetTransferredToUserID sets the "transferred_to_user_id" field.
func (m *AnonymousUserMutation) SetTransferredToUserID(i int) {
	m.transferred_to_user_id = &i
	m.addtransferred_to_user_id = nil
}

// TransferredToUserID returns the value of the "transferred_to_user_id" field in the mutation.
func (m *AnonymousUserMutation) TransferredToUserID() (r int, exists bool) {
	v := m.transferred_to_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferredToUserID returns the old "transferred_to_user_id" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldTransferredToUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferredToUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferredToUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferredToUserID: %w", err)
	}
	return oldValue.TransferredToUserID, nil
}

// AddTransferredToUserID adds i to the "transferred_to_user_id" field.
func (m *AnonymousUserMutation) AddTransferredToUserID(i int) {
	if m.addtransferred_to_user_id != nil {
		*m.addtransferred_to_user_id += i
	} else {
		m.addtransferred_to_user_id = &i
	}
}

// AddedTransferredToUserID returns the value that was added to the "transferred_to_user_id" field in this mutation.
func (m *AnonymousUserMutation) AddedTransferredToUserID() (r int, exists bool) {
	v := m.addtransferred_to_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTransferredToUserID clears the value of the "transferred_to_user_id" field.
func (m *AnonymousUserMutation) ClearTransferredToUserID() {
	m.transferred_to_user_id = nil
	m.addtransferred_to_user_id = nil
	m.clearedFields[anonymoususer.FieldTransferredToUserID] = struct{}{}
}

// TransferredToUserIDCleared returns if the "transferred_to_user_id" field was cleared in this mutation.
func (m *AnonymousUserMutation) TransferredToUserIDCleared() bool {
	_, ok := m.clearedFields[anonymoususer.FieldTransferredToUserID]
	return ok
}

// ResetTransferredToUserID resets all changes to the "transferred_to_user_id" field.
func (m *AnonymousUserMutation) ResetTransferredToUserID() {
	m.transferred_to_user_id = nil
	m.addtransferred_to_user_id = nil
	delete(m.clearedFields, anonymoususer.FieldTransferredToUserID)
}

// SetTransferredAt sets the "transferred_at" field.
func (m *AnonymousUserMutation) SetTransferredAt(t time.Time) {
	m.transferred_at = &t
}

// TransferredAt returns the value of the "transferred_at" field in the mutation.
func (m *AnonymousUserMutation) TransferredAt() (r time.Time, exists bool) {
	v := m.transferred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferredAt returns the old "transferred_at" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldTransferredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferredAt: %w", err)
	}
	return oldValue.TransferredAt, nil
}

// ClearTransferredAt clears the value of the "transferred_at" field.
func (m *AnonymousUserMutation) ClearTransferredAt() {
	m.transferred_at = nil
	m.clearedFields[anonymoususer.FieldTransferredAt] = struct{}{}
}

// TransferredAtCleared returns if the "transferred_at" field was cleared in this mutation.
func (m *AnonymousUserMutation) TransferredAtCleared() bool {
	_, ok := m.clearedFields[anonymoususer.FieldTransferredAt]
	return ok
}

// ResetTransferredAt resets all changes to the "transferred_at" field.
func (m *AnonymousUserMutation) ResetTransferredAt() {
	m.transferred_at = nil
	delete(m.clearedFields, anonymoususer.FieldTransferredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnonymousUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnonymousUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnonymousUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnonymousUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnonymousUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnonymousUser entity.
// If the AnonymousUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonymousUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnonymousUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AnonymousUserMutation builder.
func (m *AnonymousUserMutation) Where(ps ...predicate.AnonymousUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnonymousUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnonymousUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnonymousUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnonymousUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnonymousUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnonymousUser).
func (m *AnonymousUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnonymousUserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.fingerprint != nil {
		fields = append(fields, anonymoususer.FieldFingerprint)
	}
	if m.ip != nil {
		fields = append(fields, anonymoususer.FieldIP)
	}
	if m.user_agent != nil {
		fields = append(fields, anonymoususer.FieldUserAgent)
	}
	if m.transcription_count != nil {
		fields = append(fields, anonymoususer.FieldTranscriptionCount)
	}
	if m.is_transfer_used != nil {
		fields = append(fields, anonymoususer.FieldIsTransferUsed)
	}
	if m.transferred_to_user_id != nil {
		fields = append(fields, anonymoususer.FieldTransferredToUserID)
	}
	if m.transferred_at != nil {
		fields = append(fields, anonymoususer.FieldTransferredAt)
	}
	if m.created_at != nil {
		fields = append(fields, anonymoususer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, anonymoususer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnonymousUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anonymoususer.FieldFingerprint:
		return m.Fingerprint()
	case anonymoususer.FieldIP:
		return m.IP()
	case anonymoususer.FieldUserAgent:
		return m.UserAgent()
	case anonymoususer.FieldTranscriptionCount:
		return m.TranscriptionCount()
	case anonymoususer.FieldIsTransferUsed:
		return m.IsTransferUsed()
	case anonymoususer.FieldTransferredToUserID:
		return m.TransferredToUserID()
	case anonymoususer.FieldTransferredAt:
		return m.TransferredAt()
	case anonymoususer.FieldCreatedAt:
		return m.CreatedAt()
	case anonymoususer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnonymousUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anonymoususer.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case anonymoususer.FieldIP:
		return m.OldIP(ctx)
	case anonymoususer.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case anonymoususer.FieldTranscriptionCount:
		return m.OldTranscriptionCount(ctx)
	case anonymoususer.FieldIsTransferUsed:
		return m.OldIsTransferUsed(ctx)
	case anonymoususer.FieldTransferredToUserID:
		return m.OldTransferredToUserID(ctx)
	case anonymoususer.FieldTransferredAt:
		return m.OldTransferredAt(ctx)
	case anonymoususer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case anonymoususer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnonymousUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonymousUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anonymoususer.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case anonymoususer.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case anonymoususer.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case anonymoususer.FieldTranscriptionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionCount(v)
		return nil
	case anonymoususer.FieldIsTransferUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTransferUsed(v)
		return nil
	case anonymoususer.FieldTransferredToUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferredToUserID(v)
		return nil
	case anonymoususer.FieldTransferredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferredAt(v)
		return nil
	case anonymoususer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case anonymoususer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnonymousUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnonymousUserMutation) AddedFields() []string {
	var fields []string
	if m.addtranscription_count != nil {
		fields = append(fields, anonymoususer.FieldTranscriptionCount)
	}
	if m.addtransferred_to_user_id != nil {
		fields = append(fields, anonymoususer.FieldTransferredToUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnonymousUserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case anonymoususer.FieldTranscriptionCount:
		return m.AddedTranscriptionCount()
	case anonymoususer.FieldTransferredToUserID:
		return m.AddedTransferredToUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonymousUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case anonymoususer.FieldTranscriptionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTranscriptionCount(v)
		return nil
	case anonymoususer.FieldTransferredToUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTransferredToUserID(v)
		return nil
	}
	return fmt.Errorf("unknown AnonymousUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnonymousUserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anonymoususer.FieldIP) {
		fields = append(fields, anonymoususer.FieldIP)
	}
	if m.FieldCleared(anonymoususer.FieldUserAgent) {
		fields = append(fields, anonymoususer.FieldUserAgent)
	}
	if m.FieldCleared(anonymoususer.FieldTransferredToUserID) {
		fields = append(fields, anonymoususer.FieldTransferredToUserID)
	}
	if m.FieldCleared(anonymoususer.FieldTransferredAt) {
		fields = append(fields, anonymoususer.FieldTransferredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnonymousUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnonymousUserMutation) ClearField(name string) error {
	switch name {
	case anonymoususer.FieldIP:
		m.ClearIP()
		return nil
	case anonymoususer.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case anonymoususer.FieldTransferredToUserID:
		m.ClearTransferredToUserID()
		return nil
	case anonymoususer.FieldTransferredAt:
		m.ClearTransferredAt()
		return nil
	}
	return fmt.Errorf("unknown AnonymousUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnonymousUserMutation) ResetField(name string) error {
	switch name {
	case anonymoususer.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case anonymoususer.FieldIP:
		m.ResetIP()
		return nil
	case anonymoususer.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case anonymoususer.FieldTranscriptionCount:
		m.ResetTranscriptionCount()
		return nil
	case anonymoususer.FieldIsTransferUsed:
		m.ResetIsTransferUsed()
		return nil
	case anonymoususer.FieldTransferredToUserID:
		m.ResetTransferredToUserID()
		return nil
	case anonymoususer.FieldTransferredAt:
		m.ResetTransferredAt()
		return nil
	case anonymoususer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case anonymoususer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnonymousUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnonymousUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnonymousUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnonymousUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnonymousUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnonymousUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnonymousUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnonymousUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnonymousUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnonymousUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnonymousUser edge %s", name)
}

// PaymentMutation represents an operation that mutates the Payment nodes in the graph.
type PaymentMutation struct {
	config
	op                Op
	typ               string
	id                *int
	stripe_session_id *string
	amount_cents      *int64
	addamount_cents   *int64
	currency          *string
	tokens_added      *int
	addtokens_added   *int
	status            *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	owner             *int
	clearedowner      bool
	done              bool
	oldValue          func(context.Context) (*Payment, error)
	predicates        []predicate.Payment
}

var _ ent.Mutation = (*PaymentMutation)(nil)

// paymentOption allows management of the mutation configuration using functional options.
type paymentOption func(*PaymentMutation)

// newPaymentMutation creates new mutation for the Payment entity.
func newPaymentMutation(c config, op Op, opts ...paymentOption) *PaymentMutation {
	m := &PaymentMutation{
		config:        c,
		op:            op,
		typ:           TypePayment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentID sets the ID field of the mutation.
func withPaymentID(id int) paymentOption {
	return func(m *PaymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Payment
		)
		m.oldValue = func(ctx context.Context) (*Payment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Payment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayment sets the old Payment of the mutation.
func withPayment(node *Payment) paymentOption {
	return func(m *PaymentMutation) {
		m.oldValue = func(context.Context) (*Payment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Payment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (m *PaymentMutation) SetStripeSessionID(s string) {
	m.stripe_session_id = &s
}

// StripeSessionID returns the value of the "stripe_session_id" field in the mutation.
func (m *PaymentMutation) StripeSessionID() (r string, exists bool) {
	v := m.stripe_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSessionID returns the old "stripe_session_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldStripeSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSessionID: %w", err)
	}
	return oldValue.StripeSessionID, nil
}

// ResetStripeSessionID resets all changes to the "stripe_session_id" field.
func (m *PaymentMutation) ResetStripeSessionID() {
	m.stripe_session_id = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *PaymentMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *PaymentMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *PaymentMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *PaymentMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *PaymentMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *PaymentMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PaymentMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PaymentMutation) ResetCurrency() {
	m.currency = nil
}

// SetTokensAdded sets the "tokens_added" field.
func (m *PaymentMutation) SetTokensAdded(i int) {
	m.tokens_added = &i
	m.addtokens_added = nil
}

// TokensAdded returns the value of the "tokens_added" field in the mutation.
func (m *PaymentMutation) TokensAdded() (r int, exists bool) {
	v := m.tokens_added
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensAdded returns the old "tokens_added" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldTokensAdded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensAdded: %w", err)
	}
	return oldValue.TokensAdded, nil
}

// AddTokensAdded adds i to the "tokens_added" field.
func (m *PaymentMutation) AddTokensAdded(i int) {
	if m.addtokens_added != nil {
		*m.addtokens_added += i
	} else {
		m.addtokens_added = &i
	}
}

// AddedTokensAdded returns the value that was added to the "tokens_added" field in this mutation.
func (m *PaymentMutation) AddedTokensAdded() (r int, exists bool) {
	v := m.addtokens_added
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensAdded resets all changes to the "tokens_added" field.
func (m *PaymentMutation) ResetTokensAdded() {
	m.tokens_added = nil
	m.addtokens_added = nil
}

// SetStatus sets the "status" field.
func (m *PaymentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *PaymentMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *PaymentMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *PaymentMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *PaymentMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *PaymentMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *PaymentMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the PaymentMutation builder.
func (m *PaymentMutation) Where(ps ...predicate.Payment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Payment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Payment).
func (m *PaymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stripe_session_id != nil {
		fields = append(fields, payment.FieldStripeSessionID)
	}
	if m.amount_cents != nil {
		fields = append(fields, payment.FieldAmountCents)
	}
	if m.currency != nil {
		fields = append(fields, payment.FieldCurrency)
	}
	if m.tokens_added != nil {
		fields = append(fields, payment.FieldTokensAdded)
	}
	if m.status != nil {
		fields = append(fields, payment.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, payment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldStripeSessionID:
		return m.StripeSessionID()
	case payment.FieldAmountCents:
		return m.AmountCents()
	case payment.FieldCurrency:
		return m.Currency()
	case payment.FieldTokensAdded:
		return m.TokensAdded()
	case payment.FieldStatus:
		return m.Status()
	case payment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payment.FieldStripeSessionID:
		return m.OldStripeSessionID(ctx)
	case payment.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case payment.FieldCurrency:
		return m.OldCurrency(ctx)
	case payment.FieldTokensAdded:
		return m.OldTokensAdded(ctx)
	case payment.FieldStatus:
		return m.OldStatus(ctx)
	case payment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Payment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payment.FieldStripeSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSessionID(v)
		return nil
	case payment.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case payment.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case payment.FieldTokensAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensAdded(v)
		return nil
	case payment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case payment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, payment.FieldAmountCents)
	}
	if m.addtokens_added != nil {
		fields = append(fields, payment.FieldTokensAdded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldAmountCents:
		return m.AddedAmountCents()
	case payment.FieldTokensAdded:
		return m.AddedTokensAdded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payment.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	case payment.FieldTokensAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensAdded(v)
		return nil
	}
	return fmt.Errorf("unknown Payment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Payment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentMutation) ResetField(name string) error {
	switch name {
	case payment.FieldStripeSessionID:
		m.ResetStripeSessionID()
		return nil
	case payment.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case payment.FieldCurrency:
		m.ResetCurrency()
		return nil
	case payment.FieldTokensAdded:
		m.ResetTokensAdded()
		return nil
	case payment.FieldStatus:
		m.ResetStatus()
		return nil
	case payment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, payment.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payment.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, payment.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentMutation) EdgeCleared(name string) bool {
	switch name {
	case payment.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentMutation) ClearEdge(name string) error {
	switch name {
	case payment.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Payment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentMutation) ResetEdge(name string) error {
	switch name {
	case payment.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Payment edge %s", name)
}

// SpendingEntryMutation represents an operation that mutates the SpendingEntry nodes in the graph.
type SpendingEntryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	action            *string
	tokens_changed    *int
	addtokens_changed *int
	balance_after     *int
	addbalance_after  *int
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	owner             *int
	clearedowner      bool
	done              bool
	oldValue          func(context.Context) (*SpendingEntry, error)
	predicates        []predicate.SpendingEntry
}

var _ ent.Mutation = (*SpendingEntryMutation)(nil)

// spendingentryOption allows management of the mutation configuration using functional options.
type spendingentryOption func(*SpendingEntryMutation)

// newSpendingEntryMutation creates new mutation for the SpendingEntry entity.
func newSpendingEntryMutation(c config, op Op, opts ...spendingentryOption) *SpendingEntryMutation {
	m := &SpendingEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSpendingEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpendingEntryID sets the ID field of the mutation.
func withSpendingEntryID(id int) spendingentryOption {
	return func(m *SpendingEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SpendingEntry
		)
		m.oldValue = func(ctx context.Context) (*SpendingEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpendingEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpendingEntry sets the old SpendingEntry of the mutation.
func withSpendingEntry(node *SpendingEntry) spendingentryOption {
	return func(m *SpendingEntryMutation) {
		m.oldValue = func(context.Context) (*SpendingEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpendingEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpendingEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpendingEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpendingEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpendingEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAction sets the "action" field.
func (m *SpendingEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SpendingEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SpendingEntry entity.
// If the SpendingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpendingEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SpendingEntryMutation) ResetAction() {
	m.action = nil
}

// SetTokensChanged sets the "tokens_changed" field.
func (m *SpendingEntryMutation) SetTokensChanged(i int) {
	m.tokens_changed = &i
	m.addtokens_changed = nil
}

// TokensChanged returns the value of the "tokens_changed" field in the mutation.
func (m *SpendingEntryMutation) TokensChanged() (r int, exists bool) {
	v := m.tokens_changed
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensChanged returns the old "tokens_changed" field's value of the SpendingEntry entity.
// If the SpendingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpendingEntryMutation) OldTokensChanged(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensChanged: %w", err)
	}
	return oldValue.TokensChanged, nil
}

// AddTokensChanged adds i to the "tokens_changed" field.
func (m *SpendingEntryMutation) AddTokensChanged(i int) {
	if m.addtokens_changed != nil {
		*m.addtokens_changed += i
	} else {
		m.addtokens_changed = &i
	}
}

// AddedTokensChanged returns the value that was added to the "tokens_changed" field in this mutation.
func (m *SpendingEntryMutation) AddedTokensChanged() (r int, exists bool) {
	v := m.addtokens_changed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensChanged resets all changes to the "tokens_changed" field.
func (m *SpendingEntryMutation) ResetTokensChanged() {
	m.tokens_changed = nil
	m.addtokens_changed = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *SpendingEntryMutation) SetBalanceAfter(i int) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *SpendingEntryMutation) BalanceAfter() (r int, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the SpendingEntry entity.
// If the SpendingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpendingEntryMutation) OldBalanceAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *SpendingEntryMutation) AddBalanceAfter(i int) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *SpendingEntryMutation) AddedBalanceAfter() (r int, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *SpendingEntryMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// SetDescription sets the "description" field.
func (m *SpendingEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SpendingEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SpendingEntry entity.
// If the SpendingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpendingEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SpendingEntryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[spendingentry.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SpendingEntryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[spendingentry.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SpendingEntryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, spendingentry.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *SpendingEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpendingEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpendingEntry entity.
// If the SpendingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpendingEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpendingEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *SpendingEntryMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *SpendingEntryMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *SpendingEntryMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *SpendingEntryMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *SpendingEntryMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *SpendingEntryMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the SpendingEntryMutation builder.
func (m *SpendingEntryMutation) Where(ps ...predicate.SpendingEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpendingEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpendingEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpendingEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpendingEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpendingEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpendingEntry).
func (m *SpendingEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpendingEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.action != nil {
		fields = append(fields, spendingentry.FieldAction)
	}
	if m.tokens_changed != nil {
		fields = append(fields, spendingentry.FieldTokensChanged)
	}
	if m.balance_after != nil {
		fields = append(fields, spendingentry.FieldBalanceAfter)
	}
	if m.description != nil {
		fields = append(fields, spendingentry.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, spendingentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpendingEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spendingentry.FieldAction:
		return m.Action()
	case spendingentry.FieldTokensChanged:
		return m.TokensChanged()
	case spendingentry.FieldBalanceAfter:
		return m.BalanceAfter()
	case spendingentry.FieldDescription:
		return m.Description()
	case spendingentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpendingEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spendingentry.FieldAction:
		return m.OldAction(ctx)
	case spendingentry.FieldTokensChanged:
		return m.OldTokensChanged(ctx)
	case spendingentry.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case spendingentry.FieldDescription:
		return m.OldDescription(ctx)
	case spendingentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpendingEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpendingEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spendingentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case spendingentry.FieldTokensChanged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensChanged(v)
		return nil
	case spendingentry.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case spendingentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case spendingentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpendingEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_changed != nil {
		fields = append(fields, spendingentry.FieldTokensChanged)
	}
	if m.addbalance_after != nil {
		fields = append(fields, spendingentry.FieldBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpendingEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case spendingentry.FieldTokensChanged:
		return m.AddedTokensChanged()
	case spendingentry.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpendingEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case spendingentry.FieldTokensChanged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensChanged(v)
		return nil
	case spendingentry.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpendingEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(spendingentry.FieldDescription) {
		fields = append(fields, spendingentry.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpendingEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpendingEntryMutation) ClearField(name string) error {
	switch name {
	case spendingentry.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpendingEntryMutation) ResetField(name string) error {
	switch name {
	case spendingentry.FieldAction:
		m.ResetAction()
		return nil
	case spendingentry.FieldTokensChanged:
		m.ResetTokensChanged()
		return nil
	case spendingentry.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case spendingentry.FieldDescription:
		m.ResetDescription()
		return nil
	case spendingentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpendingEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, spendingentry.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpendingEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case spendingentry.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpendingEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpendingEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpendingEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, spendingentry.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpendingEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case spendingentry.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpendingEntryMutation) ClearEdge(name string) error {
	switch name {
	case spendingentry.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpendingEntryMutation) ResetEdge(name string) error {
	switch name {
	case spendingentry.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown SpendingEntry edge %s", name)
}

// TranscriptionMutation represents an operation that mutates the Transcription nodes in the graph.
type TranscriptionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	source_url          *string
	title               *string
	duration_seconds    *float64
	addduration_seconds *float64
	language            *string
	status              *string
	transcript          *string
	error               *string
	share_token         *string
	fingerprint         *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	owner               *int
	clearedowner        bool
	done                bool
	oldValue            func(context.Context) (*Transcription, error)
	predicates          []predicate.Transcription
}

var _ ent.Mutation = (*TranscriptionMutation)(nil)

// transcriptionOption allows management of the mutation configuration using functional options.
type transcriptionOption func(*TranscriptionMutation)

// newTranscriptionMutation creates new mutation for the Transcription entity.
func newTranscriptionMutation(c config, op Op, opts ...transcriptionOption) *TranscriptionMutation {
	m := &TranscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptionID sets the ID field of the mutation.
func withTranscriptionID(id int) transcriptionOption {
	return func(m *TranscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcription
		)
		m.oldValue = func(ctx context.Context) (*Transcription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscription sets the old Transcription of the mutation.
func withTranscription(node *Transcription) transcriptionOption {
	return func(m *TranscriptionMutation) {
		m.oldValue = func(context.Context) (*Transcription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceURL sets the "source_url" field.
func (m *TranscriptionMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TranscriptionMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TranscriptionMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetTitle sets the "title" field.
func (m *TranscriptionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TranscriptionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TranscriptionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[transcription.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TranscriptionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[transcription.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TranscriptionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, transcription.FieldTitle)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *TranscriptionMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *TranscriptionMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *TranscriptionMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *TranscriptionMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *TranscriptionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetLanguage sets the "language" field.
func (m *TranscriptionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TranscriptionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *TranscriptionMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[transcription.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *TranscriptionMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[transcription.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *TranscriptionMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, transcription.FieldLanguage)
}

// SetStatus sets the "status" field.
func (m *TranscriptionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TranscriptionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TranscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetTranscript sets the "transcript" field.
func (m *TranscriptionMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *TranscriptionMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldTranscript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *TranscriptionMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[transcription.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *TranscriptionMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[transcription.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *TranscriptionMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, transcription.FieldTranscript)
}

// SetError sets the "error" field.
func (m *TranscriptionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TranscriptionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TranscriptionMutation) ClearError() {
	m.error = nil
	m.clearedFields[transcription.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TranscriptionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[transcription.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TranscriptionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, transcription.FieldError)
}

// SetShareToken sets the "share_token" field.
func (m *TranscriptionMutation) SetShareToken(s string) {
	m.share_token = &s
}

// ShareToken returns the value of the "share_token" field in the mutation.
func (m *TranscriptionMutation) ShareToken() (r string, exists bool) {
	v := m.share_token
	if v == nil {
		return
	}
	return *v, true
}

// OldShareToken returns the old "share_token" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldShareToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareToken: %w", err)
	}
	return oldValue.ShareToken, nil
}

// ClearShareToken clears the value of the "share_token" field.
func (m *TranscriptionMutation) ClearShareToken() {
	m.share_token = nil
	m.clearedFields[transcription.FieldShareToken] = struct{}{}
}

// ShareTokenCleared returns if the "share_token" field was cleared in this mutation.
func (m *TranscriptionMutation) ShareTokenCleared() bool {
	_, ok := m.clearedFields[transcription.FieldShareToken]
	return ok
}

// ResetShareToken resets all changes to the "share_token" field.
func (m *TranscriptionMutation) ResetShareToken() {
	m.share_token = nil
	delete(m.clearedFields, transcription.FieldShareToken)
}

// SetFingerprint sets the "fingerprint" field.
func (m *TranscriptionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *TranscriptionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (m *TranscriptionMutation) ClearFingerprint() {
	m.fingerprint = nil
	m.clearedFields[transcription.FieldFingerprint] = struct{}{}
}

// FingerprintCleared returns if the "fingerprint" field was cleared in this mutation.
func (m *TranscriptionMutation) FingerprintCleared() bool {
	_, ok := m.clearedFields[transcription.FieldFingerprint]
	return ok
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *TranscriptionMutation) ResetFingerprint() {
	m.fingerprint = nil
	delete(m.clearedFields, transcription.FieldFingerprint)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *TranscriptionMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *TranscriptionMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *TranscriptionMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *TranscriptionMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *TranscriptionMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *TranscriptionMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the TranscriptionMutation builder.
func (m *TranscriptionMutation) Where(ps ...predicate.Transcription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcription).
func (m *TranscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.source_url != nil {
		fields = append(fields, transcription.FieldSourceURL)
	}
	if m.title != nil {
		fields = append(fields, transcription.FieldTitle)
	}
	if m.duration_seconds != nil {
		fields = append(fields, transcription.FieldDurationSeconds)
	}
	if m.language != nil {
		fields = append(fields, transcription.FieldLanguage)
	}
	if m.status != nil {
		fields = append(fields, transcription.FieldStatus)
	}
	if m.transcript != nil {
		fields = append(fields, transcription.FieldTranscript)
	}
	if m.error != nil {
		fields = append(fields, transcription.FieldError)
	}
	if m.share_token != nil {
		fields = append(fields, transcription.FieldShareToken)
	}
	if m.fingerprint != nil {
		fields = append(fields, transcription.FieldFingerprint)
	}
	if m.created_at != nil {
		fields = append(fields, transcription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transcription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcription.FieldSourceURL:
		return m.SourceURL()
	case transcription.FieldTitle:
		return m.Title()
	case transcription.FieldDurationSeconds:
		return m.DurationSeconds()
	case transcription.FieldLanguage:
		return m.Language()
	case transcription.FieldStatus:
		return m.Status()
	case transcription.FieldTranscript:
		return m.Transcript()
	case transcription.FieldError:
		return m.Error()
	case transcription.FieldShareToken:
		return m.ShareToken()
	case transcription.FieldFingerprint:
		return m.Fingerprint()
	case transcription.FieldCreatedAt:
		return m.CreatedAt()
	case transcription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcription.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case transcription.FieldTitle:
		return m.OldTitle(ctx)
	case transcription.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case transcription.FieldLanguage:
		return m.OldLanguage(ctx)
	case transcription.FieldStatus:
		return m.OldStatus(ctx)
	case transcription.FieldTranscript:
		return m.OldTranscript(ctx)
	case transcription.FieldError:
		return m.OldError(ctx)
	case transcription.FieldShareToken:
		return m.OldShareToken(ctx)
	case transcription.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case transcription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transcription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcription.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case transcription.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case transcription.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case transcription.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case transcription.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transcription.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case transcription.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case transcription.FieldShareToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareToken(v)
		return nil
	case transcription.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case transcription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transcription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, transcription.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcription.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcription.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Transcription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcription.FieldTitle) {
		fields = append(fields, transcription.FieldTitle)
	}
	if m.FieldCleared(transcription.FieldLanguage) {
		fields = append(fields, transcription.FieldLanguage)
	}
	if m.FieldCleared(transcription.FieldTranscript) {
		fields = append(fields, transcription.FieldTranscript)
	}
	if m.FieldCleared(transcription.FieldError) {
		fields = append(fields, transcription.FieldError)
	}
	if m.FieldCleared(transcription.FieldShareToken) {
		fields = append(fields, transcription.FieldShareToken)
	}
	if m.FieldCleared(transcription.FieldFingerprint) {
		fields = append(fields, transcription.FieldFingerprint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptionMutation) ClearField(name string) error {
	switch name {
	case transcription.FieldTitle:
		m.ClearTitle()
		return nil
	case transcription.FieldLanguage:
		m.ClearLanguage()
		return nil
	case transcription.FieldTranscript:
		m.ClearTranscript()
		return nil
	case transcription.FieldError:
		m.ClearError()
		return nil
	case transcription.FieldShareToken:
		m.ClearShareToken()
		return nil
	case transcription.FieldFingerprint:
		m.ClearFingerprint()
		return nil
	}
	return fmt.Errorf("unknown Transcription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptionMutation) ResetField(name string) error {
	switch name {
	case transcription.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case transcription.FieldTitle:
		m.ResetTitle()
		return nil
	case transcription.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case transcription.FieldLanguage:
		m.ResetLanguage()
		return nil
	case transcription.FieldStatus:
		m.ResetStatus()
		return nil
	case transcription.FieldTranscript:
		m.ResetTranscript()
		return nil
	case transcription.FieldError:
		m.ResetError()
		return nil
	case transcription.FieldShareToken:
		m.ResetShareToken()
		return nil
	case transcription.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case transcription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transcription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, transcription.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcription.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, transcription.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case transcription.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptionMutation) ClearEdge(name string) error {
	switch name {
	case transcription.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Transcription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptionMutation) ResetEdge(name string) error {
	switch name {
	case transcription.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Transcription edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	email                   *string
	name                    *string
	tokens                  *int
	addtokens               *int
	is_admin                *bool
	is_active               *bool
	stripe_customer_id      *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	transcriptions          map[int]struct{}
	removedtranscriptions   map[int]struct{}
	clearedtranscriptions   bool
	spending_entries        map[int]struct{}
	removedspending_entries map[int]struct{}
	clearedspending_entries bool
	payments                map[int]struct{}
	removedpayments         map[int]struct{}
	clearedpayments         bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetTokens sets the "tokens" field.
func (m *UserMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *UserMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *UserMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *UserMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *UserMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *UserMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *UserMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *UserMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[user.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *UserMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[user.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *UserMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, user.FieldStripeCustomerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTranscriptionIDs adds the "transcriptions" edge to the Transcription entity by ids.
func (m *UserMutation) AddTranscriptionIDs(ids ...int) {
	if m.transcriptions == nil {
		m.transcriptions = make(map[int]struct{})
	}
	for i := range ids {
		m.transcriptions[ids[i]] = struct{}{}
	}
}

// ClearTranscriptions clears the "transcriptions" edge to the Transcription entity.
func (m *UserMutation) ClearTranscriptions() {
	m.clearedtranscriptions = true
}

// TranscriptionsCleared reports if the "transcriptions" edge to the Transcription entity was cleared.
func (m *UserMutation) TranscriptionsCleared() bool {
	return m.clearedtranscriptions
}

// RemoveTranscriptionIDs removes the "transcriptions" edge to the Transcription entity by IDs.
func (m *UserMutation) RemoveTranscriptionIDs(ids ...int) {
	if m.removedtranscriptions == nil {
		m.removedtranscriptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transcriptions, ids[i])
		m.removedtranscriptions[ids[i]] = struct{}{}
	}
}

// RemovedTranscriptions returns the removed IDs of the "transcriptions" edge to the Transcription entity.
func (m *UserMutation) RemovedTranscriptionsIDs() (ids []int) {
	for id := range m.removedtranscriptions {
		ids = append(ids, id)
	}
	return
}

// TranscriptionsIDs returns the "transcriptions" edge IDs in the mutation.
func (m *UserMutation) TranscriptionsIDs() (ids []int) {
	for id := range m.transcriptions {
		ids = append(ids, id)
	}
	return
}

// ResetTranscriptions resets all changes to the "transcriptions" edge.
func (m *UserMutation) ResetTranscriptions() {
	m.transcriptions = nil
	m.clearedtranscriptions = false
	m.removedtranscriptions = nil
}

// AddSpendingEntryIDs adds the "spending_entries" edge to the SpendingEntry entity by ids.
func (m *UserMutation) AddSpendingEntryIDs(ids ...int) {
	if m.spending_entries == nil {
		m.spending_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.spending_entries[ids[i]] = struct{}{}
	}
}

// ClearSpendingEntries clears the "spending_entries" edge to the SpendingEntry entity.
func (m *UserMutation) ClearSpendingEntries() {
	m.clearedspending_entries = true
}

// SpendingEntriesCleared reports if the "spending_entries" edge to the SpendingEntry entity was cleared.
func (m *UserMutation) SpendingEntriesCleared() bool {
	return m.clearedspending_entries
}

// RemoveSpendingEntryIDs removes the "spending_entries" edge to the SpendingEntry entity by IDs.
func (m *UserMutation) RemoveSpendingEntryIDs(ids ...int) {
	if m.removedspending_entries == nil {
		m.removedspending_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.spending_entries, ids[i])
		m.removedspending_entries[ids[i]] = struct{}{}
	}
}

// RemovedSpendingEntries returns the removed IDs of the "spending_entries" edge to the SpendingEntry entity.
func (m *UserMutation) RemovedSpendingEntriesIDs() (ids []int) {
	for id := range m.removedspending_entries {
		ids = append(ids, id)
	}
	return
}

// SpendingEntriesIDs returns the "spending_entries" edge IDs in the mutation.
func (m *UserMutation) SpendingEntriesIDs() (ids []int) {
	for id := range m.spending_entries {
		ids = append(ids, id)
	}
	return
}

// ResetSpendingEntries resets all changes to the "spending_entries" edge.
func (m *UserMutation) ResetSpendingEntries() {
	m.spending_entries = nil
	m.clearedspending_entries = false
	m.removedspending_entries = nil
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by ids.
func (m *UserMutation) AddPaymentIDs(ids ...int) {
	if m.payments == nil {
		m.payments = make(map[int]struct{})
	}
	for i := range ids {
		m.payments[ids[i]] = struct{}{}
	}
}

// ClearPayments clears the "payments" edge to the Payment entity.
func (m *UserMutation) ClearPayments() {
	m.clearedpayments = true
}

// PaymentsCleared reports if the "payments" edge to the Payment entity was cleared.
func (m *UserMutation) PaymentsCleared() bool {
	return m.clearedpayments
}

// RemovePaymentIDs removes the "payments" edge to the Payment entity by IDs.
func (m *UserMutation) RemovePaymentIDs(ids ...int) {
	if m.removedpayments == nil {
		m.removedpayments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.payments, ids[i])
		m.removedpayments[ids[i]] = struct{}{}
	}
}

// RemovedPayments returns the removed IDs of the "payments" edge to the Payment entity.
func (m *UserMutation) RemovedPaymentsIDs() (ids []int) {
	for id := range m.removedpayments {
		ids = append(ids, id)
	}
	return
}

// PaymentsIDs returns the "payments" edge IDs in the mutation.
func (m *UserMutation) PaymentsIDs() (ids []int) {
	for id := range m.payments {
		ids = append(ids, id)
	}
	return
}

// ResetPayments resets all changes to the "payments" edge.
func (m *UserMutation) ResetPayments() {
	m.payments = nil
	m.clearedpayments = false
	m.removedpayments = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.tokens != nil {
		fields = append(fields, user.FieldTokens)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, user.FieldStripeCustomerID)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldTokens:
		return m.Tokens()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldTokens:
		return m.OldTokens(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addtokens != nil {
		fields = append(fields, user.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	if m.FieldCleared(user.FieldStripeCustomerID) {
		fields = append(fields, user.FieldStripeCustomerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldName:
		m.ClearName()
		return nil
	case user.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldTokens:
		m.ResetTokens()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.transcriptions != nil {
		edges = append(edges, user.EdgeTranscriptions)
	}
	if m.spending_entries != nil {
		edges = append(edges, user.EdgeSpendingEntries)
	}
	if m.payments != nil {
		edges = append(edges, user.EdgePayments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTranscriptions:
		ids := make([]ent.Value, 0, len(m.transcriptions))
		for id := range m.transcriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSpendingEntries:
		ids := make([]ent.Value, 0, len(m.spending_entries))
		for id := range m.spending_entries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePayments:
		ids := make([]ent.Value, 0, len(m.payments))
		for id := range m.payments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtranscriptions != nil {
		edges = append(edges, user.EdgeTranscriptions)
	}
	if m.removedspending_entries != nil {
		edges = append(edges, user.EdgeSpendingEntries)
	}
	if m.removedpayments != nil {
		edges = append(edges, user.EdgePayments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTranscriptions:
		ids := make([]ent.Value, 0, len(m.removedtranscriptions))
		for id := range m.removedtranscriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSpendingEntries:
		ids := make([]ent.Value, 0, len(m.removedspending_entries))
		for id := range m.removedspending_entries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePayments:
		ids := make([]ent.Value, 0, len(m.removedpayments))
		for id := range m.removedpayments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtranscriptions {
		edges = append(edges, user.EdgeTranscriptions)
	}
	if m.clearedspending_entries {
		edges = append(edges, user.EdgeSpendingEntries)
	}
	if m.clearedpayments {
		edges = append(edges, user.EdgePayments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeTranscriptions:
		return m.clearedtranscriptions
	case user.EdgeSpendingEntries:
		return m.clearedspending_entries
	case user.EdgePayments:
		return m.clearedpayments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeTranscriptions:
		m.ResetTranscriptions()
		return nil
	case user.EdgeSpendingEntries:
		m.ResetSpendingEntries()
		return nil
	case user.EdgePayments:
		m.ResetPayments()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
