// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
)

// AnonymousUser is the model entity for the AnonymousUser schema.
type AnonymousUser struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// IP holds the value of the "ip" field.
	IP string `json:"ip,omitempty"`
	// UserAgent holds the value of the "user_agent" field.
	UserAgent string `json:"user_agent,omitempty"`
	// TranscriptionCount holds the value of the "transcription_count" field.
	TranscriptionCount int `json:"transcription_count,omitempty"`
	// Terminal once true: no further increments or transfers.
	IsTransferUsed bool `json:"is_transfer_used,omitempty"`
	// TransferredToUserID holds the value of the "transferred_to_user_id" field.
	TransferredToUserID int `json:"transferred_to_user_id,omitempty"`
	// TransferredAt holds the value of the "transferred_at" field.
	TransferredAt *time.Time `json:"transferred_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnonymousUser) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anonymoususer.FieldIsTransferUsed:
			values[i] = new(sql.NullBool)
		case anonymoususer.FieldID, anonymoususer.FieldTranscriptionCount, anonymoususer.FieldTransferredToUserID:
			values[i] = new(sql.NullInt64)
		case anonymoususer.FieldFingerprint, anonymoususer.FieldIP, anonymoususer.FieldUserAgent:
			values[i] = new(sql.NullString)
		case anonymoususer.FieldTransferredAt, anonymoususer.FieldCreatedAt, anonymoususer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnonymousUser fields.
func (_m *AnonymousUser) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anonymoususer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case anonymoususer.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case anonymoususer.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = value.String
			}
		case anonymoususer.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = value.String
			}
		case anonymoususer.FieldTranscriptionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_count", values[i])
			} else if value.Valid {
				_m.TranscriptionCount = int(value.Int64)
			}
		case anonymoususer.FieldIsTransferUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_transfer_used", values[i])
			} else if value.Valid {
				_m.IsTransferUsed = value.Bool
			}
		case anonymoususer.FieldTransferredToUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transferred_to_user_id", values[i])
			} else if value.Valid {
				_m.TransferredToUserID = int(value.Int64)
			}
		case anonymoususer.FieldTransferredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transferred_at", values[i])
			} else if value.Valid {
				_m.TransferredAt = new(time.Time)
				*_m.TransferredAt = value.Time
			}
		case anonymoususer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case anonymoususer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnonymousUser.
// This includes values selected through modifiers, order, etc.
func (_m *AnonymousUser) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnonymousUser.
// Note that you need to call AnonymousUser.Unwrap() before calling this method if this AnonymousUser
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnonymousUser) Update() *AnonymousUserUpdateOne {
	return NewAnonymousUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnonymousUser entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnonymousUser) Unwrap() *AnonymousUser {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnonymousUser is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnonymousUser) String() string {
	var builder strings.Builder
	builder.WriteString("AnonymousUser(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("ip=")
	builder.WriteString(_m.IP)
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(_m.UserAgent)
	builder.WriteString(", ")
	builder.WriteString("transcription_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptionCount))
	builder.WriteString(", ")
	builder.WriteString("is_transfer_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTransferUsed))
	builder.WriteString(", ")
	builder.WriteString("transferred_to_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransferredToUserID))
	builder.WriteString(", ")
	if v := _m.TransferredAt; v != nil {
		builder.WriteString("transferred_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnonymousUsers is a parsable slice of AnonymousUser.
type AnonymousUsers []*AnonymousUser
