// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// SpendingEntry is the model entity for the SpendingEntry schema.
type SpendingEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// TokensChanged holds the value of the "tokens_changed" field.
	TokensChanged int `json:"tokens_changed,omitempty"`
	// BalanceAfter holds the value of the "balance_after" field.
	BalanceAfter int `json:"balance_after,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpendingEntryQuery when eager-loading is set.
	Edges                 SpendingEntryEdges `json:"edges"`
	user_spending_entries *int
	selectValues          sql.SelectValues
}

// SpendingEntryEdges holds the relations/edges for other nodes in the graph.
type SpendingEntryEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpendingEntryEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpendingEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case spendingentry.FieldID, spendingentry.FieldTokensChanged, spendingentry.FieldBalanceAfter:
			values[i] = new(sql.NullInt64)
		case spendingentry.FieldAction, spendingentry.FieldDescription:
			values[i] = new(sql.NullString)
		case spendingentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case spendingentry.ForeignKeys[0]: // user_spending_entries
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpendingEntry fields.
func (_m *SpendingEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case spendingentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case spendingentry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case spendingentry.FieldTokensChanged:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_changed", values[i])
			} else if value.Valid {
				_m.TokensChanged = int(value.Int64)
			}
		case spendingentry.FieldBalanceAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_after", values[i])
			} else if value.Valid {
				_m.BalanceAfter = int(value.Int64)
			}
		case spendingentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case spendingentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case spendingentry.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field user_spending_entries", value)
			} else if value.Valid {
				_m.user_spending_entries = new(int)
				*_m.user_spending_entries = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpendingEntry.
// This includes values selected through modifiers, order, etc.
func (_m *SpendingEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the SpendingEntry entity.
func (_m *SpendingEntry) QueryOwner() *UserQuery {
	return NewSpendingEntryClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this SpendingEntry.
// Note that you need to call SpendingEntry.Unwrap() before calling this method if this SpendingEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpendingEntry) Update() *SpendingEntryUpdateOne {
	return NewSpendingEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpendingEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpendingEntry) Unwrap() *SpendingEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpendingEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpendingEntry) String() string {
	var builder strings.Builder
	builder.WriteString("SpendingEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("tokens_changed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensChanged))
	builder.WriteString(", ")
	builder.WriteString("balance_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceAfter))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpendingEntries is a parsable slice of SpendingEntry.
type SpendingEntries []*SpendingEntry
