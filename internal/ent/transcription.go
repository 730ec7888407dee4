// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// Transcription is the model entity for the Transcription schema.
type Transcription struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript string `json:"transcript,omitempty"`
	// Error holds the value of the "error" field.
	Error string `json:"error,omitempty"`
	// ShareToken holds the value of the "share_token" field.
	ShareToken *string `json:"share_token,omitempty"`
	// Set for jobs created by anonymous clients.
	Fingerprint string `json:"fingerprint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptionQuery when eager-loading is set.
	Edges               TranscriptionEdges `json:"edges"`
	user_transcriptions *int
	selectValues        sql.SelectValues
}

// TranscriptionEdges holds the relations/edges for other nodes in the graph.
type TranscriptionEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptionEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transcription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcription.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case transcription.FieldID:
			values[i] = new(sql.NullInt64)
		case transcription.FieldSourceURL, transcription.FieldTitle, transcription.FieldLanguage, transcription.FieldStatus, transcription.FieldTranscript, transcription.FieldError, transcription.FieldShareToken, transcription.FieldFingerprint:
			values[i] = new(sql.NullString)
		case transcription.FieldCreatedAt, transcription.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case transcription.ForeignKeys[0]: // user_transcriptions
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transcription fields.
func (_m *Transcription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcription.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case transcription.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case transcription.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case transcription.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = value.Float64
			}
		case transcription.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case transcription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case transcription.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				_m.Transcript = value.String
			}
		case transcription.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case transcription.FieldShareToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field share_token", values[i])
			} else if value.Valid {
				_m.ShareToken = new(string)
				*_m.ShareToken = value.String
			}
		case transcription.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case transcription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case transcription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case transcription.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field user_transcriptions", value)
			} else if value.Valid {
				_m.user_transcriptions = new(int)
				*_m.user_transcriptions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transcription.
// This includes values selected through modifiers, order, etc.
func (_m *Transcription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Transcription entity.
func (_m *Transcription) QueryOwner() *UserQuery {
	return NewTranscriptionClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this Transcription.
// Note that you need to call Transcription.Unwrap() before calling this method if this Transcription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transcription) Update() *TranscriptionUpdateOne {
	return NewTranscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transcription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transcription) Unwrap() *Transcription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transcription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transcription) String() string {
	var builder strings.Builder
	builder.WriteString("Transcription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(_m.Transcript)
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	if v := _m.ShareToken; v != nil {
		builder.WriteString("share_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Transcriptions is a parsable slice of Transcription.
type Transcriptions []*Transcription
