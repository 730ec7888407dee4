// Code generated by ent, DO NOT EDIT.

package anonymoususer

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anonymoususer type in the database.
	Label = "anonymous_user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldTranscriptionCount holds the string denoting the transcription_count field in the database.
	FieldTranscriptionCount = "transcription_count"
	// FieldIsTransferUsed holds the string denoting the is_transfer_used field in the database.
	FieldIsTransferUsed = "is_transfer_used"
	// FieldTransferredToUserID holds the string denoting the transferred_to_user_id field in the database.
	FieldTransferredToUserID = "transferred_to_user_id"
	// FieldTransferredAt holds the string denoting the transferred_at field in the database.
	FieldTransferredAt = "transferred_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the anonymoususer in the database.
	Table = "anonymous_users"
)

// Columns holds all SQL columns for anonymoususer fields.
var Columns = []string{
	FieldID,
	FieldFingerprint,
	FieldIP,
	FieldUserAgent,
	FieldTranscriptionCount,
	FieldIsTransferUsed,
	FieldTransferredToUserID,
	FieldTransferredAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultIP holds the default value on creation for the "ip" field.
	DefaultIP string
	// DefaultUserAgent holds the default value on creation for the "user_agent" field.
	DefaultUserAgent string
	// DefaultTranscriptionCount holds the default value on creation for the "transcription_count" field.
	DefaultTranscriptionCount int
	// TranscriptionCountValidator is a validator for the "transcription_count" field. It is called by the builders before save.
	TranscriptionCountValidator func(int) error
	// DefaultIsTransferUsed holds the default value on creation for the "is_transfer_used" field.
	DefaultIsTransferUsed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnonymousUser queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByTranscriptionCount orders the results by the transcription_count field.
func ByTranscriptionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionCount, opts...).ToFunc()
}

// ByIsTransferUsed orders the results by the is_transfer_used field.
func ByIsTransferUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTransferUsed, opts...).ToFunc()
}

// ByTransferredToUserID orders the results by the transferred_to_user_id field.
func ByTransferredToUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferredToUserID, opts...).ToFunc()
}

// ByTransferredAt orders the results by the transferred_at field.
func ByTransferredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
