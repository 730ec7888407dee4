// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnonymousUser is the predicate function for anonymoususer builders.
type AnonymousUser func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// SpendingEntry is the predicate function for spendingentry builders.
type SpendingEntry func(*sql.Selector)

// Transcription is the predicate function for transcription builders.
type Transcription func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
