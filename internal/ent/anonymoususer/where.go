// Code generated by ent, DO NOT EDIT.

package anonymoususer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nolan/scribecloud/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldID, id))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldFingerprint, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldIP, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldUserAgent, v))
}

// TranscriptionCount applies equality check predicate on the "transcription_count" field. It's identical to TranscriptionCountEQ.
func TranscriptionCount(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTranscriptionCount, v))
}

// IsTransferUsed applies equality check predicate on the "is_transfer_used" field. It's identical to IsTransferUsedEQ.
func IsTransferUsed(v bool) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldIsTransferUsed, v))
}

// TransferredToUserID applies equality check predicate on the "transferred_to_user_id" field. It's identical to TransferredToUserIDEQ.
func TransferredToUserID(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTransferredToUserID, v))
}

// TransferredAt applies equality check predicate on the "transferred_at" field. It's identical to TransferredAtEQ.
func TransferredAt(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTransferredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldUpdatedAt, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContainsFold(FieldFingerprint, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContainsFold(FieldIP, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldContainsFold(FieldUserAgent, v))
}

// TranscriptionCountEQ applies the EQ predicate on the "transcription_count" field.
func TranscriptionCountEQ(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTranscriptionCount, v))
}

// TranscriptionCountNEQ applies the NEQ predicate on the "transcription_count" field.
func TranscriptionCountNEQ(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldTranscriptionCount, v))
}

// TranscriptionCountIn applies the In predicate on the "transcription_count" field.
func TranscriptionCountIn(vs ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldTranscriptionCount, vs...))
}

// TranscriptionCountNotIn applies the NotIn predicate on the "transcription_count" field.
func TranscriptionCountNotIn(vs ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldTranscriptionCount, vs...))
}

// TranscriptionCountGT applies the GT predicate on the "transcription_count" field.
func TranscriptionCountGT(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldTranscriptionCount, v))
}

// TranscriptionCountGTE applies the GTE predicate on the "transcription_count" field.
func TranscriptionCountGTE(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldTranscriptionCount, v))
}

// TranscriptionCountLT applies the LT predicate on the "transcription_count" field.
func TranscriptionCountLT(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldTranscriptionCount, v))
}

// TranscriptionCountLTE applies the LTE predicate on the "transcription_count" field.
func TranscriptionCountLTE(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldTranscriptionCount, v))
}

// IsTransferUsedEQ applies the EQ predicate on the "is_transfer_used" field.
func IsTransferUsedEQ(v bool) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldIsTransferUsed, v))
}

// IsTransferUsedNEQ applies the NEQ predicate on the "is_transfer_used" field.
func IsTransferUsedNEQ(v bool) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldIsTransferUsed, v))
}

// TransferredToUserIDEQ applies the EQ predicate on the "transferred_to_user_id" field.
func TransferredToUserIDEQ(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTransferredToUserID, v))
}

// TransferredToUserIDNEQ applies the NEQ predicate on the "transferred_to_user_id" field.
func TransferredToUserIDNEQ(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldTransferredToUserID, v))
}

// TransferredToUserIDIn applies the In predicate on the "transferred_to_user_id" field.
func TransferredToUserIDIn(vs ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldTransferredToUserID, vs...))
}

// TransferredToUserIDNotIn applies the NotIn predicate on the "transferred_to_user_id" field.
func TransferredToUserIDNotIn(vs ...int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldTransferredToUserID, vs...))
}

// TransferredToUserIDGT applies the GT predicate on the "transferred_to_user_id" field.
func TransferredToUserIDGT(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldTransferredToUserID, v))
}

// TransferredToUserIDGTE applies the GTE predicate on the "transferred_to_user_id" field.
func TransferredToUserIDGTE(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldTransferredToUserID, v))
}

// TransferredToUserIDLT applies the LT predicate on the "transferred_to_user_id" field.
func TransferredToUserIDLT(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldTransferredToUserID, v))
}

// TransferredToUserIDLTE applies the LTE predicate on the "transferred_to_user_id" field.
func TransferredToUserIDLTE(v int) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldTransferredToUserID, v))
}

// TransferredToUserIDIsNil applies the IsNil predicate on the "transferred_to_user_id" field.
func TransferredToUserIDIsNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIsNull(FieldTransferredToUserID))
}

// TransferredToUserIDNotNil applies the NotNil predicate on the "transferred_to_user_id" field.
func TransferredToUserIDNotNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotNull(FieldTransferredToUserID))
}

// TransferredAtEQ applies the EQ predicate on the "transferred_at" field.
func TransferredAtEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldTransferredAt, v))
}

// TransferredAtNEQ applies the NEQ predicate on the "transferred_at" field.
func TransferredAtNEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldTransferredAt, v))
}

// TransferredAtIn applies the In predicate on the "transferred_at" field.
func TransferredAtIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldTransferredAt, vs...))
}

// TransferredAtNotIn applies the NotIn predicate on the "transferred_at" field.
func TransferredAtNotIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldTransferredAt, vs...))
}

// TransferredAtGT applies the GT predicate on the "transferred_at" field.
func TransferredAtGT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldTransferredAt, v))
}

// TransferredAtGTE applies the GTE predicate on the "transferred_at" field.
func TransferredAtGTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldTransferredAt, v))
}

// TransferredAtLT applies the LT predicate on the "transferred_at" field.
func TransferredAtLT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldTransferredAt, v))
}

// TransferredAtLTE applies the LTE predicate on the "transferred_at" field.
func TransferredAtLTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldTransferredAt, v))
}

// TransferredAtIsNil applies the IsNil predicate on the "transferred_at" field.
func TransferredAtIsNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIsNull(FieldTransferredAt))
}

// TransferredAtNotNil applies the NotNil predicate on the "transferred_at" field.
func TransferredAtNotNil() predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotNull(FieldTransferredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnonymousUser) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnonymousUser) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnonymousUser) predicate.AnonymousUser {
	return predicate.AnonymousUser(sql.NotPredicates(p))
}
