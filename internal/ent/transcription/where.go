// Code generated by ent, DO NOT EDIT.

package transcription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nolan/scribecloud/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldID, id))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldSourceURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldTitle, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldDurationSeconds, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldLanguage, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldStatus, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldTranscript, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldError, v))
}

// ShareToken applies equality check predicate on the "share_token" field. It's identical to ShareTokenEQ.
func ShareToken(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldShareToken, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldSourceURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldTitle, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldDurationSeconds, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldLanguage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldStatus, v))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldTranscript))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldTranscript, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldError, v))
}

// ShareTokenEQ applies the EQ predicate on the "share_token" field.
func ShareTokenEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldShareToken, v))
}

// ShareTokenNEQ applies the NEQ predicate on the "share_token" field.
func ShareTokenNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldShareToken, v))
}

// ShareTokenIn applies the In predicate on the "share_token" field.
func ShareTokenIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldShareToken, vs...))
}

// ShareTokenNotIn applies the NotIn predicate on the "share_token" field.
func ShareTokenNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldShareToken, vs...))
}

// ShareTokenGT applies the GT predicate on the "share_token" field.
func ShareTokenGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldShareToken, v))
}

// ShareTokenGTE applies the GTE predicate on the "share_token" field.
func ShareTokenGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldShareToken, v))
}

// ShareTokenLT applies the LT predicate on the "share_token" field.
func ShareTokenLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldShareToken, v))
}

// ShareTokenLTE applies the LTE predicate on the "share_token" field.
func ShareTokenLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldShareToken, v))
}

// ShareTokenContains applies the Contains predicate on the "share_token" field.
func ShareTokenContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldShareToken, v))
}

// ShareTokenHasPrefix applies the HasPrefix predicate on the "share_token" field.
func ShareTokenHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldShareToken, v))
}

// ShareTokenHasSuffix applies the HasSuffix predicate on the "share_token" field.
func ShareTokenHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldShareToken, v))
}

// ShareTokenIsNil applies the IsNil predicate on the "share_token" field.
func ShareTokenIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldShareToken))
}

// ShareTokenNotNil applies the NotNil predicate on the "share_token" field.
func ShareTokenNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldShareToken))
}

// ShareTokenEqualFold applies the EqualFold predicate on the "share_token" field.
func ShareTokenEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldShareToken, v))
}

// ShareTokenContainsFold applies the ContainsFold predicate on the "share_token" field.
func ShareTokenContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldShareToken, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintIsNil applies the IsNil predicate on the "fingerprint" field.
func FingerprintIsNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldIsNull(FieldFingerprint))
}

// FingerprintNotNil applies the NotNil predicate on the "fingerprint" field.
func FingerprintNotNil() predicate.Transcription {
	return predicate.Transcription(sql.FieldNotNull(FieldFingerprint))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldFingerprint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Transcription {
	return predicate.Transcription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Transcription {
	return predicate.Transcription(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.NotPredicates(p))
}
