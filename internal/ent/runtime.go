// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/payment"
	"github.com/nolan/scribecloud/internal/ent/schema"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anonymoususerFields := schema.AnonymousUser{}.Fields()
	_ = anonymoususerFields
	// anonymoususerDescFingerprint is the schema descriptor for fingerprint field.
	anonymoususerDescFingerprint := anonymoususerFields[0].Descriptor()
	// anonymoususer.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	anonymoususer.FingerprintValidator = anonymoususerDescFingerprint.Validators[0].(func(string) error)
	// anonymoususerDescIP is the schema descriptor for ip field.
	anonymoususerDescIP := anonymoususerFields[1].Descriptor()
	// anonymoususer.DefaultIP holds the default value on creation for the ip field.
	anonymoususer.DefaultIP = anonymoususerDescIP.Default.(string)
	// anonymoususerDescUserAgent is the schema descriptor for user_agent field.
	anonymoususerDescUserAgent := anonymoususerFields[2].Descriptor()
	// anonymoususer.DefaultUserAgent holds the default value on creation for the user_agent field.
	anonymoususer.DefaultUserAgent = anonymoususerDescUserAgent.Default.(string)
	// anonymoususerDescTranscriptionCount is the schema descriptor for transcription_count field.
	anonymoususerDescTranscriptionCount := anonymoususerFields[3].Descriptor()
	// anonymoususer.DefaultTranscriptionCount holds the default value on creation for the transcription_count field.
	anonymoususer.DefaultTranscriptionCount = anonymoususerDescTranscriptionCount.Default.(int)
	// anonymoususer.TranscriptionCountValidator is a validator for the "transcription_count" field. It is called by the builders before save.
	anonymoususer.TranscriptionCountValidator = anonymoususerDescTranscriptionCount.Validators[0].(func(int) error)
	// anonymoususerDescIsTransferUsed is the schema descriptor for is_transfer_used field.
	anonymoususerDescIsTransferUsed := anonymoususerFields[4].Descriptor()
	// anonymoususer.DefaultIsTransferUsed holds the default value on creation for the is_transfer_used field.
	anonymoususer.DefaultIsTransferUsed = anonymoususerDescIsTransferUsed.Default.(bool)
	// anonymoususerDescCreatedAt is the schema descriptor for created_at field.
	anonymoususerDescCreatedAt := anonymoususerFields[7].Descriptor()
	// anonymoususer.DefaultCreatedAt holds the default value on creation for the created_at field.
	anonymoususer.DefaultCreatedAt = anonymoususerDescCreatedAt.Default.(func() time.Time)
	// anonymoususerDescUpdatedAt is the schema descriptor for updated_at field.
	anonymoususerDescUpdatedAt := anonymoususerFields[8].Descriptor()
	// anonymoususer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	anonymoususer.DefaultUpdatedAt = anonymoususerDescUpdatedAt.Default.(func() time.Time)
	// anonymoususer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	anonymoususer.UpdateDefaultUpdatedAt = anonymoususerDescUpdatedAt.UpdateDefault.(func() time.Time)
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescStripeSessionID is the schema descriptor for stripe_session_id field.
	paymentDescStripeSessionID := paymentFields[0].Descriptor()
	// payment.StripeSessionIDValidator is a validator for the "stripe_session_id" field. It is called by the builders before save.
	payment.StripeSessionIDValidator = paymentDescStripeSessionID.Validators[0].(func(string) error)
	// paymentDescAmountCents is the schema descriptor for amount_cents field.
	paymentDescAmountCents := paymentFields[1].Descriptor()
	// payment.DefaultAmountCents holds the default value on creation for the amount_cents field.
	payment.DefaultAmountCents = paymentDescAmountCents.Default.(int64)
	// paymentDescCurrency is the schema descriptor for currency field.
	paymentDescCurrency := paymentFields[2].Descriptor()
	// payment.DefaultCurrency holds the default value on creation for the currency field.
	payment.DefaultCurrency = paymentDescCurrency.Default.(string)
	// paymentDescStatus is the schema descriptor for status field.
	paymentDescStatus := paymentFields[4].Descriptor()
	// payment.DefaultStatus holds the default value on creation for the status field.
	payment.DefaultStatus = paymentDescStatus.Default.(string)
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentFields[5].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	spendingentryFields := schema.SpendingEntry{}.Fields()
	_ = spendingentryFields
	// spendingentryDescAction is the schema descriptor for action field.
	spendingentryDescAction := spendingentryFields[0].Descriptor()
	// spendingentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	spendingentry.ActionValidator = spendingentryDescAction.Validators[0].(func(string) error)
	// spendingentryDescDescription is the schema descriptor for description field.
	spendingentryDescDescription := spendingentryFields[3].Descriptor()
	// spendingentry.DefaultDescription holds the default value on creation for the description field.
	spendingentry.DefaultDescription = spendingentryDescDescription.Default.(string)
	// spendingentryDescCreatedAt is the schema descriptor for created_at field.
	spendingentryDescCreatedAt := spendingentryFields[4].Descriptor()
	// spendingentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	spendingentry.DefaultCreatedAt = spendingentryDescCreatedAt.Default.(func() time.Time)
	transcriptionFields := schema.Transcription{}.Fields()
	_ = transcriptionFields
	// transcriptionDescSourceURL is the schema descriptor for source_url field.
	transcriptionDescSourceURL := transcriptionFields[0].Descriptor()
	// transcription.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	transcription.SourceURLValidator = transcriptionDescSourceURL.Validators[0].(func(string) error)
	// transcriptionDescTitle is the schema descriptor for title field.
	transcriptionDescTitle := transcriptionFields[1].Descriptor()
	// transcription.DefaultTitle holds the default value on creation for the title field.
	transcription.DefaultTitle = transcriptionDescTitle.Default.(string)
	// transcriptionDescDurationSeconds is the schema descriptor for duration_seconds field.
	transcriptionDescDurationSeconds := transcriptionFields[2].Descriptor()
	// transcription.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	transcription.DefaultDurationSeconds = transcriptionDescDurationSeconds.Default.(float64)
	// transcriptionDescLanguage is the schema descriptor for language field.
	transcriptionDescLanguage := transcriptionFields[3].Descriptor()
	// transcription.DefaultLanguage holds the default value on creation for the language field.
	transcription.DefaultLanguage = transcriptionDescLanguage.Default.(string)
	// transcriptionDescStatus is the schema descriptor for status field.
	transcriptionDescStatus := transcriptionFields[4].Descriptor()
	// transcription.DefaultStatus holds the default value on creation for the status field.
	transcription.DefaultStatus = transcriptionDescStatus.Default.(string)
	// transcriptionDescTranscript is the schema descriptor for transcript field.
	transcriptionDescTranscript := transcriptionFields[5].Descriptor()
	// transcription.DefaultTranscript holds the default value on creation for the transcript field.
	transcription.DefaultTranscript = transcriptionDescTranscript.Default.(string)
	// transcriptionDescError is the schema descriptor for error field.
	transcriptionDescError := transcriptionFields[6].Descriptor()
	// transcription.DefaultError holds the default value on creation for the error field.
	transcription.DefaultError = transcriptionDescError.Default.(string)
	// transcriptionDescFingerprint is the schema descriptor for fingerprint field.
	transcriptionDescFingerprint := transcriptionFields[8].Descriptor()
	// transcription.DefaultFingerprint holds the default value on creation for the fingerprint field.
	transcription.DefaultFingerprint = transcriptionDescFingerprint.Default.(string)
	// transcriptionDescCreatedAt is the schema descriptor for created_at field.
	transcriptionDescCreatedAt := transcriptionFields[9].Descriptor()
	// transcription.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcription.DefaultCreatedAt = transcriptionDescCreatedAt.Default.(func() time.Time)
	// transcriptionDescUpdatedAt is the schema descriptor for updated_at field.
	transcriptionDescUpdatedAt := transcriptionFields[10].Descriptor()
	// transcription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transcription.DefaultUpdatedAt = transcriptionDescUpdatedAt.Default.(func() time.Time)
	// transcription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transcription.UpdateDefaultUpdatedAt = transcriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescTokens is the schema descriptor for tokens field.
	userDescTokens := userFields[2].Descriptor()
	// user.DefaultTokens holds the default value on creation for the tokens field.
	user.DefaultTokens = userDescTokens.Default.(int)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[3].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
