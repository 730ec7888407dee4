package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nolan/scribecloud/internal/ent"
	entanon "github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/predicate"
	entspend "github.com/nolan/scribecloud/internal/ent/spendingentry"
	entuser "github.com/nolan/scribecloud/internal/ent/user"
)

const (
	// FreeTierLimit is the number of transcriptions an anonymous
	// fingerprint may run before sign-up.
	FreeTierLimit = 3

	// TokensPerTranscription is the token cost of one job.
	TokensPerTranscription = 1
)

// Spending history actions.
const (
	ActionPurchase     = "purchase"
	ActionSignupBonus  = "signup_bonus"
	ActionTransfer     = "transfer_bonus"
	ActionAdminGrant   = "admin_token_grant"
	ActionAdminDeduct  = "admin_token_deduction"
	ActionCompensation = "payment_failure_compensation"
	ActionUsage        = "transcription_usage"
	ActionRefund       = "failed_transcription_refund"
)

var (
	// ErrInsufficientTokens indicates a debit would take the balance below zero.
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFreeTierExhausted indicates the anonymous fingerprint has no free uses left.
	ErrFreeTierExhausted = errors.New("free tier exhausted")
)

// LedgerService owns every token-balance mutation and the anonymous
// free tier. Balance changes and their SpendingEntry rows are written
// in one transaction, so the replay invariant is structural.
type LedgerService struct {
	db     *ent.Client
	logger *slog.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(db *ent.Client, logger *slog.Logger) *LedgerService {
	return &LedgerService{db: db, logger: logger}
}

// UsageStatus is the API response for an anonymous usage check.
type UsageStatus struct {
	CanUse        bool `json:"canUse"`
	RemainingUses int  `json:"remainingUses"`
	Limit         int  `json:"limit"`
}

// getOrCreateAnonymous returns the fingerprint's row, lazily creating
// it on first contact.
func (s *LedgerService) getOrCreateAnonymous(ctx context.Context, fp, ip, userAgent string) (*ent.AnonymousUser, error) {
	anon, err := s.db.AnonymousUser.Query().
		Where(entanon.FingerprintEQ(fp)).
		Only(ctx)
	if err == nil {
		return anon, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query anonymous user: %w", err)
	}

	anon, err = s.db.AnonymousUser.Create().
		SetFingerprint(fp).
		SetIP(ip).
		SetUserAgent(userAgent).
		Save(ctx)
	if err != nil {
		// Two first requests racing on the unique fingerprint:
		// the loser re-reads the winner's row.
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("create anonymous user: %w", err)
		}
		anon, err = s.db.AnonymousUser.Query().
			Where(entanon.FingerprintEQ(fp)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("re-query anonymous user: %w", err)
		}
	}
	return anon, nil
}

// CheckAnonymousLimit reports whether the fingerprint may run another
// free transcription. The row is lazily created; the count is never
// mutated here — consumption happens in ConsumeAnonymousUse.
func (s *LedgerService) CheckAnonymousLimit(ctx context.Context, fp, ip, userAgent string) (*UsageStatus, error) {
	anon, err := s.getOrCreateAnonymous(ctx, fp, ip, userAgent)
	if err != nil {
		return nil, err
	}

	if anon.IsTransferUsed {
		return &UsageStatus{CanUse: false, RemainingUses: 0, Limit: FreeTierLimit}, nil
	}

	remaining := FreeTierLimit - anon.TranscriptionCount
	if remaining < 0 {
		remaining = 0
	}
	return &UsageStatus{CanUse: remaining > 0, RemainingUses: remaining, Limit: FreeTierLimit}, nil
}

// ConsumeAnonymousUse spends one free transcription for the
// fingerprint, creating the row on first contact — a client may submit
// a job without ever having called the usage check. The increment is a
// conditional update, so two racing requests cannot push the count
// past the ceiling.
func (s *LedgerService) ConsumeAnonymousUse(ctx context.Context, fp, ip, userAgent string) error {
	if _, err := s.getOrCreateAnonymous(ctx, fp, ip, userAgent); err != nil {
		return err
	}

	n, err := s.db.AnonymousUser.Update().
		Where(
			entanon.FingerprintEQ(fp),
			entanon.IsTransferUsedEQ(false),
			entanon.TranscriptionCountLT(FreeTierLimit),
		).
		AddTranscriptionCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("consume anonymous use: %w", err)
	}
	if n == 0 {
		return ErrFreeTierExhausted
	}
	return nil
}

// AddTokens applies delta to the user's balance and appends one
// SpendingEntry whose balance_after equals the post-update balance.
// Debits that would go below zero fail with ErrInsufficientTokens and
// leave no history.
func (s *LedgerService) AddTokens(ctx context.Context, userID, delta int, action, description string) (*ent.SpendingEntry, error) {
	if delta == 0 {
		return nil, errors.New("token delta must be non-zero")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	entry, err := addTokensTx(ctx, tx, userID, delta, action, description)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("ledger entry",
		"user_id", userID, "action", action,
		"tokens_changed", delta, "balance_after", entry.BalanceAfter)
	return entry, nil
}

// addTokensTx is the shared transactional body, also used by services
// that fold a balance change into a larger transaction.
func addTokensTx(ctx context.Context, tx *ent.Tx, userID, delta int, action, description string) (*ent.SpendingEntry, error) {
	preds := []predicate.User{entuser.IDEQ(userID)}
	if delta < 0 {
		preds = append(preds, entuser.TokensGTE(-delta))
	}

	n, err := tx.User.Update().
		Where(preds...).
		AddTokens(delta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}
	if n == 0 {
		exists, qerr := tx.User.Query().Where(entuser.IDEQ(userID)).Exist(ctx)
		if qerr != nil {
			return nil, fmt.Errorf("check user: %w", qerr)
		}
		if !exists {
			return nil, ErrUserNotFound
		}
		return nil, ErrInsufficientTokens
	}

	u, err := tx.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}

	entry, err := tx.SpendingEntry.Create().
		SetOwnerID(userID).
		SetAction(action).
		SetTokensChanged(delta).
		SetBalanceAfter(u.Tokens).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return entry, nil
}

// SetTokens moves the user's balance to an absolute target, recording
// the difference as an admin grant or deduction. Returns nil entry
// when the balance already matches.
func (s *LedgerService) SetTokens(ctx context.Context, userID, target int, description string) (*ent.SpendingEntry, error) {
	// CAS loop: the delta is derived from the observed balance, so a
	// concurrent credit between read and write must restart.
	for attempt := 0; attempt < 3; attempt++ {
		u, err := s.db.User.Get(ctx, userID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("get user: %w", err)
		}

		delta := target - u.Tokens
		if delta == 0 {
			return nil, nil
		}
		action := ActionAdminGrant
		if delta < 0 {
			action = ActionAdminDeduct
		}

		tx, err := s.db.Tx(ctx)
		if err != nil {
			return nil, fmt.Errorf("begin tx: %w", err)
		}

		n, err := tx.User.Update().
			Where(entuser.IDEQ(userID), entuser.TokensEQ(u.Tokens)).
			SetTokens(target).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("set balance: %w", err))
		}
		if n == 0 {
			// Balance moved underneath us; retry with a fresh read.
			if err := tx.Rollback(); err != nil {
				return nil, fmt.Errorf("rollback: %w", err)
			}
			continue
		}

		entry, err := tx.SpendingEntry.Create().
			SetOwnerID(userID).
			SetAction(action).
			SetTokensChanged(delta).
			SetBalanceAfter(target).
			SetDescription(description).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("append history: %w", err))
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}

		s.logger.Info("ledger set",
			"user_id", userID, "action", action,
			"tokens_changed", delta, "balance_after", target)
		return entry, nil
	}
	return nil, errors.New("set tokens: too much contention")
}

// GetSpendingHistory returns the user's ledger entries, newest first.
func (s *LedgerService) GetSpendingHistory(ctx context.Context, userID int) ([]*ent.SpendingEntry, error) {
	entries, err := s.db.SpendingEntry.Query().
		Where(entspend.HasOwnerWith(entuser.IDEQ(userID))).
		Order(ent.Desc(entspend.FieldCreatedAt), ent.Desc(entspend.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}

// CleanupTransferredAnonymousUsage removes anonymous rows whose usage
// was merged into an account longer than retention ago. Idempotent.
func (s *LedgerService) CleanupTransferredAnonymousUsage(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.db.AnonymousUser.Delete().
		Where(
			entanon.IsTransferUsedEQ(true),
			entanon.TransferredAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup anonymous usage: %w", err)
	}
	if n > 0 {
		s.logger.Info("cleaned transferred anonymous usage", "count", n)
	}
	return n, nil
}

// rollback rolls the tx back, folding any rollback error into err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
