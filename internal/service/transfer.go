package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nolan/scribecloud/internal/ent"
	entanon "github.com/nolan/scribecloud/internal/ent/anonymoususer"
)

// TransferService migrates anonymous usage to a freshly authenticated
// account. The migration happens at most once per fingerprint.
type TransferService struct {
	db     *ent.Client
	ledger *LedgerService
	logger *slog.Logger
}

// NewTransferService creates a new TransferService.
func NewTransferService(db *ent.Client, ledger *LedgerService, logger *slog.Logger) *TransferService {
	return &TransferService{db: db, ledger: ledger, logger: logger}
}

// TransferResult reports what happened during a transfer attempt.
type TransferResult struct {
	Transferred        bool `json:"transferred"`
	AlreadyTransferred bool `json:"alreadyTransferred"`
	BonusTokens        int  `json:"bonusTokens"`
}

// Transfer marks the fingerprint's usage as merged into userID and
// carries the remaining free uses over as a token bonus. Safe under
// retry and under concurrent sign-ins: the state transition is a
// conditional update on is_transfer_used, so exactly one caller wins —
// and the flag and the bonus credit commit in one transaction, so a
// failed credit rolls the flag back and a retry can still claim the
// carry-over.
func (s *TransferService) Transfer(ctx context.Context, fp string, userID int) (*TransferResult, error) {
	anon, err := s.db.AnonymousUser.Query().
		Where(entanon.FingerprintEQ(fp)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Fingerprint never used anonymously; nothing to merge.
			return &TransferResult{}, nil
		}
		return nil, fmt.Errorf("query anonymous user: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	n, err := tx.AnonymousUser.Update().
		Where(
			entanon.IDEQ(anon.ID),
			entanon.IsTransferUsedEQ(false),
		).
		SetIsTransferUsed(true).
		SetTransferredToUserID(userID).
		SetTransferredAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("mark transferred: %w", err))
	}
	if n == 0 {
		if err := tx.Rollback(); err != nil {
			return nil, fmt.Errorf("rollback: %w", err)
		}
		return &TransferResult{AlreadyTransferred: true}, nil
	}

	// The flag is terminal inside this tx, so the count is frozen;
	// re-read it to size the bonus without racing a concurrent free use.
	anon, err = tx.AnonymousUser.Get(ctx, anon.ID)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("re-read anonymous user: %w", err))
	}

	remaining := FreeTierLimit - anon.TranscriptionCount
	if remaining < 0 {
		remaining = 0
	}
	bonus := remaining * TokensPerTranscription

	if bonus > 0 {
		desc := fmt.Sprintf("carried over %d unused free transcriptions", remaining)
		if _, err := addTokensTx(ctx, tx, userID, bonus, ActionTransfer, desc); err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("anonymous usage transferred",
		"fingerprint", fp, "user_id", userID, "bonus_tokens", bonus)
	return &TransferResult{Transferred: true, BonusTokens: bonus}, nil
}
