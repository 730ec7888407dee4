package service

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func newTestTransferService(t *testing.T) (*TransferService, *LedgerService) {
	t.Helper()
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())
	return NewTransferService(client, ledger, testLogger()), ledger
}

func TestTransfer_CarriesOverRemainingUses(t *testing.T) {
	svc, ledger := newTestTransferService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("new@example.com").Save(ctx)

	// One of three free uses spent before sign-up.
	_, _ = ledger.CheckAnonymousLimit(ctx, "fp-merge", "1.2.3.4", "agent")
	_ = ledger.ConsumeAnonymousUse(ctx, "fp-merge", "1.2.3.4", "agent")

	res, err := svc.Transfer(ctx, "fp-merge", u.ID)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if !res.Transferred || res.AlreadyTransferred {
		t.Fatalf("result = %+v, want transferred", res)
	}
	wantBonus := (FreeTierLimit - 1) * TokensPerTranscription
	if res.BonusTokens != wantBonus {
		t.Errorf("bonus = %d, want %d", res.BonusTokens, wantBonus)
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != wantBonus {
		t.Errorf("balance = %d, want %d", u.Tokens, wantBonus)
	}

	entries, _ := ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 || entries[0].Action != ActionTransfer {
		t.Fatalf("history = %+v, want one %s entry", entries, ActionTransfer)
	}

	// Free tier is closed for the fingerprint afterwards.
	status, _ := ledger.CheckAnonymousLimit(ctx, "fp-merge", "1.2.3.4", "agent")
	if status.CanUse {
		t.Error("transferred fingerprint should have no free uses left")
	}
}

func TestTransfer_AtMostOnce(t *testing.T) {
	svc, ledger := newTestTransferService(t)
	ctx := context.Background()

	u1, _ := svc.db.User.Create().SetEmail("first@example.com").Save(ctx)
	u2, _ := svc.db.User.Create().SetEmail("second@example.com").Save(ctx)

	_, _ = ledger.CheckAnonymousLimit(ctx, "fp-once", "1.2.3.4", "agent")

	res, err := svc.Transfer(ctx, "fp-once", u1.ID)
	if err != nil || !res.Transferred {
		t.Fatalf("first transfer: res=%+v err=%v", res, err)
	}

	// A retry, or a second account on the same device, gets nothing.
	res, err = svc.Transfer(ctx, "fp-once", u2.ID)
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}
	if res.Transferred || !res.AlreadyTransferred || res.BonusTokens != 0 {
		t.Errorf("second transfer = %+v, want already-transferred with no bonus", res)
	}

	u2, _ = svc.db.User.Get(ctx, u2.ID)
	if u2.Tokens != 0 {
		t.Errorf("second user balance = %d, want 0", u2.Tokens)
	}

	anon, _ := svc.db.AnonymousUser.Query().Only(ctx)
	if anon.TransferredToUserID != u1.ID {
		t.Errorf("transferred_to = %d, want %d", anon.TransferredToUserID, u1.ID)
	}
}

func TestTransfer_UnknownFingerprint(t *testing.T) {
	svc, _ := newTestTransferService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("clean@example.com").Save(ctx)

	res, err := svc.Transfer(ctx, "fp-never-seen", u.ID)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if res.Transferred || res.AlreadyTransferred || res.BonusTokens != 0 {
		t.Errorf("result = %+v, want empty", res)
	}
}

func TestTransfer_FailedCreditRollsBackFlag(t *testing.T) {
	svc, ledger := newTestTransferService(t)
	ctx := context.Background()

	_, _ = ledger.CheckAnonymousLimit(ctx, "fp-retry", "1.2.3.4", "agent")
	_ = ledger.ConsumeAnonymousUse(ctx, "fp-retry", "1.2.3.4", "agent")

	// Credit to a user that does not exist fails inside the transfer
	// transaction, which must also roll the flag back.
	_, err := svc.Transfer(ctx, "fp-retry", 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}

	anon, _ := svc.db.AnonymousUser.Query().Only(ctx)
	if anon.IsTransferUsed {
		t.Fatal("flag committed despite failed credit")
	}

	// A later sign-in retries the whole merge and claims the bonus.
	u, _ := svc.db.User.Create().SetEmail("retry@example.com").Save(ctx)
	res, err := svc.Transfer(ctx, "fp-retry", u.ID)
	if err != nil {
		t.Fatalf("retry transfer: %v", err)
	}
	wantBonus := (FreeTierLimit - 1) * TokensPerTranscription
	if !res.Transferred || res.BonusTokens != wantBonus {
		t.Errorf("retry = %+v, want transferred with bonus %d", res, wantBonus)
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != wantBonus {
		t.Errorf("balance = %d, want %d", u.Tokens, wantBonus)
	}
}

func TestTransfer_NoBonusWhenExhausted(t *testing.T) {
	svc, ledger := newTestTransferService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("heavy@example.com").Save(ctx)

	_, _ = ledger.CheckAnonymousLimit(ctx, "fp-spent", "1.2.3.4", "agent")
	for i := 0; i < FreeTierLimit; i++ {
		_ = ledger.ConsumeAnonymousUse(ctx, "fp-spent", "1.2.3.4", "agent")
	}

	res, err := svc.Transfer(ctx, "fp-spent", u.ID)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if !res.Transferred || res.BonusTokens != 0 {
		t.Errorf("result = %+v, want transferred with zero bonus", res)
	}

	entries, _ := ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 0 {
		t.Errorf("history entries = %d, want 0", len(entries))
	}
}
