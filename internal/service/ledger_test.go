package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nolan/scribecloud/internal/ent"
	"github.com/nolan/scribecloud/internal/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckAnonymousLimit_NewFingerprint(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	status, err := svc.CheckAnonymousLimit(ctx, "fp-new", "1.2.3.4", "test-agent")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !status.CanUse {
		t.Error("new fingerprint should be able to use")
	}
	if status.RemainingUses != FreeTierLimit {
		t.Errorf("remaining = %d, want %d", status.RemainingUses, FreeTierLimit)
	}

	// The row is lazily created, but the check never consumes.
	status, err = svc.CheckAnonymousLimit(ctx, "fp-new", "1.2.3.4", "test-agent")
	if err != nil {
		t.Fatalf("check again: %v", err)
	}
	if status.RemainingUses != FreeTierLimit {
		t.Errorf("remaining after re-check = %d, want %d", status.RemainingUses, FreeTierLimit)
	}

	anons, _ := client.AnonymousUser.Query().All(ctx)
	if len(anons) != 1 {
		t.Fatalf("anonymous rows = %d, want 1", len(anons))
	}
}

func TestConsumeAnonymousUse_FirstContact(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	// A client may submit a job without ever calling the usage check;
	// the first consume must create the row, not report exhaustion.
	if err := svc.ConsumeAnonymousUse(ctx, "fp-direct", "1.2.3.4", "test-agent"); err != nil {
		t.Fatalf("first consume: %v", err)
	}

	anon, err := client.AnonymousUser.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query row: %v", err)
	}
	if anon.TranscriptionCount != 1 {
		t.Errorf("count = %d, want 1", anon.TranscriptionCount)
	}
	if anon.IP != "1.2.3.4" || anon.UserAgent != "test-agent" {
		t.Errorf("row metadata = (%q, %q)", anon.IP, anon.UserAgent)
	}

	status, _ := svc.CheckAnonymousLimit(ctx, "fp-direct", "1.2.3.4", "test-agent")
	if status.RemainingUses != FreeTierLimit-1 {
		t.Errorf("remaining = %d, want %d", status.RemainingUses, FreeTierLimit-1)
	}
}

func TestConsumeAnonymousUse_StopsAtLimit(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	if _, err := svc.CheckAnonymousLimit(ctx, "fp-limit", "1.2.3.4", "test-agent"); err != nil {
		t.Fatalf("check: %v", err)
	}

	for i := 0; i < FreeTierLimit; i++ {
		if err := svc.ConsumeAnonymousUse(ctx, "fp-limit", "1.2.3.4", "test-agent"); err != nil {
			t.Fatalf("consume %d: %v", i+1, err)
		}
	}

	err := svc.ConsumeAnonymousUse(ctx, "fp-limit", "1.2.3.4", "test-agent")
	if !errors.Is(err, ErrFreeTierExhausted) {
		t.Fatalf("consume past limit: err = %v, want ErrFreeTierExhausted", err)
	}

	status, _ := svc.CheckAnonymousLimit(ctx, "fp-limit", "1.2.3.4", "test-agent")
	if status.CanUse {
		t.Error("exhausted fingerprint should not be able to use")
	}
	if status.RemainingUses != 0 {
		t.Errorf("remaining = %d, want 0", status.RemainingUses)
	}
}

func TestCheckAnonymousLimit_TransferredFingerprint(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	_, err := client.AnonymousUser.Create().
		SetFingerprint("fp-moved").
		SetIP("1.2.3.4").
		SetUserAgent("test-agent").
		SetTranscriptionCount(1).
		SetIsTransferUsed(true).
		SetTransferredAt(time.Now()).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	status, err := svc.CheckAnonymousLimit(ctx, "fp-moved", "1.2.3.4", "test-agent")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.CanUse || status.RemainingUses != 0 {
		t.Errorf("transferred fingerprint: canUse=%v remaining=%d, want false/0",
			status.CanUse, status.RemainingUses)
	}

	if err := svc.ConsumeAnonymousUse(ctx, "fp-moved", "1.2.3.4", "test-agent"); !errors.Is(err, ErrFreeTierExhausted) {
		t.Errorf("consume on transferred: err = %v, want ErrFreeTierExhausted", err)
	}
}

func TestAddTokens_RecordsBalanceAfter(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("ledger@example.com").Save(ctx)

	entry, err := svc.AddTokens(ctx, u.ID, 20, ActionPurchase, "starter pack")
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if entry.TokensChanged != 20 || entry.BalanceAfter != 20 {
		t.Errorf("credit entry = (%d, %d), want (20, 20)", entry.TokensChanged, entry.BalanceAfter)
	}

	entry, err = svc.AddTokens(ctx, u.ID, -3, ActionUsage, "three jobs")
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if entry.TokensChanged != -3 || entry.BalanceAfter != 17 {
		t.Errorf("debit entry = (%d, %d), want (-3, 17)", entry.TokensChanged, entry.BalanceAfter)
	}

	u, _ = client.User.Get(ctx, u.ID)
	if u.Tokens != 17 {
		t.Errorf("balance = %d, want 17", u.Tokens)
	}
}

func TestAddTokens_InsufficientBalance(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("poor@example.com").SetTokens(2).Save(ctx)

	_, err := svc.AddTokens(ctx, u.ID, -3, ActionUsage, "too expensive")
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Fatalf("err = %v, want ErrInsufficientTokens", err)
	}

	// Neither balance nor history moved.
	u, _ = client.User.Get(ctx, u.ID)
	if u.Tokens != 2 {
		t.Errorf("balance = %d, want 2", u.Tokens)
	}
	entries, _ := svc.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 0 {
		t.Errorf("history entries = %d, want 0", len(entries))
	}
}

func TestAddTokens_UnknownUser(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())

	_, err := svc.AddTokens(context.Background(), 9999, 5, ActionPurchase, "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSetTokens_RecordsDeduction(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("set@example.com").SetTokens(23).Save(ctx)

	entry, err := svc.SetTokens(ctx, u.ID, 13, "support adjustment")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if entry.Action != ActionAdminDeduct {
		t.Errorf("action = %s, want %s", entry.Action, ActionAdminDeduct)
	}
	if entry.TokensChanged != -10 || entry.BalanceAfter != 13 {
		t.Errorf("entry = (%d, %d), want (-10, 13)", entry.TokensChanged, entry.BalanceAfter)
	}

	u, _ = client.User.Get(ctx, u.ID)
	if u.Tokens != 13 {
		t.Errorf("balance = %d, want 13", u.Tokens)
	}

	// Setting to the current balance is a no-op with no history.
	entry, err = svc.SetTokens(ctx, u.ID, 13, "no change")
	if err != nil {
		t.Fatalf("set same: %v", err)
	}
	if entry != nil {
		t.Error("no-op set should not produce an entry")
	}

	entries, _ := svc.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 {
		t.Errorf("history entries = %d, want 1", len(entries))
	}
}

func TestSetTokens_UnknownUser(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())

	_, err := svc.SetTokens(context.Background(), 9999, 10, "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSpendingHistory_Replays(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("replay@example.com").Save(ctx)

	_, _ = svc.AddTokens(ctx, u.ID, 5, ActionSignupBonus, "welcome")
	_, _ = svc.AddTokens(ctx, u.ID, 20, ActionPurchase, "starter")
	_, _ = svc.AddTokens(ctx, u.ID, -1, ActionUsage, "job 1")
	_, _ = svc.AddTokens(ctx, u.ID, -1, ActionUsage, "job 2")
	_, _ = svc.SetTokens(ctx, u.ID, 30, "grant")

	entries, err := svc.GetSpendingHistory(ctx, u.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(entries))
	}

	// Newest first: replay oldest to newest and check every entry's
	// balance_after follows from the running balance.
	balance := 0
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		balance += e.TokensChanged
		if e.BalanceAfter != balance {
			t.Errorf("entry %s: balance_after = %d, want %d", e.Action, e.BalanceAfter, balance)
		}
	}

	u, _ = client.User.Get(ctx, u.ID)
	if u.Tokens != balance {
		t.Errorf("final balance = %d, replay gives %d", u.Tokens, balance)
	}
}

func TestCleanupTransferredAnonymousUsage(t *testing.T) {
	client := newTestClient(t)
	svc := NewLedgerService(client, testLogger())
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	_, _ = client.AnonymousUser.Create().
		SetFingerprint("fp-old-transferred").
		SetIP("1.1.1.1").
		SetUserAgent("a").
		SetIsTransferUsed(true).
		SetTransferredAt(old).
		Save(ctx)
	_, _ = client.AnonymousUser.Create().
		SetFingerprint("fp-fresh-transferred").
		SetIP("2.2.2.2").
		SetUserAgent("b").
		SetIsTransferUsed(true).
		SetTransferredAt(time.Now()).
		Save(ctx)
	_, _ = client.AnonymousUser.Create().
		SetFingerprint("fp-active").
		SetIP("3.3.3.3").
		SetUserAgent("c").
		Save(ctx)

	n, err := svc.CleanupTransferredAnonymousUsage(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	left, _ := client.AnonymousUser.Query().Count(ctx)
	if left != 2 {
		t.Errorf("rows left = %d, want 2", left)
	}

	// Second run finds nothing.
	n, err = svc.CleanupTransferredAnonymousUsage(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("cleanup again: %v", err)
	}
	if n != 0 {
		t.Errorf("second cleanup deleted = %d, want 0", n)
	}
}
