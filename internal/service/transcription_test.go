package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nolan/scribecloud/internal/transcriber"

	_ "github.com/mattn/go-sqlite3"
)

func newTestTranscriptionService(t *testing.T) (*TranscriptionService, *transcriber.Mock) {
	t.Helper()
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())
	mock := transcriber.NewMock()

	svc := NewTranscriptionService(client, mock, ledger, nil, testLogger())
	// Run jobs inline so tests drive them deterministically.
	svc.runAsync = false
	return svc, mock
}

func TestCreateForUser_DebitsAndCompletes(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("user@example.com").SetTokens(5).Save(ctx)

	job, err := svc.CreateForUser(ctx, u.ID, "https://example.com/talk.mp4", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != StatusQueued {
		t.Errorf("status = %s, want %s", job.Status, StatusQueued)
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != 4 {
		t.Errorf("balance = %d, want 4", u.Tokens)
	}
	entries, _ := svc.ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 || entries[0].Action != ActionUsage {
		t.Fatalf("history = %+v, want one %s entry", entries, ActionUsage)
	}

	svc.runJob(ctx, job.ID)

	got, err := svc.Get(ctx, job.ID, u.ID, "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("status = %s, want %s", got.Status, StatusCompleted)
	}
	if got.Transcript != "mock transcript" {
		t.Errorf("transcript = %q", got.Transcript)
	}
	if got.Title == "" || got.DurationSeconds == 0 {
		t.Errorf("media info missing: %+v", got)
	}
}

func TestCreateForUser_InsufficientTokens(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("broke@example.com").Save(ctx)

	_, err := svc.CreateForUser(ctx, u.ID, "https://example.com/talk.mp4", "")
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Fatalf("err = %v, want ErrInsufficientTokens", err)
	}

	if n, _ := svc.db.Transcription.Query().Count(ctx); n != 0 {
		t.Errorf("jobs = %d, want 0", n)
	}
}

func TestCreateForUser_InvalidURL(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("user@example.com").SetTokens(5).Save(ctx)

	for _, raw := range []string{"", "not a url", "ftp://example.com/x", "https://"} {
		if _, err := svc.CreateForUser(ctx, u.ID, raw, ""); !errors.Is(err, ErrInvalidSourceURL) {
			t.Errorf("url %q: err = %v, want ErrInvalidSourceURL", raw, err)
		}
	}

	// Validation happens before the debit.
	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != 5 {
		t.Errorf("balance = %d, want 5", u.Tokens)
	}
}

func TestFailedJob_RefundsToken(t *testing.T) {
	svc, mock := newTestTranscriptionService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("user@example.com").SetTokens(5).Save(ctx)

	job, err := svc.CreateForUser(ctx, u.ID, "https://example.com/talk.mp4", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mock.SetFailNext(transcriber.ErrWorkerFailed)
	svc.runJob(ctx, job.ID)

	got, _ := svc.Get(ctx, job.ID, u.ID, "")
	if got.Status != StatusFailed {
		t.Errorf("status = %s, want %s", got.Status, StatusFailed)
	}
	if got.Error == "" {
		t.Error("failed job should carry an error message")
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != 5 {
		t.Errorf("balance = %d, want 5 after refund", u.Tokens)
	}

	entries, _ := svc.ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 2 {
		t.Fatalf("history entries = %d, want 2", len(entries))
	}
	if entries[0].Action != ActionRefund || entries[0].BalanceAfter != 5 {
		t.Errorf("latest entry = %+v, want %s -> 5", entries[0], ActionRefund)
	}
}

func TestCreateForAnonymous_ConsumesFreeUse(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	if _, err := svc.ledger.CheckAnonymousLimit(ctx, "fp-anon", "1.2.3.4", "agent"); err != nil {
		t.Fatalf("check: %v", err)
	}

	job, err := svc.CreateForAnonymous(ctx, "fp-anon", "1.2.3.4", "agent", "https://example.com/talk.mp4", "de")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status, _ := svc.ledger.CheckAnonymousLimit(ctx, "fp-anon", "1.2.3.4", "agent")
	if status.RemainingUses != FreeTierLimit-1 {
		t.Errorf("remaining = %d, want %d", status.RemainingUses, FreeTierLimit-1)
	}

	svc.runJob(ctx, job.ID)

	// Visible via the fingerprint, not via any user.
	got, err := svc.Get(ctx, job.ID, 0, "fp-anon")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusCompleted || got.Language != "de" {
		t.Errorf("job = %+v, want completed in de", got)
	}

	if _, err := svc.Get(ctx, job.ID, 0, "fp-other"); !errors.Is(err, ErrTranscriptionNotFound) {
		t.Errorf("foreign fingerprint: err = %v, want ErrTranscriptionNotFound", err)
	}
}

func TestFailedAnonymousJob_ReturnsFreeUse(t *testing.T) {
	svc, mock := newTestTranscriptionService(t)
	ctx := context.Background()

	_, _ = svc.ledger.CheckAnonymousLimit(ctx, "fp-anon", "1.2.3.4", "agent")

	job, err := svc.CreateForAnonymous(ctx, "fp-anon", "1.2.3.4", "agent", "https://example.com/talk.mp4", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mock.SetFailNext(transcriber.ErrWorkerFailed)
	svc.runJob(ctx, job.ID)

	status, _ := svc.ledger.CheckAnonymousLimit(ctx, "fp-anon", "1.2.3.4", "agent")
	if status.RemainingUses != FreeTierLimit {
		t.Errorf("remaining = %d, want %d after returned use", status.RemainingUses, FreeTierLimit)
	}
}

func TestCreateForAnonymous_ExhaustedTier(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	_, _ = svc.ledger.CheckAnonymousLimit(ctx, "fp-done", "1.2.3.4", "agent")
	for i := 0; i < FreeTierLimit; i++ {
		_ = svc.ledger.ConsumeAnonymousUse(ctx, "fp-done", "1.2.3.4", "agent")
	}

	_, err := svc.CreateForAnonymous(ctx, "fp-done", "1.2.3.4", "agent", "https://example.com/talk.mp4", "")
	if !errors.Is(err, ErrFreeTierExhausted) {
		t.Fatalf("err = %v, want ErrFreeTierExhausted", err)
	}
}

func TestGet_VisibilityScopedToOwner(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	owner, _ := svc.db.User.Create().SetEmail("owner@example.com").SetTokens(5).Save(ctx)
	other, _ := svc.db.User.Create().SetEmail("other@example.com").SetTokens(5).Save(ctx)

	job, err := svc.CreateForUser(ctx, owner.ID, "https://example.com/talk.mp4", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, job.ID, owner.ID, ""); err != nil {
		t.Errorf("owner get: %v", err)
	}
	if _, err := svc.Get(ctx, job.ID, other.ID, ""); !errors.Is(err, ErrTranscriptionNotFound) {
		t.Errorf("other user get: err = %v, want ErrTranscriptionNotFound", err)
	}
	if _, err := svc.Get(ctx, job.ID, 0, "some-fp"); !errors.Is(err, ErrTranscriptionNotFound) {
		t.Errorf("anonymous get: err = %v, want ErrTranscriptionNotFound", err)
	}
}

func TestShare(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("owner@example.com").SetTokens(5).Save(ctx)

	job, err := svc.CreateForUser(ctx, u.ID, "https://example.com/talk.mp4", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Queued jobs cannot be shared.
	if _, err := svc.Share(ctx, job.ID, u.ID); !errors.Is(err, ErrNotShareable) {
		t.Fatalf("share queued: err = %v, want ErrNotShareable", err)
	}

	svc.runJob(ctx, job.ID)

	token, err := svc.Share(ctx, job.ID, u.ID)
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if token == "" {
		t.Fatal("empty share token")
	}

	// Sharing again returns the same token.
	again, err := svc.Share(ctx, job.ID, u.ID)
	if err != nil {
		t.Fatalf("share again: %v", err)
	}
	if again != token {
		t.Errorf("second share = %q, want %q", again, token)
	}

	shared, err := svc.GetShared(ctx, token)
	if err != nil {
		t.Fatalf("get shared: %v", err)
	}
	if shared.Transcript != "mock transcript" {
		t.Errorf("shared transcript = %q", shared.Transcript)
	}

	if _, err := svc.GetShared(ctx, "no-such-token"); !errors.Is(err, ErrTranscriptionNotFound) {
		t.Errorf("unknown token: err = %v, want ErrTranscriptionNotFound", err)
	}
}

func TestShare_OnlyOwner(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	owner, _ := svc.db.User.Create().SetEmail("owner@example.com").SetTokens(5).Save(ctx)
	other, _ := svc.db.User.Create().SetEmail("other@example.com").Save(ctx)

	job, _ := svc.CreateForUser(ctx, owner.ID, "https://example.com/talk.mp4", "")
	svc.runJob(ctx, job.ID)

	if _, err := svc.Share(ctx, job.ID, other.ID); !errors.Is(err, ErrTranscriptionNotFound) {
		t.Fatalf("err = %v, want ErrTranscriptionNotFound", err)
	}
}

func TestList_ReturnsOwnJobs(t *testing.T) {
	svc, _ := newTestTranscriptionService(t)
	ctx := context.Background()

	u1, _ := svc.db.User.Create().SetEmail("a@example.com").SetTokens(5).Save(ctx)
	u2, _ := svc.db.User.Create().SetEmail("b@example.com").SetTokens(5).Save(ctx)

	_, _ = svc.CreateForUser(ctx, u1.ID, "https://example.com/one.mp4", "")
	_, _ = svc.CreateForUser(ctx, u1.ID, "https://example.com/two.mp4", "")
	_, _ = svc.CreateForUser(ctx, u2.ID, "https://example.com/three.mp4", "")

	jobs, err := svc.List(ctx, u1.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("jobs = %d, want 2", len(jobs))
	}
}
