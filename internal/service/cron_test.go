package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func TestCron_CleansTransferredRows(t *testing.T) {
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())
	ctx := context.Background()

	_, err := client.AnonymousUser.Create().
		SetFingerprint("fp-stale").
		SetIP("1.2.3.4").
		SetUserAgent("agent").
		SetIsTransferUsed(true).
		SetTransferredAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	cron := NewCronService(ledger, time.Hour, log.New(io.Discard, "", 0), 10*time.Millisecond)
	cron.Start()
	defer cron.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if n, _ := client.AnonymousUser.Query().Count(ctx); n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("stale row not cleaned before deadline")
}
