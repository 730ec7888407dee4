package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stripe/stripe-go/v82"

	_ "github.com/mattn/go-sqlite3"
)

func newTestBillingService(t *testing.T) *BillingService {
	t.Helper()
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())

	return &BillingService{
		db:            client,
		ledger:        ledger,
		webhookSecret: "whsec_test",
		frontendURL:   "http://localhost:3000",
		logger:        testLogger(),
	}
}

func checkoutEvent(sessionID string, userID, tokens int) stripe.Event {
	raw, _ := json.Marshal(map[string]interface{}{
		"id":           sessionID,
		"amount_total": 499,
		"currency":     "usd",
		"metadata": map[string]string{
			"user_id": strconv.Itoa(userID),
			"tokens":  strconv.Itoa(tokens),
		},
	})
	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestProcessEvent_CheckoutCompleted(t *testing.T) {
	svc := newTestBillingService(t)
	ctx := context.Background()

	u, err := svc.db.User.Create().SetEmail("buyer@example.com").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := svc.processEvent(ctx, checkoutEvent("cs_test_123", u.ID, 20)); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != 20 {
		t.Errorf("balance = %d, want 20", u.Tokens)
	}

	payments, _ := svc.db.Payment.Query().All(ctx)
	if len(payments) != 1 {
		t.Fatalf("payments = %d, want 1", len(payments))
	}
	p := payments[0]
	if p.StripeSessionID != "cs_test_123" || p.TokensAdded != 20 || p.AmountCents != 499 {
		t.Errorf("payment = %+v", p)
	}

	entries, _ := svc.ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	if entries[0].Action != ActionPurchase || entries[0].BalanceAfter != 20 {
		t.Errorf("entry = %+v, want %s with balance_after 20", entries[0], ActionPurchase)
	}
}

func TestProcessEvent_ReplayedSessionCreditsOnce(t *testing.T) {
	svc := newTestBillingService(t)
	ctx := context.Background()

	u, _ := svc.db.User.Create().SetEmail("buyer@example.com").Save(ctx)

	event := checkoutEvent("cs_test_replay", u.ID, 100)
	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	// Stripe redelivers the same event; it must be acknowledged
	// without crediting again.
	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	u, _ = svc.db.User.Get(ctx, u.ID)
	if u.Tokens != 100 {
		t.Errorf("balance = %d, want 100", u.Tokens)
	}

	payments, _ := svc.db.Payment.Query().Count(ctx)
	if payments != 1 {
		t.Errorf("payments = %d, want 1", payments)
	}
	entries, _ := svc.ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 {
		t.Errorf("history entries = %d, want 1", len(entries))
	}
}

func TestProcessEvent_BadMetadata(t *testing.T) {
	svc := newTestBillingService(t)
	ctx := context.Background()

	raw, _ := json.Marshal(map[string]interface{}{
		"id":       "cs_test_nometa",
		"metadata": map[string]string{"user_id": "not-a-number"},
	})
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}

	err := svc.processEvent(ctx, event)
	if !errors.Is(err, ErrWebhookMetadata) {
		t.Fatalf("err = %v, want ErrWebhookMetadata", err)
	}

	if n, _ := svc.db.Payment.Query().Count(ctx); n != 0 {
		t.Errorf("payments = %d, want 0", n)
	}
}

func TestProcessEvent_UnknownUser(t *testing.T) {
	svc := newTestBillingService(t)
	ctx := context.Background()

	err := svc.processEvent(ctx, checkoutEvent("cs_test_ghost", 9999, 20))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}

	// The payment row must not survive the failed credit.
	if n, _ := svc.db.Payment.Query().Count(ctx); n != 0 {
		t.Errorf("payments = %d, want 0", n)
	}
}

func TestProcessEvent_IgnoresOtherTypes(t *testing.T) {
	svc := newTestBillingService(t)

	event := stripe.Event{
		Type: "customer.created",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}
}

func TestHandleWebhookEvent_BadSignature(t *testing.T) {
	svc := newTestBillingService(t)

	err := svc.HandleWebhookEvent(context.Background(), []byte(`{}`), "t=1,v1=bogus")
	if !errors.Is(err, ErrWebhookSignature) {
		t.Fatalf("err = %v, want ErrWebhookSignature", err)
	}
}

func TestPacks(t *testing.T) {
	svc := newTestBillingService(t)

	packs := svc.Packs()
	if len(packs) != 3 {
		t.Fatalf("packs = %d, want 3", len(packs))
	}
	if packs[0].Name != "starter" || packs[0].Tokens != 20 {
		t.Errorf("first pack = %+v, want starter/20", packs[0])
	}
}
