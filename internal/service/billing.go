package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/nolan/scribecloud/internal/ent"
)

var (
	// ErrWebhookSignature indicates the webhook payload failed signature verification.
	ErrWebhookSignature = errors.New("invalid webhook signature")

	// ErrWebhookMetadata indicates the event is missing user_id or tokens metadata.
	ErrWebhookMetadata = errors.New("missing webhook metadata")

	// ErrUnknownPack indicates an unrecognized token pack name.
	ErrUnknownPack = errors.New("unknown token pack")
)

// TokenPack is a purchasable token bundle.
type TokenPack struct {
	Name       string `json:"name"`
	Tokens     int    `json:"tokens"`
	AmountCent int64  `json:"amountCents"`
}

// Packs available for one-time purchase.
var tokenPacks = map[string]TokenPack{
	"starter": {Name: "starter", Tokens: 20, AmountCent: 499},
	"creator": {Name: "creator", Tokens: 100, AmountCent: 1999},
	"studio":  {Name: "studio", Tokens: 300, AmountCent: 4999},
}

// BillingService handles Stripe checkout and the payment webhook.
type BillingService struct {
	db            *ent.Client
	ledger        *LedgerService
	webhookSecret string
	frontendURL   string
	logger        *slog.Logger
}

// NewBillingService creates a new BillingService and sets the Stripe API key.
func NewBillingService(db *ent.Client, ledger *LedgerService, stripeKey, webhookSecret, frontendURL string, logger *slog.Logger) *BillingService {
	stripe.Key = stripeKey
	return &BillingService{
		db:            db,
		ledger:        ledger,
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
		logger:        logger,
	}
}

// Packs lists the purchasable token packs.
func (s *BillingService) Packs() []TokenPack {
	return []TokenPack{tokenPacks["starter"], tokenPacks["creator"], tokenPacks["studio"]}
}

// CreateCheckoutSession creates a one-time-payment Stripe Checkout
// session for the given user and token pack. The session metadata
// carries everything the webhook needs to credit the purchase.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID int, pack string) (string, error) {
	p, ok := tokenPacks[pack]
	if !ok {
		return "", ErrUnknownPack
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	// Create or get Stripe customer
	customerID := ""
	if u.StripeCustomerID != nil {
		customerID = *u.StripeCustomerID
	}
	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(u.Email),
		}
		params.AddMetadata("user_id", strconv.Itoa(u.ID))
		c, err := customer.New(params)
		if err != nil {
			return "", fmt.Errorf("create customer: %w", err)
		}
		customerID = c.ID
		if _, err := u.Update().SetStripeCustomerID(customerID).Save(ctx); err != nil {
			return "", fmt.Errorf("save customer id: %w", err)
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(p.AmountCent),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("ScribeCloud %s pack (%d tokens)", p.Name, p.Tokens)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.frontendURL + "/dashboard?checkout=success"),
		CancelURL:  stripe.String(s.frontendURL + "/dashboard?checkout=cancel"),
	}
	params.AddMetadata("user_id", strconv.Itoa(userID))
	params.AddMetadata("tokens", strconv.Itoa(p.Tokens))

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout: %w", err)
	}

	return sess.URL, nil
}

// HandleWebhookEvent verifies and processes a Stripe webhook event.
// Signature and metadata failures are client errors and must not be
// retried; storage failures are server errors, and Stripe's redelivery
// is made safe by the unique payment session id.
func (s *BillingService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookSignature, err)
	}

	return s.processEvent(ctx, event)
}

func (s *BillingService) processEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	default:
		// All other event types are acknowledged and ignored.
		s.logger.Info("unhandled billing event", "event_type", event.Type)
		return nil
	}
}

func (s *BillingService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("%w: parse checkout session: %v", ErrWebhookMetadata, err)
	}

	if sess.ID == "" || sess.Metadata == nil {
		return fmt.Errorf("%w: empty session", ErrWebhookMetadata)
	}

	userID, err := strconv.Atoi(sess.Metadata["user_id"])
	if err != nil || userID <= 0 {
		return fmt.Errorf("%w: user_id", ErrWebhookMetadata)
	}
	tokens, err := strconv.Atoi(sess.Metadata["tokens"])
	if err != nil || tokens <= 0 {
		return fmt.Errorf("%w: tokens", ErrWebhookMetadata)
	}

	currency := string(sess.Currency)
	if currency == "" {
		currency = "usd"
	}

	// Payment insert and token credit commit together. The unique
	// stripe_session_id makes a redelivered event a no-op.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	desc := fmt.Sprintf("purchase of %d tokens (session %s)", tokens, sess.ID)
	if _, err := addTokensTx(ctx, tx, userID, tokens, ActionPurchase, desc); err != nil {
		return rollback(tx, err)
	}

	_, err = tx.Payment.Create().
		SetOwnerID(userID).
		SetStripeSessionID(sess.ID).
		SetAmountCents(sess.AmountTotal).
		SetCurrency(currency).
		SetTokensAdded(tokens).
		SetStatus("completed").
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Replay of an already-credited session: the rollback
			// discards the second credit and the event is acknowledged.
			s.logger.Info("duplicate payment session ignored", "session_id", sess.ID)
			return rollbackOK(tx)
		}
		return rollback(tx, fmt.Errorf("insert payment: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("checkout completed", "user_id", userID, "tokens", tokens, "session_id", sess.ID)
	return nil
}

// rollbackOK rolls back and swallows a clean no-op path.
func rollbackOK(tx *ent.Tx) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
